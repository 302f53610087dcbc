package preprocessing

import (
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/framework/math/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// osuChart builds an osu!standard chart with circles first, then sliders, then spinners
func osuChart(circles, sliders, spinners int, cs, od float64) *beatmap.Beatmap {
	b := beatmap.NewBeatmap(beatmap.ModeOsu)
	b.CircleSize = cs
	b.OverallDifficulty = od

	t := 0.0

	for range circles {
		b.HitObjects = append(b.HitObjects, objects.NewCircle(t, vector.NewVec2f(100, 100)))
		t += 100
	}

	for range sliders {
		b.HitObjects = append(b.HitObjects, objects.NewSlider(t, vector.NewVec2f(100, 100), []vector.Vector2f{{}, {X: 50}}, 50, 1))
		t += 500
	}

	for range spinners {
		b.HitObjects = append(b.HitObjects, objects.NewSpinner(t, t+400))
		t += 500
	}

	return b
}

func TestNativeKeyCount(t *testing.T) {
	b := beatmap.NewBeatmap(beatmap.ModeMania)

	for _, tt := range []struct {
		cs   float64
		keys int
	}{
		{4, 4},
		{7, 7},
		{4.5, 5},
		{0, 1},
	} {
		b.CircleSize = tt.cs
		assert.Equal(t, tt.keys, KeyCount(b), "cs %v", tt.cs)
	}
}

func TestConvertKeyCount(t *testing.T) {
	tests := []struct {
		name string
		b    *beatmap.Beatmap
		keys int
	}{
		{"mostly circles", osuChart(9, 1, 0, 4, 2), 7},
		{"few sliders low od", osuChart(8, 2, 0, 4, 5), 6},
		{"few sliders high od", osuChart(8, 2, 0, 4, 6), 7},
		{"large circles", osuChart(5, 5, 0, 5, 3), 6},
		{"slider heavy", osuChart(3, 4, 3, 4, 5), 5},
		{"slider heavy low od", osuChart(3, 4, 3, 4, 4), 4},
		{"balanced", osuChart(5, 5, 0, 4, 8), 7},
		{"balanced low od", osuChart(5, 5, 0, 4, 2), 4},
		{"empty", osuChart(0, 0, 0, 4, 5), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, KeyCount(tt.b))
		})
	}
}

func TestColumn(t *testing.T) {
	assert.Equal(t, 0, Column(0, 4))
	assert.Equal(t, 3, Column(511, 4))
	assert.Equal(t, 3, Column(512, 4))
	assert.Equal(t, 2, Column(200, 7))
	assert.Equal(t, 0, Column(-5, 4))
}

func TestConvertObjects(t *testing.T) {
	b := beatmap.NewBeatmap(beatmap.ModeOsu)
	b.TimingPoints = []beatmap.TimingPoint{{Time: 0, BeatLength: 500}}

	b.HitObjects = []objects.IHitObject{
		objects.NewCircle(0, vector.NewVec2f(300, 100)),
		objects.NewSlider(100, vector.NewVec2f(50, 100), []vector.Vector2f{{}, {X: 140}}, 140, 2),
		objects.NewSpinner(2000, 2500),
		objects.NewHoldNote(3000, 3250, vector.NewVec2f(400, 0)),
	}

	converted := ConvertObjects(b)
	require.Len(t, converted, 4)

	assert.Equal(t, Object{StartTime: 0, EndTime: 0, X: 300}, converted[0])
	assert.False(t, converted[0].IsHold())

	assert.InDelta(t, 1100, converted[1].EndTime, 1e-6)
	assert.True(t, converted[1].IsHold())

	assert.Equal(t, 2500.0, converted[2].EndTime)
	assert.Equal(t, Object{StartTime: 3000, EndTime: 3250, X: 400}, converted[3])
}

func TestMaxCombo(t *testing.T) {
	combo := MaxCombo([]Object{
		{StartTime: 0, EndTime: 0},
		{StartTime: 100, EndTime: 350},
		{StartTime: 400, EndTime: 499},
	})

	assert.Equal(t, 1+3+1, combo)
}
