package osu2024

import (
	"math"
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/framework/math/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func circles(times ...float64) *beatmap.Beatmap {
	b := beatmap.NewBeatmap(beatmap.ModeOsu)
	b.OverallDifficulty = 8
	b.ApproachRate = 9

	for i, t := range times {
		b.HitObjects = append(b.HitObjects, objects.NewCircle(t, vector.NewVec2f(float32(100+(i%2)*150), float32(100+(i%3)*60))))
	}

	return b
}

// jumps alternates circles with sliders going back and forth across the playfield
func jumps(n int) *beatmap.Beatmap {
	b := beatmap.NewBeatmap(beatmap.ModeOsu)
	b.OverallDifficulty = 8
	b.ApproachRate = 9
	b.TimingPoints = []beatmap.TimingPoint{{Time: 0, BeatLength: 300}}

	for i := 0; i < n; i++ {
		t := float64(i) * 300
		x := float32(60 + (i%2)*350)

		if i%3 == 2 {
			b.HitObjects = append(b.HitObjects, objects.NewSlider(t, vector.NewVec2f(x, 200), []vector.Vector2f{{}, {Y: 120}}, 120, 1))
		} else {
			b.HitObjects = append(b.HitObjects, objects.NewCircle(t, vector.NewVec2f(x, 150)))
		}
	}

	b.PrepareSliders()

	return b
}

func TestSingleObject(t *testing.T) {
	b := circles(0)

	attr := NewDifficultyCalculator().CalculateSingle(b, b.NewDifficulty())
	assert.Zero(t, attr.Total)
	assert.Zero(t, attr.ObjectCount)
}

func TestPassedObjects(t *testing.T) {
	b := circles(0, 200, 400, 600)

	diff := b.NewDifficulty()
	diff.PassedObjects = 1

	assert.Equal(t, 0, NewDifficultyCalculator().CalculateSingle(b, diff).ObjectCount)

	diff.PassedObjects = 3
	assert.Equal(t, 3, NewDifficultyCalculator().CalculateSingle(b, diff).ObjectCount)
}

func TestIdempotent(t *testing.T) {
	b := jumps(40)
	calc := NewDifficultyCalculator()

	first := calc.CalculateSingle(b, b.NewDifficulty())
	second := calc.CalculateSingle(b, b.NewDifficulty())

	assert.Greater(t, first.Total, 0.0)
	assert.Equal(t, first, second)
}

func TestCounts(t *testing.T) {
	b := jumps(9)

	attr := NewDifficultyCalculator().CalculateSingle(b, b.NewDifficulty())

	assert.Equal(t, 9, attr.ObjectCount)
	assert.Equal(t, 3, attr.Sliders)
	assert.Equal(t, 6, attr.Circles)
	assert.GreaterOrEqual(t, attr.MaxCombo, 9+3)
	assert.InDelta(t, b.NewDifficulty().ARReal, attr.ApproachRate, 1e-9)
}

func TestSliderFactor(t *testing.T) {
	b := jumps(60)

	attr := NewDifficultyCalculator().CalculateSingle(b, b.NewDifficulty())

	assert.Greater(t, attr.Aim, 0.0)
	assert.LessOrEqual(t, attr.SliderFactor, 1.0)
	assert.Greater(t, attr.SliderFactor, 0.0)
}

func TestDoubleTimeIsHarder(t *testing.T) {
	b := jumps(60)
	calc := NewDifficultyCalculator()

	nm := calc.CalculateSingle(b, b.NewDifficulty())

	dt := b.NewDifficulty()
	dt.SetMods(difficulty.DoubleTime)

	assert.Greater(t, calc.CalculateSingle(b, dt).Total, nm.Total)
}

func TestRelaxDropsSpeed(t *testing.T) {
	b := jumps(60)

	rx := b.NewDifficulty()
	rx.SetMods(difficulty.Relax)

	attr := NewDifficultyCalculator().CalculateSingle(b, rx)
	assert.Zero(t, attr.Speed)
	assert.Greater(t, attr.Aim, 0.0)
}

func TestStepMatchesSingle(t *testing.T) {
	b := jumps(30)
	calc := NewDifficultyCalculator()

	steps := calc.CalculateStep(b, b.NewDifficulty())
	require.Len(t, steps, 30)

	single := calc.CalculateSingle(b, b.NewDifficulty())
	last := steps[len(steps)-1]

	assert.InDelta(t, single.Total, last.Total, 1e-9)
	assert.InDelta(t, single.Aim, last.Aim, 1e-9)
	assert.Equal(t, single.MaxCombo, last.MaxCombo)
}

func TestSectionRollover(t *testing.T) {
	// the last object lands three and a half sections after the previous one
	b := circles(0, 100, 1500)

	peaks := NewDifficultyCalculator().CalculateStrainPeaks(b, b.NewDifficulty())
	require.Len(t, peaks.Speed, 4)
	require.Len(t, peaks.Total, 4)

	first := peaks.Speed[0]
	require.Greater(t, first, 0.0)

	// sections without objects hold the strain of the object at 100 decayed to their start
	assert.InDelta(t, first*math.Pow(0.3, 0.3), peaks.Speed[1], 1e-9)
	assert.InDelta(t, first*math.Pow(0.3, 0.7), peaks.Speed[2], 1e-9)
}
