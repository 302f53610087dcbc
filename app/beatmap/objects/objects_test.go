package objects

import (
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/framework/math/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathExtendsToExpectedDistance(t *testing.T) {
	path := NewPath([]vector.Vector2f{{X: 0, Y: 0}, {X: 100, Y: 0}}, 150)

	assert.Equal(t, 150.0, path.Distance())
	assert.Equal(t, vector.NewVec2f(150, 0), path.PointAt(1))
	assert.Equal(t, vector.NewVec2f(75, 0), path.PointAt(0.5))
	assert.Equal(t, vector.NewVec2f(100, 0), path.LastControlPoint())
}

func TestPathTrimsToExpectedDistance(t *testing.T) {
	path := NewPath([]vector.Vector2f{{X: 100, Y: 0}, {X: 100, Y: 100}}, 150)

	assert.Equal(t, vector.NewVec2f(100, 50), path.PointAt(1))
	assert.Equal(t, vector.NewVec2f(0, 0), path.PointAt(-1))
}

func newTestSlider(repeats int) *Slider {
	s := NewSlider(1000, vector.NewVec2f(100, 100), []vector.Vector2f{{X: 0, Y: 0}, {X: 200, Y: 0}}, 200, repeats)
	s.ApplyTiming(500, 1, 1.4, 1, 14)

	return s
}

func TestSliderTiming(t *testing.T) {
	s := newTestSlider(1)

	assert.InDelta(t, 0.28, s.Velocity, 1e-9)
	assert.InDelta(t, 140.0, s.TickDistance, 1e-9)
	assert.InDelta(t, 1714.2857, s.EndTime, 1e-3)
	assert.Equal(t, vector.NewVec2f(300, 100), s.EndPosition)

	require.Len(t, s.Nested, 3)
	require.Len(t, s.ScorePoints, 2)

	assert.Equal(t, NestedTick, s.Nested[0].Kind)
	assert.InDelta(t, 1500.0, s.Nested[0].Time, 1e-6)
	assert.Equal(t, NestedLegacyLastTick, s.Nested[1].Kind)
	assert.InDelta(t, 1678.2857, s.Nested[1].Time, 1e-3)
	assert.Equal(t, NestedTail, s.Nested[2].Kind)
}

func TestSliderRepeats(t *testing.T) {
	s := newTestSlider(2)

	assert.Equal(t, vector.NewVec2f(100, 100), s.EndPosition)

	kinds := make([]NestedKind, 0, len(s.Nested))
	for _, n := range s.Nested {
		kinds = append(kinds, n.Kind)
	}

	assert.Equal(t, []NestedKind{NestedTick, NestedRepeat, NestedTick, NestedLegacyLastTick, NestedTail}, kinds)

	for i := 1; i < len(s.Nested); i++ {
		assert.GreaterOrEqual(t, s.Nested[i].Time, s.Nested[i-1].Time)
	}

	// second span goes back towards the head
	assert.InDelta(t, 0.3, s.ProgressAt(s.StartTime+s.SpanDuration*1.7), 1e-9)
}

func TestHardRockReflection(t *testing.T) {
	c := NewCircle(0, vector.NewVec2f(10, 20))

	assert.Equal(t, vector.NewVec2f(10, 364), c.GetStackedStartPositionMod(difficulty.HardRock))
	assert.Equal(t, vector.NewVec2f(10, 20), c.GetStackedStartPositionMod(difficulty.Hidden))
}

func TestTaikoSounds(t *testing.T) {
	assert.True(t, SoundClap.IsRim())
	assert.True(t, (SoundWhistle | SoundFinish).IsRim())
	assert.False(t, SoundNormal.IsRim())
	assert.True(t, SoundFinish.IsStrong())
}
