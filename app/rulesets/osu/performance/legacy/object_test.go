package legacy

import (
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/api"
	"github.com/Givikap120/strainarchive/framework/math/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalingFactor(t *testing.T) {
	assert.InDelta(t, 52.0/32, ScalingFactor(Radius(5)), 1e-6)

	// cs 10 has radius 9.6, the bonus is capped at 5/50
	assert.InDelta(t, 52/9.6*1.1, ScalingFactor(Radius(10)), 1e-4)
}

func TestCreateObjectsSkipsSpinners(t *testing.T) {
	hitObjects := []objects.IHitObject{
		objects.NewCircle(0, vector.NewVec2f(0, 0)),
		objects.NewSpinner(100, 500),
		objects.NewCircle(600, vector.NewVec2f(10, 0)),
	}

	var attr api.Attributes

	result := CreateObjects(hitObjects, 3, Radius(4), &attr)

	require.Len(t, result, 2)
	assert.Equal(t, 3, attr.ObjectCount)
	assert.Equal(t, 1, attr.Spinners)
	assert.Equal(t, 2, attr.Circles)
}

func TestLazySlider(t *testing.T) {
	s := objects.NewSlider(0, vector.NewVec2f(100, 100), []vector.Vector2f{{}, {X: 300}}, 300, 1)
	s.ApplyTiming(500, 1, 1.4, 1, 14)

	var attr api.Attributes

	result := CreateObjects([]objects.IHitObject{s}, 1, Radius(4), &attr)
	require.Len(t, result, 1)

	o := result[0]
	assert.True(t, o.IsSlider)
	assert.Greater(t, o.LazyTravelDistance, float32(0))

	// the cursor trails the ball by the follow radius
	followRadius := Radius(4) * 3
	assert.InDelta(t, 300-o.LazyTravelDistance, followRadius, 30)
	assert.InDelta(t, 100, o.LazyEndPosition.Y, 1e-3)
	assert.Equal(t, 1+len(s.ScorePoints), attr.MaxCombo)
}

func TestAngle(t *testing.T) {
	a := Object{Position: vector.NewVec2f(0, 0), LazyEndPosition: vector.NewVec2f(0, 0)}
	b := Object{Position: vector.NewVec2f(100, 0), LazyEndPosition: vector.NewVec2f(100, 0)}
	c := Object{Position: vector.NewVec2f(100, 100), LazyEndPosition: vector.NewVec2f(100, 100)}

	_, ok := Angle(nil, a, b)
	assert.False(t, ok)

	angle, ok := Angle(&a, b, c)
	assert.True(t, ok)
	assert.InDelta(t, 1.5707963, angle, 1e-5)
}

func TestAdjustedOverallDifficulty(t *testing.T) {
	assert.InDelta(t, 8, AdjustedOverallDifficulty(8, 1), 1e-5)

	// floor(32) / 1.5 = 21.333
	assert.InDelta(t, (80-32.0/1.5)/6, AdjustedOverallDifficulty(8, 1.5), 1e-4)
}
