package osu2018

import (
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/legacy"
	"github.com/Givikap120/strainarchive/framework/math/vector"
	"github.com/stretchr/testify/assert"
)

func TestStrainTimeFloor(t *testing.T) {
	prev := legacy.Object{Time: 100}
	current := legacy.Object{Time: 100}

	o := NewDifficultyObject(current, prev, 1, 1)

	assert.Equal(t, float32(0), o.Delta)
	assert.Equal(t, minStrainTime, o.StrainTime)
}

func TestTravelIsScaled(t *testing.T) {
	prev := legacy.Object{LazyEndPosition: vector.NewVec2f(0, 0), LazyTravelDistance: 20}
	current := legacy.Object{Time: 100, Position: vector.NewVec2f(30, 40)}

	assert.InDelta(t, 140, NewDifficultyObject(current, prev, 1, 2).Distance, 1e-4)
}

func TestSectionsStartAtTwoLengths(t *testing.T) {
	b := beatmap.NewBeatmap(beatmap.ModeOsu)

	for i, time := range []float64{0, 100, 700, 900} {
		b.HitObjects = append(b.HitObjects, objects.NewCircle(time, vector.NewVec2f(float32(i)*50, 0)))
	}

	calc := NewDifficultyCalculator()
	attr := calc.CalculateSingle(b, b.NewDifficulty())

	assert.Greater(t, attr.Aim, 0.0)
	assert.Greater(t, attr.Speed, 0.0)
	assert.Equal(t, attr, calc.CalculateSingle(b, b.NewDifficulty()))
	assert.Equal(t, 4, attr.Circles)
}
