package osu2019

import (
	"math"
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/api"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/legacy"
	"github.com/Givikap120/strainarchive/framework/math/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zigzag(n int, spacing float64, dx float32) *beatmap.Beatmap {
	b := beatmap.NewBeatmap(beatmap.ModeOsu)

	for i := 0; i < n; i++ {
		b.HitObjects = append(b.HitObjects, objects.NewCircle(float64(i)*spacing, vector.NewVec2f(float32(i%2)*dx, 0)))
	}

	return b
}

func TestFewerThanTwoObjects(t *testing.T) {
	b := zigzag(1, 100, 100)
	assert.Equal(t, api.Attributes{}, NewDifficultyCalculator().CalculateSingle(b, b.NewDifficulty()))
}

func TestAngleOnlyFromThirdObject(t *testing.T) {
	a := legacy.Object{Position: vector.NewVec2f(0, 0), LazyEndPosition: vector.NewVec2f(0, 0)}
	b := legacy.Object{Time: 100, Position: vector.NewVec2f(100, 0), LazyEndPosition: vector.NewVec2f(100, 0)}
	c := legacy.Object{Time: 200, Position: vector.NewVec2f(0, 0), LazyEndPosition: vector.NewVec2f(0, 0)}

	assert.False(t, NewDifficultyObject(b, a, nil, 1, 1).HasAngle)

	o := NewDifficultyObject(c, b, &a, 1, 1)
	require.True(t, o.HasAngle)
	assert.InDelta(t, 0, o.Angle, 1e-6)
}

func TestWideAnglesGetAimBonus(t *testing.T) {
	prev := &DifficultyObject{JumpDistance: 200, StrainTime: 150}

	straight := DifficultyObject{JumpDistance: 200, StrainTime: 150, Angle: math.Pi, HasAngle: true}
	back := DifficultyObject{JumpDistance: 200, StrainTime: 150, Angle: 0, HasAngle: true}

	assert.Greater(t, aimValueOf(straight, prev), aimValueOf(back, prev))
}

func TestSpeedUpIncreasesStars(t *testing.T) {
	b := zigzag(40, 150, 120)
	calc := NewDifficultyCalculator()

	nm := calc.CalculateSingle(b, b.NewDifficulty())

	diff := b.NewDifficulty()
	diff.SetCustomSpeed(1.5)

	fast := calc.CalculateSingle(b, diff)

	assert.Greater(t, fast.Total, nm.Total)
	assert.Equal(t, 40, nm.ObjectCount)
	assert.Equal(t, nm, calc.CalculateSingle(b, b.NewDifficulty()))
}
