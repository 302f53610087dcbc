package catchppv1

import (
	"math"
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/app/rulesets/catch/performance/api"
	"github.com/Givikap120/strainarchive/framework/math/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fruitChart(xs ...float32) *beatmap.Beatmap {
	b := beatmap.NewBeatmap(beatmap.ModeCatch)

	for i, x := range xs {
		b.HitObjects = append(b.HitObjects, objects.NewCircle(float64(i)*500, vector.NewVec2f(x, 192)))
	}

	return b
}

func TestSingleObject(t *testing.T) {
	b := fruitChart(100)

	assert.Equal(t, api.Attributes{}, NewDifficultyCalculator().CalculateSingle(b, b.NewDifficulty()))
}

func TestStandingStill(t *testing.T) {
	b := fruitChart(100, 100, 100)

	attr := NewDifficultyCalculator().CalculateSingle(b, b.NewDifficulty())

	expected := math.Sqrt(1+0.94*math.Pow(0.2, 0.75)) * StarScalingFactor
	assert.InDelta(t, expected, attr.Total, 1e-6)
	assert.Equal(t, 3, attr.Fruits)
	assert.Equal(t, 3, attr.MaxCombo())
	assert.InDelta(t, 5.0, attr.ApproachRate, 1e-9)
}

func TestMovementIsHarder(t *testing.T) {
	still := fruitChart(256, 256, 256, 256, 256, 256)
	moving := fruitChart(100, 400, 100, 400, 100, 400)

	calc := NewDifficultyCalculator()

	assert.Greater(t, calc.CalculateSingle(moving, moving.NewDifficulty()).Total, calc.CalculateSingle(still, still.NewDifficulty()).Total)
}

func TestStrainPeaks(t *testing.T) {
	b := fruitChart(100, 100, 100)

	peaks := NewDifficultyCalculator().CalculateStrainPeaks(b, b.NewDifficulty())

	require.Len(t, peaks.Movement, 2)
	assert.Equal(t, 1.0, peaks.Movement[0])
	assert.InDelta(t, math.Pow(0.2, 0.75), peaks.Movement[1], 1e-9)
}

func TestJuiceStream(t *testing.T) {
	b := beatmap.NewBeatmap(beatmap.ModeCatch)
	b.HitObjects = append(b.HitObjects,
		objects.NewSlider(0, vector.NewVec2f(100, 192), []vector.Vector2f{{X: 0, Y: 0}, {X: 200, Y: 0}}, 200, 1),
		objects.NewCircle(2000, vector.NewVec2f(300, 192)),
	)
	b.PrepareSliders()

	attr := NewDifficultyCalculator().CalculateSingle(b, b.NewDifficulty())

	assert.Equal(t, 3, attr.Fruits)
	assert.Equal(t, 1, attr.Droplets)
	assert.InDelta(t, 18, attr.TinyDroplets, 1)
	assert.Positive(t, attr.Total)
}

func TestRepeatTicksKeepFirstSpanTimes(t *testing.T) {
	b := beatmap.NewBeatmap(beatmap.ModeCatch)
	b.HitObjects = append(b.HitObjects,
		objects.NewSlider(0, vector.NewVec2f(100, 192), []vector.Vector2f{{X: 0, Y: 0}, {X: 200, Y: 0}}, 200, 2),
	)
	b.PrepareSliders()

	catchObjects, counts := buildObjects(b, false, 1)

	require.Len(t, catchObjects, 5)
	assert.Equal(t, catchObjects[1].Time, catchObjects[3].Time)
	assert.Equal(t, 3, counts.fruits)
	assert.Equal(t, 2, counts.droplets)
}

func TestPassedObjects(t *testing.T) {
	b := fruitChart(100, 400, 100, 400, 100, 400)

	diff := b.NewDifficulty()
	diff.PassedObjects = 3

	attr := NewDifficultyCalculator().CalculateSingle(b, diff)

	assert.Equal(t, 3, attr.Fruits)
	assert.Less(t, attr.Total, NewDifficultyCalculator().CalculateSingle(b, b.NewDifficulty()).Total)
}

func TestHardRockAdjustsApproachRate(t *testing.T) {
	b := fruitChart(100, 100, 100)

	diff := b.NewDifficulty()
	diff.SetMods(difficulty.HardRock)

	assert.InDelta(t, 7.0, NewDifficultyCalculator().CalculateSingle(b, diff).ApproachRate, 1e-9)
}
