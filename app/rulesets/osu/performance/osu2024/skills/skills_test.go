package skills

import (
	"math"
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024/preprocessing"
	"github.com/Givikap120/strainarchive/framework/math/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	time float64
	x, y float32
}

func diffObjects(d *difficulty.Difficulty, points ...point) []*preprocessing.DifficultyObject {
	hitObjects := make([]objects.IHitObject, 0, len(points))
	for _, p := range points {
		hitObjects = append(hitObjects, objects.NewCircle(p.time, vector.NewVec2f(p.x, p.y)))
	}

	return preprocessing.CreateDifficultyObjects(hitObjects, d)
}

func TestSpeedSectionsCarryDecayedStrain(t *testing.T) {
	d := difficulty.NewDifficulty(5, 5, 8, 9)

	skill := NewSpeedSkill(d, false)
	for _, o := range diffObjects(d, point{0, 100, 100}, point{100, 100, 100}, point{900, 100, 100}) {
		skill.Process(o)
	}

	// 100ms stacked gives 1000/100, the 800ms gap gives 1000/800
	first := 10 * speedSkillMultiplier
	second := first*math.Pow(speedStrainDecayBase, 0.8) + 1.25*speedSkillMultiplier

	peaks := skill.GetCurrentStrainPeaks()
	require.Len(t, peaks, 3)

	assert.InDelta(t, first, peaks[0], 1e-9)
	assert.InDelta(t, first*math.Pow(speedStrainDecayBase, 0.3), peaks[1], 1e-9)
	assert.InDelta(t, second, peaks[2], 1e-9)

	reduced := func(i int) float64 {
		return 0.75 + 0.25*math.Log10(1+9*float64(i)/5)
	}

	want := peaks[0]*reduced(0) + peaks[1]*reduced(1)*0.9 + peaks[2]*reduced(2)*0.81

	assert.InDelta(t, want, skill.DifficultyValue(), 1e-9)
	relevant := 1/(1+math.Exp(-6)) + 1/(1+math.Exp(-(second/first*12-6)))
	assert.InDelta(t, relevant, skill.RelevantNoteCount(), 1e-9)
}

func TestSpeedStepCalcMatchesFull(t *testing.T) {
	d := difficulty.NewDifficulty(5, 5, 8, 9)

	points := make([]point, 0, 40)
	for i := 0; i < 40; i++ {
		points = append(points, point{float64(i) * 120, float32(100 + (i%2)*200), 150})
	}

	full := NewSpeedSkill(d, false)
	step := NewSpeedSkill(d, true)

	for _, o := range diffObjects(d, points...) {
		full.Process(o)
		step.Process(o)
	}

	assert.InDelta(t, full.DifficultyValue(), step.DifficultyValue(), 1e-9)
}

func TestAimStrainFromStraightJumps(t *testing.T) {
	d := difficulty.NewDifficulty(5, 5, 8, 9)

	skill := NewAimSkill(d, true, false)
	for _, o := range diffObjects(d, point{0, 100, 100}, point{100, 200, 100}, point{200, 300, 100}, point{300, 400, 100}) {
		skill.Process(o)
	}

	// only the third jump has two objects behind it
	velocity := 100 * preprocessing.NormalizedRadius / 32.01312 / 100

	peaks := skill.GetCurrentStrainPeaks()
	require.Len(t, peaks, 1)
	assert.InDelta(t, velocity*aimSkillMultiplier, peaks[0], 1e-2)

	assert.InDelta(t, 0.75*peaks[0], skill.DifficultyValue(), 1e-9)
	assert.Positive(t, skill.CountDifficultStrains())
}

func TestEmptySkill(t *testing.T) {
	skill := NewSpeedSkill(difficulty.NewDifficulty(5, 5, 8, 9), false)

	assert.Zero(t, skill.DifficultyValue())
	assert.Zero(t, skill.CountDifficultStrains())
	assert.Zero(t, skill.RelevantNoteCount())
}
