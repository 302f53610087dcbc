package mania2022

import (
	"math"
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/app/rulesets/mania/performance/api"
	"github.com/Givikap120/strainarchive/app/rulesets/strain"
	"github.com/Givikap120/strainarchive/framework/math/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	start, end float64
	column     int
}

func chart(keys int, notes ...note) *beatmap.Beatmap {
	b := beatmap.NewBeatmap(beatmap.ModeMania)
	b.CircleSize = float64(keys)

	width := 512 / float32(keys)

	for _, n := range notes {
		pos := vector.NewVec2f(width*(float32(n.column)+0.5), 192)

		if n.end > n.start {
			b.HitObjects = append(b.HitObjects, objects.NewHoldNote(n.start, n.end, pos))
		} else {
			b.HitObjects = append(b.HitObjects, objects.NewCircle(n.start, pos))
		}
	}

	return b
}

func stream(keys, count int, interval float64) *beatmap.Beatmap {
	notes := make([]note, count)
	for i := range notes {
		notes[i] = note{start: float64(i) * interval, column: i % keys}
	}

	return chart(keys, notes...)
}

func TestSingleObject(t *testing.T) {
	b := chart(4, note{start: 0})

	attr := NewDifficultyCalculator().CalculateSingle(b, b.NewDifficulty())

	assert.Equal(t, api.Attributes{}, attr)
	assert.Empty(t, NewDifficultyCalculator().CalculateStrainPeaks(b, b.NewDifficulty()).Strain)
}

func TestTwoObjects(t *testing.T) {
	b := chart(4, note{start: 0}, note{start: 500, column: 1})

	attr := NewDifficultyCalculator().CalculateSingle(b, b.NewDifficulty())

	assert.InDelta(t, (3+math.Sqrt(0.3))*StarScalingFactor, attr.Total, 1e-12)
	assert.Equal(t, 2, attr.MaxCombo)
}

func TestCloseReleasesAreEasier(t *testing.T) {
	near := chart(4, note{start: 0, column: 2}, note{start: 100, end: 1000}, note{start: 500, end: 1010, column: 1})
	far := chart(4, note{start: 0, column: 2}, note{start: 100, end: 1000}, note{start: 500, end: 1500, column: 1})

	calc := NewDifficultyCalculator()

	assert.Less(t, calc.CalculateSingle(near, near.NewDifficulty()).Total, calc.CalculateSingle(far, far.NewDifficulty()).Total)
}

func TestHoldMaxCombo(t *testing.T) {
	b := chart(4, note{start: 0}, note{start: 100, end: 1000})

	attr := NewDifficultyCalculator().CalculateSingle(b, b.NewDifficulty())

	assert.Equal(t, 1+1+9, attr.MaxCombo)
}

func TestHitWindow(t *testing.T) {
	b := stream(4, 10, 200)

	calc := NewDifficultyCalculator()

	assert.Equal(t, 49.0, calc.CalculateSingle(b, b.NewDifficulty()).GreatHitWindow)

	hr := b.NewDifficulty()
	hr.SetMods(difficulty.HardRock)
	assert.Equal(t, 35.0, calc.CalculateSingle(b, hr).GreatHitWindow)

	dt := b.NewDifficulty()
	dt.SetMods(difficulty.DoubleTime)
	assert.InDelta(t, 49.0/1.5, calc.CalculateSingle(b, dt).GreatHitWindow, 1e-12)

	b.Mode = beatmap.ModeOsu
	assert.Equal(t, 34.0, calc.CalculateSingle(b, b.NewDifficulty()).GreatHitWindow)
}

func TestStrainPeaks(t *testing.T) {
	b := stream(4, 200, 120)

	calc := NewDifficultyCalculator()

	attr := calc.CalculateSingle(b, b.NewDifficulty())
	peaks := calc.CalculateStrainPeaks(b, b.NewDifficulty())

	require.NotEmpty(t, peaks.Strain)
	assert.InDelta(t, attr.Total, strain.WeightedSum(peaks.Strain, DecayWeight), 1e-9)
}

func TestPassedObjects(t *testing.T) {
	b := stream(4, 200, 120)

	diff := b.NewDifficulty()
	diff.PassedObjects = 40

	attr := NewDifficultyCalculator().CalculateSingle(b, diff)

	assert.Equal(t, 40, attr.ObjectCount)
	assert.Equal(t, 40, attr.MaxCombo)
	assert.Less(t, attr.Total, NewDifficultyCalculator().CalculateSingle(b, b.NewDifficulty()).Total)
}
