package maniappv1

import (
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/app/rulesets/mania/performance/api"
	"github.com/Givikap120/strainarchive/framework/math/math32"
	"github.com/Givikap120/strainarchive/framework/math/vector"
	"github.com/stretchr/testify/assert"
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

	assert.Equal(t, api.Attributes{}, NewDifficultyCalculator().CalculateSingle(b, b.NewDifficulty()))
}

func TestTwoObjects(t *testing.T) {
	b := chart(4, note{start: 0}, note{start: 500, column: 1})

	attr := NewDifficultyCalculator().CalculateSingle(b, b.NewDifficulty())

	expected := (3 + math32.Pow(0.3, 0.5)) * StarScalingFactor
	assert.InDelta(t, float64(expected), attr.Total, 1e-5)
	assert.Equal(t, 4, attr.Columns)
	assert.Equal(t, 2, attr.MaxCombo)
}

func TestHeldNotesAddStrain(t *testing.T) {
	held := chart(4, note{start: 0, column: 2}, note{start: 100, end: 1000}, note{start: 500, column: 1})
	tapped := chart(4, note{start: 0, column: 2}, note{start: 100}, note{start: 500, column: 1})

	calc := NewDifficultyCalculator()

	assert.Greater(t, calc.CalculateSingle(held, held.NewDifficulty()).Total, calc.CalculateSingle(tapped, tapped.NewDifficulty()).Total)
}

func TestDoubleTimeIsHarder(t *testing.T) {
	b := stream(4, 200, 150)

	nm := b.NewDifficulty()

	dt := b.NewDifficulty()
	dt.SetMods(difficulty.DoubleTime)

	calc := NewDifficultyCalculator()

	assert.Greater(t, calc.CalculateSingle(b, dt).Total, calc.CalculateSingle(b, nm).Total)
}

func TestPassedObjects(t *testing.T) {
	b := stream(4, 200, 150)

	diff := b.NewDifficulty()
	diff.PassedObjects = 50

	attr := NewDifficultyCalculator().CalculateSingle(b, diff)

	assert.Equal(t, 50, attr.ObjectCount)
	assert.Equal(t, 200, attr.ChartObjectCount)
	assert.Less(t, attr.Total, NewDifficultyCalculator().CalculateSingle(b, b.NewDifficulty()).Total)
}
