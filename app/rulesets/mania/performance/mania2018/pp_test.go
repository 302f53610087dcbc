package mania2018

import (
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/mania/performance/api"
	"github.com/stretchr/testify/assert"
)

func attributes() api.Attributes {
	return api.Attributes{Total: 3, Columns: 4, ObjectCount: 1500, ChartObjectCount: 1500}
}

func TestPerformanceNoObjects(t *testing.T) {
	result := NewPPCalculator().Calculate(api.Attributes{}, api.ScoreState{Score: -1}, difficulty.NewDifficulty(5, 4, 5, 5))
	assert.Zero(t, result.Total)
}

func TestAccuracyValueNeedsHighScore(t *testing.T) {
	diff := difficulty.NewDifficulty(5, 4, 5, 5)

	perfect := NewPPCalculator().Calculate(attributes(), api.ScoreState{Score: -1}, diff)

	// OD 5 gives a 49 ms window
	assert.InDelta(t, (0.2-15*0.006667)*perfect.Strain, perfect.Acc, 1e-9)

	assert.Zero(t, NewPPCalculator().Calculate(attributes(), api.ScoreState{Score: 950000}, diff).Acc)
}

func TestScoreTiers(t *testing.T) {
	diff := difficulty.NewDifficulty(5, 4, 5, 5)

	strainAt := func(score float64) float64 {
		return NewPPCalculator().Calculate(attributes(), api.ScoreState{Score: score}, diff).Strain
	}

	assert.Zero(t, strainAt(500000))
	assert.InDelta(t, 1.0/0.3, strainAt(-1)/strainAt(600000), 1e-9)
	assert.InDelta(t, 0.75/0.55, strainAt(800000)/strainAt(700000), 1e-9)
}

func TestEasyWidensWindow(t *testing.T) {
	ez := difficulty.NewDifficulty(5, 4, 5, 5)
	ez.SetMods(difficulty.Easy)

	result := NewPPCalculator().Calculate(attributes(), api.ScoreState{Score: -1}, ez)

	assert.Zero(t, result.Acc)
	assert.Positive(t, result.Total)
}
