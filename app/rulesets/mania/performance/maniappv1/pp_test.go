package maniappv1

import (
	"math"
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

func TestScoreTiers(t *testing.T) {
	diff := difficulty.NewDifficulty(5, 4, 5, 5)

	strainAt := func(score float64) float64 {
		return NewPPCalculator().Calculate(attributes(), api.ScoreState{Score: score}, diff).Strain
	}

	assert.Zero(t, strainAt(400000))
	assert.Zero(t, strainAt(500000))
	assert.Less(t, strainAt(650000), strainAt(750000))
	assert.InDelta(t, 1.05/0.3, strainAt(-1)/strainAt(600000), 1e-4)
}

func TestAccuracyValue(t *testing.T) {
	result := NewPPCalculator().Calculate(attributes(), api.ScoreState{Score: -1}, difficulty.NewDifficulty(5, 4, 5, 5))

	// OD 5 gives a 49 ms window
	assert.InDelta(t, math.Pow(150.0/49, 1.8)*2.5, result.Acc, 1e-3)

	worse := NewPPCalculator().Calculate(attributes(), api.ScoreState{Score: -1, CountPerfect: 90, CountOk: 10}, difficulty.NewDifficulty(5, 4, 5, 5))
	assert.Less(t, worse.Acc, result.Acc)
}

func TestPartialPlayExtrapolatesScore(t *testing.T) {
	attr := api.Attributes{Total: 3, ObjectCount: 50, ChartObjectCount: 100}

	full := difficulty.NewDifficulty(5, 4, 5, 5)

	partial := difficulty.NewDifficulty(5, 4, 5, 5)
	partial.PassedObjects = 50

	state := api.ScoreState{Score: 450000}

	assert.Zero(t, NewPPCalculator().Calculate(attr, state, full).Strain)
	assert.Positive(t, NewPPCalculator().Calculate(attr, state, partial).Strain)
}
