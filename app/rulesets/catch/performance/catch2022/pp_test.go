package catch2022

import (
	"math"
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/catch/performance/api"
	"github.com/stretchr/testify/assert"
)

var testAttributes = api.Attributes{
	Total:        0.0049 * 201,
	ApproachRate: 9,
	Fruits:       80,
	Droplets:     20,
	TinyDroplets: 100,
}

func calculate(attrs api.Attributes, state api.ScoreState, mods difficulty.Modifier) float64 {
	diff := difficulty.NewDifficulty(5, 5, 5, 5)
	diff.SetMods(mods)

	return NewPPCalculator().Calculate(attrs, state, diff).Total
}

func TestPerfectPlay(t *testing.T) {
	expected := 1001.0 * 1001 / 100000 * (0.95 + 0.3*100.0/2500)

	assert.InDelta(t, expected, calculate(testAttributes, api.NewScoreState(), 0), 1e-6)
}

func TestTinyDropletMisses(t *testing.T) {
	state := api.NewScoreState()
	state.TinyDropletMisses = 20

	ratio := calculate(testAttributes, state, 0) / calculate(testAttributes, api.NewScoreState(), 0)

	assert.InDelta(t, math.Pow(0.9, 5.5), ratio, 1e-9)
}

func TestComboScaling(t *testing.T) {
	state := api.NewScoreState()
	state.MaxCombo = 50

	ratio := calculate(testAttributes, state, 0) / calculate(testAttributes, api.NewScoreState(), 0)

	assert.InDelta(t, math.Pow(0.5, 0.8), ratio, 1e-9)
}

func TestHighApproachRate(t *testing.T) {
	attrs := testAttributes
	attrs.ApproachRate = 10.5

	nm := calculate(testAttributes, api.NewScoreState(), 0)

	assert.InDelta(t, 1.2, calculate(attrs, api.NewScoreState(), 0)/nm, 1e-9)
	assert.InDelta(t, 1.2*1.03, calculate(attrs, api.NewScoreState(), difficulty.Hidden)/nm, 1e-9)
	assert.InDelta(t, 1.125, calculate(testAttributes, api.NewScoreState(), difficulty.Hidden)/nm, 1e-9)
}

func TestLongMapBonus(t *testing.T) {
	attrs := testAttributes
	attrs.Fruits = 5000

	perfect := calculate(attrs, api.NewScoreState(), difficulty.NoFail)
	expected := 1001.0 * 1001 / 100000 * (1.25 + math.Log10(5020.0/2500)*0.475) * 0.9

	assert.InDelta(t, expected, perfect, 1e-6)
}
