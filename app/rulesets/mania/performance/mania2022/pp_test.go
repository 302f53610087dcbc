package mania2022

import (
	"math"
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/mania/performance/api"
	"github.com/stretchr/testify/assert"
)

func perfectPlay() api.ScoreState {
	return api.ScoreState{Score: -1, CountPerfect: -1}
}

func TestPerformanceNoHits(t *testing.T) {
	result := NewPPCalculator().Calculate(api.Attributes{}, perfectPlay(), difficulty.NewDifficulty(5, 4, 5, 5))
	assert.Zero(t, result.Total)
}

func TestPerfectPlay(t *testing.T) {
	attr := api.Attributes{Total: 3, ObjectCount: 1500}

	result := NewPPCalculator().Calculate(attr, perfectPlay(), difficulty.NewDifficulty(5, 4, 5, 5))

	expected := math.Pow(2.85, 2.2) * 1.1
	assert.InDelta(t, expected, result.Strain, 1e-9)
	assert.InDelta(t, expected*8, result.Total, 1e-9)
	assert.Zero(t, result.Acc)
}

func TestGreatsAreWorthLess(t *testing.T) {
	attr := api.Attributes{Total: 3, ObjectCount: 1500}
	diff := difficulty.NewDifficulty(5, 4, 5, 5)

	perfect := NewPPCalculator().Calculate(attr, perfectPlay(), diff)
	greats := NewPPCalculator().Calculate(attr, api.ScoreState{CountGreat: 1500}, diff)

	assert.InDelta(t, 0.6875, greats.Total/perfect.Total, 1e-9)
}

func TestLowAccuracyIsWorthless(t *testing.T) {
	attr := api.Attributes{Total: 3, ObjectCount: 100}

	result := NewPPCalculator().Calculate(attr, api.ScoreState{CountPerfect: 50, CountOk: 50}, difficulty.NewDifficulty(5, 4, 5, 5))

	assert.Zero(t, result.Total)
}

func TestModMultipliers(t *testing.T) {
	attr := api.Attributes{Total: 3, ObjectCount: 1500}

	nm := NewPPCalculator().Calculate(attr, perfectPlay(), difficulty.NewDifficulty(5, 4, 5, 5))

	nf := difficulty.NewDifficulty(5, 4, 5, 5)
	nf.SetMods(difficulty.NoFail | difficulty.Easy)

	assert.InDelta(t, nm.Total*0.75*0.5, NewPPCalculator().Calculate(attr, perfectPlay(), nf).Total, 1e-9)
}
