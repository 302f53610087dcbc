package taikoppv1

import (
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/api"
	"github.com/stretchr/testify/assert"
)

func TestPerformance(t *testing.T) {
	attr := api.Attributes{Total: 3.5, GreatHitWindow: 35, MaxCombo: 1000}
	nm := difficulty.NewDifficulty(5, 5, 5, 5)

	fc := NewPPCalculator().Calculate(attr, api.ScoreState{MaxCombo: -1, CountGreat: -1}, nm)
	assert.Greater(t, fc.Strain, 0.0)
	assert.Greater(t, fc.Acc, 0.0)

	missed := NewPPCalculator().Calculate(attr, api.ScoreState{MaxCombo: -1, CountGreat: -1, CountMiss: 10}, nm)
	assert.Less(t, missed.Total, fc.Total)
	assert.Equal(t, 10.0, missed.EffectiveMissCount)

	nf := difficulty.NewDifficulty(5, 5, 5, 5)
	nf.SetMods(difficulty.NoFail)
	assert.InDelta(t, fc.Total*0.9, NewPPCalculator().Calculate(attr, api.ScoreState{MaxCombo: -1, CountGreat: -1}, nf).Total, 1e-4)
}

func TestZeroHitWindowHasNoAccuracyValue(t *testing.T) {
	attr := api.Attributes{Total: 3.5, MaxCombo: 500}

	result := NewPPCalculator().Calculate(attr, api.ScoreState{MaxCombo: -1, CountGreat: -1}, difficulty.NewDifficulty(5, 5, 5, 5))
	assert.Zero(t, result.Acc)
	assert.Greater(t, result.Total, 0.0)
}
