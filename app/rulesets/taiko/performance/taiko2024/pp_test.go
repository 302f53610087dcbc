package taiko2024

import (
	"math"
	"strings"
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullCombo() api.ScoreState {
	return api.ScoreState{MaxCombo: -1, CountGreat: -1}
}

func testAttributes() api.Attributes {
	return api.Attributes{Total: 5, MonoStaminaFactor: 0.1, GreatHitWindow: 32, OkHitWindow: 74, MaxCombo: 1000}
}

func TestPerformanceNoHits(t *testing.T) {
	result := NewPPCalculator().Calculate(api.Attributes{}, fullCombo(), difficulty.NewDifficulty(5, 5, 5, 5))
	assert.Zero(t, result.Total)
}

func TestEstimatedUnstableRate(t *testing.T) {
	nm := difficulty.NewDifficulty(5, 5, 6, 5)

	ss := NewPPCalculator().Calculate(testAttributes(), fullCombo(), nm)

	n := 1000.0
	pLower := (n + z*z/2 - z*math.Sqrt(z*z/4)) / (n + z*z)
	expected := 32 / (math.Sqrt2 * math.Erfinv(pLower)) * 10

	assert.InDelta(t, expected, ss.EstimatedUnstableRate, 1e-6)

	oks := fullCombo()
	oks.CountOk = 100

	withOks := NewPPCalculator().Calculate(testAttributes(), oks, nm)
	assert.Greater(t, withOks.EstimatedUnstableRate, ss.EstimatedUnstableRate)
	assert.Less(t, withOks.Acc, ss.Acc)
	assert.Less(t, withOks.Total, ss.Total)
}

func TestOnlyOks(t *testing.T) {
	state := api.ScoreState{MaxCombo: -1, CountGreat: 0, CountOk: 1000}

	result := NewPPCalculator().Calculate(testAttributes(), state, difficulty.NewDifficulty(5, 5, 6, 5))
	assert.Greater(t, result.EstimatedUnstableRate, 0.0)
	assert.Greater(t, result.Total, 0.0)
}

func TestAllMissesHaveNoEstimate(t *testing.T) {
	state := api.ScoreState{MaxCombo: -1, CountGreat: 0, CountMiss: 1000}

	result := NewPPCalculator().Calculate(testAttributes(), state, difficulty.NewDifficulty(5, 5, 6, 5))
	assert.Zero(t, result.EstimatedUnstableRate)
	assert.Zero(t, result.Total)
	assert.Zero(t, result.EffectiveMissCount)
}

func TestMissesLowerPerformance(t *testing.T) {
	b := chart(strings.Repeat("ddkdkkdk", 40), 120)
	diff := b.NewDifficulty()
	attr := NewDifficultyCalculator().CalculateSingle(b, diff)

	fc := NewPPCalculator().Calculate(attr, fullCombo(), diff)
	require.Greater(t, fc.Total, 0.0)

	missed := fullCombo()
	missed.CountMiss = 4

	result := NewPPCalculator().Calculate(attr, missed, diff)
	assert.Less(t, result.Strain, fc.Strain)
	assert.InDelta(t, 1000.0/float64(attr.MaxCombo-4)*4, result.EffectiveMissCount, 1e-9)
}

func TestHiddenOnConverts(t *testing.T) {
	hd := difficulty.NewDifficulty(5, 5, 6, 5)
	hd.SetMods(difficulty.Hidden)

	native := testAttributes()
	convert := testAttributes()
	convert.IsConvert = true

	nativeResult := NewPPCalculator().Calculate(native, fullCombo(), hd)
	convertResult := NewPPCalculator().Calculate(convert, fullCombo(), hd)

	assert.InDelta(t, nativeResult.Total/1.075, convertResult.Total, 1e-9)
}

func TestScoreStateFromAccuracy(t *testing.T) {
	state := api.ScoreStateFromAccuracy(0.95, 1000, 10)

	assert.Equal(t, 10, state.CountMiss)
	assert.Equal(t, 990, state.CountGreat+state.CountOk)
	assert.InDelta(t, 0.95, state.Accuracy(), 0.001)
}
