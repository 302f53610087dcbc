package catch2022

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/catch/performance/api"
)

// PPv2 : structure to store ppv2 values
type PPv2 struct {
	attribs api.Attributes
	state   api.ScoreState
	diff    *difficulty.Difficulty
}

func NewPPCalculator() *PPv2 {
	return &PPv2{}
}

func (pp *PPv2) Calculate(attribs api.Attributes, state api.ScoreState, diff *difficulty.Difficulty) api.PerformanceAttributes {
	pp.attribs = attribs
	pp.state = state.Fill(attribs)
	pp.diff = diff

	return api.PerformanceAttributes{
		Difficulty: attribs,
		Total:      pp.computeTotalValue(),
	}
}

func (pp *PPv2) computeTotalValue() float64 {
	maxCombo := float64(pp.attribs.MaxCombo())

	// Relying heavily on aim
	value := math.Pow(5*max(pp.attribs.Total/0.0049, 1)-4, 2) / 100000

	comboHits := float64(pp.state.ComboHits())
	if comboHits == 0 {
		comboHits = maxCombo
	}

	// Longer maps are worth more
	lengthBonus := 0.95 + 0.3*min(comboHits/2500, 1)
	if comboHits > 2500 {
		lengthBonus += math.Log10(comboHits/2500) * 0.475
	}

	value *= lengthBonus

	value *= math.Pow(0.97, float64(pp.state.Misses))

	if pp.state.MaxCombo > 0 {
		value *= min(math.Pow(float64(pp.state.MaxCombo), 0.8)/math.Pow(maxCombo, 0.8), 1)
	}

	value *= pp.approachRateFactor()

	if pp.diff.CheckModActive(difficulty.Hidden) {
		value *= pp.hiddenBonus()
	}

	if pp.diff.CheckModActive(difficulty.Flashlight) {
		value *= 1.35 * lengthBonus
	}

	value *= math.Pow(pp.state.Accuracy(), 5.5)

	if pp.diff.CheckModActive(difficulty.NoFail) {
		value *= 0.9
	}

	return value
}

func (pp *PPv2) approachRateFactor() float64 {
	ar := pp.attribs.ApproachRate

	switch {
	case ar > 10:
		return 1 + 0.1*(ar-9) + 0.1*(ar-10)
	case ar > 9:
		return 1 + 0.1*(ar-9)
	case ar < 8:
		return 1 + 0.025*(8-ar)
	}

	return 1
}

func (pp *PPv2) hiddenBonus() float64 {
	ar := pp.attribs.ApproachRate

	if ar <= 10 {
		return 1.05 + 0.075*(10-ar)
	}

	return 1.01 + 0.04*(11-min(ar, 11))
}
