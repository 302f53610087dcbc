package catchppv1

import (
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/catch/performance/api"
	"github.com/Givikap120/strainarchive/framework/math/math32"
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

// Calculate rates a play mostly by star rating, unknown counts in state are derived first
func (pp *PPv2) Calculate(attribs api.Attributes, state api.ScoreState, diff *difficulty.Difficulty) api.PerformanceAttributes {
	pp.attribs = attribs
	pp.state = state.Fill(attribs)
	pp.diff = diff

	maxCombo := float32(attribs.MaxCombo())

	// Relying heavily on aim
	value := 5*max(float32(attribs.Total)/0.0049, 1) - 4
	value = value * value / 100000

	comboHits := float32(pp.state.ComboHits())
	if comboHits == 0 {
		comboHits = maxCombo
	}

	lengthBonus := 0.95 + 0.4*min(comboHits/3000, 1)
	if comboHits > 3000 {
		lengthBonus += math32.Log10(comboHits/3000) * 0.5
	}

	value *= lengthBonus

	value *= math32.Pow(0.97, float32(pp.state.Misses))

	if maxCombo > 0 {
		value *= min(math32.Pow(float32(pp.state.MaxCombo)/maxCombo, 0.8), 1)
	}

	ar := float32(attribs.ApproachRate)

	arFactor := float32(1)
	switch {
	case ar > 9:
		arFactor += 0.1 * (ar - 9)
	case ar < 8:
		arFactor += 0.025 * (8 - ar)
	}

	value *= arFactor

	if diff.CheckModActive(difficulty.Hidden) {
		value *= 1.05 + 0.075*(10-min(ar, 10))
	}

	if diff.CheckModActive(difficulty.Flashlight) {
		value *= 1.35 * lengthBonus
	}

	value *= math32.Pow(float32(pp.state.Accuracy()), 5.5)

	if diff.CheckModActive(difficulty.NoFail) {
		value *= 0.9
	}

	return api.PerformanceAttributes{
		Difficulty: attribs,
		Total:      float64(value),
	}
}
