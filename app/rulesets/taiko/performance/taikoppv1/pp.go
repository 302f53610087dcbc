package taikoppv1

import (
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/api"
	"github.com/Givikap120/strainarchive/framework/math/math32"
)

// PPv2 : structure to store ppv2 values
type PPv2 struct {
	attribs api.Attributes
	state   api.ScoreState
	diff    *difficulty.Difficulty

	totalHits float32
	accuracy  float32
}

func NewPPCalculator() *PPv2 {
	return &PPv2{}
}

// Calculate rates a play, negative CountGreat and MaxCombo in state are filled in as a full combo
func (pp *PPv2) Calculate(attribs api.Attributes, state api.ScoreState, diff *difficulty.Difficulty) api.PerformanceAttributes {
	pp.attribs = attribs
	pp.diff = diff
	pp.state = state.Fill(attribs.MaxCombo)
	pp.totalHits = float32(pp.state.TotalHits())

	if pp.totalHits == 0 {
		return api.PerformanceAttributes{Difficulty: attribs}
	}

	pp.accuracy = float32(pp.state.Accuracy())

	multiplier := float32(1.1)

	if diff.CheckModActive(difficulty.NoFail) {
		multiplier *= 0.9
	}

	if diff.CheckModActive(difficulty.Hidden) {
		multiplier *= 1.1
	}

	strainValue := pp.computeStrainValue()
	accValue := pp.computeAccuracyValue()

	totalValue := math32.Pow(math32.Pow(strainValue, 1.1)+math32.Pow(accValue, 1.1), 1/1.1) * multiplier

	return api.PerformanceAttributes{
		Difficulty:         attribs,
		Strain:             float64(strainValue),
		Acc:                float64(accValue),
		Total:              float64(totalValue),
		EffectiveMissCount: float64(pp.state.CountMiss),
	}
}

func (pp *PPv2) computeStrainValue() float32 {
	expBase := 5*max(float32(pp.attribs.Total)/0.0075, 1) - 4
	strainValue := expBase * expBase / 100000

	// longer maps are worth more
	lengthBonus := 1 + 0.1*min(pp.totalHits/1500, 1)
	strainValue *= lengthBonus

	strainValue *= math32.Pow(0.985, float32(pp.state.CountMiss))

	if pp.diff.CheckModActive(difficulty.Hidden) {
		strainValue *= 1.025
	}

	if pp.diff.CheckModActive(difficulty.Flashlight) {
		strainValue *= 1.05 * lengthBonus
	}

	return strainValue * pp.accuracy
}

func (pp *PPv2) computeAccuracyValue() float32 {
	hitWindow := float32(pp.attribs.GreatHitWindow)
	if hitWindow <= 0 {
		return 0
	}

	return math32.Pow(150/hitWindow, 1.1) * math32.Pow(pp.accuracy, 15) * 22 * min(math32.Pow(pp.totalHits/1500, 0.3), 1.15)
}
