package taiko2022

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/api"
)

// PPv2 : structure to store ppv2 values
type PPv2 struct {
	attribs api.Attributes
	state   api.ScoreState
	diff    *difficulty.Difficulty

	effectiveMissCount float64
	totalHits          int
	accuracy           float64
}

func NewPPCalculator() *PPv2 {
	return &PPv2{}
}

// Calculate rates a play, negative CountGreat and MaxCombo in state are filled in as a full combo
func (pp *PPv2) Calculate(attribs api.Attributes, state api.ScoreState, diff *difficulty.Difficulty) api.PerformanceAttributes {
	pp.attribs = attribs
	pp.diff = diff
	pp.state = state.Fill(attribs.MaxCombo)
	pp.totalHits = pp.state.TotalHits()

	if pp.totalHits == 0 {
		return api.PerformanceAttributes{Difficulty: attribs}
	}

	pp.accuracy = pp.state.Accuracy()

	if successful := pp.state.TotalSuccessfulHits(); successful > 0 {
		pp.effectiveMissCount = max(1, 1000/float64(successful)) * float64(pp.state.CountMiss)
	}

	multiplier := 1.13

	if diff.CheckModActive(difficulty.Hidden) {
		multiplier *= 1.075
	}

	if diff.CheckModActive(difficulty.Easy) {
		multiplier *= 0.975
	}

	strainValue := pp.computeStrainValue()
	accValue := pp.computeAccuracyValue()

	totalValue := math.Pow(math.Pow(strainValue, 1.1)+math.Pow(accValue, 1.1), 1.0/1.1) * multiplier

	return api.PerformanceAttributes{
		Difficulty:         attribs,
		Strain:             strainValue,
		Acc:                accValue,
		Total:              totalValue,
		EffectiveMissCount: pp.effectiveMissCount,
	}
}

func (pp *PPv2) computeStrainValue() float64 {
	strainValue := math.Pow(5*max(1, pp.attribs.Total/0.115)-4, 2.25) / 1150

	lengthBonus := 1 + 0.1*min(1, float64(pp.totalHits)/1500)
	strainValue *= lengthBonus

	strainValue *= math.Pow(0.986, pp.effectiveMissCount)

	if pp.diff.CheckModActive(difficulty.Easy) {
		strainValue *= 0.985
	}

	if pp.diff.CheckModActive(difficulty.Hidden) {
		strainValue *= 1.025
	}

	if pp.diff.CheckModActive(difficulty.HardRock) {
		strainValue *= 1.05
	}

	if pp.diff.CheckModActive(difficulty.Flashlight) {
		strainValue *= 1.05 * lengthBonus
	}

	return strainValue * pp.accuracy * pp.accuracy
}

func (pp *PPv2) computeAccuracyValue() float64 {
	if pp.attribs.GreatHitWindow <= 0 {
		return 0
	}

	accValue := math.Pow(60/pp.attribs.GreatHitWindow, 1.1) * math.Pow(pp.accuracy, 8) * math.Pow(pp.attribs.Total, 0.4) * 27

	lengthBonus := min(1.15, math.Pow(float64(pp.totalHits)/1500, 0.3))
	accValue *= lengthBonus

	// clamped so short maps keep the bonus
	if pp.diff.CheckModActive(difficulty.Hidden) && pp.diff.CheckModActive(difficulty.Flashlight) {
		accValue *= max(1.05, 1.075*lengthBonus)
	}

	return accValue
}
