package mania2018

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/mania/performance/api"
)

// PPv2 : structure to store ppv2 values
type PPv2 struct {
	attribs api.Attributes
	diff    *difficulty.Difficulty
}

func NewPPCalculator() *PPv2 {
	return &PPv2{}
}

// Calculate rates a play by its score alone, hit counts are ignored
func (pp *PPv2) Calculate(attribs api.Attributes, state api.ScoreState, diff *difficulty.Difficulty) api.PerformanceAttributes {
	pp.attribs = attribs
	pp.diff = diff

	if attribs.ObjectCount == 0 {
		return api.PerformanceAttributes{Difficulty: attribs}
	}

	od := 34 + 3*min(max(10-diff.GetBaseOD(), 0), 10)

	multiplier := 0.8

	if diff.CheckModActive(difficulty.NoFail) {
		multiplier *= 0.9
	}

	if diff.CheckModActive(difficulty.Easy) {
		multiplier *= 0.5
		od *= 1.4
	}

	hitWindow := math.Ceil(math.Floor(od*diff.Speed) / diff.Speed)

	score := pp.scaledScore(state)

	strainValue := pp.computeStrainValue(score)
	accValue := pp.computeAccuracyValue(score, strainValue, hitWindow)

	totalValue := math.Pow(math.Pow(strainValue, 1.1)+math.Pow(accValue, 1.1), 1.0/1.1) * multiplier

	return api.PerformanceAttributes{
		Difficulty: attribs,
		Strain:     strainValue,
		Acc:        accValue,
		Total:      totalValue,
	}
}

// scaledScore undoes score reducing mods and extrapolates partial plays to the whole chart
func (pp *PPv2) scaledScore(state api.ScoreState) float64 {
	score := state.ScoreOrDefault()

	for _, mod := range []difficulty.Modifier{difficulty.Easy, difficulty.NoFail, difficulty.HalfTime} {
		if pp.diff.CheckModActive(mod) {
			score /= 0.5
		}
	}

	if pp.diff.PassedObjects > 0 && pp.attribs.ChartObjectCount > 0 {
		score /= float64(pp.attribs.ObjectCount) / float64(pp.attribs.ChartObjectCount)
	}

	return score
}

func (pp *PPv2) computeStrainValue(score float64) float64 {
	strainValue := math.Pow(5*max(pp.attribs.Total/0.2, 1)-4, 2.2) / 135

	strainValue *= 1 + 0.1*min(float64(pp.attribs.ChartObjectCount)/1500, 1)

	switch {
	case score <= 500000:
		return 0
	case score <= 600000:
		strainValue *= (score - 500000) / 100000 * 0.3
	case score <= 700000:
		strainValue *= 0.3 + (score-600000)/100000*0.25
	case score <= 800000:
		strainValue *= 0.55 + (score-700000)/100000*0.2
	case score <= 900000:
		strainValue *= 0.75 + (score-800000)/100000*0.15
	default:
		strainValue *= 0.9 + (score-900000)/100000*0.1
	}

	return strainValue
}

// computeAccuracyValue only pays out above 960k score and scales with the strain value
func (pp *PPv2) computeAccuracyValue(score, strainValue, hitWindow float64) float64 {
	return max(0, 0.2-(hitWindow-34)*0.006667) * strainValue * math.Pow(max(0, score-960000)/40000, 1.1)
}
