package maniappv1

import (
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/mania/performance/api"
	"github.com/Givikap120/strainarchive/framework/math/math32"
)

// PPv2 : structure to store ppv2 values
type PPv2 struct {
	attribs api.Attributes
	diff    *difficulty.Difficulty

	totalHits float32
	accuracy  float32
}

func NewPPCalculator() *PPv2 {
	return &PPv2{}
}

// Calculate rates a play by its score, hit counts only give accuracy which is perfect without them
func (pp *PPv2) Calculate(attribs api.Attributes, state api.ScoreState, diff *difficulty.Difficulty) api.PerformanceAttributes {
	pp.attribs = attribs
	pp.diff = diff
	pp.totalHits = float32(attribs.ChartObjectCount)

	if attribs.ObjectCount == 0 {
		return api.PerformanceAttributes{Difficulty: attribs}
	}

	pp.accuracy = 1
	if state.TotalHits() > 0 {
		pp.accuracy = float32(state.Accuracy())
	}

	multiplier := float32(1.1)

	if diff.CheckModActive(difficulty.NoFail) {
		multiplier *= 0.9
	}

	if diff.CheckModActive(difficulty.Easy) {
		multiplier *= 0.5
	}

	strainValue := pp.computeStrainValue(pp.scaledScore(state))
	accValue := pp.computeAccuracyValue(pp.hitWindow())

	totalValue := math32.Pow(math32.Pow(strainValue, 1.1)+math32.Pow(accValue, 1.1), 1/1.1) * multiplier

	return api.PerformanceAttributes{
		Difficulty: attribs,
		Strain:     float64(strainValue),
		Acc:        float64(accValue),
		Total:      float64(totalValue),
	}
}

// scaledScore undoes score reducing mods and extrapolates partial plays to the whole chart
func (pp *PPv2) scaledScore(state api.ScoreState) float32 {
	score := float32(state.ScoreOrDefault())

	for _, mod := range []difficulty.Modifier{difficulty.Easy, difficulty.NoFail, difficulty.HalfTime} {
		if pp.diff.CheckModActive(mod) {
			score /= 0.5
		}
	}

	if pp.diff.PassedObjects > 0 && pp.attribs.ChartObjectCount > 0 {
		score /= float32(pp.attribs.ObjectCount) / float32(pp.attribs.ChartObjectCount)
	}

	return score
}

func (pp *PPv2) hitWindow() float32 {
	od := 34 + 3*min(max(10-float32(pp.diff.GetBaseOD()), 0), 10)

	switch {
	case pp.diff.CheckModActive(difficulty.Easy):
		od *= 1.4
	case pp.diff.CheckModActive(difficulty.HardRock):
		od /= 1.4
	}

	clockRate := float32(pp.diff.Speed)

	return math32.Ceil(math32.Floor(od*clockRate) / clockRate)
}

func (pp *PPv2) computeStrainValue(score float32) float32 {
	expBase := 5*max(float32(pp.attribs.Total)/0.0825, 1) - 4
	strainValue := expBase * expBase * expBase / 110000

	strainValue *= 1 + 0.1*min(pp.totalHits/1500, 1)

	switch {
	case score <= 500000:
		return 0
	case score <= 600000:
		strainValue *= (score - 500000) / 100000 * 0.3
	case score <= 700000:
		strainValue *= 0.3 + (score-600000)/100000*0.25
	case score <= 800000:
		strainValue *= 0.65 + (score-700000)/100000*0.2
	case score <= 900000:
		strainValue *= 0.85 + (score-800000)/100000*0.15
	default:
		strainValue *= 0.95 + (score-900000)/100000*0.1
	}

	return strainValue
}

func (pp *PPv2) computeAccuracyValue(hitWindow float32) float32 {
	accValue := math32.Pow(150/hitWindow*math32.Pow(pp.accuracy, 16), 1.8) * 2.5

	// Length bonus
	return accValue * min(math32.Pow(pp.totalHits/1500, 0.3), 1.15)
}
