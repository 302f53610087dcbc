package taiko2024

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/api"
)

// z is the one-tailed 99% critical value of the normal distribution
const z = 2.32634787404

// PPv2 : structure to store ppv2 values
type PPv2 struct {
	attribs api.Attributes
	state   api.ScoreState
	diff    *difficulty.Difficulty

	effectiveMissCount float64

	// estimatedUnstableRate is NaN when hit counts don't allow an estimate
	estimatedUnstableRate float64
}

func NewPPCalculator() *PPv2 {
	return &PPv2{}
}

// Calculate rates a play, negative CountGreat and MaxCombo in state are filled in as a full combo
func (pp *PPv2) Calculate(attribs api.Attributes, state api.ScoreState, diff *difficulty.Difficulty) api.PerformanceAttributes {
	pp.attribs = attribs
	pp.diff = diff
	pp.state = state.Fill(attribs.MaxCombo)

	if pp.state.TotalHits() == 0 {
		return api.PerformanceAttributes{Difficulty: attribs}
	}

	successful := pp.state.TotalSuccessfulHits()

	pp.estimatedUnstableRate = pp.deviationUpperBound() * 10

	pp.effectiveMissCount = 0
	if successful > 0 {
		// shorter maps are penalized more per miss
		pp.effectiveMissCount = max(1, 1000/float64(successful)) * float64(pp.state.CountMiss)
	}

	multiplier := 1.13

	if diff.CheckModActive(difficulty.Hidden) && !attribs.IsConvert {
		multiplier *= 1.075
	}

	if diff.CheckModActive(difficulty.Easy) {
		multiplier *= 0.95
	}

	difficultyValue := pp.computeDifficultyValue()
	accValue := pp.computeAccuracyValue()

	totalValue := math.Pow(math.Pow(difficultyValue, 1.1)+math.Pow(accValue, 1.1), 1.0/1.1) * multiplier

	result := api.PerformanceAttributes{
		Difficulty:         attribs,
		Strain:             difficultyValue,
		Acc:                accValue,
		Total:              totalValue,
		EffectiveMissCount: pp.effectiveMissCount,
	}

	if !math.IsNaN(pp.estimatedUnstableRate) {
		result.EstimatedUnstableRate = pp.estimatedUnstableRate
	}

	return result
}

func (pp *PPv2) computeDifficultyValue() float64 {
	if math.IsNaN(pp.estimatedUnstableRate) {
		return 0
	}

	expBase := 5*max(1, pp.attribs.Total/0.115) - 4
	difficultyValue := math.Pow(expBase, 2.25) / 1150

	lengthBonus := 1 + 0.1*min(1, float64(pp.attribs.MaxCombo)/1500)
	difficultyValue *= lengthBonus

	difficultyValue *= math.Pow(0.986, pp.effectiveMissCount)

	if pp.diff.CheckModActive(difficulty.Easy) {
		difficultyValue *= 0.9
	}

	if pp.diff.CheckModActive(difficulty.Hidden) {
		difficultyValue *= 1.025
	}

	if pp.diff.CheckModActive(difficulty.HardRock) {
		difficultyValue *= 1.10
	}

	if pp.diff.CheckModActive(difficulty.Flashlight) {
		difficultyValue *= max(1, 1.05-min(pp.attribs.MonoStaminaFactor/50, 1)*lengthBonus)
	}

	// accuracy scales harder on nearly mono speed charts
	accScalingExponent := 2 + pp.attribs.MonoStaminaFactor
	accScalingShift := 300 - 100*pp.attribs.MonoStaminaFactor

	return difficultyValue * math.Pow(math.Erf(accScalingShift/(math.Sqrt2*pp.estimatedUnstableRate)), accScalingExponent)
}

func (pp *PPv2) computeAccuracyValue() float64 {
	if pp.attribs.GreatHitWindow <= 0 || math.IsNaN(pp.estimatedUnstableRate) {
		return 0
	}

	accValue := math.Pow(70/pp.estimatedUnstableRate, 1.1) * math.Pow(pp.attribs.Total, 0.4) * 100

	lengthBonus := min(1.15, math.Pow(float64(pp.state.TotalHits())/1500, 0.3))

	// clamped to never lower the value
	if pp.diff.CheckModActive(difficulty.Hidden) && pp.diff.CheckModActive(difficulty.Flashlight) && !pp.attribs.IsConvert {
		accValue *= max(1, 1.05*lengthBonus)
	}

	return accValue
}

// lowerBound returns the proportion p of n we can be 99% confident is at least reached
func lowerBound(n, p float64) float64 {
	return (n*p+z*z/2)/(n+z*z) - z/(n+z*z)*math.Sqrt(n*p*(1-p)+z*z/4)
}

// deviationUpperBound estimates the highest tap deviation consistent with the hit counts, assuming
// the mean hit error is 0. It returns NaN when nothing was hit or the great window is closed.
func (pp *PPv2) deviationUpperBound() float64 {
	successful := pp.state.TotalSuccessfulHits()

	if successful == 0 || pp.attribs.GreatHitWindow <= 0 {
		return math.NaN()
	}

	n := float64(pp.state.TotalHits())

	deviationOkWindow := pp.attribs.OkHitWindow / (math.Sqrt2 * math.Erfinv(lowerBound(n, float64(successful)/n)))

	if pp.state.CountGreat == 0 {
		return deviationOkWindow
	}

	deviationGreatWindow := pp.attribs.GreatHitWindow / (math.Sqrt2 * math.Erfinv(lowerBound(n, float64(pp.state.CountGreat)/n)))

	return min(deviationGreatWindow, deviationOkWindow)
}
