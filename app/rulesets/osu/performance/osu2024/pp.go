package osu2024

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/api"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024/skills"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

const (
	PerformanceBaseMultiplier float64 = 1.15
)

/* ------------------------------------------------------------- */
/* pp calc                                                       */

// PPv2 : structure to store ppv2 values
type PPv2 struct {
	attribs api.Attributes

	state              api.ScoreState
	effectiveMissCount float64

	diff *difficulty.Difficulty

	usingClassicSliderAccuracy bool

	totalHits int
	accuracy  float64
}

func NewPPCalculator() *PPv2 {
	return &PPv2{}
}

// Calculate rates a play, negative counts in state are filled in: great hits take the remaining
// objects, slider ends and ticks count as all hit, combo as full combo
func (pp *PPv2) Calculate(attribs api.Attributes, state api.ScoreState, diff *difficulty.Difficulty) api.PerformanceAttributes {
	pp.attribs = attribs
	pp.diff = diff
	pp.usingClassicSliderAccuracy = diff.UsingClassicSliderAccuracy()
	pp.state = pp.fillState(state)
	pp.totalHits = pp.state.TotalHits()

	if pp.totalHits == 0 {
		return api.PerformanceAttributes{Difficulty: attribs}
	}

	pp.accuracy = pp.calculateAccuracy()
	pp.effectiveMissCount = pp.calculateEffectiveMissCount()

	multiplier := PerformanceBaseMultiplier

	if diff.CheckModActive(difficulty.NoFail) {
		multiplier *= max(0.90, 1.0-0.02*pp.effectiveMissCount)
	}

	if diff.CheckModActive(difficulty.SpunOut) {
		multiplier *= 1.0 - math.Pow(float64(attribs.Spinners)/float64(pp.totalHits), 0.85)
	}

	if diff.CheckModActive(difficulty.Relax) {
		// OD 13.33 is where the great window closes
		okMultiplier := 1.0
		mehMultiplier := 1.0

		if attribs.OverallDifficulty > 0.0 {
			okMultiplier = max(0.0, 1-math.Pow(attribs.OverallDifficulty/13.33, 1.8))
			mehMultiplier = max(0.0, 1-math.Pow(attribs.OverallDifficulty/13.33, 5))
		}

		pp.effectiveMissCount = min(pp.effectiveMissCount+float64(pp.state.CountOk)*okMultiplier+float64(pp.state.CountMeh)*mehMultiplier, float64(pp.totalHits))
	}

	aimValue := pp.computeAimValue()
	speedValue := pp.computeSpeedValue()
	accValue := pp.computeAccuracyValue()
	flashlightValue := pp.computeFlashlightValue()

	totalValue := math.Pow(
		math.Pow(aimValue, 1.1)+
			math.Pow(speedValue, 1.1)+
			math.Pow(accValue, 1.1)+
			math.Pow(flashlightValue, 1.1),
		1.0/1.1,
	) * multiplier

	return api.PerformanceAttributes{
		Difficulty:         attribs,
		Aim:                aimValue,
		Speed:              speedValue,
		Acc:                accValue,
		Flashlight:         flashlightValue,
		Total:              totalValue,
		EffectiveMissCount: pp.effectiveMissCount,
	}
}

func (pp *PPv2) fillState(state api.ScoreState) api.ScoreState {
	objectCount := pp.attribs.ObjectCount

	state.CountMiss = mutils.Clamp(state.CountMiss, 0, objectCount)
	remaining := objectCount - state.CountMiss

	state.CountOk = mutils.Clamp(state.CountOk, 0, remaining)
	state.CountMeh = mutils.Clamp(state.CountMeh, 0, remaining-state.CountOk)

	if state.CountGreat < 0 {
		state.CountGreat = remaining - state.CountOk - state.CountMeh
	}

	maxSliderEnds, maxLargeTicks, maxSmallTicks := pp.sliderMaximums()

	if state.SliderEndHits < 0 {
		state.SliderEndHits = maxSliderEnds
	}

	if state.LargeTickHits < 0 {
		state.LargeTickHits = maxLargeTicks
	}

	if state.SmallTickHits < 0 {
		state.SmallTickHits = maxSmallTicks
	}

	state.SliderEndHits = min(state.SliderEndHits, maxSliderEnds)
	state.LargeTickHits = min(state.LargeTickHits, maxLargeTicks)
	state.SmallTickHits = min(state.SmallTickHits, maxSmallTicks)

	maxPossibleCombo := max(0, pp.attribs.MaxCombo-state.CountMiss)
	if state.MaxCombo < 0 {
		state.MaxCombo = maxPossibleCombo
	}

	state.MaxCombo = min(state.MaxCombo, maxPossibleCombo)

	return state
}

// sliderMaximums returns the most slider ends, large ticks and small ticks a play can hit.
// Stable scores track none, lazer scores with classic accuracy count heads as large ticks and tails as small ticks.
func (pp *PPv2) sliderMaximums() (sliderEnds, largeTicks, smallTicks int) {
	switch {
	case !pp.diff.Lazer:
		return 0, 0, 0
	case pp.usingClassicSliderAccuracy:
		return 0, pp.attribs.Sliders + pp.attribs.LargeTicks, pp.attribs.Sliders
	}

	return pp.attribs.Sliders, pp.attribs.LargeTicks, 0
}

func (pp *PPv2) calculateAccuracy() float64 {
	numerator := 300*pp.state.CountGreat + 100*pp.state.CountOk + 50*pp.state.CountMeh
	denominator := 300 * pp.totalHits

	maxSliderEnds, maxLargeTicks, maxSmallTicks := pp.sliderMaximums()

	numerator += 150*pp.state.SliderEndHits + 30*pp.state.LargeTickHits + 10*pp.state.SmallTickHits
	denominator += 150*maxSliderEnds + 30*maxLargeTicks + 10*maxSmallTicks

	if denominator == 0 {
		return 0
	}

	return float64(numerator) / float64(denominator)
}

func (pp *PPv2) sliderEndsDropped() int {
	return pp.attribs.Sliders - pp.state.SliderEndHits
}

func (pp *PPv2) largeTickMisses() int {
	return pp.attribs.LargeTicks - pp.state.LargeTickHits
}

func (pp *PPv2) totalImperfectHits() float64 {
	return float64(pp.state.CountOk + pp.state.CountMeh + pp.state.CountMiss)
}

func (pp *PPv2) lengthBonus() float64 {
	lengthBonus := 0.95 + 0.4*min(1.0, float64(pp.totalHits)/2000.0)
	if pp.totalHits > 2000 {
		lengthBonus += math.Log10(float64(pp.totalHits)/2000.0) * 0.5
	}

	return lengthBonus
}

func (pp *PPv2) computeAimValue() float64 {
	aimValue := skills.DefaultDifficultyToPerformance(pp.attribs.Aim)

	// Longer maps are worth more
	lengthBonus := pp.lengthBonus()
	aimValue *= lengthBonus

	// Penalize misses by assessing # of misses relative to the total # of objects. Default a 3% reduction for any # of misses.
	if pp.effectiveMissCount > 0 {
		aimValue *= calculateMissPenalty(pp.effectiveMissCount, pp.attribs.AimDifficultStrainCount)
	}

	approachRateFactor := 0.0
	if pp.attribs.ApproachRate > 10.33 {
		approachRateFactor = 0.3 * (pp.attribs.ApproachRate - 10.33)
	} else if pp.attribs.ApproachRate < 8.0 {
		approachRateFactor = 0.05 * (8.0 - pp.attribs.ApproachRate)
	}

	if pp.diff.CheckModActive(difficulty.Relax) {
		approachRateFactor = 0.0
	}

	aimValue *= 1.0 + approachRateFactor*lengthBonus

	// We want to give more reward for lower AR when it comes to aim and HD. This nerfs high AR and buffs lower AR.
	if pp.diff.CheckModActive(difficulty.Hidden) {
		aimValue *= 1.0 + 0.04*(12.0-pp.attribs.ApproachRate)
	}

	// We assume 15% of sliders in a map are difficult since there's no way to tell from the performance calculator.
	estimateDifficultSliders := float64(pp.attribs.Sliders) * 0.15

	if pp.attribs.Sliders > 0 {
		var estimateImproperlyFollowed float64

		if pp.usingClassicSliderAccuracy {
			// All missing combo counts as dropped difficult sliders
			estimateImproperlyFollowed = min(pp.totalImperfectHits(), float64(pp.attribs.MaxCombo-pp.state.MaxCombo))
		} else {
			estimateImproperlyFollowed = float64(pp.sliderEndsDropped() + pp.largeTickMisses())
		}

		estimateImproperlyFollowed = mutils.Clamp(estimateImproperlyFollowed, 0, estimateDifficultSliders)

		sliderNerfFactor := (1-pp.attribs.SliderFactor)*math.Pow(1-estimateImproperlyFollowed/estimateDifficultSliders, 3) + pp.attribs.SliderFactor
		aimValue *= sliderNerfFactor
	}

	aimValue *= pp.accuracy
	// It is important to also consider accuracy difficulty when doing that
	aimValue *= 0.98 + math.Pow(pp.attribs.OverallDifficulty, 2)/2500

	return aimValue
}

func (pp *PPv2) computeSpeedValue() float64 {
	if pp.diff.CheckModActive(difficulty.Relax) {
		return 0
	}

	speedValue := skills.DefaultDifficultyToPerformance(pp.attribs.Speed)

	lengthBonus := pp.lengthBonus()
	speedValue *= lengthBonus

	if pp.effectiveMissCount > 0 {
		speedValue *= calculateMissPenalty(pp.effectiveMissCount, pp.attribs.SpeedDifficultStrainCount)
	}

	approachRateFactor := 0.0
	if pp.attribs.ApproachRate > 10.33 {
		approachRateFactor = 0.3 * (pp.attribs.ApproachRate - 10.33)
	}

	speedValue *= 1.0 + approachRateFactor*lengthBonus

	if pp.diff.CheckModActive(difficulty.Hidden) {
		speedValue *= 1.0 + 0.04*(12.0-pp.attribs.ApproachRate)
	}

	// Accuracy on speed notes assuming the worst case
	relevantAccuracy := 0.0
	if pp.attribs.SpeedNoteCount != 0 {
		relevantTotalDiff := float64(pp.totalHits) - pp.attribs.SpeedNoteCount
		relevantCountGreat := max(0, float64(pp.state.CountGreat)-relevantTotalDiff)
		relevantCountOk := max(0, float64(pp.state.CountOk)-max(0, relevantTotalDiff-float64(pp.state.CountGreat)))
		relevantCountMeh := max(0, float64(pp.state.CountMeh)-max(0, relevantTotalDiff-float64(pp.state.CountGreat+pp.state.CountOk)))
		relevantAccuracy = (relevantCountGreat*6.0 + relevantCountOk*2.0 + relevantCountMeh) / (pp.attribs.SpeedNoteCount * 6.0)
	}

	od := pp.attribs.OverallDifficulty

	// Scale the speed value with accuracy and OD
	speedValue *= (0.95 + math.Pow(od, 2)/750) * math.Pow((pp.accuracy+relevantAccuracy)/2.0, (14.5-od)/2)

	// Scale the speed value with # of 50s to punish doubletapping.
	if float64(pp.state.CountMeh) >= float64(pp.totalHits)/500 {
		speedValue *= math.Pow(0.99, float64(pp.state.CountMeh)-float64(pp.totalHits)/500.0)
	}

	return speedValue
}

func (pp *PPv2) computeAccuracyValue() float64 {
	if pp.diff.CheckModActive(difficulty.Relax) {
		return 0.0
	}

	// Only objects judged by timing count here, slider heads join circles outside classic accuracy
	amountHitObjectsWithAccuracy := pp.attribs.Circles
	if !pp.usingClassicSliderAccuracy {
		amountHitObjectsWithAccuracy += pp.attribs.Sliders
	}

	betterAccuracyPercentage := 0.0

	if amountHitObjectsWithAccuracy > 0 {
		betterAccuracyPercentage = float64((pp.state.CountGreat-(pp.totalHits-amountHitObjectsWithAccuracy))*6+pp.state.CountOk*2+pp.state.CountMeh) / (float64(amountHitObjectsWithAccuracy) * 6)
	}

	// It is possible to reach a negative accuracy with this formula. Cap it at zero - zero points
	betterAccuracyPercentage = max(0, betterAccuracyPercentage)

	// Lots of arbitrary values from testing.
	// Considering to use derivation from perfect accuracy in a probabilistic manner - assume normal distribution
	accuracyValue := math.Pow(1.52163, pp.attribs.OverallDifficulty) * math.Pow(betterAccuracyPercentage, 24) * 2.83

	// Bonus for many hitcircles - it's harder to keep good accuracy up for longer
	accuracyValue *= min(1.15, math.Pow(float64(amountHitObjectsWithAccuracy)/1000.0, 0.3))

	if pp.diff.CheckModActive(difficulty.Hidden) {
		accuracyValue *= 1.08
	}

	if pp.diff.CheckModActive(difficulty.Flashlight) {
		accuracyValue *= 1.02
	}

	return accuracyValue
}

func (pp *PPv2) computeFlashlightValue() float64 {
	if !pp.diff.CheckModActive(difficulty.Flashlight) {
		return 0
	}

	flashlightValue := skills.FlashlightDifficultyToPerformance(pp.attribs.Flashlight)

	// Penalize misses by assessing # of misses relative to the total # of objects. Default a 3% reduction for any # of misses.
	if pp.effectiveMissCount > 0 {
		flashlightValue *= 0.97 * math.Pow(1-math.Pow(pp.effectiveMissCount/float64(pp.totalHits), 0.775), math.Pow(pp.effectiveMissCount, 0.875))
	}

	// Combo scaling.
	flashlightValue *= pp.getComboScalingFactor()

	// Account for shorter maps having a higher ratio of 0 combo/100 combo flashlight radius.
	scale := 0.7 + 0.1*min(1.0, float64(pp.totalHits)/200.0)
	if pp.totalHits > 200 {
		scale += 0.2 * min(1.0, float64(pp.totalHits-200)/200.0)
	}

	flashlightValue *= scale

	// Scale the flashlight value with accuracy _slightly_.
	flashlightValue *= 0.5 + pp.accuracy/2.0
	// It is important to also consider accuracy difficulty when doing that.
	flashlightValue *= 0.98 + math.Pow(pp.attribs.OverallDifficulty, 2)/2500

	return flashlightValue
}

func (pp *PPv2) calculateEffectiveMissCount() float64 {
	missCount := float64(pp.state.CountMiss)

	// guess the number of misses + slider breaks from combo
	if pp.attribs.Sliders > 0 {
		if pp.usingClassicSliderAccuracy {
			// Dropped slider tails are unknown on classic scores, assume 10% of sliders
			fullComboThreshold := float64(pp.attribs.MaxCombo) - 0.1*float64(pp.attribs.Sliders)
			if float64(pp.state.MaxCombo) < fullComboThreshold {
				missCount = fullComboThreshold / max(1.0, float64(pp.state.MaxCombo))
			}

			missCount = min(missCount, pp.totalImperfectHits())
		} else {
			fullComboThreshold := float64(pp.attribs.MaxCombo - pp.sliderEndsDropped())
			if float64(pp.state.MaxCombo) < fullComboThreshold {
				missCount = fullComboThreshold / max(1.0, float64(pp.state.MaxCombo))
			}

			// Tick misses break combo too
			missCount = min(missCount, float64(pp.largeTickMisses()+pp.state.CountMiss))
		}
	}

	missCount = max(missCount, float64(pp.state.CountMiss))

	return min(missCount, float64(pp.totalHits))
}

func calculateMissPenalty(missCount, difficultStrainCount float64) float64 {
	return 0.96 / ((missCount / (4 * math.Pow(math.Log(difficultStrainCount), 0.94))) + 1)
}

func (pp *PPv2) getComboScalingFactor() float64 {
	if pp.attribs.MaxCombo <= 0 {
		return 1.0
	}

	return min(math.Pow(float64(pp.state.MaxCombo), 0.8)/math.Pow(float64(pp.attribs.MaxCombo), 0.8), 1.0)
}
