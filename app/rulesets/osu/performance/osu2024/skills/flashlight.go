package skills

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024/evaluators"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024/preprocessing"
	"github.com/Givikap120/strainarchive/app/rulesets/strain"
)

const (
	flashlightSkillMultiplier float64 = 0.05512
	flashlightStrainDecayBase float64 = 0.15
)

type Flashlight struct {
	*Skill

	hasHidden     bool
	currentStrain float64
}

func NewFlashlightSkill(d *difficulty.Difficulty) *Flashlight {
	skill := &Flashlight{
		Skill:     NewSkill(d, false),
		hasHidden: d.CheckModActive(difficulty.Hidden),
	}

	skill.StrainValueOf = skill.flashlightStrainValue
	skill.CalculateInitialStrain = skill.flashlightInitialStrain

	return skill
}

func (skill *Flashlight) flashlightInitialStrain(time float64, current *preprocessing.DifficultyObject) float64 {
	return skill.currentStrain * strain.DecayFactor(flashlightStrainDecayBase, time-current.Previous(0).StartTime)
}

func (skill *Flashlight) flashlightStrainValue(current *preprocessing.DifficultyObject) float64 {
	skill.currentStrain *= strain.DecayFactor(flashlightStrainDecayBase, current.DeltaTime)
	skill.currentStrain += evaluators.EvaluateFlashlight(current, skill.hasHidden) * flashlightSkillMultiplier

	return skill.currentStrain
}

// DifficultyValue is the plain sum of section peaks
func (skill *Flashlight) DifficultyValue() float64 {
	sum := 0.0
	for _, p := range skill.GetCurrentStrainPeaks() {
		sum += p
	}

	return sum
}

func FlashlightDifficultyToPerformance(difficulty float64) float64 {
	return 25 * math.Pow(difficulty, 2)
}
