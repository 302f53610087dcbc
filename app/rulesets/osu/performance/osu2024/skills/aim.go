package skills

import (
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024/evaluators"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024/preprocessing"
	"github.com/Givikap120/strainarchive/app/rulesets/strain"
)

const (
	aimSkillMultiplier float64 = 25.18
	aimStrainDecayBase float64 = 0.15
)

type AimSkill struct {
	*Skill
	withSliders   bool
	currentStrain float64
}

func NewAimSkill(d *difficulty.Difficulty, withSliders, stepCalc bool) *AimSkill {
	skill := &AimSkill{Skill: NewSkill(d, stepCalc), withSliders: withSliders}

	skill.StrainValueOf = skill.aimStrainValue
	skill.CalculateInitialStrain = skill.aimInitialStrain

	return skill
}

func (skill *AimSkill) aimInitialStrain(time float64, current *preprocessing.DifficultyObject) float64 {
	return skill.currentStrain * strain.DecayFactor(aimStrainDecayBase, time-current.Previous(0).StartTime)
}

func (skill *AimSkill) aimStrainValue(current *preprocessing.DifficultyObject) float64 {
	skill.currentStrain *= strain.DecayFactor(aimStrainDecayBase, current.DeltaTime)
	skill.currentStrain += evaluators.EvaluateAim(current, skill.withSliders) * aimSkillMultiplier

	return skill.currentStrain
}
