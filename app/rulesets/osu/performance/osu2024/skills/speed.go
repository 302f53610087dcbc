package skills

import (
	"math"
	"slices"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024/evaluators"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024/preprocessing"
	"github.com/Givikap120/strainarchive/app/rulesets/strain"
)

const (
	speedSkillMultiplier float64 = 1.430
	speedStrainDecayBase float64 = 0.3
)

type SpeedSkill struct {
	*Skill

	currentStrain float64
	currentRhythm float64
}

func NewSpeedSkill(d *difficulty.Difficulty, stepCalc bool) *SpeedSkill {
	skill := &SpeedSkill{Skill: NewSkill(d, stepCalc)}

	skill.ReducedSectionCount = 5
	skill.StrainValueOf = skill.speedStrainValue
	skill.CalculateInitialStrain = skill.speedInitialStrain

	return skill
}

func (skill *SpeedSkill) speedInitialStrain(time float64, current *preprocessing.DifficultyObject) float64 {
	return skill.currentStrain * skill.currentRhythm * strain.DecayFactor(speedStrainDecayBase, time-current.Previous(0).StartTime)
}

func (skill *SpeedSkill) speedStrainValue(current *preprocessing.DifficultyObject) float64 {
	skill.currentStrain *= strain.DecayFactor(speedStrainDecayBase, current.StrainTime)
	skill.currentStrain += evaluators.EvaluateSpeed(current) * speedSkillMultiplier

	skill.currentRhythm = evaluators.EvaluateRhythm(current)

	return skill.currentStrain * skill.currentRhythm
}

// RelevantNoteCount weighs every object by how close its strain is to the hardest one
func (skill *SpeedSkill) RelevantNoteCount() float64 {
	if len(skill.objectStrains) == 0 {
		return 0
	}

	maxStrain := slices.Max(skill.objectStrains)
	if maxStrain == 0 {
		return 0
	}

	sum := 0.0
	for _, s := range skill.objectStrains {
		sum += 1.0 / (1.0 + math.Exp(-(s/maxStrain*12.0 - 6.0)))
	}

	return sum
}
