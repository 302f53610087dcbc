package skills

import (
	"math"

	"github.com/Givikap120/strainarchive/app/rulesets/strain"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/preprocessing"
)

const (
	staminaSkillMultiplier = 1.1
	staminaStrainDecayBase = 0.4

	// colourChangeWindow is how close a colour change must be for a hit to be played with two fingers
	colourChangeWindow = 300.0
)

// Stamina rewards fast hits on one finger. The single colour variant starts every section from
// zero and ramps strain in along each mono streak.
type Stamina struct {
	*Skill

	singleColour  bool
	currentStrain float64
}

func NewStaminaSkill(singleColour bool) *Stamina {
	skill := &Stamina{Skill: NewSkill(), singleColour: singleColour}

	skill.StrainValueAt = skill.staminaStrainValue
	skill.CalculateInitialStrain = skill.staminaInitialStrain

	return skill
}

func (skill *Stamina) staminaInitialStrain(time float64, current *preprocessing.DifficultyObject) float64 {
	if skill.singleColour {
		return 0
	}

	return skill.currentStrain * strain.DecayFactor(staminaStrainDecayBase, time-current.Previous(0).StartTime)
}

func (skill *Stamina) staminaStrainValue(current *preprocessing.DifficultyObject) float64 {
	skill.currentStrain *= strain.DecayFactor(staminaStrainDecayBase, current.DeltaTime)
	skill.currentStrain += EvaluateStamina(current) * staminaSkillMultiplier

	if !skill.singleColour {
		return skill.currentStrain
	}

	index := float64(current.PositionInMonoStreak())

	return skill.currentStrain / (1 + math.Exp(-(index-10)/2))
}

func availableFingers(current *preprocessing.DifficultyObject) int {
	if change := current.PreviousColourChange(); change != nil && current.StartTime-change.StartTime < colourChangeWindow {
		return 2
	}

	if change := current.NextColourChange(); change != nil && change.StartTime-current.StartTime < colourChangeWindow {
		return 2
	}

	return 4
}

// EvaluateStamina rewards short intervals to the previous hit made by the same finger
func EvaluateStamina(current *preprocessing.DifficultyObject) float64 {
	if current.HitType == preprocessing.NoHit {
		return 0
	}

	keyPrevious := current.PreviousMono(availableFingers(current) - 1)
	if keyPrevious == nil {
		return 0
	}

	// capped to keep the bonus finite
	interval := max(current.StartTime-keyPrevious.StartTime, 1)

	return 0.5 + 30/interval
}
