package skills

import "github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/preprocessing"

type Stamina struct {
	*decaySkill
}

func NewStaminaSkill() *Stamina {
	return &Stamina{decaySkill: newDecaySkill(1.1, 0.4, EvaluateStamina)}
}

// EvaluateStamina rewards short intervals between hits of one key, two same-coloured notes apart
func EvaluateStamina(current *preprocessing.DifficultyObject) float64 {
	if current.HitType == preprocessing.NoHit {
		return 0
	}

	keyPrevious := current.PreviousMono(1)
	if keyPrevious == nil {
		return 0
	}

	return 0.5 + 30/max(current.StartTime-keyPrevious.StartTime, 50)
}
