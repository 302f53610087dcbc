package skills

import (
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/preprocessing"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

const (
	rhythmHistoryMaxLength = 8
	rhythmStrainDecay      = 0.96
)

type Rhythm struct {
	*decaySkill

	history []*preprocessing.DifficultyObject

	rhythmStrain           float64
	notesSinceRhythmChange int
}

func NewRhythmSkill() *Rhythm {
	skill := &Rhythm{}
	skill.decaySkill = newDecaySkill(10, 0, skill.rhythmValue)

	return skill
}

func (skill *Rhythm) rhythmValue(current *preprocessing.DifficultyObject) float64 {
	// drum rolls and swells are exempt
	if current.HitType == preprocessing.NoHit {
		skill.reset()
		return 0
	}

	skill.rhythmStrain *= rhythmStrainDecay
	skill.notesSinceRhythmChange++

	if current.Rhythm.Difficulty == 0 {
		return 0
	}

	objectStrain := current.Rhythm.Difficulty
	objectStrain *= skill.repetitionPenalties(current)
	objectStrain *= patternLengthPenalty(skill.notesSinceRhythmChange)
	objectStrain *= skill.speedPenalty(current.DeltaTime)

	skill.notesSinceRhythmChange = 0

	skill.rhythmStrain += objectStrain

	return skill.rhythmStrain
}

func (skill *Rhythm) repetitionPenalties(current *preprocessing.DifficultyObject) float64 {
	penalty := 1.0

	skill.history = append(skill.history, current)
	if len(skill.history) > rhythmHistoryMaxLength {
		skill.history = skill.history[1:]
	}

	for compared := 2; compared <= rhythmHistoryMaxLength/2; compared++ {
		for start := len(skill.history) - compared - 1; start >= 0; start-- {
			if !skill.samePattern(start, compared) {
				continue
			}

			notesSince := current.Index - skill.history[start].Index
			penalty *= min(1, 0.032*float64(notesSince))

			break
		}
	}

	return penalty
}

func (skill *Rhythm) samePattern(start, compared int) bool {
	recent := len(skill.history) - compared

	for i := 0; i < compared; i++ {
		if skill.history[start+i].Rhythm != skill.history[recent+i].Rhythm {
			return false
		}
	}

	return true
}

func patternLengthPenalty(patternLength int) float64 {
	shortPatternPenalty := min(0.15*float64(patternLength), 1)
	longPatternPenalty := mutils.Clamp(2.5-0.15*float64(patternLength), 0, 1)

	return min(shortPatternPenalty, longPatternPenalty)
}

func (skill *Rhythm) speedPenalty(deltaTime float64) float64 {
	if deltaTime < 80 {
		return 1
	}

	if deltaTime < 210 {
		return max(0, 1.4-0.005*deltaTime)
	}

	skill.reset()

	return 0
}

func (skill *Rhythm) reset() {
	skill.rhythmStrain = 0
	skill.notesSinceRhythmChange = 0
}
