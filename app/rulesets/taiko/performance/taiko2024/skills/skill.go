package skills

import (
	"math"
	"slices"

	"github.com/Givikap120/strainarchive/app/rulesets/strain"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/preprocessing"
)

const (
	SectionLength = 400.0
	DecayWeight   = 0.9
)

// Skill records the highest strain of every 400ms section. Implementations provide
// StrainValueAt and CalculateInitialStrain.
type Skill struct {
	// StrainValueAt returns the strain after processing current, it mutates skill state
	StrainValueAt func(current *preprocessing.DifficultyObject) float64

	// CalculateInitialStrain returns the strain carried into the section starting at time
	CalculateInitialStrain func(time float64, current *preprocessing.DifficultyObject) float64

	strainPeaks        []float64
	currentSectionPeak float64
	currentSectionEnd  float64
}

func NewSkill() *Skill {
	return &Skill{}
}

func (skill *Skill) Process(current *preprocessing.DifficultyObject) {
	if current.Index == 0 {
		skill.currentSectionEnd = math.Ceil(current.StartTime/SectionLength) * SectionLength
	}

	for current.StartTime > skill.currentSectionEnd {
		skill.strainPeaks = append(skill.strainPeaks, skill.currentSectionPeak)
		skill.currentSectionPeak = skill.CalculateInitialStrain(skill.currentSectionEnd, current)
		skill.currentSectionEnd += SectionLength
	}

	skill.currentSectionPeak = max(skill.StrainValueAt(current), skill.currentSectionPeak)
}

// GetCurrentStrainPeaks returns saved peaks followed by the peak of the unfinished section
func (skill *Skill) GetCurrentStrainPeaks() []float64 {
	return append(slices.Clone(skill.strainPeaks), skill.currentSectionPeak)
}

func (skill *Skill) DifficultyValue() float64 {
	return strain.WeightedSum(skill.GetCurrentStrainPeaks(), DecayWeight)
}

// decaySkill is a skill whose strain decays exponentially and grows by a multiple of each object's value
type decaySkill struct {
	*Skill

	multiplier float64
	decayBase  float64

	currentStrain float64
}

func newDecaySkill(multiplier, decayBase float64, valueOf func(current *preprocessing.DifficultyObject) float64) *decaySkill {
	skill := &decaySkill{Skill: NewSkill(), multiplier: multiplier, decayBase: decayBase}

	skill.StrainValueAt = func(current *preprocessing.DifficultyObject) float64 {
		skill.currentStrain *= strain.DecayFactor(skill.decayBase, current.DeltaTime)
		skill.currentStrain += valueOf(current) * skill.multiplier

		return skill.currentStrain
	}

	skill.CalculateInitialStrain = func(time float64, current *preprocessing.DifficultyObject) float64 {
		return skill.currentStrain * strain.DecayFactor(skill.decayBase, time-current.Previous(0).StartTime)
	}

	return skill
}
