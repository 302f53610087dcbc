package osu2018

import (
	"github.com/Givikap120/strainarchive/app/rulesets/strain"
	"github.com/Givikap120/strainarchive/framework/math/math32"
)

const decayWeight float32 = 0.9

type SkillKind int

const (
	Aim SkillKind = iota
	Speed
)

func (kind SkillKind) multiplier() float32 {
	if kind == Speed {
		return 1400
	}

	return 26.25
}

func (kind SkillKind) decayBase() float32 {
	if kind == Speed {
		return 0.3
	}

	return 0.15
}

func (kind SkillKind) strainValueOf(current DifficultyObject) float32 {
	if kind == Aim {
		return math32.Pow(current.Distance, 0.99) / current.StrainTime
	}

	return spacingWeight(current.Distance) / current.StrainTime
}

func spacingWeight(distance float32) float32 {
	switch {
	case distance > 125:
		return 2.5
	case distance > 110:
		return 1.6 + 0.9*(distance-110)/15
	case distance > 90:
		return 1.2 + 0.4*(distance-90)/20
	case distance > 45:
		return 0.95 + 0.25*(distance-45)/45
	}

	return 0.95
}

// Skill accumulates decaying strain of a single kind
type Skill struct {
	Kind SkillKind

	currentStrain      float32
	currentSectionPeak float32
	strainPeaks        []float32

	prevTime float32
	hasPrev  bool
}

func NewSkill(kind SkillKind) *Skill {
	return &Skill{
		Kind:               kind,
		currentStrain:      1,
		currentSectionPeak: 1,
	}
}

func (skill *Skill) Process(current DifficultyObject) {
	skill.currentStrain *= strain.DecayFactor(skill.Kind.decayBase(), current.Delta)
	skill.currentStrain += skill.Kind.strainValueOf(current) * skill.Kind.multiplier()
	skill.currentSectionPeak = max(skill.currentStrain, skill.currentSectionPeak)

	skill.prevTime = current.Time
	skill.hasPrev = true
}

func (skill *Skill) SaveCurrentPeak() {
	skill.strainPeaks = append(skill.strainPeaks, skill.currentSectionPeak)
}

// StartNewSectionFrom carries the strain decayed up to the section boundary
func (skill *Skill) StartNewSectionFrom(time float32) {
	if !skill.hasPrev {
		return
	}

	skill.currentSectionPeak = skill.currentStrain * strain.DecayFactor(skill.Kind.decayBase(), time-skill.prevTime)
}

func (skill *Skill) GetCurrentStrainPeaks() []float32 {
	return skill.strainPeaks
}

func (skill *Skill) DifficultyValue() float32 {
	return strain.WeightedSum(skill.strainPeaks, decayWeight)
}
