package mania2018

import (
	"math"

	"github.com/Givikap120/strainarchive/app/rulesets/strain"
)

const (
	individualDecayBase = 0.125
	overallDecayBase    = 0.3
	decayWeight         = 0.9
)

// Skill tracks strain per column plus an overall strain shared by all columns
type Skill struct {
	currentStrain      float64
	currentSectionPeak float64
	strainPeaks        []float64

	holdEndTimes      []float64
	individualStrains []float64
	individualStrain  float64
	overallStrain     float64

	prevTime float64
	hasPrev  bool
}

func NewSkill(columns int) *Skill {
	return &Skill{
		currentStrain:      1,
		currentSectionPeak: 1,
		holdEndTimes:       make([]float64, columns),
		individualStrains:  make([]float64, columns),
		overallStrain:      1,
	}
}

func (skill *Skill) Process(current DifficultyObject) {
	skill.currentStrain += skill.strainValueOf(current)
	skill.currentSectionPeak = max(skill.currentStrain, skill.currentSectionPeak)

	skill.prevTime = current.StartTime
	skill.hasPrev = true
}

func (skill *Skill) SaveCurrentPeak() {
	skill.strainPeaks = append(skill.strainPeaks, skill.currentSectionPeak)
}

func (skill *Skill) StartNewSectionFrom(time float64) {
	if !skill.hasPrev {
		return
	}

	offset := time - skill.prevTime

	skill.currentSectionPeak = skill.individualStrain*strain.DecayFactor(individualDecayBase, offset) +
		skill.overallStrain*strain.DecayFactor(overallDecayBase, offset)
}

func (skill *Skill) GetCurrentStrainPeaks() []float64 {
	return skill.strainPeaks
}

func (skill *Skill) DifficultyValue() float64 {
	return strain.WeightedSum(skill.strainPeaks, decayWeight)
}

func (skill *Skill) strainValueOf(current DifficultyObject) float64 {
	holdFactor := 1.0
	holdAddition := 0.0

	for i, holdEnd := range skill.holdEndTimes {
		if holdEnd-current.BaseStart > 1 && current.BaseEnd-holdEnd > 1 {
			holdAddition = 1
		}

		// releasing together with another note is easy
		if math.Abs(current.BaseEnd-holdEnd) <= 1 {
			holdAddition = 0
		}

		if holdEnd-current.BaseEnd > 1 {
			holdFactor = 1.25
		}

		skill.individualStrains[i] *= strain.DecayFactor(individualDecayBase, current.Delta)
	}

	skill.holdEndTimes[current.Column] = current.BaseEnd

	skill.individualStrains[current.Column] += 2 * holdFactor
	skill.individualStrain = skill.individualStrains[current.Column]

	skill.overallStrain = skill.overallStrain*strain.DecayFactor(overallDecayBase, current.Delta) + (1+holdAddition)*holdFactor

	return skill.individualStrain + skill.overallStrain - skill.currentStrain
}
