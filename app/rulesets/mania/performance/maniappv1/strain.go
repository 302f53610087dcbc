package maniappv1

import (
	"github.com/Givikap120/strainarchive/app/rulesets/strain"
	"github.com/Givikap120/strainarchive/framework/math/math32"
)

const (
	individualDecayBase float32 = 0.125
	overallDecayBase    float32 = 0.3
	decayWeight         float32 = 0.9
)

// Skill tracks strain per column plus an overall strain shared by all columns
type Skill struct {
	currentStrain      float32
	currentSectionPeak float32
	strainPeaks        []float32

	holdEndTimes      []float32
	individualStrains []float32
	individualStrain  float32
	overallStrain     float32

	prevTime float32
	hasPrev  bool
}

func NewSkill(columns int) *Skill {
	return &Skill{
		currentStrain:      1,
		currentSectionPeak: 1,
		holdEndTimes:       make([]float32, columns),
		individualStrains:  make([]float32, columns),
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

func (skill *Skill) StartNewSectionFrom(time float32) {
	if !skill.hasPrev {
		return
	}

	skill.currentSectionPeak = skill.peakStrain(time - skill.prevTime)
}

func (skill *Skill) GetCurrentStrainPeaks() []float32 {
	return skill.strainPeaks
}

func (skill *Skill) DifficultyValue() float32 {
	return strain.WeightedSum(skill.strainPeaks, decayWeight)
}

func (skill *Skill) peakStrain(offset float32) float32 {
	return skill.individualStrain*strain.DecayFactor(individualDecayBase, offset) +
		skill.overallStrain*strain.DecayFactor(overallDecayBase, offset)
}

// strainValueOf returns the difference to the current strain, so the strain always equals the
// current column strain plus the overall strain
func (skill *Skill) strainValueOf(current DifficultyObject) float32 {
	holdFactor := float32(1)
	holdAddition := float32(0)

	for i, holdEnd := range skill.holdEndTimes {
		// an overlapping hold ending earlier makes the release awkward
		if holdEnd-current.StartTime > 1 && current.EndTime-holdEnd > 1 {
			holdAddition = 1
		}

		// releasing together with another note is easy
		if math32.Abs(current.EndTime-holdEnd) <= 1 {
			holdAddition = 0
		}

		if holdEnd-current.EndTime > 1 {
			holdFactor = 1.25
		}

		skill.individualStrains[i] *= strain.DecayFactor(individualDecayBase, current.Delta)
	}

	skill.holdEndTimes[current.Column] = current.EndTime

	skill.individualStrains[current.Column] += 2 * holdFactor
	skill.individualStrain = skill.individualStrains[current.Column]

	skill.overallStrain = skill.overallStrain*strain.DecayFactor(overallDecayBase, current.Delta) + (1+holdAddition)*holdFactor

	return skill.individualStrain + skill.overallStrain - skill.currentStrain
}
