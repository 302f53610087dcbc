package skills

import (
	"github.com/Givikap120/strainarchive/app/rulesets/strain"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/preprocessing"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

const (
	finalMultiplier = 0.0625

	RhythmSkillMultiplier  = 0.2 * finalMultiplier
	ColourSkillMultiplier  = 0.375 * finalMultiplier
	StaminaSkillMultiplier = 0.375 * finalMultiplier
)

// Peaks runs rhythm, colour and stamina side by side and combines their section peaks
type Peaks struct {
	Rhythm  *Rhythm
	Colour  *Colour
	Stamina *Stamina
}

func NewPeaks() *Peaks {
	return &Peaks{
		Rhythm:  NewRhythmSkill(),
		Colour:  NewColourSkill(),
		Stamina: NewStaminaSkill(),
	}
}

func (p *Peaks) Process(current *preprocessing.DifficultyObject) {
	p.Rhythm.Process(current)
	p.Colour.Process(current)
	p.Stamina.Process(current)
}

func (p *Peaks) RhythmDifficultyValue() float64 {
	return p.Rhythm.DifficultyValue() * RhythmSkillMultiplier
}

func (p *Peaks) ColourDifficultyValue() float64 {
	return p.Colour.DifficultyValue() * ColourSkillMultiplier
}

func (p *Peaks) StaminaDifficultyValue() float64 {
	return p.Stamina.DifficultyValue() * StaminaSkillMultiplier
}

// CombinedPeaks returns the combined peak of every section, zero sections included
func (p *Peaks) CombinedPeaks() []float64 {
	colourPeaks := p.Colour.GetCurrentStrainPeaks()
	rhythmPeaks := p.Rhythm.GetCurrentStrainPeaks()
	staminaPeaks := p.Stamina.GetCurrentStrainPeaks()

	peaks := make([]float64, len(colourPeaks))

	for i := range colourPeaks {
		colourPeak := colourPeaks[i] * ColourSkillMultiplier
		rhythmPeak := rhythmPeaks[i] * RhythmSkillMultiplier
		staminaPeak := staminaPeaks[i] * StaminaSkillMultiplier

		peaks[i] = mutils.Norm(2, mutils.Norm(1.5, colourPeak, staminaPeak), rhythmPeak)
	}

	return peaks
}

func (p *Peaks) DifficultyValue() float64 {
	return strain.WeightedSum(strain.RetainPositive(p.CombinedPeaks()), DecayWeight)
}
