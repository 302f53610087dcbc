package skills

import (
	"github.com/Givikap120/strainarchive/app/rulesets/strain"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

const (
	difficultyMultiplier = 0.084375

	RhythmSkillMultiplier  = 0.2 * difficultyMultiplier
	ColourSkillMultiplier  = 0.375 * difficultyMultiplier
	StaminaSkillMultiplier = 0.375 * difficultyMultiplier
)

// CombinedPeaks merges per-section peaks of the three skills, zero sections included
func CombinedPeaks(rhythm *Rhythm, colour *Colour, stamina *Stamina) []float64 {
	colourPeaks := colour.GetCurrentStrainPeaks()
	rhythmPeaks := rhythm.GetCurrentStrainPeaks()
	staminaPeaks := stamina.GetCurrentStrainPeaks()

	peaks := make([]float64, len(colourPeaks))

	for i := range colourPeaks {
		peak := mutils.Norm(1.5, colourPeaks[i]*ColourSkillMultiplier, staminaPeaks[i]*StaminaSkillMultiplier)
		peaks[i] = mutils.Norm(2, peak, rhythmPeaks[i]*RhythmSkillMultiplier)
	}

	return peaks
}

// CombinedDifficultyValue is the weighted sum of positive combined peaks
func CombinedDifficultyValue(rhythm *Rhythm, colour *Colour, stamina *Stamina) float64 {
	return strain.WeightedSum(strain.RetainPositive(CombinedPeaks(rhythm, colour, stamina)), DecayWeight)
}
