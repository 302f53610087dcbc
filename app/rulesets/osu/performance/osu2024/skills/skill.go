package skills

import (
	"math"
	"slices"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024/preprocessing"
	"github.com/Givikap120/strainarchive/app/rulesets/strain"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

const (
	SectionLength = 400.0
	DecayWeight   = 0.9

	difficultyMultiplier = 0.0675
)

// Skill is the section based strain accumulator every osu!standard skill embeds.
// Implementations provide StrainValueOf and CalculateInitialStrain.
type Skill struct {
	// StrainValueOf returns the strain after processing current, it mutates skill state
	StrainValueOf func(current *preprocessing.DifficultyObject) float64

	// CalculateInitialStrain returns the strain carried into the section starting at time
	CalculateInitialStrain func(time float64, current *preprocessing.DifficultyObject) float64

	// ReducedSectionCount highest peaks are scaled down towards ReducedStrainBaseline
	ReducedSectionCount   int
	ReducedStrainBaseline float64

	diff *difficulty.Difficulty

	strainPeaks        []float64
	currentSectionPeak float64
	currentSectionEnd  float64

	// strainPeaksSorted mirrors strainPeaks in descending order, maintained only for step calculations
	strainPeaksSorted []float64
	stepCalc          bool

	objectStrains []float64

	difficulty float64
}

func NewSkill(d *difficulty.Difficulty, stepCalc bool) *Skill {
	return &Skill{
		ReducedSectionCount:   10,
		ReducedStrainBaseline: 0.75,
		diff:                  d,
		stepCalc:              stepCalc,
	}
}

// Process calculates the strain value of current and saves peaks of every section it passed
func (skill *Skill) Process(current *preprocessing.DifficultyObject) {
	if current.Index == 0 {
		skill.currentSectionEnd = math.Ceil(current.StartTime/SectionLength) * SectionLength
	}

	for current.StartTime > skill.currentSectionEnd {
		skill.saveCurrentPeak()
		skill.currentSectionPeak = skill.CalculateInitialStrain(skill.currentSectionEnd, current)
		skill.currentSectionEnd += SectionLength
	}

	strainValue := skill.StrainValueOf(current)

	skill.objectStrains = append(skill.objectStrains, strainValue)
	skill.currentSectionPeak = max(strainValue, skill.currentSectionPeak)
}

func (skill *Skill) saveCurrentPeak() {
	skill.strainPeaks = append(skill.strainPeaks, skill.currentSectionPeak)

	if skill.stepCalc {
		skill.strainPeaksSorted = insertDescending(skill.strainPeaksSorted, skill.currentSectionPeak)
	}
}

func insertDescending(sorted []float64, value float64) []float64 {
	i, _ := slices.BinarySearchFunc(sorted, value, func(e, target float64) int {
		switch {
		case e > target:
			return -1
		case e < target:
			return 1
		}

		return 0
	})

	return slices.Insert(sorted, i, value)
}

// GetCurrentStrainPeaks returns saved peaks followed by the peak of the unfinished section
func (skill *Skill) GetCurrentStrainPeaks() []float64 {
	peaks := make([]float64, len(skill.strainPeaks)+1)
	copy(peaks, skill.strainPeaks)
	peaks[len(peaks)-1] = skill.currentSectionPeak

	return peaks
}

func (skill *Skill) sortedPeaks() []float64 {
	if skill.stepCalc {
		return insertDescending(slices.Clone(skill.strainPeaksSorted), skill.currentSectionPeak)
	}

	peaks := skill.GetCurrentStrainPeaks()
	strain.SortDescending(peaks)

	return peaks
}

// DifficultyValue reduces the highest sections towards the baseline and sums peaks with decaying weight
func (skill *Skill) DifficultyValue() float64 {
	strains := strain.RetainPositive(skill.sortedPeaks())

	for i := 0; i < min(len(strains), skill.ReducedSectionCount); i++ {
		scale := math.Log10(mutils.Lerp(1, 10, mutils.Clamp(float64(i)/float64(skill.ReducedSectionCount), 0, 1)))
		strains[i] *= mutils.Lerp(skill.ReducedStrainBaseline, 1.0, scale)
	}

	skill.difficulty = strain.WeightedSum(strains, DecayWeight)

	return skill.difficulty
}

// CountDifficultStrains estimates how many objects are as hard as the hardest section,
// DifficultyValue has to be called first
func (skill *Skill) CountDifficultStrains() float64 {
	if skill.difficulty == 0 {
		return 0
	}

	consistentTopStrain := skill.difficulty / 10

	sum := 0.0
	for _, s := range skill.objectStrains {
		sum += 1.1 / (1 + math.Exp(-10*(s/consistentTopStrain-0.88)))
	}

	return sum
}

func DefaultDifficultyToPerformance(difficulty float64) float64 {
	return math.Pow(5.0*max(1.0, difficulty/difficultyMultiplier)-4.0, 3.0) / 100000.0
}
