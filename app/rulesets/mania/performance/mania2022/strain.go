package mania2022

import (
	"math"
	"slices"

	"github.com/Givikap120/strainarchive/app/rulesets/strain"
)

const (
	SectionLength = 400.0
	DecayWeight   = 0.9

	individualDecayBase = 0.125
	overallDecayBase    = 0.3

	// releaseThreshold is the release gap in ms at which the hold addition is halved
	releaseThreshold = 24.0
)

// Strain tracks strain per column plus an overall strain shared by all columns. Its value always
// equals the current column strain plus the overall strain.
type Strain struct {
	strainPeaks        []float64
	currentSectionPeak float64
	currentSectionEnd  float64

	currentStrain float64

	startTimes        []float64
	endTimes          []float64
	individualStrains []float64

	individualStrain float64
	overallStrain    float64
}

func NewStrain(columns int) *Strain {
	return &Strain{
		startTimes:        make([]float64, columns),
		endTimes:          make([]float64, columns),
		individualStrains: make([]float64, columns),
		overallStrain:     1,
	}
}

func (s *Strain) Process(current *DifficultyObject) {
	if current.Index == 0 {
		s.currentSectionEnd = math.Ceil(current.StartTime/SectionLength) * SectionLength
	}

	for current.StartTime > s.currentSectionEnd {
		s.strainPeaks = append(s.strainPeaks, s.currentSectionPeak)
		s.currentSectionPeak = s.initialStrain(s.currentSectionEnd, current)
		s.currentSectionEnd += SectionLength
	}

	s.currentStrain += s.strainValueOf(current)
	s.currentSectionPeak = max(s.currentStrain, s.currentSectionPeak)
}

// GetCurrentStrainPeaks returns saved peaks followed by the peak of the unfinished section
func (s *Strain) GetCurrentStrainPeaks() []float64 {
	return append(slices.Clone(s.strainPeaks), s.currentSectionPeak)
}

func (s *Strain) DifficultyValue() float64 {
	return strain.WeightedSum(s.GetCurrentStrainPeaks(), DecayWeight)
}

func (s *Strain) initialStrain(time float64, current *DifficultyObject) float64 {
	offset := time - current.Previous().StartTime

	return s.individualStrain*strain.DecayFactor(individualDecayBase, offset) +
		s.overallStrain*strain.DecayFactor(overallDecayBase, offset)
}

func (s *Strain) strainValueOf(current *DifficultyObject) float64 {
	startTime, endTime := current.StartTime, current.EndTime

	isOverlapping := false

	closestEndTime := math.Abs(endTime - startTime)
	holdFactor := 1.0
	holdAddition := 0.0

	for i := range s.endTimes {
		// a previous hold is still down while this note is held past it
		isOverlapping = isOverlapping || (s.endTimes[i]-startTime > 1 && endTime-s.endTimes[i] > 1)

		if s.endTimes[i]-endTime > 1 {
			holdFactor = 1.25
		}

		closestEndTime = min(closestEndTime, math.Abs(endTime-s.endTimes[i]))

		s.individualStrains[i] *= strain.DecayFactor(individualDecayBase, startTime-s.startTimes[i])
	}

	// releases close to another release are easy, the addition is halved at releaseThreshold
	if isOverlapping {
		holdAddition = 1 / (1 + math.Exp(0.5*(releaseThreshold-closestEndTime)))
	}

	s.individualStrains[current.Column] += 2 * holdFactor
	s.individualStrain = s.individualStrains[current.Column]

	s.overallStrain = s.overallStrain*strain.DecayFactor(overallDecayBase, current.DeltaTime) + (1+holdAddition)*holdFactor

	s.startTimes[current.Column] = startTime
	s.endTimes[current.Column] = endTime

	return s.individualStrain + s.overallStrain - s.currentStrain
}
