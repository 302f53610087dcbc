package catch2022

import (
	"math"
	"slices"

	"github.com/Givikap120/strainarchive/app/rulesets/strain"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

const (
	SectionLength = 750.0
	DecayWeight   = 0.94

	absolutePlayerPositioningError = 16.0
	directionChangeBonus           = 21.0

	skillMultiplier = 900.0
	strainDecayBase = 0.2

	// edgeDashThreshold is the distance to a hyper dash below which a walk counts as an edge dash
	edgeDashThreshold = 20.0
)

type Movement struct {
	strainPeaks        []float64
	currentSectionPeak float64
	currentSectionEnd  float64

	currentStrain float64
	lastStartTime float64

	hasLastPlayerPosition bool
	lastPlayerPosition    float32
	lastDistanceMoved     float32
	lastStrainTime        float64
}

func NewMovement() *Movement {
	return &Movement{}
}

func (m *Movement) Process(current *DifficultyObject) {
	if current.Index == 0 {
		m.currentSectionEnd = math.Ceil(current.StartTime/SectionLength) * SectionLength
	}

	for current.StartTime > m.currentSectionEnd {
		m.strainPeaks = append(m.strainPeaks, m.currentSectionPeak)
		m.currentSectionPeak = m.currentStrain * strain.DecayFactor(strainDecayBase, m.currentSectionEnd-m.lastStartTime)
		m.currentSectionEnd += SectionLength
	}

	m.currentStrain *= strain.DecayFactor(strainDecayBase, current.DeltaTime)
	m.currentStrain += m.strainValueOf(current) * skillMultiplier

	m.currentSectionPeak = max(m.currentStrain, m.currentSectionPeak)
	m.lastStartTime = current.StartTime
}

// GetCurrentStrainPeaks returns saved peaks followed by the peak of the unfinished section
func (m *Movement) GetCurrentStrainPeaks() []float64 {
	return append(slices.Clone(m.strainPeaks), m.currentSectionPeak)
}

func (m *Movement) DifficultyValue() float64 {
	return strain.WeightedSum(m.GetCurrentStrainPeaks(), DecayWeight)
}

func (m *Movement) strainValueOf(current *DifficultyObject) float64 {
	if !m.hasLastPlayerPosition {
		m.hasLastPlayerPosition = true
		m.lastPlayerPosition = current.LastNormalizedPosition
	}

	epsilon := float32(normalizedHitObjectRadius - absolutePlayerPositioningError)

	position := mutils.Clamp(m.lastPlayerPosition, current.NormalizedPosition-epsilon, current.NormalizedPosition+epsilon)
	distanceMoved := position - m.lastPlayerPosition
	absMoved := float64(mutils.Abs(distanceMoved))

	weightedStrainTime := current.StrainTime + 13 + 3/current.ClockRate

	distanceAddition := math.Pow(absMoved, 1.3) / 510
	sqrtStrain := math.Sqrt(weightedStrainTime)

	if absMoved > 0.1 {
		if mutils.Abs(m.lastDistanceMoved) > 0.1 && mutils.Signum(distanceMoved) != mutils.Signum(m.lastDistanceMoved) {
			bonusFactor := min(50, absMoved) / 50
			antiflowFactor := max(min(70, float64(mutils.Abs(m.lastDistanceMoved)))/70, 0.38)

			distanceAddition += directionChangeBonus / math.Sqrt(m.lastStrainTime+16) * bonusFactor * antiflowFactor *
				max(1-math.Pow(weightedStrainTime/1000, 3), 0)
		}

		// Every movement gives some weight to streams
		distanceAddition += 12.5 * min(absMoved, normalizedHitObjectRadius*2) / (normalizedHitObjectRadius * 6) / sqrtStrain
	}

	last := current.LastObject

	if last.DistanceToHyperDash <= edgeDashThreshold {
		edgeDashBonus := 0.0

		if last.HyperDash {
			// a hyper dash always lands on the fruit
			position = current.NormalizedPosition
		} else {
			edgeDashBonus += 5.7
		}

		// Edge dashes are easier at lower ms values
		distanceAddition *= 1 + edgeDashBonus*((edgeDashThreshold-float64(last.DistanceToHyperDash))/edgeDashThreshold)*
			math.Pow(min(current.StrainTime*current.ClockRate, 265)/265, 1.5)
	}

	m.lastPlayerPosition = position
	m.lastDistanceMoved = distanceMoved
	m.lastStrainTime = current.StrainTime

	return distanceAddition / weightedStrainTime
}
