package catchppv1

import (
	"math"

	"github.com/Givikap120/strainarchive/app/rulesets/strain"
	"github.com/Givikap120/strainarchive/framework/math/math32"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

const (
	absolutePlayerPositioningError float32 = 16
	normalizedHitObjectRadius      float32 = 41
	positionEpsilon                        = normalizedHitObjectRadius - absolutePlayerPositioningError
	directionChangeBonus           float32 = 12.5

	skillMultiplier = 850.0
	strainDecayBase = 0.2
	decayWeight     = 0.94
)

type difficultyObject struct {
	Time float32

	NormalizedPosition     float32
	LastNormalizedPosition float32

	// Last is the object before, its hyper dash state shapes the movement into this one
	Last *catchObject

	Delta      float64
	StrainTime float64
}

func newDifficultyObject(current, last *catchObject, halfCatcherWidth float32, clockRate float64) *difficultyObject {
	scalingFactor := normalizedHitObjectRadius / halfCatcherWidth
	delta := float64(current.Time-last.Time) / clockRate

	return &difficultyObject{
		Time:                   current.Time,
		NormalizedPosition:     current.X * scalingFactor,
		LastNormalizedPosition: last.X * scalingFactor,
		Last:                   last,
		Delta:                  delta,
		StrainTime:             max(25, delta),
	}
}

type Movement struct {
	hasLastPlayerPosition bool
	lastPlayerPosition    float32
	lastDistanceMoved     float32

	currentStrain      float64
	currentSectionPeak float64

	strainPeaks []float64
	prevTime    float64
}

func NewMovement() *Movement {
	return &Movement{
		currentStrain:      1,
		currentSectionPeak: 1,
	}
}

func (m *Movement) SaveCurrentPeak() {
	m.strainPeaks = append(m.strainPeaks, m.currentSectionPeak)
}

func (m *Movement) StartNewSectionFrom(time float64) {
	m.currentSectionPeak = m.currentStrain * strain.DecayFactor(strainDecayBase, time-m.prevTime)
}

func (m *Movement) Process(current *difficultyObject) {
	m.currentStrain *= strain.DecayFactor(strainDecayBase, current.Delta)
	m.currentStrain += m.strainValueOf(current) * skillMultiplier
	m.currentSectionPeak = max(m.currentStrain, m.currentSectionPeak)
	m.prevTime = float64(current.Time)
}

func (m *Movement) StrainPeaks() []float64 {
	return m.strainPeaks
}

func (m *Movement) DifficultyValue() float64 {
	return strain.WeightedSum(m.strainPeaks, decayWeight)
}

func (m *Movement) strainValueOf(current *difficultyObject) float64 {
	if !m.hasLastPlayerPosition {
		m.hasLastPlayerPosition = true
		m.lastPlayerPosition = current.LastNormalizedPosition
	}

	lastPosition := m.lastPlayerPosition
	position := mutils.Clamp(lastPosition, current.NormalizedPosition-positionEpsilon, current.NormalizedPosition+positionEpsilon)

	distanceMoved := position - lastPosition
	absMoved := math32.Abs(distanceMoved)

	distanceAddition := math32.Pow(absMoved, 1.3) / 500
	sqrtStrain := float32(math.Sqrt(current.StrainTime))

	bonus := float32(0)

	if absMoved > 0.1 {
		if math32.Abs(m.lastDistanceMoved) > 0.1 && mutils.Signum(distanceMoved) != mutils.Signum(m.lastDistanceMoved) {
			bonusFactor := min(absMoved, absolutePlayerPositioningError) / absolutePlayerPositioningError

			distanceAddition += directionChangeBonus / sqrtStrain * bonusFactor

			if current.Last.HyperDist <= 10 {
				bonus = 0.3 * bonusFactor
			}
		}

		distanceAddition += 7.5 * min(absMoved, normalizedHitObjectRadius*2) / (normalizedHitObjectRadius * 6) / sqrtStrain
	}

	if current.Last.HyperDist <= 10 {
		if current.Last.HyperDash {
			position = current.NormalizedPosition
		} else {
			bonus++
		}

		distanceAddition *= 1 + bonus*((10-current.Last.HyperDist)/10)
	}

	m.lastPlayerPosition = position
	m.lastDistanceMoved = distanceMoved

	return float64(distanceAddition) / current.StrainTime
}
