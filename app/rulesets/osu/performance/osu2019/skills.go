package osu2019

import (
	"math"

	"github.com/Givikap120/strainarchive/app/rulesets/strain"
	"github.com/Givikap120/strainarchive/framework/math/math32"
)

const (
	decayWeight float32 = 0.9

	aimAngleBonusBegin   = math.Pi / 3
	speedAngleBonusBegin = 5 * math.Pi / 6

	timingThreshold        float32 = 107
	singleSpacingThreshold float32 = 125

	minSpeedBonus        float32 = 75
	maxSpeedBonus        float32 = 45
	speedBalancingFactor float32 = 40
)

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

func (kind SkillKind) strainValueOf(current DifficultyObject, prev *DifficultyObject) float32 {
	if kind == Aim {
		return aimValueOf(current, prev)
	}

	return speedValueOf(current)
}

func applyDiminishingExp(value float32) float32 {
	return math32.Pow(value, 0.99)
}

func aimValueOf(current DifficultyObject, prev *DifficultyObject) float32 {
	result := float32(0)

	if prev != nil && current.HasAngle && current.Angle > aimAngleBonusBegin {
		const scale = 90

		angleBonus := math32.Sqrt(
			max(prev.JumpDistance-scale, 0) *
				math32.Pow(math32.Sin(current.Angle-aimAngleBonusBegin), 2) *
				max(current.JumpDistance-scale, 0),
		)

		result = 1.5 * applyDiminishingExp(max(0, angleBonus)) / max(timingThreshold, prev.StrainTime)
	}

	jumpDistanceExp := applyDiminishingExp(current.JumpDistance)
	travelDistanceExp := applyDiminishingExp(current.TravelDistance)

	distanceExp := jumpDistanceExp + travelDistanceExp + math32.Sqrt(travelDistanceExp*jumpDistanceExp)

	return max(result+distanceExp/max(current.StrainTime, timingThreshold), distanceExp/current.StrainTime)
}

func speedValueOf(current DifficultyObject) float32 {
	distance := min(singleSpacingThreshold, current.TravelDistance+current.JumpDistance)
	deltaTime := max(maxSpeedBonus, current.Delta)

	speedBonus := float32(1)
	if deltaTime < minSpeedBonus {
		speedBonus = 1 + math32.Pow((minSpeedBonus-deltaTime)/speedBalancingFactor, 2)
	}

	angleBonus := float32(1)

	if current.HasAngle && current.Angle < speedAngleBonusBegin {
		angleBonus = 1 + math32.Pow(math32.Sin(1.5*(speedAngleBonusBegin-current.Angle)), 2)/3.57

		if current.Angle < math.Pi/2 {
			angleBonus = 1.28

			if distance < 90 {
				if current.Angle < math.Pi/4 {
					angleBonus += (1 - angleBonus) * min((90-distance)/10, 1)
				} else {
					angleBonus += (1 - angleBonus) * min((90-distance)/10, 1) *
						math32.Sin((math.Pi/2-current.Angle)/(math.Pi/4))
				}
			}
		}
	}

	return (1 + (speedBonus-1)*0.75) * angleBonus *
		(0.95 + speedBonus*math32.Pow(distance/singleSpacingThreshold, 3.5)) / current.StrainTime
}

// Skill accumulates decaying strain of a single kind, remembering the previous object
type Skill struct {
	Kind SkillKind

	currentStrain      float32
	currentSectionPeak float32
	strainPeaks        []float32

	prev    DifficultyObject
	hasPrev bool
}

func NewSkill(kind SkillKind) *Skill {
	return &Skill{
		Kind:               kind,
		currentStrain:      1,
		currentSectionPeak: 1,
	}
}

func (skill *Skill) Process(current DifficultyObject) {
	var prev *DifficultyObject
	if skill.hasPrev {
		prev = &skill.prev
	}

	skill.currentStrain *= strain.DecayFactor(skill.Kind.decayBase(), current.Delta)
	skill.currentStrain += skill.Kind.strainValueOf(current, prev) * skill.Kind.multiplier()
	skill.currentSectionPeak = max(skill.currentStrain, skill.currentSectionPeak)

	skill.prev = current
	skill.hasPrev = true
}

func (skill *Skill) SaveCurrentPeak() {
	skill.strainPeaks = append(skill.strainPeaks, skill.currentSectionPeak)
}

func (skill *Skill) StartNewSectionFrom(time float32) {
	if skill.hasPrev {
		skill.currentSectionPeak = skill.currentStrain * strain.DecayFactor(skill.Kind.decayBase(), time-skill.prev.Time)
	}
}

func (skill *Skill) GetCurrentStrainPeaks() []float32 {
	return skill.strainPeaks
}

func (skill *Skill) DifficultyValue() float32 {
	return strain.WeightedSum(skill.strainPeaks, decayWeight)
}
