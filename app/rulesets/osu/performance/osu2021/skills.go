package osu2021

import (
	"math"

	"github.com/Givikap120/strainarchive/app/rulesets/strain"
	"github.com/Givikap120/strainarchive/framework/math/math32"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

const (
	decayWeight float32 = 0.9

	aimAngleBonusBegin   = math.Pi / 3
	speedAngleBonusBegin = 5 * math.Pi / 6

	timingThreshold        float32 = 107
	singleSpacingThreshold float32 = 125

	minSpeedBonus        float32 = 75
	speedBalancingFactor float32 = 40
)

type SkillKind int

const (
	Aim SkillKind = iota
	Speed
)

// Skill accumulates decaying strain of a single kind
type Skill struct {
	Kind SkillKind

	// greatWindow is the clock adjusted half width of the 300 window, speed only
	greatWindow float32

	currentStrain      float32
	currentSectionPeak float32
	strainPeaks        []float32

	prev    DifficultyObject
	hasPrev bool
}

func NewAimSkill() *Skill {
	return &Skill{
		Kind:               Aim,
		currentStrain:      1,
		currentSectionPeak: 1,
	}
}

func NewSpeedSkill(greatWindow float32) *Skill {
	return &Skill{
		Kind:               Speed,
		greatWindow:        greatWindow,
		currentStrain:      1,
		currentSectionPeak: 1,
	}
}

func (skill *Skill) multiplier() float32 {
	if skill.Kind == Speed {
		return 1400
	}

	return 26.25
}

func (skill *Skill) decayBase() float32 {
	if skill.Kind == Speed {
		return 0.3
	}

	return 0.15
}

func (skill *Skill) strainValueOf(current DifficultyObject) float32 {
	var prev *DifficultyObject
	if skill.hasPrev {
		prev = &skill.prev
	}

	if skill.Kind == Aim {
		return aimValueOf(current, prev)
	}

	return speedValueOf(current, prev, skill.greatWindow)
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

		result = 1.5 * math32.Pow(max(0, angleBonus), 0.99) / max(timingThreshold, prev.StrainTime)
	}

	jumpDistanceExp := math32.Pow(current.JumpDistance, 0.99)
	travelDistanceExp := math32.Pow(current.TravelDistance, 0.99)

	distanceExp := jumpDistanceExp + travelDistanceExp + math32.Sqrt(travelDistanceExp*jumpDistanceExp)

	return max(result+distanceExp/max(current.StrainTime, timingThreshold), distanceExp/current.StrainTime)
}

func speedValueOf(current DifficultyObject, prev *DifficultyObject, greatWindow float32) float32 {
	distance := min(singleSpacingThreshold, current.TravelDistance+current.JumpDistance)
	strainTime := current.StrainTime

	greatWindowFull := greatWindow * 2
	speedWindowRatio := strainTime / greatWindowFull

	// Fast doubles with long gaps between them
	if prev != nil && strainTime < greatWindowFull && prev.StrainTime > strainTime {
		strainTime = mutils.Lerp(prev.StrainTime, strainTime, speedWindowRatio)
	}

	strainTime /= mutils.Clamp((strainTime/greatWindowFull)/0.93, 0.92, 1)

	speedBonus := float32(1)
	if strainTime < minSpeedBonus {
		speedBonus = 1 + math32.Pow((minSpeedBonus-strainTime)/speedBalancingFactor, 2)
	}

	angleBonus := float32(1)

	if current.HasAngle && current.Angle < speedAngleBonusBegin {
		angleBonus = 1 + math32.Pow(math32.Sin(1.5*(speedAngleBonusBegin-current.Angle)), 2)/3.57

		if current.Angle < math.Pi/2 {
			angleBonus = 1.28

			if distance < 90 && current.Angle < math.Pi/4 {
				angleBonus += (1 - angleBonus) * min((90-distance)/10, 1)
			} else if distance < 90 {
				angleBonus += (1 - angleBonus) * min((90-distance)/10, 1) *
					math32.Sin((math.Pi/2-current.Angle)/(math.Pi/4))
			}
		}
	}

	return (1 + (speedBonus-1)*0.75) * angleBonus *
		(0.95 + speedBonus*math32.Pow(distance/singleSpacingThreshold, 3.5)) / strainTime
}

func (skill *Skill) Process(current DifficultyObject) {
	skill.currentStrain *= strain.DecayFactor(skill.decayBase(), current.Delta)
	skill.currentStrain += skill.strainValueOf(current) * skill.multiplier()
	skill.currentSectionPeak = max(skill.currentStrain, skill.currentSectionPeak)

	skill.prev = current
	skill.hasPrev = true
}

func (skill *Skill) SaveCurrentPeak() {
	skill.strainPeaks = append(skill.strainPeaks, skill.currentSectionPeak)
}

func (skill *Skill) StartNewSectionFrom(time float32) {
	if skill.hasPrev {
		skill.currentSectionPeak = skill.currentStrain * strain.DecayFactor(skill.decayBase(), time-skill.prev.Time)
	}
}

func (skill *Skill) GetCurrentStrainPeaks() []float32 {
	return skill.strainPeaks
}

func (skill *Skill) DifficultyValue() float32 {
	return strain.WeightedSum(skill.strainPeaks, decayWeight)
}
