package taikoppv1

import (
	"github.com/Givikap120/strainarchive/app/rulesets/strain"
	"github.com/Givikap120/strainarchive/framework/math/math32"
)

const (
	rhythmChangeBaseThreshold float32 = 0.2

	strainDecayBase float32 = 0.3
	decayWeight     float32 = 0.9
)

type colourSwitch uint8

const (
	switchNone colourSwitch = iota
	switchEven
	switchOdd
)

// Skill is the single taiko strain, rewarding colour and rhythm changes between hits
type Skill struct {
	currentStrain      float32
	currentSectionPeak float32
	strainPeaks        []float32

	sameColourCount  int
	lastColourSwitch colourSwitch

	prevDelta float32
	hasPrev   bool
}

func NewSkill() *Skill {
	return &Skill{
		currentStrain:      1,
		currentSectionPeak: 1,
		sameColourCount:    1,
	}
}

func (skill *Skill) Process(current DifficultyObject) {
	skill.currentStrain *= strain.DecayFactor(strainDecayBase, current.Delta)
	skill.currentStrain += skill.strainValueOf(current)
	skill.currentSectionPeak = max(skill.currentStrain, skill.currentSectionPeak)

	skill.prevDelta = current.Delta
	skill.hasPrev = true
}

func (skill *Skill) SaveCurrentPeak() {
	skill.strainPeaks = append(skill.strainPeaks, skill.currentSectionPeak)
}

// StartNewSectionFrom decays strain by the boundary time minus the previous delta, not by the
// time elapsed since the previous object
func (skill *Skill) StartNewSectionFrom(time float32) {
	if !skill.hasPrev {
		return
	}

	skill.currentSectionPeak = skill.currentStrain * strain.DecayFactor(strainDecayBase, time-skill.prevDelta)
}

func (skill *Skill) GetCurrentStrainPeaks() []float32 {
	return skill.strainPeaks
}

func (skill *Skill) DifficultyValue() float32 {
	return strain.WeightedSum(skill.strainPeaks, decayWeight)
}

func (skill *Skill) strainValueOf(current DifficultyObject) float32 {
	addition := float32(1)

	if current.IsHit && current.PrevIsHit && current.Delta < 1000 {
		if skill.hasColourChange(current) {
			addition += 0.75
		}

		if skill.hasRhythmChange(current) {
			addition++
		}
	} else {
		skill.lastColourSwitch = switchNone
		skill.sameColourCount = 1
	}

	additionFactor := float32(1)
	if current.Delta < 50 {
		additionFactor = 0.4 + 0.6*current.Delta/50
	}

	return additionFactor * addition
}

func (skill *Skill) hasRhythmChange(current DifficultyObject) bool {
	const epsilon = 1.1920929e-07

	if math32.Abs(current.Delta) < epsilon || !skill.hasPrev || math32.Abs(skill.prevDelta) < epsilon {
		return false
	}

	ratio := max(skill.prevDelta/current.Delta, current.Delta/skill.prevDelta)
	if ratio >= 8 {
		return false
	}

	difference := math32.Mod(math32.Log2(ratio), 1)

	return difference > rhythmChangeBaseThreshold && difference < 1-rhythmChangeBaseThreshold
}

func (skill *Skill) hasColourChange(current DifficultyObject) bool {
	if !current.HasTypeChange {
		skill.sameColourCount++
		return false
	}

	oldSwitch := skill.lastColourSwitch

	newSwitch := switchOdd
	if skill.sameColourCount%2 == 0 {
		newSwitch = switchEven
	}

	skill.lastColourSwitch = newSwitch
	skill.sameColourCount = 1

	return oldSwitch != switchNone && oldSwitch != newSwitch
}
