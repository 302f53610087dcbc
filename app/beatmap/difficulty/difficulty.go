package difficulty

import (
	"math"

	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

const (
	HitFadeIn      = 400.0
	MinClockRate   = 0.01
	MaxClockRate   = 100.0
	objectRadius   = 64.0
	PlayfieldWidth = 512.0
)

// Difficulty holds map settings together with everything that changes them: mods, custom speed
// and the number of objects passed in a partial play.
type Difficulty struct {
	baseHP, baseCS, baseOD, baseAR float64

	HP, CS, OD, AR float64

	// Speed is the effective clock rate
	Speed float64

	// Values suffixed with U are not adjusted by Speed
	PreemptU      float64
	Preempt       float64
	TimeFadeIn    float64
	CircleRadiusU float64
	Hit50U        float64
	Hit100U       float64
	Hit300U       float64

	// ARReal and ODReal are AR and OD as perceived after Speed is applied
	ARReal float64
	ODReal float64

	Mods Modifier

	// PassedObjects limits calculation to the first N objects, 0 or less means all
	PassedObjects int

	// Lazer selects osu!lazer scoring rules where revisions distinguish them
	Lazer bool

	// ClassicSliderAccuracy marks lazer scores played with the Classic mod, slider heads then don't count for accuracy
	ClassicSliderAccuracy bool

	customSpeed float64
}

func NewDifficulty(hp, cs, od, ar float64) *Difficulty {
	diff := &Difficulty{
		baseHP: hp,
		baseCS: cs,
		baseOD: od,
		baseAR: ar,
		Lazer:  true,
	}

	diff.calculate()

	return diff
}

func (diff *Difficulty) calculate() {
	hp, cs, od, ar := diff.baseHP, diff.baseCS, diff.baseOD, diff.baseAR

	if diff.Mods.Active(HardRock) {
		ar = min(ar*1.4, 10)
		cs = min(cs*1.3, 10)
		od = min(od*1.4, 10)
		hp = min(hp*1.4, 10)
	}

	if diff.Mods.Active(Easy) {
		ar /= 2
		cs /= 2
		od /= 2
		hp /= 2
	}

	diff.HP, diff.CS, diff.OD, diff.AR = hp, cs, od, ar

	diff.Speed = diff.Mods.ClockRate()
	if diff.customSpeed > 0 {
		diff.Speed = diff.customSpeed
	}

	diff.CircleRadiusU = objectRadius * (1.0 - 0.7*(cs-5)/5) / 2
	diff.PreemptU = mutils.DifficultyRange(ar, 450, 1200, 1800)
	diff.Preempt = diff.PreemptU / diff.Speed
	diff.TimeFadeIn = HitFadeIn * min(1, diff.PreemptU/450)

	diff.Hit50U = 200 - 10*od
	diff.Hit100U = 140 - 8*od
	diff.Hit300U = 80 - 6*od

	diff.ARReal = PreemptToAR(diff.Preempt)
	diff.ODReal = (80 - diff.Hit300U/diff.Speed) / 6
}

func (diff *Difficulty) SetMods(mods Modifier) {
	diff.Mods = mods
	diff.calculate()
}

// SetCustomSpeed overrides the mod clock rate, the value is clamped to 0.01..100
func (diff *Difficulty) SetCustomSpeed(speed float64) {
	diff.customSpeed = mutils.Clamp(speed, MinClockRate, MaxClockRate)
	diff.calculate()
}

func (diff *Difficulty) GetCustomSpeed() float64 {
	return diff.customSpeed
}

func (diff *Difficulty) CheckModActive(mods Modifier) bool {
	return diff.Mods.Active(mods)
}

// UsingClassicSliderAccuracy reports whether slider heads are excluded from accuracy
func (diff *Difficulty) UsingClassicSliderAccuracy() bool {
	return !diff.Lazer || diff.ClassicSliderAccuracy
}

func (diff *Difficulty) GetBaseHP() float64 {
	return diff.baseHP
}

func (diff *Difficulty) GetBaseCS() float64 {
	return diff.baseCS
}

func (diff *Difficulty) GetBaseOD() float64 {
	return diff.baseOD
}

func (diff *Difficulty) GetBaseAR() float64 {
	return diff.baseAR
}

// Take returns how many of total objects take part in the calculation
func (diff *Difficulty) Take(total int) int {
	if diff.PassedObjects <= 0 {
		return total
	}

	return min(diff.PassedObjects, total)
}

func (diff *Difficulty) Clone() *Difficulty {
	clone := *diff
	return &clone
}

func PreemptToAR(preempt float64) float64 {
	if preempt > 1200 {
		return (1800 - preempt) / 120
	}

	return (1200-preempt)/150 + 5
}

// HitWindowToOD converts a 300 hit window back to OD, used after speed adjustments
func HitWindowToOD(window float64) float64 {
	return (80 - window) / 6
}

// IsNaNOrInf is a convenience guard for values that must never reach a reducer
func IsNaNOrInf(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
