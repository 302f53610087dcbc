// Package taiko2024 is the 2024 osu!taiko star rating and pp. Stamina counts fingers available
// around colour changes, a second single colour stamina skill measures how much of the chart is
// mono streams, and pp estimates unstable rate from the hit counts.
package taiko2024

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/api"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/preprocessing"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/taiko2024/skills"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

const CurrentVersion int = 20241007

type DifficultyCalculator struct{}

func NewDifficultyCalculator() *DifficultyCalculator {
	return &DifficultyCalculator{}
}

type skillSet struct {
	rhythm              *skills.Rhythm
	colour              *skills.Colour
	stamina             *skills.Stamina
	singleColourStamina *skills.Stamina
}

func newSkillSet() *skillSet {
	return &skillSet{
		rhythm:              skills.NewRhythmSkill(),
		colour:              skills.NewColourSkill(),
		stamina:             skills.NewStaminaSkill(false),
		singleColourStamina: skills.NewStaminaSkill(true),
	}
}

func (s *skillSet) process(current *preprocessing.DifficultyObject) {
	s.rhythm.Process(current)
	s.colour.Process(current)
	s.stamina.Process(current)
	s.singleColourStamina.Process(current)
}

func rescale(stars float64) float64 {
	if stars < 0 {
		return stars
	}

	return 10.43 * math.Log(stars/8+1)
}

// starRating rescales the combined rating. Converts lose some stars, more when colour is
// simple and stamina is high since those are easy to play with more than two keys.
func starRating(combinedRating, colourRating, staminaRating float64, isConvert bool) float64 {
	stars := rescale(combinedRating * 1.4)

	if isConvert {
		stars *= 0.925

		if colourRating < 2 && staminaRating > 8 {
			stars *= 0.8
		}
	}

	return stars
}

func hitWindows(diff *difficulty.Difficulty) (great, ok float64) {
	great = mutils.DifficultyRange(diff.OD, 20, 35, 50) / diff.Speed
	ok = mutils.DifficultyRange(diff.OD, 50, 80, 120) / diff.Speed

	return
}

// process runs every skill over difficulty objects covered by the passed hits
func process(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) (*skillSet, api.Attributes, bool) {
	taikoObjects := preprocessing.ConvertObjects(bMap)
	if len(taikoObjects) < 2 {
		return nil, api.Attributes{}, false
	}

	objectCount, combo := preprocessing.PassedCount(taikoObjects, diff.Take(len(taikoObjects)))

	diffObjects := preprocessing.CreateDifficultyObjects(taikoObjects, diff.Speed)

	set := newSkillSet()

	for _, o := range diffObjects.Objects[:max(0, objectCount-2)] {
		set.process(o)
	}

	attr := api.Attributes{
		ObjectCount: objectCount,
		MaxCombo:    combo,
		IsConvert:   preprocessing.IsConvert(bMap),
	}

	attr.GreatHitWindow, attr.OkHitWindow = hitWindows(diff)

	return set, attr, true
}

// CalculateSingle calculates the final difficulty api.Attributes of a map, PassedObjects counts hits
func (diffCalc *DifficultyCalculator) CalculateSingle(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) api.Attributes {
	set, attr, ok := process(bMap, diff)
	if !ok {
		return attr
	}

	attr.Colour = set.colour.DifficultyValue() * skills.ColourSkillMultiplier
	attr.Rhythm = set.rhythm.DifficultyValue() * skills.RhythmSkillMultiplier
	attr.Stamina = set.stamina.DifficultyValue() * skills.StaminaSkillMultiplier

	monoStamina := set.singleColourStamina.DifficultyValue() * skills.StaminaSkillMultiplier

	attr.MonoStaminaFactor = 1
	if attr.Stamina != 0 {
		attr.MonoStaminaFactor = math.Pow(monoStamina/attr.Stamina, 5)
	}

	attr.Peak = skills.CombinedDifficultyValue(set.rhythm, set.colour, set.stamina)
	attr.Total = starRating(attr.Peak, attr.Colour, attr.Stamina, attr.IsConvert)

	return attr
}

// CalculateStrainPeaks returns per-section peaks of every skill scaled by their multipliers,
// Total holds the combined peaks
func (diffCalc *DifficultyCalculator) CalculateStrainPeaks(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) api.StrainPeaks {
	set, _, ok := process(bMap, diff)
	if !ok {
		return api.StrainPeaks{}
	}

	scale := func(peaks []float64, multiplier float64) []float64 {
		for i := range peaks {
			peaks[i] *= multiplier
		}

		return peaks
	}

	return api.StrainPeaks{
		Rhythm:  scale(set.rhythm.GetCurrentStrainPeaks(), skills.RhythmSkillMultiplier),
		Colour:  scale(set.colour.GetCurrentStrainPeaks(), skills.ColourSkillMultiplier),
		Stamina: scale(set.stamina.GetCurrentStrainPeaks(), skills.StaminaSkillMultiplier),
		Total:   skills.CombinedPeaks(set.rhythm, set.colour, set.stamina),
	}
}

func (diffCalc *DifficultyCalculator) GetVersion() int {
	return CurrentVersion
}

func (diffCalc *DifficultyCalculator) GetVersionMessage() string {
	return "2024-10-07: finger aware stamina, mono stamina factor, unstable rate pp"
}
