// Package osu2024 is the October 2024 osu!standard star rating and pp. Object times are divided
// by clock rate before sectioning, skills see lazy slider travel and the flashlight skill keeps
// every section peak.
package osu2024

import (
	"log"
	"math"
	"time"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/api"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024/preprocessing"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024/skills"
)

const (
	// StarScalingFactor is a global stars multiplier
	StarScalingFactor float64 = 0.0675
	CurrentVersion    int     = 20241007
)

type DifficultyCalculator struct{}

func NewDifficultyCalculator() *DifficultyCalculator {
	return &DifficultyCalculator{}
}

// getStarsFromRawValues converts raw skill values to Attributes
func (diffCalc *DifficultyCalculator) getStarsFromRawValues(rawAim, rawAimNoSliders, rawSpeed, rawFlashlight float64, diff *difficulty.Difficulty, attr api.Attributes) api.Attributes {
	aimRating := math.Sqrt(rawAim) * StarScalingFactor
	aimRatingNoSliders := math.Sqrt(rawAimNoSliders) * StarScalingFactor
	speedRating := math.Sqrt(rawSpeed) * StarScalingFactor
	flashlightRating := math.Sqrt(rawFlashlight) * StarScalingFactor

	sliderFactor := 1.0
	if aimRating > 0 {
		sliderFactor = aimRatingNoSliders / aimRating
	}

	if diff.CheckModActive(difficulty.TouchDevice) {
		aimRating = math.Pow(aimRating, 0.8)
		flashlightRating = math.Pow(flashlightRating, 0.8)
	}

	if diff.CheckModActive(difficulty.Relax) {
		aimRating *= 0.9
		speedRating = 0
		flashlightRating *= 0.7
	}

	baseAimPerformance := skills.DefaultDifficultyToPerformance(aimRating)
	baseSpeedPerformance := skills.DefaultDifficultyToPerformance(speedRating)

	baseFlashlightPerformance := 0.0
	if diff.CheckModActive(difficulty.Flashlight) {
		baseFlashlightPerformance = skills.FlashlightDifficultyToPerformance(flashlightRating)
	}

	basePerformance := math.Pow(
		math.Pow(baseAimPerformance, 1.1)+
			math.Pow(baseSpeedPerformance, 1.1)+
			math.Pow(baseFlashlightPerformance, 1.1),
		1.0/1.1,
	)

	total := 0.0
	if basePerformance > 0.00001 {
		total = math.Cbrt(PerformanceBaseMultiplier) * 0.027 * (math.Cbrt(100000/math.Pow(2, 1/1.1)*basePerformance) + 4)
	}

	attr.Total = total
	attr.Aim = aimRating
	attr.SliderFactor = sliderFactor
	attr.Speed = speedRating
	attr.Flashlight = flashlightRating

	return attr
}

// Retrieves skill values and converts to Attributes
func (diffCalc *DifficultyCalculator) getStars(skills *SkillsProcessor, diff *difficulty.Difficulty, attr api.Attributes) api.Attributes {
	attr = diffCalc.getStarsFromRawValues(
		skills.Aim.DifficultyValue(),
		skills.AimWithoutSliders.DifficultyValue(),
		skills.Speed.DifficultyValue(),
		skills.Flashlight.DifficultyValue(),
		diff,
		attr,
	)

	attr.SpeedNoteCount = skills.Speed.RelevantNoteCount()
	attr.AimDifficultStrainCount = skills.Aim.CountDifficultStrains()
	attr.SpeedDifficultStrainCount = skills.Speed.CountDifficultStrains()

	return attr
}

func (diffCalc *DifficultyCalculator) addObjectToAttribs(o objects.IHitObject, attr *api.Attributes) {
	if s, ok := o.(*objects.Slider); ok {
		attr.Sliders++
		attr.MaxCombo += len(s.ScorePoints)

		for _, n := range s.ScorePoints {
			if n.Kind == objects.NestedTick || n.Kind == objects.NestedRepeat {
				attr.LargeTicks++
			}
		}
	} else if _, ok := o.(*objects.Circle); ok {
		attr.Circles++
	} else if _, ok := o.(*objects.Spinner); ok {
		attr.Spinners++
	}

	attr.MaxCombo++
	attr.ObjectCount++
}

func baseAttributes(diff *difficulty.Difficulty) api.Attributes {
	return api.Attributes{
		ApproachRate:      diff.ARReal,
		OverallDifficulty: diff.ODReal,
		HPDrainRate:       diff.HP,
	}
}

// CalculateSingle calculates the final difficulty api.Attributes of a map
func (diffCalc *DifficultyCalculator) CalculateSingle(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) api.Attributes {
	hitObjects := bMap.HitObjects[:diff.Take(len(bMap.HitObjects))]
	if len(hitObjects) < 2 {
		return api.Attributes{}
	}

	diffObjects := preprocessing.CreateDifficultyObjects(hitObjects, diff)

	skills := NewSkillsProcessor(diff, false, false)

	attr := baseAttributes(diff)

	diffCalc.addObjectToAttribs(hitObjects[0], &attr)

	for i, o := range diffObjects {
		diffCalc.addObjectToAttribs(hitObjects[i+1], &attr)

		skills.Process(o)
	}

	return diffCalc.getStars(skills, diff, attr)
}

// CalculateStep calculates successive star ratings for every part of a beatmap
func (diffCalc *DifficultyCalculator) CalculateStep(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) []api.Attributes {
	hitObjects := bMap.HitObjects[:diff.Take(len(bMap.HitObjects))]
	if len(hitObjects) == 0 {
		return nil
	}

	modString := (diff.Mods & difficulty.DifficultyAdjustMask).String()
	if modString == "" {
		modString = "NM"
	}

	log.Println("Calculating step SR for mods:", modString)

	startTime := time.Now()

	diffObjects := preprocessing.CreateDifficultyObjects(hitObjects, diff)

	skills := NewSkillsProcessor(diff, true, false)

	stars := make([]api.Attributes, 1, len(hitObjects))

	stars[0] = baseAttributes(diff)
	diffCalc.addObjectToAttribs(hitObjects[0], &stars[0])

	for i, o := range diffObjects {
		attr := stars[i]
		diffCalc.addObjectToAttribs(hitObjects[i+1], &attr)

		skills.Process(o)

		stars = append(stars, diffCalc.getStars(skills, diff, attr))
	}

	endTime := time.Now()

	log.Println("Calculations finished! Took ", endTime.Sub(startTime).Truncate(time.Millisecond).String())

	return stars
}

// CalculateStrainPeaks returns per-section peaks of every skill and the star rating of each section
func (diffCalc *DifficultyCalculator) CalculateStrainPeaks(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) api.StrainPeaks {
	hitObjects := bMap.HitObjects[:diff.Take(len(bMap.HitObjects))]
	if len(hitObjects) < 2 {
		return api.StrainPeaks{}
	}

	diffObjects := preprocessing.CreateDifficultyObjects(hitObjects, diff)

	skills := NewSkillsProcessor(diff, false, true)

	for _, o := range diffObjects {
		skills.Process(o)
	}

	peaks := api.StrainPeaks{
		Aim:        skills.Aim.GetCurrentStrainPeaks(),
		Speed:      skills.Speed.GetCurrentStrainPeaks(),
		Flashlight: skills.Flashlight.GetCurrentStrainPeaks(),
	}

	peaks.Total = make([]float64, len(peaks.Aim))

	for i := 0; i < len(peaks.Aim); i++ {
		stars := diffCalc.getStarsFromRawValues(peaks.Aim[i], peaks.Aim[i], peaks.Speed[i], peaks.Flashlight[i], diff, api.Attributes{})
		peaks.Total[i] = stars.Total
	}

	return peaks
}

func (diffCalc *DifficultyCalculator) GetVersion() int {
	return CurrentVersion
}

func (diffCalc *DifficultyCalculator) GetVersionMessage() string {
	return "2024-10-07: lazy slider rework, difficult strain counts"
}
