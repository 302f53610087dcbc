// Package mania2022 is the 2022 osu!mania star rating, where awkward hold releases are judged by
// how close they are to other releases. Its pp ignores score and rates custom accuracy.
package mania2022

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/mania/performance/api"
	"github.com/Givikap120/strainarchive/app/rulesets/mania/performance/preprocessing"
)

const (
	StarScalingFactor = 0.018
	CurrentVersion    = 20220902
)

type DifficultyCalculator struct{}

func NewDifficultyCalculator() *DifficultyCalculator {
	return &DifficultyCalculator{}
}

// greatHitWindow is the 300 window, converts use a fixed window picked by OD
func greatHitWindow(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) float64 {
	od := diff.GetBaseOD()

	window := 64 - 3*od

	if preprocessing.IsConvert(bMap) {
		window = 47
		if math.Round(od) > 4 {
			window = 34
		}
	}

	switch {
	case diff.CheckModActive(difficulty.HardRock):
		window /= 1.4
	case diff.CheckModActive(difficulty.Easy):
		window *= 1.4
	}

	return math.Floor(window) / diff.Speed
}

func process(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) (*Strain, api.Attributes) {
	maniaObjects := preprocessing.ConvertObjects(bMap)
	chartObjects := len(maniaObjects)

	maniaObjects = maniaObjects[:diff.Take(chartObjects)]

	columns := int(max(math.RoundToEven(bMap.CircleSize), 1))
	if preprocessing.IsConvert(bMap) {
		columns = preprocessing.KeyCount(bMap)
	}

	attr := api.Attributes{
		GreatHitWindow:   greatHitWindow(bMap, diff),
		Columns:          columns,
		ObjectCount:      len(maniaObjects),
		ChartObjectCount: chartObjects,
		MaxCombo:         preprocessing.MaxCombo(maniaObjects),
		IsConvert:        preprocessing.IsConvert(bMap),
	}

	skill := NewStrain(columns)

	for _, o := range CreateDifficultyObjects(maniaObjects, columns, diff.Speed) {
		skill.Process(o)
	}

	return skill, attr
}

// CalculateSingle calculates the final difficulty api.Attributes of a map
func (diffCalc *DifficultyCalculator) CalculateSingle(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) api.Attributes {
	skill, attr := process(bMap, diff)
	if attr.ObjectCount < 2 {
		return api.Attributes{}
	}

	attr.Total = skill.DifficultyValue() * StarScalingFactor

	return attr
}

// CalculateStrainPeaks returns the peak of every section, scaled like the star rating
func (diffCalc *DifficultyCalculator) CalculateStrainPeaks(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) api.StrainPeaks {
	skill, attr := process(bMap, diff)
	if attr.ObjectCount < 2 {
		return api.StrainPeaks{}
	}

	peaks := skill.GetCurrentStrainPeaks()
	for i := range peaks {
		peaks[i] *= StarScalingFactor
	}

	return api.StrainPeaks{Strain: peaks}
}

func (diffCalc *DifficultyCalculator) GetVersion() int {
	return CurrentVersion
}

func (diffCalc *DifficultyCalculator) GetVersionMessage() string {
	return "2022-09-02: release threshold for holds, custom accuracy pp"
}
