// Package mania2018 is the 2018 osu!mania star rating. Times are divided by clock rate and charts
// made for osu!standard get a key count picked from their object mix.
package mania2018

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/mania/performance/api"
	"github.com/Givikap120/strainarchive/app/rulesets/mania/performance/preprocessing"
)

const (
	SectionLength     = 400.0
	StarScalingFactor = 0.018
	CurrentVersion    = 20180101
)

type DifficultyCalculator struct{}

func NewDifficultyCalculator() *DifficultyCalculator {
	return &DifficultyCalculator{}
}

// CalculateSingle calculates the final difficulty api.Attributes of a map
func (diffCalc *DifficultyCalculator) CalculateSingle(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) api.Attributes {
	maniaObjects := preprocessing.ConvertObjects(bMap)
	chartObjects := len(maniaObjects)

	maniaObjects = maniaObjects[:diff.Take(chartObjects)]

	columns := preprocessing.KeyCount(bMap)

	attr := api.Attributes{
		Columns:          columns,
		ObjectCount:      len(maniaObjects),
		ChartObjectCount: chartObjects,
		MaxCombo:         preprocessing.MaxCombo(maniaObjects),
		IsConvert:        preprocessing.IsConvert(bMap),
	}

	if len(maniaObjects) < 2 {
		return api.Attributes{}
	}

	skill := NewSkill(columns)

	var currentSectionEnd float64

	for i := 1; i < len(maniaObjects); i++ {
		current := NewDifficultyObject(maniaObjects[i], maniaObjects[i-1], columns, diff.Speed)

		if i == 1 {
			currentSectionEnd = math.Ceil(current.StartTime/SectionLength) * SectionLength
		}

		for current.StartTime > currentSectionEnd {
			skill.SaveCurrentPeak()
			skill.StartNewSectionFrom(currentSectionEnd)

			currentSectionEnd += SectionLength
		}

		skill.Process(current)
	}

	skill.SaveCurrentPeak()

	attr.Total = skill.DifficultyValue() * StarScalingFactor

	return attr
}

func (diffCalc *DifficultyCalculator) GetVersion() int {
	return CurrentVersion
}

func (diffCalc *DifficultyCalculator) GetVersionMessage() string {
	return "2018: convert key counts, clock rate applied to object times"
}
