// Package maniappv1 is the first osu!mania star rating: strain per column plus an overall strain,
// sections scaled by clock rate. Its pp is driven by score.
package maniappv1

import (
	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/mania/performance/api"
	"github.com/Givikap120/strainarchive/app/rulesets/mania/performance/preprocessing"
	"github.com/Givikap120/strainarchive/framework/math/math32"
)

const (
	SectionLength     float32 = 400
	StarScalingFactor float32 = 0.018
	CurrentVersion    int     = 20140101
)

type DifficultyCalculator struct{}

func NewDifficultyCalculator() *DifficultyCalculator {
	return &DifficultyCalculator{}
}

// circleSize returns the value columns are cut by, converts use their key count
func circleSize(bMap *beatmap.Beatmap) float32 {
	if preprocessing.IsConvert(bMap) {
		return float32(preprocessing.KeyCount(bMap))
	}

	return float32(bMap.CircleSize)
}

// CalculateSingle calculates the final difficulty api.Attributes of a map
func (diffCalc *DifficultyCalculator) CalculateSingle(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) api.Attributes {
	maniaObjects := preprocessing.ConvertObjects(bMap)
	chartObjects := len(maniaObjects)

	maniaObjects = maniaObjects[:diff.Take(chartObjects)]

	if len(maniaObjects) < 2 {
		return api.Attributes{}
	}

	cs := circleSize(bMap)
	columns := int(max(math32.Round(cs), 1))

	attr := api.Attributes{
		Columns:          columns,
		ObjectCount:      len(maniaObjects),
		ChartObjectCount: chartObjects,
		MaxCombo:         preprocessing.MaxCombo(maniaObjects),
		IsConvert:        preprocessing.IsConvert(bMap),
	}

	clockRate := float32(diff.Speed)
	sectionLength := SectionLength * clockRate
	currentSectionEnd := math32.Ceil(float32(maniaObjects[0].StartTime)/sectionLength) * sectionLength

	skill := NewSkill(columns)

	for i := 1; i < len(maniaObjects); i++ {
		current := NewDifficultyObject(maniaObjects[i], maniaObjects[i-1], cs, columns, clockRate)

		// The first difficulty object only moves the boundary
		for current.StartTime > currentSectionEnd {
			if i > 1 {
				skill.SaveCurrentPeak()
				skill.StartNewSectionFrom(currentSectionEnd)
			}

			currentSectionEnd += sectionLength
		}

		skill.Process(current)
	}

	skill.SaveCurrentPeak()

	attr.Total = float64(skill.DifficultyValue() * StarScalingFactor)

	return attr
}

func (diffCalc *DifficultyCalculator) GetVersion() int {
	return CurrentVersion
}

func (diffCalc *DifficultyCalculator) GetVersionMessage() string {
	return "ppv1: column and overall strain with hold bonuses"
}
