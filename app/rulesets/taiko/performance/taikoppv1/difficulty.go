// Package taikoppv1 is the first osu!taiko star rating: a single strain bumped on colour and
// rhythm changes, sections scaled by clock rate.
package taikoppv1

import (
	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/api"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/preprocessing"
	"github.com/Givikap120/strainarchive/framework/math/math32"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

const (
	SectionLength     float32 = 400
	StarScalingFactor float32 = 0.04125
	CurrentVersion    int     = 20140101
)

type DifficultyCalculator struct{}

func NewDifficultyCalculator() *DifficultyCalculator {
	return &DifficultyCalculator{}
}

// greatHitWindow uses unclamped OD and floors the window before speed is applied
func greatHitWindow(diff *difficulty.Difficulty) float64 {
	od := float32(diff.GetBaseOD())

	switch {
	case diff.CheckModActive(difficulty.HardRock):
		od *= 1.4
	case diff.CheckModActive(difficulty.Easy):
		od *= 0.5
	}

	return float64(math32.Floor(mutils.DifficultyRange(od, 20, 35, 50)) / float32(diff.Speed))
}

// CalculateSingle calculates the final difficulty api.Attributes of a map, PassedObjects counts
// chart objects
func (diffCalc *DifficultyCalculator) CalculateSingle(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) api.Attributes {
	taikoObjects := chartObjects(bMap)
	taikoObjects = taikoObjects[:diff.Take(len(taikoObjects))]

	if len(taikoObjects) < 2 {
		return api.Attributes{}
	}

	attr := api.Attributes{
		GreatHitWindow: greatHitWindow(diff),
		ObjectCount:    len(taikoObjects),
		IsConvert:      preprocessing.IsConvert(bMap),
	}

	for _, o := range taikoObjects {
		if o.IsHit() {
			attr.MaxCombo++
		}
	}

	clockRate := float32(diff.Speed)
	sectionLength := SectionLength * clockRate
	currentSectionEnd := math32.Ceil(float32(taikoObjects[0].StartTime)/sectionLength) * sectionLength

	skill := NewSkill()

	for i := 1; i < len(taikoObjects); i++ {
		current := NewDifficultyObject(taikoObjects[i], taikoObjects[i-1], clockRate)

		// The first difficulty object only moves the boundary
		for current.Time > currentSectionEnd {
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
	return "ppv1: single strain with colour and rhythm change bonuses"
}
