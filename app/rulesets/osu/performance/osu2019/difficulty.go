// Package osu2019 is the 2019 osu!standard star rating with angle bonuses for wide aim and
// small speed angles.
package osu2019

import (
	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/api"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/legacy"
	"github.com/Givikap120/strainarchive/framework/math/math32"
)

const (
	SectionLength        float32 = 400
	DifficultyMultiplier float32 = 0.0675
	CurrentVersion       int     = 20190201
)

type DifficultyCalculator struct{}

func NewDifficultyCalculator() *DifficultyCalculator {
	return &DifficultyCalculator{}
}

// CalculateSingle calculates the final api.Attributes of a map
func (diffCalc *DifficultyCalculator) CalculateSingle(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) api.Attributes {
	take := diff.Take(len(bMap.HitObjects))
	if take < 2 {
		return api.Attributes{}
	}

	attr := legacy.BaseAttributes(diff)

	radius := legacy.Radius(float32(diff.CS))
	scalingFactor := legacy.ScalingFactor(radius)
	clockRate := float32(diff.Speed)

	hitObjects := legacy.CreateObjects(bMap.HitObjects, take, radius, &attr)
	if len(hitObjects) < 2 {
		return attr
	}

	aim := NewSkill(Aim)
	speed := NewSkill(Speed)

	sectionLength := SectionLength * clockRate
	currentSectionEnd := math32.Ceil(hitObjects[0].Time/sectionLength) * sectionLength

	var prevPrev *legacy.Object

	for i := 1; i < len(hitObjects); i++ {
		current := NewDifficultyObject(hitObjects[i], hitObjects[i-1], prevPrev, clockRate, scalingFactor)

		for current.Time > currentSectionEnd {
			if i > 1 {
				aim.SaveCurrentPeak()
				aim.StartNewSectionFrom(currentSectionEnd)
				speed.SaveCurrentPeak()
				speed.StartNewSectionFrom(currentSectionEnd)
			}

			currentSectionEnd += sectionLength
		}

		aim.Process(current)
		speed.Process(current)

		prevPrev = &hitObjects[i-1]
	}

	aim.SaveCurrentPeak()
	speed.SaveCurrentPeak()

	aimRating := math32.Sqrt(aim.DifficultyValue()) * DifficultyMultiplier
	speedRating := math32.Sqrt(speed.DifficultyValue()) * DifficultyMultiplier

	attr.Aim = float64(aimRating)
	attr.Speed = float64(speedRating)
	attr.Total = float64(legacy.StarRating(aimRating, speedRating))
	attr.SliderFactor = 1

	return attr
}

func (diffCalc *DifficultyCalculator) GetVersion() int {
	return CurrentVersion
}

func (diffCalc *DifficultyCalculator) GetVersionMessage() string {
	return "2019-02-01: angle bonuses"
}
