// Package taiko2022 is the 2022 osu!taiko star rating: rhythm, colour and stamina combined per
// section with colour runs detected over the whole chart.
package taiko2022

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/api"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/preprocessing"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/taiko2022/skills"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

const (
	DifficultyMultiplier float64 = 1.35
	CurrentVersion       int     = 20220902
)

type DifficultyCalculator struct{}

func NewDifficultyCalculator() *DifficultyCalculator {
	return &DifficultyCalculator{}
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

func greatHitWindow(diff *difficulty.Difficulty) float64 {
	return mutils.DifficultyRange(diff.OD, 20, 35, 50) / diff.Speed
}

// CalculateSingle calculates the final difficulty api.Attributes of a map, PassedObjects counts hits
func (diffCalc *DifficultyCalculator) CalculateSingle(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) api.Attributes {
	taikoObjects := preprocessing.ConvertObjects(bMap)
	if len(taikoObjects) < 2 {
		return api.Attributes{}
	}

	objectCount, combo := preprocessing.PassedCount(taikoObjects, diff.Take(len(taikoObjects)))

	diffObjects := preprocessing.CreateDifficultyObjects(taikoObjects, diff.Speed)

	peaks := skills.NewPeaks()

	for _, o := range diffObjects.Objects[:max(0, objectCount-2)] {
		peaks.Process(o)
	}

	attr := api.Attributes{
		GreatHitWindow: greatHitWindow(diff),
		ObjectCount:    objectCount,
		MaxCombo:       combo,
		IsConvert:      preprocessing.IsConvert(bMap),
	}

	attr.Colour = peaks.ColourDifficultyValue() * DifficultyMultiplier
	attr.Rhythm = peaks.RhythmDifficultyValue() * DifficultyMultiplier
	attr.Stamina = peaks.StaminaDifficultyValue() * DifficultyMultiplier
	attr.Peak = peaks.DifficultyValue() * DifficultyMultiplier

	attr.Total = starRating(attr.Peak, attr.Colour, attr.Stamina, attr.IsConvert)

	return attr
}

func (diffCalc *DifficultyCalculator) GetVersion() int {
	return CurrentVersion
}

func (diffCalc *DifficultyCalculator) GetVersionMessage() string {
	return "2022-09-02: colour encoding rework, combined section peaks"
}
