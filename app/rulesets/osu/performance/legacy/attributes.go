package legacy

import (
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/api"
	"github.com/Givikap120/strainarchive/framework/math/math32"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

// AdjustedOverallDifficulty echoes OD through the floored stable 300 hit window
func AdjustedOverallDifficulty(od, clockRate float32) float32 {
	hitWindow := math32.Floor(mutils.DifficultyRange(od, 20, 50, 80)) / clockRate

	return (80 - hitWindow) / 6
}

// BaseAttributes fills map settings every legacy revision reports
func BaseAttributes(diff *difficulty.Difficulty) api.Attributes {
	return api.Attributes{
		ApproachRate:      diff.ARReal,
		OverallDifficulty: float64(AdjustedOverallDifficulty(float32(diff.OD), float32(diff.Speed))),
		HPDrainRate:       diff.HP,
	}
}

// StarRating combines aim and speed ratings the pre-2021 way
func StarRating(aim, speed float32) float32 {
	return aim + speed + math32.Abs(aim-speed)/2
}
