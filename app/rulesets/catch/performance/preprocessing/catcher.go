package preprocessing

import (
	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

const (
	PlayfieldWidth = 512.0

	// CatcherSize is the catcher width at circle size 5
	CatcherSize = 106.75

	// AllowedCatchRange is the part of the catcher that catches fruits
	AllowedCatchRange = 0.8
)

// CatcherWidth is the full catcher width for the given mod adjusted circle size
func CatcherWidth(cs float32) float32 {
	return CatcherSize * mutils.Abs(1-0.7*(cs-5)/5)
}

// CatchWidth is the catching part of the catcher for the given mod adjusted circle size
func CatchWidth(cs float32) float32 {
	return CatcherWidth(cs) * AllowedCatchRange
}

// IsConvert reports whether the chart was made for osu!standard
func IsConvert(bMap *beatmap.Beatmap) bool {
	return bMap.IsConvert || bMap.Mode == beatmap.ModeOsu
}
