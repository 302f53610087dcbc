package osu2015

import (
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/legacy"
)

const minDeltaTime float32 = 50

type DifficultyObject struct {
	// Time is not adjusted by clock rate
	Time float32

	// Delta is the clock adjusted time since the previous object
	Delta float32

	Distance float32

	// TravelDistance is left in playfield units, unlike Distance
	TravelDistance float32
	HasTravel      bool
}

func NewDifficultyObject(current, prev legacy.Object, clockRate, scalingFactor float32) DifficultyObject {
	return DifficultyObject{
		Time:           current.Time,
		Delta:          max((current.Time-prev.Time)/clockRate, minDeltaTime),
		Distance:       current.Position.Dst(prev.LazyEndPosition) * scalingFactor,
		TravelDistance: prev.LazyTravelDistance,
		HasTravel:      prev.IsSlider,
	}
}
