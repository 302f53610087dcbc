package osu2021

import (
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/legacy"
)

const minStrainTime float32 = 50

type DifficultyObject struct {
	// Time is already divided by clock rate
	Time float32

	Delta      float32
	StrainTime float32

	JumpDistance   float32
	TravelDistance float32

	Angle    float32
	HasAngle bool
}

func NewDifficultyObject(current, prev legacy.Object, prevPrev *legacy.Object, scalingFactor float32) DifficultyObject {
	delta := current.Time - prev.Time

	o := DifficultyObject{
		Time:           current.Time,
		Delta:          delta,
		StrainTime:     max(delta, minStrainTime),
		JumpDistance:   current.Position.Sub(prev.LazyEndPosition).Scl(scalingFactor).Len(),
		TravelDistance: prev.LazyTravelDistance * scalingFactor,
	}

	o.Angle, o.HasAngle = legacy.Angle(prevPrev, prev, current)

	return o
}
