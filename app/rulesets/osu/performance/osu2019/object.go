package osu2019

import (
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/legacy"
)

const minStrainTime float32 = 50

type DifficultyObject struct {
	// Time is not adjusted by clock rate
	Time float32

	Delta      float32
	StrainTime float32

	JumpDistance   float32
	TravelDistance float32

	// Angle is only valid with HasAngle, the first two objects have none
	Angle    float32
	HasAngle bool
}

// NewDifficultyObject derives spacing from prev, and the angle from prevPrev when it exists
func NewDifficultyObject(current, prev legacy.Object, prevPrev *legacy.Object, clockRate, scalingFactor float32) DifficultyObject {
	delta := (current.Time - prev.Time) / clockRate

	o := DifficultyObject{
		Time:           current.Time,
		Delta:          delta,
		StrainTime:     max(delta, minStrainTime),
		JumpDistance:   current.Position.Scl(scalingFactor).Dst(prev.LazyEndPosition.Scl(scalingFactor)),
		TravelDistance: prev.LazyTravelDistance * scalingFactor,
	}

	o.Angle, o.HasAngle = legacy.Angle(prevPrev, prev, current)

	return o
}
