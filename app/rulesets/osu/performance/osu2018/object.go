package osu2018

import (
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/legacy"
)

const minStrainTime float32 = 50

type DifficultyObject struct {
	Time float32

	// Delta drives decay, StrainTime is the floored value used for strain
	Delta      float32
	StrainTime float32

	// Distance includes the previous slider's lazy travel
	Distance float32
}

func NewDifficultyObject(current, prev legacy.Object, clockRate, scalingFactor float32) DifficultyObject {
	delta := (current.Time - prev.Time) / clockRate

	return DifficultyObject{
		Time:       current.Time,
		Delta:      delta,
		StrainTime: max(delta, minStrainTime),
		Distance:   (prev.LazyTravelDistance + current.Position.Dst(prev.LazyEndPosition)) * scalingFactor,
	}
}
