package taikoppv1

import (
	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/preprocessing"
)

// chartObjects keeps one entry per chart object. Sliders and spinners stay whole and count as
// non-hits, converts are not split into extra hits.
func chartObjects(bMap *beatmap.Beatmap) []preprocessing.Object {
	result := make([]preprocessing.Object, 0, len(bMap.HitObjects))

	for _, o := range bMap.HitObjects {
		sound := o.GetHitSound()

		obj := preprocessing.Object{
			StartTime: o.GetStartTime(),
			EndTime:   o.GetEndTime(),
			Rim:       sound.IsRim(),
			Strong:    sound.IsStrong(),
		}

		switch o.(type) {
		case *objects.Slider:
			obj.Kind = preprocessing.DrumRoll
		case *objects.Spinner:
			obj.Kind = preprocessing.Swell
		default:
			obj.Kind = preprocessing.Hit
		}

		result = append(result, obj)
	}

	return result
}

// DifficultyObject pairs an object with the one before it, Time is not adjusted by clock rate
type DifficultyObject struct {
	Time  float32
	Delta float32

	IsHit     bool
	PrevIsHit bool

	HasTypeChange bool
}

func NewDifficultyObject(base, prev preprocessing.Object, clockRate float32) DifficultyObject {
	return DifficultyObject{
		Time:          float32(base.StartTime),
		Delta:         (float32(base.StartTime) - float32(prev.StartTime)) / clockRate,
		IsHit:         base.IsHit(),
		PrevIsHit:     prev.IsHit(),
		HasTypeChange: base.Rim != prev.Rim,
	}
}
