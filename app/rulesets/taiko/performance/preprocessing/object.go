// Package preprocessing turns a chart into taiko hits, drum rolls and swells and builds difficulty
// objects with their rhythm and colour data.
package preprocessing

import (
	"cmp"
	"math"
	"slices"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
)

const (
	// legacyVelocityMultiplier is how much faster taiko scrolls than osu!standard sliders move
	legacyVelocityMultiplier = 1.4
	baseScoringDistance      = 100.0
)

type Kind uint8

const (
	Hit Kind = iota
	DrumRoll
	Swell
)

type HitType int8

const (
	NoHit HitType = iota - 1
	Centre
	Rim
)

// Object is a converted taiko object, times are not adjusted by clock rate
type Object struct {
	StartTime float64
	EndTime   float64

	Kind   Kind
	Rim    bool
	Strong bool
}

func (o Object) IsHit() bool {
	return o.Kind == Hit
}

func (o Object) HitType() HitType {
	switch {
	case o.Kind != Hit:
		return NoHit
	case o.Rim:
		return Rim
	}

	return Centre
}

// ConvertObjects converts chart objects into taiko objects. Charts made for osu!standard split
// short sliders into hits the way the game client does.
func ConvertObjects(bMap *beatmap.Beatmap) []Object {
	convert := IsConvert(bMap)

	result := make([]Object, 0, len(bMap.HitObjects))

	for _, o := range bMap.HitObjects {
		sound := o.GetHitSound()

		switch h := o.(type) {
		case *objects.Slider:
			if convert {
				if hits, ok := sliderToHits(bMap, h); ok {
					result = append(result, hits...)
					continue
				}
			}

			result = append(result, Object{StartTime: h.StartTime, EndTime: sliderEndTime(bMap, h), Kind: DrumRoll, Strong: sound.IsStrong()})
		case *objects.Spinner:
			result = append(result, Object{StartTime: h.StartTime, EndTime: h.EndTime, Kind: Swell})
		default:
			result = append(result, Object{
				StartTime: o.GetStartTime(),
				EndTime:   o.GetStartTime(),
				Kind:      Hit,
				Rim:       sound.IsRim(),
				Strong:    sound.IsStrong(),
			})
		}
	}

	slices.SortStableFunc(result, func(a, b Object) int {
		return cmp.Compare(a.StartTime, b.StartTime)
	})

	return result
}

func IsConvert(bMap *beatmap.Beatmap) bool {
	return bMap.IsConvert || bMap.Mode == beatmap.ModeOsu
}

func sliderEndTime(bMap *beatmap.Beatmap, s *objects.Slider) float64 {
	_, duration, _, _ := sliderConversion(bMap, s)
	return s.StartTime + float64(duration)
}

// sliderConversion mirrors the float arithmetic of the game client, reordering it changes results
func sliderConversion(bMap *beatmap.Beatmap, s *objects.Slider) (distance float64, duration int, tickSpacing float64, shouldConvert bool) {
	spans := float64(s.SpanCount())
	distance = s.PixelLength * spans * legacyVelocityMultiplier

	timingBeatLength := bMap.BeatLengthAt(s.StartTime)
	beatLength := timingBeatLength / bMap.SliderVelocityAt(s.StartTime)

	sliderMultiplier := bMap.SliderMultiplier * legacyVelocityMultiplier
	sliderScoringPointDistance := baseScoringDistance * sliderMultiplier / bMap.SliderTickRate

	taikoVelocity := sliderScoringPointDistance * bMap.SliderTickRate
	duration = int(distance / taikoVelocity * beatLength)

	osuVelocity := taikoVelocity * (1000.0 / beatLength)

	if bMap.Version >= 8 {
		beatLength = timingBeatLength
	}

	tickSpacing = min(beatLength/bMap.SliderTickRate, float64(duration)/spans)
	shouldConvert = tickSpacing > 0 && distance/osuVelocity*1000 < 2*beatLength

	return
}

func sliderToHits(bMap *beatmap.Beatmap, s *objects.Slider) ([]Object, bool) {
	_, duration, tickSpacing, shouldConvert := sliderConversion(bMap, s)
	if !shouldConvert {
		return nil, false
	}

	sound := s.GetHitSound()

	var hits []Object

	for t := s.StartTime; t <= s.StartTime+float64(duration)+tickSpacing/8; t += tickSpacing {
		hits = append(hits, Object{StartTime: t, EndTime: t, Kind: Hit, Rim: sound.IsRim(), Strong: sound.IsStrong()})

		if math.Abs(tickSpacing) < 1e-7 {
			break
		}
	}

	return hits, true
}
