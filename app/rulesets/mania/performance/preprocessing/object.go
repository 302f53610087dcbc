// Package preprocessing turns a chart into mania notes and hold notes laid out in columns.
package preprocessing

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

// Object is a mania note, EndTime equals StartTime for plain notes. Times are not adjusted by
// clock rate.
type Object struct {
	StartTime float64
	EndTime   float64

	// X is the horizontal chart position the column is derived from
	X float64
}

func (o Object) IsHold() bool {
	return o.EndTime > o.StartTime
}

func IsConvert(bMap *beatmap.Beatmap) bool {
	return bMap.IsConvert || bMap.Mode == beatmap.ModeOsu
}

// KeyCount returns the number of columns. Native charts store it in circle size, charts made for
// osu!standard pick it from their slider and spinner share and overall difficulty.
func KeyCount(bMap *beatmap.Beatmap) int {
	roundedCS := math.Round(bMap.CircleSize)

	if !IsConvert(bMap) {
		return int(max(roundedCS, 1))
	}

	roundedOD := math.Round(bMap.OverallDifficulty)

	circles, sliders, spinners, holds := bMap.CountObjects()

	total := circles + sliders + spinners + holds
	if total == 0 {
		return 7
	}

	longRatio := float64(total-circles) / float64(total)

	switch {
	case longRatio < 0.2:
		return 7
	case longRatio < 0.3 || roundedCS >= 5:
		if roundedOD > 5 {
			return 7
		}

		return 6
	case longRatio > 0.6:
		if roundedOD > 4 {
			return 5
		}

		return 4
	}

	return mutils.Clamp(int(roundedOD)+1, 4, 7)
}

// Column maps a horizontal position onto one of columns lanes
func Column(x float64, columns int) int {
	divisor := objects.PlayfieldWidth / float64(columns)

	return mutils.Clamp(int(math.Floor(x/divisor)), 0, columns-1)
}

// ConvertObjects keeps notes as they are and turns sliders and spinners into hold notes
func ConvertObjects(bMap *beatmap.Beatmap) []Object {
	result := make([]Object, 0, len(bMap.HitObjects))

	for _, o := range bMap.HitObjects {
		obj := Object{
			StartTime: o.GetStartTime(),
			EndTime:   o.GetStartTime(),
			X:         float64(o.GetStartPosition().X),
		}

		switch h := o.(type) {
		case *objects.Slider:
			obj.EndTime = h.StartTime + sliderDuration(bMap, h)
		case *objects.Spinner, *objects.HoldNote:
			obj.EndTime = o.GetEndTime()
		}

		result = append(result, obj)
	}

	return result
}

// MaxCombo gives one combo per object and one more per 100 ms of any long object
func MaxCombo(maniaObjects []Object) int {
	combo := 0

	for _, o := range maniaObjects {
		combo += 1 + int((o.EndTime-o.StartTime)/100)
	}

	return combo
}

func sliderDuration(bMap *beatmap.Beatmap, s *objects.Slider) float64 {
	scoringDistance := objects.BaseScoringDistance * bMap.SliderMultiplier * bMap.SliderVelocityAt(s.StartTime)
	velocity := scoringDistance / bMap.BeatLengthAt(s.StartTime)

	return float64(s.SpanCount()) * s.Path.Distance() / velocity
}
