// Package legacy builds the single precision cursor model shared by osu!standard revisions
// released before the 2022 rework: lazy slider end positions and travel distances.
package legacy

import (
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/api"
	"github.com/Givikap120/strainarchive/framework/math/math32"
	"github.com/Givikap120/strainarchive/framework/math/vector"
)

const (
	ObjectRadius     float32 = 64
	NormalizedRadius float32 = 52

	followCircleFactor float32 = 3
)

// Object is a circle or slider as seen by legacy calculators
type Object struct {
	Time float32

	Position vector.Vector2f

	// LazyEndPosition is where a lazy cursor leaves the object
	LazyEndPosition vector.Vector2f

	// LazyTravelDistance is the unscaled distance a lazy cursor moves inside a slider
	LazyTravelDistance float32

	IsSlider bool

	Base objects.IHitObject
}

// Radius returns the circle radius for a circle size
func Radius(cs float32) float32 {
	return ObjectRadius * (1 - 0.7*(cs-5)/5) / 2
}

// ScalingFactor normalizes distances to a 52 radius circle with a bonus for tiny circles
func ScalingFactor(radius float32) float32 {
	scalingFactor := NormalizedRadius / radius

	if radius < 30 {
		smallCircleBonus := min(30-radius, 5) / 50
		scalingFactor *= 1 + smallCircleBonus
	}

	return scalingFactor
}

// CreateObjects converts the first take hit objects, skipping spinners. Every processed object
// is counted into attr.
func CreateObjects(hitObjects []objects.IHitObject, take int, radius float32, attr *api.Attributes) []Object {
	result := make([]Object, 0, take)

	for _, o := range hitObjects[:min(take, len(hitObjects))] {
		attr.ObjectCount++
		attr.MaxCombo++

		switch s := o.(type) {
		case *objects.Circle:
			attr.Circles++

			result = append(result, Object{
				Time:            float32(s.StartTime),
				Position:        s.StartPosition,
				LazyEndPosition: s.StartPosition,
				Base:            o,
			})
		case *objects.Slider:
			attr.Sliders++
			attr.MaxCombo += len(s.ScorePoints)

			result = append(result, newSliderObject(s, radius))
		case *objects.Spinner:
			attr.Spinners++
		}
	}

	return result
}

func newSliderObject(s *objects.Slider, radius float32) Object {
	followRadius := radius * followCircleFactor

	cursor := s.StartPosition
	travel := float32(0)

	for _, point := range s.ScorePoints {
		diff := s.PositionAt(point.Time).Sub(cursor)
		dist := diff.Len()

		if dist > followRadius {
			diff = diff.Scl(1 / dist)
			dist -= followRadius

			cursor = cursor.Add(diff.Scl(dist))
			travel += dist
		}
	}

	return Object{
		Time:               float32(s.StartTime),
		Position:           s.StartPosition,
		LazyEndPosition:    cursor,
		LazyTravelDistance: travel,
		IsSlider:           true,
		Base:               s,
	}
}

// Angle returns the unsigned angle at prev formed by prevPrev, prev and current.
// ok is false when there is no pre-previous object.
func Angle(prevPrev *Object, prev, current Object) (angle float32, ok bool) {
	if prevPrev == nil {
		return 0, false
	}

	v1 := prevPrev.LazyEndPosition.Sub(prev.Position)
	v2 := current.Position.Sub(prev.LazyEndPosition)

	dot := v1.Dot(v2)
	det := v1.X*v2.Y - v1.Y*v2.X

	return math32.Abs(math32.Atan2(det, dot)), true
}
