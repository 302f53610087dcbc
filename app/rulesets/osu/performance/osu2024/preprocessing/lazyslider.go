package preprocessing

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/framework/math/vector"
)

const (
	maximumSliderRadius float32 = NormalizedRadius * 2.4
	assumedSliderRadius float32 = NormalizedRadius * 1.8
)

// LazySlider is a slider followed by a cursor that moves only when the ball leaves the follow circle
type LazySlider struct {
	*objects.Slider

	LazyEndPosition    vector.Vector2f
	LazyTravelDistance float32
	LazyTravelTime     float64
}

func NewLazySlider(s *objects.Slider, d *difficulty.Difficulty) *LazySlider {
	slider := &LazySlider{Slider: s}
	slider.calculateEndPosition(d)

	return slider
}

func (s *LazySlider) calculateEndPosition(d *difficulty.Difficulty) {
	nested := make([]objects.NestedObject, 0, len(s.Nested))

	lastTick := -1

	for _, n := range s.Nested {
		if n.Kind == objects.NestedLegacyLastTick {
			continue
		}

		if n.Kind == objects.NestedTick {
			lastTick = len(nested)
		}

		nested = append(nested, n)
	}

	trackingEndTime := max(
		s.EndTimeLazer-objects.LegacyLastTickOffset,
		s.StartTime+(s.EndTimeLazer-s.StartTime)/2,
	)

	// A last tick after the tracking end swaps places with the tail
	if lastTick >= 0 && nested[lastTick].Time > trackingEndTime {
		trackingEndTime = nested[lastTick].Time

		last := len(nested) - 1
		nested[lastTick], nested[last] = nested[last], nested[lastTick]
	}

	s.LazyTravelTime = trackingEndTime - s.StartTime

	endTimeMin := 0.0
	if s.SpanDuration > 0 {
		endTimeMin = s.LazyTravelTime / s.SpanDuration
	}

	if math.Mod(endTimeMin, 2) >= 1 {
		endTimeMin = 1 - math.Mod(endTimeMin, 1)
	} else {
		endTimeMin = math.Mod(endTimeMin, 1)
	}

	s.LazyEndPosition = objects.ModifyPosition(s.PositionAtProgress(endTimeMin), d.Mods)

	cursorPosition := s.GetStackedStartPositionMod(d.Mods)
	scalingFactor := NormalizedRadius / float32(radius(d))

	for i, n := range nested {
		movement := objects.ModifyPosition(n.Position, d.Mods).Sub(cursorPosition)
		movementLength := scalingFactor * movement.Len()

		requiredMovement := assumedSliderRadius

		if i == len(nested)-1 {
			// The end of the slider has more leniency, the cursor only has to reach the lazy end
			lazyMovement := s.LazyEndPosition.Sub(cursorPosition)

			if lazyMovement.Len() < movement.Len() {
				movement = lazyMovement
			}

			movementLength = scalingFactor * movement.Len()
		} else if n.Kind == objects.NestedRepeat {
			requiredMovement = NormalizedRadius
		}

		if movementLength > requiredMovement {
			cursorPosition = cursorPosition.Add(movement.Scl((movementLength - requiredMovement) / movementLength))
			movementLength *= (movementLength - requiredMovement) / movementLength
			s.LazyTravelDistance += movementLength
		}

		if i == len(nested)-1 {
			s.LazyEndPosition = cursorPosition
		}
	}
}
