package objects

import (
	"slices"

	"github.com/Givikap120/strainarchive/framework/math/vector"
)

type NestedKind uint8

const (
	NestedHead NestedKind = iota
	NestedTick
	NestedRepeat
	NestedLegacyLastTick
	NestedTail
)

type NestedObject struct {
	Kind         NestedKind
	Time         float64
	SpanIndex    int
	PathProgress float64
	Position     vector.Vector2f
}

const maxSliderLength = 100000

// GenerateEvents lays out slider nested objects in time order: head, ticks per span with
// repeats between them, legacy last tick, tail.
func GenerateEvents(startTime, spanDuration, velocity, tickDistance, totalDistance float64, spanCount int, legacyLastTickOffset float64) []NestedObject {
	length := min(maxSliderLength, totalDistance)
	tickDistance = min(max(tickDistance, 0), length)

	minDistanceFromEnd := velocity * 10

	events := []NestedObject{{Kind: NestedHead, Time: startTime}}

	if tickDistance != 0 {
		for span := 0; span < spanCount; span++ {
			spanStartTime := startTime + float64(span)*spanDuration
			reversed := span%2 == 1

			ticks := generateTicks(span, spanStartTime, spanDuration, reversed, length, tickDistance, minDistanceFromEnd)
			if reversed {
				slices.Reverse(ticks)
			}

			events = append(events, ticks...)

			if span < spanCount-1 {
				events = append(events, NestedObject{
					Kind:         NestedRepeat,
					Time:         spanStartTime + spanDuration,
					SpanIndex:    span,
					PathProgress: float64((span + 1) % 2),
				})
			}
		}
	} else {
		for span := 0; span < spanCount-1; span++ {
			events = append(events, NestedObject{
				Kind:         NestedRepeat,
				Time:         startTime + float64(span+1)*spanDuration,
				SpanIndex:    span,
				PathProgress: float64((span + 1) % 2),
			})
		}
	}

	totalDuration := float64(spanCount) * spanDuration

	finalSpanIndex := spanCount - 1
	finalSpanStartTime := startTime + float64(finalSpanIndex)*spanDuration
	finalSpanEndTime := max(startTime+totalDuration/2, finalSpanStartTime+spanDuration-legacyLastTickOffset)

	finalProgress := 0.0
	if spanDuration > 0 {
		finalProgress = (finalSpanEndTime - finalSpanStartTime) / spanDuration
	}

	if spanCount%2 == 0 {
		finalProgress = 1 - finalProgress
	}

	events = append(events,
		NestedObject{
			Kind:         NestedLegacyLastTick,
			Time:         finalSpanEndTime,
			SpanIndex:    finalSpanIndex,
			PathProgress: finalProgress,
		},
		NestedObject{
			Kind:         NestedTail,
			Time:         startTime + totalDuration,
			SpanIndex:    finalSpanIndex,
			PathProgress: float64(spanCount % 2),
		},
	)

	return events
}

func generateTicks(spanIndex int, spanStartTime, spanDuration float64, reversed bool, length, tickDistance, minDistanceFromEnd float64) []NestedObject {
	var ticks []NestedObject

	for d := tickDistance; d <= length; d += tickDistance {
		if d >= length-minDistanceFromEnd {
			break
		}

		pathProgress := d / length

		timeProgress := pathProgress
		if reversed {
			timeProgress = 1 - pathProgress
		}

		ticks = append(ticks, NestedObject{
			Kind:         NestedTick,
			Time:         spanStartTime + timeProgress*spanDuration,
			SpanIndex:    spanIndex,
			PathProgress: pathProgress,
		})
	}

	return ticks
}
