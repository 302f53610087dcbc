package objects

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/framework/math/vector"
)

const (
	BaseScoringDistance  = 100.0
	LegacyLastTickOffset = 36.0
)

type Slider struct {
	*HitObject

	Path        *Path
	PixelLength float64

	// RepeatCount is the number of spans, it counts the first one
	RepeatCount int

	BeatLength     float64
	SliderVelocity float64
	Velocity       float64
	SpanDuration   float64
	TickDistance   float64

	// Nested holds every nested object after the head, in time order
	Nested []NestedObject

	// ScorePoints are combo-giving nested objects, the legacy last tick stands in for the tail
	ScorePoints []NestedObject

	// EndTimeLazer is the real end of the slider without the legacy last tick leniency
	EndTimeLazer float64
}

func NewSlider(time float64, position vector.Vector2f, path []vector.Vector2f, pixelLength float64, repeats int) *Slider {
	s := &Slider{
		HitObject: &HitObject{
			StartTime:     time,
			EndTime:       time,
			StartPosition: position,
		},
		Path:           NewPath(path, pixelLength),
		PixelLength:    pixelLength,
		RepeatCount:    max(repeats, 1),
		BeatLength:     1000,
		SliderVelocity: 1,
	}

	s.EndPosition = s.PositionAtProgress(float64(s.RepeatCount % 2))

	return s
}

// ApplyTiming derives velocity, span duration and nested objects from control points
func (s *Slider) ApplyTiming(beatLength, sliderVelocity, sliderMultiplier, tickRate float64, formatVersion int) {
	s.BeatLength = beatLength
	s.SliderVelocity = sliderVelocity

	scoringDistance := BaseScoringDistance * sliderMultiplier * sliderVelocity
	s.Velocity = scoringDistance / beatLength

	tickDistanceMultiplier := 1.0
	if formatVersion < 8 {
		tickDistanceMultiplier = 1 / sliderVelocity
	}

	s.TickDistance = scoringDistance / tickRate * tickDistanceMultiplier

	s.SpanDuration = s.Path.Distance() / s.Velocity
	s.EndTimeLazer = s.StartTime + s.SpanDuration*float64(s.RepeatCount)
	s.EndTime = s.EndTimeLazer

	nested := GenerateEvents(s.StartTime, s.SpanDuration, s.Velocity, s.TickDistance, s.Path.Distance(), s.RepeatCount, LegacyLastTickOffset)

	s.Nested = s.Nested[:0]
	s.ScorePoints = s.ScorePoints[:0]

	for _, n := range nested {
		if n.Kind == NestedHead {
			continue
		}

		n.Position = s.PositionAtProgress(n.PathProgress)
		s.Nested = append(s.Nested, n)

		if n.Kind != NestedTail {
			s.ScorePoints = append(s.ScorePoints, n)
		}
	}
}

func (s *Slider) SpanCount() int {
	return s.RepeatCount
}

// PositionAtProgress returns the absolute position for a path progress in 0..1
func (s *Slider) PositionAtProgress(progress float64) vector.Vector2f {
	return s.StartPosition.Add(s.Path.PointAt(progress))
}

// ProgressAt converts absolute time into path progress, bouncing on repeats
func (s *Slider) ProgressAt(time float64) float64 {
	if s.SpanDuration <= 0 {
		return 0
	}

	p := (time - s.StartTime) / s.SpanDuration
	p = min(max(p, 0), float64(s.RepeatCount))

	span := math.Floor(p)
	progress := p - span

	if span >= float64(s.RepeatCount) {
		span = float64(s.RepeatCount - 1)
		progress = 1
	}

	if int(span)%2 == 1 {
		progress = 1 - progress
	}

	return progress
}

func (s *Slider) PositionAt(time float64) vector.Vector2f {
	return s.PositionAtProgress(s.ProgressAt(time))
}

func (s *Slider) GetStackedPositionAtMod(time float64, mods difficulty.Modifier) vector.Vector2f {
	return ModifyPosition(s.PositionAt(time), mods)
}

func (s *Slider) GetStackedEndPositionMod(mods difficulty.Modifier) vector.Vector2f {
	return ModifyPosition(s.EndPosition, mods)
}
