package beatmap

import "sort"

const (
	DefaultBeatLength     = 60000.0 / 60.0
	DefaultSliderVelocity = 1.0
)

type TimingPoint struct {
	Time       float64 `yaml:"time"`
	BeatLength float64 `yaml:"beat_length"`
}

type DifficultyPoint struct {
	Time           float64 `yaml:"time"`
	SliderVelocity float64 `yaml:"slider_velocity"`
}

// TimingPointAt returns the last timing point at or before time. Times before the first point
// resolve to the first point. Returns nil only for an empty list.
func TimingPointAt(points []TimingPoint, time float64) *TimingPoint {
	if len(points) == 0 {
		return nil
	}

	i := sort.Search(len(points), func(i int) bool { return points[i].Time >= time })

	if i < len(points) && points[i].Time == time {
		return &points[i]
	}

	return &points[max(i-1, 0)]
}

// DifficultyPointAt returns the last difficulty point at or before time, nil if none precedes it
func DifficultyPointAt(points []DifficultyPoint, time float64) *DifficultyPoint {
	i := sort.Search(len(points), func(i int) bool { return points[i].Time >= time })

	if i < len(points) && points[i].Time == time {
		return &points[i]
	}

	if i == 0 {
		return nil
	}

	return &points[i-1]
}

func (b *Beatmap) BeatLengthAt(time float64) float64 {
	if tp := TimingPointAt(b.TimingPoints, time); tp != nil {
		return tp.BeatLength
	}

	return DefaultBeatLength
}

func (b *Beatmap) SliderVelocityAt(time float64) float64 {
	if dp := DifficultyPointAt(b.DifficultyPoints, time); dp != nil {
		return dp.SliderVelocity
	}

	return DefaultSliderVelocity
}
