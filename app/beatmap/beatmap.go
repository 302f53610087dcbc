package beatmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
)

var ErrUnknownMode = errors.New("unknown game mode")

type Mode int

const (
	ModeOsu Mode = iota
	ModeTaiko
	ModeCatch
	ModeMania
)

var modeNames = [...]string{"osu", "taiko", "catch", "mania"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}

	return modeNames[m]
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "osu", "std", "standard", "0":
		return ModeOsu, nil
	case "taiko", "1":
		return ModeTaiko, nil
	case "catch", "fruits", "ctb", "2":
		return ModeCatch, nil
	case "mania", "3":
		return ModeMania, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Beatmap is an already parsed chart, objects are time sorted
type Beatmap struct {
	Mode    Mode
	Version int

	HPDrainRate       float64
	CircleSize        float64
	OverallDifficulty float64
	ApproachRate      float64
	SliderMultiplier  float64
	SliderTickRate    float64
	StackLeniency     float64

	TimingPoints     []TimingPoint
	DifficultyPoints []DifficultyPoint

	HitObjects []objects.IHitObject

	// IsConvert is true when the chart was authored for osu!standard and played in another mode
	IsConvert bool
}

func NewBeatmap(mode Mode) *Beatmap {
	return &Beatmap{
		Mode:              mode,
		Version:           14,
		HPDrainRate:       5,
		CircleSize:        5,
		OverallDifficulty: 5,
		ApproachRate:      5,
		SliderMultiplier:  1.4,
		SliderTickRate:    1,
		StackLeniency:     0.7,
	}
}

func (b *Beatmap) NewDifficulty() *difficulty.Difficulty {
	return difficulty.NewDifficulty(b.HPDrainRate, b.CircleSize, b.OverallDifficulty, b.ApproachRate)
}

// PrepareSliders applies timing and difficulty control points to every slider
func (b *Beatmap) PrepareSliders() {
	for _, o := range b.HitObjects {
		if s, ok := o.(*objects.Slider); ok {
			s.ApplyTiming(b.BeatLengthAt(s.StartTime), b.SliderVelocityAt(s.StartTime), b.SliderMultiplier, b.SliderTickRate, b.Version)
		}
	}
}

func (b *Beatmap) CountObjects() (circles, sliders, spinners, holds int) {
	for _, o := range b.HitObjects {
		switch o.(type) {
		case *objects.Circle:
			circles++
		case *objects.Slider:
			sliders++
		case *objects.Spinner:
			spinners++
		case *objects.HoldNote:
			holds++
		}
	}

	return
}
