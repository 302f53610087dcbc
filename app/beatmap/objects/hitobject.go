package objects

import (
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/framework/math/vector"
)

type HitSound uint8

const (
	SoundNormal  HitSound = 1 << 0
	SoundWhistle HitSound = 1 << 1
	SoundFinish  HitSound = 1 << 2
	SoundClap    HitSound = 1 << 3
)

func (s HitSound) Has(flags HitSound) bool {
	return s&flags > 0
}

// IsRim reports whether the sound maps to a rim (kat) hit in osu!taiko
func (s HitSound) IsRim() bool {
	return s.Has(SoundClap | SoundWhistle)
}

// IsStrong reports whether the sound maps to a big hit in osu!taiko
func (s HitSound) IsStrong() bool {
	return s.Has(SoundFinish)
}

type IHitObject interface {
	GetStartTime() float64
	GetEndTime() float64
	GetDuration() float64

	GetStartPosition() vector.Vector2f
	GetEndPosition() vector.Vector2f

	// GetStackedStartPositionMod returns the start position after mod reflection
	GetStackedStartPositionMod(mods difficulty.Modifier) vector.Vector2f

	IsNewCombo() bool
	GetHitSound() HitSound
	GetID() int
}

type HitObject struct {
	StartTime float64
	EndTime   float64

	StartPosition vector.Vector2f
	EndPosition   vector.Vector2f

	NewCombo bool
	HitSound HitSound
	ID       int
}

func (o *HitObject) GetStartTime() float64 {
	return o.StartTime
}

func (o *HitObject) GetEndTime() float64 {
	return o.EndTime
}

func (o *HitObject) GetDuration() float64 {
	return o.EndTime - o.StartTime
}

func (o *HitObject) GetStartPosition() vector.Vector2f {
	return o.StartPosition
}

func (o *HitObject) GetEndPosition() vector.Vector2f {
	return o.EndPosition
}

func (o *HitObject) GetStackedStartPositionMod(mods difficulty.Modifier) vector.Vector2f {
	return ModifyPosition(o.StartPosition, mods)
}

func (o *HitObject) IsNewCombo() bool {
	return o.NewCombo
}

func (o *HitObject) GetHitSound() HitSound {
	return o.HitSound
}

func (o *HitObject) GetID() int {
	return o.ID
}

// ModifyPosition applies playfield reflection of the given mods
func ModifyPosition(pos vector.Vector2f, mods difficulty.Modifier) vector.Vector2f {
	switch mods.Reflection() {
	case difficulty.ReflectVertical:
		pos.Y = PlayfieldHeight - pos.Y
	case difficulty.ReflectHorizontal:
		pos.X = PlayfieldWidth - pos.X
	case difficulty.ReflectBoth:
		pos = vector.NewVec2f(PlayfieldWidth-pos.X, PlayfieldHeight-pos.Y)
	}

	return pos
}

const (
	PlayfieldWidth  = 512
	PlayfieldHeight = 384
)

type Circle struct {
	*HitObject
}

func NewCircle(time float64, position vector.Vector2f) *Circle {
	return &Circle{
		HitObject: &HitObject{
			StartTime:     time,
			EndTime:       time,
			StartPosition: position,
			EndPosition:   position,
		},
	}
}

type Spinner struct {
	*HitObject
}

func NewSpinner(startTime, endTime float64) *Spinner {
	center := vector.NewVec2f(PlayfieldWidth/2, PlayfieldHeight/2)

	return &Spinner{
		HitObject: &HitObject{
			StartTime:     startTime,
			EndTime:       endTime,
			StartPosition: center,
			EndPosition:   center,
		},
	}
}

// HoldNote is an osu!mania long note, X position selects the column
type HoldNote struct {
	*HitObject
}

func NewHoldNote(startTime, endTime float64, position vector.Vector2f) *HoldNote {
	return &HoldNote{
		HitObject: &HitObject{
			StartTime:     startTime,
			EndTime:       endTime,
			StartPosition: position,
			EndPosition:   position,
		},
	}
}
