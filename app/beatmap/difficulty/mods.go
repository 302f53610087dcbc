package difficulty

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMod = errors.New("unknown mod")

type Modifier int64

const (
	None        = Modifier(0)
	NoFail      = Modifier(1 << 0)
	Easy        = Modifier(1 << 1)
	TouchDevice = Modifier(1 << 2)
	Hidden      = Modifier(1 << 3)
	HardRock    = Modifier(1 << 4)
	SuddenDeath = Modifier(1 << 5)
	DoubleTime  = Modifier(1 << 6)
	Relax       = Modifier(1 << 7)
	HalfTime    = Modifier(1 << 8)
	Nightcore   = Modifier(1 << 9)
	Flashlight  = Modifier(1 << 10)
	Autoplay    = Modifier(1 << 11)
	SpunOut     = Modifier(1 << 12)
	Relax2      = Modifier(1 << 13)
	Perfect     = Modifier(1 << 14)
	Key4        = Modifier(1 << 15)
	Key5        = Modifier(1 << 16)
	Key6        = Modifier(1 << 17)
	Key7        = Modifier(1 << 18)
	Key8        = Modifier(1 << 19)
	FadeIn      = Modifier(1 << 20)
	Random      = Modifier(1 << 21)
	Cinema      = Modifier(1 << 22)
	Target      = Modifier(1 << 23)
	Key9        = Modifier(1 << 24)
	KeyCoop     = Modifier(1 << 25)
	Key1        = Modifier(1 << 26)
	Key3        = Modifier(1 << 27)
	Key2        = Modifier(1 << 28)
	ScoreV2     = Modifier(1 << 29)
	Mirror      = Modifier(1 << 30)

	// DifficultyAdjustMask holds mods that change star rating
	DifficultyAdjustMask = Easy | TouchDevice | Hidden | HardRock | DoubleTime | Relax | HalfTime | Flashlight | SpunOut
)

var modsString = [...]string{
	"NF",
	"EZ",
	"TD",
	"HD",
	"HR",
	"SD",
	"DT",
	"RX",
	"HT",
	"NC",
	"FL",
	"AT",
	"SO",
	"AP",
	"PF",
	"4K",
	"5K",
	"6K",
	"7K",
	"8K",
	"FI",
	"RN",
	"CN",
	"TP",
	"9K",
	"CO",
	"1K",
	"3K",
	"2K",
	"V2",
	"MR",
}

// ParseMods converts a mod string like "HDDT" or "hd,dt" into a Modifier
func ParseMods(mods string) (Modifier, error) {
	mods = strings.ToUpper(strings.NewReplacer(",", "", " ", "", "+", "").Replace(mods))

	if mods == "" || mods == "NM" {
		return None, nil
	}

	if len(mods)%2 != 0 {
		return None, fmt.Errorf("%w: %q has odd length", ErrUnknownMod, mods)
	}

	var result Modifier

outer:
	for i := 0; i < len(mods); i += 2 {
		sub := mods[i : i+2]

		for j, name := range modsString {
			if name == sub {
				result |= Modifier(1 << j)

				if result&Nightcore > 0 {
					result |= DoubleTime
				}

				if result&Perfect > 0 {
					result |= SuddenDeath
				}

				continue outer
			}
		}

		return None, fmt.Errorf("%w: %q", ErrUnknownMod, sub)
	}

	return result, nil
}

func (modifier Modifier) Active(mod Modifier) bool {
	return modifier&mod > 0
}

// ClockRate returns the playback speed implied by the mods
func (modifier Modifier) ClockRate() float64 {
	if modifier.Active(DoubleTime | Nightcore) {
		return 1.5
	}

	if modifier.Active(HalfTime) {
		return 0.75
	}

	return 1.0
}

// Reflection returns how positions are mirrored by the mods
func (modifier Modifier) Reflection() Reflection {
	if modifier.Active(HardRock) {
		return ReflectVertical
	}

	return ReflectNone
}

func (modifier Modifier) String() string {
	var mods []string

	for i, name := range modsString {
		m := Modifier(1 << i)

		if !modifier.Active(m) {
			continue
		}

		if (m == DoubleTime && modifier.Active(Nightcore)) || (m == SuddenDeath && modifier.Active(Perfect)) {
			continue
		}

		mods = append(mods, name)
	}

	return strings.Join(mods, "")
}

func GetDiffMaskedMods(mods Modifier) Modifier {
	return mods & DifficultyAdjustMask
}

type Reflection uint8

const (
	ReflectNone Reflection = iota
	ReflectHorizontal
	ReflectVertical
	ReflectBoth
)
