package main

import (
	"github.com/Givikap120/strainarchive/app/beatmap"
	catchapi "github.com/Givikap120/strainarchive/app/rulesets/catch/performance/api"
	maniaapi "github.com/Givikap120/strainarchive/app/rulesets/mania/performance/api"
	osuapi "github.com/Givikap120/strainarchive/app/rulesets/osu/performance/api"
	taikoapi "github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/api"
)

// Result is a mode independent view of one calculation
type Result struct {
	Chart    string
	Mode     beatmap.Mode
	Revision string
	Version  int
	Mods     string

	Stars float64

	// PP is only meaningful when HasPP is set
	PP    float64
	HasPP bool

	Details []Detail
}

// Detail is a named attribute, Count marks whole numbers
type Detail struct {
	Name  string
	Value float64
	Count bool
}

// Series holds per-section strain peaks of one skill
type Series struct {
	Name  string
	Peaks []float64
}

func value(name string, v float64) Detail {
	return Detail{Name: name, Value: v}
}

func count(name string, n int) Detail {
	return Detail{Name: name, Value: float64(n), Count: true}
}

func osuDetails(a osuapi.Attributes) []Detail {
	return []Detail{
		value("aim", a.Aim),
		value("speed", a.Speed),
		value("flashlight", a.Flashlight),
		value("slider factor", a.SliderFactor),
		value("speed notes", a.SpeedNoteCount),
		value("approach rate", a.ApproachRate),
		value("overall difficulty", a.OverallDifficulty),
		count("circles", a.Circles),
		count("sliders", a.Sliders),
		count("spinners", a.Spinners),
		count("max combo", a.MaxCombo),
	}
}

func taikoDetails(a taikoapi.Attributes) []Detail {
	return []Detail{
		value("stamina", a.Stamina),
		value("rhythm", a.Rhythm),
		value("colour", a.Colour),
		value("peak", a.Peak),
		value("mono stamina factor", a.MonoStaminaFactor),
		value("great window", a.GreatHitWindow),
		count("objects", a.ObjectCount),
		count("max combo", a.MaxCombo),
	}
}

func maniaDetails(a maniaapi.Attributes) []Detail {
	return []Detail{
		value("great window", a.GreatHitWindow),
		count("columns", a.Columns),
		count("objects", a.ObjectCount),
		count("max combo", a.MaxCombo),
	}
}

func catchDetails(a catchapi.Attributes) []Detail {
	return []Detail{
		value("approach rate", a.ApproachRate),
		count("fruits", a.Fruits),
		count("droplets", a.Droplets),
		count("tiny droplets", a.TinyDroplets),
		count("max combo", a.MaxCombo()),
	}
}
