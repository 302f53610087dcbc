package main

import (
	"errors"
	"fmt"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
)

var ErrNotConvertible = errors.New("only osu!standard charts can be converted")

// Request is one calculation, as given on the command line or as a batch job
type Request struct {
	Chart    string `yaml:"chart"`
	Revision string `yaml:"revision"`

	// Mode converts an osu!standard chart, empty keeps the chart's own mode
	Mode string `yaml:"mode"`

	Mods      string  `yaml:"mods"`
	ClockRate float64 `yaml:"clock_rate"`
	Passed    int     `yaml:"passed"`

	// Play is nil when only star rating is wanted
	Play *Play `yaml:"play"`
}

// Run loads the chart and evaluates it with the requested revision
func (r Request) Run() (Result, error) {
	bMap, err := beatmap.LoadChartFile(r.Chart)
	if err != nil {
		return Result{}, err
	}

	return r.evaluate(bMap)
}

func (r Request) evaluate(bMap *beatmap.Beatmap) (Result, error) {
	mode, err := r.targetMode(bMap)
	if err != nil {
		return Result{}, err
	}

	rev, err := LookupRevision(mode, r.Revision)
	if err != nil {
		return Result{}, err
	}

	diff, err := r.difficulty(bMap)
	if err != nil {
		return Result{}, err
	}

	res := rev.evaluate(bMap, diff, r.Play)

	res.Chart = r.Chart
	res.Mode = mode
	res.Revision = rev.Name
	res.Version = rev.Version
	res.Mods = modString(diff.Mods)

	return res, nil
}

// Peaks evaluates per-section strain peaks, nil when the revision doesn't keep them
func (r Request) Peaks() (*Revision, []Series, error) {
	bMap, err := beatmap.LoadChartFile(r.Chart)
	if err != nil {
		return nil, nil, err
	}

	mode, err := r.targetMode(bMap)
	if err != nil {
		return nil, nil, err
	}

	rev, err := LookupRevision(mode, r.Revision)
	if err != nil {
		return nil, nil, err
	}

	diff, err := r.difficulty(bMap)
	if err != nil {
		return nil, nil, err
	}

	if rev.peaks == nil {
		return rev, nil, nil
	}

	return rev, rev.peaks(bMap, diff), nil
}

func (r Request) targetMode(bMap *beatmap.Beatmap) (beatmap.Mode, error) {
	if r.Mode == "" {
		return bMap.Mode, nil
	}

	mode, err := beatmap.ParseMode(r.Mode)
	if err != nil {
		return 0, err
	}

	if mode != bMap.Mode && bMap.Mode != beatmap.ModeOsu {
		return 0, fmt.Errorf("%w: chart is %s", ErrNotConvertible, bMap.Mode)
	}

	return mode, nil
}

func (r Request) difficulty(bMap *beatmap.Beatmap) (*difficulty.Difficulty, error) {
	mods, err := difficulty.ParseMods(r.Mods)
	if err != nil {
		return nil, err
	}

	diff := bMap.NewDifficulty()
	diff.SetMods(mods)

	if r.ClockRate > 0 {
		diff.SetCustomSpeed(r.ClockRate)
	}

	diff.PassedObjects = r.Passed

	return diff, nil
}

func modString(mods difficulty.Modifier) string {
	if s := mods.String(); s != "" {
		return s
	}

	return "NM"
}
