package main

import (
	"errors"
	"fmt"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	catchapi "github.com/Givikap120/strainarchive/app/rulesets/catch/performance/api"
	"github.com/Givikap120/strainarchive/app/rulesets/catch/performance/catch2022"
	"github.com/Givikap120/strainarchive/app/rulesets/catch/performance/catchppv1"
	maniaapi "github.com/Givikap120/strainarchive/app/rulesets/mania/performance/api"
	"github.com/Givikap120/strainarchive/app/rulesets/mania/performance/mania2018"
	"github.com/Givikap120/strainarchive/app/rulesets/mania/performance/mania2022"
	"github.com/Givikap120/strainarchive/app/rulesets/mania/performance/maniappv1"
	osuapi "github.com/Givikap120/strainarchive/app/rulesets/osu/performance/api"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2015"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2018"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2019"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2021"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024"
	taikoapi "github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/api"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/taiko2022"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/taiko2024"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/taikoppv1"
)

var ErrUnknownRevision = errors.New("unknown revision")

// revisionNames lists revisions per mode, oldest first. The last one is the default.
var revisionNames = map[beatmap.Mode][]string{
	beatmap.ModeOsu:   {"2015", "2018", "2019", "2021", "2024"},
	beatmap.ModeTaiko: {"ppv1", "2022", "2024"},
	beatmap.ModeCatch: {"ppv1", "2022"},
	beatmap.ModeMania: {"ppv1", "2018", "2022"},
}

type difficultyCalculator[A any] interface {
	CalculateSingle(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) A
	GetVersion() int
	GetVersionMessage() string
}

type ppCalculator[A, S, P any] interface {
	Calculate(attribs A, state S, diff *difficulty.Difficulty) P
}

type peaksCalculator[P any] interface {
	CalculateStrainPeaks(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) P
}

// Revision is one frozen calculator of a mode. Every lookup builds fresh calculators, so a
// Revision must not be shared between concurrent requests.
type Revision struct {
	Mode    beatmap.Mode
	Name    string
	Version int
	Message string
	HasPP   bool

	evaluate func(bMap *beatmap.Beatmap, diff *difficulty.Difficulty, play *Play) Result

	// peaks is nil for revisions that don't keep section peaks
	peaks func(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) []Series
}

// LookupRevision finds a revision by name, an empty name selects the newest one
func LookupRevision(mode beatmap.Mode, name string) (*Revision, error) {
	names, ok := revisionNames[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %s", beatmap.ErrUnknownMode, mode)
	}

	if name == "" || name == "latest" {
		name = names[len(names)-1]
	}

	var rev *Revision

	switch mode {
	case beatmap.ModeOsu:
		switch name {
		case "2015":
			rev = osuRevision(osu2015.NewDifficultyCalculator(), nil)
		case "2018":
			rev = osuRevision(osu2018.NewDifficultyCalculator(), nil)
		case "2019":
			rev = osuRevision(osu2019.NewDifficultyCalculator(), nil)
		case "2021":
			rev = osuRevision(osu2021.NewDifficultyCalculator(), nil)
		case "2024":
			calc := osu2024.NewDifficultyCalculator()
			rev = osuRevision(calc, osu2024.NewPPCalculator())
			rev.peaks = func(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) []Series {
				p := calc.CalculateStrainPeaks(bMap, diff)
				return []Series{{"aim", p.Aim}, {"speed", p.Speed}, {"flashlight", p.Flashlight}, {"total", p.Total}}
			}
		}
	case beatmap.ModeTaiko:
		switch name {
		case "ppv1":
			rev = taikoRevision(taikoppv1.NewDifficultyCalculator(), taikoppv1.NewPPCalculator())
		case "2022":
			rev = taikoRevision(taiko2022.NewDifficultyCalculator(), taiko2022.NewPPCalculator())
		case "2024":
			calc := taiko2024.NewDifficultyCalculator()
			rev = taikoRevision(calc, taiko2024.NewPPCalculator())
			rev.peaks = func(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) []Series {
				p := calc.CalculateStrainPeaks(bMap, diff)
				return []Series{{"rhythm", p.Rhythm}, {"colour", p.Colour}, {"stamina", p.Stamina}, {"total", p.Total}}
			}
		}
	case beatmap.ModeCatch:
		switch name {
		case "ppv1":
			calc := catchppv1.NewDifficultyCalculator()
			rev = catchRevision(calc, catchppv1.NewPPCalculator())
			rev.peaks = catchPeaks(calc)
		case "2022":
			calc := catch2022.NewDifficultyCalculator()
			rev = catchRevision(calc, catch2022.NewPPCalculator())
			rev.peaks = catchPeaks(calc)
		}
	case beatmap.ModeMania:
		switch name {
		case "ppv1":
			rev = maniaRevision(maniappv1.NewDifficultyCalculator(), maniappv1.NewPPCalculator())
		case "2018":
			rev = maniaRevision(mania2018.NewDifficultyCalculator(), mania2018.NewPPCalculator())
		case "2022":
			calc := mania2022.NewDifficultyCalculator()
			rev = maniaRevision(calc, mania2022.NewPPCalculator())
			rev.peaks = func(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) []Series {
				return []Series{{"strain", calc.CalculateStrainPeaks(bMap, diff).Strain}}
			}
		}
	}

	if rev == nil {
		return nil, fmt.Errorf("%w: %s has no revision %q", ErrUnknownRevision, mode, name)
	}

	rev.Mode = mode
	rev.Name = name

	return rev, nil
}

func newRevision[A any](calc difficultyCalculator[A], hasPP bool) *Revision {
	return &Revision{
		Version: calc.GetVersion(),
		Message: calc.GetVersionMessage(),
		HasPP:   hasPP,
	}
}

func osuRevision(calc difficultyCalculator[osuapi.Attributes], pp ppCalculator[osuapi.Attributes, osuapi.ScoreState, osuapi.PerformanceAttributes]) *Revision {
	rev := newRevision(calc, pp != nil)

	rev.evaluate = func(bMap *beatmap.Beatmap, diff *difficulty.Difficulty, play *Play) Result {
		attrs := calc.CalculateSingle(bMap, diff)
		res := Result{Stars: attrs.Total, Details: osuDetails(attrs)}

		if pp != nil && play != nil {
			perf := pp.Calculate(attrs, play.osuState(attrs), diff)

			res.HasPP = true
			res.PP = perf.Total
			res.Details = append(res.Details,
				value("aim pp", perf.Aim),
				value("speed pp", perf.Speed),
				value("accuracy pp", perf.Acc),
				value("flashlight pp", perf.Flashlight),
				value("effective misses", perf.EffectiveMissCount),
			)
		}

		return res
	}

	return rev
}

func taikoRevision(calc difficultyCalculator[taikoapi.Attributes], pp ppCalculator[taikoapi.Attributes, taikoapi.ScoreState, taikoapi.PerformanceAttributes]) *Revision {
	rev := newRevision(calc, pp != nil)

	rev.evaluate = func(bMap *beatmap.Beatmap, diff *difficulty.Difficulty, play *Play) Result {
		attrs := calc.CalculateSingle(bMap, diff)
		res := Result{Stars: attrs.Total, Details: taikoDetails(attrs)}

		if pp != nil && play != nil {
			perf := pp.Calculate(attrs, play.taikoState(attrs), diff)

			res.HasPP = true
			res.PP = perf.Total
			res.Details = append(res.Details,
				value("strain pp", perf.Strain),
				value("accuracy pp", perf.Acc),
				value("effective misses", perf.EffectiveMissCount),
				value("estimated UR", perf.EstimatedUnstableRate),
			)
		}

		return res
	}

	return rev
}

func maniaRevision(calc difficultyCalculator[maniaapi.Attributes], pp ppCalculator[maniaapi.Attributes, maniaapi.ScoreState, maniaapi.PerformanceAttributes]) *Revision {
	rev := newRevision(calc, pp != nil)

	rev.evaluate = func(bMap *beatmap.Beatmap, diff *difficulty.Difficulty, play *Play) Result {
		attrs := calc.CalculateSingle(bMap, diff)
		res := Result{Stars: attrs.Total, Details: maniaDetails(attrs)}

		if pp != nil && play != nil {
			perf := pp.Calculate(attrs, play.maniaState(attrs), diff)

			res.HasPP = true
			res.PP = perf.Total
			res.Details = append(res.Details,
				value("strain pp", perf.Strain),
				value("accuracy pp", perf.Acc),
			)
		}

		return res
	}

	return rev
}

func catchRevision(calc difficultyCalculator[catchapi.Attributes], pp ppCalculator[catchapi.Attributes, catchapi.ScoreState, catchapi.PerformanceAttributes]) *Revision {
	rev := newRevision(calc, pp != nil)

	rev.evaluate = func(bMap *beatmap.Beatmap, diff *difficulty.Difficulty, play *Play) Result {
		attrs := calc.CalculateSingle(bMap, diff)
		res := Result{Stars: attrs.Total, Details: catchDetails(attrs)}

		if pp != nil && play != nil {
			perf := pp.Calculate(attrs, play.catchState(attrs), diff)

			res.HasPP = true
			res.PP = perf.Total
		}

		return res
	}

	return rev
}

func catchPeaks(calc peaksCalculator[catchapi.StrainPeaks]) func(*beatmap.Beatmap, *difficulty.Difficulty) []Series {
	return func(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) []Series {
		return []Series{{"movement", calc.CalculateStrainPeaks(bMap, diff).Movement}}
	}
}
