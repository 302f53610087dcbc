package main

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024"
)

var ErrModeMismatch = errors.New("replay mode doesn't match the chart")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "diffcalc",
		Short: "Star rating and pp with archived osu! difficulty revisions",
		Long: `diffcalc evaluates resolved YAML charts with frozen historical star rating
and performance point revisions of osu!standard, taiko, catch and mania.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newStarsCmd(), newPPCmd(), newPeaksCmd(), newStepCmd(), newBatchCmd(), newRevisionsCmd())

	return rootCmd
}

func addRequestFlags(cmd *cobra.Command, req *Request) {
	flags := cmd.Flags()
	flags.StringVarP(&req.Revision, "revision", "r", "", "revision name, newest when empty")
	flags.StringVar(&req.Mode, "mode", "", "convert an osu!standard chart to taiko, catch or mania")
	flags.StringVarP(&req.Mods, "mods", "m", "", "mods like HDDT")
	flags.Float64Var(&req.ClockRate, "clock-rate", 0, "clock rate overriding DT/HT, 0.01 to 100")
	flags.IntVar(&req.Passed, "passed", 0, "evaluate only the first n objects")
}

func newStarsCmd() *cobra.Command {
	var req Request

	cmd := &cobra.Command{
		Use:   "stars <chart.yaml>",
		Short: "Print difficulty attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Chart = args[0]

			return runAndWrite(cmd, req)
		},
	}

	addRequestFlags(cmd, &req)

	return cmd
}

func newPPCmd() *cobra.Command {
	var (
		req        Request
		replayPath string
	)

	play := NewPlay()

	cmd := &cobra.Command{
		Use:   "pp <chart.yaml>",
		Short: "Print difficulty and performance attributes of a play",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Chart = args[0]
			req.Play = &play

			if replayPath == "" {
				return runAndWrite(cmd, req)
			}

			score, err := loadReplay(replayPath)
			if err != nil {
				return err
			}

			bMap, err := beatmap.LoadChartFile(req.Chart)
			if err != nil {
				return err
			}

			if req.Mode == "" {
				req.Mode = score.Mode.String()
			}

			if mode, err := req.targetMode(bMap); err != nil {
				return err
			} else if mode != score.Mode {
				return fmt.Errorf("%w: replay is %s", ErrModeMismatch, score.Mode)
			}

			if !cmd.Flags().Changed("mods") {
				req.Mods = score.Mods.String()
			}

			req.Play = &score.Play

			res, err := req.evaluate(bMap)
			if err != nil {
				return err
			}

			writeResult(cmd.OutOrStdout(), res)

			return nil
		},
	}

	addRequestFlags(cmd, &req)

	flags := cmd.Flags()
	flags.Float64Var(&play.Accuracy, "acc", -1, "accuracy in percent")
	flags.IntVar(&play.Combo, "combo", -1, "max combo, full combo when negative")
	flags.IntVar(&play.Count300, "n300", -1, "300 count")
	flags.IntVar(&play.Count100, "n100", -1, "100 count")
	flags.IntVar(&play.Count50, "n50", -1, "50 count")
	flags.IntVar(&play.CountGeki, "geki", -1, "geki count, mania perfects")
	flags.IntVar(&play.CountKatu, "katu", -1, "katu count, mania goods or missed catch droplets")
	flags.IntVar(&play.Misses, "misses", 0, "miss count")
	flags.Float64Var(&play.Score, "score", -1, "legacy score for mania revisions that use it")
	flags.StringVar(&replayPath, "replay", "", "take the play and mods from an .osr file")

	cmd.MarkFlagsMutuallyExclusive("replay", "acc")
	cmd.MarkFlagsMutuallyExclusive("replay", "n300")
	cmd.MarkFlagsMutuallyExclusive("replay", "misses")

	return cmd
}

func runAndWrite(cmd *cobra.Command, req Request) error {
	res, err := req.Run()
	if err != nil {
		return err
	}

	writeResult(cmd.OutOrStdout(), res)

	return nil
}

func newPeaksCmd() *cobra.Command {
	var req Request

	cmd := &cobra.Command{
		Use:   "peaks <chart.yaml>",
		Short: "Print per-section strain peaks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Chart = args[0]

			rev, series, err := req.Peaks()
			if err != nil {
				return err
			}

			if series == nil {
				return fmt.Errorf("%s %s doesn't keep strain peaks", rev.Mode, rev.Name)
			}

			writePeaks(cmd.OutOrStdout(), series)

			return nil
		},
	}

	addRequestFlags(cmd, &req)

	return cmd
}

// newStepCmd exposes the newest osu!standard revision's star rating after every object
func newStepCmd() *cobra.Command {
	var req Request

	cmd := &cobra.Command{
		Use:   "step <chart.yaml>",
		Short: "Print osu!standard star rating after every object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bMap, err := beatmap.LoadChartFile(args[0])
			if err != nil {
				return err
			}

			if bMap.Mode != beatmap.ModeOsu {
				return fmt.Errorf("step needs an osu!standard chart, got %s", bMap.Mode)
			}

			diff, err := req.difficulty(bMap)
			if err != nil {
				return err
			}

			steps := osu2024.NewDifficultyCalculator().CalculateStep(bMap, diff)

			stars := make([]float64, len(steps))
			for i, attr := range steps {
				stars[i] = attr.Total
			}

			writePeaks(cmd.OutOrStdout(), []Series{{"stars", stars}})

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&req.Mods, "mods", "m", "", "mods like HDDT")
	flags.Float64Var(&req.ClockRate, "clock-rate", 0, "clock rate overriding DT/HT, 0.01 to 100")

	return cmd
}

func newBatchCmd() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "batch <jobs.yaml>",
		Short: "Evaluate many requests in parallel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := loadBatch(args[0])
			if err != nil {
				return err
			}

			results, err := runBatch(cmd.Context(), requests, jobs)
			if err != nil {
				return err
			}

			writeBatch(cmd.OutOrStdout(), results)

			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "requests evaluated at once")

	return cmd
}

func newRevisionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revisions",
		Short: "List known revisions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			writeRevisions(cmd.OutOrStdout())
		},
	}
}
