package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Givikap120/strainarchive/app/beatmap"
)

func modeTitle(mode beatmap.Mode) string {
	return cases.Title(language.English).String(mode.String())
}

func formatDetail(d Detail) string {
	if d.Count {
		return humanize.Comma(int64(d.Value))
	}

	return humanize.FormatFloat("#,###.##", d.Value)
}

func writeResult(w io.Writer, res Result) {
	fmt.Fprintf(w, "%s [%s %s, %d] +%s\n", res.Chart, modeTitle(res.Mode), res.Revision, res.Version, res.Mods)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Attribute", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"stars", formatDetail(value("", res.Stars))})

	if res.HasPP {
		table.Append([]string{"pp", formatDetail(value("", res.PP))})
	}

	for _, d := range res.Details {
		table.Append([]string{d.Name, formatDetail(d)})
	}

	table.Render()
}

func writeBatch(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Chart", "Mode", "Revision", "Mods", "Stars", "PP"})

	for _, res := range results {
		pp := "-"
		if res.HasPP {
			pp = humanize.FormatFloat("#,###.##", res.PP)
		}

		table.Append([]string{
			res.Chart,
			modeTitle(res.Mode),
			res.Revision,
			res.Mods,
			humanize.FormatFloat("#,###.##", res.Stars),
			pp,
		})
	}

	table.Render()
}

func writeRevisions(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Mode", "Revision", "Version", "PP", "Notes"})
	table.SetAutoWrapText(false)

	for _, mode := range []beatmap.Mode{beatmap.ModeOsu, beatmap.ModeTaiko, beatmap.ModeCatch, beatmap.ModeMania} {
		for _, name := range revisionNames[mode] {
			rev, err := LookupRevision(mode, name)
			if err != nil {
				continue
			}

			pp := "no"
			if rev.HasPP {
				pp = "yes"
			}

			table.Append([]string{modeTitle(mode), rev.Name, strconv.Itoa(rev.Version), pp, rev.Message})
		}
	}

	table.Render()
}

func writePeaks(w io.Writer, series []Series) {
	header := []string{"Section"}
	sections := 0

	for _, s := range series {
		header = append(header, s.Name)
		sections = max(sections, len(s.Peaks))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)

	for i := 0; i < sections; i++ {
		row := []string{strconv.Itoa(i)}

		for _, s := range series {
			cell := ""
			if i < len(s.Peaks) {
				cell = strconv.FormatFloat(s.Peaks[i], 'f', 2, 64)
			}

			row = append(row, cell)
		}

		table.Append(row)
	}

	table.Render()
}
