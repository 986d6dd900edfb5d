package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-anim/anim/keyframe"
	"github.com/cwbudde/algo-anim/anim/optimize"
	"github.com/cwbudde/algo-anim/anim/sample"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var flags optimizerFlags
	var samples int

	cmd := &cobra.Command{
		Use:   "report [track.json]",
		Short: "Show how much each reducer removes and how far the result drifts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			settings, err := flags.settings(cmd, cfg)
			if err != nil {
				return err
			}
			kind, err := ctx.kind()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("samples") {
				samples = cfg.Sample.ReportSamples
			}
			track, err := readSortedTrack(ctx, cmd, args)
			if err != nil {
				return err
			}

			rows, err := reportRows(kind, track, settings, samples)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			headers := []string{"Reducers", "Before", "After", "Removed", "Saved", "Max deviation", "At"}
			aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}
			fmt.Fprintln(out, renderTable(out, headers, rows, aligns))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&samples, "samples", 0, "Number of evenly spaced samples used to measure deviation (default from config)")
	return cmd
}

// reportRows compares the full pipeline and then each enabled built-in
// reducer on its own against the source track.
func reportRows(kind sample.Kind, track keyframe.Track, settings optimize.Settings, samples int) ([][]string, error) {
	type run struct {
		label    string
		settings optimize.Settings
	}
	runs := []run{{label: "all", settings: settings}}
	for _, name := range optimize.Builtins() {
		if !settings.Active || !settings.Enabled(name) {
			continue
		}
		single, err := settings.With(optimize.Only(name))
		if err != nil {
			return nil, err
		}
		runs = append(runs, run{label: name, settings: single})
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		after, err := optimize.Track(track, r.settings)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.label, err)
		}
		rep, err := optimize.Compare(kind, track, after, samples)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.label, err)
		}
		rows = append(rows, []string{
			r.label,
			strconv.Itoa(rep.Before),
			strconv.Itoa(rep.After),
			strconv.Itoa(rep.Removed()),
			fmt.Sprintf("%.1f%%", 100*(1-rep.Ratio())),
			strconv.FormatFloat(rep.MaxDeviation, 'g', 4, 64),
			formatFloat(rep.At),
		})
	}
	return rows, nil
}
