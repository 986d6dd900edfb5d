package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-anim/anim/sample"
)

func newSampleCommand(ctx *commandContext) *cobra.Command {
	var times []float64
	var bake int

	cmd := &cobra.Command{
		Use:   "sample [track.json]",
		Short: "Evaluate a track at given times",
		Long: "Evaluate a track at the times given by --at and print a table, or resample\n" +
			"it at --bake evenly spaced times and print the result as a JSON track.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(times) == 0 && bake == 0 {
				return errors.New("nothing to do: pass --at or --bake")
			}
			kind, err := ctx.kind()
			if err != nil {
				return err
			}
			track, err := readSortedTrack(ctx, cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if bake != 0 {
				baked, err := sample.Bake(kind, track, bake)
				if err != nil {
					return fmt.Errorf("bake: %w", err)
				}
				ctx.logger(cmd).Debug("baked track", "kind", kind, "samples", bake)
				return writeJSON(out, baked.Encode())
			}

			e, err := sample.NewEvaluator(kind, track)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(times))
			for _, t := range times {
				v, err := e.At(t)
				if err != nil {
					return fmt.Errorf("sample at %v: %w", t, err)
				}
				rows = append(rows, []string{formatFloat(t), formatValues(v)})
			}
			fmt.Fprintln(out, renderTable(out, []string{"Time", "Values"}, rows, []columnAlignment{alignRight, alignLeft}))
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&times, "at", nil, "Times to sample (comma-separated or repeated)")
	cmd.Flags().IntVar(&bake, "bake", 0, "Resample the track at N evenly spaced times and print it as JSON")
	return cmd
}
