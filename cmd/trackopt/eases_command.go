package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-anim/anim/easing"
)

func newEasesCommand() *cobra.Command {
	var at []float64

	cmd := &cobra.Command{
		Use:         "eases",
		Short:       "List easing names and sample their curves",
		Annotations: map[string]string{skipConfigLoad: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"Name"}
			aligns := []columnAlignment{alignLeft}
			for _, u := range at {
				headers = append(headers, "u="+formatFloat(u))
				aligns = append(aligns, alignRight)
			}

			names := easing.Names()
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				row := []string{string(name)}
				for _, u := range at {
					row = append(row, strconv.FormatFloat(easing.Apply(name, u), 'f', 4, 64))
				}
				rows = append(rows, row)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&at, "at", []float64{0.25, 0.5, 0.75}, "Progress values to sample")
	return cmd
}
