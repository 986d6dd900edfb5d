package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-anim/anim/optimize"
	"github.com/cwbudde/algo-anim/internal/config"
)

// optimizerFlags are the settings overrides shared by optimize and report.
type optimizerFlags struct {
	passes   int
	only     []string
	inactive bool
}

func (f *optimizerFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.passes, "passes", 0, "Override the configured number of passes")
	cmd.Flags().StringSliceVar(&f.only, "only", nil, "Run only these reducers (duplicate, similarPoint, slopeSimilarity)")
	cmd.Flags().BoolVar(&f.inactive, "inactive", false, "Normalize the track without removing keyframes")
}

func (f *optimizerFlags) settings(cmd *cobra.Command, cfg *config.Config) (optimize.Settings, error) {
	base, err := cfg.Settings()
	if err != nil {
		return optimize.Settings{}, err
	}

	var opts []optimize.Option
	if cmd.Flags().Changed("passes") {
		opts = append(opts, optimize.WithPasses(f.passes))
	}
	if cmd.Flags().Changed("only") {
		for _, name := range f.only {
			if !slices.Contains(optimize.Builtins(), name) {
				return optimize.Settings{}, fmt.Errorf("unknown reducer %q (want one of %v)", name, optimize.Builtins())
			}
		}
		opts = append(opts, optimize.Only(f.only...))
	}
	if f.inactive {
		opts = append(opts, optimize.WithActive(false))
	}
	return base.With(opts...)
}

func newOptimizeCommand(ctx *commandContext) *cobra.Command {
	var flags optimizerFlags

	cmd := &cobra.Command{
		Use:   "optimize [track.json]",
		Short: "Remove redundant keyframes from a track",
		Long: "Read a JSON track, remove keyframes that the enabled reducers judge redundant,\n" +
			"and print the result as JSON. Single keyframes at time 0 collapse to the simple form.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			settings, err := flags.settings(cmd, cfg)
			if err != nil {
				return err
			}
			raw, err := readTrack(cmd, args)
			if err != nil {
				return err
			}

			logger := ctx.logger(cmd)
			logger.Debug("optimizer settings",
				"active", settings.Active,
				"passes", settings.Passes,
				"duplicates", settings.Duplicates.Enabled,
				"similar_points", settings.SimilarPoints.Enabled,
				"slopes", settings.Slopes.Enabled,
			)

			out, err := optimize.Optimize(raw, settings)
			if err != nil {
				return err
			}
			before, after := countKeyframes(raw), countKeyframes(out)
			logger.Info("optimized track", "before", before, "after", after, "removed", before-after)

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	flags.register(cmd)
	return cmd
}
