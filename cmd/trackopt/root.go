package main

import (
	"github.com/spf13/cobra"
)

const skipConfigLoad = "skipConfigLoad"

func newRootCommand() *cobra.Command {
	var configFlag, propertyFlag string
	var verboseFlag bool

	ctx := newCommandContext(&configFlag, &propertyFlag, &verboseFlag)

	rootCmd := &cobra.Command{
		Use:           "trackopt",
		Short:         "Sample and optimize animation keyframe tracks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&propertyFlag, "property", "p", "", "Animated property (position, rotation, color, ...); selects the interpolation")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newSampleCommand(ctx))
	rootCmd.AddCommand(newOptimizeCommand(ctx))
	rootCmd.AddCommand(newReportCommand(ctx))
	rootCmd.AddCommand(newEasesCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipConfigLoad] == "true" {
			return true
		}
	}
	return false
}
