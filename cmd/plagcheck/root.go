package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"plagcheck/internal/faults"
)

const compareUsage = "plagcheck <synonyms> <original> <suspect> [tuple-length]"

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var jsonFlag bool
	var opts compareOptions

	ctx := newCommandContext(&configFlag, &logLevelFlag, &jsonFlag)

	rootCmd := &cobra.Command{
		Use:   compareUsage,
		Short: "Estimate word-sequence overlap between two documents",
		Long: `Compare a suspect document against an original and print the share of the
suspect's word tuples that also occur in the original. Words listed on the
same line of the synonyms file count as the same word.`,
		Args:          compareArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, _, err := ctx.environment()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, ctx, args, opts)
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return faults.Wrap(faults.ErrConfiguration, "cli", "", "", err)
	})

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Print results as JSON")
	rootCmd.Flags().BoolVar(&opts.details, "details", false, "Show each suspect tuple with its match count before the score")
	rootCmd.Flags().BoolVar(&opts.record, "record", false, "Store the result in the comparison history")

	rootCmd.AddCommand(newScanCommand(ctx))
	rootCmd.AddCommand(newSynonymsCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// compareArgs accepts the three input paths plus an optional tuple length.
func compareArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return faults.Configuration("cli", fmt.Sprintf("wrong number of arguments (got %d); usage: %s", len(args), compareUsage))
	}
	return nil
}
