package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ltlsynth/appconfig"
	"github.com/katalvlaran/ltlsynth/boolalgo"
	"github.com/katalvlaran/ltlsynth/metasynth"
	"github.com/katalvlaran/ltlsynth/tracefile"
)

var (
	cfg    *appconfig.Config
	logger zerolog.Logger

	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "ltlsynth",
	Short: "Synthesize an LTL/Boolean formula separating positive and negative traces",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = appconfig.Load()
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat = logFormat
		}
		logger = appconfig.NewLogger(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LTLSYNTH_LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "override LTLSYNTH_LOG_FORMAT")

	rootCmd.AddCommand(enumCmd, setCoverCmd, beamSearchCmd, benchCmd)
}

// runSearch loads the trace file at path and runs the divide-and-conquer
// driver with policy, the shared entry point every subcommand (and its
// bench counterpart) funnels through.
func runSearch(path string, maxSizeLTL, dominNb int, policy boolalgo.Policy) (metasynth.Result, error) {
	traces, alphabet, target, operators, err := tracefile.ParseFile(path)
	if err != nil {
		return metasynth.Result{}, fmt.Errorf("ltlsynth: %w", err)
	}

	res := metasynth.DivideConquer(traces, alphabet, operators, target, maxSizeLTL, dominNb, policy, logger)
	if err := res.Verify(traces, target); err != nil {
		return metasynth.Result{}, err
	}
	if res.Found() {
		logger.Info().Msg("ltlsynth: correctness check OK")
	}
	return res, nil
}
