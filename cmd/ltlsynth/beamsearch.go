package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ltlsynth/boolalgo/beampolicy"
)

var beamSearchCmd = &cobra.Command{
	Use:   "beam-search <trace> <max_size_ltl> <domin_nb> <beam_width> <max_size_bool>",
	Short: "Bottom-up beam search algorithm",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseInts(args[1:])
		if err != nil {
			return err
		}
		maxSizeLTL, dominNb, beamWidth, maxSizeBool := n[0], n[1], n[2], n[3]

		policy := beampolicy.Policy{BeamWidth: beamWidth, MaxSizeBool: maxSizeBool, Logger: logger}
		res, err := runSearch(args[0], maxSizeLTL, dominNb, policy)
		if err != nil {
			return err
		}
		printResult(res)
		return nil
	},
}
