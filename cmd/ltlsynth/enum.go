package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ltlsynth/boolalgo/enumpolicy"
)

var enumCmd = &cobra.Command{
	Use:   "enum <trace> <max_size_ltl> <domin_nb> <max_size_bool> <placeholder>",
	Short: "Exhaustive enumeration algorithm",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseInts(args[1:])
		if err != nil {
			return err
		}
		maxSizeLTL, dominNb, maxSizeBool, dominNbBool := n[0], n[1], n[2], n[3]

		policy := enumpolicy.Policy{MaxSizeBool: maxSizeBool, DominNb: dominNbBool, Logger: logger}
		res, err := runSearch(args[0], maxSizeLTL, dominNb, policy)
		if err != nil {
			return err
		}
		printResult(res)
		return nil
	},
}
