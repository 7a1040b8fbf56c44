package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ltlsynth/boolalgo/setcoverpolicy"
)

var setCoverCmd = &cobra.Command{
	Use:   "set-cover <trace> <max_size_ltl> <domin_nb> <max_nb_formulas> <placeholder>",
	Short: "Greedy set-cover approximation algorithm",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseInts(args[1:])
		if err != nil {
			return err
		}
		maxSizeLTL, dominNb, maxNbFormulas, placeholder := n[0], n[1], n[2], n[3]

		policy := setcoverpolicy.Policy{MaxNbFormulas: maxNbFormulas, Placeholder: placeholder}
		res, err := runSearch(args[0], maxSizeLTL, dominNb, policy)
		if err != nil {
			return err
		}
		printResult(res)
		return nil
	},
}
