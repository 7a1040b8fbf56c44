package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ltlsynth/boolalgo"
	"github.com/katalvlaran/ltlsynth/boolalgo/beampolicy"
	"github.com/katalvlaran/ltlsynth/boolalgo/enumpolicy"
	"github.com/katalvlaran/ltlsynth/boolalgo/setcoverpolicy"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run an algorithm and print a CSV-like timing/result line",
}

func init() {
	benchCmd.AddCommand(benchEnumCmd, benchSetCoverCmd, benchBeamSearchCmd)
}

// runBench funnels every bench-* subcommand through runSearch and prints
// the single CSV-like line spec.md §6's "experiments binary" contract
// describes: "go_<algo>, <filename>, <seconds>, <size-or--1>, <formula-or-empty>".
func runBench(name, path string, maxSizeLTL, dominNb int, policy boolalgo.Policy) error {
	res, err := runSearch(path, maxSizeLTL, dominNb, policy)
	if err != nil {
		return err
	}

	size := -1
	formula := ""
	if res.Formula != nil {
		size = res.Formula.Size()
		formula = res.Formula.String()
	}

	fmt.Printf("go_%s, %s, %.5f, %d, %s\n", name, path, res.TotalTimeSec(), size, formula)
	return nil
}

var benchEnumCmd = &cobra.Command{
	Use:   "enum <trace> <max_size_ltl> <domin_nb> <max_size_bool> <placeholder>",
	Short: "Bench exhaustive enumeration",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseInts(args[1:])
		if err != nil {
			return err
		}
		policy := enumpolicy.Policy{MaxSizeBool: n[2], DominNb: n[3], Logger: logger}
		return runBench("bool_enum", args[0], n[0], n[1], policy)
	},
}

var benchSetCoverCmd = &cobra.Command{
	Use:   "set-cover <trace> <max_size_ltl> <domin_nb> <max_nb_formulas> <placeholder>",
	Short: "Bench greedy set-cover approximation",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseInts(args[1:])
		if err != nil {
			return err
		}
		policy := setcoverpolicy.Policy{MaxNbFormulas: n[2], Placeholder: n[3]}
		return runBench("set_cover", args[0], n[0], n[1], policy)
	},
}

var benchBeamSearchCmd = &cobra.Command{
	Use:   "beam-search <trace> <max_size_ltl> <domin_nb> <beam_width> <max_size_bool>",
	Short: "Bench bottom-up beam search",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseInts(args[1:])
		if err != nil {
			return err
		}
		policy := beampolicy.Policy{BeamWidth: n[2], MaxSizeBool: n[3], Logger: logger}
		return runBench("beam_search", args[0], n[0], n[1], policy)
	},
}
