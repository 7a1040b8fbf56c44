package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ltlsynth/metasynth"
)

// parseInts converts a fixed run of positional arguments to ints,
// matching clap's derive-macro behaviour of rejecting any non-numeric
// budget argument with a usage error rather than silently defaulting it.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("ltlsynth: %q is not a valid integer: %w", a, err)
		}
		out[i] = n
	}
	return out, nil
}

// printResult writes the found formula (or an empty line, if none) to
// stdout, matching the plain `<binary> <algo> ...` contract of spec.md §6.
func printResult(res metasynth.Result) {
	if res.Formula == nil {
		fmt.Println()
		return
	}
	fmt.Println(res.Formula.String())
}
