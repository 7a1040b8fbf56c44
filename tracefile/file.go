package tracefile

import (
	"fmt"
	"os"

	"github.com/katalvlaran/ltlsynth/ops"
)

// ParseFile reads and parses a trace file from disk. See Parse for the
// section format.
func ParseFile(path string) ([]Trace, []string, []bool, ops.Operators, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, ops.Operators{}, fmt.Errorf("tracefile: reading %s: %w", path, err)
	}
	return Parse(string(data))
}
