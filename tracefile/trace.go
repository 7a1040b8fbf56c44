package tracefile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/ltlsynth/bitops"
	"github.com/katalvlaran/ltlsynth/ops"
)

// Sentinel errors for the input-format error kind (spec.md §7): a malformed
// trace file always produces one of these, wrapped with context via %w,
// rather than aborting the process.
var (
	ErrMalformedFile         = errors.New("tracefile: missing a required '---'-delimited section")
	ErrTraceTooLong          = errors.New("tracefile: trace has more than 64 positions")
	ErrAlphabetMismatch      = errors.New("tracefile: alphabet name count does not match predicate count")
	ErrPositionCountMismatch = errors.New("tracefile: traces within a section disagree on predicate count")
	ErrNoOperators           = errors.New("tracefile: operator menu is empty")
)

// Trace stores the CharSeq of each predicate on one trace: Alphabet[i] is
// the truth sequence of predicate i across the trace's positions.
type Trace struct {
	Alphabet []bitops.CharSeq
}

// Parse splits buf into its four "---"-delimited sections (positive traces,
// negative traces, operator menu, alphabet names) and returns the combined
// trace list (positives first, then negatives), the alphabet names, the
// per-trace Boolean target (true for positive traces), and the operator
// menu.
func Parse(buf string) ([]Trace, []string, []bool, ops.Operators, error) {
	sections := strings.Split(buf, "---")
	if len(sections) < 4 {
		return nil, nil, nil, ops.Operators{}, fmt.Errorf("%w: got %d sections, need 4", ErrMalformedFile, len(sections))
	}

	positives, err := parseTraceSection(sections[0])
	if err != nil {
		return nil, nil, nil, ops.Operators{}, err
	}
	negatives, err := parseTraceSection(sections[1])
	if err != nil {
		return nil, nil, nil, ops.Operators{}, err
	}

	operators := parseOperators(strings.Trim(sections[2], "\n"))
	if operators.Len() == 0 {
		return nil, nil, nil, ops.Operators{}, ErrNoOperators
	}

	alphabet := strings.Split(strings.Trim(sections[3], "\n"), ",")

	nPred := 0
	switch {
	case len(positives) > 0:
		nPred = len(positives[0].Alphabet)
	case len(negatives) > 0:
		nPred = len(negatives[0].Alphabet)
	}
	if nPred != 0 && len(alphabet) != nPred {
		return nil, nil, nil, ops.Operators{}, fmt.Errorf("%w: %d names for %d predicates", ErrAlphabetMismatch, len(alphabet), nPred)
	}

	target := make([]bool, 0, len(positives)+len(negatives))
	for range positives {
		target = append(target, true)
	}
	for range negatives {
		target = append(target, false)
	}

	traces := make([]Trace, 0, len(positives)+len(negatives))
	traces = append(traces, positives...)
	traces = append(traces, negatives...)

	return traces, alphabet, target, operators, nil
}

// parseTraceSection parses one section's lines into Trace values. Blank
// lines are skipped, matching the original's filter_map over parse_trace.
func parseTraceSection(section string) ([]Trace, error) {
	lines := strings.Split(strings.Trim(section, "\n"), "\n")

	var (
		traces []Trace
		nPred  = -1
	)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		positions := strings.Split(line, ";")
		if len(positions) == 0 {
			continue
		}
		if len(positions) > bitops.MaxSeqLen {
			return nil, fmt.Errorf("%w: %d positions", ErrTraceTooLong, len(positions))
		}

		values := make([][]bool, len(positions))
		for i, pos := range positions {
			fields := strings.Split(pos, ",")
			bits := make([]bool, len(fields))
			for j, field := range fields {
				bits[j] = field == "1"
			}
			values[i] = bits
		}

		n := len(values[0])
		if nPred == -1 {
			nPred = n
		} else if n != nPred {
			return nil, fmt.Errorf("%w: got %d, expected %d", ErrPositionCountMismatch, n, nPred)
		}

		alphabet := make([]bitops.CharSeq, n)
		for i := 0; i < n; i++ {
			bits := make([]bool, len(values))
			for t, v := range values {
				bits[t] = v[i]
			}
			seq, err := bitops.NewCharSeq(bits)
			if err != nil {
				return nil, fmt.Errorf("tracefile: %w", err)
			}
			alphabet[i] = seq
		}

		traces = append(traces, Trace{Alphabet: alphabet})
	}

	return traces, nil
}

// parseOperators parses the operator menu section. "All Operators" selects
// every operator; otherwise it is a comma-separated token list, with
// unrecognised tokens silently dropped (spec.md §7).
func parseOperators(desc string) ops.Operators {
	if desc == "All Operators" {
		return ops.AllOperators()
	}

	var out ops.Operators
	for _, tok := range strings.Split(desc, ",") {
		tok = strings.TrimSpace(tok)
		if u, ok := ops.ParseUnary(tok); ok {
			out.Unary = append(out.Unary, u)
		}
		if b, ok := ops.ParseBinary(tok); ok {
			out.Binary = append(out.Binary, b)
		}
	}
	return out
}
