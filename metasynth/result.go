package metasynth

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/ltlsynth/formula"
	"github.com/katalvlaran/ltlsynth/tracefile"
)

// ErrCorrectnessMismatch signals that a found formula, when re-evaluated
// over the full trace set, does not reproduce the target vector it was
// supposedly found against — an invariant failure in the search core
// itself, never a user-facing input error.
var ErrCorrectnessMismatch = errors.New("metasynth: found formula does not reproduce target on re-evaluation")

// Source records which phase of the search produced the result, so callers
// can tell a one-predicate match apart from a full Boolean search.
type Source int

const (
	NotFound Source = iota
	FoundAtom
	FoundByLTL
	FoundByBool
)

// String renders the source as a short human-readable phrase.
func (s Source) String() string {
	switch s {
	case NotFound:
		return "not found"
	case FoundAtom:
		return "found as a single atom"
	case FoundByLTL:
		return "found by LTL enumeration"
	case FoundByBool:
		return "found by Boolean search"
	default:
		return "unknown"
	}
}

// Result is the outcome of a DivideConquer run: timing data for both
// phases, the LTL cache's per-size population (for diagnostics), and the
// formula found, if any.
type Result struct {
	LTLTime       time.Duration
	LTLCacheSizes []int
	AlgoTime      *time.Duration
	Source        Source
	Formula       *formula.FormulaTree
}

// TotalTimeSec is the combined wall time of both phases, in seconds.
func (r Result) TotalTimeSec() float64 {
	total := r.LTLTime.Seconds()
	if r.AlgoTime != nil {
		total += r.AlgoTime.Seconds()
	}
	return total
}

// Found reports whether a formula was found by either phase.
func (r Result) Found() bool {
	return r.Source != NotFound
}

// Verify re-evaluates r.Formula against every trace and checks the
// result matches target bit for bit, mirroring the post-solve assertion
// the original CLI runs before trusting a search result. A nil Formula
// (NotFound) trivially verifies. Returns ErrCorrectnessMismatch, wrapped
// with the first mismatched index, on a disagreement.
func (r Result) Verify(traces []tracefile.Trace, target []bool) error {
	if r.Formula == nil {
		return nil
	}

	actual := r.Formula.Eval(traces).AcceptedVec()
	for i, want := range target {
		if actual[i] != want {
			return fmt.Errorf("%w: trace %d: got %v, want %v", ErrCorrectnessMismatch, i, actual[i], want)
		}
	}
	return nil
}
