package synthcache

import "github.com/katalvlaran/ltlsynth/formula"

// Cache is the size-bucketed formula cache contract: a sequence of
// "lines", one per formula size, queried by hash and iterated either
// singly (for unary application) or pairwise across complementary-size
// buckets (for binary application).
type Cache[C formula.Hasher] interface {
	formula.Cache[C]

	// Len is the total number of formulas across every line.
	Len() int

	// NBLines is the number of lines created so far (i.e. one past the
	// largest size for which NewLine/NewLineAndIter has been called).
	NBLines() int

	// IterSize returns every formula in the line for the given size.
	IterSize(size int) []formula.Formula[C]

	// NewLine opens a fresh line for formulas of the given size and
	// returns the handle used to push into it. size must equal NBLines()
	// at call time — calling NewLine out of order is a programmer error.
	NewLine(size int) Line[C]

	// NewLineAndIter opens a fresh line for target formula size, and
	// additionally returns the size-1 formulas (for unary application)
	// and every complementary-size formula pair summing to size-1 (for
	// binary application), following the bucket-pairing rule: pair bucket
	// i with bucket size-1-i, for i from 0 up to ceil(size/2)-1.
	NewLineAndIter(size int) (single []formula.Formula[C], pairs []Pair[C], line Line[C])
}

// Pair is one candidate operand pair for binary operator application.
type Pair[C formula.Hasher] struct {
	Left, Right formula.Formula[C]
}

// Line is the handle to the single currently-open line of a cache. Every
// concrete cache's admission policy lives entirely in its Line
// implementation: Push decides whether to keep a candidate and reports
// whether it did.
type Line[C formula.Hasher] interface {
	Push(f formula.Formula[C]) bool
}
