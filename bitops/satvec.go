package bitops

import "math/bits"

// SatVec is a satisfiability vector: bit i is set iff a formula's value on
// trace i matches that trace's label (positive trace where the formula is
// true, or negative trace where it is false).
type SatVec struct {
	lo, hi uint64
}

// Bits returns the raw two-word packed representation.
func (s SatVec) Bits() (lo, hi uint64) { return s.lo, s.hi }

// Popcount returns the number of traces the formula satisfies.
func (s SatVec) Popcount() int {
	return bits.OnesCount64(s.lo) + bits.OnesCount64(s.hi)
}

// Dominates reports whether self dominates other: every trace other
// satisfies, self also satisfies. Equivalently, other is a bitwise subset
// of self.
func (s SatVec) Dominates(other SatVec) bool {
	return (^s.lo&other.lo) == 0 && (^s.hi&other.hi) == 0
}

// Equal reports bitwise equality.
func (s SatVec) Equal(rhs SatVec) bool {
	return s.lo == rhs.lo && s.hi == rhs.hi
}
