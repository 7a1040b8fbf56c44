package bitops

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// MaxVecLen is the hard ceiling on the number of traces a Boolean
// characteristic vector can cover in one sub-problem.
const MaxVecLen = 128

// ErrVecTooLong indicates more than MaxVecLen traces were packed into a
// CharVec or SatVec.
var ErrVecTooLong = errors.New("bitops: more than 128 traces in one sub-problem")

// CharVec is the truth table of a Boolean formula over up to 128 traces,
// one bit per trace. It is stored as two 64-bit words (lo covers traces
// 0-63, hi covers traces 64-127) since Go has no native 128-bit integer.
type CharVec struct {
	lo, hi uint64
	length int
}

// maskFor128 returns the (lo, hi) masks covering exactly the first n bits
// of a two-word 128-bit value.
func maskFor128(n int) (lo, hi uint64) {
	switch {
	case n >= 128:
		return ^uint64(0), ^uint64(0)
	case n > 64:
		return ^uint64(0), (uint64(1) << uint(n-64)) - 1
	case n == 64:
		return ^uint64(0), 0
	default:
		return (uint64(1) << uint(n)) - 1, 0
	}
}

// NewCharVec packs bits (one per trace, in order) into a CharVec. It
// returns ErrVecTooLong if len(bits) > MaxVecLen.
func NewCharVec(bits []bool) (CharVec, error) {
	if len(bits) > MaxVecLen {
		return CharVec{}, fmt.Errorf("%w: got %d", ErrVecTooLong, len(bits))
	}

	var lo, hi uint64
	for i, b := range bits {
		if !b {
			continue
		}
		if i < 64 {
			lo |= 1 << uint(i)
		} else {
			hi |= 1 << uint(i-64)
		}
	}

	return CharVec{lo: lo, hi: hi, length: len(bits)}, nil
}

// FromBits builds a CharVec directly from a raw two-word representation
// and a trace count, for callers re-interpreting another 128-bit-packed
// value (e.g. a SatVec) as a CharVec of the same length.
func FromBits(lo, hi uint64, length int) CharVec {
	loMask, hiMask := maskFor128(length)
	return CharVec{lo: lo & loMask, hi: hi & hiMask, length: length}
}

// Len returns the number of traces this vector covers.
func (v CharVec) Len() int { return v.length }

// Bits returns the raw two-word packed representation, for callers that
// need a stable byte representation (e.g. hashing).
func (v CharVec) Bits() (lo, hi uint64) { return v.lo, v.hi }

// Not returns the logical complement, masked back to Len() bits.
func (v CharVec) Not() CharVec {
	loMask, hiMask := maskFor128(v.length)
	return CharVec{lo: ^v.lo & loMask, hi: ^v.hi & hiMask, length: v.length}
}

// Or returns the bitwise OR of two CharVec values of equal length.
func (v CharVec) Or(rhs CharVec) CharVec {
	return CharVec{lo: v.lo | rhs.lo, hi: v.hi | rhs.hi, length: v.length}
}

// And returns the bitwise AND of two CharVec values of equal length.
func (v CharVec) And(rhs CharVec) CharVec {
	return CharVec{lo: v.lo & rhs.lo, hi: v.hi & rhs.hi, length: v.length}
}

// Satisfied computes the SatVec of self against target: bit i is set iff
// self and target agree at trace i (self[i] == target[i]).
func (v CharVec) Satisfied(target CharVec) SatVec {
	loMask, hiMask := maskFor128(v.length)
	lo := ((v.lo & target.lo) | ^(v.lo | target.lo)) & loMask
	hi := ((v.hi & target.hi) | ^(v.hi | target.hi)) & hiMask
	return SatVec{lo: lo, hi: hi}
}

// XorSatVec XORs self's bit pattern against a SatVec, returning the result
// as a SatVec. Used to flip a satisfiability vector against "not target"
// when re-deriving it after a Boolean operator application.
func (v CharVec) XorSatVec(sv SatVec) SatVec {
	return SatVec{lo: v.lo ^ sv.lo, hi: v.hi ^ sv.hi}
}

// Popcount returns the number of set bits.
func (v CharVec) Popcount() int {
	return bits.OnesCount64(v.lo) + bits.OnesCount64(v.hi)
}

// Equal reports whether two CharVec values have identical length and bits.
func (v CharVec) Equal(rhs CharVec) bool {
	return v.length == rhs.length && v.lo == rhs.lo && v.hi == rhs.hi
}

// String renders the vector as '0'/'1' characters, trace 0 first.
func (v CharVec) String() string {
	var b strings.Builder
	b.Grow(v.length)
	for i := 0; i < v.length; i++ {
		var bit uint64
		if i < 64 {
			bit = (v.lo >> uint(i)) & 1
		} else {
			bit = (v.hi >> uint(i-64)) & 1
		}
		if bit == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
