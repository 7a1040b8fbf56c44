package boolsem

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/ltlsynth/bitops"
	"github.com/katalvlaran/ltlsynth/ops"
)

// Charac is a Boolean formula's characteristic representation: its
// CharVec truth table, the SatVec of how it compares against a fixed
// target, and a cached hash of the CharVec alone (cheaper to hash and to
// compare than the two-word CharVec itself, once cached).
type Charac struct {
	CV   bitops.CharVec
	SV   bitops.SatVec
	hash uint64
}

func hashCV(cv bitops.CharVec) uint64 {
	lo, hi := cv.Bits()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], lo)
	binary.LittleEndian.PutUint64(buf[8:], hi)
	return xxhash.Sum64(buf[:])
}

// NewCharacFromCV builds a base Charac from a CharVec truth table and the
// fixed target it is being matched against.
func NewCharacFromCV(cv, target bitops.CharVec) Charac {
	return Charac{CV: cv, SV: cv.Satisfied(target), hash: hashCV(cv)}
}

// Hash returns the cached content hash.
func (c Charac) Hash() uint64 { return c.hash }

// EqTarget reports whether this formula's truth table equals target.
func (c Charac) EqTarget(target bitops.CharVec) bool {
	return c.CV.Equal(target)
}

// SatPositiveCount returns the number of positive traces (target-satisfied
// traces the formula is also true on) this formula covers.
func (c Charac) SatPositiveCount() int {
	return popcountAnd(c.CV, c.SV)
}

// SatNegativeCount returns the number of negative traces (target-satisfied
// traces the formula is false on) this formula covers.
func (c Charac) SatNegativeCount() int {
	return popcountAnd(c.CV.Not(), c.SV)
}

// popcountAnd counts the set bits of cv & sv, treating sv's bit pattern as
// a CharVec of cv's length so CharVec's bitwise ops apply directly.
func popcountAnd(cv bitops.CharVec, sv bitops.SatVec) int {
	lo, hi := sv.Bits()
	asVec := bitops.FromBits(lo, hi, cv.Len())
	return cv.And(asVec).Popcount()
}

// ApplyUnary exists only to satisfy the UnaryOp capability Formula[C]'s
// generic helpers are parameterised over; the Boolean search never applies
// a unary operator (its menu is filtered to Or/And before the search
// starts), so this panics if ever called, exactly like the original's
// "Never used, only needed for trait bounds" implementation.
func ApplyUnary(op ops.UnaryOp, f Charac) Charac {
	panic("boolsem: ApplyUnary is never used; Boolean search only applies binary operators")
}

// ApplyBinary applies a Boolean binary operator (Or or And) to two
// Characs, deriving the new SatVec via the XOR identity instead of calling
// Satisfied again: (cv2 xor (cv1 xor sv1)) flips sv1 exactly where the new
// cv disagrees with cv1, which is equivalent to comparing the new cv
// against the original target without having to thread the target through
// every call site.
func ApplyBinary(op ops.BinaryOp, f1, f2 Charac) Charac {
	var cv bitops.CharVec
	switch op {
	case ops.Or:
		cv = f1.CV.Or(f2.CV)
	case ops.And:
		cv = f1.CV.And(f2.CV)
	default:
		panic("boolsem: ApplyBinary only supports Or and And")
	}
	notTarget := f1.CV.XorSatVec(f1.SV)
	sv := cv.XorSatVec(notTarget)
	return Charac{CV: cv, SV: sv, hash: hashCV(cv)}
}
