package ltlsem

import (
	"github.com/katalvlaran/ltlsynth/bitops"
	"github.com/katalvlaran/ltlsynth/ops"
)

// Charac is an LTL formula's characteristic representation: its
// CharMatrix plus a cached hash, so the hash is never recomputed once a
// formula has been built.
type Charac struct {
	CM   CharMatrix
	hash uint64
}

// NewCharac builds a base Charac directly from per-trace CharSeq values:
// one predicate evaluated against every trace, in trace order.
func NewCharac(seqs []bitops.CharSeq) Charac {
	cm := NewCharMatrix(seqs)
	return Charac{CM: cm, hash: cm.Hash()}
}

// Hash returns the cached content hash.
func (c Charac) Hash() uint64 { return c.hash }

// EqTarget reports whether this formula's per-trace acceptance matches
// target exactly.
func (c Charac) EqTarget(target []bool) bool {
	return c.CM.IsEquivalent(target)
}

// ApplyUnary applies a unary LTL operator to a Charac, producing the
// child's characteristic under that operator. Matches the call signature
// formula.ApplyUnary expects from a characteristic type.
func ApplyUnary(op ops.UnaryOp, f Charac) Charac {
	var cm CharMatrix
	switch op {
	case ops.Next:
		cm = f.CM.Next()
	case ops.Finally:
		cm = f.CM.Finally()
	case ops.Globally:
		cm = f.CM.Globally()
	default:
		panic("ltlsem: unknown unary operator")
	}
	return Charac{CM: cm, hash: cm.Hash()}
}

// ApplyBinary applies a binary LTL operator to two Characs. The two
// operands must come from CharMatrix values built over the same trace
// set; a length mismatch is a programmer error (enumeration only ever
// combines formulas evaluated against one fixed trace set) so it panics
// rather than threading an error through the hot enumeration loop.
func ApplyBinary(op ops.BinaryOp, f1, f2 Charac) Charac {
	var (
		cm  CharMatrix
		err error
	)
	switch op {
	case ops.Or:
		cm, err = f1.CM.Or(f2.CM)
	case ops.And:
		cm, err = f1.CM.And(f2.CM)
	case ops.Until:
		cm, err = f1.CM.Until(f2.CM)
	default:
		panic("ltlsem: unknown binary operator")
	}
	if err != nil {
		panic(err)
	}
	return Charac{CM: cm, hash: cm.Hash()}
}
