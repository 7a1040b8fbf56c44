package ltlsem

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/ltlsynth/bitops"
)

// CharMatrix is the characteristic matrix of an LTL formula: one CharSeq
// per trace, in trace order.
type CharMatrix struct {
	Seqs []bitops.CharSeq
}

// NewCharMatrix builds a CharMatrix from one CharSeq per trace. The slice
// is copied so the caller may reuse its backing array.
func NewCharMatrix(seqs []bitops.CharSeq) CharMatrix {
	owned := make([]bitops.CharSeq, len(seqs))
	copy(owned, seqs)
	return CharMatrix{Seqs: owned}
}

// AcceptedVec reports, per trace, whether the formula holds at position 0.
func (cm CharMatrix) AcceptedVec() []bool {
	out := make([]bool, len(cm.Seqs))
	for i, s := range cm.Seqs {
		out[i] = s.Accepts()
	}
	return out
}

// IsEquivalent reports whether this matrix's per-trace acceptance matches
// target exactly, trace for trace.
func (cm CharMatrix) IsEquivalent(target []bool) bool {
	if len(cm.Seqs) != len(target) {
		return false
	}
	for i, s := range cm.Seqs {
		if s.Accepts() != target[i] {
			return false
		}
	}
	return true
}

// Next applies the LTL Next operator trace-wise.
func (cm CharMatrix) Next() CharMatrix {
	return cm.mapUnary(bitops.CharSeq.Next)
}

// Finally applies the LTL Finally operator trace-wise.
func (cm CharMatrix) Finally() CharMatrix {
	return cm.mapUnary(bitops.CharSeq.Finally)
}

// Globally applies the LTL Globally operator trace-wise.
func (cm CharMatrix) Globally() CharMatrix {
	return cm.mapUnary(bitops.CharSeq.Globally)
}

func (cm CharMatrix) mapUnary(f func(bitops.CharSeq) bitops.CharSeq) CharMatrix {
	seqs := make([]bitops.CharSeq, len(cm.Seqs))
	for i, s := range cm.Seqs {
		seqs[i] = f(s)
	}
	return CharMatrix{Seqs: seqs}
}

// Or applies the LTL Or operator trace-wise.
func (cm CharMatrix) Or(rhs CharMatrix) (CharMatrix, error) {
	return cm.zipBinary(rhs, bitops.CharSeq.Or)
}

// And applies the LTL And operator trace-wise.
func (cm CharMatrix) And(rhs CharMatrix) (CharMatrix, error) {
	return cm.zipBinary(rhs, bitops.CharSeq.And)
}

// Until applies the LTL Until operator trace-wise.
func (cm CharMatrix) Until(rhs CharMatrix) (CharMatrix, error) {
	return cm.zipBinary(rhs, bitops.CharSeq.Until)
}

func (cm CharMatrix) zipBinary(rhs CharMatrix, f func(bitops.CharSeq, bitops.CharSeq) (bitops.CharSeq, error)) (CharMatrix, error) {
	if len(cm.Seqs) != len(rhs.Seqs) {
		return CharMatrix{}, fmt.Errorf("ltlsem: mismatched trace counts %d vs %d", len(cm.Seqs), len(rhs.Seqs))
	}
	seqs := make([]bitops.CharSeq, len(cm.Seqs))
	for i := range cm.Seqs {
		s, err := f(cm.Seqs[i], rhs.Seqs[i])
		if err != nil {
			return CharMatrix{}, err
		}
		seqs[i] = s
	}
	return CharMatrix{Seqs: seqs}, nil
}

// Hash returns a content hash of the matrix, stable across calls on
// bitwise-equal matrices.
func (cm CharMatrix) Hash() uint64 {
	h := xxhash.New()
	var buf [9]byte
	for _, s := range cm.Seqs {
		binary.LittleEndian.PutUint64(buf[:8], s.Bits())
		buf[8] = byte(s.Len())
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
