package formula

import "github.com/katalvlaran/ltlsynth/ops"

// Hasher is the capability a characteristic representation must provide to
// be usable as a Formula's Char type: a stable content hash, recomputed
// only when the characteristic itself changes.
type Hasher interface {
	Hash() uint64
}

// NodeKind tags which case of FormulaNode is populated.
type NodeKind int

const (
	NodeBase NodeKind = iota
	NodeUnary
	NodeBinary
)

// FormulaNode records how a formula was built: a leaf pointing at an
// explicit FormulaTree, or an internal node referencing its operand(s) by
// hash. The owning cache resolves those hashes back to full Formula values.
type FormulaNode[C Hasher] struct {
	Kind NodeKind

	Base *FormulaTree // NodeBase

	UnaryOp   ops.UnaryOp // NodeUnary
	ChildHash uint64      // NodeUnary

	BinaryOp  ops.BinaryOp // NodeBinary
	LeftHash  uint64       // NodeBinary
	RightHash uint64       // NodeBinary
}

// Formula is a formula together with its characteristic value and the size
// (node count) of the tree it represents.
type Formula[C Hasher] struct {
	Charac C
	Size   int
	Node   FormulaNode[C]
}

// NewBase builds a leaf formula of the given size from an explicit tree
// (an atom, or an already-rebuilt formula promoted into another cache).
func NewBase[C Hasher](charac C, size int, base *FormulaTree) Formula[C] {
	return Formula[C]{
		Charac: charac,
		Size:   size,
		Node:   FormulaNode[C]{Kind: NodeBase, Base: base},
	}
}

// Hash returns the formula's characteristic hash, used as its cache key.
func (f Formula[C]) Hash() uint64 {
	return f.Charac.Hash()
}

// ApplyUnary builds the formula obtained by applying op to f's
// characteristic, via the caller-supplied apply function (ltlsem.ApplyUnary
// or boolsem.ApplyUnary, typically).
func ApplyUnary[C Hasher](op ops.UnaryOp, f Formula[C], apply func(ops.UnaryOp, C) C) Formula[C] {
	charac := apply(op, f.Charac)
	return Formula[C]{
		Charac: charac,
		Size:   f.Size + 1,
		Node: FormulaNode[C]{
			Kind:      NodeUnary,
			UnaryOp:   op,
			ChildHash: f.Hash(),
		},
	}
}

// ApplyBinary builds the formula obtained by applying op to f1 and f2's
// characteristics, via the caller-supplied apply function.
func ApplyBinary[C Hasher](op ops.BinaryOp, f1, f2 Formula[C], apply func(ops.BinaryOp, C, C) C) Formula[C] {
	charac := apply(op, f1.Charac, f2.Charac)
	return Formula[C]{
		Charac: charac,
		Size:   f1.Size + 1 + f2.Size,
		Node: FormulaNode[C]{
			Kind:      NodeBinary,
			BinaryOp:  op,
			LeftHash:  f1.Hash(),
			RightHash: f2.Hash(),
		},
	}
}
