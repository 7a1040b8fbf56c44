package formula

import (
	"fmt"

	"github.com/katalvlaran/ltlsynth/bitops"
	"github.com/katalvlaran/ltlsynth/ltlsem"
	"github.com/katalvlaran/ltlsynth/ops"
	"github.com/katalvlaran/ltlsynth/tracefile"
)

// TreeKind tags which case of FormulaTree is populated.
type TreeKind int

const (
	TreeAtom TreeKind = iota
	TreeUnary
	TreeBinary
)

// Predicate is a single variable x_i, possibly negated.
type Predicate struct {
	Name    string
	Index   int
	Negated bool
}

// FormulaTree is the explicit, printable, evaluable tree form of a formula.
// Unlike Formula[C], which references children by hash through a cache,
// FormulaTree owns its children directly — it is built only once a formula
// has been selected as part of (or the whole of) a final answer.
type FormulaTree struct {
	Kind TreeKind

	Atom Predicate // TreeAtom

	UnaryOp ops.UnaryOp  // TreeUnary
	Child   *FormulaTree // TreeUnary

	BinaryOp ops.BinaryOp // TreeBinary
	Left     *FormulaTree // TreeBinary
	Right    *FormulaTree // TreeBinary
}

// NewAtom builds a single-predicate leaf.
func NewAtom(p Predicate) *FormulaTree {
	return &FormulaTree{Kind: TreeAtom, Atom: p}
}

// NewUnaryTree builds a unary node over child.
func NewUnaryTree(op ops.UnaryOp, child *FormulaTree) *FormulaTree {
	return &FormulaTree{Kind: TreeUnary, UnaryOp: op, Child: child}
}

// NewBinaryTree builds a binary node over left and right.
func NewBinaryTree(op ops.BinaryOp, left, right *FormulaTree) *FormulaTree {
	return &FormulaTree{Kind: TreeBinary, BinaryOp: op, Left: left, Right: right}
}

// Size returns the number of nodes in the tree.
func (t *FormulaTree) Size() int {
	switch t.Kind {
	case TreeAtom:
		return 1
	case TreeUnary:
		return 1 + t.Child.Size()
	case TreeBinary:
		return 1 + t.Left.Size() + t.Right.Size()
	default:
		panic("formula: unknown FormulaTree kind")
	}
}

// Eval evaluates the formula over a set of traces, producing its LTL
// characteristic matrix.
func (t *FormulaTree) Eval(traces []tracefile.Trace) ltlsem.CharMatrix {
	switch t.Kind {
	case TreeAtom:
		return t.evalAtom(traces)
	case TreeUnary:
		cm := t.Child.Eval(traces)
		switch t.UnaryOp {
		case ops.Next:
			return cm.Next()
		case ops.Finally:
			return cm.Finally()
		case ops.Globally:
			return cm.Globally()
		default:
			panic("formula: unknown unary operator")
		}
	case TreeBinary:
		cmL := t.Left.Eval(traces)
		cmR := t.Right.Eval(traces)
		var (
			out ltlsem.CharMatrix
			err error
		)
		switch t.BinaryOp {
		case ops.Or:
			out, err = cmL.Or(cmR)
		case ops.And:
			out, err = cmL.And(cmR)
		case ops.Until:
			out, err = cmL.Until(cmR)
		default:
			panic("formula: unknown binary operator")
		}
		if err != nil {
			panic(err)
		}
		return out
	default:
		panic("formula: unknown FormulaTree kind")
	}
}

func (t *FormulaTree) evalAtom(traces []tracefile.Trace) ltlsem.CharMatrix {
	seqs := make([]bitops.CharSeq, len(traces))
	for i, tr := range traces {
		seq := tr.Alphabet[t.Atom.Index]
		if t.Atom.Negated {
			seq = seq.Not()
		}
		seqs[i] = seq
	}
	return ltlsem.NewCharMatrix(seqs)
}

// String renders the formula in infix form: atoms by name, unary nodes as
// "op (child)", binary nodes as "(left) op (right)".
func (t *FormulaTree) String() string {
	switch t.Kind {
	case TreeAtom:
		if t.Atom.Negated {
			return "!" + t.Atom.Name
		}
		return t.Atom.Name
	case TreeUnary:
		return fmt.Sprintf("%s (%s)", t.UnaryOp, t.Child)
	case TreeBinary:
		return fmt.Sprintf("(%s) %s (%s)", t.Left, t.BinaryOp, t.Right)
	default:
		panic("formula: unknown FormulaTree kind")
	}
}
