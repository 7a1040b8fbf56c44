package formula_test

import (
	"testing"

	"github.com/katalvlaran/ltlsynth/bitops"
	"github.com/katalvlaran/ltlsynth/formula"
	"github.com/katalvlaran/ltlsynth/ops"
	"github.com/katalvlaran/ltlsynth/tracefile"
	"github.com/stretchr/testify/require"
)

func mustSeq(t *testing.T, bits []bool) bitops.CharSeq {
	t.Helper()
	s, err := bitops.NewCharSeq(bits)
	require.NoError(t, err)
	return s
}

func TestFormulaTree_EvalAtom(t *testing.T) {
	traces := []tracefile.Trace{
		{Alphabet: []bitops.CharSeq{mustSeq(t, []bool{true, false})}},
		{Alphabet: []bitops.CharSeq{mustSeq(t, []bool{false, false})}},
	}
	atom := formula.NewAtom(formula.Predicate{Name: "p", Index: 0})
	cm := atom.Eval(traces)
	require.Equal(t, []bool{true, false}, cm.AcceptedVec())
}

func TestFormulaTree_EvalNegatedAtom(t *testing.T) {
	traces := []tracefile.Trace{
		{Alphabet: []bitops.CharSeq{mustSeq(t, []bool{true, false})}},
	}
	atom := formula.NewAtom(formula.Predicate{Name: "p", Index: 0, Negated: true})
	cm := atom.Eval(traces)
	require.Equal(t, []bool{false}, cm.AcceptedVec())
}

func TestFormulaTree_EvalUnaryGlobally(t *testing.T) {
	traces := []tracefile.Trace{
		{Alphabet: []bitops.CharSeq{mustSeq(t, []bool{true, true, true})}},
		{Alphabet: []bitops.CharSeq{mustSeq(t, []bool{true, false, true})}},
	}
	atom := formula.NewAtom(formula.Predicate{Name: "p", Index: 0})
	g := formula.NewUnaryTree(ops.Globally, atom)
	cm := g.Eval(traces)
	require.Equal(t, []bool{true, false}, cm.AcceptedVec())
}

func TestFormulaTree_EvalBinaryOr(t *testing.T) {
	traces := []tracefile.Trace{
		{Alphabet: []bitops.CharSeq{
			mustSeq(t, []bool{false}),
			mustSeq(t, []bool{true}),
		}},
	}
	p := formula.NewAtom(formula.Predicate{Name: "p", Index: 0})
	q := formula.NewAtom(formula.Predicate{Name: "q", Index: 1})
	or := formula.NewBinaryTree(ops.Or, p, q)
	cm := or.Eval(traces)
	require.Equal(t, []bool{true}, cm.AcceptedVec())
}

func TestFormulaTree_String(t *testing.T) {
	p := formula.NewAtom(formula.Predicate{Name: "p", Index: 0})
	q := formula.NewAtom(formula.Predicate{Name: "q", Index: 1})
	or := formula.NewBinaryTree(ops.Or, p, q)
	g := formula.NewUnaryTree(ops.Globally, or)
	require.Equal(t, "G ((p) | (q))", g.String())
}

func TestFormulaTree_Size(t *testing.T) {
	p := formula.NewAtom(formula.Predicate{Name: "p", Index: 0})
	q := formula.NewAtom(formula.Predicate{Name: "q", Index: 1})
	or := formula.NewBinaryTree(ops.Or, p, q)
	g := formula.NewUnaryTree(ops.Globally, or)
	require.Equal(t, 4, g.Size())
}
