package formula_test

import (
	"testing"

	"github.com/katalvlaran/ltlsynth/formula"
	"github.com/katalvlaran/ltlsynth/ops"
	"github.com/stretchr/testify/require"
)

// intHash is a minimal Hasher implementation used to exercise the generic
// formula machinery without pulling in a real characteristic type.
type intHash int

func (h intHash) Hash() uint64 { return uint64(h) }

func applyUnary(op ops.UnaryOp, c intHash) intHash {
	return c + 100 + intHash(op)
}

func applyBinary(op ops.BinaryOp, a, b intHash) intHash {
	return a + b + 1000 + intHash(op)
}

func TestFormula_NewBaseAndHash(t *testing.T) {
	atom := formula.NewAtom(formula.Predicate{Name: "p", Index: 0})
	f := formula.NewBase(intHash(7), 1, atom)
	require.Equal(t, uint64(7), f.Hash())
	require.Equal(t, 1, f.Size)
}

func TestFormula_ApplyUnaryIncrementsSize(t *testing.T) {
	atom := formula.NewAtom(formula.Predicate{Name: "p", Index: 0})
	base := formula.NewBase(intHash(7), 1, atom)
	next := formula.ApplyUnary(ops.Next, base, applyUnary)
	require.Equal(t, 2, next.Size)
	require.Equal(t, formula.NodeUnary, next.Node.Kind)
	require.Equal(t, base.Hash(), next.Node.ChildHash)
}

func TestFormula_ApplyBinarySumsSizes(t *testing.T) {
	atomP := formula.NewAtom(formula.Predicate{Name: "p", Index: 0})
	atomQ := formula.NewAtom(formula.Predicate{Name: "q", Index: 1})
	p := formula.NewBase(intHash(1), 1, atomP)
	q := formula.NewBase(intHash(2), 1, atomQ)
	or := formula.ApplyBinary(ops.Or, p, q, applyBinary)
	require.Equal(t, 3, or.Size)
	require.Equal(t, p.Hash(), or.Node.LeftHash)
	require.Equal(t, q.Hash(), or.Node.RightHash)
}

// fakeCache is a trivial in-memory formula.Cache[intHash] for Rebuild tests.
type fakeCache map[uint64]formula.Formula[intHash]

func (c fakeCache) Get(hash uint64) (formula.Formula[intHash], bool) {
	f, ok := c[hash]
	return f, ok
}

func TestFormula_RebuildUnary(t *testing.T) {
	atom := formula.NewAtom(formula.Predicate{Name: "p", Index: 0})
	base := formula.NewBase(intHash(7), 1, atom)
	next := formula.ApplyUnary(ops.Next, base, applyUnary)

	cache := fakeCache{base.Hash(): base}
	tree := formula.Rebuild(next, cache)

	require.Equal(t, formula.TreeUnary, tree.Kind)
	require.Equal(t, ops.Next, tree.UnaryOp)
	require.Equal(t, atom, tree.Child)
	require.Equal(t, 2, tree.Size())
}

func TestFormula_RebuildBinarySharesSubtree(t *testing.T) {
	atomP := formula.NewAtom(formula.Predicate{Name: "p", Index: 0})
	p := formula.NewBase(intHash(1), 1, atomP)
	orPP := formula.ApplyBinary(ops.Or, p, p, applyBinary)

	cache := fakeCache{p.Hash(): p}
	tree := formula.Rebuild(orPP, cache)

	require.Equal(t, formula.TreeBinary, tree.Kind)
	require.Same(t, tree.Left, tree.Right)
}

func TestFormula_RebuildPanicsOnBrokenCache(t *testing.T) {
	atom := formula.NewAtom(formula.Predicate{Name: "p", Index: 0})
	base := formula.NewBase(intHash(7), 1, atom)
	next := formula.ApplyUnary(ops.Next, base, applyUnary)

	require.Panics(t, func() {
		formula.Rebuild(next, fakeCache{})
	})
}
