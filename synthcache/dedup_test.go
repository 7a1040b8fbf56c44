package synthcache_test

import (
	"testing"

	"github.com/katalvlaran/ltlsynth/formula"
	"github.com/katalvlaran/ltlsynth/synthcache"
	"github.com/stretchr/testify/require"
)

type intHash int

func (h intHash) Hash() uint64 { return uint64(h) }

func atomFormula(h int) formula.Formula[intHash] {
	atom := formula.NewAtom(formula.Predicate{Name: "x", Index: 0})
	return formula.NewBase(intHash(h), 1, atom)
}

func TestDedupCache_SeedAndLookup(t *testing.T) {
	c := synthcache.NewDedupCache[intHash]()
	c.NewLine(0)
	line1 := c.NewLine(1)

	f1 := atomFormula(1)
	f2 := atomFormula(2)
	require.True(t, line1.Push(f1))
	require.True(t, line1.Push(f2))

	require.Equal(t, 2, c.Len())
	require.Equal(t, 2, c.NBLines())

	got, ok := c.Get(f1.Hash())
	require.True(t, ok)
	require.Equal(t, f1, got)
}

func TestDedupCache_RejectsDuplicateHash(t *testing.T) {
	c := synthcache.NewDedupCache[intHash]()
	c.NewLine(0)
	line1 := c.NewLine(1)

	f1 := atomFormula(5)
	dup := atomFormula(5)
	require.True(t, line1.Push(f1))
	require.False(t, line1.Push(dup))
	require.Equal(t, 1, c.Len())
}

func TestDedupCache_NewLineAndIterBucketPairing(t *testing.T) {
	c := synthcache.NewDedupCache[intHash]()
	c.NewLine(0)
	line1 := c.NewLine(1)
	a, b := atomFormula(1), atomFormula(2)
	line1.Push(a)
	line1.Push(b)

	single, pairs, line2 := c.NewLineAndIter(2)
	require.ElementsMatch(t, []formula.Formula[intHash]{a, b}, single)
	require.Empty(t, pairs) // size 2: bucket pairs sum to size-1=1, only (0,1) exists but bucket 0 is empty

	require.NotNil(t, line2)
}

func TestDedupCache_NewLineAndIterPairsAtSizeThree(t *testing.T) {
	c := synthcache.NewDedupCache[intHash]()
	c.NewLine(0)
	line1 := c.NewLine(1)
	a, b := atomFormula(1), atomFormula(2)
	line1.Push(a)
	line1.Push(b)

	_, _, line2 := c.NewLineAndIter(2)
	g := atomFormula(100)
	g.Size = 2
	line2.Push(g)

	single, pairs, _ := c.NewLineAndIter(3)
	require.ElementsMatch(t, []formula.Formula[intHash]{g}, single)
	// pairs sum to size-1=2: bucket (0,2) empty x {g} -> none since bucket0 empty;
	// bucket (1,1): line1 x line1 (self-cartesian) -> {a,b}x{a,b} = 4 pairs
	require.Len(t, pairs, 4)
}

func TestDedupCache_IterSizeOutOfRange(t *testing.T) {
	c := synthcache.NewDedupCache[intHash]()
	require.Nil(t, c.IterSize(5))
}

func TestDedupCache_PushWrongSizePanics(t *testing.T) {
	c := synthcache.NewDedupCache[intHash]()
	line1 := c.NewLine(1)
	wrongSize := atomFormula(1)
	wrongSize.Size = 2
	require.Panics(t, func() {
		line1.Push(wrongSize)
	})
}
