package boolsem_test

import (
	"testing"

	"github.com/katalvlaran/ltlsynth/bitops"
	"github.com/katalvlaran/ltlsynth/boolsem"
	"github.com/katalvlaran/ltlsynth/formula"
	"github.com/stretchr/testify/require"
)

func mustCV(t *testing.T, bits []bool) bitops.CharVec {
	t.Helper()
	cv, err := bitops.NewCharVec(bits)
	require.NoError(t, err)
	return cv
}

func atomCharac(t *testing.T, bits []bool, target bitops.CharVec) boolsem.Charac {
	t.Helper()
	return boolsem.NewCharacFromCV(mustCV(t, bits), target)
}

func atomFormula(c boolsem.Charac, size int) formula.Formula[boolsem.Charac] {
	return formula.NewBase(c, size, nil)
}

// newSeededEnumCache opens the reserved-empty size-0 line (no formula has
// zero nodes) and a size-1 line, matching every other cache's convention
// that atoms live at size 1.
func newSeededEnumCache(k int) (*boolsem.EnumCache, func(formula.Formula[boolsem.Charac]) bool) {
	cache := boolsem.NewEnumCache(k)
	cache.NewLine(0)
	line1 := cache.NewLine(1)
	return cache, line1.Push
}

func TestEnumCache_DedupRejectsSameHash(t *testing.T) {
	target := mustCV(t, []bool{true, true, false, false})
	cache, push := newSeededEnumCache(10)

	c := atomCharac(t, []bool{true, true, false, false}, target)

	require.True(t, push(atomFormula(c, 1)))
	require.False(t, push(atomFormula(c, 1)))
	require.Equal(t, 1, cache.Len())
}

func TestEnumCache_DominationRejectsWeaker(t *testing.T) {
	target := mustCV(t, []bool{true, true, true, false})
	_, push := newSeededEnumCache(10)

	strong := atomCharac(t, []bool{true, true, true, false}, target) // matches all 4
	weak := atomCharac(t, []bool{true, true, false, false}, target)  // matches 3

	require.True(t, push(atomFormula(strong, 1)))
	require.False(t, push(atomFormula(weak, 1)))
}

func TestEnumCache_TopKEviction(t *testing.T) {
	// target is all-true, so a CharVec's "true" positions are exactly its
	// SatVec's set bits: this makes the domination relationships below easy
	// to read directly off the literal bit patterns.
	target := mustCV(t, []bool{true, true, true, true, true, true})
	_, push := newSeededEnumCache(1)

	denser := atomCharac(t, []bool{true, true, true, true, false, false}, target)   // SV={0,1,2,3}
	sparser := atomCharac(t, []bool{false, false, false, false, true, true}, target) // SV={4,5}

	require.True(t, push(atomFormula(denser, 1)))
	require.True(t, push(atomFormula(sparser, 1)))

	// Working set capacity is 1, so sparser (lower popcount) was evicted,
	// leaving only denser in the domination check. A candidate that sparser
	// alone would dominate, but denser does not, must now be admitted.
	candidate := atomCharac(t, []bool{false, false, false, false, true, false}, target) // SV={4}
	require.True(t, push(atomFormula(candidate, 1)))
}

func TestEnumCache_GetAndIterSize(t *testing.T) {
	target := mustCV(t, []bool{true, false})
	cache, push := newSeededEnumCache(10)

	c := atomCharac(t, []bool{true, false}, target)
	f := atomFormula(c, 1)
	require.True(t, push(f))

	got, ok := cache.Get(f.Hash())
	require.True(t, ok)
	require.Equal(t, f.Charac, got.Charac)

	require.Len(t, cache.IterSize(1), 1)
	require.Nil(t, cache.IterSize(5))
	require.Equal(t, 2, cache.NBLines())
}

func TestEnumCache_NewLineAndIterBucketPairing(t *testing.T) {
	target := mustCV(t, []bool{true, true})
	cache, push := newSeededEnumCache(10)

	a := atomCharac(t, []bool{true, false}, target)
	b := atomCharac(t, []bool{false, true}, target)
	require.True(t, push(atomFormula(a, 1)))
	require.True(t, push(atomFormula(b, 1)))

	single2, pairs2, line2 := cache.NewLineAndIter(2)
	require.Len(t, single2, 2)
	require.Nil(t, pairs2)
	require.NotNil(t, line2)

	single3, pairs3, _ := cache.NewLineAndIter(3)
	require.Nil(t, single3)
	require.Len(t, pairs3, 4)
}

func TestEnumCache_PushWrongSizePanics(t *testing.T) {
	target := mustCV(t, []bool{true})
	_, push := newSeededEnumCache(10)

	c := atomCharac(t, []bool{true}, target)
	require.Panics(t, func() {
		push(atomFormula(c, 2))
	})
}
