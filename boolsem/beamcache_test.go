package boolsem_test

import (
	"testing"

	"github.com/katalvlaran/ltlsynth/boolsem"
	"github.com/stretchr/testify/require"
)

func TestBeamCache_DedupRejectsSameHash(t *testing.T) {
	target := mustCV(t, []bool{true, true, false, false})
	cache := boolsem.NewBeamCache(10)
	cache.NewLine(0)
	line := cache.NewLine(1)

	c := atomCharac(t, []bool{true, true, false, false}, target)
	require.True(t, line.Push(atomFormula(c, 1)))
	require.False(t, line.Push(atomFormula(c, 1)))
	require.Equal(t, 1, cache.Len())
}

func TestBeamCache_DominationRejectsWeaker(t *testing.T) {
	target := mustCV(t, []bool{true, true, true, false})
	cache := boolsem.NewBeamCache(10)
	cache.NewLine(0)
	line := cache.NewLine(1)

	strong := atomCharac(t, []bool{true, true, true, false}, target)
	weak := atomCharac(t, []bool{true, true, false, false}, target)

	require.True(t, line.Push(atomFormula(strong, 1)))
	require.False(t, line.Push(atomFormula(weak, 1)))
}

func TestBeamCache_EvictionRemovesFromHashmap(t *testing.T) {
	target := mustCV(t, []bool{true, true, true, true, true, true})
	cache := boolsem.NewBeamCache(1)
	cache.NewLine(0)
	line := cache.NewLine(1)

	denser := atomCharac(t, []bool{true, true, true, true, false, false}, target)
	sparser := atomCharac(t, []bool{false, false, false, false, true, true}, target)

	denserF := atomFormula(denser, 1)
	sparserF := atomFormula(sparser, 1)

	require.True(t, line.Push(denserF))
	require.True(t, line.Push(sparserF))

	// Width is 1, so sparser should have been evicted both from the line's
	// heap and from the cache's lookup table.
	require.Equal(t, 1, cache.Len())
	_, ok := cache.Get(sparserF.Hash())
	require.False(t, ok)

	got, ok := cache.Get(denserF.Hash())
	require.True(t, ok)
	require.Equal(t, denserF.Charac, got.Charac)
}

func TestBeamCache_NewLineAndIterBucketPairing(t *testing.T) {
	target := mustCV(t, []bool{true, true})
	cache := boolsem.NewBeamCache(10)
	cache.NewLine(0)

	l1 := cache.NewLine(1)
	a := atomCharac(t, []bool{true, false}, target)
	b := atomCharac(t, []bool{false, true}, target)
	require.True(t, l1.Push(atomFormula(a, 1)))
	require.True(t, l1.Push(atomFormula(b, 1)))

	single2, pairs2, line2 := cache.NewLineAndIter(2)
	require.Len(t, single2, 2)
	require.Nil(t, pairs2)
	require.NotNil(t, line2)

	single3, pairs3, _ := cache.NewLineAndIter(3)
	require.Nil(t, single3)
	require.Len(t, pairs3, 4)
}

func TestBeamCache_IterSizeOutOfRange(t *testing.T) {
	cache := boolsem.NewBeamCache(10)
	cache.NewLine(0)
	cache.NewLine(1)
	require.Nil(t, cache.IterSize(5))
	require.Equal(t, 2, cache.NBLines())
}

func TestBeamCache_PushWrongSizePanics(t *testing.T) {
	target := mustCV(t, []bool{true})
	cache := boolsem.NewBeamCache(10)
	cache.NewLine(0)
	line := cache.NewLine(1)

	c := atomCharac(t, []bool{true}, target)
	require.Panics(t, func() {
		line.Push(atomFormula(c, 2))
	})
}
