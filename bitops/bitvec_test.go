package bitops_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ltlsynth/bitops"
	"github.com/stretchr/testify/require"
)

func TestBitVec_CountOnes(t *testing.T) {
	v := bitops.NewBitVec([]bool{true, false, true, true, false})
	require.Equal(t, 3, v.CountOnes())
	require.Equal(t, 5, v.Len())
}

func TestBitVec_DominatesRandom(t *testing.T) {
	r := rand.New(rand.NewSource(31))
	for i := 0; i < 100; i++ {
		n := 1 + r.Intn(300)
		bits := make([]bool, n)
		for j := range bits {
			bits[j] = r.Intn(2) == 1
		}
		v := bitops.NewBitVec(bits)
		require.True(t, v.Dominates(v))
	}
}

func TestBitVec_DominatesSubset(t *testing.T) {
	full := bitops.NewBitVec([]bool{true, true, true, true})
	subset := bitops.NewBitVec([]bool{true, false, true, false})
	require.True(t, full.Dominates(subset))
	require.False(t, subset.Dominates(full))
}

func TestBitVec_DominatesPanicsOnLengthMismatch(t *testing.T) {
	a := bitops.NewBitVec(make([]bool, 10))
	b := bitops.NewBitVec(make([]bool, 200))
	require.Panics(t, func() {
		a.Dominates(b)
	})
}

func TestBitVec_Equal(t *testing.T) {
	a := bitops.NewBitVec([]bool{true, false, true})
	b := bitops.NewBitVec([]bool{true, false, true})
	c := bitops.NewBitVec([]bool{true, true, true})
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
