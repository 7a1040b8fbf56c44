package ltlsem_test

import (
	"testing"

	"github.com/katalvlaran/ltlsynth/bitops"
	"github.com/katalvlaran/ltlsynth/ltlsem"
	"github.com/katalvlaran/ltlsynth/ops"
	"github.com/stretchr/testify/require"
)

func mustSeq(t *testing.T, bits []bool) bitops.CharSeq {
	t.Helper()
	s, err := bitops.NewCharSeq(bits)
	require.NoError(t, err)
	return s
}

func TestCharac_ApplyUnaryNext(t *testing.T) {
	base := ltlsem.NewCharac([]bitops.CharSeq{
		mustSeq(t, []bool{true, false, true}),
		mustSeq(t, []bool{false, true, false}),
	})
	next := ltlsem.ApplyUnary(ops.Next, base)
	require.Equal(t, []bool{false, true}, next.CM.AcceptedVec())
}

func TestCharac_ApplyBinaryOr(t *testing.T) {
	a := ltlsem.NewCharac([]bitops.CharSeq{mustSeq(t, []bool{true, false})})
	b := ltlsem.NewCharac([]bitops.CharSeq{mustSeq(t, []bool{false, false})})
	or := ltlsem.ApplyBinary(ops.Or, a, b)
	require.Equal(t, []bool{true}, or.CM.AcceptedVec())
}

func TestCharac_HashChangesWithContent(t *testing.T) {
	a := ltlsem.NewCharac([]bitops.CharSeq{mustSeq(t, []bool{true, false})})
	b := ltlsem.NewCharac([]bitops.CharSeq{mustSeq(t, []bool{false, true})})
	require.NotEqual(t, a.Hash(), b.Hash())
}

func TestCharac_EqTarget(t *testing.T) {
	c := ltlsem.NewCharac([]bitops.CharSeq{
		mustSeq(t, []bool{true, false}),
		mustSeq(t, []bool{false, false}),
	})
	require.True(t, c.EqTarget([]bool{true, false}))
	require.False(t, c.EqTarget([]bool{false, false}))
}
