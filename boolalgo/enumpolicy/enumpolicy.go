// Package enumpolicy implements exhaustive Boolean enumeration: bottom-up
// search over every Or/And combination of the promoted LTL formulas, with
// dedup and bounded domination pruning, stopping at the first exact match.
package enumpolicy

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/ltlsynth/bitops"
	"github.com/katalvlaran/ltlsynth/boolsem"
	"github.com/katalvlaran/ltlsynth/enumerate"
	"github.com/katalvlaran/ltlsynth/formula"
	"github.com/katalvlaran/ltlsynth/ops"
	"github.com/katalvlaran/ltlsynth/promote"
)

// Policy runs exhaustive Boolean enumeration up to MaxSizeBool, keeping
// the DominNb densest formulas of each size for domination pruning.
// Logger receives the search's progress events; its zero value is a
// silent no-op logger, equivalent to passing zerolog.Nop() explicitly.
type Policy struct {
	MaxSizeBool int
	DominNb     int
	Logger      zerolog.Logger
}

// Run implements boolalgo.Policy.
func (p Policy) Run(cache *promote.InitialBoolCache, operators ops.Operators, target []bool) (*formula.FormulaTree, bool) {
	boolTarget, err := bitops.NewCharVec(target)
	if err != nil {
		return nil, false
	}

	boolCache := convert(cache, boolTarget, p.DominNb)
	boolOperators := operators.FilterBoolean()

	f, ok := enumerate.Run[boolsem.Charac, bitops.CharVec](
		boolCache, boolOperators, boolTarget, p.MaxSizeBool,
		boolsem.ApplyUnary, boolsem.ApplyBinary, p.Logger,
	)
	if !ok {
		return nil, false
	}

	return formula.Rebuild(f, boolCache), true
}

func convert(cache *promote.InitialBoolCache, target bitops.CharVec, k int) *boolsem.EnumCache {
	bsCache := boolsem.NewEnumCache(k)

	for size := 0; size < cache.NBLines(); size++ {
		line := bsCache.NewLine(size)
		for _, info := range cache.IterSize(size) {
			cv, err := bitops.NewCharVec(info.CV)
			if err != nil {
				continue
			}
			charac := boolsem.NewCharacFromCV(cv, target)
			f := formula.NewBase(charac, info.Size, info.Tree)
			line.Push(f)
		}
	}

	return bsCache
}
