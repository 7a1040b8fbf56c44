// Package setcoverpolicy implements greedy set-cover Boolean synthesis:
// repeatedly pick the formula (or growing Or/And combination) covering
// the most still-uncovered positive or negative traces, producing an
// Or-of-And or And-of-Or witness.
package setcoverpolicy

import (
	"github.com/katalvlaran/ltlsynth/bitops"
	"github.com/katalvlaran/ltlsynth/boolsem"
	"github.com/katalvlaran/ltlsynth/formula"
	"github.com/katalvlaran/ltlsynth/ops"
	"github.com/katalvlaran/ltlsynth/promote"
)

// Policy runs greedy set-cover search, generating at most MaxNbFormulas
// candidates per covering pass before switching operator.
//
// Placeholder mirrors the original CLI parameter of the same name, kept
// for flag-surface compatibility; it is never read.
type Policy struct {
	MaxNbFormulas int
	Placeholder   int
}

// Run implements boolalgo.Policy.
func (p Policy) Run(cache *promote.InitialBoolCache, operators ops.Operators, target []bool) (*formula.FormulaTree, bool) {
	boolTarget, err := bitops.NewCharVec(target)
	if err != nil {
		return nil, false
	}

	scCache := convert(cache, boolTarget)
	f, ok := setCoverBool(scCache, target, p.MaxNbFormulas)
	if !ok {
		return nil, false
	}

	return formula.Rebuild(f, scCache), true
}

func convert(cache *promote.InitialBoolCache, target bitops.CharVec) *boolsem.SetCoverCache {
	scCache := boolsem.NewSetCoverCache()
	for _, info := range cache.IterAll() {
		cv, err := bitops.NewCharVec(info.CV)
		if err != nil {
			continue
		}
		charac := boolsem.NewCharacFromCV(cv, target)
		scCache.Push(formula.NewBase(charac, info.Size, info.Tree))
	}
	return scCache
}

func setCoverBool(cache *boolsem.SetCoverCache, target []bool, maxNbFormulas int) (formula.Formula[boolsem.Charac], bool) {
	positiveCount := 0
	for _, b := range target {
		if b {
			positiveCount++
		}
	}
	negativeCount := len(target) - positiveCount

	formulas := cache.All()

	cp := positiveSetCover(cache, formulas, positiveCount, maxNbFormulas)
	cpn := negativeSetCover(cache, cp, negativeCount, maxNbFormulas)

	cn := negativeSetCover(cache, formulas, negativeCount, maxNbFormulas)
	cnp := positiveSetCover(cache, cn, positiveCount, maxNbFormulas)

	candidates := append(cpn, cnp...)
	if len(candidates) == 0 {
		var zero formula.Formula[boolsem.Charac]
		return zero, false
	}

	best := candidates[0]
	for _, f := range candidates[1:] {
		if f.Size < best.Size {
			best = f
		}
	}
	return best, true
}

func positiveSetCover(cache *boolsem.SetCoverCache, formulas []formula.Formula[boolsem.Charac], positiveCount, maxNbFormulas int) []formula.Formula[boolsem.Charac] {
	return auxSetCover(cache, formulas, func(f formula.Formula[boolsem.Charac]) int {
		return f.Charac.SatPositiveCount()
	}, positiveCount, ops.Or, maxNbFormulas)
}

func negativeSetCover(cache *boolsem.SetCoverCache, formulas []formula.Formula[boolsem.Charac], negativeCount, maxNbFormulas int) []formula.Formula[boolsem.Charac] {
	return auxSetCover(cache, formulas, func(f formula.Formula[boolsem.Charac]) int {
		return f.Charac.SatNegativeCount()
	}, negativeCount, ops.And, maxNbFormulas)
}

// auxSetCover greedily grows, for up to maxNbFormulas rounds, a
// combination of remaining formulas via op until it covers targetSat
// traces, then banks it and starts a fresh combination from whatever
// formulas remain. A round that cannot make further progress (no
// remaining formula left, or no combination improves coverage) aborts
// the whole search rather than producing a partial formula.
func auxSetCover(
	cache *boolsem.SetCoverCache,
	formulas []formula.Formula[boolsem.Charac],
	satFn func(formula.Formula[boolsem.Charac]) int,
	targetSat int,
	op ops.BinaryOp,
	maxNbFormulas int,
) []formula.Formula[boolsem.Charac] {
	remaining := make(map[uint64]formula.Formula[boolsem.Charac], len(formulas))
	for _, f := range formulas {
		remaining[f.Hash()] = f
	}

	var res []formula.Formula[boolsem.Charac]

run:
	for len(remaining) > 0 && len(res) < maxNbFormulas {
		best, bestHash, ok := takeMax(remaining, satFn)
		if !ok {
			break run
		}
		delete(remaining, bestHash)

		for satFn(best) < targetSat {
			if len(remaining) == 0 {
				break run
			}

			newBest, fHash, _ := bestCombination(remaining, best, satFn, op)
			delete(remaining, fHash)

			if satFn(newBest) == satFn(best) {
				break run
			}

			cache.Push(best)
			best = newBest
		}

		cache.Push(best)
		res = append(res, best)
	}

	return res
}

// takeMax returns the formula in remaining with the highest satFn value
// and its hash, breaking ties on the smaller hash for determinism. It does
// not remove it; the caller deletes it from remaining.
func takeMax(remaining map[uint64]formula.Formula[boolsem.Charac], satFn func(formula.Formula[boolsem.Charac]) int) (formula.Formula[boolsem.Charac], uint64, bool) {
	var best formula.Formula[boolsem.Charac]
	var bestHash uint64
	found := false
	for h, f := range remaining {
		if !found || satFn(f) > satFn(best) || (satFn(f) == satFn(best) && h < bestHash) {
			best, bestHash, found = f, h, true
		}
	}
	return best, bestHash, found
}

// bestCombination finds the formula in remaining that, combined with
// best via op, yields the highest satFn value.
func bestCombination(
	remaining map[uint64]formula.Formula[boolsem.Charac],
	best formula.Formula[boolsem.Charac],
	satFn func(formula.Formula[boolsem.Charac]) int,
	op ops.BinaryOp,
) (formula.Formula[boolsem.Charac], uint64, bool) {
	var bestNew formula.Formula[boolsem.Charac]
	var bestFHash uint64
	found := false
	for h, f := range remaining {
		candidate := formula.ApplyBinary(op, best, f, boolsem.ApplyBinary)
		if !found || satFn(candidate) > satFn(bestNew) || (satFn(candidate) == satFn(bestNew) && h < bestFHash) {
			bestNew, bestFHash, found = candidate, h, true
		}
	}
	return bestNew, bestFHash, found
}
