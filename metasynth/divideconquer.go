package metasynth

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/ltlsynth/bitops"
	"github.com/katalvlaran/ltlsynth/boolalgo"
	"github.com/katalvlaran/ltlsynth/enumerate"
	"github.com/katalvlaran/ltlsynth/formula"
	"github.com/katalvlaran/ltlsynth/ltlsem"
	"github.com/katalvlaran/ltlsynth/ops"
	"github.com/katalvlaran/ltlsynth/promote"
	"github.com/katalvlaran/ltlsynth/tracefile"
)

// splitThreshold is the trace-count ceiling above which a Boolean search is
// never attempted on the whole problem at once: bitops.SatVec only packs
// up to 128 bits, so a larger instance is split immediately rather than
// ever being handed to a policy whole.
const splitThreshold = 128

// DivideConquer runs the LTL enumeration phase, then — if no exact match
// was found within maxSizeLTL — promotes the LTL cache into a Boolean
// search problem and runs policy, splitting the trace set via divide and
// conquer whenever policy itself reports no solution.
//
// logger receives Debug/Info progress events (cache sizes, split
// decisions, phase outcomes); its zero value is a silent no-op logger,
// equivalent to passing zerolog.Nop() explicitly.
func DivideConquer(
	traces []tracefile.Trace,
	alphabet []string,
	operators ops.Operators,
	target []bool,
	maxSizeLTL int,
	dominNb int,
	policy boolalgo.Policy,
	logger zerolog.Logger,
) Result {
	start := time.Now()

	atomFormulas := atoms(traces, alphabet)
	atomFound, ltlCache := createInitialCache(atomFormulas, target)
	if atomFound != nil {
		logger.Debug().Msg("metasynth: formula found in initial atom cache")
		tree := formula.Rebuild(*atomFound, ltlCache)
		return Result{LTLTime: time.Since(start), Source: FoundAtom, Formula: tree}
	}

	ltlRes, ok := enumerate.Run[ltlsem.Charac, []bool](
		ltlCache, operators, target, maxSizeLTL,
		ltlsem.ApplyUnary, ltlsem.ApplyBinary, logger,
	)
	ltlTime := time.Since(start)

	sizes := make([]int, ltlCache.NBLines())
	for i := range sizes {
		sizes[i] = len(ltlCache.IterSize(i))
	}
	logger.Debug().Ints("ltl_cache_sizes", sizes).Msg("metasynth: ltl cache sizes")

	if ok {
		tree := formula.Rebuild(ltlRes, ltlCache)
		return Result{LTLTime: ltlTime, LTLCacheSizes: sizes, Source: FoundByLTL, Formula: tree}
	}

	logger.Debug().Msg("metasynth: running divide and conquer over boolean search")
	algoStart := time.Now()
	initialCache := promote.FromLTLCache(dominNb, ltlCache, target, promote.Options{})
	logger.Debug().Int("initial_bool_cache_len", initialCache.Len()).Msg("metasynth: initial bool cache")
	f, solved := solveOrSplit(traces, operators, initialCache, target, policy, logger)
	algoTime := time.Since(algoStart)

	res := Result{LTLTime: ltlTime, LTLCacheSizes: sizes, AlgoTime: &algoTime}
	if solved {
		res.Source = FoundByBool
		res.Formula = f
	} else {
		res.Source = NotFound
	}
	return res
}

// atoms returns every size-1 LTL formula: each alphabet predicate and its
// negation, evaluated over the full trace set.
func atoms(traces []tracefile.Trace, alphabet []string) []formula.Formula[ltlsem.Charac] {
	out := make([]formula.Formula[ltlsem.Charac], 0, 2*len(alphabet))
	for i, name := range alphabet {
		seqs := make([]bitops.CharSeq, len(traces))
		for t, tr := range traces {
			seqs[t] = tr.Alphabet[i]
		}
		charac := ltlsem.NewCharac(seqs)
		tree := formula.NewAtom(formula.Predicate{Name: name, Index: i})
		out = append(out, formula.NewBase(charac, 1, tree))

		negSeqs := make([]bitops.CharSeq, len(traces))
		for t, tr := range traces {
			negSeqs[t] = tr.Alphabet[i].Not()
		}
		negCharac := ltlsem.NewCharac(negSeqs)
		negTree := formula.NewAtom(formula.Predicate{Name: name, Index: i, Negated: true})
		out = append(out, formula.NewBase(negCharac, 1, negTree))
	}
	return out
}

// createInitialCache seeds a fresh LTL cache with every atom, and reports
// whether one of them already matches target exactly — in which case the
// whole enumeration phase is skippable.
func createInitialCache(atomFormulas []formula.Formula[ltlsem.Charac], target []bool) (*formula.Formula[ltlsem.Charac], *ltlsem.Cache) {
	cache := ltlsem.NewCache()
	cache.NewLine(0)
	line1 := cache.NewLine(1)
	for _, f := range atomFormulas {
		line1.Push(f)
	}

	for _, f := range cache.IterSize(1) {
		if f.Charac.EqTarget(target) {
			found := f
			return &found, cache
		}
	}
	return nil, cache
}

// solveOrSplit tries the cache's already-known formulas first, then policy
// itself (skipped outright above splitThreshold traces), falling back to a
// recursive split whenever neither finds an exact match.
func solveOrSplit(
	traces []tracefile.Trace,
	operators ops.Operators,
	cache *promote.InitialBoolCache,
	target []bool,
	policy boolalgo.Policy,
	logger zerolog.Logger,
) (*formula.FormulaTree, bool) {
	if f, ok := cache.GetFromCV(target, target); ok {
		logger.Debug().Msg("metasynth: formula found in cache")
		return f, true
	}

	if len(target) > splitThreshold {
		return splitAndSolveNonOverlapping(traces, operators, cache, target, policy, logger)
	}

	if f, ok := policy.Run(cache, operators, target); ok {
		return f, true
	}
	return splitAndSolveNonOverlapping(traces, operators, cache, target, policy, logger)
}

// splitAndSolveNonOverlapping splits on findSplit's chosen operator, solves
// the left half, then recurses on only the traces the left result left
// unsatisfied — never the whole right half — so a left result that
// incidentally also satisfies some right-half traces doesn't force a
// bigger right-hand formula than necessary.
func splitAndSolveNonOverlapping(
	traces []tracefile.Trace,
	operators ops.Operators,
	cache *promote.InitialBoolCache,
	target []bool,
	policy boolalgo.Policy,
	logger zerolog.Logger,
) (*formula.FormulaTree, bool) {
	op, left, _, ok := findSplit(target)
	if !ok {
		return nil, false
	}
	logger.Info().Str("op", op.String()).Msg("metasynth: splitting")

	leftCache := cache.Reduce(left, target)
	logger.Info().Int("left_cache_len", leftCache.Len()).Msg("metasynth: left cache size")
	leftTarget := projectBools(target, left)
	leftTraces := projectTraces(traces, left)
	leftRes, ok := solveOrSplit(leftTraces, operators, leftCache, leftTarget, policy, logger)
	if !ok {
		return nil, false
	}
	logger.Debug().Str("left_formula", leftRes.String()).Msg("metasynth: found left formula")

	solved := leftRes.Eval(traces).AcceptedVec()
	var right []int
	for i, b1 := range solved {
		b2 := target[i]
		switch op {
		case ops.Or:
			// Splitting on Or keeps every negative and every unsatisfied
			// positive: traces for which cv is false.
			if !b2 || !b1 {
				right = append(right, i)
			}
		case ops.And:
			// Splitting on And keeps every positive and every unsatisfied
			// negative: traces for which cv is true.
			if b2 || b1 {
				right = append(right, i)
			}
		}
	}

	nbNotSat := 0
	for _, i := range right {
		switch op {
		case ops.Or:
			if target[i] {
				nbNotSat++
			}
		case ops.And:
			if !target[i] {
				nbNotSat++
			}
		}
	}
	if nbNotSat == 0 {
		logger.Debug().Msg("metasynth: 0 left to satisfy, shortcut return")
		return leftRes, true
	}
	logger.Debug().Int("nb_unsat", nbNotSat).Msg("metasynth: number of unsat after left call")
	logger.Trace().Ints("unsat_indices", right).Msg("metasynth: unsat after call")

	rightCache := cache.Reduce(right, target)
	rightTarget := projectBools(target, right)
	rightTraces := projectTraces(traces, right)
	rightRes, ok := solveOrSplit(rightTraces, operators, rightCache, rightTarget, policy, logger)
	if !ok {
		return nil, false
	}
	logger.Debug().Str("right_formula", rightRes.String()).Msg("metasynth: found right formula")

	res := formula.NewBinaryTree(op, leftRes, rightRes)
	logger.Debug().Str("formula", res.String()).Msg("metasynth: found formula")
	return res, true
}

// findSplit picks the larger of the positive/negative trace sets to split,
// alternating its members between the two halves so each keeps roughly
// half of it, while every trace from the smaller set goes to both halves.
// Reports ok=false when there's nothing left worth splitting (at most one
// positive and at most one negative trace).
func findSplit(target []bool) (op ops.BinaryOp, left, right []int, ok bool) {
	nbPos := 0
	for _, b := range target {
		if b {
			nbPos++
		}
	}
	nbNeg := len(target) - nbPos

	if nbPos <= 1 && nbNeg <= 1 {
		return 0, nil, nil, false
	}

	splitOnPositive := nbPos > nbNeg
	op = ops.And
	if splitOnPositive {
		op = ops.Or
	}

	j := 0
	for i, t := range target {
		if t == splitOnPositive {
			if j%2 == 0 {
				left = append(left, i)
			} else {
				right = append(right, i)
			}
			j++
		} else {
			left = append(left, i)
			right = append(right, i)
		}
	}
	return op, left, right, true
}

func projectBools(v []bool, indices []int) []bool {
	out := make([]bool, len(indices))
	for i, idx := range indices {
		out[i] = v[idx]
	}
	return out
}

func projectTraces(traces []tracefile.Trace, indices []int) []tracefile.Trace {
	out := make([]tracefile.Trace, len(indices))
	for i, idx := range indices {
		out[i] = traces[idx]
	}
	return out
}
