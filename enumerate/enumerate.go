package enumerate

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/ltlsynth/formula"
	"github.com/katalvlaran/ltlsynth/ops"
	"github.com/katalvlaran/ltlsynth/synthcache"
)

// Charac is the capability every characteristic type (ltlsem.Charac,
// boolsem.Charac) must have to take part in enumeration: a stable hash
// (for cache dedup) and an equality test against the search target.
type Charac[T any] interface {
	formula.Hasher
	EqTarget(target T) bool
}

// Run performs bottom-up semantic enumeration over cache, starting from
// the first size the cache does not yet hold (callers open and fill the
// lines holding their starting formulas before calling Run) up to maxSize. It applies every unary operator to
// each size-1 formula and every binary operator to each bucket-paired
// operand combination, both orders for non-commutative operators,
// returning the first formula whose characteristic matches target.
//
// logger receives the same progress events the search reports at Debug
// level (start/max size, operators, target, per-size cache growth, hit
// counts) and at Info level on success or exhaustion; pass
// zerolog.Nop() to silence it.
func Run[C Charac[T], T any](
	cache synthcache.Cache[C],
	operators ops.Operators,
	target T,
	maxSize int,
	applyUnary func(ops.UnaryOp, C) C,
	applyBinary func(ops.BinaryOp, C, C) C,
	logger zerolog.Logger,
) (formula.Formula[C], bool) {
	startSize := cache.NBLines()

	logger.Debug().Int("start_size", startSize).Int("max_size", maxSize).Msg("enumerate: starting search")
	logger.Debug().Interface("operators", operators).Msg("enumerate: operators")
	logger.Debug().Interface("target", target).Msg("enumerate: target")

	for size := startSize; size <= maxSize; size++ {
		single, pairs, line := cache.NewLineAndIter(size)
		logger.Debug().Int("size", size).Int("cache_len", len(single)+len(pairs)).Msg("enumerate: growing cache")

		if len(operators.Unary) > 0 {
			logger.Debug().Msg("enumerate: unary pass")
			hits := 0
			for _, f := range single {
				for _, op := range operators.Unary {
					g := formula.ApplyUnary(op, f, applyUnary)
					if g.Charac.EqTarget(target) {
						logger.Info().Msg("enumerate: found formula")
						return g, true
					}
					line.Push(g)
					hits++
				}
			}
			logger.Debug().Int("hits", hits).Msg("enumerate: unary pass done")
		}

		if len(operators.Binary) > 0 {
			logger.Debug().Msg("enumerate: binary pass")
			hits := 0
			for _, p := range pairs {
				for _, op := range operators.Binary {
					g := formula.ApplyBinary(op, p.Left, p.Right, applyBinary)
					if g.Charac.EqTarget(target) {
						logger.Info().Msg("enumerate: found formula")
						return g, true
					}
					line.Push(g)
					hits++

					if op.Commutes() {
						continue
					}

					g2 := formula.ApplyBinary(op, p.Right, p.Left, applyBinary)
					if g2.Charac.EqTarget(target) {
						logger.Info().Msg("enumerate: found formula")
						return g2, true
					}
					line.Push(g2)
					hits++
				}
			}
			logger.Debug().Int("hits", hits).Msg("enumerate: binary pass done")
		}
	}

	logger.Info().Msg("enumerate: not found, exiting")
	var zero formula.Formula[C]
	return zero, false
}
