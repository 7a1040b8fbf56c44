package ltlsem

import "github.com/katalvlaran/ltlsynth/synthcache"

// Cache is the LTL search's formula store: plain dedup by hash, no
// domination pruning (an LTL formula's characteristic is its full
// per-trace behaviour, not a single satisfiability bit, so "denser wins"
// doesn't apply the way it does for Boolean formulas).
type Cache = synthcache.DedupCache[Charac]

// NewCache returns an empty LTL cache.
func NewCache() *Cache {
	return synthcache.NewDedupCache[Charac]()
}
