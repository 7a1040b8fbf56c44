package boolsem

import "github.com/katalvlaran/ltlsynth/formula"

// SetCoverCache is the set-cover search's formula store: a single flat
// dedup map keyed by characteristic hash, with no size buckets and no
// domination pruning. A hash collision keeps whichever formula is smaller,
// since set cover only ever needs one witness per distinct truth table.
type SetCoverCache struct {
	entries map[uint64]formula.Formula[Charac]
}

// NewSetCoverCache returns an empty SetCoverCache.
func NewSetCoverCache() *SetCoverCache {
	return &SetCoverCache{entries: make(map[uint64]formula.Formula[Charac])}
}

// Len returns the number of distinct characteristic hashes stored.
func (c *SetCoverCache) Len() int { return len(c.entries) }

// Get resolves a characteristic hash back to the smallest formula that
// produced it.
func (c *SetCoverCache) Get(hash uint64) (formula.Formula[Charac], bool) {
	f, ok := c.entries[hash]
	return f, ok
}

// Push inserts f if its hash is unseen, or replaces the stored formula if
// f is smaller than the one already kept for that hash. Reports whether a
// replacement happened (true), as distinct from a fresh insert (false) or
// a no-op (false) — callers in this search never inspect the result.
func (c *SetCoverCache) Push(f formula.Formula[Charac]) bool {
	hash := f.Hash()
	existing, ok := c.entries[hash]
	if !ok {
		c.entries[hash] = f
		return false
	}
	if f.Size < existing.Size {
		c.entries[hash] = f
		return true
	}
	return false
}

// All returns every formula currently stored, in unspecified order.
func (c *SetCoverCache) All() []formula.Formula[Charac] {
	out := make([]formula.Formula[Charac], 0, len(c.entries))
	for _, f := range c.entries {
		out = append(out, f)
	}
	return out
}
