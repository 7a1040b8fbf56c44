package boolsem

import (
	"container/heap"

	"github.com/katalvlaran/ltlsynth/bitops"
	"github.com/katalvlaran/ltlsynth/formula"
	"github.com/katalvlaran/ltlsynth/synthcache"
)

// EnumCache is the exhaustive Boolean search's admission policy: reject a
// candidate dominated by any formula already kept (in this line or any
// earlier one), then dedup by hash. A bounded max-popcount working set per
// line (capacity domin_nb) is all that's actually consulted for the
// domination check — the full formula list is kept regardless, so
// domin_nb bounds pruning cost, not recall.
type EnumCache struct {
	hashToLine map[uint64]lineIndex
	lines      [][]formula.Formula[Charac]
	bestSV     []*svHeap
	k          int
}

type lineIndex struct{ line, index int }

// NewEnumCache returns an empty EnumCache whose per-line domination
// working set holds at most k entries (by popcount, highest kept).
func NewEnumCache(k int) *EnumCache {
	return &EnumCache{hashToLine: make(map[uint64]lineIndex), k: k}
}

// Len returns the total number of formulas across every line.
func (c *EnumCache) Len() int {
	total := 0
	for _, l := range c.lines {
		total += len(l)
	}
	return total
}

// NBLines returns the number of lines created so far.
func (c *EnumCache) NBLines() int { return len(c.lines) }

// Get resolves a characteristic hash back to the formula that produced it.
func (c *EnumCache) Get(hash uint64) (formula.Formula[Charac], bool) {
	idx, ok := c.hashToLine[hash]
	if !ok {
		return formula.Formula[Charac]{}, false
	}
	return c.lines[idx.line][idx.index], true
}

// IterSize returns every formula of the given size.
func (c *EnumCache) IterSize(size int) []formula.Formula[Charac] {
	if size < 0 || size >= len(c.lines) {
		return nil
	}
	return c.lines[size]
}

// NewLine opens a fresh empty line.
func (c *EnumCache) NewLine(size int) synthcache.Line[Charac] {
	c.lines = append(c.lines, nil)
	h := &svHeap{}
	heap.Init(h)
	c.bestSV = append(c.bestSV, h)
	return &enumLine{cache: c, size: size}
}

// NewLineAndIter opens a fresh line and returns the size-1 formulas plus
// the bucket-paired operand combinations, same rule as synthcache.DedupCache.
func (c *EnumCache) NewLineAndIter(size int) ([]formula.Formula[Charac], []synthcache.Pair[Charac], synthcache.Line[Charac]) {
	oldLines := make([][]formula.Formula[Charac], len(c.lines))
	copy(oldLines, c.lines)

	line := c.NewLine(size)

	var single []formula.Formula[Charac]
	if size-1 >= 0 && size-1 < len(oldLines) {
		single = oldLines[size-1]
	}

	numPairBuckets := (size + 1) / 2
	var pairs []synthcache.Pair[Charac]
	for i := 0; i < numPairBuckets; i++ {
		j := size - 1 - i
		if i >= len(oldLines) || j < 0 || j >= len(oldLines) {
			continue
		}
		for _, l := range oldLines[i] {
			for _, r := range oldLines[j] {
				pairs = append(pairs, synthcache.Pair[Charac]{Left: l, Right: r})
			}
		}
	}

	return single, pairs, line
}

// dominated reports whether any formula kept in the domination working
// set (of this or an earlier line) dominates sv.
func (c *EnumCache) dominated(sv bitops.SatVec) bool {
	for _, h := range c.bestSV {
		for _, e := range *h {
			if e.sv.Dominates(sv) {
				return true
			}
		}
	}
	return false
}

type enumLine struct {
	cache *EnumCache
	size  int
}

// Push admits f iff it is not dominated by a kept formula and its hash has
// not been seen before.
func (l *enumLine) Push(f formula.Formula[Charac]) bool {
	if f.Size != l.size {
		panic("boolsem: pushed formula size does not match line size")
	}
	if l.cache.dominated(f.Charac.SV) {
		return false
	}

	hash := f.Hash()
	if _, exists := l.cache.hashToLine[hash]; exists {
		return false
	}

	index := len(l.cache.lines[l.size])
	l.cache.lines[l.size] = append(l.cache.lines[l.size], f)
	l.cache.hashToLine[hash] = lineIndex{line: l.size, index: index}

	h := l.cache.bestSV[l.size]
	heap.Push(h, svEntry{sv: f.Charac.SV, hash: hash})
	if h.Len() > l.cache.k {
		heap.Pop(h)
	}

	return true
}

// svEntry pairs a SatVec with the hash of the formula it came from, for
// the domination working set.
type svEntry struct {
	sv   bitops.SatVec
	hash uint64
}

// svHeap is a min-heap by popcount: Pop always removes the least dense
// entry, so capping a svHeap at k keeps the k densest formulas.
type svHeap []svEntry

func (h svHeap) Len() int            { return len(h) }
func (h svHeap) Less(i, j int) bool  { return h[i].sv.Popcount() < h[j].sv.Popcount() }
func (h svHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *svHeap) Push(x interface{}) { *h = append(*h, x.(svEntry)) }
func (h *svHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
