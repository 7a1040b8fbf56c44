package boolsem

import (
	"container/heap"

	"github.com/katalvlaran/ltlsynth/formula"
	"github.com/katalvlaran/ltlsynth/synthcache"
)

// BeamCache is the beam search's admission policy: each line is a
// fixed-capacity max-popcount heap (width maxLineSize); a push dominated
// by anything already in its own line is rejected outright, and once a
// line is full the least-dense formula is evicted to make room for a
// denser newcomer. Unlike EnumCache, eviction here actually removes the
// formula — a beam line never holds more than maxLineSize formulas.
type BeamCache struct {
	entries     map[uint64]formula.Formula[Charac]
	lines       []*pcoHeap
	maxLineSize int
}

// NewBeamCache returns an empty BeamCache with the given per-line width.
func NewBeamCache(maxLineSize int) *BeamCache {
	return &BeamCache{entries: make(map[uint64]formula.Formula[Charac]), maxLineSize: maxLineSize}
}

// Len returns the total number of formulas across every line.
func (c *BeamCache) Len() int {
	total := 0
	for _, l := range c.lines {
		total += l.Len()
	}
	return total
}

// NBLines returns the number of lines created so far.
func (c *BeamCache) NBLines() int { return len(c.lines) }

// Get resolves a characteristic hash back to the formula that produced it.
func (c *BeamCache) Get(hash uint64) (formula.Formula[Charac], bool) {
	f, ok := c.entries[hash]
	return f, ok
}

// IterSize returns every formula of the given size.
func (c *BeamCache) IterSize(size int) []formula.Formula[Charac] {
	if size < 0 || size >= len(c.lines) {
		return nil
	}
	out := make([]formula.Formula[Charac], len(*c.lines[size]))
	for i, e := range *c.lines[size] {
		out[i] = e
	}
	return out
}

// NewLine opens a fresh empty line.
func (c *BeamCache) NewLine(size int) synthcache.Line[Charac] {
	h := &pcoHeap{}
	heap.Init(h)
	c.lines = append(c.lines, h)
	return &beamLine{cache: c, heap: h, size: size}
}

// NewLineAndIter opens a fresh line and returns the size-1 formulas plus
// the bucket-paired operand combinations, same rule as synthcache.DedupCache.
func (c *BeamCache) NewLineAndIter(size int) ([]formula.Formula[Charac], []synthcache.Pair[Charac], synthcache.Line[Charac]) {
	oldLines := make([]*pcoHeap, len(c.lines))
	copy(oldLines, c.lines)

	line := c.NewLine(size)

	var single []formula.Formula[Charac]
	if size-1 >= 0 && size-1 < len(oldLines) {
		single = formulasOf(oldLines[size-1])
	}

	numPairBuckets := (size + 1) / 2
	var pairs []synthcache.Pair[Charac]
	for i := 0; i < numPairBuckets; i++ {
		j := size - 1 - i
		if i >= len(oldLines) || j < 0 || j >= len(oldLines) {
			continue
		}
		for _, l := range formulasOf(oldLines[i]) {
			for _, r := range formulasOf(oldLines[j]) {
				pairs = append(pairs, synthcache.Pair[Charac]{Left: l, Right: r})
			}
		}
	}

	return single, pairs, line
}

func formulasOf(h *pcoHeap) []formula.Formula[Charac] {
	if len(*h) == 0 {
		return nil
	}
	out := make([]formula.Formula[Charac], len(*h))
	copy(out, *h)
	return out
}

type beamLine struct {
	cache *BeamCache
	heap  *pcoHeap
	size  int
}

// Push rejects f if anything already in this line dominates it, then
// dedups by hash, then evicts the least-dense entry if the line is now
// over width.
func (l *beamLine) Push(f formula.Formula[Charac]) bool {
	if f.Size != l.size {
		panic("boolsem: pushed formula size does not match line size")
	}
	for _, e := range *l.heap {
		if e.Charac.SV.Dominates(f.Charac.SV) {
			return false
		}
	}

	hash := f.Hash()
	if _, exists := l.cache.entries[hash]; exists {
		return false
	}

	l.cache.entries[hash] = f
	heap.Push(l.heap, f)
	if l.heap.Len() > l.cache.maxLineSize {
		evicted := heap.Pop(l.heap).(formula.Formula[Charac])
		delete(l.cache.entries, evicted.Hash())
	}

	return true
}

// pcoHeap is a min-heap by popcount over Boolean formulas: Pop always
// removes the least dense entry.
type pcoHeap []formula.Formula[Charac]

func (h pcoHeap) Len() int      { return len(h) }
func (h pcoHeap) Less(i, j int) bool {
	return h[i].Charac.SV.Popcount() < h[j].Charac.SV.Popcount()
}
func (h pcoHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *pcoHeap) Push(x interface{}) {
	*h = append(*h, x.(formula.Formula[Charac]))
}
func (h *pcoHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
