package promote

import (
	"container/heap"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/ltlsynth/bitops"
	"github.com/katalvlaran/ltlsynth/formula"
	"github.com/katalvlaran/ltlsynth/ltlsem"
	"github.com/katalvlaran/ltlsynth/synthcache"
)

// Options tunes InitialBoolCache's admission behaviour beyond the
// original's hard-coded choices.
type Options struct {
	// PostFilterDominated is stored on the cache but never read: no
	// post-filter over the built lines is applied, whatever its value.
	PostFilterDominated bool
}

// BoolInfo is one entry of the promotion cache: an LTL formula's
// characteristic vector (one bit per trace, already evaluated), a pointer
// to its rebuilt tree, and its size.
type BoolInfo struct {
	CV   []bool
	Tree *formula.FormulaTree
	Size int
}

// InitialBoolCache is the Boolean search's starting point: every LTL
// formula surviving the LTL phase, reinterpreted as a Boolean atom and
// pruned by equivalence and by domination against strictly smaller lines
// only (unlike the Boolean search's EnumCache, which also checks the
// current line), over an unbounded BitVec satisfiability representation
// since a meta sub-problem may exceed 128 traces before it is split down
// to size.
type InitialBoolCache struct {
	hashCache map[uint64]*formula.FormulaTree
	lines     [][]BoolInfo
	bestSV    []*longSvHeap
	k         int
	opts      Options
}

// NewInitialBoolCache returns an empty cache with nbLines size buckets and
// a per-line domination working set capped at k entries.
func NewInitialBoolCache(nbLines, k int, opts Options) *InitialBoolCache {
	lines := make([][]BoolInfo, nbLines)
	bestSV := make([]*longSvHeap, nbLines)
	for i := range bestSV {
		h := &longSvHeap{}
		heap.Init(h)
		bestSV[i] = h
	}
	return &InitialBoolCache{
		hashCache: make(map[uint64]*formula.FormulaTree),
		lines:     lines,
		bestSV:    bestSV,
		k:         k,
		opts:      opts,
	}
}

// Len returns the total number of formulas across every line.
func (c *InitialBoolCache) Len() int {
	total := 0
	for _, l := range c.lines {
		total += len(l)
	}
	return total
}

// NBLines returns the number of size buckets the cache was built with.
func (c *InitialBoolCache) NBLines() int { return len(c.lines) }

// IterSize returns every formula of the given size.
func (c *InitialBoolCache) IterSize(size int) []BoolInfo {
	if size < 0 || size >= len(c.lines) {
		return nil
	}
	return c.lines[size]
}

// IterAll returns every formula in the cache, in line order.
func (c *InitialBoolCache) IterAll() []BoolInfo {
	var out []BoolInfo
	for _, l := range c.lines {
		out = append(out, l...)
	}
	return out
}

// GetFromCV looks up the formula whose characteristic vector, matched
// against target, is already present in the cache.
func (c *InitialBoolCache) GetFromCV(cv, target []bool) (*formula.FormulaTree, bool) {
	lsv := newLongSv(cv, target, 0)
	tree, ok := c.hashCache[lsv.hash]
	return tree, ok
}

// isRedundant reports whether lsv is already represented (same hash) or
// dominated by an entry kept in a strictly smaller line's working set.
// Same-size entries are never checked against each other — this matches
// the original's `best_sv[..lsv.size]` slice, which deliberately excludes
// the current size.
func (c *InitialBoolCache) isRedundant(lsv longSv) bool {
	if _, ok := c.hashCache[lsv.hash]; ok {
		return true
	}
	for i := 0; i < lsv.size && i < len(c.bestSV); i++ {
		for _, e := range *c.bestSV[i] {
			if e.bv.Dominates(lsv.bv) {
				return true
			}
		}
	}
	return false
}

// Push adds a formula to the cache, rejecting it if isRedundant reports
// true. Reports whether the formula was admitted.
func (c *InitialBoolCache) Push(cv, target []bool, tree *formula.FormulaTree, size int) bool {
	lsv := newLongSv(cv, target, size)
	if c.isRedundant(lsv) {
		return false
	}

	c.hashCache[lsv.hash] = tree
	c.lines[size] = append(c.lines[size], BoolInfo{CV: cv, Tree: tree, Size: size})

	h := c.bestSV[size]
	heap.Push(h, lsv)
	if h.Len() > c.k {
		heap.Pop(h)
	}

	return true
}

// FromLTLCache converts every formula out of a finished LTL cache into a
// promoted Boolean atom, matched against target.
func FromLTLCache(k int, ltlCache synthcache.Cache[ltlsem.Charac], target []bool, opts Options) *InitialBoolCache {
	res := NewInitialBoolCache(ltlCache.NBLines(), k, opts)
	memo := make(map[uint64]*formula.FormulaTree)

	for size := 0; size < ltlCache.NBLines(); size++ {
		for _, f := range ltlCache.IterSize(size) {
			tree := formula.RebuildMemo(f, ltlCache, memo)
			cv := f.Charac.CM.AcceptedVec()
			memo[f.Hash()] = tree
			res.Push(cv, target, tree, f.Size)
		}
	}

	return res
}

// Reduce projects the cache onto a subset of trace indices, rebuilding
// equivalence/domination state for the new (smaller) target from scratch.
func (c *InitialBoolCache) Reduce(indices []int, target []bool) *InitialBoolCache {
	projTarget := projectBools(target, indices)

	res := NewInitialBoolCache(len(c.lines), c.k, c.opts)
	for _, l := range c.lines {
		for _, info := range l {
			res.Push(projectBools(info.CV, indices), projTarget, info.Tree, info.Size)
		}
	}
	return res
}

// Split projects the cache onto two index sets at once, producing two
// independent caches in a single pass over the entries.
func (c *InitialBoolCache) Split(left, right []int, target []bool) (*InitialBoolCache, *InitialBoolCache) {
	leftTarget := projectBools(target, left)
	rightTarget := projectBools(target, right)

	leftCache := NewInitialBoolCache(len(c.lines), c.k, c.opts)
	rightCache := NewInitialBoolCache(len(c.lines), c.k, c.opts)

	for _, l := range c.lines {
		for _, info := range l {
			leftCache.Push(projectBools(info.CV, left), leftTarget, info.Tree, info.Size)
			rightCache.Push(projectBools(info.CV, right), rightTarget, info.Tree, info.Size)
		}
	}

	return leftCache, rightCache
}

func projectBools(v []bool, indices []int) []bool {
	out := make([]bool, len(indices))
	for i, idx := range indices {
		out[i] = v[idx]
	}
	return out
}

// longSv is an unbounded satisfiability vector with a cached popcount and
// content hash, used for the promotion cache's equivalence and domination
// tests once a sub-problem may exceed bitops.SatVec's 128-trace width.
type longSv struct {
	popcount int
	bv       bitops.BitVec
	size     int
	hash     uint64
}

func newLongSv(cv, target []bool, size int) longSv {
	matched := make([]bool, len(cv))
	for i := range cv {
		matched[i] = cv[i] == target[i]
	}
	bv := bitops.NewBitVec(matched)
	return longSv{popcount: bv.CountOnes(), bv: bv, size: size, hash: hashBitVec(bv)}
}

func hashBitVec(bv bitops.BitVec) uint64 {
	words := bv.Words()
	buf := make([]byte, 8*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return xxhash.Sum64(buf)
}

// longSvHeap is a min-heap by popcount: Pop always removes the least
// dense entry, so capping it at k keeps the k densest formulas.
type longSvHeap []longSv

func (h longSvHeap) Len() int            { return len(h) }
func (h longSvHeap) Less(i, j int) bool  { return h[i].popcount < h[j].popcount }
func (h longSvHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *longSvHeap) Push(x interface{}) { *h = append(*h, x.(longSv)) }
func (h *longSvHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
