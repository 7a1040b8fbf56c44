package synthcache

import "github.com/katalvlaran/ltlsynth/formula"

// DedupCache is the simplest admission policy: keep a candidate iff no
// formula with the same characteristic hash has been seen before, in any
// line. This is the LTL enumeration cache's whole policy (the original's
// LtlCache): semantic equivalence folding, nothing else.
type DedupCache[C formula.Hasher] struct {
	hashToLine map[uint64]lineIndex
	lines      [][]formula.Formula[C]
}

type lineIndex struct {
	line, index int
}

// NewDedupCache returns an empty DedupCache.
func NewDedupCache[C formula.Hasher]() *DedupCache[C] {
	return &DedupCache[C]{hashToLine: make(map[uint64]lineIndex)}
}

// Len returns the total number of formulas across every line.
func (c *DedupCache[C]) Len() int {
	total := 0
	for _, l := range c.lines {
		total += len(l)
	}
	return total
}

// NBLines returns the number of lines created so far.
func (c *DedupCache[C]) NBLines() int { return len(c.lines) }

// Get resolves a characteristic hash back to the formula that produced it.
func (c *DedupCache[C]) Get(hash uint64) (formula.Formula[C], bool) {
	idx, ok := c.hashToLine[hash]
	if !ok {
		return formula.Formula[C]{}, false
	}
	return c.lines[idx.line][idx.index], true
}

// IterSize returns every formula of the given size.
func (c *DedupCache[C]) IterSize(size int) []formula.Formula[C] {
	if size < 0 || size >= len(c.lines) {
		return nil
	}
	return c.lines[size]
}

// NewLine opens a fresh empty line.
func (c *DedupCache[C]) NewLine(size int) Line[C] {
	c.lines = append(c.lines, nil)
	return &dedupLine[C]{cache: c, size: size}
}

// NewLineAndIter opens a fresh line for the given target size and returns
// the size-1 formulas plus every bucket-paired operand combination summing
// to size-1, per the bucket-pairing rule.
func (c *DedupCache[C]) NewLineAndIter(size int) ([]formula.Formula[C], []Pair[C], Line[C]) {
	oldLines := make([][]formula.Formula[C], len(c.lines))
	copy(oldLines, c.lines)

	line := c.NewLine(size)

	var single []formula.Formula[C]
	if size-1 >= 0 && size-1 < len(oldLines) {
		single = oldLines[size-1]
	}

	numPairBuckets := (size + 1) / 2
	var pairs []Pair[C]
	for i := 0; i < numPairBuckets; i++ {
		j := size - 1 - i
		if i >= len(oldLines) || j < 0 || j >= len(oldLines) {
			continue
		}
		for _, l := range oldLines[i] {
			for _, r := range oldLines[j] {
				pairs = append(pairs, Pair[C]{Left: l, Right: r})
			}
		}
	}

	return single, pairs, line
}

type dedupLine[C formula.Hasher] struct {
	cache *DedupCache[C]
	size  int
}

// Push admits f iff its hash has not been seen before in any line of the
// cache. Panics if f's size does not match the line's size, matching the
// original's assert_eq! — callers only ever push formulas freshly built
// for this exact size.
func (l *dedupLine[C]) Push(f formula.Formula[C]) bool {
	if f.Size != l.size {
		panic("synthcache: pushed formula size does not match line size")
	}
	hash := f.Hash()
	if _, exists := l.cache.hashToLine[hash]; exists {
		return false
	}
	lineIdx := l.size
	index := len(l.cache.lines[lineIdx])
	l.cache.lines[lineIdx] = append(l.cache.lines[lineIdx], f)
	l.cache.hashToLine[hash] = lineIndex{line: lineIdx, index: index}
	return true
}
