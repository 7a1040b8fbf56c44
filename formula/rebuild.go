package formula

import "fmt"

// Cache is the read side of a formula cache: resolve a characteristic hash
// back to the Formula that produced it. Every concrete cache in synthcache,
// ltlsem, boolsem and promote satisfies this for its own Char type.
type Cache[C Hasher] interface {
	Get(hash uint64) (Formula[C], bool)
}

// ErrBrokenCache indicates Rebuild could not resolve a child hash against
// the supplied cache. This is always a programmer error — a formula never
// outlives the cache that produced it — so Rebuild panics with it rather
// than returning an error a caller could plausibly recover from.
var ErrBrokenCache = fmt.Errorf("formula: hash not found in cache during rebuild")

// Rebuild walks f's FormulaNode, resolving hash-referenced children through
// cache, and produces the explicit FormulaTree. Repeated hashes are
// memoised so a sub-tree shared by two parents in the cache is rebuilt
// once and shared by pointer in the result, same as the cache's own
// folding.
func Rebuild[C Hasher](f Formula[C], cache Cache[C]) *FormulaTree {
	memo := make(map[uint64]*FormulaTree)
	return rebuildAux(f, cache, memo)
}

// RebuildMemo is Rebuild with a caller-supplied memo, for callers that walk
// many formulas out of the same cache and want sub-trees shared across
// calls, not just within one.
func RebuildMemo[C Hasher](f Formula[C], cache Cache[C], memo map[uint64]*FormulaTree) *FormulaTree {
	return rebuildAux(f, cache, memo)
}

func rebuildAux[C Hasher](f Formula[C], cache Cache[C], memo map[uint64]*FormulaTree) *FormulaTree {
	switch f.Node.Kind {
	case NodeBase:
		return f.Node.Base
	case NodeUnary:
		child := resolveAndRebuild(f.Node.ChildHash, cache, memo)
		return NewUnaryTree(f.Node.UnaryOp, child)
	case NodeBinary:
		left := resolveAndRebuild(f.Node.LeftHash, cache, memo)
		right := resolveAndRebuild(f.Node.RightHash, cache, memo)
		return NewBinaryTree(f.Node.BinaryOp, left, right)
	default:
		panic("formula: unknown FormulaNode kind")
	}
}

func resolveAndRebuild[C Hasher](hash uint64, cache Cache[C], memo map[uint64]*FormulaTree) *FormulaTree {
	if tree, ok := memo[hash]; ok {
		return tree
	}
	child, ok := cache.Get(hash)
	if !ok {
		panic(fmt.Errorf("%w: hash %d", ErrBrokenCache, hash))
	}
	tree := rebuildAux(child, cache, memo)
	memo[hash] = tree
	return tree
}
