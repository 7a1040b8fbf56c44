// Package boolsem is the Boolean characteristic representation: a CharVec
// truth table, its SatVec against a fixed target, and a cached hash — plus
// the three admission policies the Boolean search policies use (exhaustive
// enumeration with domination+top-k pruning, beam search with a hard width
// cap, and set-cover's dedup-keep-smallest).
package boolsem
