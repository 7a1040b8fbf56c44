// Package synthcache is the generic cache contract (Cache, Line, Pair)
// implemented by the size-bucketed formula caches in this module, plus
// DedupCache, the plain dedup-by-hash cache the LTL enumeration uses.
// boolsem's EnumCache and BeamCache implement the same contract with
// their own bucket bookkeeping and pair iteration; boolsem's
// SetCoverCache is a flat map and does not implement it.
package synthcache
