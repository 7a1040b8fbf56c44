// Package bitops provides the bit-packed value types that back every
// semantic representation in this module: a trace's truth sequence
// (CharSeq), a per-trace Boolean evaluation (CharVec), a "matches the
// label?" vector (SatVec), and an unbounded bit vector (BitVec) for the
// rare case a projected sub-problem needs more than 128 bits.
//
// All four are plain value types with bit-parallel operators; none of them
// own any other resource, and none of them allocate on the hot path
// (BitVec is the one exception, being backed by a slice).
package bitops
