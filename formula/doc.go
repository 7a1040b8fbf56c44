// Package formula is the generic formula record shared by the LTL and
// Boolean enumeration engines: a characteristic value plus a hash-keyed
// reference to its children, and the explicit tree used to print and
// evaluate a formula once it has been found.
//
// The Char type parameter is the characteristic representation of the
// formula (a CharMatrix for LTL, a CharVec-backed value for Boolean). It is
// required to implement Hasher so a Formula's node can reference its
// children by hash instead of owning a copy of them, letting two formulas
// that reduce to the same characteristic share structure.
package formula
