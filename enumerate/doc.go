// Package enumerate implements the bottom-up, size-by-size semantic
// enumeration search shared by the LTL and Boolean engines: for each
// formula size in turn, apply every unary operator to size-1 formulas and
// every binary operator to every bucket-paired combination summing to
// size-1, short-circuiting the moment a candidate matches the target.
package enumerate
