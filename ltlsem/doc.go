// Package ltlsem is the LTL characteristic representation: a CharMatrix
// (one CharSeq per trace) plus the unary and binary operator application
// that drives the LTL enumeration phase.
package ltlsem
