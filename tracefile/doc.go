// Package tracefile parses the four-section trace file format: positive
// traces, negative traces, an operator menu, and alphabet names, each
// section separated by a line containing only "---".
package tracefile
