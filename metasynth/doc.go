// Package metasynth implements the top-level search strategy: run the LTL
// enumeration phase first, and if it doesn't find an exact match within
// its size budget, promote every surviving LTL formula into a Boolean atom
// and hand the problem to a Boolean search policy, recursively splitting
// the trace set in two whenever that policy also comes up empty.
package metasynth
