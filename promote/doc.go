// Package promote converts a finished LTL search cache into the Boolean
// search's starting point: every LTL formula becomes a Boolean atom over
// the fixed trace set, deduplicated and domination-pruned against smaller
// sizes (same-size entries are not checked against each other), plus the
// projection operations
// (Reduce/Split) the divide-and-conquer driver uses to carve out
// sub-problems without re-running LTL enumeration.
package promote
