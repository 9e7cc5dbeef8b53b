// Package tree defines the value tree produced by the configuration parser
// and the dotted-path accessors used to read it.
//
// A tree is made of *Value nodes. Each node is one of null, bool, int,
// float, string, mapping (unique string keys) or sequence (ordered). Trees
// are built once by a parser and then only read, so a single tree can be
// shared between goroutines without locking.
//
// # Lookup
//
// Sections are addressed with dot-separated paths:
//
//	budget, ok := tree.Lookup(root, "resource_budget.time.total")
//	if !ok {
//	    // absent: use the documented default
//	}
//
// The typed helpers fold absence and kind mismatches into a default:
//
//	ratio := tree.LookupFloat(root, "resource_budget.time.degradation.trigger_ratio", 0.8)
package tree
