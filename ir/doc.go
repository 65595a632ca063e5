// Package ir provides the in-memory tree for indents documents.
//
// # Overview
//
// A document is a tree whose root is always a mapping. Every other node is
// either a leaf holding a Value, or a branch: an ordered mapping keyed by the
// Value of the line that was promoted into it.
//
// Trees are stored as an arena. Nodes live in a flat slice owned by the Tree
// and refer to each other by Index, so callers never hold pointers into a
// structure that is still growing.
//
// # Values
//
// A Value is a tagged union decided once, when a token is read:
//
//   - NumberType: Int64 or Float64 is set
//   - StringType: String holds the text
//
// ParseValue applies the typing rules: fully numeric strings become numbers,
// 0x-prefixed hexadecimal literals become numbers, everything else stays text.
//
//	v := ir.ParseValue("0x1F") // Int64 31
//	s := ir.ParseValue("42a")  // String "42a"
//
// # Building
//
//	t := ir.NewTree()
//	a := t.AddBranch(t.Root(), ir.FromString("a"))
//	t.AddLeaf(a, ir.FromString("b"))
//	t.AddLeaf(a, ir.FromString("c"))
//	c, err := t.Promote(a) // "c" becomes a branch
//	t.AddLeaf(c, ir.FromString("d"))
//
// # Views
//
// AsObject returns an ordered view (*Object), AsMap a plain map view. In both,
// a branch holding only leaves is a []any; a branch holding other branches is
// a mapping where leaves are keyed by their position among leaf siblings.
//
// # Paths
//
// Nodes are addressed with paths like "$.a.c[0]": ".key" selects a branch
// child by key text and "[n]" the n-th child of a branch. GetPath and ListPath
// resolve them; Path renders the path of an index.
//
// # Thread Safety
//
// Trees are not safe for concurrent mutation. A Tree that is no longer being
// built may be read from many goroutines.
package ir
