// Package eval evaluates expr-lang expressions against the nodes of a tree.
//
// Each node is presented to an expression through an Env:
//
//	key       branch key, or leaf ordinal among its leaf siblings
//	value     the node in its mapping view (scalar, []any or map[string]any)
//	text      canonical text of the node's value
//	depth     0 for the root key
//	path      e.g. "$.servers.alpha[1]"
//	leaf      true for leaves
//	number    true when the value is numeric
//	children  number of children
//
// The functions getpath(p), listpath(p) and getenv(name) are available in
// every expression; the path functions resolve against the tree being
// evaluated.
//
//	matches, err := eval.Match(tree, `leaf && number && value > 10`)
package eval
