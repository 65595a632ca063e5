// Package mergeop provides patch operations over indents trees.
//
// # Overview
//
// An operation is instantiated from a patch document by a Symbol and then
// applied to trees. Operations never modify their input; each Patch call
// returns a fresh tree.
//
//   - json-patch: an RFC 6902 JSON patch applied to the object view
//   - merge-patch: an RFC 7386 merge patch applied to the object view
//   - diff: a line diff as written by libdiff.Write
//
// Patches applied through JSON must leave a document that can be written
// as indents text: a single root key and no null values or empty
// containers below it. Objects touched by a JSON patch come back with their
// keys sorted, so positional entries (keyed "0", "1", ...) move ahead of
// named ones in those containers.
//
//	sym, err := mergeop.Lookup("json-patch")
//	op, err := sym.Instance(patchDoc)
//	out, err := op.Patch(tree)
//
// Set INDENTS_DEBUG_PATCH to trace patch application on stderr.
package mergeop
