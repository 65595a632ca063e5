// Package libdiff computes line diffs between indents documents.
//
// A diff is a list of Line records, each holding one line of text marked
// Equal, Insert or Delete. Trees are compared through their indents
// encoding, so a diff reads like a unified diff of the two documents.
//
//	lines, err := libdiff.Diff(a, b)
//	if libdiff.Changed(lines) {
//	    libdiff.Write(os.Stdout, lines, nil)
//	}
//
// Reverse swaps the direction of a diff and PatchString applies a diff to
// the text it was computed from.
package libdiff
