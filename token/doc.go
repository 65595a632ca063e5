// Package token turns raw indents text into line records.
//
// Normalization happens in this order:
//
//  1. every run of four spaces becomes one tab, the indent unit
//  2. CRLF line endings become LF
//  3. trailing comments are removed: an optional space, then "Rem" or "%",
//     then at least one character up to the end of the line
//
// Each resulting line yields a Line whose Depth is the number of leading
// tabs and whose Content is the line with every tab removed.
//
//	for _, ln := range token.Lines(data) {
//	    fmt.Println(ln.Depth, ln.Content)
//	}
//
// Blank lines are kept as records with empty Content; consumers skip them.
package token
