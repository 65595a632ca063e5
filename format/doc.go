// Package format names the output formats and view modes used across indents.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	m, err := format.ParseMode("assoc")
//
// Format selects the encoding written by the encode package. Mode selects
// which view of a parsed tree is handed to callers: the ordered object view
// (ObjectMode, the default) or the mapping view (AssocMode).
//
// # Related Packages
//
//   - github.com/maximizer/indents/parse - Parse indented text into trees
//   - github.com/maximizer/indents/encode - Encode trees to text
package format
