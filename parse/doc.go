// Package parse builds trees from indents text.
//
// # Usage
//
//	tree, err := parse.ParseString("a\n\tb\n\tc\n\t\td\n")
//	if err != nil {
//	    return err
//	}
//
//	// the object or mapping view directly
//	v, err := parse.DecodeFile("doc.txt", parse.ParseMode(format.AssocMode))
//
// A document starts with a single line at depth 0. Each following line is
// at depth 1 or deeper, and may be at most one level deeper than the line
// before it. A deeper line turns the line above it into a branch.
//
// Any indentation violation aborts the parse with an *IndentError, which
// matches ErrIndent under errors.Is.
//
// # Related Packages
//
//   - github.com/maximizer/indents/token - Line normalization
//   - github.com/maximizer/indents/ir - Tree representation
//   - github.com/maximizer/indents/encode - Encode trees to text
package parse
