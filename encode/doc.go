// Package encode writes trees as indents text, JSON or YAML.
//
// # Usage
//
//	err := encode.Encode(tree, os.Stdout)
//
//	err := encode.Encode(tree, w,
//	    encode.EncodeFormat(format.YAMLFormat),
//	    encode.EncodeMode(format.AssocMode))
//
// The indents format writes one line per node, branch keys before their
// children, indented with a tab per level; parsing the output gives back an
// equal tree. JSON and YAML are written from the object view, which keeps
// document order, or from the mapping view in format.AssocMode.
//
// Values containing the comment markers "Rem" or "%" are written as is and
// lose their tail when read back.
//
// # Related Packages
//
//   - github.com/maximizer/indents/parse - Parse indents text
//   - github.com/maximizer/indents/ir - Tree representation
package encode
