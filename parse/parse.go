package parse

import (
	"fmt"
	"os"

	"github.com/maximizer/indents/ir"
	"github.com/maximizer/indents/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Tree, error) {
	return ParseLines(token.Lines(d), opts...)
}

func ParseString(s string, opts ...ParseOption) (*ir.Tree, error) {
	return Parse([]byte(s), opts...)
}

func ParseFile(path string, opts ...ParseOption) (*ir.Tree, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return Parse(d, opts...)
}

// ParseLines builds a tree from already normalized line records.
func ParseLines(lines []token.Line, opts ...ParseOption) (*ir.Tree, error) {
	b := NewBuilder(opts...)
	for _, ln := range lines {
		if err := b.Accept(ln); err != nil {
			return nil, err
		}
	}
	return b.Finish()
}

// Decode parses d and returns the view selected by ParseMode: *ir.Object
// by default, map[string]any for format.AssocMode.
func Decode(d []byte, opts ...ParseOption) (any, error) {
	tree, err := Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return tree.View(makeOpts(opts).mode), nil
}

func DecodeString(s string, opts ...ParseOption) (any, error) {
	return Decode([]byte(s), opts...)
}

func DecodeFile(path string, opts ...ParseOption) (any, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return Decode(d, opts...)
}

// ParseRows is Parse which also returns the node produced by each non blank
// row, rows counting from 1.
func ParseRows(d []byte, opts ...ParseOption) (*ir.Tree, map[int]ir.Index, error) {
	b := NewBuilder(opts...)
	for _, ln := range token.Lines(d) {
		if err := b.Accept(ln); err != nil {
			return nil, nil, err
		}
	}
	tree, err := b.Finish()
	if err != nil {
		return nil, nil, err
	}
	return tree, b.Rows(), nil
}
