package libdiff

import (
	"bytes"

	"github.com/maximizer/indents/encode"
	"github.com/maximizer/indents/ir"
)

// Diff compares two trees through their indents encoding.
func Diff(from, to *ir.Tree) ([]Line, error) {
	a, err := encodeTree(from)
	if err != nil {
		return nil, err
	}
	b, err := encodeTree(to)
	if err != nil {
		return nil, err
	}
	return DiffString(a, b), nil
}

func encodeTree(tree *ir.Tree) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(tree, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
