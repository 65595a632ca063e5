package encode

import (
	"bytes"
	"strings"

	"github.com/maximizer/indents/ir"
)

func MustString(tree *ir.Tree, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(tree, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
