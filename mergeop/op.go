package mergeop

import (
	"errors"

	"github.com/maximizer/indents/ir"
)

var ErrPatch = errors.New("patch error")

type Op interface {
	Patch(doc *ir.Tree) (*ir.Tree, error)
	String() string
}

type op struct {
	name patchName
}

func (o op) String() string {
	return o.name.String()
}
