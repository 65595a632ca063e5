package mergeop

import (
	"encoding/json"
	"fmt"

	"github.com/maximizer/indents/debug"
	"github.com/maximizer/indents/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var jPatchSym = register(&jPatchSymbol{patchName: jPatchName})

func JSONPatch() Symbol {
	return jPatchSym
}

const (
	jPatchName patchName = "json-patch"
)

type jPatchSymbol struct {
	patchName
}

func (s jPatchSymbol) Instance(patch []byte) (Op, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPatch, s, err)
	}
	return &jPatchOp{ops: ops, op: op{name: s.patchName}}, nil
}

type jPatchOp struct {
	op
	ops jsonpatch.Patch
}

func (jp jPatchOp) Patch(doc *ir.Tree) (*ir.Tree, error) {
	return applyJSON(doc, jp, func(d []byte) ([]byte, error) {
		return jp.ops.Apply(d)
	})
}

// applyJSON runs f over the JSON form of doc and reads the result back.
func applyJSON(doc *ir.Tree, o Op, f func([]byte) ([]byte, error)) (*ir.Tree, error) {
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("%s op called on %s\n", o, d)
	}
	jOut, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPatch, o, err)
	}
	if debug.Patch() {
		debug.Logf("%s op gave %s\n", o, jOut)
	}
	return ir.FromJSON(jOut)
}
