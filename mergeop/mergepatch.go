package mergeop

import (
	"encoding/json"
	"fmt"

	"github.com/maximizer/indents/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var mPatchSym = register(&mPatchSymbol{patchName: mPatchName})

func MergePatch() Symbol {
	return mPatchSym
}

const (
	mPatchName patchName = "merge-patch"
)

type mPatchSymbol struct {
	patchName
}

func (s mPatchSymbol) Instance(patch []byte) (Op, error) {
	if !json.Valid(patch) {
		return nil, fmt.Errorf("%w: %s: invalid json", ErrPatch, s)
	}
	return &mPatchOp{patch: patch, op: op{name: s.patchName}}, nil
}

type mPatchOp struct {
	op
	patch []byte
}

func (mp mPatchOp) Patch(doc *ir.Tree) (*ir.Tree, error) {
	return applyJSON(doc, mp, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, mp.patch)
	})
}
