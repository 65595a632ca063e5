package mergeop

import (
	"bytes"
	"fmt"

	"github.com/maximizer/indents/debug"
	"github.com/maximizer/indents/encode"
	"github.com/maximizer/indents/ir"
	"github.com/maximizer/indents/libdiff"
	"github.com/maximizer/indents/parse"
)

var strDiffSym = register(&strDiffSymbol{patchName: strDiffName})

func StrDiff() Symbol {
	return strDiffSym
}

const (
	strDiffName patchName = "diff"
)

type strDiffSymbol struct {
	patchName
}

func (s strDiffSymbol) Instance(patch []byte) (Op, error) {
	lines, err := libdiff.Read(string(patch))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPatch, s, err)
	}
	return &strDiffOp{lines: lines, op: op{name: s.patchName}}, nil
}

type strDiffOp struct {
	op
	lines []libdiff.Line
}

func (sd strDiffOp) Patch(doc *ir.Tree) (*ir.Tree, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf); err != nil {
		return nil, err
	}
	out, err := libdiff.PatchString(buf.String(), sd.lines)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPatch, sd, err)
	}
	if debug.Patch() {
		debug.Logf("%s op gave\n%s", sd, out)
	}
	return parse.ParseString(out)
}
