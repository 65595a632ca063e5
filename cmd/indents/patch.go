package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/maximizer/indents/encode"
	"github.com/maximizer/indents/ir"
	"github.com/maximizer/indents/libdiff"
	"github.com/maximizer/indents/mergeop"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Ops {
		fmt.Fprintf(cc.Out, "available patch operations:\n")
		for _, name := range mergeop.Names() {
			fmt.Fprintf(cc.Out, "\t- %s\n", name)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file and optionally files to which to apply it", cli.ErrUsage)
	}
	d, err := readArg(cc, args[0])
	if err != nil {
		return err
	}
	op, err := patchOp(cfg, d)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return forEachTree(cfg.MainConfig, cc, args[1:], func(i int, _ string, tree *ir.Tree) error {
		return applyPatch(cfg.MainConfig, cc.Out, op, tree, i)
	})
}

// patchOp instantiates the -op operation from a patch document. JSON
// patches may also be written in YAML.
func patchOp(cfg *PatchConfig, d []byte) (mergeop.Op, error) {
	sym, err := mergeop.Lookup(cfg.Op)
	if err != nil {
		return nil, err
	}
	if cfg.Reverse {
		if sym != mergeop.StrDiff() {
			return nil, fmt.Errorf("-r only applies to diff patches, not %s", sym)
		}
		lines, err := libdiff.Read(string(d))
		if err != nil {
			return nil, err
		}
		buf := bytes.NewBuffer(nil)
		if err := libdiff.Write(buf, libdiff.Reverse(lines), nil); err != nil {
			return nil, err
		}
		d = buf.Bytes()
	}
	if sym != mergeop.StrDiff() && !json.Valid(d) {
		jd, err := yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("patch is neither json nor yaml: %w", err)
		}
		d = jd
	}
	return sym.Instance(d)
}

func applyPatch(cfg *MainConfig, w io.Writer, op mergeop.Op, tree *ir.Tree, i int) error {
	res, err := op.Patch(tree)
	if err != nil {
		return err
	}
	if err := writeSep(w, i); err != nil {
		return err
	}
	return encode.Encode(res, w, cfg.encOpts(w)...)
}
