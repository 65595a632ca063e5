package main

import (
	"io"

	"github.com/maximizer/indents/encode"
	"github.com/maximizer/indents/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachTree(cfg.MainConfig, cc, args, func(i int, _ string, tree *ir.Tree) error {
		return viewTree(cfg.MainConfig, cc.Out, tree, i)
	})
}

func viewTree(cfg *MainConfig, w io.Writer, tree *ir.Tree, i int) error {
	if err := writeSep(w, i); err != nil {
		return err
	}
	return encode.Encode(tree, w, cfg.encOpts(w)...)
}
