package main

import (
	"fmt"
	"io"

	"github.com/maximizer/indents/encode"
	"github.com/maximizer/indents/eval"
	"github.com/maximizer/indents/ir"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, an expression", cli.ErrUsage)
	}
	total := 0
	err = forEachTree(cfg.MainConfig, cc, args[1:], func(_ int, _ string, tree *ir.Tree) error {
		n, err := matchTree(cfg, cc.Out, tree, args[0])
		total += n
		return err
	})
	if err != nil {
		return err
	}
	if total == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func matchTree(cfg *MatchConfig, w io.Writer, tree *ir.Tree, expr string) (int, error) {
	matches, err := eval.Match(tree, expr)
	if err != nil {
		return 0, err
	}
	if cfg.Count {
		_, err := fmt.Fprintf(w, "%d\n", len(matches))
		return len(matches), err
	}
	for i, m := range matches {
		if !cfg.Trees {
			n := tree.Node(m.Index)
			if _, err := fmt.Fprintf(w, "%s\t%s\n", m.Path, n.Value.Text()); err != nil {
				return i, err
			}
			continue
		}
		if err := writeSep(w, i); err != nil {
			return i, err
		}
		if err := encode.Encode(tree.Subtree(m.Index), w, cfg.encOpts(w)...); err != nil {
			return i, err
		}
	}
	return len(matches), nil
}
