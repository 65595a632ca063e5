package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/maximizer/indents/format"
	"github.com/maximizer/indents/ir"
	indq "github.com/maximizer/indents/query"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, a jq program", cli.ErrUsage)
	}
	q, err := indq.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return forEachTree(cfg.MainConfig, cc, args[1:], func(_ int, _ string, tree *ir.Tree) error {
		return runQuery(cfg.MainConfig, cc.Out, q, tree)
	})
}

// runQuery writes each result as a line of JSON, or as a YAML document.
func runQuery(cfg *MainConfig, w io.Writer, q *indq.Query, tree *ir.Tree) error {
	res, err := q.Run(tree)
	if err != nil {
		return err
	}
	if cfg.outFormat() == format.YAMLFormat {
		for i, v := range res {
			if err := writeSep(w, i); err != nil {
				return err
			}
			d, err := yaml.Marshal(v)
			if err != nil {
				return err
			}
			if _, err := w.Write(d); err != nil {
				return err
			}
		}
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, v := range res {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}
