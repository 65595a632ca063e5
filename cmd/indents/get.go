package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/maximizer/indents/encode"
	"github.com/maximizer/indents/format"
	"github.com/maximizer/indents/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	found := 0
	err = forEachTree(cfg.MainConfig, cc, args[1:], func(_ int, _ string, tree *ir.Tree) error {
		n, err := getPath(cfg.MainConfig, cc.Out, tree, path, found)
		found += n
		return err
	})
	if err != nil {
		return err
	}
	if found == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// getPath writes every node path selects and returns how many there were.
// Output of earlier results is separated by "---".
func getPath(cfg *MainConfig, w io.Writer, tree *ir.Tree, path string, prev int) (int, error) {
	var (
		res []ir.Index
		err error
	)
	if strings.Contains(path, "[*]") || strings.Contains(path, "..") {
		res, err = tree.ListPath(nil, path)
	} else {
		var i ir.Index
		i, err = tree.GetPath(path)
		if i != ir.NoIndex {
			res = append(res, i)
		}
	}
	if err != nil {
		return 0, err
	}
	for j, i := range res {
		if err := writeSep(w, prev+j); err != nil {
			return j, err
		}
		if err := writeNode(cfg, w, tree, i); err != nil {
			return j, err
		}
	}
	return len(res), nil
}

// writeNode writes a leaf as a scalar and anything else as a document.
func writeNode(cfg *MainConfig, w io.Writer, tree *ir.Tree, i ir.Index) error {
	n := tree.Node(i)
	if !n.IsLeaf() {
		return encode.Encode(tree.Subtree(i), w, cfg.encOpts(w)...)
	}
	var (
		d   []byte
		err error
	)
	switch cfg.outFormat() {
	case format.JSONFormat:
		d, err = json.Marshal(n.Value.Any())
		d = append(d, '\n')
	case format.YAMLFormat:
		d, err = yaml.Marshal(n.Value.Any())
	default:
		d = []byte(n.Value.Text() + "\n")
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
