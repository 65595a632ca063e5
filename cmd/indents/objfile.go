package main

import (
	"fmt"
	"io"
	"os"

	"github.com/maximizer/indents/ir"
	"github.com/maximizer/indents/parse"

	"github.com/scott-cotton/cli"
)

func readArg(cc *cli.Context, path string) ([]byte, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getTreeFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Tree, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// forEachTree parses every file in args, or stdin when there are none.
func forEachTree(cfg *MainConfig, cc *cli.Context, args []string, f func(i int, name string, tree *ir.Tree) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		tree, err := getTreeFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := f(i, arg, tree); err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
	}
	return nil
}

func writeSep(w io.Writer, i int) error {
	if i == 0 {
		return nil
	}
	_, err := w.Write([]byte("---\n"))
	return err
}
