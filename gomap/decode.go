// Package gomap decodes indents documents into Go values.
//
// Documents are decoded through the JSON form of their object view, so
// struct fields are matched with encoding/json rules and `json` tags. Leaves
// in a mixed branch are reached through their ordinal keys ("0", "1", ...).
//
//	var cfg struct {
//	    Servers struct {
//	        Alpha []any  `json:"alpha"`
//	        First string `json:"0"`
//	    } `json:"servers"`
//	}
//	err := gomap.Load(d, &cfg)
package gomap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/maximizer/indents/ir"
	"github.com/maximizer/indents/parse"
)

type fromOpts struct {
	root   bool
	strict bool
	trace  bool
}

func (do *fromOpts) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseTrace(do.trace),
	}
}

type FromOption func(*fromOpts)

// LoadRoot decodes the value under the single root key instead of the whole
// document.
func LoadRoot(v bool) FromOption { return func(o *fromOpts) { o.root = v } }

// LoadStrict rejects keys which match no struct field.
func LoadStrict(v bool) FromOption { return func(o *fromOpts) { o.strict = v } }

func LoadTrace(v bool) FromOption { return func(o *fromOpts) { o.trace = v } }

// IRFromer is implemented by values which decode themselves from a tree.
type IRFromer interface {
	FromIR(*ir.Tree, ...FromOption) error
}

func Load(d []byte, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	tree, err := parse.Parse(d, do.parseOpts()...)
	if err != nil {
		return err
	}
	return FromIR(tree, p, opts...)
}

func LoadFile(path string, p any, opts ...FromOption) error {
	d, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", path, err)
	}
	return Load(d, p, opts...)
}

// FromIR decodes tree into p.
func FromIR(tree *ir.Tree, p any, opts ...FromOption) error {
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(tree, opts...)
	}
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	var v any = tree.AsObject()
	if do.root {
		kids := tree.Children(tree.Root())
		if len(kids) == 0 {
			return fmt.Errorf("empty document has no root key")
		}
		v = rootValue(tree, kids[0])
	}
	d, err := json.Marshal(v)
	if err != nil {
		return err
	}
	jDec := json.NewDecoder(bytes.NewReader(d))
	if do.strict {
		jDec.DisallowUnknownFields()
	}
	return jDec.Decode(p)
}

// rootValue is the object view of the branch at i, or its sequence when it
// only holds leaves.
func rootValue(tree *ir.Tree, i ir.Index) any {
	obj := tree.Subtree(i).AsObject()
	if len(obj.Fields) != 1 {
		return obj
	}
	return obj.Fields[0].Value
}
