package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/maximizer/indents/format"
	"github.com/maximizer/indents/ir"
	"github.com/maximizer/indents/token"

	"github.com/goccy/go-yaml"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	format format.Format
	mode   format.Mode
	indent string

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(tree *ir.Tree, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: string(token.IndentTab),
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.IndentsFormat:
		return encodeIndents(tree, w, es)
	case format.JSONFormat:
		return encodeJSON(tree, w, es)
	case format.YAMLFormat:
		return encodeYAML(tree, w, es)
	}
	return fmt.Errorf("%w: unknown format %s", ErrEncoding, es.format)
}

func encodeIndents(tree *ir.Tree, w io.Writer, es *EncState) error {
	if es.indent != string(token.IndentTab) && es.indent != token.Indent {
		return fmt.Errorf("%w: indent %q does not read back", ErrEncoding, es.indent)
	}
	return tree.Walk(func(i ir.Index, depth int) error {
		n := tree.Node(i)
		txt := n.Value.Text()
		if !token.Clean(txt) {
			return fmt.Errorf("%w: %q at %s does not read back", ErrEncoding, txt, tree.Path(i))
		}
		if es.Color != nil {
			attr := ValueColor
			if !n.IsLeaf() {
				attr = KeyColor
			}
			txt = es.Color(n.Value.Type, attr, txt)
		}
		return writeString(w, strings.Repeat(es.indent, depth)+txt+"\n")
	})
}

func encodeJSON(tree *ir.Tree, w io.Writer, es *EncState) error {
	d, err := json.MarshalIndent(tree.View(es.mode), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, string(d)+"\n")
}

func encodeYAML(tree *ir.Tree, w io.Writer, es *EncState) error {
	enc := yaml.NewEncoder(w, yaml.Indent(2), yaml.IndentSequence(true))
	if err := enc.Encode(yamlValue(tree.View(es.mode))); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return enc.Close()
}

// yamlValue maps object views onto ordered yaml mappings.
func yamlValue(v any) any {
	switch x := v.(type) {
	case *ir.Object:
		res := make(yaml.MapSlice, 0, x.Len())
		for _, f := range x.Fields {
			res = append(res, yaml.MapItem{Key: f.Key, Value: yamlValue(f.Value)})
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[k] = yamlValue(e)
		}
		return res
	default:
		return v
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
