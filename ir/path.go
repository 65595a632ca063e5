package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path renders the path of the node at i, e.g. "$.a.c[0]".
func (t *Tree) Path(i Index) string {
	if i == RootIndex || i == NoIndex {
		return "$"
	}
	n := &t.nodes[i]
	if n.Parent == NoIndex {
		return "$"
	}
	if n.Kind == LeafKind {
		return t.Path(n.Parent) + "[" + strconv.Itoa(t.Ordinal(i)) + "]"
	}
	return t.Path(n.Parent) + "." + pathString(n.Value.Text())
}

type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Subtree {
			buf.WriteString("..")
			x = x.Next
			continue
		}
		if x.IndexAll {
			buf.WriteString("[*]")
			x = x.Next
			continue
		}
		if x.Field != nil {
			buf.WriteString("." + pathString(*x.Field))
			x = x.Next
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			next := &Path{}
			if err := parseFrag(frag[2:], next); err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(frag[i+2:], next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 32)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}

// GetPath resolves a path without wildcards. A missing key yields NoIndex
// and no error.
func (t *Tree) GetPath(p string) (Index, error) {
	yp, err := ParsePath(p)
	if err != nil {
		return NoIndex, err
	}
	res := RootIndex
	for ; yp != nil; yp = yp.Next {
		switch {
		case yp.IndexAll:
			return NoIndex, fmt.Errorf("%w: any index in get", ErrPath)
		case yp.Subtree:
			return NoIndex, fmt.Errorf("%w: recurse .. in get", ErrPath)
		case yp.Index != nil:
			leaf, ok := t.leafAt(res, *yp.Index)
			if !ok {
				return NoIndex, fmt.Errorf("%w: index out of bounds %d at %s", ErrPath, *yp.Index, t.Path(res))
			}
			res = leaf
		case yp.Field != nil:
			b, ok := t.branchByText(res, *yp.Field)
			if !ok {
				return NoIndex, nil
			}
			res = b
		}
	}
	return res, nil
}

// ListPath resolves a path which may contain [*] and .. into every
// matching index, in document order.
func (t *Tree) ListPath(dst []Index, p string) ([]Index, error) {
	yp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return t.listPath(dst, RootIndex, yp)
}

func (t *Tree) listPath(dst []Index, i Index, yp *Path) ([]Index, error) {
	if yp == nil {
		return append(dst, i), nil
	}
	var err error
	switch {
	case yp.Subtree:
		dst, err = t.listPath(dst, i, yp.Next)
		if err != nil {
			return nil, err
		}
		for _, c := range t.nodes[i].Children {
			dst, err = t.listPath(dst, c, yp)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil
	case yp.IndexAll:
		for _, c := range t.nodes[i].Children {
			dst, err = t.listPath(dst, c, yp.Next)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil
	case yp.Index != nil:
		leaf, ok := t.leafAt(i, *yp.Index)
		if !ok {
			return dst, nil
		}
		return t.listPath(dst, leaf, yp.Next)
	case yp.Field != nil:
		b, ok := t.branchByText(i, *yp.Field)
		if !ok {
			return dst, nil
		}
		return t.listPath(dst, b, yp.Next)
	}
	return t.listPath(dst, i, yp.Next)
}

func (t *Tree) leafAt(parent Index, n int) (Index, bool) {
	if t.nodes[parent].Kind != BranchKind {
		return NoIndex, false
	}
	ord := 0
	for _, c := range t.nodes[parent].Children {
		if t.nodes[c].Kind != LeafKind {
			continue
		}
		if ord == n {
			return c, true
		}
		ord++
	}
	return NoIndex, false
}

func (t *Tree) branchByText(parent Index, key string) (Index, bool) {
	for _, c := range t.nodes[parent].Children {
		n := &t.nodes[c]
		if n.Kind == BranchKind && n.Value.Text() == key {
			return c, true
		}
	}
	return NoIndex, false
}
