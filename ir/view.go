package ir

import (
	"strconv"

	"github.com/maximizer/indents/format"
)

// Field is one entry of an Object view.
type Field struct {
	Key   string
	Value any
}

// Object is an ordered record view of a branch.
type Object struct {
	Fields []Field
}

func (o *Object) Len() int { return len(o.Fields) }

func (o *Object) Get(key string) (any, bool) {
	for i := range o.Fields {
		if o.Fields[i].Key == key {
			return o.Fields[i].Value, true
		}
	}
	return nil, false
}

func (o *Object) Keys() []string {
	res := make([]string, len(o.Fields))
	for i := range o.Fields {
		res[i] = o.Fields[i].Key
	}
	return res
}

// View returns AsObject for ObjectMode and AsMap for AssocMode.
func (t *Tree) View(m format.Mode) any {
	if m == format.AssocMode {
		return t.AsMap()
	}
	return t.AsObject()
}

// AsObject is the ordered view of t. A key occurring twice in one
// container keeps its first position and takes the later value, as in AsMap.
func (t *Tree) AsObject() *Object {
	return t.objectAt(RootIndex)
}

// AsMap is the mapping view of t. Where a key occurs twice in one
// container the later entry wins.
func (t *Tree) AsMap() map[string]any {
	return t.mapAt(RootIndex)
}

func (t *Tree) isSequence(i Index) bool {
	if i == RootIndex {
		return false
	}
	for _, c := range t.nodes[i].Children {
		if t.nodes[c].Kind != LeafKind {
			return false
		}
	}
	return true
}

func (t *Tree) sequenceAt(i Index) []any {
	kids := t.nodes[i].Children
	res := make([]any, 0, len(kids))
	for _, c := range kids {
		res = append(res, t.nodes[c].Value.Any())
	}
	return res
}

func (t *Tree) objectAt(i Index) *Object {
	kids := t.nodes[i].Children
	res := &Object{Fields: make([]Field, 0, len(kids))}
	ord := 0
	for _, c := range kids {
		n := &t.nodes[c]
		if n.Kind == LeafKind {
			res.set(strconv.Itoa(ord), n.Value.Any())
			ord++
			continue
		}
		if t.isSequence(c) {
			res.set(n.Value.Text(), t.sequenceAt(c))
			continue
		}
		res.set(n.Value.Text(), t.objectAt(c))
	}
	return res
}

// set replaces the value of an existing key in place, else appends.
func (o *Object) set(key string, v any) {
	for i := range o.Fields {
		if o.Fields[i].Key == key {
			o.Fields[i].Value = v
			return
		}
	}
	o.Fields = append(o.Fields, Field{Key: key, Value: v})
}

func (t *Tree) mapAt(i Index) map[string]any {
	kids := t.nodes[i].Children
	res := make(map[string]any, len(kids))
	ord := 0
	for _, c := range kids {
		n := &t.nodes[c]
		if n.Kind == LeafKind {
			res[strconv.Itoa(ord)] = n.Value.Any()
			ord++
			continue
		}
		if t.isSequence(c) {
			res[n.Value.Text()] = t.sequenceAt(c)
			continue
		}
		res[n.Value.Text()] = t.mapAt(c)
	}
	return res
}

// ValueAt is the mapping view of the node at i: the typed value of a leaf,
// []any for a branch of leaves and map[string]any otherwise.
func (t *Tree) ValueAt(i Index) any {
	switch {
	case i == RootIndex:
		return t.mapAt(i)
	case t.nodes[i].Kind == LeafKind:
		return t.nodes[i].Value.Any()
	case t.isSequence(i):
		return t.sequenceAt(i)
	default:
		return t.mapAt(i)
	}
}
