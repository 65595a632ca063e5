package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maximizer/indents/format"
)

func TestAsMap(t *testing.T) {
	got := sample().AsMap()
	want := map[string]any{
		"a": map[string]any{
			"0": "b",
			"c": []any{"d"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AsMap mismatch (-want +got):\n%s", diff)
	}
}

func TestAsObject(t *testing.T) {
	got := sample().AsObject()
	want := &Object{Fields: []Field{
		{Key: "a", Value: &Object{Fields: []Field{
			{Key: "0", Value: "b"},
			{Key: "c", Value: []any{"d"}},
		}}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AsObject mismatch (-want +got):\n%s", diff)
	}
	if v, ok := got.Get("a"); !ok || v.(*Object).Len() != 2 {
		t.Errorf("Get(a) = %v, %v", v, ok)
	}
}

func TestFlatChildrenAreSequence(t *testing.T) {
	tree := NewTree()
	a := tree.AddBranch(tree.Root(), FromString("a"))
	tree.AddLeaf(a, FromInt(1))
	tree.AddLeaf(a, FromString("two"))
	tree.AddLeaf(a, FromFloat(3.5))
	got := tree.View(format.AssocMode)
	want := map[string]any{"a": []any{int64(1), "two", 3.5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	obj := tree.View(format.ObjectMode).(*Object)
	if obj.Len() != 1 || obj.Keys()[0] != "a" {
		t.Errorf("root should have exactly key a, got %v", obj.Keys())
	}
}

func TestEmptyRootKey(t *testing.T) {
	tree := NewTree()
	tree.AddBranch(tree.Root(), FromInt(7))
	want := map[string]any{"7": []any{}}
	if diff := cmp.Diff(want, tree.AsMap()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestValueAt(t *testing.T) {
	tree := NewTree()
	a := tree.AddBranch(tree.Root(), FromString("a"))
	leaf := tree.AddLeaf(a, FromInt(1))
	b := tree.AddBranch(a, FromString("b"))
	tree.AddLeaf(b, FromString("x"))

	if diff := cmp.Diff(int64(1), tree.ValueAt(leaf)); diff != "" {
		t.Errorf("leaf (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"x"}, tree.ValueAt(b)); diff != "" {
		t.Errorf("sequence (-want +got):\n%s", diff)
	}
	want := map[string]any{"0": int64(1), "b": []any{"x"}}
	if diff := cmp.Diff(want, tree.ValueAt(a)); diff != "" {
		t.Errorf("mapping (-want +got):\n%s", diff)
	}
}

func TestKeyCollision(t *testing.T) {
	tree := NewTree()
	a := tree.AddBranch(tree.Root(), FromString("a"))
	tree.AddLeaf(a, FromString("b"))
	tree.AddLeaf(a, FromInt(0))
	z, err := tree.Promote(a)
	if err != nil {
		t.Fatal(err)
	}
	tree.AddLeaf(z, FromString("x"))
	tree.AddLeaf(a, FromString("y"))

	obj := tree.AsObject().Fields[0].Value.(*Object)
	if diff := cmp.Diff([]string{"0", "1"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if v, _ := obj.Get("0"); !cmp.Equal(v, []any{"x"}) {
		t.Errorf("later entry should win, got %v", v)
	}
	d, err := tree.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), `{"a":{"0":["x"],"1":"y"}}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if diff := cmp.Diff(map[string]any{"a": map[string]any{"0": []any{"x"}, "1": "y"}}, tree.AsMap()); diff != "" {
		t.Errorf("AsMap (-want +got):\n%s", diff)
	}
}
