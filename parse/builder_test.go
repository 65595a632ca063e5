package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type line struct {
	depth   int
	content string
}

func build(lines ...line) (map[string]any, error) {
	b := NewBuilder()
	for _, ln := range lines {
		if err := b.AcceptLine(ln.depth, ln.content); err != nil {
			return nil, err
		}
	}
	tree, err := b.Finish()
	if err != nil {
		return nil, err
	}
	return tree.AsMap(), nil
}

type buildTest struct {
	name  string
	lines []line
	want  map[string]any
}

func TestBuildOK(t *testing.T) {
	bts := []buildTest{
		{
			name:  "root only",
			lines: []line{{0, "a"}},
			want:  map[string]any{"a": []any{}},
		},
		{
			name:  "flat children keep order",
			lines: []line{{0, "a"}, {1, "x"}, {1, "y"}, {1, "z"}},
			want:  map[string]any{"a": []any{"x", "y", "z"}},
		},
		{
			name:  "promotion",
			lines: []line{{0, "a"}, {1, "b"}, {1, "c"}, {2, "d"}},
			want: map[string]any{"a": map[string]any{
				"0": "b",
				"c": []any{"d"},
			}},
		},
		{
			name:  "ascend then resibling",
			lines: []line{{0, "r"}, {1, "p"}, {2, "p1"}, {1, "q"}, {2, "q1"}},
			want: map[string]any{"r": map[string]any{
				"p": []any{"p1"},
				"q": []any{"q1"},
			}},
		},
		{
			name:  "ascend several levels",
			lines: []line{{0, "r"}, {1, "a"}, {2, "b"}, {3, "c"}, {4, "d"}, {1, "e"}},
			want: map[string]any{"r": map[string]any{
				"a": map[string]any{"b": map[string]any{"c": []any{"d"}}},
				"0": "e",
			}},
		},
		{
			name:  "typed values",
			lines: []line{{0, "0x10"}, {1, "42"}, {1, "0x1F"}, {1, "42a"}, {1, "2.5"}},
			want:  map[string]any{"16": []any{int64(42), int64(31), "42a", 2.5}},
		},
		{
			name:  "numeric key",
			lines: []line{{0, "a"}, {1, "7"}, {2, "x"}},
			want:  map[string]any{"a": map[string]any{"7": []any{"x"}}},
		},
		{
			name:  "blank lines are ignored",
			lines: []line{{0, "a"}, {0, ""}, {3, "\n"}, {1, "b"}, {0, "\x00"}, {1, "c"}},
			want:  map[string]any{"a": []any{"b", "c"}},
		},
		{
			name:  "repeated key empties branch",
			lines: []line{{0, "a"}, {1, "k"}, {2, "x"}, {1, "k"}, {2, "y"}},
			want:  map[string]any{"a": map[string]any{"k": []any{"y"}}},
		},
		{
			name:  "repeated key after a sibling",
			lines: []line{{0, "a"}, {1, "c"}, {2, "d"}, {1, "e"}, {1, "c"}, {2, "f"}},
			want:  map[string]any{"a": map[string]any{"c": []any{"f"}, "0": "e"}},
		},
	}
	for _, bt := range bts {
		got, err := build(bt.lines...)
		if err != nil {
			t.Errorf("%s: %v", bt.name, err)
			continue
		}
		if diff := cmp.Diff(bt.want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", bt.name, diff)
		}
	}
}

func TestBuildIndentErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []line
		bad   line
		first bool
	}{
		{"first line indented", []line{{1, "z"}}, line{1, "z"}, true},
		{"first line deep after blanks", []line{{0, ""}, {2, "z"}}, line{2, "z"}, true},
		{"descend two right after start", []line{{0, "x"}, {2, "y"}}, line{2, "y"}, false},
		{"jump of two", []line{{0, "x"}, {1, "y"}, {3, "z"}}, line{3, "z"}, false},
		{"jump of three", []line{{0, "x"}, {1, "y"}, {2, "z"}, {5, "w"}}, line{5, "w"}, false},
		{"second root", []line{{0, "x"}, {1, "y"}, {0, "z"}}, line{0, "z"}, false},
		{"second root right after start", []line{{0, "x"}, {0, "z"}}, line{0, "z"}, false},
	}
	for _, tt := range tests {
		_, err := build(tt.lines...)
		if !errors.Is(err, ErrIndent) {
			t.Errorf("%s: expected ErrIndent, got %v", tt.name, err)
			continue
		}
		var ie *IndentError
		if !errors.As(err, &ie) {
			t.Errorf("%s: expected *IndentError, got %T", tt.name, err)
			continue
		}
		if ie.Token != tt.bad.content || ie.Depth != tt.bad.depth || ie.First != tt.first {
			t.Errorf("%s: got %+v, want token %q depth %d first %v", tt.name, ie, tt.bad.content, tt.bad.depth, tt.first)
		}
	}
}

func TestDescentBoundary(t *testing.T) {
	// depth == pathLen+1 is the deepest legal step
	if _, err := build(line{0, "x"}, line{1, "y"}, line{2, "z"}); err != nil {
		t.Errorf("one level descent rejected: %v", err)
	}
	if _, err := build(line{0, "x"}, line{1, "y"}, line{2, "z"}, line{3, "w"}); err != nil {
		t.Errorf("one level descent rejected: %v", err)
	}
	if _, err := build(line{0, "x"}, line{1, "y"}, line{3, "z"}); !errors.Is(err, ErrIndent) {
		t.Errorf("two level descent accepted: %v", err)
	}
}

func TestBuilderStates(t *testing.T) {
	b := NewBuilder()
	if b.State() != Empty {
		t.Fatalf("state %s", b.State())
	}
	if err := b.AcceptLine(0, ""); err != nil || b.State() != Empty {
		t.Fatalf("blank line changed state: %v %s", err, b.State())
	}
	if err := b.AcceptLine(0, "a"); err != nil {
		t.Fatal(err)
	}
	if b.State() != Building || len(b.Path()) != 1 {
		t.Fatalf("state %s path %v", b.State(), b.Path())
	}
	if err := b.AcceptLine(1, "b"); err != nil {
		t.Fatal(err)
	}
	if err := b.AcceptLine(2, "c"); err != nil {
		t.Fatal(err)
	}
	if got := len(b.Path()); got != 2 {
		t.Errorf("path length %d after depth 2 line, want 2", got)
	}
	tree, err := b.Finish()
	if err != nil || tree == nil || b.State() != Done {
		t.Fatalf("finish: %v %v %s", tree, err, b.State())
	}
	if err := b.AcceptLine(1, "late"); !errors.Is(err, ErrDone) {
		t.Errorf("expected ErrDone, got %v", err)
	}
}

func TestBuilderFailureIsTerminal(t *testing.T) {
	b := NewBuilder()
	b.AcceptLine(0, "a")
	first := b.AcceptLine(3, "deep")
	if first == nil || b.State() != Failed {
		t.Fatalf("expected failure, got %v %s", first, b.State())
	}
	if err := b.AcceptLine(1, "fine"); err != first {
		t.Errorf("later accept returned %v, want %v", err, first)
	}
	tree, err := b.Finish()
	if tree != nil || err != first {
		t.Errorf("finish after failure gave %v, %v", tree, err)
	}
}

func TestIndentErrorMessage(t *testing.T) {
	_, err := build(line{0, "x"}, line{1, "y"}, line{3, "z"})
	want := "line 3: unexpected indent near `z`, was the indentation too deep (3)?"
	if err == nil || err.Error() != want {
		t.Errorf("got %q, want %q", err, want)
	}
	_, err = build(line{2, "z"})
	want = "line 1: invalid indentation depth near `z` (2 indents)"
	if err == nil || err.Error() != want {
		t.Errorf("got %q, want %q", err, want)
	}
}

func TestBuilderRows(t *testing.T) {
	tree, rows, err := ParseRows([]byte("a\n\tb\n\t\tc\n\n\tb\n\t\td\n\te\n"))
	if err != nil {
		t.Fatal(err)
	}
	got := map[int]string{}
	for row, i := range rows {
		got[row] = tree.Path(i)
	}
	want := map[int]string{
		1: "$.a",
		2: "$.a.b",
		5: "$.a.b",
		6: "$.a.b[0]",
		7: "$.a[0]",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
