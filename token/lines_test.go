package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	in := "a\r\n    b\r\n\tc\n        d Rem the d\n\t%whole line\n"
	got := Lines([]byte(in))
	want := []Line{
		{Depth: 0, Content: "a", Row: 1},
		{Depth: 1, Content: "b", Row: 2},
		{Depth: 1, Content: "c", Row: 3},
		{Depth: 2, Content: "d", Row: 4},
		{Depth: 1, Content: "", Row: 5},
		{Depth: 0, Content: "", Row: 6},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestStripComments(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"value % note", "value"},
		{"value %note", "value"},
		{"value Rem note", "value"},
		{"Remark", ""},
		{"100%", "100%"},
		{"a\nb % c\nd", "a\nb\nd"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := StripComments(tt.in); got != tt.want {
			t.Errorf("StripComments(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("        x\r\ny"); got != "\t\tx\ny" {
		t.Errorf("got %q", got)
	}
	if got := Normalize("   x"); got != "   x" {
		t.Errorf("three spaces are not an indent, got %q", got)
	}
	if got := Normalize("a\r\tb\r\n\tc\rd"); got != "a\n\tb\n\tc\nd" {
		t.Errorf("lone CR should break lines, got %q", got)
	}
}

func TestLinesLoneCR(t *testing.T) {
	lines := Lines([]byte("a\r\tb"))
	if len(lines) != 2 || lines[1].Depth != 1 || lines[1].Content != "b" {
		t.Errorf("got %v", lines)
	}
}

func TestClean(t *testing.T) {
	for in, want := range map[string]bool{
		"x":          true,
		"10.0.0.1":   true,
		" x y ":      true,
		"50%":        true,
		"Re":         true,
		"":           false,
		"\x00x":      false,
		"a\nb":       false,
		"a\rb":       false,
		"a\tb":       false,
		"a    b":     false,
		"50% off":    false,
		"Remote":     false,
		"x Rem note": false,
	} {
		if got := Clean(in); got != want {
			t.Errorf("Clean(%q) = %t, want %t", in, got, want)
		}
		if !want {
			continue
		}
		lines := Lines([]byte(in))
		if len(lines) != 1 || lines[0].Content != in {
			t.Errorf("%q is clean but reads back as %v", in, lines)
		}
	}
}

func TestCountIndent(t *testing.T) {
	for in, want := range map[string]int{"": 0, "x": 0, "\tx": 1, "\t\t\tx": 3, "\t x\t": 1} {
		if got := CountIndent(in); got != want {
			t.Errorf("CountIndent(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestBlank(t *testing.T) {
	for _, c := range []string{"", "\n", "\x00", "\x00abc"} {
		if !(Line{Content: c}).Blank() {
			t.Errorf("%q should be blank", c)
		}
	}
	for _, c := range []string{" ", "0", "a"} {
		if (Line{Content: c}).Blank() {
			t.Errorf("%q should not be blank", c)
		}
	}
}

func TestFormat(t *testing.T) {
	lines := []Line{{Depth: 0, Content: "a"}, {Depth: 1, Content: "b"}, {Depth: 2, Content: "c"}}
	got := string(Format(lines))
	if got != "a\n\tb\n\t\tc" {
		t.Errorf("got %q", got)
	}
	back := Lines([]byte(got))
	for i := range lines {
		if back[i].Depth != lines[i].Depth || back[i].Content != lines[i].Content {
			t.Errorf("line %d: got %v want %v", i, back[i], lines[i])
		}
	}
}
