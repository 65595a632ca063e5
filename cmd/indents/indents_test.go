package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/maximizer/indents/format"
	"github.com/maximizer/indents/ir"
	"github.com/maximizer/indents/parse"
	indq "github.com/maximizer/indents/query"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

const doc = `servers
	alpha
		10.0.0.1
		80
	beta
`

func mustParse(t *testing.T, s string) *ir.Tree {
	t.Helper()
	tree, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func withFormat(f format.Format) *MainConfig {
	return &MainConfig{OutFormat: &f}
}

func TestCount(t *testing.T) {
	if got := count(true, false, true); got != 2 {
		t.Errorf("got %d", got)
	}
}

func TestOutFormat(t *testing.T) {
	cfg := &MainConfig{Y: true}
	if got := cfg.outFormat(); got != format.YAMLFormat {
		t.Errorf("got %s", got)
	}
	j := format.JSONFormat
	cfg.OutFormat = &j
	if got := cfg.outFormat(); got != format.JSONFormat {
		t.Errorf("got %s", got)
	}
	if (&MainConfig{}).colors(&bytes.Buffer{}) != nil {
		t.Errorf("expected no colors for a buffer")
	}
}

func TestViewTree(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	tree := mustParse(t, doc)
	if err := viewTree(withFormat(format.JSONFormat), buf, tree, 0); err != nil {
		t.Fatal(err)
	}
	if err := viewTree(&MainConfig{}, buf, tree, 1); err != nil {
		t.Fatal(err)
	}
	want := `{
  "servers": {
    "alpha": [
      "10.0.0.1",
      80
    ],
    "0": "beta"
  }
}
---
` + doc
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestGetPath(t *testing.T) {
	tree := mustParse(t, doc)
	tests := []struct {
		path string
		cfg  *MainConfig
		n    int
		want string
	}{
		{"$.servers.alpha[1]", &MainConfig{}, 1, "80\n"},
		{"$.servers[0]", withFormat(format.JSONFormat), 1, "\"beta\"\n"},
		{"$.servers.alpha", &MainConfig{}, 1, "alpha\n\t10.0.0.1\n\t80\n"},
		{"$.servers.alpha[*]", &MainConfig{}, 2, "10.0.0.1\n---\n80\n"},
		{"$.nope", &MainConfig{}, 0, ""},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			n, err := getPath(tc.cfg, buf, tree, tc.path, 0)
			if err != nil {
				t.Fatal(err)
			}
			if n != tc.n {
				t.Errorf("got %d results, want %d", n, tc.n)
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
	if _, err := getPath(&MainConfig{}, &bytes.Buffer{}, tree, "$.servers[", 0); err == nil {
		t.Errorf("expected an error for a bad path")
	}
}

func TestRunQuery(t *testing.T) {
	q, err := indq.Compile(`.servers.alpha[], .servers["0"]`)
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := runQuery(&MainConfig{}, buf, q, mustParse(t, doc)); err != nil {
		t.Fatal(err)
	}
	want := "\"10.0.0.1\"\n80\n\"beta\"\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMatchTree(t *testing.T) {
	tree := mustParse(t, doc)
	buf := bytes.NewBuffer(nil)
	cfg := &MatchConfig{MainConfig: &MainConfig{}}
	n, err := matchTree(cfg, buf, tree, `leaf && number`)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("got %d matches", n)
	}
	if diff := cmp.Diff("$.servers.alpha[1]\t80\n", buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	buf.Reset()
	cfg.Trees = true
	if _, err := matchTree(cfg, buf, tree, `key == "alpha"`); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("alpha\n\t10.0.0.1\n\t80\n", buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	buf.Reset()
	cfg.Count = true
	if _, err := matchTree(cfg, buf, tree, `leaf`); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("3\n", buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDiffInputs(t *testing.T) {
	cfg := &DiffConfig{MainConfig: &MainConfig{}}
	a := mustParse(t, doc)
	b := mustParse(t, strings.Replace(doc, "80", "8080", 1))
	buf := bytes.NewBuffer(nil)
	differs, err := diffInputs(cfg, buf, a, a, false)
	if err != nil {
		t.Fatal(err)
	}
	if differs || buf.Len() != 0 {
		t.Errorf("unexpected diff %q", buf.String())
	}
	differs, err = diffInputs(cfg, buf, a, b, false)
	if err != nil {
		t.Fatal(err)
	}
	if !differs {
		t.Fatal("expected a diff")
	}
	want := "  servers\n  \talpha\n  \t\t10.0.0.1\n- \t\t80\n+ \t\t8080\n  \tbeta\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	buf.Reset()
	cfg.Reverse = true
	if _, err := diffInputs(cfg, buf, a, b, true); err != nil {
		t.Fatal(err)
	}
	want = "---\n  servers\n  \talpha\n  \t\t10.0.0.1\n+ \t\t80\n- \t\t8080\n  \tbeta\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestPatchOp(t *testing.T) {
	tree := mustParse(t, doc)
	tests := []struct {
		name    string
		op      string
		reverse bool
		patch   string
		want    string
	}{
		{
			name:  "json patch as yaml",
			op:    "json-patch",
			patch: "- op: replace\n  path: /servers/alpha/0\n  value: 10.0.0.2\n",
			want:  "servers\n\tbeta\n\talpha\n\t\t10.0.0.2\n\t\t80\n",
		},
		{
			name:  "merge patch",
			op:    "merge-patch",
			patch: `{"servers":{"alpha":null}}`,
			want:  "servers\n\tbeta\n",
		},
		{
			name:    "reversed diff",
			op:      "diff",
			reverse: true,
			patch:   "  servers\n+ \talpha\n+ \t\t10.0.0.1\n+ \t\t80\n  \tbeta\n",
			want:    "servers\n\tbeta\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &PatchConfig{MainConfig: &MainConfig{}, Op: tc.op, Reverse: tc.reverse}
			op, err := patchOp(cfg, []byte(tc.patch))
			if err != nil {
				t.Fatal(err)
			}
			buf := bytes.NewBuffer(nil)
			if err := applyPatch(cfg.MainConfig, buf, op, tree, 0); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}

	cfg := &PatchConfig{MainConfig: &MainConfig{}, Op: "json-patch", Reverse: true}
	if _, err := patchOp(cfg, []byte(`[]`)); err == nil {
		t.Errorf("expected -r to be rejected for json-patch")
	}
}

func TestLoopEvery(t *testing.T) {
	cfg := &DiffConfig{MainConfig: &MainConfig{}, LoopEvery: time.Second}
	set := cfg.mkLoopEvery()
	if _, err := set(nil, "250ms"); err != nil {
		t.Fatal(err)
	}
	if cfg.LoopEvery != 250*time.Millisecond {
		t.Errorf("got %s", cfg.LoopEvery)
	}
	for _, a := range []string{"0s", "-1s"} {
		if _, err := set(nil, a); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%s: got %v, want ErrUsage", a, err)
		}
	}
	if _, err := set(nil, "soon"); err == nil {
		t.Errorf("expected a parse error")
	}
	if cfg.LoopEvery != 250*time.Millisecond {
		t.Errorf("rejected values must not be kept, got %s", cfg.LoopEvery)
	}
	cfg.LoopEvery = 0
	if err := diffLoop(cfg, nil); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("diffLoop: got %v, want ErrUsage", err)
	}
}
