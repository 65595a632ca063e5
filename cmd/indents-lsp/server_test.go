package main

import (
	"context"
	"strings"
	"testing"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

const text = "servers\n\talpha\n\t\t10.0.0.1\n\t\t80\n\tbeta\n"

func TestHoverText(t *testing.T) {
	doc := newDocument(text)
	tests := []struct {
		line int
		want []string
	}{
		{0, []string{"`$.servers`", "with 2 children"}},
		{1, []string{"`$.servers.alpha`", "with 2 children"}},
		{3, []string{"`$.servers.alpha[1]`", "integer", "`80`"}},
		{4, []string{"`$.servers[0]`", "string", "`beta`"}},
	}
	for _, tc := range tests {
		got := hoverText(doc, tc.line)
		for _, w := range tc.want {
			if !strings.Contains(got, w) {
				t.Errorf("line %d: %q missing %q", tc.line, got, w)
			}
		}
	}
	if got := hoverText(doc, 5); got != "" {
		t.Errorf("blank line: got %q", got)
	}
}

func TestDiagnostics(t *testing.T) {
	if got := diagnostics(newDocument(text)); len(got) != 0 {
		t.Errorf("unexpected diagnostics %v", got)
	}
	doc := newDocument("a\n\tb\n\t\t\tc\n")
	got := diagnostics(doc)
	if len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	d := got[0]
	if d.Range.Start.Line != 2 || d.Range.End.Character != 4 {
		t.Errorf("range %+v", d.Range)
	}
	if d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity %v", d.Severity)
	}
	if !strings.Contains(d.Message, "too deep") {
		t.Errorf("message %q", d.Message)
	}
	if hoverText(doc, 0) != "" {
		t.Errorf("expected no hover on a broken document")
	}
}

func TestFormatEdits(t *testing.T) {
	if got := formatEdits(text); len(got) != 0 {
		t.Errorf("unexpected edits %v", got)
	}
	got := formatEdits("a\r\n    b\r\n")
	if len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	if got[0].NewText != "a\n\tb\n" {
		t.Errorf("got %q", got[0].NewText)
	}
	if got[0].Range.End.Line != 3 {
		t.Errorf("range %+v", got[0].Range)
	}
}

func TestDocumentStore(t *testing.T) {
	s := NewServer()
	uri := protocol.DocumentURI("file:///tmp/a.txt")
	if s.docs.get(uri) != nil {
		t.Fatal("unexpected document")
	}
	s.docs.set(uri, text)
	if doc := s.docs.get(uri); doc == nil || doc.err != nil {
		t.Fatalf("got %+v", doc)
	}
	h := s.hover(&protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 3},
		},
	})
	if h == nil || !strings.Contains(h.Contents.Value, "80") {
		t.Errorf("got %+v", h)
	}
	s.docs.remove(uri)
	if s.docs.get(uri) != nil {
		t.Errorf("document not removed")
	}
}

func TestExit(t *testing.T) {
	ctx := context.Background()
	noReply := func(context.Context, any, error) error { return nil }
	exit, err := jsonrpc2.NewNotification(protocol.MethodExit, nil)
	if err != nil {
		t.Fatal(err)
	}
	shutdown, err := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), protocol.MethodShutdown, nil)
	if err != nil {
		t.Fatal(err)
	}

	s := NewServer()
	code := -1
	s.exit = func(c int) { code = c }
	if err := s.handle(ctx, noReply, exit); err != nil {
		t.Fatal(err)
	}
	if code != 1 {
		t.Errorf("exit without shutdown: code %d, want 1", code)
	}

	s = NewServer()
	code = -1
	s.exit = func(c int) { code = c }
	if err := s.handle(ctx, noReply, shutdown); err != nil {
		t.Fatal(err)
	}
	if err := s.handle(ctx, noReply, exit); err != nil {
		t.Fatal(err)
	}
	if code != 0 {
		t.Errorf("exit after shutdown: code %d, want 0", code)
	}
}
