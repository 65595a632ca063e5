package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maximizer/indents/ir"
	"github.com/maximizer/indents/parse"
	"github.com/maximizer/indents/token"

	"go.lsp.dev/protocol"
)

func (s *Server) hover(params *protocol.HoverParams) *protocol.Hover {
	doc := s.docs.get(params.TextDocument.URI)
	if doc == nil {
		return nil
	}
	text := hoverText(doc, int(params.Position.Line))
	if text == "" {
		return nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}
}

// hoverText describes the node produced by the zero based line.
func hoverText(doc *document, line int) string {
	if doc.tree == nil {
		return ""
	}
	i, ok := doc.rows[line+1]
	if !ok {
		return ""
	}
	n := doc.tree.Node(i)
	parts := []string{fmt.Sprintf("**Path:** `%s`", doc.tree.Path(i))}
	if n.IsLeaf() {
		parts = append(parts, "**Type:** "+typeInfo(n.Value))
		val := n.Value.Text()
		if len(val) > 50 {
			val = val[:50] + "..."
		}
		parts = append(parts, fmt.Sprintf("**Value:** `%s`", val))
	} else {
		parts = append(parts, fmt.Sprintf("**Key:** `%s` with %d children", n.Value.Text(), len(n.Children)))
	}
	return strings.Join(parts, "\n\n")
}

func typeInfo(v ir.Value) string {
	switch {
	case v.Int64 != nil:
		return "integer"
	case v.Float64 != nil:
		return "float"
	default:
		return "string"
	}
}

func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err == nil {
		return res
	}
	line := 0
	var ie *parse.IndentError
	if errors.As(doc.err, &ie) && ie.Line > 0 {
		line = ie.Line - 1
	}
	res = append(res, protocol.Diagnostic{
		Range:    lineRange(doc.text, line),
		Severity: protocol.DiagnosticSeverityError,
		Source:   lsName,
		Message:  doc.err.Error(),
	})
	return res
}

func lineRange(text string, line int) protocol.Range {
	rows := strings.Split(text, "\n")
	end := 0
	if line < len(rows) {
		end = len(strings.TrimSuffix(rows[line], "\r"))
	}
	return protocol.Range{
		Start: protocol.Position{Line: uint32(line)},
		End:   protocol.Position{Line: uint32(line), Character: uint32(end)},
	}
}

// formatEdits rewrites four space indents as tabs and CRLF as LF.
func formatEdits(text string) []protocol.TextEdit {
	norm := token.Normalize(text)
	if norm == text {
		return []protocol.TextEdit{}
	}
	rows := strings.Count(text, "\n")
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{},
			End:   protocol.Position{Line: uint32(rows + 1)},
		},
		NewText: norm,
	}}
}
