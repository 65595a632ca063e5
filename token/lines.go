package token

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/maximizer/indents/debug"
)

const (
	Indent    = "    "
	IndentTab = '\t'
)

var commentRE = regexp.MustCompile(`(?m)[ ]?(Rem|%)(.+)$`)

type Line struct {
	Depth   int
	Content string
	Row     int
}

func (l Line) String() string {
	return fmt.Sprintf("%d:%d %q", l.Row, l.Depth, l.Content)
}

// Blank reports whether l carries nothing to build: empty content, a lone
// newline, or content starting with a NUL byte.
func (l Line) Blank() bool {
	return l.Content == "" || l.Content == "\n" || l.Content[0] == 0
}

// Normalize turns four space indents into tabs and every line break
// (CRLF, CR or LF) into LF.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, Indent, string(IndentTab))
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// Clean reports whether s reads back unchanged as the content of a line:
// it must be non blank and carry no line break, tab, four space run or
// comment.
func Clean(s string) bool {
	switch {
	case s == "", s[0] == 0:
		return false
	case strings.ContainsAny(s, "\n\r\t"), strings.Contains(s, Indent):
		return false
	}
	return !commentRE.MatchString(s)
}

func StripComments(text string) string {
	return commentRE.ReplaceAllString(text, "")
}

func CountIndent(row string) int {
	n := 0
	for n < len(row) && row[n] == IndentTab {
		n++
	}
	return n
}

// Lines normalizes d and splits it into line records.
func Lines(d []byte) []Line {
	text := StripComments(Normalize(string(d)))
	rows := strings.Split(text, "\n")
	res := make([]Line, 0, len(rows))
	for i, row := range rows {
		ln := Line{
			Depth:   CountIndent(row),
			Content: strings.ReplaceAll(row, string(IndentTab), ""),
			Row:     i + 1,
		}
		if debug.Lines() {
			debug.Logf("token: %s\n", ln)
		}
		res = append(res, ln)
	}
	return res
}

// Format renders lines back as tab indented text, the inverse of Lines for
// comment free input.
func Format(lines []Line) []byte {
	buf := bytes.NewBuffer(nil)
	for i, ln := range lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat(string(IndentTab), ln.Depth))
		buf.WriteString(ln.Content)
	}
	return buf.Bytes()
}
