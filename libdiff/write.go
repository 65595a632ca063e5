package libdiff

import (
	"fmt"
	"io"

	"github.com/maximizer/indents/encode"
	"github.com/maximizer/indents/ir"
)

// Write prints lines with their markers, colored when colors is not nil.
func Write(w io.Writer, lines []Line, colors *encode.Colors) error {
	for _, ln := range lines {
		s := ln.String()
		if colors != nil {
			switch ln.Op {
			case Insert:
				s = colors.Color(ir.StringType, encode.InsertColor, s)
			case Delete:
				s = colors.Color(ir.StringType, encode.DeleteColor, s)
			}
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Read parses the output of Write without colors.
func Read(d string) ([]Line, error) {
	res := []Line{}
	for i, s := range splitLines(d) {
		if len(s) < 2 {
			return nil, fmt.Errorf("%w: line %d: missing marker in %q", ErrPatch, i+1, s)
		}
		var op Op
		switch s[:2] {
		case "  ":
			op = Equal
		case "+ ":
			op = Insert
		case "- ":
			op = Delete
		default:
			return nil, fmt.Errorf("%w: line %d: bad marker %q", ErrPatch, i+1, s[:2])
		}
		res = append(res, Line{Op: op, Text: s[2:]})
	}
	return res, nil
}
