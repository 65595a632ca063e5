package libdiff

import (
	"fmt"
	"strings"

	"github.com/maximizer/indents/debug"
)

// PatchString applies lines to doc. Equal and deleted lines must match doc
// in order.
func PatchString(doc string, lines []Line) (string, error) {
	txt := splitLines(doc)
	res := make([]string, 0, len(txt))
	fi := 0
	for i := range lines {
		ln := &lines[i]
		if debug.Patch() {
			debug.Logf("libdiff: %d/%d %s\n", fi, len(txt), ln)
		}
		switch ln.Op {
		case Insert:
			res = append(res, ln.Text)
			continue
		case Equal, Delete:
			if fi >= len(txt) {
				return "", fmt.Errorf("%w: unexpected end of text, expected %q", ErrPatch, ln.Text)
			}
			if txt[fi] != ln.Text {
				return "", fmt.Errorf("%w: line %d: unexpected text %q, expected %q", ErrPatch, fi+1, txt[fi], ln.Text)
			}
			if ln.Op == Equal {
				res = append(res, txt[fi])
			}
			fi++
		}
	}
	res = append(res, txt[fi:]...)
	if len(res) == 0 {
		return "", nil
	}
	return strings.Join(res, "\n") + "\n", nil
}
