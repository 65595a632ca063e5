package libdiff

// Reverse returns the diff going from the target back to the source.
func Reverse(lines []Line) []Line {
	res := make([]Line, len(lines))
	for i, ln := range lines {
		switch ln.Op {
		case Insert:
			ln.Op = Delete
		case Delete:
			ln.Op = Insert
		}
		res[i] = ln
	}
	return res
}

// Source and Target rebuild the two texts a diff was computed from.
func Source(lines []Line) string { return join(lines, Insert) }

func Target(lines []Line) string { return join(lines, Delete) }

func join(lines []Line, skip Op) string {
	res := []byte{}
	for _, ln := range lines {
		if ln.Op == skip {
			continue
		}
		res = append(res, ln.Text...)
		res = append(res, '\n')
	}
	return string(res)
}
