package libdiff

import "errors"

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Equal:
		return "="
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "?"
	}
}

// Prefix is the marker written in front of a line of that kind.
func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+ "
	case Delete:
		return "- "
	default:
		return "  "
	}
}

type Line struct {
	Op   Op
	Text string
}

func (l Line) String() string { return l.Op.Prefix() + l.Text }

var ErrPatch = errors.New("cannot patch")
