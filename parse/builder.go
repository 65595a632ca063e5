package parse

import (
	"github.com/maximizer/indents/debug"
	"github.com/maximizer/indents/ir"
	"github.com/maximizer/indents/token"
)

type State int

const (
	Empty State = iota
	Building
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Building:
		return "building"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "<unknown state>"
	}
}

// Builder grows a tree one line at a time. The path holds the branches
// from the root key down to the container that receives siblings of the
// last accepted line.
//
// A Builder is used for a single document and is not safe for concurrent
// use.
type Builder struct {
	tree  *ir.Tree
	path  []ir.Index
	state State
	err   error
	count int
	trace bool

	rows    map[int]ir.Index
	prevRow int
}

func NewBuilder(opts ...ParseOption) *Builder {
	pOpts := makeOpts(opts)
	return &Builder{
		tree:  ir.NewTree(),
		trace: pOpts.trace || debug.Build(),
		rows:  map[int]ir.Index{},
	}
}

func (b *Builder) State() State { return b.state }

// Path returns a copy of the current path.
func (b *Builder) Path() []ir.Index {
	return append([]ir.Index(nil), b.path...)
}

// Rows maps the row of every accepted line to the node it produced. A line
// whose entry was promoted maps to the resulting branch. Lines whose nodes
// were discarded by a repeated key are left out.
func (b *Builder) Rows() map[int]ir.Index {
	if b.rows == nil {
		return nil
	}
	res := make(map[int]ir.Index, len(b.rows))
	for row, i := range b.rows {
		if b.tree.Reachable(i) {
			res[row] = i
		}
	}
	return res
}

// AcceptLine adds one line of content at depth. Lines are numbered by call
// order for error reporting.
func (b *Builder) AcceptLine(depth int, content string) error {
	return b.Accept(token.Line{Depth: depth, Content: content, Row: b.count + 1})
}

// Accept adds a line record produced by token.Lines. After the first error
// every call returns that error.
func (b *Builder) Accept(ln token.Line) error {
	b.count++
	switch b.state {
	case Failed:
		return b.err
	case Done:
		return ErrDone
	}
	if ln.Blank() {
		return nil
	}
	v := ir.ParseValue(ln.Content)
	if b.state == Empty {
		if ln.Depth != 0 {
			return b.fail(ln, true)
		}
		b.path = []ir.Index{b.tree.AddBranch(b.tree.Root(), v)}
		b.rows[ln.Row] = b.path[0]
		b.prevRow = ln.Row
		b.state = Building
		b.logf("start", ln)
		return nil
	}

	pathLen := len(b.path)
	if ln.Depth < 1 || ln.Depth-1 > pathLen {
		return b.fail(ln, false)
	}
	var (
		parent ir.Index
		step   string
	)
	switch {
	case ln.Depth < pathLen:
		b.path = b.path[:ln.Depth]
		parent = b.path[ln.Depth-1]
		step = "ascend"
	case ln.Depth == pathLen:
		parent = b.path[pathLen-1]
		step = "sibling"
	default:
		branch, err := b.tree.Promote(b.path[pathLen-1])
		if err != nil {
			// only the root key can be empty: a descent right after
			// the first line has no line to hang from
			return b.fail(ln, false)
		}
		b.path = append(b.path, branch)
		b.rows[b.prevRow] = branch
		parent = branch
		step = "descend"
	}
	b.rows[ln.Row] = b.tree.AddLeaf(parent, v)
	b.prevRow = ln.Row
	b.logf(step, ln)
	return nil
}

// Finish ends the build and returns the tree, or the error that aborted it.
func (b *Builder) Finish() (*ir.Tree, error) {
	if b.state == Failed {
		return nil, b.err
	}
	b.state = Done
	return b.tree, nil
}

func (b *Builder) fail(ln token.Line, first bool) error {
	b.state = Failed
	b.err = &IndentError{
		Token: ln.Content,
		Depth: ln.Depth,
		Line:  ln.Row,
		First: first,
	}
	b.tree = nil
	b.path = nil
	b.rows = nil
	if b.trace {
		debug.Logf("build: %s: %v\n", ln, b.err)
	}
	return b.err
}

func (b *Builder) logf(step string, ln token.Line) {
	if !b.trace {
		return
	}
	debug.Logf("build: %-7s %s -> %s\n", step, ln, b.tree.Path(b.path[len(b.path)-1]))
}
