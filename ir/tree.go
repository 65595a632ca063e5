package ir

import "fmt"

// Index addresses a node inside the arena of a Tree.
type Index int

const (
	NoIndex   Index = -1
	RootIndex Index = 0
)

// Node is a leaf carrying Value, or a branch keyed by Value with ordered
// Children. The root is a branch with no key.
type Node struct {
	Kind     Kind
	Value    Value
	Parent   Index
	Children []Index
}

func (n *Node) IsLeaf() bool { return n.Kind == LeafKind }

type Tree struct {
	nodes []Node
}

func NewTree() *Tree {
	return &Tree{nodes: []Node{{Kind: BranchKind, Parent: NoIndex}}}
}

func (t *Tree) Root() Index { return RootIndex }

// Node returns the node at i. The pointer is only valid until the next
// mutation of t.
func (t *Tree) Node(i Index) *Node {
	return &t.nodes[i]
}

func (t *Tree) Children(i Index) []Index {
	return t.nodes[i].Children
}

func (t *Tree) alloc(n Node) Index {
	t.nodes = append(t.nodes, n)
	return Index(len(t.nodes) - 1)
}

// AddLeaf appends a positional entry holding v to the branch at parent.
func (t *Tree) AddLeaf(parent Index, v Value) Index {
	i := t.alloc(Node{Kind: LeafKind, Value: v, Parent: parent})
	t.nodes[parent].Children = append(t.nodes[parent].Children, i)
	return i
}

// AddBranch appends a branch keyed by key to parent, or returns the
// branch already holding that key.
func (t *Tree) AddBranch(parent Index, key Value) Index {
	if b, ok := t.FindBranch(parent, key); ok {
		return b
	}
	i := t.alloc(Node{Kind: BranchKind, Value: key, Parent: parent})
	t.nodes[parent].Children = append(t.nodes[parent].Children, i)
	return i
}

func (t *Tree) FindBranch(parent Index, key Value) (Index, bool) {
	for _, c := range t.nodes[parent].Children {
		n := &t.nodes[c]
		if n.Kind == BranchKind && n.Value.Equal(key) {
			return c, true
		}
	}
	return NoIndex, false
}

// Promote turns the last entry of the branch at parent into an empty branch
// keyed by that entry's value and returns it. When parent already has a
// branch with the same key, that branch is emptied in place and the entry
// is dropped.
func (t *Tree) Promote(parent Index) (Index, error) {
	p := &t.nodes[parent]
	if p.Kind != BranchKind {
		return NoIndex, fmt.Errorf("%w: %s", ErrNotBranch, t.Path(parent))
	}
	n := len(p.Children)
	if n == 0 {
		return NoIndex, fmt.Errorf("%w: %s is empty", ErrNothingToPromote, t.Path(parent))
	}
	last := p.Children[n-1]
	if t.nodes[last].Kind == BranchKind {
		return last, nil
	}
	key := t.nodes[last].Value
	if b, ok := t.FindBranch(parent, key); ok {
		for _, c := range t.nodes[b].Children {
			t.nodes[c].Parent = NoIndex
		}
		t.nodes[b].Children = nil
		t.nodes[parent].Children = promote(t.nodes[parent].Children, b, true)
		t.nodes[last].Parent = NoIndex
		return b, nil
	}
	b := t.alloc(Node{Kind: BranchKind, Value: key, Parent: parent})
	t.nodes[parent].Children = promote(t.nodes[parent].Children, b, false)
	t.nodes[last].Parent = NoIndex
	return b, nil
}

// promote returns the child list of a container whose last entry has been
// turned into branch. With reset set, branch is already among children and
// the last entry is simply dropped.
func promote(children []Index, branch Index, reset bool) []Index {
	res := make([]Index, 0, len(children))
	res = append(res, children[:len(children)-1]...)
	if !reset {
		res = append(res, branch)
	}
	return res
}

// Ordinal is the position of the leaf i among the leaves of its parent.
func (t *Tree) Ordinal(i Index) int {
	p := t.nodes[i].Parent
	if p == NoIndex {
		return 0
	}
	ord := 0
	for _, c := range t.nodes[p].Children {
		if c == i {
			return ord
		}
		if t.nodes[c].Kind == LeafKind {
			ord++
		}
	}
	return ord
}

// Reachable reports whether i is still part of the document. Entries
// dropped by Promote and everything below them are not.
func (t *Tree) Reachable(i Index) bool {
	for i != RootIndex {
		if i == NoIndex {
			return false
		}
		i = t.nodes[i].Parent
	}
	return true
}

// Depth of i, where children of the root are at depth 0.
func (t *Tree) Depth(i Index) int {
	d := -1
	for p := t.nodes[i].Parent; p != NoIndex; p = t.nodes[p].Parent {
		d++
	}
	return d
}

type WalkFunc func(i Index, depth int) error

// Walk calls fn for every node below the root in document order.
func (t *Tree) Walk(fn WalkFunc) error {
	return t.walk(RootIndex, 0, fn)
}

func (t *Tree) walk(i Index, depth int, fn WalkFunc) error {
	for _, c := range t.nodes[i].Children {
		if err := fn(c, depth); err != nil {
			return err
		}
		if err := t.walk(c, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Size is the number of reachable nodes, root excluded.
func (t *Tree) Size() int {
	n := 0
	t.Walk(func(Index, int) error {
		n++
		return nil
	})
	return n
}

// Subtree copies the node at i into a fresh tree where it is the single
// root key.
func (t *Tree) Subtree(i Index) *Tree {
	res := NewTree()
	if i == RootIndex {
		t.copyInto(res, RootIndex, RootIndex)
		return res
	}
	dst := res.alloc(Node{Kind: BranchKind, Value: t.nodes[i].Value, Parent: RootIndex})
	res.nodes[RootIndex].Children = append(res.nodes[RootIndex].Children, dst)
	t.copyInto(res, i, dst)
	return res
}

func (t *Tree) copyInto(res *Tree, src, dst Index) {
	for _, c := range t.nodes[src].Children {
		n := &t.nodes[c]
		if n.Kind == LeafKind {
			res.AddLeaf(dst, n.Value)
			continue
		}
		b := res.alloc(Node{Kind: BranchKind, Value: n.Value, Parent: dst})
		res.nodes[dst].Children = append(res.nodes[dst].Children, b)
		t.copyInto(res, c, b)
	}
}
