package eval

import "github.com/maximizer/indents/ir"

// Env is what an expression sees of one node. Key is the ordinal of a leaf
// and the key value of a branch; Value is the mapping view of the node.
type Env struct {
	Key      any    `expr:"key"`
	Value    any    `expr:"value"`
	Text     string `expr:"text"`
	Depth    int    `expr:"depth"`
	Path     string `expr:"path"`
	Leaf     bool   `expr:"leaf"`
	Number   bool   `expr:"number"`
	Children int    `expr:"children"`
}

// NodeEnv is the environment of the node at i.
func NodeEnv(tree *ir.Tree, i ir.Index) Env {
	n := tree.Node(i)
	var key any
	if n.IsLeaf() {
		key = tree.Ordinal(i)
	} else {
		key = n.Value.Any()
	}
	return Env{
		Key:      key,
		Value:    tree.ValueAt(i),
		Text:     n.Value.Text(),
		Depth:    tree.Depth(i),
		Path:     tree.Path(i),
		Leaf:     n.IsLeaf(),
		Number:   n.Value.IsNumber(),
		Children: len(n.Children),
	}
}
