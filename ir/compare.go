package ir

// Equal reports whether a and b hold the same document, ignoring arena
// layout.
func Equal(a, b *Tree) bool {
	return equalAt(a, RootIndex, b, RootIndex)
}

func equalAt(a *Tree, ai Index, b *Tree, bi Index) bool {
	an, bn := &a.nodes[ai], &b.nodes[bi]
	if an.Kind != bn.Kind {
		return false
	}
	if ai != RootIndex && !an.Value.Equal(bn.Value) {
		return false
	}
	if len(an.Children) != len(bn.Children) {
		return false
	}
	for i := range an.Children {
		if !equalAt(a, an.Children[i], b, bn.Children[i]) {
			return false
		}
	}
	return true
}
