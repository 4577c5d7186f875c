package vocab

// Node is one entry in a loaded vocabulary hierarchy: a category, a
// subcategory, or a leaf term. Children is never nil on a loaded tree, so
// leaves serialize with an empty children list rather than null.
type Node struct {
	ID       ID      `json:"id" yaml:"id"`
	Label    string  `json:"label" yaml:"label"`
	Children []*Node `json:"children" yaml:"children"`
}

// Tree is a fully loaded vocabulary hierarchy rooted at its categories.
type Tree struct {
	Categories []*Node
}

// Walk visits every node depth-first in document order, calling fn with
// the node's depth: 0 for categories, 1 for subcategories, 2 for terms.
func (t *Tree) Walk(fn func(depth int, n *Node)) {
	var visit func(depth int, n *Node)
	visit = func(depth int, n *Node) {
		fn(depth, n)
		for _, c := range n.Children {
			visit(depth+1, c)
		}
	}
	for _, cat := range t.Categories {
		visit(0, cat)
	}
}

// Len reports the total number of nodes in the tree.
func (t *Tree) Len() int {
	n := 0
	t.Walk(func(int, *Node) { n++ })
	return n
}
