package bracket

import "strings"

// Node is one constituent of a phrase-structure tree. Internal nodes
// carry a syntactic label and one or more children; leaves carry a label
// (the part-of-speech tag) and the token text.
type Node struct {
	Label    string
	Children []*Node
	Token    string
}

// IsLeaf reports whether n is a terminal, token-bearing node.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Leaves returns the terminal nodes of the subtree rooted at n in
// left-to-right order.
func (n *Node) Leaves() []*Node {
	var out []*Node
	n.appendLeaves(&out)
	return out
}

func (n *Node) appendLeaves(out *[]*Node) {
	if n.IsLeaf() {
		*out = append(*out, n)
		return
	}
	for _, c := range n.Children {
		c.appendLeaves(out)
	}
}

// Clone returns a deep copy of the subtree rooted at n. The copy shares
// no nodes with the original.
func (n *Node) Clone() *Node {
	c := &Node{Label: n.Label, Token: n.Token}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// String renders the subtree rooted at n in canonical single-line bracket
// notation, with one space between elements.
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.Label)
	if n.IsLeaf() {
		b.WriteByte(' ')
		b.WriteString(n.Token)
	} else {
		for _, c := range n.Children {
			b.WriteByte(' ')
			c.render(b)
		}
	}
	b.WriteByte(')')
}
