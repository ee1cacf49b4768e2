package condep

import (
	"fmt"
	"strings"

	"github.com/treebank-tools/go-condep/bracket"
)

// Token is one (form, tag) pair of the sentence in token order. Tag is
// the suffix-stripped part-of-speech label of the token's leaf.
type Token struct {
	Form string
	Tag  string
}

// headedNode is the working representation of a constituent during
// conversion. Positions and head assignments live in explicit fields
// rather than being folded into the label text.
type headedNode struct {
	category  string
	children  []*headedNode
	leafIndex int // 1-based token position, 0 for internal nodes
	headIndex int // leaf index heading this subtree, set by markHeads
}

func (n *headedNode) isLeaf() bool { return len(n.children) == 0 }

// String renders the subtree with leaf positions in place of tokens, for
// error reports.
func (n *headedNode) String() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *headedNode) render(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.category)
	if n.isLeaf() {
		fmt.Fprintf(b, " %d", n.leafIndex)
	} else {
		for _, c := range n.children {
			b.WriteByte(' ')
			c.render(b)
		}
	}
	b.WriteByte(')')
}

// preprocess builds the working tree for a parsed sentence. Every label
// is cleaned of its annotation suffix, every leaf is numbered by its
// 1-based left-to-right position, and the (form, cleaned tag) pairs are
// collected in the same order. The input tree is not modified.
func preprocess(tree *bracket.Node) (*headedNode, []Token) {
	var tokens []Token
	root := buildHeaded(tree, &tokens)
	return root, tokens
}

func buildHeaded(n *bracket.Node, tokens *[]Token) *headedNode {
	h := &headedNode{category: stripAnnotation(n.Label)}
	if n.IsLeaf() {
		*tokens = append(*tokens, Token{Form: n.Token, Tag: h.category})
		h.leafIndex = len(*tokens)
		return h
	}
	h.children = make([]*headedNode, len(n.Children))
	for i, child := range n.Children {
		h.children[i] = buildHeaded(child, tokens)
	}
	return h
}

// stripAnnotation removes a functional annotation suffix from a label:
// NP-SBJ becomes NP, PP-LOC-CLR becomes PP. A label starting with '-',
// such as the empty-category tag -NONE-, cleans to the empty string.
func stripAnnotation(label string) string {
	if before, _, ok := strings.Cut(label, "-"); ok {
		return before
	}
	return label
}
