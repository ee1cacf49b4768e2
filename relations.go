package condep

import "sort"

// Relation is one dependency edge: the head leaf of a constituent
// attached to the head leaf of its governing constituent. Indices are
// 1-based token positions; the sentence root has Head 0.
type Relation struct {
	Dependent int
	Head      int
}

// extractRelations reads the dependency edges off a head-marked tree,
// sorted by dependent index. The root's head leaf attaches to the
// artificial index 0. Every child whose head leaf differs from its
// parent's contributes one edge; head children contribute none, which is
// what keeps the edge count equal to the leaf count.
func extractRelations(root *headedNode) []Relation {
	relations := []Relation{{Dependent: root.headIndex, Head: 0}}
	collectRelations(root, &relations)
	sort.Slice(relations, func(i, j int) bool {
		return relations[i].Dependent < relations[j].Dependent
	})
	return relations
}

func collectRelations(n *headedNode, out *[]Relation) {
	for _, child := range n.children {
		if child.headIndex != n.headIndex {
			*out = append(*out, Relation{Dependent: child.headIndex, Head: n.headIndex})
		}
		collectRelations(child, out)
	}
}
