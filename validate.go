package condep

import (
	"fmt"

	"github.com/treebank-tools/go-condep/conll"
)

// Validate checks that relations form a proper dependency tree over
// tokens 1..N, where N is the number of relations: every dependent index
// lies in range and appears exactly once, exactly one relation attaches
// to the artificial root 0, and following head links from any token
// reaches the root without revisiting a token.
func Validate(relations []Relation) error {
	n := len(relations)
	heads := make(map[int]int, n)
	roots := 0
	for _, rel := range relations {
		if rel.Dependent < 1 || rel.Dependent > n {
			return fmt.Errorf("%w: dependent %d out of range 1..%d", ErrInvalidTree, rel.Dependent, n)
		}
		if _, dup := heads[rel.Dependent]; dup {
			return fmt.Errorf("%w: token %d has more than one head", ErrInvalidTree, rel.Dependent)
		}
		if rel.Head < 0 || rel.Head > n {
			return fmt.Errorf("%w: head %d out of range 0..%d", ErrInvalidTree, rel.Head, n)
		}
		heads[rel.Dependent] = rel.Head
		if rel.Head == conll.RootID {
			roots++
		}
	}
	if n > 0 && roots != 1 {
		return fmt.Errorf("%w: %d tokens attach to the root, want exactly 1", ErrInvalidTree, roots)
	}

	// Every dependent is distinct and in 1..n, so all n indices are
	// present and each head link is defined.
	for start := 1; start <= n; start++ {
		cur := start
		for steps := 0; cur != conll.RootID; steps++ {
			if steps > n {
				return fmt.Errorf("%w: cycle through token %d", ErrInvalidTree, start)
			}
			cur = heads[cur]
		}
	}
	return nil
}

// ValidateSentence checks the dependency-tree invariants of one CoNLL
// sentence, using each row's ID and HEAD fields. Row order is not
// significant.
func ValidateSentence(sent conll.Sentence) error {
	relations := make([]Relation, len(sent))
	for i, row := range sent {
		relations[i] = Relation{Dependent: row.ID, Head: row.Head}
	}
	return Validate(relations)
}
