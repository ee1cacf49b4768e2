package condep

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrUnresolvedHead indicates that a category has rules in the table
	// but none of them selected a head child. This is a defect in the
	// rule table, not in the sentence.
	ErrUnresolvedHead = errors.New("condep: no head rule matched")

	// ErrInvalidTree indicates a dependency structure that violates the
	// single-rooted acyclic tree invariants.
	ErrInvalidTree = errors.New("condep: invalid dependency tree")
)
