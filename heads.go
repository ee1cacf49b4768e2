package condep

import (
	"fmt"

	"github.com/treebank-tools/go-condep/headrules"
)

// markHeads assigns every node of the working tree the index of the leaf
// that heads it. Leaves head themselves; an internal node takes the head
// of the child its category's rules select. Children are resolved before
// their parent. A category absent from the table falls back to the last
// child; a category whose rules all fail is a rule-table defect and
// yields ErrUnresolvedHead.
func markHeads(n *headedNode, rules *headrules.Table) error {
	if n.isLeaf() {
		n.headIndex = n.leafIndex
		return nil
	}
	for _, child := range n.children {
		if err := markHeads(child, rules); err != nil {
			return err
		}
	}

	ruleList, ok := rules.Lookup(n.category)
	if !ok {
		n.headIndex = n.children[len(n.children)-1].headIndex
		return nil
	}
	for _, rule := range ruleList {
		if head := applyRule(rule, n.children); head != nil {
			n.headIndex = head.headIndex
			return nil
		}
	}
	return fmt.Errorf("%w: category %q in %s", ErrUnresolvedHead, n.category, n)
}

// applyRule returns the child the rule selects, or nil when no tag
// matches. Tags are tried in priority order; each tag scans all children
// in the rule's direction before the next tag is considered.
func applyRule(rule headrules.Rule, children []*headedNode) *headedNode {
	if len(rule.Tags) == 0 {
		return scan(rule.Direction, children, func(*headedNode) bool { return true })
	}
	for _, tag := range rule.Tags {
		match := func(c *headedNode) bool { return c.category == tag }
		if child := scan(rule.Direction, children, match); child != nil {
			return child
		}
	}
	return nil
}

// scan returns the first child satisfying match when traversing in dir:
// Left walks children in order, Right walks them reversed.
func scan(dir headrules.Direction, children []*headedNode, match func(*headedNode) bool) *headedNode {
	if dir == headrules.Right {
		for i := len(children) - 1; i >= 0; i-- {
			if match(children[i]) {
				return children[i]
			}
		}
		return nil
	}
	for _, c := range children {
		if match(c) {
			return c
		}
	}
	return nil
}
