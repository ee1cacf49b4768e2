// Package headrules loads head-percolation rule tables of the kind used
// to find the lexical head of a constituent.
//
// A table is a line-oriented text file. Each line defines the ordered
// rules for one syntactic category:
//
//	VP: l VBD VBN MD VBZ; l VP
//	NP: r NN NNP NNS; r NP; r
//
// The category precedes the colon. After it, semicolons separate rules;
// each rule is a scan direction, l (left to right) or r (right to left),
// followed by zero or more priority tags. A rule with no tags selects the
// first child in scan direction unconditionally. Blank lines are skipped;
// a later line for the same category replaces the earlier one.
package headrules

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrFormat indicates a malformed rule-table line. Errors returned by
// Parse wrap ErrFormat and carry the line number.
var ErrFormat = errors.New("headrules: invalid rule table")

// Direction is the order in which a rule scans a constituent's children.
type Direction int

const (
	// Left scans children from the leftmost to the rightmost.
	Left Direction = iota
	// Right scans children from the rightmost to the leftmost.
	Right
)

// String returns the table notation for d, "l" or "r".
func (d Direction) String() string {
	if d == Right {
		return "r"
	}
	return "l"
}

// Rule is one ranked head-selection rule: try each tag in order and take
// the first child matching it when scanning in Direction. An empty tag
// list matches the first child in scan direction unconditionally.
type Rule struct {
	Direction Direction
	Tags      []string
}

// Table maps syntactic categories to their ordered head rules. A Table
// is immutable after construction and safe for concurrent use.
type Table struct {
	rules map[string][]Rule
}

// Load reads a rule table from the file at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("headrules: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse reads a rule table from r.
func Parse(r io.Reader) (*Table, error) {
	rules := make(map[string][]Rule)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		category, list, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing ':' after category", ErrFormat, lineNo)
		}
		category = strings.TrimSpace(category)
		if category == "" {
			return nil, fmt.Errorf("%w: line %d: empty category", ErrFormat, lineNo)
		}
		parsed, err := parseRules(list)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: category %s: %s", ErrFormat, lineNo, category, err)
		}
		rules[category] = parsed
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("headrules: reading table: %w", err)
	}
	return &Table{rules: rules}, nil
}

// parseRules parses the semicolon-separated rule list after the colon.
func parseRules(list string) ([]Rule, error) {
	groups := strings.Split(list, ";")
	rules := make([]Rule, 0, len(groups))
	for _, group := range groups {
		fields := strings.Fields(group)
		if len(fields) == 0 {
			return nil, errors.New("empty rule")
		}
		var dir Direction
		switch fields[0] {
		case "l":
			dir = Left
		case "r":
			dir = Right
		default:
			return nil, fmt.Errorf("unknown direction %q", fields[0])
		}
		rules = append(rules, Rule{Direction: dir, Tags: fields[1:]})
	}
	return rules, nil
}

// Lookup returns the ordered rules for category and whether the table
// defines the category at all. The returned slice is shared; callers
// must not modify it.
func (t *Table) Lookup(category string) ([]Rule, bool) {
	rules, ok := t.rules[category]
	return rules, ok
}

// Len returns the number of categories the table defines.
func (t *Table) Len() int { return len(t.rules) }

// Categories returns the defined categories in sorted order.
func (t *Table) Categories() []string {
	cats := make([]string, 0, len(t.rules))
	for c := range t.rules {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}
