// Package bracket parses Penn Treebank style bracketed constituency
// trees.
//
// A tree is written as nested parenthesized constituents, one sentence
// per string:
//
//	(S (NP (DT the) (NN dog)) (VP (VBZ barks)))
//
// Leaves pair a part-of-speech label with a single token; internal nodes
// pair a syntactic label with one or more child constituents. The outer
// wrapper form produced by many treebank tools, an unlabeled node holding
// the real root, is accepted:
//
//	( (S (NP (NN trade)) (VP (VBD fell))) )
//
// Labels and tokens may contain any non-whitespace characters other than
// parentheses, so treebank conventions such as NP-SBJ, -NONE- and
// non-ASCII tokens pass through untouched.
package bracket

import (
	"errors"
	"fmt"
)

// ErrSyntax indicates structurally malformed bracket input. Errors
// returned by Parse wrap ErrSyntax and include the byte offset of the
// offending text.
var ErrSyntax = errors.New("bracket: malformed tree")

// maxDepth bounds constituent nesting so that corrupt input fails with an
// error instead of exhausting the stack. Hand-annotated treebanks stay
// well under 100.
const maxDepth = 1024

// Parse reads exactly one bracketed tree from s. Leading and trailing
// whitespace is ignored; any other text before or after the tree is an
// error.
func Parse(s string) (*Node, error) {
	p := parser{src: s}
	p.skipSpace()
	if p.eof() {
		return nil, fmt.Errorf("%w: empty input", ErrSyntax)
	}
	n, err := p.parseNode(0)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, fmt.Errorf("%w: trailing text %q at offset %d", ErrSyntax, p.peekAtom(), p.pos)
	}
	return n, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) skipSpace() {
	for !p.eof() && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

// atom consumes a maximal run of label/token characters, which may be
// empty when the cursor sits on a parenthesis or at end of input.
func (p *parser) atom() string {
	start := p.pos
	for !p.eof() && !isDelim(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// peekAtom reads an atom without moving the cursor, for error messages.
func (p *parser) peekAtom() string {
	save := p.pos
	a := p.atom()
	p.pos = save
	if a == "" && !p.eof() {
		return p.src[p.pos : p.pos+1]
	}
	return a
}

func (p *parser) parseNode(depth int) (*Node, error) {
	if depth >= maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d at offset %d", ErrSyntax, maxDepth, p.pos)
	}
	if p.eof() || p.src[p.pos] != '(' {
		return nil, fmt.Errorf("%w: expected '(' at offset %d", ErrSyntax, p.pos)
	}
	open := p.pos
	p.pos++
	p.skipSpace()

	n := &Node{Label: p.atom()}
	p.skipSpace()
	if p.eof() {
		return nil, fmt.Errorf("%w: unclosed bracket opened at offset %d", ErrSyntax, open)
	}

	// Child constituents.
	if p.src[p.pos] == '(' {
		for {
			child, err := p.parseNode(depth + 1)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
			p.skipSpace()
			if p.eof() {
				return nil, fmt.Errorf("%w: unclosed bracket opened at offset %d", ErrSyntax, open)
			}
			switch p.src[p.pos] {
			case ')':
				p.pos++
				return n, nil
			case '(':
				continue
			default:
				return nil, fmt.Errorf("%w: stray token %q among constituents at offset %d", ErrSyntax, p.peekAtom(), p.pos)
			}
		}
	}

	// Leaf: one token, then the closing bracket.
	if p.src[p.pos] == ')' {
		return nil, fmt.Errorf("%w: empty constituent at offset %d", ErrSyntax, open)
	}
	n.Token = p.atom()
	p.skipSpace()
	if p.eof() {
		return nil, fmt.Errorf("%w: unclosed bracket opened at offset %d", ErrSyntax, open)
	}
	if p.src[p.pos] != ')' {
		return nil, fmt.Errorf("%w: leaf %q holds more than one token at offset %d", ErrSyntax, n.Label, p.pos)
	}
	p.pos++
	return n, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDelim(c byte) bool {
	return c == '(' || c == ')' || isSpace(c)
}
