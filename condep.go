package condep

import (
	"fmt"
	"log/slog"

	"github.com/treebank-tools/go-condep/bracket"
	"github.com/treebank-tools/go-condep/conll"
	"github.com/treebank-tools/go-condep/headrules"
)

// Converter turns bracketed constituency trees into CoNLL dependency
// rows using a head-percolation rule table. A Converter is immutable and
// safe for concurrent use.
type Converter struct {
	rules         *headrules.Table
	relation      string
	commentPrefix string
	workers       int
	logger        *slog.Logger
}

// New creates a Converter from the head-rule table in the file at path.
func New(path string, opts ...Option) (*Converter, error) {
	table, err := headrules.Load(path)
	if err != nil {
		return nil, err
	}
	return NewWithTable(table, opts...), nil
}

// NewWithTable creates a Converter from an already-built rule table.
func NewWithTable(table *headrules.Table, opts ...Option) *Converter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Converter{
		rules:         table,
		relation:      cfg.relation,
		commentPrefix: cfg.commentPrefix,
		workers:       cfg.workers,
		logger:        cfg.logger,
	}
}

// Convert converts one bracketed sentence into its CoNLL block: one row
// per token in token order, each line newline-terminated, without the
// trailing blank separator line.
func (c *Converter) Convert(line string) (string, error) {
	tree, err := bracket.Parse(line)
	if err != nil {
		return "", err
	}
	sent, err := c.ConvertTree(tree)
	if err != nil {
		return "", err
	}
	return conll.Format(sent), nil
}

// ConvertTree converts an already-parsed constituency tree into CoNLL
// rows. The input tree is not modified.
func (c *Converter) ConvertTree(tree *bracket.Node) (conll.Sentence, error) {
	root, tokens := preprocess(tree)
	if err := markHeads(root, c.rules); err != nil {
		return nil, err
	}
	return c.serialize(tokens, extractRelations(root))
}

// Relations returns the dependency edges of a tree without serializing
// them, sorted by dependent index.
func (c *Converter) Relations(tree *bracket.Node) ([]Relation, error) {
	root, _ := preprocess(tree)
	if err := markHeads(root, c.rules); err != nil {
		return nil, err
	}
	return extractRelations(root), nil
}

// serialize pairs the i-th token with the i-th relation. Relations are
// sorted by dependent and cover each token exactly once, so after the
// count check this pairing is positionally sound.
func (c *Converter) serialize(tokens []Token, relations []Relation) (conll.Sentence, error) {
	if len(tokens) != len(relations) {
		return nil, fmt.Errorf("%w: %d tokens but %d relations", ErrInvalidTree, len(tokens), len(relations))
	}
	sent := make(conll.Sentence, len(relations))
	for i, rel := range relations {
		sent[i] = conll.Row{
			ID:     rel.Dependent,
			Form:   tokens[i].Form,
			PosTag: tokens[i].Tag,
			Head:   rel.Head,
			DepRel: c.relation,
		}
	}
	return sent, nil
}
