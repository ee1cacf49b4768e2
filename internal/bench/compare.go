package bench

import (
	"context"
	"fmt"
	"sort"

	condep "github.com/treebank-tools/go-condep"
	"github.com/treebank-tools/go-condep/bracket"
)

// Result holds corpus metrics for one rule table.
type Result struct {
	RulePath string
	Metrics  Metrics
}

// EvaluateCorpus converts every pair with conv and scores the output
// against gold. A tree that fails to parse counts as skipped; a
// conversion failure is fatal, since it signals a rule-table defect
// rather than a bad sentence.
func EvaluateCorpus(ctx context.Context, conv *condep.Converter, pairs []Pair) (Metrics, error) {
	var total Counts
	for _, pair := range pairs {
		if err := ctx.Err(); err != nil {
			return Metrics{}, err
		}
		tree, err := bracket.Parse(pair.Tree)
		if err != nil {
			total.Skipped++
			continue
		}
		pred, err := conv.ConvertTree(tree)
		if err != nil {
			return Metrics{}, fmt.Errorf("sentence %d: %w", pair.Index, err)
		}
		total.Add(Evaluate(pred, pair.Gold))
	}
	return Score(total), nil
}

// Compare evaluates one corpus under several rule tables and returns the
// results sorted by UAS descending.
func Compare(ctx context.Context, pairs []Pair, rulePaths []string, opts ...condep.Option) ([]Result, error) {
	results := make([]Result, 0, len(rulePaths))
	for _, path := range rulePaths {
		conv, err := condep.New(path, opts...)
		if err != nil {
			return nil, err
		}
		m, err := EvaluateCorpus(ctx, conv, pairs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		results = append(results, Result{RulePath: path, Metrics: m})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Metrics.UAS > results[j].Metrics.UAS
	})
	return results, nil
}
