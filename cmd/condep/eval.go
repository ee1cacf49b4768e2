package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/treebank-tools/go-condep/internal/bench"
)

var (
	evalRules string
	evalTrees string
	evalGold  string
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Score converter output against a gold dependency corpus",
	Long: `Converts every sentence of a bracketed treebank and compares the
resulting heads against a gold CoNLL file, reporting the unlabeled
attachment score (UAS) and the fraction of fully correct sentences.
Multiple rule tables, comma separated, are ranked against each other.`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&evalRules, "rules", "r", "", "Head-rule table file(s), comma separated (required)")
	evalCmd.Flags().StringVarP(&evalTrees, "trees", "t", "", "Bracketed treebank file (required)")
	evalCmd.Flags().StringVarP(&evalGold, "gold", "g", "", "Gold CoNLL file (required)")
	_ = evalCmd.MarkFlagRequired("rules")
	_ = evalCmd.MarkFlagRequired("trees")
	_ = evalCmd.MarkFlagRequired("gold")
}

func runEval(cmd *cobra.Command, args []string) error {
	pairs, err := bench.LoadPairs(evalTrees, evalGold)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d sentence pairs\n\n", len(pairs))

	rulePaths := strings.Split(evalRules, ",")
	results, err := bench.Compare(cmd.Context(), pairs, rulePaths)
	if err != nil {
		return err
	}

	fmt.Printf("%-32s %8s %10s %8s %8s\n", "Rules", "UAS", "Complete", "Tokens", "Skipped")
	fmt.Println(strings.Repeat("-", 70))
	for _, res := range results {
		m := res.Metrics
		fmt.Printf("%-32s %8.4f %10.4f %8d %8d\n", res.RulePath, m.UAS, m.CompleteRate, m.Tokens, m.Skipped)
	}
	if len(results) > 1 {
		fmt.Printf("\nBest: %s (UAS %.4f)\n", results[0].RulePath, results[0].Metrics.UAS)
	}
	return nil
}
