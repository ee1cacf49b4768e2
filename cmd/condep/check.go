package main

import (
	"fmt"

	"github.com/spf13/cobra"

	condep "github.com/treebank-tools/go-condep"
	"github.com/treebank-tools/go-condep/conll"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate the dependency-tree invariants of CoNLL files",
	Long: `Checks every sentence of the given CoNLL files: each token must have
exactly one head, exactly one token must attach to the artificial root,
and following head links must never cycle.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	totalBad := 0
	for _, path := range args {
		sentences, err := conll.ReadFile(path)
		if err != nil {
			return err
		}
		bad := 0
		for i, sent := range sentences {
			if err := condep.ValidateSentence(sent); err != nil {
				fmt.Printf("%s: sentence %d: %v\n", path, i+1, err)
				bad++
			}
		}
		fmt.Printf("%s: %d sentences, %d invalid\n", path, len(sentences), bad)
		totalBad += bad
	}
	if totalBad > 0 {
		return fmt.Errorf("%d invalid sentences", totalBad)
	}
	return nil
}
