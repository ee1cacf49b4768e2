package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	condep "github.com/treebank-tools/go-condep"
)

var (
	convertRules    string
	convertInput    string
	convertOutput   string
	convertJobs     int
	convertRelation string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a bracketed treebank into CoNLL dependency rows",
	Long: `Reads one bracketed constituency sentence per line and writes one
CoNLL block per sentence, each followed by a blank line. Lines starting
with '#' pass through unmodified; malformed sentences are logged and
skipped. Reads stdin and writes stdout unless told otherwise.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertRules, "rules", "r", "", "Head-rule table file (required)")
	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "Input treebank file (default: stdin)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (default: stdout)")
	convertCmd.Flags().IntVarP(&convertJobs, "jobs", "j", 1, "Sentences to convert concurrently")
	convertCmd.Flags().StringVar(&convertRelation, "relation", "X", "DEPREL marker written on every row")
	_ = convertCmd.MarkFlagRequired("rules")
}

func runConvert(cmd *cobra.Command, args []string) error {
	conv, err := condep.New(convertRules,
		condep.WithWorkers(convertJobs),
		condep.WithRelationLabel(convertRelation),
	)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if convertInput != "" {
		f, err := os.Open(convertInput)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if convertOutput != "" {
		f, err := os.Create(convertOutput)
		if err != nil {
			return err
		}
		out = f
	}

	bw := bufio.NewWriter(out)
	err = conv.ConvertStream(cmd.Context(), in, bw)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	if out != os.Stdout {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}
	return err
}
