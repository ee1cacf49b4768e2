package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	condep "github.com/treebank-tools/go-condep"
)

var replRules string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Convert bracketed trees interactively",
	Long: `Starts an interactive prompt that converts one bracketed tree per
line and prints the CoNLL rows. Ctrl+D or Ctrl+C exits.`,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().StringVarP(&replRules, "rules", "r", "", "Head-rule table file (required)")
	_ = replCmd.MarkFlagRequired("rules")
}

const historyName = ".condep_history"

func runRepl(cmd *cobra.Command, args []string) error {
	conv, err := condep.New(replRules)
	if err != nil {
		return err
	}

	fmt.Printf("condep %s interactive converter. One bracketed tree per line, Ctrl+D exits.\n", version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer saveHistory(ln, histPath)

	for {
		line, err := ln.Prompt("tree> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		block, err := conv.Convert(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Print(block)
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyName)
}

func saveHistory(ln *liner.State, path string) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = ln.WriteHistory(f)
}
