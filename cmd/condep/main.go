// Command condep converts constituency treebanks into dependency
// treebanks using head-percolation rules.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Injected via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "condep",
	Short: "Convert constituency treebanks into dependency treebanks",
	Long: `condep converts phrase-structure (bracketed) parse trees into CoNLL
dependency rows using a head-percolation rule table.

Typical usage:

  condep convert --rules head_rules.txt --input wsj.bracketed --output wsj.conll
  condep eval --rules a.rules,b.rules --trees dev.bracketed --gold dev.conll
  condep check wsj.conll`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("condep %s (commit %s, built %s)\n", version, commit, date)
	},
}

func setupLogging(cmd *cobra.Command, args []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.AddCommand(convertCmd, evalCmd, checkCmd, replCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "condep: %v\n", err)
		os.Exit(1)
	}
}
