// Package bench provides evaluation utilities for scoring converter
// output against gold-standard dependency corpora.
package bench

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/treebank-tools/go-condep/conll"
)

// Pair aligns one bracketed constituency sentence with its gold
// dependency analysis.
type Pair struct {
	Index int    // 1-based position in the corpus
	Tree  string // bracketed sentence, one line
	Gold  conll.Sentence
}

// LoadPairs reads a bracketed treebank and its gold CoNLL counterpart
// and aligns them by position. Comment and blank lines in the tree file
// are skipped; the two files must hold the same number of sentences.
func LoadPairs(treePath, goldPath string) ([]Pair, error) {
	trees, err := loadTrees(treePath)
	if err != nil {
		return nil, err
	}
	gold, err := conll.ReadFile(goldPath)
	if err != nil {
		return nil, fmt.Errorf("load gold corpus: %w", err)
	}
	if len(trees) != len(gold) {
		return nil, fmt.Errorf("corpus mismatch: %d trees but %d gold sentences", len(trees), len(gold))
	}

	pairs := make([]Pair, len(trees))
	for i, tree := range trees {
		pairs[i] = Pair{Index: i + 1, Tree: tree, Gold: gold[i]}
	}
	return pairs, nil
}

func loadTrees(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load treebank: %w", err)
	}
	defer f.Close()

	var trees []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4<<20)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		trees = append(trees, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read treebank: %w", err)
	}
	return trees, nil
}
