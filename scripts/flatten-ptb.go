//go:build ignore

// Flatten pretty-printed Penn Treebank .mrg files into the one-tree-per-line
// form the converter reads. Trees span multiple indented lines in .mrg
// files; each becomes a single line with whitespace runs collapsed.
// Usage: go run ./scripts/flatten-ptb.go -in wsj/ -out wsj.bracketed
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	inPath := flag.String("in", "", "input .mrg file or directory of .mrg files")
	outPath := flag.String("out", "", "output file (default: stdout)")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: go run ./scripts/flatten-ptb.go -in <file-or-dir> [-out <file>]")
		os.Exit(2)
	}

	files, err := collectInputs(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no .mrg files under %s\n", *inPath)
		os.Exit(1)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *outPath, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)

	total := 0
	for _, path := range files {
		n, err := flattenFile(path, w)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error flattening %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Flattened %s (%d trees)\n", path, n)
		total += n
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\nDone: %d trees from %d files\n", total, len(files))
}

func collectInputs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(p) == ".mrg" {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}

func flattenFile(path string, w *bufio.Writer) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return flatten(f, w)
}

// flatten copies trees from r to w, one per output line. Text outside any
// bracket is dropped, so .mrg preamble junk does not leak through.
func flatten(r io.Reader, w *bufio.Writer) (int, error) {
	br := bufio.NewReader(r)
	var (
		tree      strings.Builder
		depth     int
		lastSpace bool
		trees     int
	)
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return trees, fmt.Errorf("reading input: %w", err)
		}
		switch {
		case c == '(':
			depth++
			tree.WriteByte(c)
			lastSpace = false
		case c == ')':
			if depth == 0 {
				return trees, fmt.Errorf("unbalanced ')'")
			}
			depth--
			tree.WriteByte(c)
			lastSpace = false
			if depth == 0 {
				if _, err := w.WriteString(tree.String()); err != nil {
					return trees, fmt.Errorf("writing output: %w", err)
				}
				if err := w.WriteByte('\n'); err != nil {
					return trees, fmt.Errorf("writing output: %w", err)
				}
				trees++
				tree.Reset()
			}
		case depth == 0:
			// ignore text outside trees
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			if !lastSpace {
				tree.WriteByte(' ')
				lastSpace = true
			}
		default:
			tree.WriteByte(c)
			lastSpace = false
		}
	}
	if depth != 0 {
		return trees, fmt.Errorf("unbalanced input: %d brackets still open at end", depth)
	}
	return trees, nil
}
