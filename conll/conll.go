// Package conll reads and writes dependency analyses in the tabular
// CoNLL-X format: one token per line, ten tab-separated fields, a blank
// line after each sentence. Fields with no value hold the underscore
// placeholder. Token IDs are 1-based; the artificial root has index 0.
package conll

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrFormat indicates a malformed CoNLL row.
var ErrFormat = errors.New("conll: invalid row")

const (
	numFields = 10
	blank     = "_"

	// RootID is the index of the artificial root node that heads the
	// sentence root.
	RootID = 0
)

// maxLineBytes bounds a single input line. CoNLL rows are short; this is
// only a guard against reading a non-CoNLL file by mistake.
const maxLineBytes = 1 << 20

// Row is one token's entry in a dependency sentence. Zero-valued string
// fields render as the underscore placeholder.
type Row struct {
	ID      int    // 1-based token position
	Form    string // surface token
	CPosTag string // coarse part-of-speech tag
	PosTag  string // fine part-of-speech tag
	Head    int    // ID of the governing token, RootID for the root
	DepRel  string // dependency relation label
}

// String renders the row's ten tab-separated fields without a trailing
// newline. The LEMMA, FEATS, PHEAD and PDEPREL fields are always blank.
func (r Row) String() string {
	fields := [numFields]string{
		strconv.Itoa(r.ID),
		orBlank(r.Form),
		blank,
		orBlank(r.CPosTag),
		orBlank(r.PosTag),
		blank,
		strconv.Itoa(r.Head),
		orBlank(r.DepRel),
		blank,
		blank,
	}
	return strings.Join(fields[:], "\t")
}

func orBlank(s string) string {
	if s == "" {
		return blank
	}
	return s
}

// Sentence is the rows of one sentence in token order.
type Sentence []Row

// Format renders the sentence as one row per line, each newline
// terminated, with no trailing blank separator line.
func Format(sent Sentence) string {
	var b strings.Builder
	for _, row := range sent {
		b.WriteString(row.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Write writes one sentence to w followed by the blank separator line.
func Write(w io.Writer, sent Sentence) error {
	if _, err := io.WriteString(w, Format(sent)); err != nil {
		return fmt.Errorf("conll: writing sentence: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("conll: writing sentence: %w", err)
	}
	return nil
}

// WriteAll writes sentences to w, each followed by its blank separator
// line.
func WriteAll(w io.Writer, sentences []Sentence) error {
	for _, sent := range sentences {
		if err := Write(w, sent); err != nil {
			return err
		}
	}
	return nil
}

// ParseRow parses one tab-separated CoNLL row.
func ParseRow(line string) (Row, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != numFields {
		return Row{}, fmt.Errorf("%w: %d fields, want %d", ErrFormat, len(fields), numFields)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Row{}, fmt.Errorf("%w: ID %q is not a number", ErrFormat, fields[0])
	}
	head, err := strconv.Atoi(fields[6])
	if err != nil {
		return Row{}, fmt.Errorf("%w: HEAD %q is not a number", ErrFormat, fields[6])
	}
	return Row{
		ID:      id,
		Form:    fromBlank(fields[1]),
		CPosTag: fromBlank(fields[3]),
		PosTag:  fromBlank(fields[4]),
		Head:    head,
		DepRel:  fromBlank(fields[7]),
	}, nil
}

func fromBlank(s string) string {
	if s == blank {
		return ""
	}
	return s
}

// Read parses every sentence in r. Comment lines starting with '#' are
// skipped; blank lines close the current sentence.
func Read(r io.Reader) ([]Sentence, error) {
	var (
		sentences []Sentence
		current   Sentence
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				sentences = append(sentences, current)
				current = nil
			}
			continue
		}
		row, err := ParseRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		current = append(current, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("conll: reading: %w", err)
	}
	if len(current) > 0 {
		sentences = append(sentences, current)
	}
	return sentences, nil
}

// ReadFile parses every sentence in the file at path.
func ReadFile(path string) ([]Sentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("conll: %w", err)
	}
	defer f.Close()

	sentences, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sentences, nil
}
