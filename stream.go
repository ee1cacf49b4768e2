package condep

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/treebank-tools/go-condep/bracket"
)

// maxLineBytes bounds one input line. Bracketed sentences run a few
// kilobytes even for very long sentences; this guards against binary or
// concatenated input.
const maxLineBytes = 4 << 20

// ConvertStream converts a treebank line by line: one bracketed sentence
// per input line, one CoNLL block followed by a blank separator line per
// sentence. Lines starting with the comment prefix pass through
// unmodified and blank lines are dropped. A sentence that fails to parse
// is logged and skipped; an unresolved head aborts the stream, since
// every later sentence would trip over the same rule-table defect.
//
// With WithWorkers(n) greater than one, n sentences convert concurrently
// while the output order still matches the input order exactly.
func (c *Converter) ConvertStream(ctx context.Context, r io.Reader, w io.Writer) error {
	if c.workers <= 1 {
		return c.convertSequential(ctx, r, w)
	}
	return c.convertParallel(ctx, r, w)
}

func (c *Converter) convertSequential(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := newLineScanner(r)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		out, err := c.convertLine(scanner.Text(), lineNo)
		if err != nil {
			return err
		}
		if out == "" {
			continue
		}
		if _, err := io.WriteString(w, out); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// convertLine produces the output text for one input line; an empty
// string means the line contributes nothing. Parse failures are logged
// and swallowed, everything else is fatal.
func (c *Converter) convertLine(line string, lineNo int) (string, error) {
	if strings.HasPrefix(line, c.commentPrefix) {
		return line + "\n", nil
	}
	if strings.TrimSpace(line) == "" {
		return "", nil
	}
	block, err := c.Convert(line)
	if err != nil {
		if errors.Is(err, bracket.ErrSyntax) {
			c.logger.Warn("skipping malformed sentence", "line", lineNo, "err", err)
			return "", nil
		}
		return "", fmt.Errorf("line %d: %w", lineNo, err)
	}
	return block + "\n", nil
}

type streamJob struct {
	seq  int
	line string
}

type streamResult struct {
	seq int
	out string
}

func (c *Converter) convertParallel(ctx context.Context, r io.Reader, w io.Writer) error {
	g, ctx := errgroup.WithContext(ctx)

	jobs := make(chan streamJob, c.workers)
	g.Go(func() error {
		defer close(jobs)
		scanner := newLineScanner(r)
		seq := 0
		for scanner.Scan() {
			job := streamJob{seq: seq, line: scanner.Text()}
			seq++
			select {
			case jobs <- job:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		return nil
	})

	results := make(chan streamResult, c.workers)
	var workers sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		workers.Add(1)
		g.Go(func() error {
			defer workers.Done()
			for job := range jobs {
				out, err := c.convertLine(job.line, job.seq+1)
				if err != nil {
					return err
				}
				select {
				case results <- streamResult{seq: job.seq, out: out}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		workers.Wait()
		close(results)
	}()

	// Reassemble input order: buffer out-of-order results until the next
	// expected sequence number arrives.
	g.Go(func() error {
		pending := make(map[int]string)
		next := 0
		for res := range results {
			pending[res.seq] = res.out
			for {
				out, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if out == "" {
					continue
				}
				if _, err := io.WriteString(w, out); err != nil {
					return fmt.Errorf("writing output: %w", err)
				}
			}
		}
		return nil
	})

	return g.Wait()
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return scanner
}
