package bench

import "github.com/treebank-tools/go-condep/conll"

// Counts accumulates raw attachment comparisons over a corpus.
type Counts struct {
	Sentences     int // sentences evaluated
	Tokens        int // gold tokens compared
	CorrectHeads  int // tokens whose predicted head matches gold
	CompleteMatch int // sentences with every head correct
	Skipped       int // sentences the converter could not parse
}

// Add merges other into c.
func (c *Counts) Add(other Counts) {
	c.Sentences += other.Sentences
	c.Tokens += other.Tokens
	c.CorrectHeads += other.CorrectHeads
	c.CompleteMatch += other.CompleteMatch
	c.Skipped += other.Skipped
}

// Metrics holds the derived attachment scores for a corpus.
type Metrics struct {
	UAS          float64 // unlabeled attachment score: correct heads / gold tokens
	CompleteRate float64 // fraction of evaluated sentences fully correct
	Counts
}

// Score derives attachment metrics from raw counts.
func Score(c Counts) Metrics {
	m := Metrics{Counts: c}
	if c.Tokens > 0 {
		m.UAS = float64(c.CorrectHeads) / float64(c.Tokens)
	}
	if c.Sentences > 0 {
		m.CompleteRate = float64(c.CompleteMatch) / float64(c.Sentences)
	}
	return m
}

// Evaluate compares one predicted sentence against its gold analysis,
// matching rows by token ID. Gold defines the token set: predicted rows
// with IDs outside it contribute nothing.
func Evaluate(pred, gold conll.Sentence) Counts {
	predHeads := make(map[int]int, len(pred))
	for _, row := range pred {
		predHeads[row.ID] = row.Head
	}

	c := Counts{Sentences: 1, Tokens: len(gold)}
	for _, row := range gold {
		if head, ok := predHeads[row.ID]; ok && head == row.Head {
			c.CorrectHeads++
		}
	}
	if len(gold) > 0 && c.CorrectHeads == len(gold) {
		c.CompleteMatch = 1
	}
	return c
}
