package bench

import (
	"testing"

	"github.com/treebank-tools/go-condep/conll"
)

func TestEvaluate(t *testing.T) {
	gold := conll.Sentence{
		{ID: 1, Form: "the", Head: 2},
		{ID: 2, Form: "dog", Head: 3},
		{ID: 3, Form: "barks", Head: 0},
	}

	tests := []struct {
		name string
		pred conll.Sentence
		want Counts
	}{
		{
			name: "all heads correct",
			pred: conll.Sentence{
				{ID: 1, Head: 2},
				{ID: 2, Head: 3},
				{ID: 3, Head: 0},
			},
			want: Counts{Sentences: 1, Tokens: 3, CorrectHeads: 3, CompleteMatch: 1},
		},
		{
			name: "one head wrong",
			pred: conll.Sentence{
				{ID: 1, Head: 3},
				{ID: 2, Head: 3},
				{ID: 3, Head: 0},
			},
			want: Counts{Sentences: 1, Tokens: 3, CorrectHeads: 2},
		},
		{
			name: "prediction missing a token",
			pred: conll.Sentence{
				{ID: 1, Head: 2},
				{ID: 3, Head: 0},
			},
			want: Counts{Sentences: 1, Tokens: 3, CorrectHeads: 2},
		},
		{
			name: "empty prediction",
			pred: nil,
			want: Counts{Sentences: 1, Tokens: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.pred, gold); got != tt.want {
				t.Errorf("Evaluate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	c := Counts{Sentences: 4, Tokens: 10, CorrectHeads: 8, CompleteMatch: 2, Skipped: 1}
	m := Score(c)
	if m.UAS != 0.8 {
		t.Errorf("UAS = %v, want 0.8", m.UAS)
	}
	if m.CompleteRate != 0.5 {
		t.Errorf("CompleteRate = %v, want 0.5", m.CompleteRate)
	}
	if m.Counts != c {
		t.Errorf("Counts = %+v, want %+v", m.Counts, c)
	}
}

func TestScoreZeroCounts(t *testing.T) {
	m := Score(Counts{})
	if m.UAS != 0 || m.CompleteRate != 0 {
		t.Errorf("Score(zero) = %+v, want zero scores", m)
	}
}

func TestCountsAdd(t *testing.T) {
	a := Counts{Sentences: 1, Tokens: 3, CorrectHeads: 3, CompleteMatch: 1}
	b := Counts{Sentences: 1, Tokens: 2, CorrectHeads: 1, Skipped: 1}
	a.Add(b)
	want := Counts{Sentences: 2, Tokens: 5, CorrectHeads: 4, CompleteMatch: 1, Skipped: 1}
	if a != want {
		t.Errorf("Add() = %+v, want %+v", a, want)
	}
}
