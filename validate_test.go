package condep

import (
	"errors"
	"testing"

	"github.com/treebank-tools/go-condep/conll"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		relations []Relation
		wantErr   bool
	}{
		{
			name:      "empty",
			relations: nil,
			wantErr:   false,
		},
		{
			name:      "single token",
			relations: []Relation{{Dependent: 1, Head: 0}},
			wantErr:   false,
		},
		{
			name: "chain",
			relations: []Relation{
				{Dependent: 1, Head: 2},
				{Dependent: 2, Head: 3},
				{Dependent: 3, Head: 0},
			},
			wantErr: false,
		},
		{
			name: "flat attachment",
			relations: []Relation{
				{Dependent: 1, Head: 3},
				{Dependent: 2, Head: 3},
				{Dependent: 3, Head: 0},
			},
			wantErr: false,
		},
		{
			name: "no root",
			relations: []Relation{
				{Dependent: 1, Head: 2},
				{Dependent: 2, Head: 1},
			},
			wantErr: true,
		},
		{
			name: "two roots",
			relations: []Relation{
				{Dependent: 1, Head: 0},
				{Dependent: 2, Head: 0},
			},
			wantErr: true,
		},
		{
			name: "duplicate dependent",
			relations: []Relation{
				{Dependent: 1, Head: 0},
				{Dependent: 1, Head: 2},
			},
			wantErr: true,
		},
		{
			name: "dependent out of range",
			relations: []Relation{
				{Dependent: 5, Head: 0},
			},
			wantErr: true,
		},
		{
			name: "head out of range",
			relations: []Relation{
				{Dependent: 1, Head: 9},
			},
			wantErr: true,
		},
		{
			name: "cycle below root",
			relations: []Relation{
				{Dependent: 1, Head: 0},
				{Dependent: 2, Head: 3},
				{Dependent: 3, Head: 2},
			},
			wantErr: true,
		},
		{
			name: "self loop",
			relations: []Relation{
				{Dependent: 1, Head: 0},
				{Dependent: 2, Head: 2},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.relations)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTree) {
					t.Errorf("Validate = %v, want ErrInvalidTree", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate = %v, want nil", err)
			}
		})
	}
}

func TestValidateSentence(t *testing.T) {
	good := conll.Sentence{
		{ID: 1, Form: "dog", PosTag: "NN", Head: 2, DepRel: "X"},
		{ID: 2, Form: "barks", PosTag: "VBZ", Head: 0, DepRel: "X"},
	}
	if err := ValidateSentence(good); err != nil {
		t.Errorf("ValidateSentence(good) = %v, want nil", err)
	}

	bad := conll.Sentence{
		{ID: 1, Form: "dog", PosTag: "NN", Head: 2, DepRel: "X"},
		{ID: 2, Form: "barks", PosTag: "VBZ", Head: 1, DepRel: "X"},
	}
	if err := ValidateSentence(bad); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("ValidateSentence(bad) = %v, want ErrInvalidTree", err)
	}
}
