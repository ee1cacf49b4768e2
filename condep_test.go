package condep

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/treebank-tools/go-condep/bracket"
	"github.com/treebank-tools/go-condep/conll"
	"github.com/treebank-tools/go-condep/headrules"
)

func mustTable(t *testing.T, src string) *headrules.Table {
	t.Helper()
	table, err := headrules.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parsing rule table: %v", err)
	}
	return table
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		rules string
		input string
		want  string
	}{
		{
			name:  "two token sentence",
			rules: "S: l VP\nVP: l VBZ\n",
			input: "(S (NP (NN dog)) (VP (VBZ barks)))",
			want: "1\tdog\t_\t_\tNN\t_\t2\tX\t_\t_\n" +
				"2\tbarks\t_\t_\tVBZ\t_\t0\tX\t_\t_\n",
		},
		{
			name:  "single leaf",
			rules: "",
			input: "(NN dog)",
			want:  "1\tdog\t_\t_\tNN\t_\t0\tX\t_\t_\n",
		},
		{
			name:  "untagged right rule takes rightmost child",
			rules: "S: r\n",
			input: "(S (A x) (B y) (C z))",
			want: "1\tx\t_\t_\tA\t_\t3\tX\t_\t_\n" +
				"2\ty\t_\t_\tB\t_\t3\tX\t_\t_\n" +
				"3\tz\t_\t_\tC\t_\t0\tX\t_\t_\n",
		},
		{
			name:  "right scan breaks ties toward the right",
			rules: "S: r NN\n",
			input: "(S (NN a) (NN b))",
			want: "1\ta\t_\t_\tNN\t_\t2\tX\t_\t_\n" +
				"2\tb\t_\t_\tNN\t_\t0\tX\t_\t_\n",
		},
		{
			name:  "tag priority outranks child position",
			rules: "VP: l NN VBZ\n",
			input: "(VP (VBZ runs) (NN dog))",
			want: "1\truns\t_\t_\tVBZ\t_\t2\tX\t_\t_\n" +
				"2\tdog\t_\t_\tNN\t_\t0\tX\t_\t_\n",
		},
		{
			name:  "undefined category falls back to last child",
			rules: "",
			input: "(X (A a) (B b))",
			want: "1\ta\t_\t_\tA\t_\t2\tX\t_\t_\n" +
				"2\tb\t_\t_\tB\t_\t0\tX\t_\t_\n",
		},
		{
			name:  "later rule applies when earlier fails",
			rules: "S: l MD; l VP\nVP: l VBZ\n",
			input: "(S (NP (NN dog)) (VP (VBZ barks)))",
			want: "1\tdog\t_\t_\tNN\t_\t2\tX\t_\t_\n" +
				"2\tbarks\t_\t_\tVBZ\t_\t0\tX\t_\t_\n",
		},
		{
			name:  "annotation suffixes drop from lookup and output",
			rules: "S: l VP\nVP: l VBZ\nNP: r NN\n",
			input: "(S (NP-SBJ (NN-1 dog)) (VP (VBZ barks)))",
			want: "1\tdog\t_\t_\tNN\t_\t2\tX\t_\t_\n" +
				"2\tbarks\t_\t_\tVBZ\t_\t0\tX\t_\t_\n",
		},
		{
			name:  "empty category tag renders as placeholder",
			rules: "",
			input: "(NP (-NONE- *))",
			want:  "1\t*\t_\t_\t_\t_\t0\tX\t_\t_\n",
		},
		{
			name:  "unlabeled wrapper adds nothing",
			rules: "S: l VP\nVP: l VBZ\n",
			input: "( (S (NP (NN dog)) (VP (VBZ barks))) )",
			want: "1\tdog\t_\t_\tNN\t_\t2\tX\t_\t_\n" +
				"2\tbarks\t_\t_\tVBZ\t_\t0\tX\t_\t_\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := NewWithTable(mustTable(t, tt.rules))
			got, err := conv.Convert(tt.input)
			if err != nil {
				t.Fatalf("Convert(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Convert(%q) =\n%q\nwant\n%q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertDeterministic(t *testing.T) {
	conv := NewWithTable(mustTable(t, "S: l VP\nVP: l VBZ\n"))
	input := "(S (NP (NN dog)) (VP (VBZ barks)))"
	first, err := conv.Convert(input)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	second, err := conv.Convert(input)
	if err != nil {
		t.Fatalf("second Convert error: %v", err)
	}
	if first != second {
		t.Errorf("repeated conversion differs:\n%q\n%q", first, second)
	}
}

func TestConvertTreeLeavesInputIntact(t *testing.T) {
	tree, err := bracket.Parse("(S (NP-SBJ (NN dog)) (VP (VBZ barks)))")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	before := tree.String()
	conv := NewWithTable(mustTable(t, "S: l VP\nVP: l VBZ\n"))
	if _, err := conv.ConvertTree(tree); err != nil {
		t.Fatalf("ConvertTree error: %v", err)
	}
	if after := tree.String(); after != before {
		t.Errorf("input tree changed from %q to %q", before, after)
	}
}

func TestConvertSyntaxError(t *testing.T) {
	conv := NewWithTable(mustTable(t, ""))
	_, err := conv.Convert("(S (NN dog")
	if !errors.Is(err, bracket.ErrSyntax) {
		t.Fatalf("error = %v, want bracket.ErrSyntax", err)
	}
}

func TestConvertUnresolvedHead(t *testing.T) {
	conv := NewWithTable(mustTable(t, "S: l VP\n"))
	_, err := conv.Convert("(S (A x) (B y))")
	if !errors.Is(err, ErrUnresolvedHead) {
		t.Fatalf("error = %v, want ErrUnresolvedHead", err)
	}
	if !strings.Contains(err.Error(), `"S"`) {
		t.Errorf("error %q does not name the failing category", err)
	}
}

func TestRelations(t *testing.T) {
	conv := NewWithTable(mustTable(t, "S: l VP\nVP: l VBZ\n"))
	tree, err := bracket.Parse("(S (NP (DT the) (NN dog)) (VP (VBZ barks)))")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	got, err := conv.Relations(tree)
	if err != nil {
		t.Fatalf("Relations error: %v", err)
	}
	want := []Relation{
		{Dependent: 1, Head: 2},
		{Dependent: 2, Head: 3},
		{Dependent: 3, Head: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Relations = %v, want %v", got, want)
	}
}

func TestConvertOutputValidates(t *testing.T) {
	conv := NewWithTable(mustTable(t, "S: l VP\nVP: l VBZ VBD\nNP: r NN NNS\n"))
	inputs := []string{
		"(S (NP (DT the) (NN dog)) (VP (VBZ barks)))",
		"(S (NP (NN trade)) (VP (VBD fell) (NP (NNS points))))",
		"(NN yes)",
	}
	for _, input := range inputs {
		tree, err := bracket.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", input, err)
		}
		sent, err := conv.ConvertTree(tree)
		if err != nil {
			t.Fatalf("ConvertTree(%q) error: %v", input, err)
		}
		if err := ValidateSentence(sent); err != nil {
			t.Errorf("output for %q fails validation: %v", input, err)
		}
	}
}

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.txt")
	if err := os.WriteFile(path, []byte("S: l VP\nVP: l VBZ\n"), 0o644); err != nil {
		t.Fatalf("writing rules: %v", err)
	}
	conv, err := New(path)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	got, err := conv.Convert("(S (NP (NN dog)) (VP (VBZ barks)))")
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if !strings.Contains(got, "2\tbarks\t_\t_\tVBZ\t_\t0\tX\t_\t_") {
		t.Errorf("unexpected output %q", got)
	}
}

func TestNewMissingRuleFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestWithRelationLabel(t *testing.T) {
	conv := NewWithTable(mustTable(t, ""), WithRelationLabel("dep"))
	got, err := conv.Convert("(NN dog)")
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	want := "1\tdog\t_\t_\tNN\t_\t0\tdep\t_\t_\n"
	if got != want {
		t.Errorf("Convert = %q, want %q", got, want)
	}
}

// TestConvertSampleTreebank pins the shipped sample corpus: converting
// testdata/sample.bracketed with testdata/head_rules.txt must reproduce
// testdata/sample_gold.conll sentence for sentence.
func TestConvertSampleTreebank(t *testing.T) {
	conv, err := New(filepath.Join("testdata", "head_rules.txt"))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	gold, err := conll.ReadFile(filepath.Join("testdata", "sample_gold.conll"))
	if err != nil {
		t.Fatalf("reading gold corpus: %v", err)
	}

	f, err := os.Open(filepath.Join("testdata", "sample.bracketed"))
	if err != nil {
		t.Fatalf("opening sample treebank: %v", err)
	}
	defer f.Close()

	i := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		if i >= len(gold) {
			t.Fatalf("more trees than gold sentences (%d)", len(gold))
		}
		got, err := conv.Convert(line)
		if err != nil {
			t.Fatalf("Convert(sentence %d) error: %v", i+1, err)
		}
		if want := conll.Format(gold[i]); got != want {
			t.Errorf("sentence %d:\ngot\n%swant\n%s", i+1, got, want)
		}
		i++
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("reading sample treebank: %v", err)
	}
	if i != len(gold) {
		t.Errorf("converted %d sentences, gold has %d", i, len(gold))
	}
}
