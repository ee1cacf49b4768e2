// Package condep converts constituency (phrase-structure) parse trees
// into dependency trees using head-percolation rules, and serializes the
// result as CoNLL rows.
//
// # Quick Start
//
//	conv, err := condep.New("head_rules.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	block, err := conv.Convert("(S (NP (NN dog)) (VP (VBZ barks)))")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(block)
//
// Whole treebanks convert through ConvertStream, which maps one
// bracketed sentence per input line to one CoNLL block per sentence.
//
// # How Conversion Works
//
// Labels are first cleaned of annotation suffixes (NP-SBJ becomes NP)
// and leaves numbered left to right from 1. The rule table then picks a
// head child for every constituent bottom-up, percolating the head leaf
// index upward. Each non-head child contributes one dependency edge from
// its head leaf to its parent's head leaf; the root's head leaf attaches
// to the artificial index 0. A category the table does not define falls
// back to its last child.
//
// # Thread Safety
//
// Converter is safe for concurrent use: the rule table is immutable and
// each conversion works on its own tree copy.
//
// # Rule Files
//
// See package headrules for the table format. The sample table under
// testdata/ covers the common Penn Treebank categories.
package condep
