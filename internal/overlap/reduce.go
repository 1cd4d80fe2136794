// Package overlap reduces tuple sequences to synonym leaders and scores how
// many suspect tuples reappear in the original.
//
// Reduce rewrites words strictly on token boundaries, so a mapping for "cat"
// leaves "category" untouched. Score counts every matching (original,
// suspect) pair, which means duplicated tuples on both sides can push the
// percentage above 100.
package overlap

import (
	"plagcheck/internal/textutil"
)

// Lookup resolves a word to its canonical leader.
type Lookup interface {
	Leader(word string) (string, bool)
}

// Reduce returns a new sequence where every word of every tuple is replaced by
// its leader when lookup knows one. Length and order are preserved and the
// input is left unchanged. A nil lookup copies the sequence.
func Reduce(tuples []textutil.Tuple, lookup Lookup) []textutil.Tuple {
	reduced := make([]textutil.Tuple, len(tuples))
	for i, tuple := range tuples {
		reduced[i] = reduceTuple(tuple, lookup)
	}
	return reduced
}

func reduceTuple(tuple textutil.Tuple, lookup Lookup) textutil.Tuple {
	if lookup == nil {
		return tuple
	}
	words := tuple.Words()
	changed := false
	for i, word := range words {
		if leader, ok := lookup.Leader(word); ok && leader != word {
			words[i] = leader
			changed = true
		}
	}
	if !changed {
		return tuple
	}
	return textutil.NewTuple(words)
}
