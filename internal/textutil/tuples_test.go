package textutil

import (
	"errors"
	"reflect"
	"testing"

	"plagcheck/internal/faults"
)

func TestNewTupleExtractorRejectsNonPositiveLength(t *testing.T) {
	for _, length := range []int{0, -1, -42} {
		_, err := NewTupleExtractor(length)
		if err == nil {
			t.Fatalf("NewTupleExtractor(%d) expected error", length)
		}
		if !errors.Is(err, faults.ErrConfiguration) {
			t.Fatalf("NewTupleExtractor(%d) error = %v, want configuration error", length, err)
		}
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		length int
		want   []Tuple
	}{
		{
			name:   "window of three",
			tokens: []string{"go", "for", "a", "run"},
			length: 3,
			want:   []Tuple{"go for a", "for a run"},
		},
		{
			name:   "window of one",
			tokens: []string{"hi", "there"},
			length: 1,
			want:   []Tuple{"hi", "there"},
		},
		{
			name:   "exact length",
			tokens: []string{"the", "cat", "sat"},
			length: 3,
			want:   []Tuple{"the cat sat"},
		},
		{
			name:   "shorter than window",
			tokens: []string{"one"},
			length: 3,
			want:   []Tuple{},
		},
		{
			name:   "no tokens",
			tokens: nil,
			length: 2,
			want:   []Tuple{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor, err := NewTupleExtractor(tt.length)
			if err != nil {
				t.Fatalf("NewTupleExtractor: %v", err)
			}
			got := extractor.Extract(tt.tokens)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTupleCountMatchesExtract(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f", "g"}
	for n := 0; n <= len(words); n++ {
		for length := 1; length <= len(words)+2; length++ {
			extractor, err := NewTupleExtractor(length)
			if err != nil {
				t.Fatalf("NewTupleExtractor(%d): %v", length, err)
			}
			got := len(extractor.Extract(words[:n]))
			want := max(n-length+1, 0)
			if got != want || TupleCount(n, length) != want {
				t.Fatalf("n=%d length=%d: extract=%d count=%d want %d", n, length, got, TupleCount(n, length), want)
			}
		}
	}
}

func TestTupleWordsRoundTrip(t *testing.T) {
	words := []string{"the", "quick", "fox"}
	tuple := NewTuple(words)
	if tuple.String() != "the quick fox" {
		t.Fatalf("unexpected tuple %q", tuple)
	}
	if !reflect.DeepEqual(tuple.Words(), words) {
		t.Fatalf("Words() = %q, want %q", tuple.Words(), words)
	}
	if Tuple("").Words() != nil {
		t.Fatal("expected nil words for empty tuple")
	}
}
