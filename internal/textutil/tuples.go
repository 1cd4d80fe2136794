package textutil

import (
	"fmt"
	"strings"

	"plagcheck/internal/faults"
)

// Tuple is a fixed-length run of consecutive tokens joined by single spaces.
type Tuple string

// NewTuple joins words into a Tuple.
func NewTuple(words []string) Tuple {
	return Tuple(strings.Join(words, " "))
}

// Words splits the tuple back into its tokens.
func (t Tuple) Words() []string {
	if t == "" {
		return nil
	}
	return strings.Split(string(t), " ")
}

func (t Tuple) String() string {
	return string(t)
}

// TupleExtractor slides a window of Length tokens over a token sequence.
type TupleExtractor struct {
	length int
}

// NewTupleExtractor validates the window length once so Extract never fails.
func NewTupleExtractor(length int) (TupleExtractor, error) {
	if length <= 0 {
		return TupleExtractor{}, faults.Configuration("tuple extractor", fmt.Sprintf("tuple length must be >= 1, got %d", length))
	}
	return TupleExtractor{length: length}, nil
}

// Length returns the configured window width.
func (e TupleExtractor) Length() int {
	return e.length
}

// Extract returns one tuple per valid start index in document order. A token
// sequence shorter than the window yields an empty, non-nil slice.
func (e TupleExtractor) Extract(tokens []string) []Tuple {
	count := TupleCount(len(tokens), e.length)
	tuples := make([]Tuple, 0, count)
	for i := 0; i < count; i++ {
		tuples = append(tuples, NewTuple(tokens[i:i+e.length]))
	}
	return tuples
}

// TupleCount reports max(tokens-length+1, 0), the number of windows of the
// given length over a sequence of tokens. Non-positive lengths yield 0.
func TupleCount(tokens, length int) int {
	if length <= 0 || tokens < length {
		return 0
	}
	return tokens - length + 1
}
