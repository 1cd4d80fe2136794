package overlap

import (
	"fmt"

	"plagcheck/internal/faults"
	"plagcheck/internal/textutil"
)

// TupleMatch records how many original tuples equal one suspect tuple.
type TupleMatch struct {
	Tuple   textutil.Tuple `json:"tuple"`
	Matches int            `json:"matches"`
}

// Result summarizes one scored comparison.
type Result struct {
	Matches        int          `json:"matches"`
	OriginalTuples int          `json:"original_tuples"`
	SuspectTuples  int          `json:"suspect_tuples"`
	Percent        int          `json:"percent"`
	Tuples         []TupleMatch `json:"-"`
}

// Ratio returns Matches / SuspectTuples, or 0 when there are no suspect tuples.
func (r Result) Ratio() float64 {
	if r.SuspectTuples == 0 {
		return 0
	}
	return float64(r.Matches) / float64(r.SuspectTuples)
}

// Score counts every pair (o, p) with o from original, p from suspect and
// o == p, then converts the count into a whole percentage of the suspect
// tuple count. An empty suspect sequence fails with ErrEmptyComparison.
func Score(original, suspect []textutil.Tuple) (Result, error) {
	if len(suspect) == 0 {
		return Result{}, faults.Wrap(faults.ErrEmptyComparison, "score", "",
			fmt.Sprintf("suspect document has no tuples (%d original tuples)", len(original)), nil)
	}

	counts := make(map[textutil.Tuple]int, len(original))
	for _, tuple := range original {
		counts[tuple]++
	}

	result := Result{
		OriginalTuples: len(original),
		SuspectTuples:  len(suspect),
		Tuples:         make([]TupleMatch, 0, len(suspect)),
	}
	for _, tuple := range suspect {
		n := counts[tuple]
		result.Matches += n
		result.Tuples = append(result.Tuples, TupleMatch{Tuple: tuple, Matches: n})
	}
	result.Percent = RoundPercent(result.Matches, result.SuspectTuples)
	return result, nil
}

// RoundPercent returns round(part / total * 100) rounding halves up, the same
// result as formatting the ratio with zero decimals. total must be positive.
func RoundPercent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return (part*200 + total) / (2 * total)
}
