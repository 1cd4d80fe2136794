package compare

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"plagcheck/internal/faults"
	"plagcheck/internal/logging"
	"plagcheck/internal/overlap"
	"plagcheck/internal/synonyms"
	"plagcheck/internal/textutil"
)

// Reader materializes a named input as text.
type Reader interface {
	Read(path string) (string, error)
}

// Input carries already-read text for one comparison.
type Input struct {
	Synonyms string
	Original string
	Suspect  string
}

// Sources names the files backing one comparison.
type Sources struct {
	Synonyms string `json:"synonyms"`
	Original string `json:"original"`
	Suspect  string `json:"suspect"`
}

// Result is the outcome of one comparison.
type Result struct {
	overlap.Result
	TupleLength  int    `json:"tuple_length"`
	SynonymWords int    `json:"synonym_words"`
	Score        string `json:"score"`
}

// String returns the percentage formatted for display, e.g. "42%".
func (r Result) String() string {
	return FormatPercent(r.Percent)
}

// FormatPercent renders a whole percentage with a trailing percent sign.
func FormatPercent(percent int) string {
	return strconv.Itoa(percent) + "%"
}

// Comparator runs comparisons with a fixed tuple length.
type Comparator struct {
	extractor textutil.TupleExtractor
	logger    *slog.Logger
}

// New validates opts and returns a Comparator. A nil logger disables logging.
func New(opts Options, logger *slog.Logger) (*Comparator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	extractor, err := textutil.NewTupleExtractor(opts.TupleLength)
	if err != nil {
		return nil, err
	}
	return &Comparator{
		extractor: extractor,
		logger:    logging.NewComponentLogger(logger, "compare"),
	}, nil
}

// TupleLength returns the validated window width.
func (c *Comparator) TupleLength() int {
	return c.extractor.Length()
}

// Compare scores in.Suspect against in.Original, treating synonym groups from
// in.Synonyms as equal words.
func (c *Comparator) Compare(ctx context.Context, in Input) (Result, error) {
	logger := logging.WithContext(ctx, c.logger)

	originalTokens := textutil.Tokenize(in.Original)
	suspectTokens := textutil.Tokenize(in.Suspect)
	table := synonyms.Parse(in.Synonyms)
	logger.Debug("inputs normalized",
		logging.Int("original_tokens", len(originalTokens)),
		logging.Int("suspect_tokens", len(suspectTokens)),
		logging.Int("synonym_words", table.Len()),
	)

	original := overlap.Reduce(c.extractor.Extract(originalTokens), table)
	suspect := overlap.Reduce(c.extractor.Extract(suspectTokens), table)

	result, err := c.score(original, suspect, table)
	if err != nil {
		return Result{}, err
	}
	logger.Info("comparison scored",
		logging.Int("matches", result.Matches),
		logging.Int("suspect_tuples", result.SuspectTuples),
		logging.String("score", result.Score),
	)
	return result, nil
}

// CompareFiles reads the original, suspect, and synonym sources through reader
// in that order and compares them. Read failures abort before any scoring.
func (c *Comparator) CompareFiles(ctx context.Context, reader Reader, src Sources) (Result, error) {
	if reader == nil {
		return Result{}, faults.Configuration("compare", "reader is required")
	}
	var in Input
	var err error
	if in.Original, err = reader.Read(src.Original); err != nil {
		return Result{}, fmt.Errorf("original: %w", err)
	}
	if in.Suspect, err = reader.Read(src.Suspect); err != nil {
		return Result{}, fmt.Errorf("suspect: %w", err)
	}
	if in.Synonyms, err = reader.Read(src.Synonyms); err != nil {
		return Result{}, fmt.Errorf("synonyms: %w", err)
	}
	logging.WithContext(ctx, c.logger).Debug("inputs read",
		logging.String("original", src.Original),
		logging.String("suspect", src.Suspect),
		logging.String("synonyms", src.Synonyms),
	)
	return c.Compare(ctx, in)
}

// Prepare normalizes text and returns its tuples reduced through table. It
// lets callers reuse one table and one suspect across many originals.
func (c *Comparator) Prepare(text string, table *synonyms.Table) []textutil.Tuple {
	return overlap.Reduce(c.extractor.Extract(textutil.Tokenize(text)), table)
}

// ScorePrepared scores tuple sequences produced by Prepare with the same table.
func (c *Comparator) ScorePrepared(original, suspect []textutil.Tuple, table *synonyms.Table) (Result, error) {
	return c.score(original, suspect, table)
}

func (c *Comparator) score(original, suspect []textutil.Tuple, table *synonyms.Table) (Result, error) {
	scored, err := overlap.Score(original, suspect)
	if err != nil {
		return Result{}, fmt.Errorf("suspect document is shorter than %d words: %w", c.TupleLength(), err)
	}
	return Result{
		Result:       scored,
		TupleLength:  c.TupleLength(),
		SynonymWords: table.Len(),
		Score:        FormatPercent(scored.Percent),
	}, nil
}
