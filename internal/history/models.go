package history

import (
	"strconv"
	"time"
)

// Entry is one recorded comparison.
type Entry struct {
	ID            int64     `json:"id"`
	RunID         string    `json:"run_id"`
	CreatedAt     time.Time `json:"created_at"`
	SynonymsPath  string    `json:"synonyms_path"`
	OriginalPath  string    `json:"original_path"`
	SuspectPath   string    `json:"suspect_path"`
	TupleLength   int       `json:"tuple_length"`
	Matches       int       `json:"matches"`
	SuspectTuples int       `json:"suspect_tuples"`
	Percent       int       `json:"percent"`
}

// Score renders the stored percentage the way the CLI prints it.
func (e Entry) Score() string {
	return strconv.Itoa(e.Percent) + "%"
}
