package compare

import (
	"fmt"
	"strconv"
	"strings"

	"plagcheck/internal/faults"
)

// DefaultTupleLength is used when no tuple length is supplied.
const DefaultTupleLength = 3

// Options configures a Comparator.
type Options struct {
	TupleLength int
}

// DefaultOptions returns Options populated with package defaults.
func DefaultOptions() Options {
	return Options{TupleLength: DefaultTupleLength}
}

// Validate ensures the options can drive a comparison.
func (o Options) Validate() error {
	if o.TupleLength <= 0 {
		return faults.Configuration("options", fmt.Sprintf("tuple length must be >= 1, got %d", o.TupleLength))
	}
	return nil
}

// ParseTupleLength converts a command-line tuple length. Non-numeric input is
// a configuration error; range checks are left to Validate.
func ParseTupleLength(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, faults.Configuration("options", fmt.Sprintf("specified tuple length %q is not a valid number", value))
	}
	return n, nil
}
