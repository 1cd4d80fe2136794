// Package faults defines the error taxonomy shared by the comparison pipeline
// and the CLI.
//
// Every failure is tagged with one of the exported sentinel markers so callers
// can classify it with errors.Is without parsing messages. Wrap keeps both the
// marker and the underlying cause reachable. None of these errors are
// retryable: a comparison either completes or aborts.
package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration   = errors.New("configuration error")
	ErrIO              = errors.New("io error")
	ErrNotFound        = fmt.Errorf("%w: not found", ErrIO)
	ErrIsDirectory     = fmt.Errorf("%w: is a directory", ErrIO)
	ErrEmptyComparison = errors.New("empty comparison")
)

// Kind labels returned by Kind.
const (
	KindConfiguration   = "configuration"
	KindIO              = "io"
	KindEmptyComparison = "empty_comparison"
	KindInternal        = "internal"
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker. The marker should be one of the sentinels above;
// with a nil marker the error is returned untagged and classifies as internal.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	switch {
	case marker == nil && err != nil:
		return fmt.Errorf("%s: %w", detail, err)
	case marker == nil:
		return errors.New(detail)
	case err != nil:
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	default:
		return fmt.Errorf("%w: %s", marker, detail)
	}
}

// Configuration is shorthand for Wrap(ErrConfiguration, ...) without a cause.
func Configuration(stage, message string) error {
	return Wrap(ErrConfiguration, stage, "", message, nil)
}

// Kind classifies err into one of the Kind* labels.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrIO):
		return KindIO
	case errors.Is(err, ErrEmptyComparison):
		return KindEmptyComparison
	default:
		return KindInternal
	}
}

// ExitCode maps an error to the process exit status used by the CLI.
func ExitCode(err error) int {
	switch Kind(err) {
	case "":
		return 0
	case KindConfiguration:
		return 2
	case KindIO:
		return 3
	case KindEmptyComparison:
		return 4
	default:
		return 1
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "comparison failure"
	}
	return strings.Join(parts, ": ")
}
