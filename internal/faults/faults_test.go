package faults_test

import (
	"errors"
	"strings"
	"testing"

	"plagcheck/internal/faults"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("permission denied")
	err := faults.Wrap(faults.ErrIO, "reader", "open", "/tmp/orig.txt", base)
	if !errors.Is(err, faults.ErrIO) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"reader", "open", "/tmp/orig.txt", "permission denied"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutParts(t *testing.T) {
	err := faults.Wrap(faults.ErrEmptyComparison, "", "", "", nil)
	if err.Error() != "empty comparison: comparison failure" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestNotFoundAndIsDirectoryAreIO(t *testing.T) {
	for _, marker := range []error{faults.ErrNotFound, faults.ErrIsDirectory} {
		err := faults.Wrap(marker, "reader", "", "x", nil)
		if !errors.Is(err, faults.ErrIO) {
			t.Fatalf("expected %v to classify as io", err)
		}
		if faults.Kind(err) != faults.KindIO {
			t.Fatalf("Kind(%v) = %q", err, faults.Kind(err))
		}
	}
	if errors.Is(faults.ErrNotFound, faults.ErrIsDirectory) {
		t.Fatal("not found must not match is-a-directory")
	}
}

func TestKindAndExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind string
		code int
	}{
		{"nil", nil, "", 0},
		{"configuration", faults.Configuration("options", "tuple length must be >= 1"), faults.KindConfiguration, 2},
		{"io", faults.Wrap(faults.ErrNotFound, "reader", "", "a.txt", nil), faults.KindIO, 3},
		{"empty", faults.Wrap(faults.ErrEmptyComparison, "score", "", "", nil), faults.KindEmptyComparison, 4},
		{"internal", errors.New("boom"), faults.KindInternal, 1},
		{"untagged wrap", faults.Wrap(nil, "history", "insert", "", errors.New("locked")), faults.KindInternal, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := faults.Kind(tt.err); got != tt.kind {
				t.Fatalf("Kind() = %q, want %q", got, tt.kind)
			}
			if got := faults.ExitCode(tt.err); got != tt.code {
				t.Fatalf("ExitCode() = %d, want %d", got, tt.code)
			}
		})
	}
}
