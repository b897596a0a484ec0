// Package errs defines the error kinds shared by every covercore component
// (spec §7): InputError, CoverInfeasible, VerificationFailed, and IOError.
// Each is a sentinel wrapped with call-site context via fmt.Errorf's %w, so
// callers can distinguish kinds with errors.Is while still getting a useful
// message at the process boundary.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInput marks a malformed CSV line: wrong arity, non-integer token,
	// symbol out of [1,25], or a duplicate mask in a target universe.
	ErrInput = errors.New("input error")

	// ErrCoverInfeasible marks a selector that drained its heap without
	// fully covering the target universe. Indicates upstream corruption.
	ErrCoverInfeasible = errors.New("cover infeasible")

	// ErrVerificationFailed marks an independent verification pass that
	// found unmarked ids in the chosen cover.
	ErrVerificationFailed = errors.New("verification failed")

	// ErrIO marks a failure opening, reading, or writing a file.
	ErrIO = errors.New("io error")
)

// InputErrorf reports a malformed line at path:line.
func InputErrorf(path string, line int, format string, args ...any) error {
	return fmt.Errorf("%s:%d: %w: %s", path, line, ErrInput, fmt.Sprintf(format, args...))
}

// IOError wraps err with ErrIO and an operation description.
func IOError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrIO, err)
}

// CoverInfeasiblef reports that the heap drained with ids still uncovered.
func CoverInfeasiblef(k int, remaining int64) error {
	return fmt.Errorf("k=%d: %w: %d ids remain uncovered after draining the heap", k, ErrCoverInfeasible, remaining)
}

// VerificationFailedf reports a count of ids missing from the cover.
func VerificationFailedf(k int, missing int64) error {
	return fmt.Errorf("k=%d: %w: %d ids missing", k, ErrVerificationFailed, missing)
}
