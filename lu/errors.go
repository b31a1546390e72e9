// SPDX-License-Identifier: MIT
// Package lu: sentinel error set.
// Precondition violations are returned as errors; numerical breakdown of the
// no-pivot kernels is never an error (Inf/NaN propagate into the buffer).
// Panics are reserved for programmer errors (double MarkReady, bad options).

package lu

import "errors"

var (
	// ErrUnknownBackend indicates a backend name outside the registered set.
	ErrUnknownBackend = errors.New("lu: unknown backend")

	// ErrInvalidConfig wraps every Config.Validate failure.
	ErrInvalidConfig = errors.New("lu: invalid config")

	// ErrSingular is reported only by the pivoted LAPACK backend when an exact
	// zero pivot remains after pivoting. The factors are still written.
	ErrSingular = errors.New("lu: singular matrix")

	// ErrAlreadyReady is the panic value raised when a row is marked ready twice.
	ErrAlreadyReady = errors.New("lu: row already marked ready")
)
