// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

package easel

import (
	"errors"
	"fmt"
)

// Package errors for easel.
var (
	// ErrSystemExists is returned when a second System is created while
	// one is alive.
	ErrSystemExists = errors.New("easel: system already created")

	// ErrDisplayExists is returned when a second Display is created while
	// one is alive.
	ErrDisplayExists = errors.New("easel: display already created")

	// ErrNoBackend is returned when no driver backend is registered or
	// available. Import a backend package for its side effects, e.g.
	// driver/headless.
	ErrNoBackend = errors.New("easel: no driver backend available")

	// ErrUnknownBackend is returned when the backend named in
	// WithBackendName is not registered, or its availability probe fails.
	ErrUnknownBackend = errors.New("easel: unknown or unavailable backend")
)

// DisplayCreationError reports a failed Display construction: input-device
// acquisition or native mode-set failure. It carries the backend's raw
// diagnostic and is not retried.
type DisplayCreationError struct {
	// Reason names the construction step that failed.
	Reason string

	// Err is the backend's diagnostic.
	Err error
}

func (e *DisplayCreationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("easel: display creation failed: %s", e.Reason)
	}
	return fmt.Sprintf("easel: display creation failed: %s: %v", e.Reason, e.Err)
}

func (e *DisplayCreationError) Unwrap() error { return e.Err }

// AllocationError reports a failed pixel-buffer allocation.
type AllocationError struct {
	// Width, Height is the requested buffer size.
	Width, Height int

	// Err is the backend's diagnostic.
	Err error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("easel: cannot allocate %dx%d surface: %v", e.Width, e.Height, e.Err)
}

func (e *AllocationError) Unwrap() error { return e.Err }
