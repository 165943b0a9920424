// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errors defines the failure value every query path surfaces to the caller.
// A failure carries a machine-readable kind, a human-readable message and, when the
// backend answered at all, the numeric HTTP status. The underlying cause is kept for
// diagnostics but never leaks into the message shown to the operator.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable failure category.
type Kind string

const (
	// Validation indicates the request was rejected before any backend call.
	Validation Kind = "validation"
	// Transport indicates the backend could not be reached at all.
	Transport Kind = "transport"
	// Remote indicates the backend answered with a non-success status.
	Remote Kind = "remote"
	// Unexpected covers every other failure during the exchange.
	Unexpected Kind = "unexpected"
	// Integrity indicates a successful response that does not line up with the request.
	Integrity Kind = "integrity"
)

// E wraps an error with kind, human-friendly message and optional status.
// Status is zero when no status code is available.
type E struct {
	Kind    Kind
	Message string
	Status  int
	Err     error
}

func (e *E) Error() string { return e.Message }

func (e *E) Unwrap() error { return e.Err }

// HasStatus reports whether the failure carries a transport-level status code.
func (e *E) HasStatus() bool { return e.Status != 0 }

// Detail renders kind, status and cause for logs.
func (e *E) Detail() string {
	s := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.HasStatus() {
		s = fmt.Sprintf("%s (status %d)", s, e.Status)
	}
	if e.Err != nil {
		s = fmt.Sprintf("%s: %v", s, e.Err)
	}
	return s
}

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// WithStatus builds a failure that carries a status code.
func WithStatus(kind Kind, msg string, status int) *E {
	return &E{Kind: kind, Message: msg, Status: status}
}

// As returns the failure wrapped in err, if any.
func As(err error) (*E, bool) {
	var e *E
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of err, or Unexpected for foreign errors.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return Unexpected
}

// StatusOf returns the status code carried by err, if any.
func StatusOf(err error) (int, bool) {
	if e, ok := As(err); ok && e.HasStatus() {
		return e.Status, true
	}
	return 0, false
}
