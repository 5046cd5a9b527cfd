/*
   Copyright 2026 The remerr Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package remerr

import (
	"remerr.dev/category"
)

// Error is the single normalized representation of a failed remote call.
//
// It carries:
//   - Category: which of the three classification outcomes matched (required);
//   - Message: the plain, human-readable message — the only contract that
//     crosses the output boundary;
//   - Cause: the raw error value that was normalized, when it was itself a
//     Go error, for errors.Is / errors.As chains and debugging.
//
// Error() deliberately returns ONLY the message. The message must stay
// suitable for direct display or logging, so it never embeds the category
// name, payload field names, or any structural hint about the raw value.
// Callers that need the classification programmatically read Category (or use
// apis.CategorizedError) instead of parsing the string.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Category is the classification outcome, e.g. category.ServerPayload.
	// Must be a member of the closed set in remerr.dev/category.
	Category category.Category

	// Message is the normalized, display-ready message. This is exactly what
	// Error() returns.
	Message string

	// Cause holds the raw error value (if it was an error). This is used for
	// errors.Is / errors.As and for debugging in lower layers; it is never
	// part of the message.
	Cause error
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return remerr.E(category.NoResponse, "No response received: timeout",
//	    remerr.WithCauseOption(err),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(c category.Category, msg string, opts ...Option) *Error {
	e := &Error{Category: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// It returns the normalized message verbatim — no category prefix, no cause
// suffix. The message is the whole user-visible contract.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorCategory returns the canonical category string. It satisfies
// apis.CategorizedError so adapters and logs can branch on the outcome
// without importing this concrete type.
func (e *Error) ErrorCategory() string {
	if e == nil {
		return ""
	}
	return string(e.Category)
}

// Retryable reports whether a retry layer should consider re-issuing the
// failed call. It is derived from the category alone: only no_response
// failures are transient by default.
func (e *Error) Retryable() bool {
	if e == nil {
		return false
	}
	return category.Retryable(e.Category)
}

// WithCategory returns a shallow copy of e with the given Category set.
// The original error is not modified.
func (e *Error) WithCategory(c category.Category) *Error {
	cp := *e
	cp.Category = c
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced message.
// Useful when a caller wants to keep the classification but present the
// message in a different language or context.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithCause returns a shallow copy of e with the given raw error attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
