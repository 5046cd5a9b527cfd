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

package category

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Category is the canonical, validated classification of a failed remote
// call.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with normalized values.
//
// Unlike an open-ended code registry, the category set is deliberately
// CLOSED: a failed remote call can end up in exactly one of the three
// structurally distinct outcomes declared in categories.go, and adding a
// fourth is a visible, intentional API change — not something callers can do
// by inventing a new string.
//
// IMPORTANT: Empty categories ("") are NOT allowed. Every normalized error
// MUST carry a category.
type Category string

var (
	// ErrCategoryInvalid is returned when a value cannot be parsed or
	// validated as a remerr category.
	//
	// Having a dedicated sentinel error makes it easier for callers and tests
	// to detect "this is about category membership" vs "this is some other
	// error".
	ErrCategoryInvalid = errors.New("remerr: invalid category")
)

// Ensure Category implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Category)(nil)
	_ encoding.TextUnmarshaler = (*Category)(nil)
)

// all is the membership table for the closed category set. Validation is a
// map lookup, not a format check: a string that merely "looks like" a
// category is still invalid unless it names one of the declared outcomes.
var all = map[Category]struct{}{
	ServerPayload: {},
	NoResponse:    {},
	Client:        {},
}

// Parse takes a user-provided string, normalizes it and validates membership
// in the closed set. On success it returns a canonical Category value.
func Parse(s string) (Category, error) {
	s = Normalize(s)
	c := Category(s)
	if err := Validate(c); err != nil {
		return "", err
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Category {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical category form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_';
//
// It does NOT guarantee that the result is a member of the set — callers
// should still call Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Category is one of the declared
// outcomes. The empty category ("") is considered invalid.
func Validate(c Category) error {
	if _, ok := all[c]; !ok {
		return ErrCategoryInvalid
	}
	return nil
}

// String returns the canonical string representation of the category.
func (c Category) String() string {
	return string(c)
}

// Retryable reports whether errors in this category are worth retrying by
// default.
//
// Only no_response is considered transient: the request reached the transport
// and simply never got an answer (network failure, timeout). A server that
// answered with an error payload has made a decision, and a malformed client
// call will be malformed again on the next attempt.
func Retryable(c Category) bool {
	return c == NoResponse
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (c Category) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Category) UnmarshalText(text []byte) error {
	// We copy into a buffer to avoid changing the input slice.
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
