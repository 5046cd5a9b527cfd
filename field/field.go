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

package field

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Selector names the payload field that the normalizer extracts when a
// server-supplied error body is available.
//
// Different API contracts surface either a short error_message or a longer
// error_details string. The selector lets callers configure which one they
// want surfaced without touching the classification logic, and it is fixed
// once per normalizer — never chosen per call.
type Selector string

const (
	// Message selects the short, display-oriented "error_message" field.
	// This is the default.
	Message Selector = "error_message"

	// Details selects the longer, diagnostic "error_details" field.
	Details Selector = "error_details"
)

var (
	// ErrSelectorInvalid is returned when a value cannot be parsed or
	// validated as a payload field selector.
	ErrSelectorInvalid = errors.New("remerr: invalid field selector")
)

// Ensure Selector implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Selector)(nil)
	_ encoding.TextUnmarshaler = (*Selector)(nil)
)

// all is the membership table for the closed selector set.
var all = map[Selector]struct{}{
	Message: {},
	Details: {},
}

// Default returns the selector used when the caller does not choose one.
func Default() Selector {
	return Message
}

// Parse takes a user-provided string, normalizes it and validates membership
// in the closed selector set. On success it returns a canonical Selector.
func Parse(s string) (Selector, error) {
	s = Normalize(s)
	sel := Selector(s)
	if err := Validate(sel); err != nil {
		return "", err
	}
	return sel, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Selector {
	sel, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sel
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical selector form: trim, lowercase, '-' to '_'.
//
// It does NOT guarantee that the result is a member of the set — callers
// should still call Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Selector is one of the declared
// fields. The empty selector ("") is considered invalid; callers that want
// "not chosen" semantics should use Default() instead.
func Validate(s Selector) error {
	if _, ok := all[s]; !ok {
		return ErrSelectorInvalid
	}
	return nil
}

// String returns the canonical string representation of the selector,
// which is also the literal payload key it reads.
func (s Selector) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Selector) MarshalText() ([]byte, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (s *Selector) UnmarshalText(text []byte) error {
	raw := string(bytes.TrimSpace(text))
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
