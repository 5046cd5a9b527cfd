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
	"encoding"
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	if Default() != Message {
		t.Fatalf("Default() = %q, want %q", Default(), Message)
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Selector
	}{
		{"message", "error_message", Message},
		{"details", "error_details", Details},
		{"with spaces", "  error_message  ", Message},
		{"upper", "ERROR_DETAILS", Details},
		{"dash", "error-message", Message},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"unknown field", "error_code"},
		{"partial", "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if !errors.Is(err, ErrSelectorInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrSelectorInvalid", tt.in, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Message); err != nil {
		t.Fatalf("Validate(Message) unexpected error: %v", err)
	}
	if err := Validate(Details); err != nil {
		t.Fatalf("Validate(Details) unexpected error: %v", err)
	}
	if err := Validate(""); err == nil {
		t.Fatalf("Validate(\"\") expected error")
	}
	if err := Validate("error_text"); err == nil {
		t.Fatalf("Validate(non-member) expected error")
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("not_a_field")
}

func TestSelector_String_IsPayloadKey(t *testing.T) {
	// The selector string doubles as the literal payload key.
	if Message.String() != "error_message" {
		t.Fatalf("Message.String() = %q", Message.String())
	}
	if Details.String() != "error_details" {
		t.Fatalf("Details.String() = %q", Details.String())
	}
}

func TestSelector_TextRoundTrip(t *testing.T) {
	text, err := Details.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	var s Selector
	if err := s.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if s != Details {
		t.Fatalf("round trip = %q, want %q", s, Details)
	}

	invalid := Selector("nope")
	if _, err := invalid.MarshalText(); err == nil {
		t.Fatalf("MarshalText() on non-member must return error")
	}
	var bad Selector
	if err := bad.UnmarshalText([]byte("nope")); err == nil {
		t.Fatalf("UnmarshalText() expected error for non-member input")
	}
}

func TestSelector_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Selector)(nil)
	var _ encoding.TextUnmarshaler = (*Selector)(nil)
}
