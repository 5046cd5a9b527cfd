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
	"encoding"
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  no_response  ", "no_response"},
		{"to lower", "CLIENT", "client"},
		{"dash to underscore", "server-payload", "server_payload"},
		{"mixed", "  NO-RESPONSE  ", "no_response"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Category
	}{
		{"server payload", "server_payload", ServerPayload},
		{"with spaces", "  no_response  ", NoResponse},
		{"upper", "CLIENT", Client},
		{"dash", "server-payload", ServerPayload},
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
		{"unknown", "timeout"},
		{"well formed but not a member", "server_error"},
		{"garbage", "!@#"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if !errors.Is(err, ErrCategoryInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrCategoryInvalid", tt.in, err)
			}
			if got != "" {
				t.Fatalf("Parse(%q) on error must return empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate_ClosedSet(t *testing.T) {
	valid := []Category{ServerPayload, NoResponse, Client}
	for _, c := range valid {
		if err := Validate(c); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", c, err)
		}
	}

	invalid := []Category{
		"",               // empty
		"SERVER_PAYLOAD", // not normalized
		"no-response",    // dash
		"unknown",        // well-formed, not a member
	}
	for _, c := range invalid {
		if err := Validate(c); err == nil {
			t.Fatalf("Validate(%q) expected error", c)
		}
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("not_a_category")
}

func TestMustParse_SucceedsOnValid(t *testing.T) {
	c := MustParse("no_response")
	if c != NoResponse {
		t.Fatalf("MustParse(valid) = %q, want %q", c, NoResponse)
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(NoResponse) {
		t.Fatalf("NoResponse must be retryable")
	}
	if Retryable(ServerPayload) || Retryable(Client) {
		t.Fatalf("only NoResponse is retryable by default")
	}
}

func TestCategory_MarshalText(t *testing.T) {
	c := ServerPayload
	text, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "server_payload" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "server_payload")
	}

	// non-member should fail MarshalText
	invalid := Category("banana")
	if _, err := invalid.MarshalText(); err == nil {
		t.Fatalf("MarshalText() on non-member must return error")
	}
}

func TestCategory_UnmarshalText(t *testing.T) {
	var c Category
	if err := c.UnmarshalText([]byte("  NO-RESPONSE  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if c != NoResponse {
		t.Fatalf("UnmarshalText() = %q, want %q", c, NoResponse)
	}

	// invalid
	var bad Category
	if err := bad.UnmarshalText([]byte("nope")); err == nil {
		t.Fatalf("UnmarshalText() expected error for non-member input")
	}
}

func TestCategory_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Category)(nil)
	var _ encoding.TextUnmarshaler = (*Category)(nil)
}
