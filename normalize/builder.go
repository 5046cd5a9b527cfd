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

package normalize

import (
	"remerr.dev/field"
)

// Default wording for the configurable parts of the normalized messages.
//
// These are deliberately exported as constants: the exact wording is a
// presentation choice, not a contract, and callers may replace any of them
// at build time via the WithX options. The message FORMATS for the
// no_response and client outcomes ("No response received: <detail>",
// "Unexpected client error: <detail>") are fixed and not configurable.
const (
	// DefaultPayloadFallback is used when a server error payload exists but
	// the selected field is absent, empty, or not a string.
	DefaultPayloadFallback = "An error occurred."

	// DefaultNoResponseMarker is the generic detail used when the transport
	// reported no failure description for an unanswered call.
	DefaultNoResponseMarker = "unknown request error"

	// DefaultClientMarker is the generic detail used when a shapeless raw
	// value carries no failure description at all.
	DefaultClientMarker = "unknown error"
)

type builder struct {
	// selector names the payload field surfaced for server_payload errors.
	selector field.Selector

	// payloadFallback replaces the message when the selected field cannot
	// be extracted from the payload.
	payloadFallback string

	// noResponseMarker is the generic detail for unanswered calls.
	noResponseMarker string

	// clientMarker is the generic detail for shapeless failures.
	clientMarker string
}

// newBuilder creates a builder pre-seeded with the library defaults.
func newBuilder() *builder {
	return &builder{
		selector:         field.Default(),
		payloadFallback:  DefaultPayloadFallback,
		noResponseMarker: DefaultNoResponseMarker,
		clientMarker:     DefaultClientMarker,
	}
}
