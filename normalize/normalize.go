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
	"fmt"
	"strings"

	"remerr.dev"
	"remerr.dev/apis"
	"remerr.dev/category"
	"remerr.dev/field"
)

// Fixed message formats. The <detail> wording inside them is configurable
// (see options.go); the formats themselves are part of the contract.
const (
	noResponseFormat = "No response received: %s"
	clientFormat     = "Unexpected client error: %s"
)

// New constructs an immutable apis.Normalizer snapshot.
//
// The resulting apis.Normalizer is fully thread-safe and designed for
// long-lived reuse. Each build creates a self-contained instance — no shared
// references to global state or user-provided values remain mutable.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (field selector and wording).
//  2. Apply user-provided options.
//  3. Validate the field selector (closed set) and the wording (non-empty).
//  4. Freeze the result into an immutable snapshot.
//
// Errors returned from this function indicate an invalid selector or empty
// fallback wording.
func New(opts ...Option) (apis.Normalizer, error) {
	// (0) Start from library defaults.
	b := newBuilder()

	// (1) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (2) Validate. The selector must name a member of the closed field set;
	// the wording must be non-empty so that no outcome can produce a blank
	// user-facing message.
	if err := field.Validate(b.selector); err != nil {
		return nil, fmt.Errorf("normalize: invalid field selector %q: %w", b.selector, err)
	}
	if strings.TrimSpace(b.payloadFallback) == "" {
		return nil, fmt.Errorf("normalize: payload fallback must not be empty")
	}
	if strings.TrimSpace(b.noResponseMarker) == "" {
		return nil, fmt.Errorf("normalize: no-response marker must not be empty")
	}
	if strings.TrimSpace(b.clientMarker) == "" {
		return nil, fmt.Errorf("normalize: client marker must not be empty")
	}

	// (3) Freeze into a read-only snapshot.
	n := &normalizer{
		selector:         b.selector,
		payloadFallback:  b.payloadFallback,
		noResponseMarker: b.noResponseMarker,
		clientMarker:     b.clientMarker,
	}

	return n, nil
}

// normalizer is an immutable normalizer implementation. It holds only the
// construction-time configuration; every call is independent and stateless,
// so the instance is safe for concurrent use.
type normalizer struct {
	// selector names the payload field surfaced for server_payload errors.
	selector field.Selector

	// payloadFallback is the message used when the selected field cannot be
	// extracted from a present payload.
	payloadFallback string

	// noResponseMarker is the generic detail for unanswered calls.
	noResponseMarker string

	// clientMarker is the generic detail for shapeless failures.
	clientMarker string
}

// Normalize classifies raw into exactly one category and returns the
// normalized error.
//
// Resolution order (first match wins):
//
//  1. server_payload — a received response carries an error payload;
//  2. no_response — the request reached the transport, nothing came back;
//  3. client — everything else: nil, primitives, shapeless values.
//
// The returned error is always a non-nil *remerr.Error whose Error() string
// is the normalized message. It is returned directly — never wrapped in a
// second layer of signaling — so the caller sees the failure exactly once.
func (n *normalizer) Normalize(raw any) error {
	cause := causeOf(raw)

	// 1. A server that answered with an error payload is the most specific
	// outcome, regardless of what else the raw value carries.
	if data, ok := responseData(raw); ok {
		msg, _ := n.payloadMessage(data)
		return remerr.E(category.ServerPayload, msg, remerr.WithCauseOption(cause))
	}

	// 2. The call was handed to the transport but never answered.
	if requestReached(raw) {
		detail := messageOf(raw)
		if detail == "" {
			detail = n.noResponseMarker
		}
		return remerr.E(category.NoResponse, fmt.Sprintf(noResponseFormat, detail), remerr.WithCauseOption(cause))
	}

	// 3. Terminal fallback: the raw value is malformed or the call never
	// left the client. This branch accepts anything, so normalization
	// itself cannot fail.
	detail := messageOf(raw)
	if detail == "" {
		detail = n.clientMarker
	}
	return remerr.E(category.Client, fmt.Sprintf(clientFormat, detail), remerr.WithCauseOption(cause))
}

// Field returns the payload field selector this normalizer was built with.
func (n *normalizer) Field() field.Selector {
	return n.selector
}

// payloadMessage extracts the configured field from an untrusted payload.
//
// The payload is coerced defensively: anything that is not a non-nil
// structured mapping becomes an empty mapping, so a server returning an
// array, a bare string, or a malformed body can never make extraction fail.
// The boolean result reports whether the message came from the payload
// (true) or from the configured fallback (false).
func (n *normalizer) payloadMessage(data any) (string, bool) {
	payload := payloadMap(data)
	if v, ok := payload[n.selector.String()]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}
	return n.payloadFallback, false
}

// Explain produces a textual trace of how the normalizer classified a raw
// value and where its message came from.
//
// This is primarily a diagnostic tool: it shows which category matched and
// whether the message was extracted from the payload, substituted from the
// fallback, taken from the raw value's own detail, or filled with a generic
// marker.
//
// Example output:
//
//	category="server_payload" field="error_message"
//	message: source=payload -> "invalid cursor"
//
// Notes:
//   - source ∈ {payload | fallback | detail | marker}
//   - the quoted message is exactly what Normalize would signal
func (n *normalizer) Explain(raw any) string {
	var b strings.Builder

	if data, ok := responseData(raw); ok {
		msg, fromPayload := n.payloadMessage(data)
		source := "payload"
		if !fromPayload {
			source = "fallback"
		}
		_, _ = fmt.Fprintf(&b, "category=%q field=%q\n", category.ServerPayload, n.selector)
		_, _ = fmt.Fprintf(&b, "message: source=%s -> %q", source, msg)
		return b.String()
	}

	if requestReached(raw) {
		detail, source := messageOf(raw), "detail"
		if detail == "" {
			detail, source = n.noResponseMarker, "marker"
		}
		_, _ = fmt.Fprintf(&b, "category=%q field=%q\n", category.NoResponse, n.selector)
		_, _ = fmt.Fprintf(&b, "message: source=%s -> %q", source, fmt.Sprintf(noResponseFormat, detail))
		return b.String()
	}

	detail, source := messageOf(raw), "detail"
	if detail == "" {
		detail, source = n.clientMarker, "marker"
	}
	_, _ = fmt.Fprintf(&b, "category=%q field=%q\n", category.Client, n.selector)
	_, _ = fmt.Fprintf(&b, "message: source=%s -> %q", source, fmt.Sprintf(clientFormat, detail))
	return b.String()
}
