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

// Package normalize turns the heterogeneous error values produced by failed
// remote calls into a single, predictable error representation.
//
// # Overview
//
// An HTTP or gRPC client call can fail in exactly three structurally
// distinct ways:
//
//  1. the server responded with an error body (category.ServerPayload);
//  2. the call reached the transport but no response arrived
//     (category.NoResponse);
//  3. the call could not be attempted or its failure could not be
//     interpreted (category.Client).
//
// A Normalizer classifies a raw error value into one of these outcomes and
// emits exactly one Go error carrying a plain, human-readable message.
//
// # Classification model
//
// Categories are resolved by an explicit, ordered check list — first match
// wins:
//
//  1. a received response with an error payload beats everything else;
//  2. otherwise, a request that reached the transport means no_response;
//  3. otherwise, the value is shapeless and classifies as client.
//
// The ordering matters for ambiguous inputs: a raw value that carries both a
// response payload and a request marker is a server_payload error, because
// the payload is the most specific information available.
//
// # Defensive extraction
//
// Nothing about the raw value's shape can be trusted — it may be nil, a
// primitive, or a mapping missing every expected field. The normalizer
// absorbs every malformed shape into a fallback message instead of failing:
// a payload that is not a non-nil structured mapping is treated as an empty
// mapping, and the configured field is read from that. Normalize never
// panics and never returns nil.
//
// # Building a normalizer
//
// A Normalizer is created once and reused:
//
//	n, err := normalize.New(
//	    normalize.WithField(field.Details),
//	)
//	if err != nil {
//	    // invalid selector, empty fallback wording, etc.
//	}
//
//	err = n.Normalize(raw) // always non-nil
//
// The payload fallback and the generic detail markers are configurable
// wording, not load-bearing contracts; the message FORMATS for the
// no_response and client outcomes are fixed.
//
// # Diagnostics
//
// For debugging and tests, Normalizer.Explain returns a human-readable trace
// of how a particular raw value was classified, including which category
// matched and where the message came from.
//
// This is intended for inspection and logging, not for stable machine
// parsing.
//
// # Immutability
//
// All options are applied to a builder and frozen during New. After
// construction the normalizer holds no mutable state, so a single instance
// is safe to share across handlers, goroutines, and requests, and repeated
// calls with the same input produce the identical message.
package normalize
