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

package apis

import "remerr.dev/field"

// Normalizer is an immutable, concurrency-safe view of a configured error
// normalizer. It classifies a raw error value from a failed remote call into
// exactly one category and produces a single normalized Go error for it.
type Normalizer interface {
	// Normalize classifies raw and returns the normalized error.
	//
	// The returned error is ALWAYS non-nil: this operation only ever runs
	// after an upstream failure, so there is no success path. Malformed or
	// shapeless raw values are absorbed into the fallback messages —
	// Normalize itself never fails and never panics.
	//
	// Normalize is pure and synchronous. Implementations must not perform
	// I/O, must not retain raw, and must return the same message for the
	// same input every time.
	Normalize(raw any) error

	// Explain returns a human-readable trace of how raw was classified and
	// where its message came from. It is intended for inspection, logging
	// and tests, not for stable machine parsing.
	Explain(raw any) string

	// Field returns the payload field selector this normalizer was built
	// with. The selector is fixed at construction time.
	Field() field.Selector
}
