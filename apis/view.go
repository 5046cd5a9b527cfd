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

// ErrorView is a minimal, serializable representation of a normalized error.
//
// This is *not* what crosses the normalizer's output boundary — callers of
// Normalize only ever see a Go error whose message is the contract. The view
// exists for the code AROUND the failed call: structured logs, metrics
// labels, debugging dumps. Keeping it here (in apis) allows adapters and
// application code to share the same struct without importing the concrete
// error type.
type ErrorView struct {
	// Category is the canonical classification outcome, e.g. "no_response".
	Category string `json:"category"`

	// Message is the normalized, display-ready message.
	Message string `json:"message,omitempty"`

	// Retryable mirrors the default retry advice for the category.
	Retryable bool `json:"retryable"`
}
