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

// CategorizedError represents a normalized error that knows which of the
// closed classification outcomes it belongs to.
//
// The category answers the question "how did the remote call fail?":
//   - "server_payload" — the server answered with an error body,
//   - "no_response"    — the call was sent but never answered,
//   - "client"         — the call could not be attempted or interpreted.
//
// Categories are stable and enumerable. They are the value that retry
// layers and logging code should branch on — NOT the message string, which
// is a display artifact and may be reworded via configuration.
//
// Implementations are expected to return a *canonicalized* category string,
// i.e. one of the members of the remerr.dev/category set. Callers should
// treat unknown or empty categories as the client outcome.
type CategorizedError interface {
	error

	// ErrorCategory returns the machine-readable classification outcome.
	//
	// The returned value MUST already be normalized according to the rules
	// of the remerr/category package. Callers should not try to "fix" or
	// "guess" the value here.
	ErrorCategory() string
}

// RetryableError represents an error that can advise a retry layer.
//
// Having a separate interface lets retry code act on any error that carries
// the advice, without importing the concrete normalized error type. Errors
// that do not implement it should be treated as non-retryable.
type RetryableError interface {
	error

	// Retryable reports whether re-issuing the failed call may succeed.
	Retryable() bool
}
