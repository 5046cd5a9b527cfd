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

// Package category provides parsing, normalization and validation for the
// remerr classification outcomes.
//
// A "category" is the machine-readable answer to "how did the remote call
// fail?". Categories are meant to be:
//
//   - a closed, enumerable set (server_payload, no_response, client);
//   - lowercased, underscore-separated;
//   - suitable for use in JSON payloads and structured logs.
//
// IMPORTANT: Empty categories ("") are NOT allowed, and validation checks
// MEMBERSHIP — not format. A failed call classifies into exactly one of the
// declared outcomes; there is no way to smuggle a fourth one in through a
// well-formed string.
//
// This package defines the canonical representation and the functions that
// convert arbitrary user input to that canonical form.
package category
