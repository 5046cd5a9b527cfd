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

// Package field defines the payload field selector for remerr normalizers.
//
// Where category answers "how did the call fail?", the selector answers
// "which field of the server's error body should become the user-facing
// message?". The set is closed on purpose:
//
//   - "error_message" — short, display-oriented (the default);
//   - "error_details" — longer, diagnostic.
//
// The selector is part of the normalizer's construction-time configuration.
// It never varies per call, so a single service picks one contract with its
// upstream APIs and sticks to it.
package field
