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

// The closed set of classification outcomes.
//
// A remote call can fail in exactly three structurally distinct ways, and
// each one needs a different user-facing message. The categories below are
// checked in priority order by the normalizer (server_payload first,
// no_response second, client last) — they are matched, not inferred from the
// dynamic type of the raw value, so precedence decides ambiguous inputs.
const (
	// ServerPayload indicates that the server responded, and the response
	// carried an error body. The normalized message is extracted from that
	// body when possible.
	//
	// This is the highest-priority outcome: if an error payload exists, it is
	// the most specific information available, regardless of what else the
	// raw value carries.
	ServerPayload Category = "server_payload"

	// NoResponse indicates that the call reached the transport layer but no
	// response ever arrived — network failure, connection reset, timeout.
	// There is no payload to mine; the normalized message carries whatever
	// detail the transport attached to the failure.
	//
	// This is the only category that is retryable by default.
	NoResponse Category = "no_response"

	// Client indicates that the call could not even be attempted or its
	// failure could not be interpreted: the raw value is nil, a primitive,
	// or an object missing both the response and the request markers.
	//
	// This is the terminal fallback; every raw value that matches nothing
	// else lands here, so normalization itself can never fail.
	Client Category = "client"
)
