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

// RawError is the canonical, transport-friendly shape of a failed remote
// call, BEFORE normalization.
//
// It deliberately mirrors what heterogeneous HTTP/gRPC clients actually
// produce: every field is optional and none of them can be trusted. A
// RawError may describe a call that got an error response, a call that never
// got a response, or a call that never made it out of the client at all.
//
// Transport adapters (remerr.dev/httpx, remerr.dev/grpcx) construct RawError
// values; the normalizer consumes them. Application code can also build one
// by hand when bridging a client library the adapters do not cover.
//
// The zero value is meaningful: it describes a failure with no response, no
// request marker and no message — the normalizer classifies it as a client
// error.
type RawError struct {
	// Response is present when the server answered the call, even if the
	// answer itself signals failure. Its Data is untrusted.
	Response *RawResponse

	// Request is a marker indicating the call reached the transport layer.
	// Any non-nil value counts; the normalizer never inspects it beyond
	// presence. Adapters typically store the outgoing request here.
	Request any

	// Message is an optional human-readable description of the failure,
	// typically taken from the transport error.
	Message string
}

// RawResponse is the untrusted server response attached to a RawError.
type RawResponse struct {
	// Data is the decoded response body. It is EXPECTED to be a mapping from
	// string keys to string values (possibly containing "error_message"
	// and/or "error_details"), but nothing guarantees that: failing APIs
	// return arrays, bare strings, or malformed bodies. Consumers must treat
	// any non-mapping shape as an empty mapping.
	Data any
}

// ResponseCarrier lets a third-party client error type hand its error
// response payload to the normalizer without being converted to RawError
// first.
//
// Implementations return (data, true) when the server answered the call,
// where data is the untrusted response body. They return (nil, false) when
// no response arrived. Returning (nil, true) means "the server answered with
// an empty body" and is treated the same as no payload.
type ResponseCarrier interface {
	// ErrorResponseData returns the untrusted error payload, if a response
	// was received at all.
	ErrorResponseData() (data any, ok bool)
}

// RequestCarrier lets a third-party client error type report whether the
// failed call reached the transport layer.
//
// This distinction drives the no_response vs client classification: a call
// that was sent but never answered is transient; a call that never left the
// client is not.
type RequestCarrier interface {
	// RequestReached reports whether the request was handed to the transport.
	RequestReached() bool
}
