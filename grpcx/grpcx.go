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

package grpcx

import (
	"encoding/json"

	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"remerr.dev/apis"
)

// Classifier is a thin adapter that knows how to turn a failed gRPC call's
// error into the canonical raw error shape and hand it to the configured
// normalizer.
type Classifier struct {
	Normalizer apis.Normalizer
}

// FromCallError normalizes the error returned by a gRPC client call.
//
// It returns nil for a nil error. For failures it returns exactly one
// normalized error:
//
//   - transport-level status codes (Unavailable, DeadlineExceeded,
//     Canceled): the call reached the transport but no usable answer came
//     back — classifies as no_response with the status message as detail;
//   - any other status code: the server answered with a failure — the
//     status is rendered into an untrusted payload and classifies as
//     server_payload;
//   - a non-status error: the call never produced an interpretable gRPC
//     outcome — classifies as client.
//
// The original error always survives as the normalized error's cause.
func (c Classifier) FromCallError(err error) error {
	if err == nil {
		return nil
	}
	return c.Normalizer.Normalize(callErr{raw: RawFromCallError(err), err: err})
}

// RawFromCallError builds the canonical raw shape for a gRPC call error
// without normalizing it. Callers that need custom classification can feed
// the returned RawError to their own normalizer.
func RawFromCallError(err error) apis.RawError {
	st, ok := gstatus.FromError(err)
	if !ok {
		// Not a status error at all: nothing reached the transport that we
		// can prove, so the shape stays bare and classifies as client.
		return apis.RawError{Message: err.Error()}
	}

	switch st.Code() {
	case gcodes.Unavailable, gcodes.DeadlineExceeded, gcodes.Canceled:
		// The transport gave up before the server produced an answer.
		return apis.RawError{Request: st, Message: st.Message()}
	}

	// The server answered with a failure status. Render it into the payload
	// mapping the normalizer expects: the status message under
	// "error_message", and the full detail set (if any) as compact JSON
	// under "error_details".
	payload := map[string]any{}
	if msg := st.Message(); msg != "" {
		payload["error_message"] = msg
	}
	if details := renderDetails(st); details != "" {
		payload["error_details"] = details
	}

	return apis.RawError{
		Response: &apis.RawResponse{Data: payload},
		Request:  st,
		Message:  st.Message(),
	}
}

// renderDetails serializes the status's detail messages to compact JSON.
//
// The status proto is rendered through protojson so nested detail payloads
// (Any-wrapped messages, structs, well-known types) serialize with their
// canonical JSON field names. An empty string means the status carried no
// details or they could not be rendered; either way the payload simply omits
// "error_details".
func renderDetails(st *gstatus.Status) string {
	proto := st.Proto()
	if proto == nil || len(proto.GetDetails()) == 0 {
		return ""
	}
	b, err := protojson.Marshal(proto)
	if err != nil {
		return ""
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return ""
	}
	details, ok := m["details"]
	if !ok {
		return ""
	}
	out, err := json.Marshal(details)
	if err != nil {
		return ""
	}
	return string(out)
}

// callErr pairs the canonical raw shape with the original call error so the
// normalized error keeps it in its Unwrap chain. It satisfies the apis
// carrier interfaces by delegating to the embedded RawError.
type callErr struct {
	raw apis.RawError
	err error
}

func (c callErr) Error() string { return c.raw.Message }
func (c callErr) Unwrap() error { return c.err }

func (c callErr) ErrorResponseData() (any, bool) {
	if c.raw.Response == nil {
		return nil, false
	}
	return c.raw.Response.Data, true
}

func (c callErr) RequestReached() bool { return c.raw.Request != nil }
