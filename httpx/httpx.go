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

package httpx

import (
	"encoding/json"
	"io"
	"net/http"

	"remerr.dev/apis"
)

// DefaultMaxBodyBytes caps how much of an error response body is read when
// no explicit limit is configured. Error payloads are small; a body past the
// cap is truncated, and a truncated broken body costs at most the fallback
// message.
const DefaultMaxBodyBytes int64 = 1 << 20

// Classifier is a thin adapter that knows how to turn the outcome of an
// http.Client.Do-style call into the canonical raw error shape and hand it
// to the configured normalizer.
//
// A zero MaxBodyBytes means DefaultMaxBodyBytes.
type Classifier struct {
	Normalizer   apis.Normalizer
	MaxBodyBytes int64
}

// FromResult normalizes a (response, error) pair produced by an HTTP client
// call.
//
// It returns nil when the call actually succeeded (err is nil and the status
// is below 400) — only failures are normalized. For failures it returns
// exactly one normalized error:
//
//   - transport error (err != nil): the request reached the transport but no
//     response arrived — classifies as no_response with the transport's own
//     description as detail, and the original error as the cause;
//   - error status (>= 400) with a body: the body is read under the byte cap
//     and decoded into an untrusted payload — classifies as server_payload;
//   - error status with an empty body: there is no payload to mine, so the
//     failure classifies as no_response with the status line as detail.
//
// When a body is consumed it is read up to the cap but NOT closed; closing
// the response remains the caller's responsibility, as with any use of
// net/http.
func (c Classifier) FromResult(resp *http.Response, err error) error {
	if err != nil {
		// Route through a carrier type so the normalizer can attach the
		// transport error as the cause for errors.Is / errors.As.
		return c.Normalizer.Normalize(transportErr{err})
	}
	raw, failed := c.RawFromResult(resp, nil)
	if !failed {
		return nil
	}
	return c.Normalizer.Normalize(raw)
}

// RawFromResult builds the canonical raw shape for a (response, error) pair
// without normalizing it. The boolean reports whether the pair describes a
// failure at all. Callers that need custom classification can feed the
// returned RawError to their own normalizer.
func (c Classifier) RawFromResult(resp *http.Response, err error) (apis.RawError, bool) {
	if err != nil {
		// The client attempted the call; the transport failed it. Whatever
		// partial response exists is not trustworthy, so only the error's
		// description travels.
		return apis.RawError{Request: err, Message: err.Error()}, true
	}
	if resp == nil {
		// No error and no response: a misused client. Shapeless on purpose.
		return apis.RawError{}, true
	}
	if resp.StatusCode < http.StatusBadRequest {
		return apis.RawError{}, false
	}

	raw := apis.RawError{Request: resp.Request, Message: resp.Status}

	limit := c.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	if resp.Body != nil {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, limit))
		if readErr == nil && len(body) > 0 {
			raw.Response = &apis.RawResponse{Data: decodeBody(body)}
		}
	}
	return raw, true
}

// decodeBody turns an error response body into untrusted payload data.
//
// JSON bodies decode into whatever shape they really are (mapping, array,
// string, number) — the normalizer's defensive coercion handles all of them.
// Non-JSON bodies (HTML error pages, plain text) are carried as the raw
// string, which likewise coerces to an empty mapping downstream.
func decodeBody(body []byte) any {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return string(body)
	}
	return data
}

// transportErr marks a client error as having reached the transport layer.
// It keeps the original error in the chain so the normalized error's cause
// is the real transport failure, not a copy of its text.
type transportErr struct{ err error }

func (t transportErr) Error() string        { return t.err.Error() }
func (t transportErr) Unwrap() error        { return t.err }
func (t transportErr) RequestReached() bool { return true }
