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

package normalize

import (
	"google.golang.org/protobuf/types/known/structpb"

	"remerr.dev/apis"
)

// responseData probes a raw value for a received error response and returns
// its untrusted payload.
//
// The probe accepts, in order of specificity:
//
//   - apis.RawError (value or pointer) — the canonical adapter shape;
//   - apis.ResponseCarrier — third-party client error types;
//   - map[string]any — a loosely decoded raw value with a "response" entry
//     holding a mapping with a "data" key.
//
// For the map shape, a "data" KEY that is present but nil still counts as a
// received payload: the server answered, its body just decoded to null. The
// nil data then coerces to an empty mapping downstream, which yields the
// payload fallback message instead of leaking through to the no_response or
// client outcomes.
func responseData(raw any) (any, bool) {
	switch v := raw.(type) {
	case apis.RawError:
		if v.Response != nil && v.Response.Data != nil {
			return v.Response.Data, true
		}
		return nil, false
	case *apis.RawError:
		if v != nil && v.Response != nil && v.Response.Data != nil {
			return v.Response.Data, true
		}
		return nil, false
	case map[string]any:
		resp, ok := v["response"].(map[string]any)
		if !ok {
			return nil, false
		}
		data, ok := resp["data"]
		if !ok {
			return nil, false
		}
		return data, true
	}

	if rc, ok := raw.(apis.ResponseCarrier); ok {
		if data, ok := rc.ErrorResponseData(); ok && data != nil {
			return data, true
		}
	}

	return nil, false
}

// requestReached probes a raw value for evidence that the failed call was
// handed to the transport layer.
func requestReached(raw any) bool {
	switch v := raw.(type) {
	case apis.RawError:
		return truthy(v.Request)
	case *apis.RawError:
		return v != nil && truthy(v.Request)
	case map[string]any:
		return truthy(v["request"])
	}

	if rc, ok := raw.(apis.RequestCarrier); ok {
		return rc.RequestReached()
	}

	return false
}

// messageOf extracts the raw value's own failure description, if it has one.
//
// Only explicit message sources count: the Message field of the canonical
// shape, a "message" string entry in a loose mapping, or Error() of a Go
// error. A bare string raw value is NOT its own message — a primitive has no
// message field, so it classifies with the generic marker.
func messageOf(raw any) string {
	switch v := raw.(type) {
	case apis.RawError:
		return v.Message
	case *apis.RawError:
		if v == nil {
			return ""
		}
		return v.Message
	case map[string]any:
		if s, ok := v["message"].(string); ok {
			return s
		}
		return ""
	case error:
		if v == nil {
			return ""
		}
		return v.Error()
	}
	return ""
}

// causeOf returns the raw value itself when it is a Go error, so the
// normalized error can expose it through errors.Is / errors.As. Non-error
// raw values have no cause to attach.
func causeOf(raw any) error {
	if err, ok := raw.(error); ok {
		return err
	}
	return nil
}

// payloadMap coerces an untrusted payload into a structured mapping.
//
// Expected shapes are honored directly; everything else — arrays, strings,
// numbers, nil — becomes an empty mapping so field extraction can proceed
// without an internal shape fault.
func payloadMap(data any) map[string]any {
	switch v := data.(type) {
	case map[string]any:
		return v
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		return m
	case *structpb.Struct:
		if v != nil {
			return v.AsMap()
		}
	}
	return nil
}

// truthy reports whether a request marker counts as present.
//
// The marker is untrusted and may arrive as any JSON value after a loose
// decode, so presence follows the loose-typing convention of the wire
// format: nil, false, empty string and zero do not count; any other value
// does.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	}
	return true
}
