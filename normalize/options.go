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
	"remerr.dev/field"
)

// Option configures the Normalizer at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Normalizer.
type Option func(*builder)

// WithField selects which payload field becomes the message for
// server_payload errors. The selector is validated during New; passing a
// value outside the closed set makes construction fail.
func WithField(s field.Selector) Option {
	return func(b *builder) { b.selector = s }
}

// WithPayloadFallback replaces the message used when a server error payload
// exists but the selected field cannot be extracted from it.
func WithPayloadFallback(msg string) Option {
	return func(b *builder) { b.payloadFallback = msg }
}

// WithNoResponseMarker replaces the generic detail used for unanswered
// calls that carry no failure description. It fills the <detail> slot of
// "No response received: <detail>"; the surrounding format is fixed.
func WithNoResponseMarker(detail string) Option {
	return func(b *builder) { b.noResponseMarker = detail }
}

// WithClientMarker replaces the generic detail used for shapeless failures
// that carry no description. It fills the <detail> slot of
// "Unexpected client error: <detail>"; the surrounding format is fixed.
func WithClientMarker(detail string) Option {
	return func(b *builder) { b.clientMarker = detail }
}
