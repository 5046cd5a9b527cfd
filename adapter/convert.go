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

package adapter

import (
	"errors"

	"remerr.dev"
	"remerr.dev/apis"
	"remerr.dev/category"
)

// ToView converts a normalized error into a portable ErrorView.
//
// The view is intended for structured logging, metrics labels, or message bus
// propagation. It carries the classification outcome and the display-ready
// message; the cause chain is deliberately left behind — views travel, causes
// stay in-process.
func ToView(e *remerr.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Category:  string(e.Category),
		Message:   e.Message,
		Retryable: category.Retryable(e.Category),
	}
}

// ViewOf builds an ErrorView for an arbitrary error.
//
// A *remerr.Error anywhere in the chain (unwrapped via errors.As) is rendered
// through ToView. Any other error is treated as an unclassified client-side
// failure: its message is carried verbatim and the category is "client", the
// least specific outcome. A nil error yields the zero view.
func ViewOf(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	var e *remerr.Error
	if errors.As(err, &e) {
		return ToView(e)
	}
	return apis.ErrorView{
		Category: string(category.Client),
		Message:  err.Error(),
	}
}
