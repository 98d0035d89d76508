// Copyright 2026 xgfone
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package chain

// Middleware represents a middleware, which decorates a handler.
type Middleware func(Handler) Handler

// Compose composes the middlewares into one, the first of which is
// the outermost.
func Compose(mws ...Middleware) Middleware {
	for _, mw := range mws {
		if mw == nil {
			panic("Compose: the middleware must not be nil")
		}
	}

	return func(h Handler) Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}
