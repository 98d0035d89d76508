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

package middleware

import "github.com/xgfone/chain"

// Flat returns a middleware to flatten the handlers, that's, the befores
// handlers, the decorated handler and the afters handlers are called in turn
// until one of them terminates the dispatch.
//
// Notice: a middleware installed by Builder.Use or Config.Middlewares wraps
// every handler separately, so a terminating after handler answers at the
// first wrapped handler and shadows all the handlers behind it. To run the
// afters only once all the handlers decline, wrap the whole dispatcher.
//
// Example
//
//     cors := chain.MethodHandler(chain.MethodOptions, 204)
//     fallback := chain.StatusHandler(404)
//
//     api := chain.New(
//         chain.MethodHandler(chain.MethodGet, 200),
//         chain.MethodHandler(chain.MethodPost, 201),
//     )
//
//     flat := Flat([]chain.Handler{cors}, []chain.Handler{fallback})
//     d := chain.New(flat(api.AsHandler()))
//
func Flat(befores, afters []chain.Handler) Middleware {
	for _, h := range befores {
		if h == nil {
			panic("Flat: the before handler must not be nil")
		}
	}
	for _, h := range afters {
		if h == nil {
			panic("Flat: the after handler must not be nil")
		}
	}

	return func(next chain.Handler) chain.Handler {
		hs := make([]chain.Handler, 0, len(befores)+len(afters)+1)
		hs = append(hs, befores...)
		hs = append(hs, next)
		hs = append(hs, afters...)
		return chain.New(hs...).AsHandler()
	}
}
