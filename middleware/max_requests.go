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

import (
	"net/http"
	"sync/atomic"

	"github.com/xgfone/chain"
)

// MaxRequests returns a middleware to limit the maximum number of the requests
// that the handler is handling at the same time.
//
// When the limit is exceeded, it terminates the dispatch by the handler,
// which responds the status code 429 by default.
func MaxRequests(max uint32, handler ...chain.Handler) Middleware {
	h := chain.StatusHandler(http.StatusTooManyRequests)
	if len(handler) > 0 && handler[0] != nil {
		h = handler[0]
	}

	return func(next chain.Handler) chain.Handler {
		var current uint32
		return func(req chain.Request) chain.Outcome {
			defer atomic.AddUint32(&current, ^uint32(0))
			if atomic.AddUint32(&current, 1) > max {
				return h(req)
			}
			return next(req)
		}
	}
}
