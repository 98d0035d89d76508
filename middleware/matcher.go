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
	"errors"

	"github.com/xgfone/chain"
)

// Matchers returns a middleware to execute the matchers, which will execute
// those matchers in turn. If a certain matcher does not match the request,
// the handler is not called and the request is declined.
func Matchers(matchers ...chain.Matcher) Middleware {
	if len(matchers) == 0 {
		panic(errors.New("the matchers must not be empty"))
	}
	for _, m := range matchers {
		if m == nil {
			panic(errors.New("the matcher must not be nil"))
		}
	}

	return func(next chain.Handler) chain.Handler {
		return func(req chain.Request) chain.Outcome {
			for _, matcher := range matchers {
				if !matcher(req) {
					return chain.Decline()
				}
			}
			return next(req)
		}
	}
}
