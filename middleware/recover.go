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

	"github.com/xgfone/chain"
)

// Recover returns a middleware to wrap the panic of the handler,
// which terminates the dispatch with the status 500 instead.
//
// panic(nil) is also recovered, even if recover() returns nil.
func Recover(logger ...chain.Logger) Middleware {
	log := getLogger(logger)
	return func(next chain.Handler) chain.Handler {
		return func(req chain.Request) (outcome chain.Outcome) {
			var returned bool
			defer func() {
				if e := recover(); e != nil || !returned {
					log.Errorf("handler panics: request=%s, panic=%v", req, e)
					outcome = chain.Respond(http.StatusInternalServerError)
				}
			}()

			outcome = next(req)
			returned = true
			return
		}
	}
}
