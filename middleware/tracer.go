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

// Tracer returns a middleware to log the request before calling the handler
// with the TRACE level.
func Tracer(logger chain.Logger) Middleware {
	if logger == nil {
		panic("Tracer: the logger must not be nil")
	}

	return func(next chain.Handler) chain.Handler {
		return func(req chain.Request) chain.Outcome {
			logger.Tracef("method=%s, path=%s", req.Method(), req.Path())
			return next(req)
		}
	}
}
