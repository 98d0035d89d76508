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
	"time"

	"github.com/xgfone/chain"
)

// Logger returns a new logger middleware that will log the running handler
// and its outcome.
//
// name is used to identify the handler in the logs, which is "" by default.
func Logger(logger chain.Logger, name ...string) Middleware {
	if logger == nil {
		panic("Logger: the logger must not be nil")
	}

	var hname string
	if len(name) > 0 {
		hname = name[0]
	}

	return func(next chain.Handler) chain.Handler {
		return func(req chain.Request) chain.Outcome {
			logger.Infof("running handler %s", hname)

			start := time.Now()
			outcome := next(req)
			cost := time.Since(start).String()

			if resp, ok := outcome.Response(); ok {
				logger.Debugf("handler=%s, request=%s, status=%d, cost=%s",
					hname, req, resp.Status(), cost)
			} else {
				logger.Debugf("handler=%s, request=%s, outcome=declined, cost=%s",
					hname, req, cost)
			}

			return outcome
		}
	}
}
