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

// Package middleware provides some middlewares to decorate the handlers
// of the dispatcher.
package middleware

import "github.com/xgfone/chain"

// Middleware is the alias of chain.Middleware.
//
// We add it in order to show the middlewares in together by the godoc.
type Middleware = chain.Middleware

func getLogger(loggers []chain.Logger) chain.Logger {
	if len(loggers) > 0 && loggers[0] != nil {
		return loggers[0]
	}
	return chain.NewNopLogger()
}
