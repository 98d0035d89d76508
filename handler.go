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

// Handler is a handler of the request, which either declines the request
// or terminates the dispatch with a response.
type Handler func(Request) Outcome

// DeclineHandler returns a Handler declining every request.
func DeclineHandler() Handler { return func(Request) Outcome { return Decline() } }

// StatusHandler returns a Handler terminating every request
// with the status code.
func StatusHandler(status uint32) Handler {
	outcome := Respond(status)
	return func(Request) Outcome { return outcome }
}

// MatchHandler returns a Handler that calls the handler h only when
// the matcher matches the request, and declines it otherwise.
func MatchHandler(matcher Matcher, h Handler) Handler {
	if matcher == nil {
		panic("MatchHandler: the matcher must not be nil")
	} else if h == nil {
		panic("MatchHandler: the handler must not be nil")
	}

	return func(r Request) Outcome {
		if matcher(r) {
			return h(r)
		}
		return Decline()
	}
}

// MethodHandler returns a Handler terminating the request with the status
// code only when the request method is method.
func MethodHandler(method Method, status uint32) Handler {
	return MatchHandler(MatchMethod(method), StatusHandler(status))
}
