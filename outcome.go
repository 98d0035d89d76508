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

// Outcome is the result of a handler, which either declines the request
// or terminates the dispatch with a response.
//
// The zero value is the declined outcome.
type Outcome struct {
	resp Response
	done bool
}

// Decline returns the outcome that the handler does not apply to the request
// and the dispatch should continue to the next handler.
func Decline() Outcome { return Outcome{} }

// Terminate returns the outcome that stops the dispatch with the response.
func Terminate(resp Response) Outcome { return Outcome{resp: resp, done: true} }

// Respond is equal to Terminate(NewResponse(status)).
func Respond(status uint32) Outcome { return Terminate(NewResponse(status)) }

// Response returns the response and true if the outcome terminates
// the dispatch. Or, return the default Response and false.
func (o Outcome) Response() (Response, bool) { return o.resp, o.done }

// IsDeclined reports whether the outcome declines the request.
func (o Outcome) IsDeclined() bool { return !o.done }

// String returns "declined" or the status line of the response.
func (o Outcome) String() string {
	if o.done {
		return o.resp.String()
	}
	return "declined"
}
