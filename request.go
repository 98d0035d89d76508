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

// Request is an immutable request routed through the dispatcher.
//
// The zero value is a GET request with the empty path.
type Request struct {
	method Method
	path   string
}

// NewRequest returns a new Request.
func NewRequest(method Method, path string) Request {
	return Request{method: method, path: path}
}

// Method returns the method of the request.
func (r Request) Method() Method { return r.method }

// Path returns the target path of the request.
func (r Request) Path() string { return r.path }

// String returns the request line, such as "GET /api/v2/all".
func (r Request) String() string { return r.method.String() + " " + r.path }
