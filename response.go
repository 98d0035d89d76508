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

import (
	"net/http"
	"strconv"
)

// StatusUnhandled is the status of the default Response, which is returned
// when no handler has terminated the dispatch.
const StatusUnhandled uint32 = 0

// Response is an immutable response produced by a handler.
//
// The zero value is the default Response, whose status is StatusUnhandled.
type Response struct {
	status uint32
}

// NewResponse returns a new Response with the status code.
func NewResponse(status uint32) Response { return Response{status: status} }

// Status returns the status code of the response.
func (r Response) Status() uint32 { return r.status }

// Handled reports whether the response has been produced by a handler,
// that's, its status is not StatusUnhandled.
func (r Response) Handled() bool { return r.status != StatusUnhandled }

// Text returns the HTTP reason phrase of the status, such as "Created".
//
// It returns "" for StatusUnhandled or the unknown status.
func (r Response) Text() string {
	if r.status == StatusUnhandled || r.status > 999 {
		return ""
	}
	return http.StatusText(int(r.status))
}

// String returns the status line of the response, such as "201 Created".
func (r Response) String() string {
	status := strconv.FormatUint(uint64(r.status), 10)
	if r.status == StatusUnhandled {
		return status + " Unhandled"
	} else if text := r.Text(); text != "" {
		return status + " " + text
	}
	return status
}
