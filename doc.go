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

// Package chain implements the chain of responsibility to dispatch a request.
//
// A Dispatcher owns an ordered sequence of handlers, each of which either
// declines the request or terminates the dispatch with a response. The first
// handler that terminates wins; if all of them decline, the default Response,
// whose status is StatusUnhandled, is returned.
//
// Example
//
//    d := chain.New(
//        chain.MethodHandler(chain.MethodOptions, 200),
//        chain.MethodHandler(chain.MethodPost, 200),
//        chain.MethodHandler(chain.MethodGet, 201),
//        chain.StatusHandler(500),
//    )
//
//    resp := d.Dispatch(chain.NewRequest(chain.MethodGet, "/api/v2/all"))
//    fmt.Println(resp.Status()) // 201
//
package chain
