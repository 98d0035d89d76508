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

package chain_test

import (
	"testing"

	"github.com/xgfone/chain"
)

func TestStatusHandler(t *testing.T) {
	resp, ok := chain.StatusHandler(500)(chain.NewRequest(chain.MethodGet, "/")).Response()
	if !ok {
		t.Error("expect the status handler to terminate")
	} else if resp.Status() != 500 {
		t.Errorf("expect status code '%d', but got '%d'", 500, resp.Status())
	}
}

func TestDeclineHandler(t *testing.T) {
	if !chain.DeclineHandler()(chain.NewRequest(chain.MethodGet, "/")).IsDeclined() {
		t.Error("expect the decline handler to decline")
	}
}

func TestMethodHandler(t *testing.T) {
	h := chain.MethodHandler(chain.MethodPost, 202)

	if !h(chain.NewRequest(chain.MethodGet, "/")).IsDeclined() {
		t.Error("expect the POST handler to decline GET")
	}

	resp, ok := h(chain.NewRequest(chain.MethodPost, "/")).Response()
	if !ok || resp.Status() != 202 {
		t.Errorf("expect status code '%d', but got '%s'", 202, resp)
	}
}

func TestMatchHandlerNil(t *testing.T) {
	for _, f := range []func(){
		func() { chain.MatchHandler(nil, chain.StatusHandler(200)) },
		func() { chain.MatchHandler(chain.MatchPath("/"), nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Error("expect a panic")
				}
			}()
			f()
		}()
	}
}
