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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xgfone/chain"
)

func TestRecover(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := chain.NewLoggerFromWriter(buf, "", 0)

	panicHandler := func(chain.Request) chain.Outcome { panic(errors.New("boom")) }
	d := chain.NewWithConfig(chain.Config{Middlewares: []chain.Middleware{Recover(logger)}},
		chain.DeclineHandler(), panicHandler, chain.StatusHandler(200))

	resp, index := d.Trace(chain.NewRequest(chain.MethodPost, "/upload"))
	assert.Equal(t, uint32(500), resp.Status())
	assert.Equal(t, 1, index)
	assert.True(t, strings.HasPrefix(buf.String(),
		"[E] handler panics: request=POST /upload, panic=boom"))
}

func TestRecoverPassThrough(t *testing.T) {
	h := Recover()(chain.StatusHandler(204))
	resp, ok := h(chain.NewRequest(chain.MethodGet, "/")).Response()
	assert.True(t, ok)
	assert.Equal(t, uint32(204), resp.Status())

	h = Recover()(chain.DeclineHandler())
	assert.True(t, h(chain.NewRequest(chain.MethodGet, "/")).IsDeclined())
}

func TestRecoverNilPanic(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := chain.NewLoggerFromWriter(buf, "", 0)

	nilPanic := func(chain.Request) chain.Outcome { panic(nil) }
	d := chain.New(Recover(logger)(nilPanic), chain.StatusHandler(200))

	resp, index := d.Trace(chain.NewRequest(chain.MethodGet, "/"))
	assert.Equal(t, uint32(500), resp.Status())
	assert.Equal(t, 0, index)
	assert.True(t, strings.HasPrefix(buf.String(), "[E] handler panics: request=GET /"))
}
