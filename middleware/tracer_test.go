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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xgfone/chain"
)

func TestTracer(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := chain.NewLoggerFromWriter(buf, "", 0)

	d := chain.NewBuilder().
		Use(Recover(logger), Tracer(logger)).
		Handle(chain.MethodHandler(chain.MethodPost, 201), chain.DeclineHandler()).
		Build()

	resp := d.Dispatch(chain.NewRequest(chain.MethodGet, "/api"))
	assert.False(t, resp.Handled())
	assert.Equal(t, "[T] method=GET, path=/api\n[T] method=GET, path=/api\n", buf.String())
}
