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

func TestMethodString(t *testing.T) {
	for method, name := range map[chain.Method]string{
		chain.MethodGet:     "GET",
		chain.MethodPost:    "POST",
		chain.MethodOptions: "OPTIONS",
		chain.Method(9):     "Method(9)",
	} {
		if s := method.String(); s != name {
			t.Errorf("expect method name '%s', but got '%s'", name, s)
		}
	}
}

func TestParseMethod(t *testing.T) {
	for name, method := range map[string]chain.Method{
		"GET":       chain.MethodGet,
		"get":       chain.MethodGet,
		"Post":      chain.MethodPost,
		" OPTIONS ": chain.MethodOptions,
	} {
		if m, err := chain.ParseMethod(name); err != nil {
			t.Errorf("fail to parse method '%s': %v", name, err)
		} else if m != method {
			t.Errorf("expect method '%s', but got '%s'", method, m)
		}
	}

	for _, name := range []string{"", "PUT", "DELETE", "GETX"} {
		if _, err := chain.ParseMethod(name); err != chain.ErrUnknownMethod {
			t.Errorf("expect ErrUnknownMethod for '%s', but got '%v'", name, err)
		}
	}
}

func TestMustParseMethod(t *testing.T) {
	if m := chain.MustParseMethod("post"); m != chain.MethodPost {
		t.Errorf("expect method POST, but got '%s'", m)
	}

	defer func() {
		if recover() == nil {
			t.Error("expect a panic for the unknown method")
		}
	}()
	chain.MustParseMethod("PATCH")
}

func TestMethodIsValid(t *testing.T) {
	if !chain.MethodOptions.IsValid() {
		t.Error("expect OPTIONS to be valid")
	}
	if chain.Method(3).IsValid() {
		t.Error("expect Method(3) to be invalid")
	}
}
