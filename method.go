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
	"errors"
	"strconv"
	"strings"
)

// ErrUnknownMethod is returned when parsing a method outside of the closed
// set GET, POST and OPTIONS.
var ErrUnknownMethod = errors.New("unknown request method")

// Method is the method identifier of a request.
type Method uint8

// Predefine the supported request methods.
const (
	MethodGet Method = iota
	MethodPost
	MethodOptions

	methodNum
)

var methodNames = [methodNum]string{
	MethodGet:     "GET",
	MethodPost:    "POST",
	MethodOptions: "OPTIONS",
}

// IsValid reports whether the method is one of GET, POST and OPTIONS.
func (m Method) IsValid() bool { return m < methodNum }

// String returns the upper-case name of the method, such as "GET".
func (m Method) String() string {
	if m.IsValid() {
		return methodNames[m]
	}
	return "Method(" + strconv.Itoa(int(m)) + ")"
}

// ParseMethod parses the method name case-insensitively.
func ParseMethod(s string) (Method, error) {
	s = strings.TrimSpace(s)
	for i, name := range methodNames {
		if strings.EqualFold(s, name) {
			return Method(i), nil
		}
	}
	return 0, ErrUnknownMethod
}

// MustParseMethod is the same as ParseMethod, but panics if failed.
func MustParseMethod(s string) Method {
	m, err := ParseMethod(s)
	if err != nil {
		panic(err)
	}
	return m
}
