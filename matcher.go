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

import "strings"

// Matcher is used to check whether a request matches a certain condition.
type Matcher func(Request) bool

// MatchMethod returns a Matcher matching the request whose method is
// one of methods.
func MatchMethod(methods ...Method) Matcher {
	var set [methodNum]bool
	for _, m := range methods {
		if !m.IsValid() {
			panic("MatchMethod: " + m.String() + " is not a valid method")
		}
		set[m] = true
	}

	return func(r Request) bool {
		m := r.Method()
		return m.IsValid() && set[m]
	}
}

// MatchPath returns a Matcher matching the request whose path is equal to path.
func MatchPath(path string) Matcher {
	return func(r Request) bool { return r.Path() == path }
}

// MatchPathPrefix returns a Matcher matching the request whose path has
// the prefix.
//
// The prefix "/api" matches "/api" and "/api/v2", not "/apix".
func MatchPathPrefix(prefix string) Matcher {
	prefix = strings.TrimSuffix(prefix, "/")
	return func(r Request) bool {
		path := r.Path()
		if !strings.HasPrefix(path, prefix) {
			return false
		}
		return len(path) == len(prefix) || path[len(prefix)] == '/'
	}
}

// MatchAll returns a Matcher matching the request only when all the matchers
// match it. No matchers match any request.
func MatchAll(matchers ...Matcher) Matcher {
	checkMatchers("MatchAll", matchers)
	return func(r Request) bool {
		for _, m := range matchers {
			if !m(r) {
				return false
			}
		}
		return true
	}
}

// MatchAny returns a Matcher matching the request when any of the matchers
// matches it. No matchers match no request.
func MatchAny(matchers ...Matcher) Matcher {
	checkMatchers("MatchAny", matchers)
	return func(r Request) bool {
		for _, m := range matchers {
			if m(r) {
				return true
			}
		}
		return false
	}
}

// Not returns a Matcher inverting the result of m.
func Not(m Matcher) Matcher {
	if m == nil {
		panic("Not: the matcher must not be nil")
	}
	return func(r Request) bool { return !m(r) }
}

func checkMatchers(name string, matchers []Matcher) {
	for _, m := range matchers {
		if m == nil {
			panic(name + ": the matcher must not be nil")
		}
	}
}
