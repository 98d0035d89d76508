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
	"reflect"

	"github.com/xgfone/go-tools/function"
)

// Config is used to configure the dispatcher.
type Config struct {
	// Name is used to identify the dispatcher in the logs.
	Name string `default:"dispatcher"`

	// Logger is used by the builder, which is NewNopLogger() by default.
	Logger Logger

	// Middlewares is applied to every handler in turn when building
	// the dispatcher, the first of which is the outermost.
	Middlewares []Middleware
}

// SetDefault sets the ZERO fields to the value of their tag "default",
// and the nil Logger to NewNopLogger().
func (c *Config) SetDefault() (err error) {
	if err = setDefaultForStruct(c); err == nil && c.Logger == nil {
		c.Logger = NewNopLogger()
	}
	return
}

func setDefaultForStruct(v interface{}) (err error) {
	value := reflect.ValueOf(v)
	if value.Kind() != reflect.Ptr {
		panic("the value is not a pointer")
	} else if value = value.Elem(); value.Kind() != reflect.Struct {
		panic("the value is not a pointer to struct")
	}

	vtype := value.Type()
	for i, num := 0, value.NumField(); i < num; i++ {
		tag := vtype.Field(i).Tag.Get("default")
		if tag == "" || !value.Field(i).IsZero() {
			continue
		}

		if err = function.SetValue(value.Field(i).Addr().Interface(), tag); err != nil {
			return
		}
	}

	return nil
}
