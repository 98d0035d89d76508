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

import "fmt"

// Builder is used to build a dispatcher, to which the handlers and
// the middlewares can only be appended.
type Builder struct {
	conf     Config
	mdwares  []Middleware
	handlers []Handler
}

// NewBuilder returns a new dispatcher builder.
func NewBuilder(conf ...Config) *Builder {
	var c Config
	if len(conf) > 0 {
		c = conf[0]
	}

	return &Builder{
		conf:    c,
		mdwares: append([]Middleware{}, c.Middlewares...),
	}
}

// Clone clones a new dispatcher builder.
func (b *Builder) Clone() *Builder {
	return &Builder{
		conf:     b.conf,
		mdwares:  append([]Middleware{}, b.mdwares...),
		handlers: append([]Handler{}, b.handlers...),
	}
}

// Len returns the number of the handlers added so far.
func (b *Builder) Len() int { return len(b.handlers) }

// Use appends some middlewares, which are applied to all the handlers,
// including those added before.
func (b *Builder) Use(middlewares ...Middleware) *Builder {
	for _, mw := range middlewares {
		if mw == nil {
			panic("Builder.Use: the middleware must not be nil")
		}
	}
	b.mdwares = append(b.mdwares, middlewares...)
	return b
}

// Handle appends some handlers, which are evaluated in the order of adding.
func (b *Builder) Handle(handlers ...Handler) *Builder {
	for _, h := range handlers {
		if h == nil {
			panic("Builder.Handle: the handler must not be nil")
		}
	}
	b.handlers = append(b.handlers, handlers...)
	return b
}

// HandleWhen appends a handler terminating the request with the status
// only when the matcher matches it.
func (b *Builder) HandleWhen(matcher Matcher, status uint32) *Builder {
	return b.Handle(MatchHandler(matcher, StatusHandler(status)))
}

// Build builds a new dispatcher with the handlers added so far.
//
// Adding the handlers or middlewares to the builder afterwards does not
// affect the built dispatcher.
func (b *Builder) Build() *Dispatcher {
	conf := b.conf
	conf.Middlewares = append([]Middleware{}, b.mdwares...)
	if err := conf.SetDefault(); err != nil {
		panic(fmt.Errorf("invalid dispatcher config: %v", err))
	}

	d := NewWithConfig(conf, b.handlers...)
	conf.Logger.Debugf("build the dispatcher '%s' with %d handlers and %d middlewares",
		d.Name(), d.Len(), len(conf.Middlewares))
	return d
}
