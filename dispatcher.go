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

// Dispatcher owns an ordered sequence of handlers and routes a request
// through them until one terminates the dispatch or all of them decline.
//
// The handlers are fixed when the dispatcher is created, so it is safe
// to call Dispatch concurrently.
type Dispatcher struct {
	name     string
	handlers []Handler
}

// New returns a new Dispatcher with the handlers, the order of which is
// the order that they are evaluated.
//
// It panics if a handler is nil.
func New(handlers ...Handler) *Dispatcher {
	return NewWithConfig(Config{}, handlers...)
}

// NewWithConfig is the same as New, but also configures the dispatcher.
//
// Each handler is decorated by conf.Middlewares in turn before being added.
func NewWithConfig(conf Config, handlers ...Handler) *Dispatcher {
	if err := conf.SetDefault(); err != nil {
		panic(fmt.Errorf("invalid dispatcher config: %v", err))
	}

	mw := Compose(conf.Middlewares...)
	hs := make([]Handler, len(handlers))
	for i, h := range handlers {
		if h == nil {
			panic(fmt.Errorf("the handler #%d must not be nil", i))
		}
		hs[i] = mw(h)
	}

	return &Dispatcher{name: conf.Name, handlers: hs}
}

// Name returns the name of the dispatcher.
func (d *Dispatcher) Name() string { return d.name }

// Len returns the number of the handlers.
func (d *Dispatcher) Len() int { return len(d.handlers) }

// Handlers returns a copy of the handlers in the evaluation order.
func (d *Dispatcher) Handlers() []Handler {
	hs := make([]Handler, len(d.handlers))
	copy(hs, d.handlers)
	return hs
}

// String returns the description of the dispatcher.
func (d *Dispatcher) String() string {
	return fmt.Sprintf("Dispatcher(name=%s, handlers=%d)", d.name, len(d.handlers))
}

// Dispatch routes the request through the handlers in turn, and returns
// the response of the first handler that does not decline it.
//
// If all the handlers decline the request, it returns the default Response,
// the status of which is StatusUnhandled.
func (d *Dispatcher) Dispatch(req Request) Response {
	resp, _ := d.Trace(req)
	return resp
}

// Trace is the same as Dispatch, but also returns the index of the handler
// producing the response, which is -1 if all the handlers decline it.
func (d *Dispatcher) Trace(req Request) (resp Response, index int) {
	for i, h := range d.handlers {
		if resp, ok := h(req).Response(); ok {
			return resp, i
		}
	}
	return Response{}, -1
}

// AsHandler converts the dispatcher to a Handler, so that it can be nested
// into another dispatcher.
//
// The returned handler declines the request if all the handlers of
// the dispatcher decline it.
func (d *Dispatcher) AsHandler() Handler {
	return func(req Request) Outcome {
		if resp, index := d.Trace(req); index >= 0 {
			return Terminate(resp)
		}
		return Decline()
	}
}
