// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package inject

import (
	"fmt"

	"go.uber.org/inject/injectevent"
)

// An Option configures an Injector.
type Option interface {
	fmt.Stringer

	apply(*options)
}

type options struct {
	logger injectevent.Logger
	strict bool
}

func newOptions(opts []Option) options {
	o := options{logger: injectevent.NopLogger}
	for _, opt := range opts {
		opt.apply(&o)
	}
	return o
}

// WithLogger specifies how the Injector reports what it does. By default
// nothing is reported.
func WithLogger(l injectevent.Logger) Option {
	return loggerOption{l}
}

type loggerOption struct{ l injectevent.Logger }

func (o loggerOption) apply(opts *options) {
	if o.l != nil {
		opts.logger = o.l
	}
}

func (o loggerOption) String() string {
	return fmt.Sprintf("inject.WithLogger(%v)", o.l)
}

// Strict makes unbound dependency names an error. Without it, an unbound
// name resolves to the zero value of the type it is injected into and is
// reported with an injectevent.Unresolved event.
func Strict() Option {
	return strictOption{}
}

type strictOption struct{}

func (strictOption) apply(opts *options) { opts.strict = true }

func (strictOption) String() string { return "inject.Strict()" }
