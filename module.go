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

	"go.uber.org/dig"
	"go.uber.org/inject/injectevent"
	"go.uber.org/inject/internal/injectreflect"
)

// A Module contributes bindings to the Injector built by Init.
type Module interface {
	Configure(*Binder)
}

// ModuleFunc adapts a function to the Module interface.
type ModuleFunc func(*Binder)

// Configure calls f(b).
func (f ModuleFunc) Configure(b *Binder) { f(b) }

// Init configures a fresh Binder with each module, in order, builds an
// Injector from them and invokes fn.
//
// fn is invoked through a dig container that provides the *Injector and the
// injectevent.Logger, so it may take either or both as arguments, and may
// return an error.
//
//	err := inject.Init(modules, func(inj *inject.Injector) error {
//		app, err := inj.CreateInstance(AppClass)
//		...
//	})
func Init(modules []Module, fn interface{}, opts ...Option) error {
	o := newOptions(opts)
	trace := injectreflect.CallerStack(1, 0)

	binders := make([]*Binder, 0, len(modules))
	for i, m := range modules {
		if m == nil {
			err := fmt.Errorf("module %d is nil", i)
			o.logger.LogEvent(&injectevent.Configured{ModuleName: "n/a", Err: err})
			return err
		}
		b := NewBinder()
		m.Configure(b)
		o.logger.LogEvent(&injectevent.Configured{ModuleName: moduleName(m), Err: b.Err()})
		binders = append(binders, b)
	}

	inj, err := New(binders, opts...)
	if err != nil {
		return err
	}

	err = invokeClosure(inj, o.logger, fn)
	ev := &injectevent.Invoked{FunctionName: injectreflect.FuncName(fn), Err: err}
	if err != nil {
		ev.Trace = trace.String()
	}
	o.logger.LogEvent(ev)
	return err
}

func invokeClosure(inj *Injector, logger injectevent.Logger, fn interface{}) error {
	c := dig.New()
	if err := c.Provide(func() *Injector { return inj }); err != nil {
		return err
	}
	if err := c.Provide(func() injectevent.Logger { return logger }); err != nil {
		return err
	}
	if err := c.Invoke(fn); err != nil {
		return fmt.Errorf("could not invoke %v: %w", injectreflect.FuncName(fn), err)
	}
	return nil
}

func moduleName(m Module) string {
	if f, ok := m.(ModuleFunc); ok {
		return injectreflect.FuncName((func(*Binder))(f))
	}
	return fmt.Sprintf("%T", m)
}
