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

package injectevent

import (
	"time"
)

// Event defines an event emitted by the injector.
type Event interface {
	event() // Only injectevent can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*Built) event()          {}
func (*Created) event()        {}
func (*Injected) event()       {}
func (*Unresolved) event()     {}
func (*MethodInjected) event() {}
func (*Intercepted) event()    {}
func (*Configured) event()     {}
func (*Invoked) event()        {}

// Built is emitted once an Injector has merged its binders.
type Built struct {
	// Binders is the number of binders that were merged.
	Binders int

	// Bindings is the number of distinct names after merging.
	Bindings int

	// Interceptors is the number of interceptor registrations.
	Interceptors int

	// Err is non-nil if the injector could not be built.
	Err error
}

// Created is emitted after an instance of a class has been produced.
type Created struct {
	// ClassName is the qualified name of the class.
	ClassName string

	// ProviderName is the name of the provider function that produced the
	// instance. It is empty for reflective construction.
	ProviderName string

	// Shared is set when the instance came from a shared-instance
	// accessor or a singleton cache.
	Shared bool

	// Runtime is how long construction took, dependencies included.
	Runtime time.Duration

	// Err is non-nil if construction failed.
	Err error
}

// Injected is emitted for every dependency name that was resolved against a
// binding.
type Injected struct {
	// ClassName is the class whose constructor, field or method received
	// the dependency.
	ClassName string

	// Name is the binding name.
	Name string

	// Kind is "instance", "class" or "provider".
	Kind string
}

// Unresolved is emitted when a dependency name has no binding. Unless the
// injector is strict, the zero value of the parameter type is injected.
type Unresolved struct {
	ClassName string
	Name      string
}

// MethodInjected is emitted after a method injection target was called.
type MethodInjected struct {
	ClassName  string
	MethodName string
	Err        error
}

// Intercepted is emitted when a method slot of a freshly constructed instance
// is wrapped by an interceptor.
type Intercepted struct {
	ClassName       string
	MethodName      string
	JoinPoint       string
	InterceptorName string
}

// Configured is emitted after a module has configured its binder.
type Configured struct {
	ModuleName string
	Err        error
}

// Invoked is emitted after the module loader invoked its closure.
type Invoked struct {
	FunctionName string
	Err          error

	// Trace records information about where the closure was handed to the
	// module loader. This is present only if Err is non-nil.
	Trace string
}
