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
	"reflect"
)

// JoinPoint is the time at which an interceptor runs relative to the method
// it intercepts.
type JoinPoint int

const (
	// Before interceptors run ahead of the method and may replace its
	// arguments.
	Before JoinPoint = iota + 1

	// After interceptors run once the method returned and may replace its
	// results.
	After

	// Around interceptors decide whether and how often the method runs by
	// calling MethodInvocation.Proceed.
	Around
)

func (jp JoinPoint) valid() bool {
	return jp >= Before && jp <= Around
}

func (jp JoinPoint) String() string {
	switch jp {
	case Before:
		return "before"
	case After:
		return "after"
	case Around:
		return "around"
	default:
		return fmt.Sprintf("JoinPoint(%d)", int(jp))
	}
}

// Interceptor is cross-cutting logic attached to method slots with
// Binder.BindInterceptor.
type Interceptor func(*MethodInvocation)

// MethodInvocation is a single call of an intercepted method slot as seen by
// an interceptor.
//
// SetArguments, SetResult and Proceed panic when they are misused: values
// of the wrong number or type, or Proceed outside an Around interceptor.
type MethodInvocation struct {
	target    interface{}
	className string
	method    string
	joinPoint JoinPoint
	next      reflect.Value
	args      []reflect.Value
	results   []reflect.Value
}

// Target returns the instance whose method is being called.
func (mi *MethodInvocation) Target() interface{} { return mi.target }

// ClassName returns the qualified name of the target's class.
func (mi *MethodInvocation) ClassName() string { return mi.className }

// MethodName returns the name of the method slot being called.
func (mi *MethodInvocation) MethodName() string { return mi.method }

// QualifiedName returns the class and method names joined by a dot.
func (mi *MethodInvocation) QualifiedName() string {
	return mi.className + "." + mi.method
}

// Arguments returns the arguments of the call. The variadic tail, if any,
// is a single slice.
func (mi *MethodInvocation) Arguments() []interface{} {
	return interfaces(mi.args)
}

// SetArguments replaces the arguments the method will be called with. It is
// meaningful for Before and Around interceptors.
func (mi *MethodInvocation) SetArguments(args ...interface{}) {
	ft := mi.next.Type()
	mi.args = values("argument", args, ft.NumIn(), ft.In)
}

// Result returns the results of the call. They are zero values until the
// method ran or SetResult was called.
func (mi *MethodInvocation) Result() []interface{} {
	if mi.results == nil {
		return interfaces(zeroResults(mi.next.Type()))
	}
	return interfaces(mi.results)
}

// SetResult replaces the results returned to the caller.
func (mi *MethodInvocation) SetResult(results ...interface{}) {
	ft := mi.next.Type()
	mi.results = values("result", results, ft.NumOut(), ft.Out)
}

// Proceed calls the intercepted method with the current arguments and
// records its results. Only Around interceptors may call it; each call runs
// the method again.
func (mi *MethodInvocation) Proceed() {
	if mi.joinPoint != Around {
		panic(fmt.Sprintf("inject: Proceed called from a %v interceptor of %v", mi.joinPoint, mi.QualifiedName()))
	}
	mi.results = invoke(mi.next, mi.args)
}

// wrap returns a function of next's type that runs fn at jp around next.
func wrap(next reflect.Value, jp JoinPoint, fn Interceptor, target interface{}, className, method string) reflect.Value {
	return reflect.MakeFunc(next.Type(), func(args []reflect.Value) []reflect.Value {
		mi := &MethodInvocation{
			target:    target,
			className: className,
			method:    method,
			joinPoint: jp,
			next:      next,
			args:      args,
		}
		switch jp {
		case Before:
			fn(mi)
			mi.results = invoke(next, mi.args)
		case After:
			mi.results = invoke(next, mi.args)
			fn(mi)
		case Around:
			fn(mi)
		}
		if mi.results == nil {
			return zeroResults(next.Type())
		}
		return mi.results
	})
}

// invoke calls fn, treating an unset slot as a method that does nothing.
func invoke(fn reflect.Value, args []reflect.Value) []reflect.Value {
	if fn.IsNil() {
		return zeroResults(fn.Type())
	}
	if fn.Type().IsVariadic() {
		return fn.CallSlice(args)
	}
	return fn.Call(args)
}

func zeroResults(ft reflect.Type) []reflect.Value {
	out := make([]reflect.Value, ft.NumOut())
	for i := range out {
		out[i] = reflect.Zero(ft.Out(i))
	}
	return out
}

func interfaces(vs []reflect.Value) []interface{} {
	out := make([]interface{}, len(vs))
	for i, v := range vs {
		out[i] = v.Interface()
	}
	return out
}

func values(what string, vs []interface{}, n int, typeOf func(int) reflect.Type) []reflect.Value {
	if len(vs) != n {
		panic(fmt.Sprintf("inject: expected %d %v value(s), got %d", n, what, len(vs)))
	}
	out := make([]reflect.Value, n)
	for i, v := range vs {
		t := typeOf(i)
		if v == nil {
			out[i] = reflect.Zero(t)
			continue
		}
		rv := reflect.ValueOf(v)
		if !rv.Type().AssignableTo(t) {
			panic(fmt.Sprintf("inject: %v %d has type %v, expected %v", what, i, rv.Type(), t))
		}
		out[i] = reflect.New(t).Elem()
		out[i].Set(rv)
	}
	return out
}
