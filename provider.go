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
	"reflect"

	"go.uber.org/inject/internal/injectreflect"
)

// A Provider is a function that produces a fully constructed value. Bound
// to a class with Binder.BindProvider, it replaces reflective construction
// of that class.
type Provider struct {
	fn       reflect.Value
	params   []string
	name     string
	location injectreflect.Frame
	err      error
}

// Provide declares a provider. fn must have one of the signatures
//
//	func(A, B, ...) T
//	func(A, B, ...) (T, error)
//
// and params names the bindings for its arguments, in order.
func Provide(fn interface{}, params ...string) *Provider {
	p := &Provider{
		params:   params,
		location: injectreflect.CallerStack(1, 0).Location(),
	}

	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		p.err = errf(p.location, "inject.Provide expects a function, got %T", fn)
		return p
	}
	p.name = injectreflect.FuncName(fn)

	ft := v.Type()
	switch {
	case v.IsNil():
		p.err = errf(p.location, "inject.Provide: provider is a nil %v", ft)
	case ft.IsVariadic():
		p.err = errf(p.location, "inject.Provide: variadic provider %v is not supported", p.name)
	case ft.NumOut() == 0 || ft.NumOut() > 2:
		p.err = errf(p.location, "inject.Provide: %v must return a value and optionally an error", p.name)
	case ft.NumOut() == 2 && ft.Out(1) != _errType:
		p.err = errf(p.location, "inject.Provide: second result of %v must be an error, got %v", p.name, ft.Out(1))
	case ft.NumIn() != len(params):
		p.err = errf(p.location, "inject.Provide: %v takes %d argument(s) but %d param name(s) were declared",
			p.name, ft.NumIn(), len(params))
	default:
		p.fn = v
	}
	return p
}

// Name returns the name of the provider function.
func (p *Provider) Name() string { return p.name }

// Params returns the binding names of the provider's arguments.
func (p *Provider) Params() []string {
	return append([]string(nil), p.params...)
}

// Type returns the type of the value the provider produces, or nil if the
// provider is invalid.
func (p *Provider) Type() reflect.Type {
	if !p.fn.IsValid() {
		return nil
	}
	return p.fn.Type().Out(0)
}

// Err returns the problems found with the declaration of the provider.
func (p *Provider) Err() error { return p.err }

func (p *Provider) String() string {
	if p.name == "" {
		return "inject.Provider(invalid)"
	}
	return p.name
}
