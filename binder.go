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

	"go.uber.org/inject/internal/injectreflect"
	"go.uber.org/multierr"
)

// BindingKind says how a binding produces its value.
type BindingKind int

const (
	// InstanceBinding binds a literal value.
	InstanceBinding BindingKind = iota

	// ClassBinding builds a class each time the name is resolved, subject
	// to the binding's Scope.
	ClassBinding

	// ProviderBinding calls a provider each time the name is resolved,
	// subject to the binding's Scope.
	ProviderBinding
)

func (k BindingKind) String() string {
	switch k {
	case InstanceBinding:
		return "instance"
	case ClassBinding:
		return "class"
	case ProviderBinding:
		return "provider"
	default:
		return fmt.Sprintf("BindingKind(%d)", int(k))
	}
}

// Scope controls how many values a class or provider binding produces per
// Injector.
type Scope int

const (
	// Prototype produces a new value every time the name is resolved.
	Prototype Scope = iota

	// Singleton produces one value per Injector, on first resolution.
	Singleton

	// EagerSingleton produces one value per Injector while the Injector is
	// being built.
	EagerSingleton
)

func (s Scope) String() string {
	switch s {
	case Prototype:
		return "prototype"
	case Singleton:
		return "singleton"
	case EagerSingleton:
		return "eager singleton"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// Binding is a named entry of a Binder.
type Binding struct {
	Name  string
	Kind  BindingKind
	Scope Scope

	// Value is the literal of an InstanceBinding.
	Value interface{}

	// Class is the class of a ClassBinding, or the class a ProviderBinding
	// registered with BindProvider builds.
	Class *Class

	// Provider is the provider of a ProviderBinding.
	Provider *Provider

	// Location is where the binding was declared.
	Location injectreflect.Frame
}

// target identifies the producer of a binding for cycle detection.
func (b *Binding) target() interface{} {
	switch {
	case b.Kind == ClassBinding:
		return b.Class
	case b.Kind == ProviderBinding && b.Class != nil:
		return b.Class
	case b.Kind == ProviderBinding:
		return b.Provider
	default:
		return nil
	}
}

// InterceptorRegistration is an interceptor together with the classes and
// methods it applies to.
type InterceptorRegistration struct {
	ClassMatcher  ClassMatcher
	MethodMatcher MethodMatcher
	JoinPoint     JoinPoint
	Interceptor   Interceptor
	Location      injectreflect.Frame
}

// A Binder accumulates bindings, providers and interceptor registrations
// during a single configuration pass. Injectors are built from one or more
// Binders.
//
// Binder methods never fail. Misuse is recorded and reported by Err and by
// New.
type Binder struct {
	injections   map[string]*Binding
	providers    map[*Class]*Provider
	interceptors []InterceptorRegistration
	err          error
}

// NewBinder returns an empty Binder.
func NewBinder() *Binder {
	return &Binder{
		injections: make(map[string]*Binding),
		providers:  make(map[*Class]*Provider),
	}
}

func callerLocation() injectreflect.Frame {
	return injectreflect.CallerStack(2, 0).Location()
}

// Bind binds name to value. A *Class value is built on demand, a *Provider
// value is called on demand, and anything else, functions included, is
// injected as is. A later Bind of the same name replaces the earlier one.
func (b *Binder) Bind(name string, value interface{}) {
	b.bind(name, value, callerLocation())
}

func (b *Binder) bind(name string, value interface{}, loc injectreflect.Frame) *Binding {
	binding := &Binding{Name: name, Location: loc}
	switch v := value.(type) {
	case *Class:
		if v == nil {
			b.fail(errf(loc, "cannot bind %q to a nil *inject.Class", name))
			return nil
		}
		binding.Kind = ClassBinding
		binding.Class = v
	case *Provider:
		if v == nil {
			b.fail(errf(loc, "cannot bind %q to a nil *inject.Provider", name))
			return nil
		}
		binding.Kind = ProviderBinding
		binding.Provider = v
	default:
		binding.Kind = InstanceBinding
		binding.Value = value
	}
	return b.put(binding)
}

func (b *Binder) put(binding *Binding) *Binding {
	if binding.Name == "" {
		b.fail(errf(binding.Location, "cannot bind an empty name"))
		return nil
	}
	b.injections[binding.Name] = binding
	return binding
}

// BindProvider makes p the creation strategy for c: every Injector built
// from this Binder creates c by calling p. If name is not empty, p is also
// bound to name, and resolving name creates c through p.
func (b *Binder) BindProvider(name string, c *Class, p *Provider) {
	loc := callerLocation()
	switch {
	case c == nil:
		b.fail(errf(loc, "cannot bind a provider for a nil *inject.Class"))
		return
	case p == nil:
		b.fail(errf(loc, "cannot bind a nil *inject.Provider for %v", c))
		return
	}
	b.providers[c] = p
	if name != "" {
		b.put(&Binding{
			Name:     name,
			Kind:     ProviderBinding,
			Class:    c,
			Provider: p,
			Location: loc,
		})
	}
}

// BindInterceptor registers fn to run at jp around the methods selected by
// mm on every class selected by cm. Registrations are kept in order; when
// several apply to the same method, the last registered runs outermost.
func (b *Binder) BindInterceptor(cm ClassMatcher, mm MethodMatcher, jp JoinPoint, fn Interceptor) {
	loc := callerLocation()
	var err error
	if cm == nil {
		err = multierr.Append(err, errf(loc, "interceptor needs a class matcher"))
	}
	if mm == nil {
		err = multierr.Append(err, errf(loc, "interceptor needs a method matcher"))
	}
	if !jp.valid() {
		err = multierr.Append(err, errf(loc, "unknown join point %v", jp))
	}
	if fn == nil {
		err = multierr.Append(err, errf(loc, "interceptor function is nil"))
	}
	if err != nil {
		b.fail(err)
		return
	}
	b.interceptors = append(b.interceptors, InterceptorRegistration{
		ClassMatcher:  cm,
		MethodMatcher: mm,
		JoinPoint:     jp,
		Interceptor:   fn,
		Location:      loc,
	})
}

// Named starts a fluent binding of name.
//
//	binder.Named("store").To(StoreClass).In(inject.Singleton)
//	binder.Named("dsn").ToInstance("postgres://localhost")
func (b *Binder) Named(name string) *BindingBuilder {
	return &BindingBuilder{binder: b, name: name, location: callerLocation()}
}

// Injections returns a copy of the bindings of the Binder, keyed by name.
func (b *Binder) Injections() map[string]Binding {
	out := make(map[string]Binding, len(b.injections))
	for name, binding := range b.injections {
		out[name] = *binding
	}
	return out
}

// Interceptors returns a copy of the interceptor registrations, in
// registration order.
func (b *Binder) Interceptors() []InterceptorRegistration {
	return append([]InterceptorRegistration(nil), b.interceptors...)
}

// Providers returns a copy of the class providers of the Binder.
func (b *Binder) Providers() map[*Class]*Provider {
	out := make(map[*Class]*Provider, len(b.providers))
	for c, p := range b.providers {
		out[c] = p
	}
	return out
}

// Err returns every misuse of the Binder recorded so far.
func (b *Binder) Err() error { return b.err }

func (b *Binder) fail(err error) {
	b.err = multierr.Append(b.err, err)
}

// BindingBuilder is the fluent form of Binder.Bind returned by
// Binder.Named.
type BindingBuilder struct {
	binder   *Binder
	name     string
	location injectreflect.Frame
	binding  *Binding
}

// ToInstance binds the name to a literal value.
func (bb *BindingBuilder) ToInstance(v interface{}) *BindingBuilder {
	bb.binding = bb.binder.put(&Binding{
		Name:     bb.name,
		Kind:     InstanceBinding,
		Value:    v,
		Location: bb.location,
	})
	return bb
}

// To binds the name to a class.
func (bb *BindingBuilder) To(c *Class) *BindingBuilder {
	if c == nil {
		bb.binder.fail(errf(bb.location, "cannot bind %q to a nil *inject.Class", bb.name))
		return bb
	}
	bb.binding = bb.binder.bind(bb.name, c, bb.location)
	return bb
}

// ToProvider binds the name to a provider.
func (bb *BindingBuilder) ToProvider(p *Provider) *BindingBuilder {
	if p == nil {
		bb.binder.fail(errf(bb.location, "cannot bind %q to a nil *inject.Provider", bb.name))
		return bb
	}
	bb.binding = bb.binder.bind(bb.name, p, bb.location)
	return bb
}

// In sets the scope of the binding. It must follow To or ToProvider.
func (bb *BindingBuilder) In(s Scope) *BindingBuilder {
	switch {
	case bb.binding == nil:
		bb.binder.fail(errf(bb.location, "scope of %q set before its target", bb.name))
	case bb.binding.Kind == InstanceBinding:
		bb.binder.fail(errf(bb.location, "instance binding %q cannot have a scope", bb.name))
	case s < Prototype || s > EagerSingleton:
		bb.binder.fail(errf(bb.location, "unknown scope %v for %q", s, bb.name))
	default:
		bb.binding.Scope = s
	}
	return bb
}
