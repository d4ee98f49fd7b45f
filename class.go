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
	"sync"

	"go.uber.org/inject/internal/injectreflect"
	"go.uber.org/multierr"
)

// _tagName is the struct tag that names the binding of a field of a struct
// class.
const _tagName = "inject"

// Methods named here are never used as method injection targets.
var _ignoredMethods = map[string]struct{}{
	"String":   {},
	"GoString": {},
	"Error":    {},
}

// A Class describes a type the Injector knows how to build: how to produce
// a value, which binding names feed its dependencies, which methods must be
// called afterwards, and which function-valued fields may be intercepted.
//
// Classes are declared once, usually as package-level variables, and are
// shared freely between Injectors. An Injector never writes to a Class.
type Class struct {
	name     string
	typ      reflect.Type
	ctor     reflect.Value
	record   reflect.Type
	fields   []recordField
	params   []string
	shared   reflect.Value
	parents  []*Class
	slots    []string
	location injectreflect.Frame

	mu      sync.RWMutex
	methods []MethodInjection
	err     error
}

type recordField struct {
	index []int
	name  string
	typ   reflect.Type
}

// ClassOption configures a Class.
type ClassOption interface {
	applyClass(*classOptions)
}

type classOptions struct {
	name    string
	params  []string
	methods []MethodInjection
	shared  interface{}
	parents []*Class
}

type classOptionFunc func(*classOptions)

func (f classOptionFunc) applyClass(o *classOptions) { f(o) }

// Params declares the binding names for the constructor's arguments, in
// order.
func Params(names ...string) ClassOption {
	return classOptionFunc(func(o *classOptions) {
		o.params = append(o.params, names...)
	})
}

// Name overrides the qualified name of the class. Namespace matchers use
// this name.
func Name(qualified string) ClassOption {
	return classOptionFunc(func(o *classOptions) {
		o.name = qualified
	})
}

// InjectMethod marks a method to be called, with resolved arguments, right
// after the class is constructed.
func InjectMethod(method string, params ...string) ClassOption {
	return classOptionFunc(func(o *classOptions) {
		o.methods = append(o.methods, Method(method, params...))
	})
}

// Shared gives the class a shared-instance accessor. getter must be a
// function taking no arguments and returning the class type. When set, the
// Injector returns getter's result instead of building a new value.
func Shared(getter interface{}) ClassOption {
	return classOptionFunc(func(o *classOptions) {
		o.shared = getter
	})
}

// Extends declares parent as a superclass for SubclassOf matching.
// Embedding parent's struct type is detected without this option.
func Extends(parent *Class) ClassOption {
	return classOptionFunc(func(o *classOptions) {
		o.parents = append(o.parents, parent)
	})
}

// MethodInjection is a method to call after construction together with the
// binding names of its arguments.
type MethodInjection struct {
	Name   string
	Params []string
}

// Method builds a MethodInjection.
func Method(name string, params ...string) MethodInjection {
	return MethodInjection{Name: name, Params: params}
}

// NewClass declares a class.
//
// target is either a constructor function with the signature
//
//	func(A, B, ...) T
//	func(A, B, ...) (T, error)
//
// whose arguments are named by Params, or a typed nil pointer to a struct,
//
//	(*Foo)(nil)
//
// in which case the Injector allocates a Foo and sets every field tagged
// `inject:"name"` from the binding of that name.
//
// Problems with the declaration are reported by Err, by New for every class
// reachable from a binding, and by CreateInstance.
func NewClass(target interface{}, opts ...ClassOption) *Class {
	c := &Class{location: injectreflect.CallerStack(1, 0).Location()}

	var o classOptions
	for _, opt := range opts {
		opt.applyClass(&o)
	}

	t := reflect.TypeOf(target)
	switch {
	case t == nil:
		c.err = errf(c.location, "inject.NewClass expects a constructor function or a struct pointer, got nil")
		return c
	case t.Kind() == reflect.Func:
		c.initConstructor(reflect.ValueOf(target), o.params)
	case t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Struct:
		c.initRecord(t, o.params)
	default:
		c.err = errf(c.location, "inject.NewClass expects a constructor function or a struct pointer, got %v", t)
		return c
	}
	if c.err != nil {
		return c
	}

	c.name = o.name
	if c.name == "" {
		c.name = injectreflect.QualifiedName(c.typ)
	}
	c.slots = methodSlots(c.typ)
	c.parents = o.parents
	for _, p := range o.parents {
		if p == nil {
			c.err = multierr.Append(c.err, errf(c.location, "inject.Extends: parent of %v is nil", c.name))
		}
	}
	if o.shared != nil {
		c.initShared(o.shared)
	}
	c.addMethods(o.methods)
	return c
}

func (c *Class) initConstructor(fn reflect.Value, params []string) {
	ft := fn.Type()
	switch {
	case fn.IsNil():
		c.err = errf(c.location, "inject.NewClass: constructor is a nil %v", ft)
		return
	case ft.IsVariadic():
		c.err = errf(c.location, "inject.NewClass: variadic constructor %v is not supported", injectreflect.FuncName(fn.Interface()))
		return
	case ft.NumOut() == 0 || ft.NumOut() > 2:
		c.err = errf(c.location, "inject.NewClass: constructor %v must return a value and optionally an error", injectreflect.FuncName(fn.Interface()))
		return
	case ft.NumOut() == 2 && ft.Out(1) != _errType:
		c.err = errf(c.location, "inject.NewClass: second result of %v must be an error, got %v", injectreflect.FuncName(fn.Interface()), ft.Out(1))
		return
	case ft.NumIn() != len(params):
		c.err = errf(c.location, "inject.NewClass: %v takes %d argument(s) but %d param name(s) were declared",
			injectreflect.FuncName(fn.Interface()), ft.NumIn(), len(params))
		return
	}
	c.ctor = fn
	c.typ = ft.Out(0)
	c.params = params
}

func (c *Class) initRecord(t reflect.Type, params []string) {
	if len(params) > 0 {
		c.err = errf(c.location, "inject.NewClass: struct class %v names its dependencies with %q tags, not Params", t, _tagName)
		return
	}
	c.typ = t
	c.record = t.Elem()

	var walk func(st reflect.Type, prefix []int)
	walk = func(st reflect.Type, prefix []int) {
		for i := 0; i < st.NumField(); i++ {
			f := st.Field(i)
			index := append(append([]int(nil), prefix...), i)
			name, ok := f.Tag.Lookup(_tagName)
			if !ok {
				// Embedded value structs contribute their tagged fields.
				if f.Anonymous && f.Type.Kind() == reflect.Struct {
					walk(f.Type, index)
				}
				continue
			}
			if f.PkgPath != "" {
				c.err = multierr.Append(c.err,
					errf(c.location, "inject.NewClass: field %v.%v is tagged %q but unexported", t.Elem(), f.Name, _tagName))
				continue
			}
			if name == "" {
				name = f.Name
			}
			c.fields = append(c.fields, recordField{index: index, name: name, typ: f.Type})
			c.params = append(c.params, name)
		}
	}
	walk(c.record, nil)
}

func (c *Class) initShared(getter interface{}) {
	g := reflect.ValueOf(getter)
	gt := g.Type()
	if gt.Kind() != reflect.Func || gt.NumIn() != 0 || gt.NumOut() != 1 || !gt.Out(0).AssignableTo(c.typ) || g.IsNil() {
		c.err = multierr.Append(c.err,
			errf(c.location, "inject.Shared: accessor of %v must be a func() %v, got %v", c.name, c.typ, gt))
		return
	}
	c.shared = g
}

// Inject marks methods of c to be called after construction. Arguments are
// resolved by the names given to each Method. Calls accumulate.
//
// Methods named String, GoString or Error are skipped.
func Inject(c *Class, methods ...MethodInjection) {
	c.addMethods(methods)
}

func (c *Class) addMethods(methods []MethodInjection) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, m := range methods {
		if _, ok := _ignoredMethods[m.Name]; ok {
			continue
		}
		if c.typ == nil {
			continue
		}
		if err := checkMethod(c.typ, m); err != nil {
			c.err = multierr.Append(c.err, errf(c.location, "inject.Inject: %v: %v", c.name, err))
			continue
		}
		c.methods = append(c.methods, Method(m.Name, m.Params...))
	}
}

func checkMethod(t reflect.Type, m MethodInjection) error {
	method, ok := t.MethodByName(m.Name)
	if !ok {
		return fmt.Errorf("%v has no method %q", t, m.Name)
	}
	mt := method.Type
	argc := mt.NumIn()
	if t.Kind() != reflect.Interface {
		argc-- // receiver
	}
	if mt.IsVariadic() {
		return fmt.Errorf("variadic method %q is not supported", m.Name)
	}
	if argc != len(m.Params) {
		return fmt.Errorf("method %q takes %d argument(s) but %d param name(s) were declared", m.Name, argc, len(m.Params))
	}
	return nil
}

// methodSlots lists the exported function-valued fields of the struct
// behind a pointer type, in declaration order. These are the methods that
// interceptors can wrap.
func methodSlots(t reflect.Type) []string {
	if t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		return nil
	}
	var slots []string
	st := t.Elem()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if f.PkgPath != "" || f.Type.Kind() != reflect.Func {
			continue
		}
		slots = append(slots, f.Name)
	}
	return slots
}

// Name returns the qualified name of the class.
func (c *Class) Name() string { return c.name }

// Type returns the type the class produces.
func (c *Class) Type() reflect.Type { return c.typ }

// Params returns the binding names of the constructor arguments or, for a
// struct class, of the tagged fields.
func (c *Class) Params() []string {
	return append([]string(nil), c.params...)
}

// Methods returns the interceptable method slots of the class: exported
// fields of function type on the struct the class produces.
func (c *Class) Methods() []string {
	return append([]string(nil), c.slots...)
}

// Injections returns the method injection targets of the class.
func (c *Class) Injections() []MethodInjection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]MethodInjection(nil), c.methods...)
}

// Err returns the problems found with the declaration of the class.
func (c *Class) Err() error {
	if c == nil {
		return fmt.Errorf("nil *inject.Class")
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

func (c *Class) String() string {
	if c.name == "" {
		return "inject.Class(invalid)"
	}
	return c.name
}

// descends reports whether c is a true descendant of parent.
func (c *Class) descends(parent *Class) bool {
	if c == parent {
		return false
	}
	for _, p := range c.parents {
		if p == parent || p.descends(parent) {
			return true
		}
	}
	if c.typ == nil || parent.typ == nil {
		return false
	}
	pt, ok := injectreflect.Indirect(parent.typ)
	if !ok {
		return false
	}
	return injectreflect.Embeds(c.typ, pt)
}
