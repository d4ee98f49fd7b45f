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
	"math"
	"reflect"
	"sort"
	"sync"
	"time"

	"go.uber.org/inject/injectevent"
	"go.uber.org/inject/internal/injectreflect"
	"go.uber.org/multierr"
)

var _errType = reflect.TypeOf((*error)(nil)).Elem()

// An Injector resolves named dependencies and builds classes from the
// bindings of one or more Binders.
//
// An Injector is safe for concurrent use. Its bindings never change after
// New returns. Interceptor plans and singletons are kept in the Injector,
// so Injectors built from the same classes never observe each other. The
// one exception is a Shared instance, which is set up once for the whole
// process.
type Injector struct {
	bindings     map[string]*Binding
	providers    map[*Class]*Provider
	interceptors []InterceptorRegistration
	log          injectevent.Logger
	strict       bool

	mu         sync.Mutex
	plans      map[*Class][]slotPlan
	singletons map[string]*singleton
}

type slotPlan struct {
	method string
	reg    InterceptorRegistration
}

type singleton struct {
	once  sync.Once
	value reflect.Value
	err   error
}

type sharedState struct {
	once sync.Once
	err  error
}

// _sharedStates marks shared instances that went through method injection
// and interception. Shared instances outlive Injectors, so the marks are
// process-wide.
var _sharedStates sync.Map // sharedKey => *sharedState

type sharedKey struct {
	class    *Class
	instance interface{}
}

// New builds an Injector from binders. Bindings of later binders replace
// bindings of the same name from earlier ones, as do class providers.
// Interceptor registrations are concatenated in order.
//
// New reports, all at once, every misuse recorded by the binders and every
// invalid class or provider a binding refers to. EagerSingleton bindings are
// created before New returns.
func New(binders []*Binder, opts ...Option) (*Injector, error) {
	o := newOptions(opts)
	inj := &Injector{
		bindings:   make(map[string]*Binding),
		providers:  make(map[*Class]*Provider),
		log:        o.logger,
		strict:     o.strict,
		plans:      make(map[*Class][]slotPlan),
		singletons: make(map[string]*singleton),
	}

	var err error
	for i, b := range binders {
		if b == nil {
			err = multierr.Append(err, fmt.Errorf("binder %d is nil", i))
			continue
		}
		err = multierr.Append(err, b.Err())
		for name, binding := range b.injections {
			inj.bindings[name] = binding
		}
		for c, p := range b.providers {
			inj.providers[c] = p
		}
		inj.interceptors = append(inj.interceptors, b.interceptors...)
	}
	if err == nil {
		err = inj.validate()
	}
	if err == nil {
		err = inj.createEager()
	}

	inj.log.LogEvent(&injectevent.Built{
		Binders:      len(binders),
		Bindings:     len(inj.bindings),
		Interceptors: len(inj.interceptors),
		Err:          err,
	})
	if err != nil {
		return nil, err
	}
	return inj, nil
}

func (inj *Injector) names() []string {
	names := make([]string, 0, len(inj.bindings))
	for name := range inj.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (inj *Injector) validate() error {
	var err error
	seen := make(map[interface{}]struct{})
	check := func(key interface{}, e error) {
		if _, ok := seen[key]; ok || e == nil {
			return
		}
		seen[key] = struct{}{}
		err = multierr.Append(err, e)
	}

	for _, name := range inj.names() {
		b := inj.bindings[name]
		switch b.Kind {
		case ClassBinding:
			check(b.Class, b.Class.Err())
		case ProviderBinding:
			check(b.Provider, b.Provider.Err())
			if b.Class != nil {
				check(b.Class, b.Class.Err())
				check(b, providerMismatch(b.Class, b.Provider))
			}
		}
	}

	classes := make([]*Class, 0, len(inj.providers))
	for c := range inj.providers {
		classes = append(classes, c)
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].String() < classes[j].String()
	})
	for _, c := range classes {
		p := inj.providers[c]
		check(c, c.Err())
		check(p, p.Err())
		check([2]interface{}{c, p}, providerMismatch(c, p))
	}
	return err
}

// providerMismatch reports a provider whose result cannot stand in for its
// class.
func providerMismatch(c *Class, p *Provider) error {
	if c.Err() != nil || p.Err() != nil {
		return nil
	}
	if !p.Type().AssignableTo(c.Type()) {
		return errf(p.location, "provider %v returns %v, which cannot be used as %v", p, p.Type(), c.Type())
	}
	return nil
}

func (inj *Injector) createEager() error {
	var err error
	for _, name := range inj.names() {
		b := inj.bindings[name]
		if b.Kind == InstanceBinding || b.Scope != EagerSingleton {
			continue
		}
		if _, e := inj.get(b, &resolution{}); e != nil {
			err = multierr.Append(err, fmt.Errorf("could not create eager singleton %q: %w", name, e))
		}
	}
	return err
}

// CreateInstance builds a value of c.
//
// A provider bound to c with BindProvider is called in place of the
// constructor. Otherwise a class declared Shared yields its shared
// instance. Otherwise the constructor is called, or the struct allocated,
// with its dependencies resolved by name. The new value then receives its
// method injections, and its method slots are wrapped by every matching
// interceptor.
func (inj *Injector) CreateInstance(c *Class) (interface{}, error) {
	if err := c.Err(); err != nil {
		return nil, err
	}
	v, err := inj.create(c, inj.providers[c], &resolution{})
	if err != nil {
		return nil, err
	}
	return valueOf(v), nil
}

// Get resolves a single binding by name, honoring its scope.
func (inj *Injector) Get(name string) (interface{}, error) {
	b, ok := inj.bindings[name]
	if !ok {
		return nil, &MissingBindingError{Name: name}
	}
	v, err := inj.get(b, &resolution{})
	if err != nil {
		return nil, err
	}
	return valueOf(v), nil
}

func valueOf(v reflect.Value) interface{} {
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}

func (inj *Injector) get(b *Binding, res *resolution) (reflect.Value, error) {
	if b.Kind == InstanceBinding {
		return reflect.ValueOf(b.Value), nil
	}
	if b.Scope == Prototype {
		return inj.build(b, res)
	}

	// A singleton that is still being built further up this resolution
	// would otherwise wait on itself.
	if err := res.check(b.target(), targetName(b)); err != nil {
		return reflect.Value{}, err
	}

	inj.mu.Lock()
	s, ok := inj.singletons[b.Name]
	if !ok {
		s = &singleton{}
		inj.singletons[b.Name] = s
	}
	inj.mu.Unlock()

	s.once.Do(func() {
		s.value, s.err = inj.build(b, res)
	})
	return s.value, s.err
}

func (inj *Injector) build(b *Binding, res *resolution) (reflect.Value, error) {
	switch {
	case b.Kind == ClassBinding:
		if err := b.Class.Err(); err != nil {
			return reflect.Value{}, err
		}
		return inj.create(b.Class, inj.providers[b.Class], res)
	case b.Class != nil:
		return inj.create(b.Class, b.Provider, res)
	default:
		return inj.provide(b.Provider, res)
	}
}

// create builds c, through p when p is not nil.
func (inj *Injector) create(c *Class, p *Provider, res *resolution) (v reflect.Value, err error) {
	if err := res.enter(c, c.String()); err != nil {
		return reflect.Value{}, err
	}
	defer res.leave()

	start := time.Now()
	var shared bool
	defer func() {
		ev := &injectevent.Created{
			ClassName: c.Name(),
			Shared:    shared,
			Runtime:   time.Since(start),
			Err:       err,
		}
		if p != nil {
			ev.ProviderName = p.Name()
		}
		inj.log.LogEvent(ev)
	}()

	switch {
	case p != nil:
		v, err = inj.callProvider(c.Name(), p, res)
	case c.shared.IsValid():
		shared = true
		v, err = call(c.shared, injectreflect.FuncName(c.shared.Interface()), nil)
	case c.record != nil:
		v, err = inj.fill(c, res)
	default:
		v, err = inj.construct(c, res)
	}
	if err != nil {
		return reflect.Value{}, err
	}

	if shared {
		state := sharedStateOf(c, v)
		state.once.Do(func() {
			state.err = inj.finish(c, v, res)
		})
		return v, state.err
	}
	return v, inj.finish(c, v, res)
}

// sharedStateOf returns the mark of the shared instance v of c. Instances
// that cannot be compared share a single mark per class.
func sharedStateOf(c *Class, v reflect.Value) *sharedState {
	key := sharedKey{class: c}
	if i := valueOf(v); i != nil && reflect.TypeOf(i).Comparable() {
		key.instance = i
	}
	s, _ := _sharedStates.LoadOrStore(key, new(sharedState))
	return s.(*sharedState)
}

func (inj *Injector) construct(c *Class, res *resolution) (reflect.Value, error) {
	args, err := inj.resolveArgs(c.Name(), c.params, c.ctor.Type(), res)
	if err != nil {
		return reflect.Value{}, err
	}
	return call(c.ctor, injectreflect.FuncName(c.ctor.Interface()), args)
}

func (inj *Injector) fill(c *Class, res *resolution) (reflect.Value, error) {
	v := reflect.New(c.record)
	for _, f := range c.fields {
		fv, err := inj.resolve(c.Name(), f.name, f.typ, res)
		if err != nil {
			return reflect.Value{}, err
		}
		v.Elem().FieldByIndex(f.index).Set(fv)
	}
	return v, nil
}

func (inj *Injector) provide(p *Provider, res *resolution) (reflect.Value, error) {
	if err := p.Err(); err != nil {
		return reflect.Value{}, err
	}
	if err := res.enter(p, p.String()); err != nil {
		return reflect.Value{}, err
	}
	defer res.leave()

	start := time.Now()
	v, err := inj.callProvider(p.Type().String(), p, res)
	inj.log.LogEvent(&injectevent.Created{
		ClassName:    p.Type().String(),
		ProviderName: p.Name(),
		Runtime:      time.Since(start),
		Err:          err,
	})
	return v, err
}

func (inj *Injector) callProvider(owner string, p *Provider, res *resolution) (reflect.Value, error) {
	args, err := inj.resolveArgs(owner, p.params, p.fn.Type(), res)
	if err != nil {
		return reflect.Value{}, err
	}
	return call(p.fn, p.Name(), args)
}

// finish runs method injection and interception on a freshly produced
// value of c.
func (inj *Injector) finish(c *Class, v reflect.Value, res *resolution) error {
	if isNil(v) {
		return nil
	}
	for _, m := range c.Injections() {
		err := inj.injectMethod(c, v, m, res)
		inj.log.LogEvent(&injectevent.MethodInjected{
			ClassName:  c.Name(),
			MethodName: m.Name,
			Err:        err,
		})
		if err != nil {
			return err
		}
	}
	inj.intercept(c, v)
	return nil
}

func (inj *Injector) injectMethod(c *Class, v reflect.Value, m MethodInjection, res *resolution) error {
	method := v.MethodByName(m.Name)
	if !method.IsValid() {
		return fmt.Errorf("%v has no method %q", v.Type(), m.Name)
	}
	args, err := inj.resolveArgs(c.Name(), m.Params, method.Type(), res)
	if err != nil {
		return err
	}
	_, err = call(method, c.Name()+"."+m.Name, args)
	return err
}

func (inj *Injector) intercept(c *Class, v reflect.Value) {
	plan := inj.plan(c)
	if len(plan) == 0 {
		return
	}
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if v.Type() != c.Type() {
		return
	}

	target := v.Interface()
	record := v.Elem()
	for _, p := range plan {
		slot := record.FieldByName(p.method)
		// The wrapper must call the current function, not read the field
		// it is about to replace.
		next := reflect.New(slot.Type()).Elem()
		next.Set(slot)
		slot.Set(wrap(next, p.reg.JoinPoint, p.reg.Interceptor, target, c.Name(), p.method))
		inj.log.LogEvent(&injectevent.Intercepted{
			ClassName:       c.Name(),
			MethodName:      p.method,
			JoinPoint:       p.reg.JoinPoint.String(),
			InterceptorName: injectreflect.FuncName(p.reg.Interceptor),
		})
	}
}

// plan returns, in registration order, the method slots of c and the
// interceptors that wrap them. Matchers run once per class.
func (inj *Injector) plan(c *Class) []slotPlan {
	inj.mu.Lock()
	plan, ok := inj.plans[c]
	inj.mu.Unlock()
	if ok {
		return plan
	}

	slots := make(map[string]struct{}, len(c.slots))
	for _, s := range c.slots {
		slots[s] = struct{}{}
	}
	for _, reg := range inj.interceptors {
		if !reg.ClassMatcher.MatchClass(c) {
			continue
		}
		for _, m := range reg.MethodMatcher.MatchMethods(c) {
			if _, ok := slots[m]; ok {
				plan = append(plan, slotPlan{method: m, reg: reg})
			}
		}
	}

	inj.mu.Lock()
	inj.plans[c] = plan
	inj.mu.Unlock()
	return plan
}

func (inj *Injector) resolveArgs(owner string, params []string, ft reflect.Type, res *resolution) ([]reflect.Value, error) {
	args := make([]reflect.Value, len(params))
	for i, name := range params {
		v, err := inj.resolve(owner, name, ft.In(i), res)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// resolve produces the value of the binding name for a dependency of type t
// of owner.
func (inj *Injector) resolve(owner, name string, t reflect.Type, res *resolution) (reflect.Value, error) {
	b, ok := inj.bindings[name]
	if !ok {
		if inj.strict {
			return reflect.Value{}, &MissingBindingError{Class: owner, Name: name}
		}
		inj.log.LogEvent(&injectevent.Unresolved{ClassName: owner, Name: name})
		return reflect.Zero(t), nil
	}

	inj.log.LogEvent(&injectevent.Injected{
		ClassName: owner,
		Name:      name,
		Kind:      b.Kind.String(),
	})
	v, err := inj.get(b, res)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("could not resolve %q for %v: %w", name, owner, err)
	}
	return assign(owner, name, v, t)
}

// assign adapts v to t. Absent values become the zero value of t, and
// numbers, strings and booleans convert to named types of the same kind.
func assign(owner, name string, v reflect.Value, t reflect.Type) (reflect.Value, error) {
	if v.IsValid() && v.Kind() == reflect.Interface && !v.Type().AssignableTo(t) {
		v = v.Elem()
	}
	if !v.IsValid() {
		return reflect.Zero(t), nil
	}
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if out, ok := convert(v, t); ok {
		return out, nil
	}
	return reflect.Value{}, &TypeMismatchError{Class: owner, Name: name, Want: t, Got: v.Type()}
}

// convert converts v to t when both are numbers, strings or booleans.
// Numbers convert only when the value survives unchanged: no overflow, no
// lost fraction, no lost sign.
func convert(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	from, to := kindClass(v.Kind()), kindClass(t.Kind())
	if from == 0 || from != to {
		return reflect.Value{}, false
	}
	if from != _numberKinds {
		return v.Convert(t), true
	}

	out := reflect.New(t).Elem()
	switch {
	case isInt(v.Kind()):
		n := v.Int()
		switch {
		case isInt(t.Kind()):
			if out.OverflowInt(n) {
				return reflect.Value{}, false
			}
			out.SetInt(n)
		case isUint(t.Kind()):
			if n < 0 || out.OverflowUint(uint64(n)) {
				return reflect.Value{}, false
			}
			out.SetUint(uint64(n))
		default:
			out.SetFloat(float64(n))
		}
	case isUint(v.Kind()):
		n := v.Uint()
		switch {
		case isInt(t.Kind()):
			if n > math.MaxInt64 || out.OverflowInt(int64(n)) {
				return reflect.Value{}, false
			}
			out.SetInt(int64(n))
		case isUint(t.Kind()):
			if out.OverflowUint(n) {
				return reflect.Value{}, false
			}
			out.SetUint(n)
		default:
			out.SetFloat(float64(n))
		}
	default:
		f := v.Float()
		switch {
		case isInt(t.Kind()):
			// As a float64, math.MaxInt64 rounds up to 2^63.
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 || out.OverflowInt(int64(f)) {
				return reflect.Value{}, false
			}
			out.SetInt(int64(f))
		case isUint(t.Kind()):
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 || out.OverflowUint(uint64(f)) {
				return reflect.Value{}, false
			}
			out.SetUint(uint64(f))
		default:
			if out.OverflowFloat(f) {
				return reflect.Value{}, false
			}
			out.SetFloat(f)
		}
	}
	return out, true
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uint64
}

const (
	_numberKinds = iota + 1
	_stringKinds
	_boolKinds
)

func kindClass(k reflect.Kind) int {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return _numberKinds
	case reflect.String:
		return _stringKinds
	case reflect.Bool:
		return _boolKinds
	default:
		return 0
	}
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// call calls fn, returning its first result and its trailing error, if it
// has one. Panics are returned as errors.
func call(fn reflect.Value, name string, args []reflect.Value) (v reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %q in func: %q", r, name)
		}
	}()

	results := fn.Call(args)
	ft := fn.Type()
	if n := len(results); n > 0 && ft.Out(n-1) == _errType {
		if e, _ := results[n-1].Interface().(error); e != nil {
			return reflect.Value{}, fmt.Errorf("%v failed: %w", name, e)
		}
		results = results[:n-1]
	}
	if len(results) > 0 {
		v = results[0]
	}
	return v, nil
}

func targetName(b *Binding) string {
	switch {
	case b.Class != nil:
		return b.Class.String()
	case b.Provider != nil:
		return b.Provider.String()
	default:
		return b.Name
	}
}

// resolution tracks the classes and providers being built by one call
// into the Injector.
type resolution struct {
	keys  []interface{}
	names []string
}

func (r *resolution) check(key interface{}, name string) error {
	for i, k := range r.keys {
		if k == key {
			path := append(append([]string(nil), r.names[i:]...), name)
			return &CycleError{Path: path}
		}
	}
	return nil
}

func (r *resolution) enter(key interface{}, name string) error {
	if err := r.check(key, name); err != nil {
		return err
	}
	r.keys = append(r.keys, key)
	r.names = append(r.names, name)
	return nil
}

func (r *resolution) leave() {
	r.keys = r.keys[:len(r.keys)-1]
	r.names = r.names[:len(r.names)-1]
}
