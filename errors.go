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
	"strings"
)

// MissingBindingError is returned when a dependency name has no binding and
// the injector is strict, or when Get is asked for an unknown name.
type MissingBindingError struct {
	// Class is the qualified name of the class that needed the dependency.
	// It is empty for Injector.Get.
	Class string

	// Name is the unbound dependency name.
	Name string
}

func (e *MissingBindingError) Error() string {
	if e.Class == "" {
		return fmt.Sprintf("no binding for %q", e.Name)
	}
	return fmt.Sprintf("no binding for %q required by %v", e.Name, e.Class)
}

// CycleError is returned when resolving a dependency requires the value
// being resolved.
type CycleError struct {
	// Path lists the classes and binding names that form the cycle, the
	// first entry repeated at the end.
	Path []string
}

func (e *CycleError) Error() string {
	return "cycle detected in dependency graph: " + strings.Join(e.Path, " -> ")
}

// TypeMismatchError is returned when a bound value cannot be passed where
// its name is requested.
type TypeMismatchError struct {
	Class string
	Name  string
	Want  reflect.Type
	Got   reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("binding %q has type %v, %v needs %v", e.Name, e.Got, e.Class, e.Want)
}

// errf builds an error that carries the location the offending declaration
// was made from.
func errf(loc fmt.Stringer, format string, args ...interface{}) error {
	return fmt.Errorf("%v (from %v)", fmt.Sprintf(format, args...), loc)
}
