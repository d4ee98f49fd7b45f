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

package injectreflect

import (
	"fmt"
	"net/url"
	"reflect"
	"runtime"
	"strings"
)

// FuncName returns a funcs formatted name
func FuncName(fn interface{}) string {
	fnV := reflect.ValueOf(fn)
	if fnV.Kind() != reflect.Func {
		return "n/a"
	}

	function := runtime.FuncForPC(fnV.Pointer()).Name()
	return fmt.Sprintf("%s()", sanitize(function))
}

// QualifiedName returns the dotted, fully qualified name of the named type
// behind t. Pointers are dereferenced; the package path separators are
// replaced with dots so "example.com/app/services".Foo becomes
// "example.com.app.services.Foo".
func QualifiedName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	pkg := strings.Replace(t.PkgPath(), "/", ".", -1)
	if pkg == "" {
		return t.Name()
	}
	return pkg + "." + t.Name()
}

// Indirect returns the struct type behind t, if t is a struct or a pointer
// chain ending in one.
func Indirect(t reflect.Type) (reflect.Type, bool) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t, t.Kind() == reflect.Struct
}

// Embeds reports whether the struct type child embeds parent, directly or
// through other embedded structs. Both pointer and value embedding count.
func Embeds(child, parent reflect.Type) bool {
	return embeds(child, parent, make(map[reflect.Type]struct{}))
}

func embeds(child, parent reflect.Type, seen map[reflect.Type]struct{}) bool {
	child, ok := Indirect(child)
	if !ok {
		return false
	}
	if _, ok := seen[child]; ok {
		return false
	}
	seen[child] = struct{}{}

	for i := 0; i < child.NumField(); i++ {
		f := child.Field(i)
		if !f.Anonymous {
			continue
		}
		ft, ok := Indirect(f.Type)
		if !ok {
			continue
		}
		if ft == parent || embeds(ft, parent, seen) {
			return true
		}
	}
	return false
}

// sanitize makes the function name suitable for logging display. It removes
// url-encoded elements from the `dot.git` package names and shortens the
// vendored paths.
func sanitize(function string) string {
	// Use the stdlib to un-escape any package import paths which can happen
	// in the case of the "dot-git" postfix. Seems like a bug in stdlib =/
	if unescaped, err := url.QueryUnescape(function); err == nil {
		function = unescaped
	}

	// strip everything prior to the vendor
	const vendor = "/vendor/"
	if i := strings.LastIndex(function, vendor); i >= 0 {
		return function[i+len(vendor):]
	}
	return function
}
