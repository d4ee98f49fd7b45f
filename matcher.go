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
	"regexp"
	"strings"
)

// ClassMatcher selects the classes an interceptor applies to.
type ClassMatcher interface {
	MatchClass(*Class) bool
}

// MethodMatcher selects the method slots of a class an interceptor wraps.
type MethodMatcher interface {
	// MatchMethods returns the names of the selected method slots of c, in
	// declaration order.
	MatchMethods(c *Class) []string
}

// Matcher matches both classes and methods.
type Matcher interface {
	ClassMatcher
	MethodMatcher
}

// namespace returns the qualified name of c without its last segment.
func namespace(c *Class) string {
	name := c.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return ""
}

type namespaceMatcher struct {
	ns  string
	sub bool
}

// InNamespace matches classes declared directly in ns: the qualified name
// of the class, without its last segment, equals ns.
func InNamespace(ns string) ClassMatcher {
	return namespaceMatcher{ns: ns}
}

// InSubnamespace matches classes declared in ns or in any namespace nested
// below it. "app.services" matches "app.services.Foo" and
// "app.services.cache.Foo" but not "app.servicesX.Foo".
func InSubnamespace(ns string) ClassMatcher {
	return namespaceMatcher{ns: ns, sub: true}
}

func (m namespaceMatcher) MatchClass(c *Class) bool {
	ns := namespace(c)
	if ns == m.ns {
		return true
	}
	return m.sub && strings.HasPrefix(ns, m.ns+".")
}

func (m namespaceMatcher) String() string {
	if m.sub {
		return fmt.Sprintf("InSubnamespace(%q)", m.ns)
	}
	return fmt.Sprintf("InNamespace(%q)", m.ns)
}

type instanceMatcher struct{ class *Class }

// InstanceOf matches exactly c.
func InstanceOf(c *Class) ClassMatcher {
	return instanceMatcher{class: c}
}

func (m instanceMatcher) MatchClass(c *Class) bool { return c == m.class }

func (m instanceMatcher) String() string {
	return fmt.Sprintf("InstanceOf(%v)", m.class)
}

type subclassMatcher struct{ parent *Class }

// SubclassOf matches the descendants of parent: classes that declare it with
// Extends, directly or transitively, and classes whose struct embeds the
// struct parent produces. parent itself is not matched.
func SubclassOf(parent *Class) ClassMatcher {
	return subclassMatcher{parent: parent}
}

func (m subclassMatcher) MatchClass(c *Class) bool {
	if m.parent == nil {
		return false
	}
	return c.descends(m.parent)
}

func (m subclassMatcher) String() string {
	return fmt.Sprintf("SubclassOf(%v)", m.parent)
}

type likeMatcher struct {
	pattern string
	re      *regexp.Regexp
}

// Like matches method slots whose names start with pattern. '*' matches
// any run of characters; every other character, '.' included, matches
// itself. Like("Set") selects SetName as well as Set.
func Like(pattern string) MethodMatcher {
	expr := strings.Replace(regexp.QuoteMeta(pattern), `\*`, ".*", -1)
	return likeMatcher{
		pattern: pattern,
		re:      regexp.MustCompile("^" + expr),
	}
}

func (m likeMatcher) MatchMethods(c *Class) []string {
	var names []string
	for _, name := range c.Methods() {
		if m.re.MatchString(name) {
			names = append(names, name)
		}
	}
	return names
}

func (m likeMatcher) String() string {
	return fmt.Sprintf("Like(%q)", m.pattern)
}

type anyMatcher struct{}

// Any matches every class and every method slot.
func Any() Matcher { return anyMatcher{} }

func (anyMatcher) MatchClass(*Class) bool { return true }

func (anyMatcher) MatchMethods(c *Class) []string { return c.Methods() }

func (anyMatcher) String() string { return "Any()" }
