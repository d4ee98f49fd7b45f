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

package config

import "os"

type lookupProvider struct {
	name   string
	lookup func(key string) (interface{}, bool)
}

// NewLookupProvider returns a config provider that answers Get with the
// lookup function. It cannot enumerate its keys, so Keys is always empty.
func NewLookupProvider(name string, lookup func(key string) (interface{}, bool)) Provider {
	return &lookupProvider{name: name, lookup: lookup}
}

// NewEnvironmentProvider looks keys up as environment variables.
func NewEnvironmentProvider() Provider {
	return NewLookupProvider("env", func(key string) (interface{}, bool) {
		return os.LookupEnv(key)
	})
}

func (l *lookupProvider) Get(key string) Value {
	if l.lookup != nil {
		if v, ok := l.lookup(key); ok {
			return NewValue(l, key, v, true)
		}
	}
	return NewValue(l, key, nil, false)
}

func (l *lookupProvider) Name() string { return l.name }

func (l *lookupProvider) Keys() []string { return nil }
