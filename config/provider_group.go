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

import (
	"sort"
	"strings"
)

type providerGroup struct {
	name      string
	providers []Provider
}

// NewProviderGroup creates a configuration provider from a group of
// backends. Providers given later take priority over earlier ones.
func NewProviderGroup(name string, providers ...Provider) Provider {
	group := providerGroup{
		name: name,
	}
	for _, provider := range providers {
		group.providers = append([]Provider{provider}, group.providers...)
	}
	return group
}

// WithProvider returns a group with provider at the highest priority.
func (p providerGroup) WithProvider(provider Provider) Provider {
	return providerGroup{
		name:      p.name,
		providers: append([]Provider{provider}, p.providers...),
	}
}

// Get returns the value defined by the highest priority provider.
func (p providerGroup) Get(key string) Value {
	for _, provider := range p.providers {
		if val := provider.Get(key); val.HasValue() {
			val.provider = p
			return val
		}
	}
	return NewValue(p, key, nil, false)
}

// Keys returns the union of the keys of every provider.
func (p providerGroup) Keys() []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, provider := range p.providers {
		for _, k := range provider.Keys() {
			lk := strings.ToLower(k)
			if _, ok := seen[lk]; ok {
				continue
			}
			seen[lk] = struct{}{}
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Name returns the name of the group
func (p providerGroup) Name() string {
	return p.name
}
