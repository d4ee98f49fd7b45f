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
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type staticProvider struct {
	Provider
}

// NewStaticProvider builds a provider from in-memory data, usually a
// map[string]interface{}. Keys of the map may be dotted paths, which are
// expanded into nested keys.
func NewStaticProvider(data interface{}) (Provider, error) {
	if m, ok := data.(map[string]interface{}); ok {
		data = expandDotted(m)
	}

	b, err := marshal(data)
	if err != nil {
		return nil, err
	}

	p, err := NewYAMLProviderFromBytes(b)
	if err != nil {
		return nil, err
	}
	return staticProvider{p}, nil
}

// marshal encodes data as YAML. yaml.v3 panics on values it cannot encode,
// such as functions and channels.
func marshal(data interface{}) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("could not marshal static config: %v", r)
		}
	}()
	return yaml.Marshal(data)
}

// Name returns the config provider name
func (staticProvider) Name() string {
	return "static"
}

var _ Provider = &staticProvider{}

func expandDotted(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if child, ok := v.(map[string]interface{}); ok {
			v = expandDotted(child)
		}
		parts := strings.Split(k, _separator)
		node := out
		for _, part := range parts[:len(parts)-1] {
			next, ok := node[part].(map[string]interface{})
			if !ok {
				next = make(map[string]interface{})
				node[part] = next
			}
			node = next
		}
		last := parts[len(parts)-1]
		node[last] = mergeMaps(node[last], v)
	}
	return out
}
