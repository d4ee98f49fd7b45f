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
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

type yamlConfigProvider struct {
	root map[string]interface{}

	mu     sync.Mutex
	vCache map[string]Value
}

var _ Provider = &yamlConfigProvider{}

func newYAMLProviderCore(readers ...io.Reader) (Provider, error) {
	root := make(map[string]interface{})
	for i, r := range readers {
		dec := yaml.NewDecoder(r)
		for {
			var doc interface{}
			err := dec.Decode(&doc)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("could not parse YAML source %d: %w", i, err)
			}
			if doc == nil {
				continue
			}
			m, ok := normalize(doc).(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("YAML source %d must be a mapping, got %T", i, doc)
			}
			root = mergeMaps(root, m).(map[string]interface{})
		}
	}

	return &yamlConfigProvider{
		root:   root,
		vCache: make(map[string]Value),
	}, nil
}

// mergeMaps merges src into dst. Maps are merged key by key; anything else
// in src replaces what dst holds.
func mergeMaps(dst interface{}, src interface{}) interface{} {
	s, ok := src.(map[string]interface{})
	if !ok {
		return src
	}
	d, ok := dst.(map[string]interface{})
	if !ok {
		return src
	}
	for k, v := range s {
		if d[k] == nil {
			d[k] = v
		} else {
			d[k] = mergeMaps(d[k], v)
		}
	}
	return d
}

// normalize converts the maps produced by the decoder to
// map[string]interface{}.
func normalize(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		for k, child := range v {
			v[k] = normalize(child)
		}
		return v
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for k, child := range v {
			m[fmt.Sprint(k)] = normalize(child)
		}
		return m
	case []interface{}:
		for i, child := range v {
			v[i] = normalize(child)
		}
		return v
	default:
		return v
	}
}

// NewYAMLProviderFromReader creates a configuration provider from readers of
// YAML documents. All the objects are going to be merged and arrays/values
// overridden in the order of the documents.
func NewYAMLProviderFromReader(readers ...io.Reader) (Provider, error) {
	return newYAMLProviderCore(readers...)
}

// NewYAMLProviderFromBytes creates a config provider from byte-backed YAML
// blobs. Same as above all the objects are going to be merged and
// arrays/values overridden in the order of the blobs.
func NewYAMLProviderFromBytes(yamls ...[]byte) (Provider, error) {
	readers := make([]io.Reader, len(yamls))
	for i := range yamls {
		readers[i] = bytes.NewReader(yamls[i])
	}

	return newYAMLProviderCore(readers...)
}

// Name returns the config provider name
func (y *yamlConfigProvider) Name() string {
	return "yaml"
}

// Get returns a configuration value by name
func (y *yamlConfigProvider) Get(key string) Value {
	y.mu.Lock()
	defer y.mu.Unlock()

	// check the cache for the value
	if v, ok := y.vCache[key]; ok {
		return v
	}

	node, ok := find(y.root, key)
	if !ok {
		return NewValue(y, key, nil, false)
	}

	// cache the found value
	value := NewValue(y, key, node, true)
	y.vCache[key] = value

	return value
}

// Keys returns the dotted keys of every leaf value.
func (y *yamlConfigProvider) Keys() []string {
	return leafKeys(y.root)
}

// find walks a dotted path through nested maps and lists, ignoring the case
// of map keys.
func find(root interface{}, dottedPath string) (interface{}, bool) {
	if dottedPath == Root {
		return root, true
	}

	node := root
	for _, part := range strings.Split(dottedPath, _separator) {
		switch n := node.(type) {
		case map[string]interface{}:
			child, ok := n[part]
			if !ok {
				for k, v := range n {
					if strings.EqualFold(k, part) {
						child, ok = v, true
						break
					}
				}
			}
			if !ok {
				return nil, false
			}
			node = child
		case []interface{}:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(n) {
				return nil, false
			}
			node = n[i]
		default:
			return nil, false
		}
	}
	return node, true
}
