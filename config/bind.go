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

	"go.uber.org/inject"
	"go.uber.org/multierr"
)

// Bind binds configuration values into b as literals named after their
// keys. With no keys, every leaf of p is bound. A key that p has no value
// for is an error; the keys that were found are still bound.
func Bind(b *inject.Binder, p Provider, keys ...string) error {
	if len(keys) == 0 {
		keys = p.Keys()
	}

	var err error
	for _, key := range keys {
		v := p.Get(key)
		if !v.HasValue() {
			err = multierr.Append(err, fmt.Errorf("no value for %q in %v config", key, p.Name()))
			continue
		}
		b.Bind(key, v.Value())
	}
	return err
}
