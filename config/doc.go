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

// Package config reads configuration values and binds them into an
// inject.Binder.
//
// A Provider exposes a tree of values addressed by dotted keys. Providers
// can be built from YAML documents, static maps, environment variables or
// a prefix of another provider, and stacked into a prioritized group:
//
//	base, err := config.NewYAMLProviderFromBytes(baseYAML, overrideYAML)
//	p := config.NewProviderGroup("app",
//		config.NewExpandProvider(base, os.Getenv),
//		config.NewEnvironmentProvider(),
//	)
//
// Bind turns configuration keys into literal bindings named after the key,
// so a constructor declared with inject.Params("db.dsn") receives the value
// at db.dsn:
//
//	b := inject.NewBinder()
//	if err := config.Bind(b, p, "db.dsn", "db.pool"); err != nil {
//		return err
//	}
//
// Lookups ignore the case of keys.
package config
