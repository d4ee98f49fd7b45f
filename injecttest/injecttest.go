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

// Package injecttest helps build and exercise Injectors in tests.
package injecttest

import (
	"strings"

	"go.uber.org/inject"
	"go.uber.org/inject/internal/injectlog"
	"go.uber.org/zap/zapcore"
)

// TB is a subset of the standard library's testing.TB interface. It's
// satisfied by both *testing.T and *testing.B.
type TB interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
}

// testWriter writes each log entry to the test log.
type testWriter struct{ tb TB }

func (w testWriter) Write(p []byte) (int, error) {
	w.tb.Logf("%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func (testWriter) Sync() error { return nil }

// New builds an Injector from binders, failing the test if that does not
// succeed. Events are written to the test log at debug level unless opts
// specify another logger.
func New(tb TB, binders []*inject.Binder, opts ...inject.Option) *inject.Injector {
	opts = append([]inject.Option{
		inject.WithLogger(injectlog.DefaultLogger(testWriter{tb}, zapcore.DebugLevel)),
	}, opts...)

	inj, err := inject.New(binders, opts...)
	if err != nil {
		tb.Errorf("New failed: %v", err)
		tb.FailNow()
		return nil
	}
	return inj
}

// RequireCreate creates an instance of c, failing the test if that does not
// succeed.
func RequireCreate(tb TB, inj *inject.Injector, c *inject.Class) interface{} {
	v, err := inj.CreateInstance(c)
	if err != nil {
		tb.Errorf("could not create %v: %v", c, err)
		tb.FailNow()
	}
	return v
}

// RequireGet resolves the binding name, failing the test if that does not
// succeed.
func RequireGet(tb TB, inj *inject.Injector, name string) interface{} {
	v, err := inj.Get(name)
	if err != nil {
		tb.Errorf("could not resolve %q: %v", name, err)
		tb.FailNow()
	}
	return v
}
