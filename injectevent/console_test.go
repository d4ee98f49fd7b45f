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

package injectevent

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger(t *testing.T) {
	t.Parallel()

	someError := errors.New("some error")

	tests := []struct {
		name string
		give Event
		want string
	}{
		{
			name: "Built",
			give: &Built{Binders: 2, Bindings: 3, Interceptors: 1},
			want: "[Inject] BUILT\t\t2 binder(s), 3 binding(s), 1 interceptor(s)\n",
		},
		{
			name: "BuiltError",
			give: &Built{Err: someError},
			want: "[Inject] ERROR\t\tFailed to build injector: some error\n",
		},
		{
			name: "Created",
			give: &Created{ClassName: "app.Foo"},
			want: "[Inject] CREATE\t\tapp.Foo\n",
		},
		{
			name: "CreatedByProvider",
			give: &Created{ClassName: "app.Foo", ProviderName: "app.newFoo()"},
			want: "[Inject] CREATE\t\tapp.Foo <= app.newFoo()\n",
		},
		{
			name: "CreatedShared",
			give: &Created{ClassName: "app.Foo", Shared: true},
			want: "[Inject] CREATE\t\tapp.Foo (shared)\n",
		},
		{
			name: "CreatedError",
			give: &Created{ClassName: "app.Foo", Err: someError},
			want: "[Inject] ERROR\t\tFailed to create app.Foo: some error\n",
		},
		{
			name: "Injected",
			give: &Injected{ClassName: "app.Foo", Name: "name1", Kind: "instance"},
			want: "[Inject] INJECT\t\tapp.Foo <= \"name1\" (instance)\n",
		},
		{
			name: "Unresolved",
			give: &Unresolved{ClassName: "app.Foo", Name: "missing"},
			want: "[Inject] WARN\t\tapp.Foo: no binding for \"missing\"\n",
		},
		{
			name: "MethodInjected",
			give: &MethodInjected{ClassName: "app.Foo", MethodName: "SetBar"},
			want: "[Inject] METHOD\t\tapp.Foo.SetBar\n",
		},
		{
			name: "Intercepted",
			give: &Intercepted{ClassName: "app.Foo", MethodName: "Echo", JoinPoint: "before", InterceptorName: "app.trace()"},
			want: "[Inject] INTERCEPT\tapp.Foo.Echo before app.trace()\n",
		},
		{
			name: "Configured",
			give: &Configured{ModuleName: "app.DefaultModule"},
			want: "[Inject] MODULE\t\tapp.DefaultModule\n",
		},
		{
			name: "InvokedError",
			give: &Invoked{
				FunctionName: "main.run()",
				Err:          someError,
				Trace:        "foo()\n\tbar/baz.go:42\n",
			},
			want: joinLines(
				"[Inject] ERROR\t\tinject.Init(main.run()) called from:",
				"foo()",
				"\tbar/baz.go:42",
				"Failed: some error",
			),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buff bytes.Buffer
			(&ConsoleLogger{W: &buff}).LogEvent(tt.give)

			assert.Equal(t, tt.want, buff.String())
		})
	}
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		NopLogger.LogEvent(&Built{})
	})
	assert.Equal(t, "NopLogger", NopLogger.String())
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
