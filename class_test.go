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

package inject_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/inject"
)

type Test2 struct{ name string }

func NewTest2(name string) *Test2 { return &Test2{name: name} }

func (t *Test2) GetName() string { return t.name }

type Test struct {
	x     string
	test2 *Test2
}

func NewTest(x string, test2 *Test2) *Test {
	return &Test{x: x, test2: test2}
}

type Greeter struct {
	Prefix string `inject:"prefix"`

	Greet  func(name string) string
	Shout  func(name string) string
	hidden func()

	calls []string
}

func (g *Greeter) SetPrefix(prefix string) { g.Prefix = prefix }

func (g *Greeter) Record(what string) { g.calls = append(g.calls, what) }

func (g *Greeter) String() string { return "greeter" }

func TestNewClass(t *testing.T) {
	t.Parallel()

	t.Run("constructor", func(t *testing.T) {
		t.Parallel()

		c := inject.NewClass(NewTest, inject.Params("name1", "test2"))
		require.NoError(t, c.Err())
		assert.Equal(t, "go.uber.org.inject_test.Test", c.Name())
		assert.Equal(t, reflect.TypeOf(&Test{}), c.Type())
		assert.Equal(t, []string{"name1", "test2"}, c.Params())
		assert.Empty(t, c.Methods())
	})

	t.Run("constructor with error", func(t *testing.T) {
		t.Parallel()

		c := inject.NewClass(func(name string) (*Test2, error) { return nil, nil }, inject.Params("name"))
		require.NoError(t, c.Err())
		assert.Equal(t, reflect.TypeOf(&Test2{}), c.Type())
	})

	t.Run("struct", func(t *testing.T) {
		t.Parallel()

		c := inject.NewClass((*Greeter)(nil))
		require.NoError(t, c.Err())
		assert.Equal(t, []string{"prefix"}, c.Params())
		assert.Equal(t, []string{"Greet", "Shout"}, c.Methods(), "only exported func fields are method slots")
	})

	t.Run("name override", func(t *testing.T) {
		t.Parallel()

		c := inject.NewClass((*Greeter)(nil), inject.Name("app.services.Greeter"))
		assert.Equal(t, "app.services.Greeter", c.Name())
		assert.Equal(t, "app.services.Greeter", c.String())
	})

	t.Run("struct with embedded fields", func(t *testing.T) {
		t.Parallel()

		type base struct {
			Store string `inject:"store"`
		}
		type service struct {
			base
			Name  string `inject:""`
			Plain int
		}
		c := inject.NewClass((*service)(nil))
		require.NoError(t, c.Err())
		assert.Equal(t, []string{"store", "Name"}, c.Params(), "empty tag falls back to the field name")
	})
}

func TestNewClassErrors(t *testing.T) {
	t.Parallel()

	type unexported struct {
		store string `inject:"store"`
	}

	tests := []struct {
		desc string
		give *inject.Class
		want string
	}{
		{
			desc: "nil target",
			give: inject.NewClass(nil),
			want: "expects a constructor function or a struct pointer, got nil",
		},
		{
			desc: "not a function",
			give: inject.NewClass(42),
			want: "expects a constructor function or a struct pointer, got int",
		},
		{
			desc: "no results",
			give: inject.NewClass(func() {}),
			want: "must return a value and optionally an error",
		},
		{
			desc: "second result not an error",
			give: inject.NewClass(func() (int, int) { return 0, 0 }),
			want: "second result",
		},
		{
			desc: "variadic",
			give: inject.NewClass(func(names ...string) int { return 0 }, inject.Params("names")),
			want: "variadic constructor",
		},
		{
			desc: "param count",
			give: inject.NewClass(NewTest2),
			want: "takes 1 argument(s) but 0 param name(s) were declared",
		},
		{
			desc: "nil constructor",
			give: inject.NewClass((func() *Test)(nil)),
			want: "constructor is a nil",
		},
		{
			desc: "struct with params",
			give: inject.NewClass((*Greeter)(nil), inject.Params("prefix")),
			want: `names its dependencies with "inject" tags, not Params`,
		},
		{
			desc: "unexported tagged field",
			give: inject.NewClass((*unexported)(nil)),
			want: `is tagged "inject" but unexported`,
		},
		{
			desc: "bad shared accessor",
			give: inject.NewClass(NewTest2, inject.Params("name"), inject.Shared(func(string) *Test2 { return nil })),
			want: "accessor of go.uber.org.inject_test.Test2 must be a func() *inject_test.Test2",
		},
		{
			desc: "nil parent",
			give: inject.NewClass((*Greeter)(nil), inject.Extends(nil)),
			want: "parent of go.uber.org.inject_test.Greeter is nil",
		},
		{
			desc: "unknown injected method",
			give: inject.NewClass((*Greeter)(nil), inject.InjectMethod("Nope")),
			want: `has no method "Nope"`,
		},
		{
			desc: "injected method arity",
			give: inject.NewClass((*Greeter)(nil), inject.InjectMethod("SetPrefix")),
			want: `method "SetPrefix" takes 1 argument(s) but 0 param name(s) were declared`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			err := tt.give.Err()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "class_test.go", "errors point at the declaration")
		})
	}
}

func TestNilClassErr(t *testing.T) {
	t.Parallel()

	var c *inject.Class
	assert.Error(t, c.Err())
}

func TestInject(t *testing.T) {
	t.Parallel()

	t.Run("accumulates", func(t *testing.T) {
		t.Parallel()

		c := inject.NewClass((*Greeter)(nil), inject.InjectMethod("SetPrefix", "prefix"))
		inject.Inject(c, inject.Method("Record", "what"))
		require.NoError(t, c.Err())
		assert.Equal(t, []inject.MethodInjection{
			{Name: "SetPrefix", Params: []string{"prefix"}},
			{Name: "Record", Params: []string{"what"}},
		}, c.Injections())
	})

	t.Run("formatting methods are skipped", func(t *testing.T) {
		t.Parallel()

		c := inject.NewClass((*Greeter)(nil))
		inject.Inject(c, inject.Method("String"), inject.Method("Error"), inject.Method("GoString"))
		require.NoError(t, c.Err())
		assert.Empty(t, c.Injections())
	})

	t.Run("errors accumulate on the class", func(t *testing.T) {
		t.Parallel()

		c := inject.NewClass((*Greeter)(nil))
		inject.Inject(c, inject.Method("Missing"), inject.Method("Record"))
		err := c.Err()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `has no method "Missing"`)
		assert.Contains(t, err.Error(), `method "Record" takes 1 argument(s)`)
	})
}
