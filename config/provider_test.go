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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider(t *testing.T) {
	t.Parallel()

	p, err := NewStaticProvider(map[string]interface{}{
		"hello.world": 42,
		"hello.there": "general",
		"db": map[string]interface{}{
			"dsn": "postgres://localhost",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "static", p.Name())
	assert.Equal(t, 42, p.Get("hello.world").Value())
	assert.Equal(t, "general", p.Get("hello.there").Value())
	assert.Equal(t, "postgres://localhost", p.Get("db.dsn").Value())
	assert.Equal(t, []string{"db.dsn", "hello.there", "hello.world"}, p.Keys())
}

func TestStaticProviderError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give interface{}
	}{
		{"func", map[string]interface{}{"fn": func() {}}},
		{"nested chan", map[string]interface{}{"a.b": make(chan int)}},
		{"top-level func", func() {}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var err error
			assert.NotPanics(t, func() {
				_, err = NewStaticProvider(tt.give)
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "could not marshal static config")
		})
	}
}

func TestProviderGroup(t *testing.T) {
	t.Parallel()

	base, err := NewStaticProvider(map[string]interface{}{"id": "base", "only.base": 1})
	require.NoError(t, err)
	override, err := NewYAMLProviderFromBytes([]byte("id: override\nonly:\n  override: 2\n"))
	require.NoError(t, err)

	pg := NewProviderGroup("test-group", base, override)
	assert.Equal(t, "test-group", pg.Name())
	assert.Equal(t, "override", pg.Get("id").Value())
	assert.Equal(t, "test-group", pg.Get("id").Source())
	assert.Equal(t, 1, pg.Get("only.base").Value())
	assert.Equal(t, 2, pg.Get("only.override").Value())
	assert.False(t, pg.Get("missing").HasValue())
	assert.Equal(t, []string{"id", "only.base", "only.override"}, pg.Keys())

	top, err := NewStaticProvider(map[string]interface{}{"id": "top"})
	require.NoError(t, err)
	assert.Equal(t, "top", pg.(providerGroup).WithProvider(top).Get("id").Value())
}

func TestProviderGroupScope(t *testing.T) {
	t.Parallel()

	data := map[string]interface{}{"hello.world": 42}
	static, err := NewStaticProvider(data)
	require.NoError(t, err)

	pg := NewProviderGroup("test-group", static)
	assert.Equal(t, 42, NewScopedProvider("hello", pg).Get("world").Value())
}

func TestExpandProvider(t *testing.T) {
	t.Parallel()

	static, err := NewStaticProvider(map[string]interface{}{
		"owner": "${OWNER_EMAIL}",
		"port":  8080,
	})
	require.NoError(t, err)

	env := map[string]string{"OWNER_EMAIL": "hello@there.yasss"}
	p := NewExpandProvider(static, func(key string) string { return env[key] })

	assert.Equal(t, "expand", p.Name())
	assert.Equal(t, "hello@there.yasss", p.Get("owner").Value())
	assert.Equal(t, 8080, p.Get("port").Value(), "non-strings are not expanded")
	assert.False(t, p.Get("nope").HasValue())
	assert.Equal(t, []string{"owner", "port"}, p.Keys())
}

func TestValueType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give interface{}
		want ValueType
	}{
		{nil, Invalid},
		{"s", String},
		{1, Integer},
		{int64(1), Integer},
		{true, Bool},
		{1.5, Float},
		{[]interface{}{1}, Slice},
		{map[string]interface{}{}, Dictionary},
		{struct{}{}, Invalid},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetType(tt.give), "%v", tt.give)
	}
	assert.Equal(t, "dictionary", Dictionary.String())
	assert.Equal(t, "invalid", ValueType(99).String())
}
