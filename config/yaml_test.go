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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var yamlConfig1 = []byte(`
appid: keyvalue
desc: A simple keyvalue service
appowner: owner@service.com
modules:
  rpc:
    bind: :28941
    ports: [80, 443]
`)

var yamlConfig2 = []byte(`
appid: override
modules:
  rpc:
    timeout: 1.5
    enabled: true
`)

func TestYAMLSimple(t *testing.T) {
	t.Parallel()

	provider, err := NewYAMLProviderFromBytes(yamlConfig1)
	require.NoError(t, err)
	assert.Equal(t, "yaml", provider.Name())

	c := provider.Get("modules.rpc.bind")
	assert.True(t, c.HasValue())
	assert.Equal(t, ":28941", c.Value())
	assert.Equal(t, String, c.Type)
	assert.Equal(t, "modules.rpc.bind", c.Key())
	assert.Equal(t, "yaml", c.Source())

	assert.Equal(t, 443, provider.Get("modules.rpc.ports.1").Value())
	assert.Equal(t, Slice, provider.Get("modules.rpc.ports").Type)
	assert.Equal(t, Dictionary, provider.Get("modules").Type)
}

func TestYAMLMissing(t *testing.T) {
	t.Parallel()

	provider, err := NewYAMLProviderFromBytes(yamlConfig1)
	require.NoError(t, err)

	for _, key := range []string{"nope", "modules.nope", "appid.deeper", "modules.rpc.ports.7", "modules.rpc.ports.x"} {
		v := provider.Get(key)
		assert.False(t, v.HasValue(), key)
		assert.Equal(t, Invalid, v.Type, key)
		assert.Equal(t, "", v.String(), key)
	}
}

func TestYAMLCaseInsensitive(t *testing.T) {
	t.Parallel()

	provider, err := NewYAMLProviderFromBytes(yamlConfig1)
	require.NoError(t, err)
	assert.Equal(t, ":28941", provider.Get("Modules.RPC.Bind").Value())
}

func TestYAMLMerge(t *testing.T) {
	t.Parallel()

	provider, err := NewYAMLProviderFromBytes(yamlConfig1, yamlConfig2)
	require.NoError(t, err)

	assert.Equal(t, "override", provider.Get("appid").Value())
	assert.Equal(t, "A simple keyvalue service", provider.Get("desc").Value())
	assert.Equal(t, ":28941", provider.Get("modules.rpc.bind").Value())
	assert.Equal(t, 1.5, provider.Get("modules.rpc.timeout").Value())
	assert.Equal(t, true, provider.Get("modules.rpc.enabled").Value())
	assert.Equal(t, Float, provider.Get("modules.rpc.timeout").Type)
	assert.Equal(t, Bool, provider.Get("modules.rpc.enabled").Type)
}

func TestYAMLMultipleDocuments(t *testing.T) {
	t.Parallel()

	provider, err := NewYAMLProviderFromReader(strings.NewReader("a: 1\nb: 2\n---\nb: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, provider.Get("a").Value())
	assert.Equal(t, 3, provider.Get("b").Value())
	assert.Equal(t, Integer, provider.Get("b").Type)
}

func TestYAMLKeys(t *testing.T) {
	t.Parallel()

	provider, err := NewYAMLProviderFromBytes(yamlConfig1, yamlConfig2)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"appid",
		"appowner",
		"desc",
		"modules.rpc.bind",
		"modules.rpc.enabled",
		"modules.rpc.ports",
		"modules.rpc.timeout",
	}, provider.Keys())
}

func TestYAMLErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want string
	}{
		{"invalid", "a: [", "could not parse YAML source 0"},
		{"not a mapping", "- a\n- b\n", "YAML source 0 must be a mapping"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			_, err := NewYAMLProviderFromBytes([]byte(tt.give))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestYAMLEmpty(t *testing.T) {
	t.Parallel()

	provider, err := NewYAMLProviderFromBytes(nil, []byte("~"))
	require.NoError(t, err)
	assert.Empty(t, provider.Keys())
	assert.True(t, provider.Get(Root).HasValue())
}

func TestScopedProvider(t *testing.T) {
	t.Parallel()

	provider, err := NewYAMLProviderFromBytes(yamlConfig1)
	require.NoError(t, err)

	assert.Same(t, provider, NewScopedProvider("", provider))

	scoped := NewScopedProvider("modules.rpc", provider)
	assert.Equal(t, ":28941", scoped.Get("bind").Value())
	assert.Equal(t, []string{"bind", "ports"}, scoped.Keys())
	assert.Equal(t, Dictionary, scoped.Get(Root).Type)
}
