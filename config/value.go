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
	"reflect"
)

// A ValueType is a type-description of a configuration value
type ValueType int

const (
	// Invalid represents an unset or invalid config type
	Invalid ValueType = iota
	// String is, well, you know what it is
	String
	// Integer holds numbers without decimals
	Integer
	// Bool is true or false
	Bool
	// Float holds numbers with decimals
	Float
	// Slice holds a list of values
	Slice
	// Dictionary holds nested keys
	Dictionary
)

func (t ValueType) String() string {
	switch t {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Bool:
		return "bool"
	case Float:
		return "float"
	case Slice:
		return "slice"
	case Dictionary:
		return "dictionary"
	default:
		return "invalid"
	}
}

// GetType returns the ValueType of the provided object
func GetType(value interface{}) ValueType {
	if value == nil {
		return Invalid
	}

	switch value.(type) {
	case string:
		return String
	case int, int32, int64, uint, uint32, uint64:
		return Integer
	case bool:
		return Bool
	case float64, float32:
		return Float
	default:
		switch reflect.TypeOf(value).Kind() {
		case reflect.Slice:
			return Slice
		case reflect.Map:
			return Dictionary
		}
	}

	return Invalid
}

// A Value holds the value of a configuration
type Value struct {
	provider Provider
	key      string
	value    interface{}
	found    bool
	Type     ValueType
}

// NewValue creates a configuration value from a provider and a set
// of parameters describing the key
func NewValue(provider Provider, key string, value interface{}, found bool) Value {
	return Value{
		provider: provider,
		key:      key,
		value:    value,
		found:    found,
		Type:     GetType(value),
	}
}

// Source returns a configuration provider's name
func (cv Value) Source() string {
	if cv.provider == nil {
		return ""
	}
	return cv.provider.Name()
}

// Key returns the key the value was looked up with
func (cv Value) Key() string { return cv.key }

// HasValue returns whether the configuration has a value that can be used
func (cv Value) HasValue() bool { return cv.found }

// Value returns the underlying configuration's value. Nested keys are
// returned as map[string]interface{} and lists as []interface{}.
func (cv Value) Value() interface{} { return cv.value }

// String prints out underlying value in Value with fmt.Sprint.
func (cv Value) String() string {
	if !cv.found {
		return ""
	}
	return fmt.Sprint(cv.value)
}
