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

package inject

import "fmt"

// Config is a configuration object that can check itself and then apply
// itself.
type Config interface {
	// Verify reports whether the configuration is usable.
	Verify() error

	// Setup applies the configuration.
	Setup() error
}

// Configure verifies cfg and, if it is valid, sets it up.
func Configure(cfg Config) error {
	if cfg == nil {
		return fmt.Errorf("cannot configure a nil inject.Config")
	}
	if err := cfg.Verify(); err != nil {
		return fmt.Errorf("invalid configuration %T: %w", cfg, err)
	}
	if err := cfg.Setup(); err != nil {
		return fmt.Errorf("could not set up %T: %w", cfg, err)
	}
	return nil
}
