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
	"fmt"
	"io"
)

// ConsoleLogger is an injectevent Logger that attempts to write
// human-readable messages to the console.
//
// Use this during development.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	fmt.Fprintf(l.W, "[Inject] "+msg+"\n", args...)
}

// LogEvent logs the given event to the provided writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Built:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to build injector: %v", e.Err)
		} else {
			l.logf("BUILT\t\t%d binder(s), %d binding(s), %d interceptor(s)",
				e.Binders, e.Bindings, e.Interceptors)
		}
	case *Created:
		switch {
		case e.Err != nil:
			l.logf("ERROR\t\tFailed to create %v: %v", e.ClassName, e.Err)
		case e.ProviderName != "":
			l.logf("CREATE\t\t%v <= %v", e.ClassName, e.ProviderName)
		case e.Shared:
			l.logf("CREATE\t\t%v (shared)", e.ClassName)
		default:
			l.logf("CREATE\t\t%v", e.ClassName)
		}
	case *Injected:
		l.logf("INJECT\t\t%v <= %q (%v)", e.ClassName, e.Name, e.Kind)
	case *Unresolved:
		l.logf("WARN\t\t%v: no binding for %q", e.ClassName, e.Name)
	case *MethodInjected:
		if e.Err != nil {
			l.logf("ERROR\t\tMethod injection %v.%v failed: %v", e.ClassName, e.MethodName, e.Err)
		} else {
			l.logf("METHOD\t\t%v.%v", e.ClassName, e.MethodName)
		}
	case *Intercepted:
		l.logf("INTERCEPT\t%v.%v %v %v", e.ClassName, e.MethodName, e.JoinPoint, e.InterceptorName)
	case *Configured:
		if e.Err != nil {
			l.logf("ERROR\t\tModule %v failed to configure: %v", e.ModuleName, e.Err)
		} else {
			l.logf("MODULE\t\t%v", e.ModuleName)
		}
	case *Invoked:
		if e.Err != nil {
			l.logf("ERROR\t\tinject.Init(%v) called from:\n%+vFailed: %v",
				e.FunctionName, e.Trace, e.Err)
		} else {
			l.logf("INVOKE\t\t%v", e.FunctionName)
		}
	}
}
