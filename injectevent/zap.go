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
	"go.uber.org/zap"
)

// ZapLogger is an injectevent Logger that logs events to Zap.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Built:
		if e.Err != nil {
			l.Logger.Error("injector build failed", zap.Error(e.Err))
		} else {
			l.Logger.Info("injector built",
				zap.Int("binders", e.Binders),
				zap.Int("bindings", e.Bindings),
				zap.Int("interceptors", e.Interceptors),
			)
		}
	case *Created:
		fields := []zap.Field{zap.String("class", e.ClassName)}
		if e.ProviderName != "" {
			fields = append(fields, zap.String("provider", e.ProviderName))
		}
		if e.Err != nil {
			l.Logger.Error("create failed", append(fields, zap.Error(e.Err))...)
		} else {
			l.Logger.Debug("created", append(fields,
				zap.Bool("shared", e.Shared),
				zap.String("runtime", e.Runtime.String()),
			)...)
		}
	case *Injected:
		l.Logger.Debug("inject",
			zap.String("class", e.ClassName),
			zap.String("name", e.Name),
			zap.String("kind", e.Kind),
		)
	case *Unresolved:
		l.Logger.Warn("unresolved dependency",
			zap.String("class", e.ClassName),
			zap.String("name", e.Name),
		)
	case *MethodInjected:
		if e.Err != nil {
			l.Logger.Error("method injection failed",
				zap.String("class", e.ClassName),
				zap.String("method", e.MethodName),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Debug("method injected",
				zap.String("class", e.ClassName),
				zap.String("method", e.MethodName),
			)
		}
	case *Intercepted:
		l.Logger.Debug("intercepted",
			zap.String("class", e.ClassName),
			zap.String("method", e.MethodName),
			zap.String("joinpoint", e.JoinPoint),
			zap.String("interceptor", e.InterceptorName),
		)
	case *Configured:
		if e.Err != nil {
			l.Logger.Error("module configure failed",
				zap.String("module", e.ModuleName),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("configured", zap.String("module", e.ModuleName))
		}
	case *Invoked:
		if e.Err != nil {
			l.Logger.Error("invoke failed",
				zap.Error(e.Err),
				zap.String("stack", e.Trace),
				zap.String("function", e.FunctionName),
			)
		} else {
			l.Logger.Info("invoked", zap.String("function", e.FunctionName))
		}
	}
}
