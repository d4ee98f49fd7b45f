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

// Package allinjectevents implements a Go analysis pass that reports
// injectevent.Logger implementations which leave some injectevent.Event
// types unhandled. Loggers that handle no event at all, such as no-op
// loggers and fakes, are ignored, and so are test files.
package allinjectevents

import (
	"go/ast"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const _injecteventPath = "go.uber.org/inject/injectevent"

// Analyzer reports LogEvent methods of injectevent.Loggers that do not
// handle every injectevent.Event.
var Analyzer = &analysis.Analyzer{
	Name:     "allinjectevents",
	Doc:      "report injectevent.Loggers that miss injectevent.Events",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// catalog is what the pass knows about the injectevent package in scope.
type catalog struct {
	logger *types.Interface
	events typeutil.Map // types.Type => struct{}
}

func run(pass *analysis.Pass) (interface{}, error) {
	pkg := lookupPackage(pass.Pkg, _injecteventPath)
	if pkg == nil {
		return nil, nil
	}
	cat, ok := newCatalog(pkg)
	if !ok {
		return nil, nil
	}

	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	ins.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		fn := n.(*ast.FuncDecl)
		if fn.Recv == nil || fn.Body == nil || fn.Name.Name != "LogEvent" {
			return
		}
		if strings.HasSuffix(pass.Fset.Position(fn.Pos()).Filename, "_test.go") {
			return
		}

		recv := pass.TypesInfo.TypeOf(fn.Recv.List[0].Type)
		if recv == nil || !types.Implements(recv, cat.logger) {
			return
		}

		handled := cat.handledBy(pass.TypesInfo, fn.Body)
		if handled.Len() == 0 {
			return
		}
		if missing := cat.missing(handled); len(missing) > 0 {
			pass.Reportf(fn.Pos(), "%v doesn't handle [%v]",
				types.TypeString(recv, relativeTo(pass.Pkg)), strings.Join(missing, " "))
		}
	})
	return nil, nil
}

// lookupPackage finds the package with the given import path among pkg
// and its direct imports.
func lookupPackage(pkg *types.Package, path string) *types.Package {
	if pkg.Path() == path {
		return pkg
	}
	for _, imp := range pkg.Imports() {
		if imp.Path() == path {
			return imp
		}
	}
	return nil
}

func newCatalog(pkg *types.Package) (*catalog, bool) {
	scope := pkg.Scope()
	logger, ok := underlyingInterface(scope.Lookup("Logger"))
	if !ok {
		return nil, false
	}
	event, ok := underlyingInterface(scope.Lookup("Event"))
	if !ok {
		return nil, false
	}

	cat := catalog{logger: logger}
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !tn.Exported() || types.IsInterface(tn.Type()) {
			continue
		}
		for _, t := range []types.Type{tn.Type(), types.NewPointer(tn.Type())} {
			if types.Implements(t, event) {
				cat.events.Set(t, struct{}{})
				break
			}
		}
	}
	return &cat, cat.events.Len() > 0
}

func underlyingInterface(obj types.Object) (*types.Interface, bool) {
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, false
	}
	iface, ok := tn.Type().Underlying().(*types.Interface)
	return iface, ok
}

// handledBy collects the event types named in type switch cases and type
// assertions within body.
func (c *catalog) handledBy(info *types.Info, body *ast.BlockStmt) *typeutil.Map {
	var handled typeutil.Map
	note := func(expr ast.Expr) {
		if t := info.TypeOf(expr); t != nil && c.events.At(t) != nil {
			handled.Set(t, struct{}{})
		}
	}

	ast.Inspect(body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.CaseClause:
			for _, expr := range n.List {
				note(expr)
			}
		case *ast.TypeAssertExpr:
			// x.(type) in a type switch has no Type.
			if n.Type != nil {
				note(n.Type)
			}
		}
		return true
	})
	return &handled
}

func (c *catalog) missing(handled *typeutil.Map) []string {
	var names []string
	c.events.Iterate(func(t types.Type, _ interface{}) {
		if handled.At(t) == nil {
			names = append(names, types.TypeString(t, func(*types.Package) string { return "" }))
		}
	})
	sort.Strings(names)
	return names
}

func relativeTo(pkg *types.Package) types.Qualifier {
	return func(other *types.Package) string {
		if other == pkg {
			return ""
		}
		return other.Name()
	}
}
