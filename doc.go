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

// Package inject is a name-keyed dependency injection container.
//
// Types that the container builds are declared once as Classes, with the
// binding names of their dependencies spelled out:
//
//	var ServerClass = inject.NewClass(NewServer, inject.Params("addr", "store"))
//
//	var StoreClass = inject.NewClass((*Store)(nil)) // fields tagged `inject:"name"`
//
// Configuration code binds names to values, classes or providers on a Binder,
//
//	b := inject.NewBinder()
//	b.Bind("addr", ":8080")
//	b.Named("store").To(StoreClass).In(inject.Singleton)
//
// and an Injector built from one or more Binders resolves them:
//
//	inj, err := inject.New([]*inject.Binder{b})
//	server, err := inj.CreateInstance(ServerClass)
//
// Unbound names resolve to the zero value of the type they are injected
// into unless the Injector is Strict.
//
// Interception
//
// Interceptors attach cross-cutting logic to the method slots of a class:
// exported fields of function type on the struct the class produces.
// Classes are selected with InNamespace, InSubnamespace, InstanceOf,
// SubclassOf or Any, and slots with Like or Any.
//
//	b.BindInterceptor(inject.InSubnamespace("example.com.app"), inject.Like("Handle*"),
//		inject.After, func(mi *inject.MethodInvocation) {
//			log.Println("called", mi.QualifiedName())
//		})
//
// When several interceptors wrap the same slot, the one registered last runs
// outermost.
//
// Modules
//
// Init configures a Binder per Module, builds the Injector and invokes a
// function with it.
package inject
