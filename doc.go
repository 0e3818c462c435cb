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

// Package mocktail builds systems under test with every constructor
// dependency replaced by a test double.
//
// Given a target type and its constructors, mocktail creates one dependency
// slot per distinct (type, name) parameter across all constructors. Slots
// whose type can be substituted hold a double; the others hold the zero
// value of their type. Callers override slots with concrete collaborators
// and then build the target through the constructor that best matches what
// they configured.
//
//	mt, err := mocktail.New[*Service](
//		mocktail.Constructor(NewService, "logger"),
//		mocktail.Constructor(NewServiceWithClock, "logger", "clock"),
//		mocktail.Substitutes(
//			func() Logger { return new(mockLogger) },
//			func() Clock { return new(mockClock) },
//		),
//	)
//	if err != nil {
//		// ...
//	}
//	if err := mocktail.SetNamed[Clock](mt, "clock", fixedClock); err != nil {
//		// ...
//	}
//	svc, err := mt.Build() // NewServiceWithClock(<mock Logger>, fixedClock)
//
// # Parameter names
//
// Parameters are matched by type and name. Names are passed to Constructor
// explicitly, read from a parameter object embedding [In], or derived from
// the parameter type ("Clock" becomes "clock").
//
// # Deferred dependencies
//
// A parameter of type *[Lazy][S] or func() S receives a handle that yields
// the double of S. Use [GetLazy] and [GetFunc] to reach those doubles.
//
// # Constructor selection
//
// Constructors are considered in the order they were registered. The first
// one is the initial choice; a later one replaces it only if it declares
// every manually configured (type, name) pair and has strictly more
// parameters.
package mocktail
