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

package mocktailtest

import (
	"github.com/pkg/errors"
	"go.uber.org/mocktail"
)

var errNotInitialized = errors.New("mocktail was not initialized")

// Set injects value for the only parameter of type S, failing the test on
// error. It returns m so that calls can be chained.
func Set[S, T any](m *MockTail[T], value S) *MockTail[T] {
	if m.MockTail == nil {
		m.fail("Set", errNotInitialized)
		return m
	}
	if err := mocktail.Set[S](m.MockTail, value); err != nil {
		m.fail("Set", err)
	}
	return m
}

// SetNamed injects value for the parameter of type S called name, failing
// the test on error. It returns m so that calls can be chained.
func SetNamed[S, T any](m *MockTail[T], name string, value S) *MockTail[T] {
	if m.MockTail == nil {
		m.fail("SetNamed", errNotInitialized)
		return m
	}
	if err := mocktail.SetNamed[S](m.MockTail, name, value); err != nil {
		m.fail("SetNamed", err)
	}
	return m
}

// RequireGet is mocktail.Get, failing the test on error.
func RequireGet[S, T any](m *MockTail[T]) S {
	return requireGet(m, "Get", mocktail.Get[S, T])
}

// RequireGetNamed is mocktail.GetNamed, failing the test on error.
func RequireGetNamed[S, T any](m *MockTail[T], name string) S {
	return requireGet(m, "GetNamed", func(mt *mocktail.MockTail[T]) (S, error) {
		return mocktail.GetNamed[S](mt, name)
	})
}

// RequireGetLazy is mocktail.GetLazy, failing the test on error.
func RequireGetLazy[S, T any](m *MockTail[T]) S {
	return requireGet(m, "GetLazy", mocktail.GetLazy[S, T])
}

// RequireGetLazyNamed is mocktail.GetLazyNamed, failing the test on error.
func RequireGetLazyNamed[S, T any](m *MockTail[T], name string) S {
	return requireGet(m, "GetLazyNamed", func(mt *mocktail.MockTail[T]) (S, error) {
		return mocktail.GetLazyNamed[S](mt, name)
	})
}

// RequireGetFunc is mocktail.GetFunc, failing the test on error.
func RequireGetFunc[S, T any](m *MockTail[T]) S {
	return requireGet(m, "GetFunc", mocktail.GetFunc[S, T])
}

// RequireGetFuncNamed is mocktail.GetFuncNamed, failing the test on error.
func RequireGetFuncNamed[S, T any](m *MockTail[T], name string) S {
	return requireGet(m, "GetFuncNamed", func(mt *mocktail.MockTail[T]) (S, error) {
		return mocktail.GetFuncNamed[S](mt, name)
	})
}

func requireGet[S, T any](m *MockTail[T], op string, get func(*mocktail.MockTail[T]) (S, error)) S {
	var zero S
	if m.MockTail == nil {
		m.fail(op, errNotInitialized)
		return zero
	}
	s, err := get(m.MockTail)
	if err != nil {
		m.fail(op, err)
		return zero
	}
	return s
}
