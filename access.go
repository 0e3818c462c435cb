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

package mocktail

import (
	"reflect"

	"go.uber.org/mocktail/internal/errs"
)

// Get returns the double injected for the only parameter of type S.
func Get[S, T any](m *MockTail[T]) (S, error) {
	return get[S](m, typeOf[S](), "")
}

// GetNamed returns the double injected for the parameter of type S called
// name.
func GetNamed[S, T any](m *MockTail[T], name string) (S, error) {
	return get[S](m, typeOf[S](), name)
}

// GetLazy returns the double behind the only *Lazy[S] parameter.
func GetLazy[S, T any](m *MockTail[T]) (S, error) {
	return get[S](m, typeOf[*Lazy[S]](), "")
}

// GetLazyNamed returns the double behind the *Lazy[S] parameter called name.
func GetLazyNamed[S, T any](m *MockTail[T], name string) (S, error) {
	return get[S](m, typeOf[*Lazy[S]](), name)
}

// GetFunc returns the double returned by the only func() S parameter.
func GetFunc[S, T any](m *MockTail[T]) (S, error) {
	return get[S](m, typeOf[func() S](), "")
}

// GetFuncNamed returns the double returned by the func() S parameter called
// name.
func GetFuncNamed[S, T any](m *MockTail[T], name string) (S, error) {
	return get[S](m, typeOf[func() S](), name)
}

func get[S, T any](m *MockTail[T], key reflect.Type, name string) (S, error) {
	var zero S
	dep := typeOf[S]()
	v, err := m.container.Get(dep, key, name)
	if err != nil {
		return zero, err
	}
	s, ok := v.Interface().(S)
	if !ok {
		return zero, &errs.DependencyNotAvailableError{Type: dep, Name: name}
	}
	return s, nil
}

// Set injects value for the only parameter of type S. Once set, the
// parameter is passed value and is no longer available through Get.
func Set[S, T any](m *MockTail[T], value S) error {
	return m.container.Set(typeOf[S](), "", reflect.ValueOf(&value).Elem())
}

// SetNamed injects value for the parameter of type S called name.
func SetNamed[S, T any](m *MockTail[T], name string, value S) error {
	return m.container.Set(typeOf[S](), name, reflect.ValueOf(&value).Elem())
}
