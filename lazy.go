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
	"sync"
	"sync/atomic"

	"go.uber.org/mocktail/internal/dependency"
	"go.uber.org/mocktail/internal/errs"
)

// Lazy is a value of type S that is created on first use.
//
// Constructors taking a *Lazy[S] receive a handle yielding the double of S.
// Lazy is safe for concurrent use.
type Lazy[S any] struct {
	once    sync.Once
	create  func() S
	value   S
	created atomic.Bool
}

// NewLazy builds a Lazy that calls create on first use.
func NewLazy[S any](create func() S) *Lazy[S] {
	return &Lazy[S]{create: create}
}

// Value returns the value, creating it if needed.
func (l *Lazy[S]) Value() S {
	l.once.Do(func() {
		l.value = l.create()
		l.created.Store(true)
	})
	return l.value
}

// IsValueCreated reports whether Value has been called.
func (l *Lazy[S]) IsValueCreated() bool {
	return l.created.Load()
}

// lazyHandle is implemented by every *Lazy[S]. Both methods are safe to call
// on a nil receiver.
type lazyHandle interface {
	elem() reflect.Type
	wrap(v reflect.Value) reflect.Value
}

var _lazyHandleType = reflect.TypeOf((*lazyHandle)(nil)).Elem()

func (*Lazy[S]) elem() reflect.Type {
	return reflect.TypeOf((*S)(nil)).Elem()
}

func (*Lazy[S]) wrap(v reflect.Value) reflect.Value {
	s, _ := v.Interface().(S)
	return reflect.ValueOf(NewLazy(func() S { return s }))
}

// wrappers recognises *Lazy[S] and func() S parameters.
type wrappers struct{}

var _ dependency.Wrapper = wrappers{}

func (wrappers) Unwrap(t reflect.Type) (dependency.WrapperKind, reflect.Type) {
	if h, ok := lazyOf(t); ok {
		return dependency.WrapLazy, h.elem()
	}
	return dependency.Funcs.Unwrap(t)
}

func (wrappers) Wrap(t reflect.Type, kind dependency.WrapperKind, v reflect.Value) (reflect.Value, error) {
	if kind != dependency.WrapLazy {
		return dependency.Funcs.Wrap(t, kind, v)
	}
	h, ok := lazyOf(t)
	if !ok {
		return reflect.Value{}, &errs.ConstructionError{Type: t, Reason: "no suitable lazy constructor found"}
	}
	return h.wrap(v), nil
}

func lazyOf(t reflect.Type) (lazyHandle, bool) {
	if t.Kind() != reflect.Ptr || !t.Implements(_lazyHandleType) {
		return nil, false
	}
	h, ok := reflect.Zero(t).Interface().(lazyHandle)
	return h, ok
}
