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

package dependency

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/mocktail/internal/mtreflect"
	"go.uber.org/mocktail/mocktailevent"
)

// WrapperKind says how a mocked dependency is delivered to a constructor.
type WrapperKind int

const (
	// WrapNone delivers the substitute itself.
	WrapNone WrapperKind = iota
	// WrapLazy delivers a lazy handle that yields the substitute when forced.
	WrapLazy
	// WrapFactory delivers a func() S that returns the substitute.
	WrapFactory
)

func (k WrapperKind) String() string {
	switch k {
	case WrapNone:
		return "none"
	case WrapLazy:
		return "lazy"
	case WrapFactory:
		return "factory"
	}
	return fmt.Sprintf("WrapperKind(%d)", int(k))
}

// Wrapper recognises and builds the deferred forms of a dependency.
type Wrapper interface {
	// Unwrap reports the wrapper kind of t and the type it defers. It
	// returns WrapNone for types that are not wrappers.
	Unwrap(t reflect.Type) (WrapperKind, reflect.Type)

	// Wrap builds a value of the wrapper type t that yields v.
	Wrap(t reflect.Type, kind WrapperKind, v reflect.Value) (reflect.Value, error)
}

// Funcs is a Wrapper that knows about func() S factories only.
var Funcs Wrapper = funcs{}

type funcs struct{}

func (funcs) Unwrap(t reflect.Type) (WrapperKind, reflect.Type) {
	if t.Kind() == reflect.Func && t.Name() == "" && t.NumIn() == 0 &&
		t.NumOut() == 1 && !mtreflect.IsErr(t.Out(0)) {
		return WrapFactory, t.Out(0)
	}
	return WrapNone, nil
}

func (funcs) Wrap(t reflect.Type, kind WrapperKind, v reflect.Value) (reflect.Value, error) {
	if kind != WrapFactory || t.Kind() != reflect.Func || t.NumOut() != 1 {
		return reflect.Value{}, errors.Errorf("%v is not a %v wrapper", t, kind)
	}
	result := reflect.New(t.Out(0)).Elem()
	result.Set(v)
	return reflect.MakeFunc(t, func([]reflect.Value) []reflect.Value {
		return []reflect.Value{result}
	}), nil
}

// errNoValue is returned by RealValue for a real dependency whose type has
// no usable default and that was never configured.
var errNoValue = errors.New("dependency has no value")

// Dependency is a single constructor parameter slot.
type Dependency interface {
	// Type is the declared type of the parameter. It never changes.
	Type() reflect.Type

	// ManuallyConfigured reports whether the caller supplied the value.
	ManuallyConfigured() bool

	// RealValue is the value to pass to a constructor.
	RealValue() (reflect.Value, error)
}

// Real is a dependency holding a concrete value.
type Real struct {
	typ    reflect.Type
	value  reflect.Value
	manual bool
}

var _ Dependency = (*Real)(nil)

// NewReal builds a Real holding the zero value of t. Types whose zero value
// is nil get no value at all and must be configured before use.
func NewReal(t reflect.Type) *Real {
	d := &Real{typ: t}
	if mtreflect.HasDefault(t) {
		d.value = reflect.Zero(t)
	}
	return d
}

// NewConfigured builds a manually configured Real holding v.
func NewConfigured(t reflect.Type, v reflect.Value) *Real {
	value := reflect.New(t).Elem()
	value.Set(v)
	return &Real{typ: t, value: value, manual: true}
}

func (d *Real) Type() reflect.Type { return d.typ }

func (d *Real) ManuallyConfigured() bool { return d.manual }

func (d *Real) RealValue() (reflect.Value, error) {
	if !d.value.IsValid() {
		return reflect.Value{}, errNoValue
	}
	return d.value, nil
}

// Mock is a dependency satisfied by a substitute, delivered directly or
// through a wrapper.
type Mock struct {
	typ        reflect.Type
	kind       WrapperKind
	substitute reflect.Value
	wrapper    Wrapper
}

var _ Dependency = (*Mock)(nil)

// NewMock builds a Mock of declared type t delivering substitute through a
// wrapper of the given kind.
func NewMock(t reflect.Type, kind WrapperKind, substitute reflect.Value, w Wrapper) *Mock {
	return &Mock{typ: t, kind: kind, substitute: substitute, wrapper: w}
}

func (d *Mock) Type() reflect.Type { return d.typ }

func (d *Mock) ManuallyConfigured() bool { return false }

// Kind returns the wrapper kind of the dependency.
func (d *Mock) Kind() WrapperKind { return d.kind }

// Substitute returns the test double behind the dependency.
func (d *Mock) Substitute() reflect.Value { return d.substitute }

// RealValue returns the substitute, or a fresh wrapper around it.
func (d *Mock) RealValue() (reflect.Value, error) {
	if d.kind == WrapNone {
		return d.substitute, nil
	}
	return d.wrapper.Wrap(d.typ, d.kind, d.substitute)
}

func kindOf(d Dependency) string {
	m, ok := d.(*Mock)
	if !ok {
		return mocktailevent.KindReal
	}
	switch m.kind {
	case WrapLazy:
		return mocktailevent.KindLazy
	case WrapFactory:
		return mocktailevent.KindFunc
	}
	return mocktailevent.KindMock
}
