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

// Package substitute creates the test doubles mocktail injects.
//
// Go cannot synthesise implementations of arbitrary types at run time, so
// the default Substituter, Registry, works from factories registered by the
// caller: typically constructors of testify mocks or hand-written fakes.
//
//	reg := substitute.NewRegistry()
//	substitute.For(reg, func() Clock { return new(mockClock) })
package substitute

import (
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/mocktail/internal/errs"
	"go.uber.org/mocktail/internal/mtreflect"
	"go.uber.org/mocktail/typedesc"
)

// Substituter creates behaviour-less stand-ins for types.
type Substituter interface {
	// CanSubstitute reports whether Substitute can create doubles of t.
	CanSubstitute(t reflect.Type) bool

	// CanSubstituteThrough reports whether SubstituteThrough can create
	// partial doubles of t.
	CanSubstituteThrough(t reflect.Type) bool

	// Substitute creates a new double of t.
	Substitute(t reflect.Type) (reflect.Value, error)

	// SubstituteThrough creates a double of t that is constructed through
	// ctor with the given arguments, so that it keeps the collaborators
	// injected by the constructor.
	SubstituteThrough(t reflect.Type, ctor typedesc.Constructor, args []reflect.Value) (reflect.Value, error)
}

// Registry is a Substituter backed by registered factories.
type Registry struct {
	leaves   map[reflect.Type]reflect.Value // func() S
	partials map[reflect.Type]reflect.Value // func(T) T
}

var _ Substituter = (*Registry)(nil)

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		leaves:   make(map[reflect.Type]reflect.Value),
		partials: make(map[reflect.Type]reflect.Value),
	}
}

// For registers fn as the factory of doubles of S.
func For[S any](r *Registry, fn func() S) *Registry {
	r.leaves[typeOf[S]()] = reflect.ValueOf(fn)
	return r
}

// Through registers wrap as the way to turn a constructed T into a partial
// double of T.
func Through[T any](r *Registry, wrap func(base T) T) *Registry {
	r.partials[typeOf[T]()] = reflect.ValueOf(wrap)
	return r
}

// Register registers fn, which must have the shape func() S, as the factory
// of doubles of S.
func (r *Registry) Register(fn interface{}) error {
	fv, err := checkFunc(fn)
	if err != nil {
		return err
	}
	ft := fv.Type()
	if ft.NumIn() != 0 || ft.NumOut() != 1 || mtreflect.IsErr(ft.Out(0)) {
		return errors.Errorf("substitute factory must have the shape func() S, got %v", ft)
	}
	r.leaves[ft.Out(0)] = fv
	return nil
}

// RegisterThrough registers fn, which must have the shape func(T) T, as the
// partial double wrapper of T.
func (r *Registry) RegisterThrough(fn interface{}) error {
	fv, err := checkFunc(fn)
	if err != nil {
		return err
	}
	ft := fv.Type()
	if ft.NumIn() != 1 || ft.NumOut() != 1 || ft.In(0) != ft.Out(0) {
		return errors.Errorf("partial substitute must have the shape func(T) T, got %v", ft)
	}
	r.partials[ft.Out(0)] = fv
	return nil
}

func checkFunc(fn interface{}) (reflect.Value, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		return reflect.Value{}, errors.Errorf("substitute factory must be a function, got %T", fn)
	}
	if fv.IsNil() {
		return reflect.Value{}, errors.Errorf("substitute factory %T is nil", fn)
	}
	return fv, nil
}

// CanSubstitute reports whether a factory is registered for t.
func (r *Registry) CanSubstitute(t reflect.Type) bool {
	_, ok := r.leaves[t]
	return ok
}

// CanSubstituteThrough reports whether a partial wrapper is registered for
// t.
func (r *Registry) CanSubstituteThrough(t reflect.Type) bool {
	_, ok := r.partials[t]
	return ok
}

// Substitute calls the factory registered for t. Every call produces a new
// double.
func (r *Registry) Substitute(t reflect.Type) (reflect.Value, error) {
	fn, ok := r.leaves[t]
	if !ok {
		return reflect.Value{}, &errs.NotMockableError{Type: t}
	}
	v := fn.Call(nil)[0]
	if mtreflect.IsNil(v) {
		return reflect.Value{}, &errs.ConstructionError{
			Type:   t,
			Reason: "substitute factory " + mtreflect.FuncName(fn.Interface()) + " returned nil",
		}
	}
	return v, nil
}

// SubstituteThrough invokes ctor and hands the result to the partial
// wrapper registered for t.
func (r *Registry) SubstituteThrough(t reflect.Type, ctor typedesc.Constructor, args []reflect.Value) (reflect.Value, error) {
	wrap, ok := r.partials[t]
	if !ok {
		return reflect.Value{}, &errs.NotMockableError{Type: t}
	}
	base, err := ctor.Invoke(args)
	if err != nil {
		return reflect.Value{}, errors.Wrapf(err, "constructor %v failed", ctor)
	}
	v := wrap.Call([]reflect.Value{base})[0]
	if mtreflect.IsNil(v) {
		return reflect.Value{}, &errs.ConstructionError{
			Type:   t,
			Reason: "partial substitute " + mtreflect.FuncName(wrap.Interface()) + " returned nil",
		}
	}
	return v, nil
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
