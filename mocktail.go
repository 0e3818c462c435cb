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

	"github.com/pkg/errors"
	"go.uber.org/mocktail/internal/dependency"
	"go.uber.org/mocktail/internal/errs"
	"go.uber.org/mocktail/internal/instantiate"
	"go.uber.org/mocktail/mocktailevent"
	"go.uber.org/mocktail/substitute"
	"go.uber.org/multierr"
)

// MockTail builds values of T with their constructor dependencies replaced
// by doubles unless configured otherwise.
//
// A MockTail owns one set of dependency slots for its whole lifetime. It is
// not safe for concurrent use.
type MockTail[T any] struct {
	target    reflect.Type
	sub       substitute.Substituter
	container *dependency.Container
	inst      *instantiate.Instantiator
}

// New builds a MockTail for T, creating a dependency slot for every named
// parameter of every constructor of T.
func New[T any](opts ...Option) (*MockTail[T], error) {
	target := typeOf[T]()

	var cfg config
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = mocktailevent.NopLogger
	}

	reflector, rerr := cfg.buildReflector(target)
	sub, serr := cfg.buildSubstituter()
	if err := multierr.Combine(rerr, serr); err != nil {
		return nil, errors.Wrapf(err, "invalid options for %v", target)
	}

	container, err := dependency.NewContainer(target, dependency.Config{
		Reflector:   reflector,
		Substituter: sub,
		Wrapper:     wrappers{},
		Logger:      cfg.logger,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "cannot initialize dependencies of %v", target)
	}

	return &MockTail[T]{
		target:    target,
		sub:       sub,
		container: container,
		inst: &instantiate.Instantiator{
			Target:      target,
			Container:   container,
			Reflector:   reflector,
			Substituter: sub,
			Logger:      cfg.logger,
		},
	}, nil
}

// Build constructs T through the best matching constructor.
func (m *MockTail[T]) Build() (T, error) {
	v, err := m.inst.Build()
	return cast[T](m.target, v, err)
}

// BuildMock constructs a partial double of T through the best matching
// constructor. A partial substitute of T must be registered.
func (m *MockTail[T]) BuildMock() (T, error) {
	if !m.sub.CanSubstituteThrough(m.target) {
		var zero T
		return zero, &errs.NotMockableError{Type: m.target}
	}
	v, err := m.inst.BuildSubstitute()
	return cast[T](m.target, v, err)
}

// Slot describes one dependency slot.
type Slot = dependency.SlotInfo

// Slots lists the dependency slots of T in creation order.
func (m *MockTail[T]) Slots() []Slot {
	return m.container.Slots()
}

func cast[T any](target reflect.Type, v reflect.Value, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if !v.IsValid() {
		return zero, &errs.ConstructionError{Type: target, Reason: "constructor returned no value"}
	}
	if !v.Type().AssignableTo(target) {
		return zero, &errs.ConstructionError{
			Type:   target,
			Reason: "constructor returned " + v.Type().String(),
		}
	}
	t, _ := v.Interface().(T)
	return t, nil
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
