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

// Package instantiate builds a target type from the dependencies held by a
// container.
package instantiate

import (
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/mocktail/internal/dependency"
	"go.uber.org/mocktail/internal/errs"
	"go.uber.org/mocktail/internal/selector"
	"go.uber.org/mocktail/mocktailevent"
	"go.uber.org/mocktail/substitute"
	"go.uber.org/mocktail/typedesc"
)

// Instantiator builds values of Target.
type Instantiator struct {
	Target      reflect.Type
	Container   *dependency.Container
	Reflector   typedesc.Reflector
	Substituter substitute.Substituter
	Logger      mocktailevent.Logger
}

// Build invokes the best constructor of Target with the configured
// dependencies.
func (i *Instantiator) Build() (reflect.Value, error) {
	ctor, args, err := i.prepare()
	if err != nil {
		return i.done(ctor, false, reflect.Value{}, err)
	}
	v, err := ctor.Invoke(args)
	if err != nil {
		err = errors.Wrapf(err, "constructor %v failed", ctor)
	}
	return i.done(ctor, false, v, err)
}

// BuildSubstitute asks the substituter for a partial double of Target
// constructed through the best constructor.
func (i *Instantiator) BuildSubstitute() (reflect.Value, error) {
	ctor, args, err := i.prepare()
	if err != nil {
		return i.done(ctor, true, reflect.Value{}, err)
	}
	v, err := i.Substituter.SubstituteThrough(i.Target, ctor, args)
	return i.done(ctor, true, v, err)
}

func (i *Instantiator) prepare() (typedesc.Constructor, []reflect.Value, error) {
	ctors := i.Reflector.Constructors(i.Target)
	ctor, ok := selector.SelectBest(ctors, i.Container.ManuallyConfiguredNames())
	if !ok {
		return nil, nil, &errs.ConstructionError{Type: i.Target, Reason: "no suitable constructor found"}
	}

	params := ctor.Params()
	i.Logger.LogEvent(&mocktailevent.ConstructorSelected{
		TypeName:    i.Target.String(),
		Constructor: ctor.String(),
		Params:      len(params),
	})

	args := make([]reflect.Value, len(params))
	for n, p := range params {
		if p.Name == "" {
			return ctor, nil, &errs.DependencyNotAvailableError{Type: p.Type}
		}
		v, err := i.Container.ConfiguredDependency(p.Type, p.Name)
		if err != nil {
			return ctor, nil, err
		}
		args[n] = v
	}
	return ctor, args, nil
}

func (i *Instantiator) done(ctor typedesc.Constructor, sub bool, v reflect.Value, err error) (reflect.Value, error) {
	e := &mocktailevent.Built{
		TypeName:   i.Target.String(),
		Substitute: sub,
		Err:        err,
	}
	if ctor != nil {
		e.Constructor = ctor.String()
	}
	i.Logger.LogEvent(e)
	return v, err
}
