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
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/mocktail/internal/mtreflect"
	"go.uber.org/mocktail/mocktailevent"
	"go.uber.org/mocktail/substitute"
	"go.uber.org/mocktail/typedesc"
	"go.uber.org/multierr"
)

// An Option configures a MockTail.
type Option interface {
	fmt.Stringer

	apply(*config)
}

type config struct {
	ctors     []constructorOption
	reflector typedesc.Reflector

	leaves      []interface{}
	partials    []interface{}
	substituter substitute.Substituter

	logger mocktailevent.Logger
}

// Options bundles a group of options together into a single option.
func Options(opts ...Option) Option {
	return optionGroup(opts)
}

type optionGroup []Option

func (og optionGroup) apply(c *config) {
	for _, opt := range og {
		opt.apply(c)
	}
}

func (og optionGroup) String() string {
	items := make([]string, len(og))
	for i, opt := range og {
		items[i] = fmt.Sprint(opt)
	}
	return fmt.Sprintf("mocktail.Options(%s)", strings.Join(items, ", "))
}

// Constructor registers fn as a constructor of the target type. fn must
// return a value assignable to the target, optionally followed by an error.
//
// names name the parameters of fn, one per parameter; an empty name leaves
// the parameter unnamed and unresolvable. Without names, a parameter
// object embedding In supplies the names, or they are derived from the
// parameter types.
//
// Constructors are considered in the order they are registered.
func Constructor(fn interface{}, names ...string) Option {
	return constructorOption{fn: fn, names: names}
}

type constructorOption struct {
	fn    interface{}
	names []string
}

func (o constructorOption) apply(c *config) {
	c.ctors = append(c.ctors, o)
}

func (o constructorOption) String() string {
	if len(o.names) == 0 {
		return fmt.Sprintf("mocktail.Constructor(%v)", mtreflect.FuncName(o.fn))
	}
	return fmt.Sprintf("mocktail.Constructor(%v, %q)", mtreflect.FuncName(o.fn), o.names)
}

// WithReflector lists the constructors of the target type through r
// instead of the functions passed to Constructor. It cannot be combined
// with Constructor.
func WithReflector(r typedesc.Reflector) Option {
	return reflectorOption{r}
}

type reflectorOption struct{ r typedesc.Reflector }

func (o reflectorOption) apply(c *config) { c.reflector = o.r }

func (o reflectorOption) String() string {
	return fmt.Sprintf("mocktail.WithReflector(%T)", o.r)
}

// Substitutes registers factories of doubles. Each must have the shape
// func() S; it is called once per dependency slot of type S.
func Substitutes(fns ...interface{}) Option {
	return substitutesOption(fns)
}

type substitutesOption []interface{}

func (o substitutesOption) apply(c *config) {
	c.leaves = append(c.leaves, o...)
}

func (o substitutesOption) String() string {
	items := make([]string, len(o))
	for i, fn := range o {
		items[i] = mtreflect.FuncName(fn)
	}
	return fmt.Sprintf("mocktail.Substitutes(%s)", strings.Join(items, ", "))
}

// PartialSubstitute registers wrap, which must have the shape func(T) T, as
// the way BuildMock turns the constructed target into a partial double.
func PartialSubstitute(wrap interface{}) Option {
	return partialOption{wrap}
}

type partialOption struct{ wrap interface{} }

func (o partialOption) apply(c *config) {
	c.partials = append(c.partials, o.wrap)
}

func (o partialOption) String() string {
	return fmt.Sprintf("mocktail.PartialSubstitute(%v)", mtreflect.FuncName(o.wrap))
}

// WithSubstituter creates doubles through s instead of the factories passed
// to Substitutes and PartialSubstitute. It cannot be combined with either.
func WithSubstituter(s substitute.Substituter) Option {
	return substituterOption{s}
}

type substituterOption struct{ s substitute.Substituter }

func (o substituterOption) apply(c *config) { c.substituter = o.s }

func (o substituterOption) String() string {
	return fmt.Sprintf("mocktail.WithSubstituter(%T)", o.s)
}

// WithLogger sends mocktail events to l. By default nothing is logged.
func WithLogger(l mocktailevent.Logger) Option {
	return loggerOption{l}
}

type loggerOption struct{ l mocktailevent.Logger }

func (o loggerOption) apply(c *config) { c.logger = o.l }

func (o loggerOption) String() string {
	return fmt.Sprintf("mocktail.WithLogger(%T)", o.l)
}

func (c *config) buildReflector(target reflect.Type) (typedesc.Reflector, error) {
	if c.reflector != nil {
		if len(c.ctors) > 0 {
			return nil, errors.New("mocktail.WithReflector cannot be combined with mocktail.Constructor")
		}
		return c.reflector, nil
	}

	catalog := typedesc.NewCatalog()
	var err error
	for _, ctor := range c.ctors {
		err = multierr.Append(err, catalog.Add(target, ctor.fn, ctor.names...))
	}
	return catalog, err
}

func (c *config) buildSubstituter() (substitute.Substituter, error) {
	if c.substituter != nil {
		if len(c.leaves) > 0 || len(c.partials) > 0 {
			return nil, errors.New(
				"mocktail.WithSubstituter cannot be combined with mocktail.Substitutes or mocktail.PartialSubstitute")
		}
		return c.substituter, nil
	}

	reg := substitute.NewRegistry()
	var err error
	for _, fn := range c.leaves {
		err = multierr.Append(err, reg.Register(fn))
	}
	for _, fn := range c.partials {
		err = multierr.Append(err, reg.RegisterThrough(fn))
	}
	return reg, err
}
