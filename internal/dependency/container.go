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
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/mocktail/internal/errs"
	"go.uber.org/mocktail/internal/mtreflect"
	"go.uber.org/mocktail/mocktailevent"
	"go.uber.org/mocktail/substitute"
	"go.uber.org/mocktail/typedesc"
	"go.uber.org/multierr"
)

// Config holds the collaborators of a Container.
type Config struct {
	Reflector   typedesc.Reflector
	Substituter substitute.Substituter
	Wrapper     Wrapper
	Logger      mocktailevent.Logger
}

// Container owns the dependency slots of one target type: one slot per
// distinct (declared type, parameter name) across all of its constructors.
//
// A Container is not safe for concurrent use.
type Container struct {
	target reflect.Type
	sub    substitute.Substituter
	wrap   Wrapper
	log    mocktailevent.Logger

	slots map[reflect.Type]*slotSet
	types []reflect.Type // insertion order of slots
}

// slotSet holds the slots of one declared type keyed by parameter name.
type slotSet struct {
	names []string // insertion order
	deps  map[string]Dependency
}

// SlotInfo describes a slot for diagnostics.
type SlotInfo struct {
	Type               reflect.Type
	Name               string
	Kind               string
	ManuallyConfigured bool
}

// NewContainer builds the container for target, creating a slot for every
// named parameter of every constructor of target.
func NewContainer(target reflect.Type, cfg Config) (*Container, error) {
	c := &Container{
		target: target,
		sub:    cfg.Substituter,
		wrap:   cfg.Wrapper,
		log:    cfg.Logger,
		slots:  make(map[reflect.Type]*slotSet),
	}
	if c.wrap == nil {
		c.wrap = Funcs
	}
	if c.log == nil {
		c.log = mocktailevent.NopLogger
	}
	if err := c.initialize(cfg.Reflector); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) initialize(r typedesc.Reflector) error {
	var err error
	for _, ctor := range r.Constructors(c.target) {
		for _, p := range ctor.Params() {
			if p.Name == "" {
				continue
			}
			if _, ok := c.find(p.Type, p.Name); ok {
				continue
			}
			d, derr := c.newDependency(p.Type)
			if derr != nil {
				err = multierr.Append(err, errors.Wrapf(derr, "parameter %v of %v", p, ctor))
				continue
			}
			c.add(p.Type, p.Name, d)
			c.log.LogEvent(&mocktailevent.SlotCreated{
				TypeName: p.Type.String(),
				Name:     p.Name,
				Kind:     kindOf(d),
			})
		}
	}
	return err
}

// newDependency picks the dependency variant for a parameter of type t.
func (c *Container) newDependency(t reflect.Type) (Dependency, error) {
	if kind, inner := c.wrap.Unwrap(t); kind != WrapNone && c.sub.CanSubstitute(inner) {
		s, err := c.sub.Substitute(inner)
		if err != nil {
			return nil, err
		}
		return NewMock(t, kind, s, c.wrap), nil
	}
	if c.sub.CanSubstitute(t) {
		s, err := c.sub.Substitute(t)
		if err != nil {
			return nil, err
		}
		return NewMock(t, WrapNone, s, c.wrap), nil
	}
	return NewReal(t), nil
}

func (c *Container) add(t reflect.Type, name string, d Dependency) {
	set, ok := c.slots[t]
	if !ok {
		set = &slotSet{deps: make(map[string]Dependency)}
		c.slots[t] = set
		c.types = append(c.types, t)
	}
	set.names = append(set.names, name)
	set.deps[name] = d
}

func (c *Container) find(t reflect.Type, name string) (Dependency, bool) {
	set, ok := c.slots[t]
	if !ok {
		return nil, false
	}
	d, ok := set.deps[name]
	return d, ok
}

// lookup resolves the slot for key. With an empty name exactly one slot of
// that type must exist.
func (c *Container) lookup(key reflect.Type, name string) (string, Dependency, error) {
	set, ok := c.slots[key]
	if !ok {
		return "", nil, &errs.DependencyNotAvailableError{Type: key, Name: name}
	}
	if name == "" {
		if len(set.names) > 1 {
			names := make([]string, len(set.names))
			copy(names, set.names)
			return "", nil, &errs.DuplicatedDependencyError{Type: key, Names: names}
		}
		name = set.names[0]
	}
	d, ok := set.deps[name]
	if !ok {
		return "", nil, &errs.DependencyNotAvailableError{Type: key, Name: name}
	}
	return name, d, nil
}

// Get returns the substitute behind the slot keyed by key (and name, if not
// empty). dep is the type the caller asked for: key itself, or the type a
// lazy or factory wrapper key defers.
//
// dep must be substitutable and the slot must still hold a mock; slots that
// were Set are no longer available through Get.
func (c *Container) Get(dep, key reflect.Type, name string) (reflect.Value, error) {
	if !c.sub.CanSubstitute(dep) {
		return reflect.Value{}, &errs.NotMockableError{Type: dep}
	}
	_, d, err := c.lookup(key, name)
	if err != nil {
		return reflect.Value{}, err
	}
	m, ok := d.(*Mock)
	if !ok {
		return reflect.Value{}, &errs.DependencyNotAvailableError{Type: dep, Name: name}
	}
	return m.Substitute(), nil
}

// Set replaces the slot keyed by key (and name, if not empty) with v and
// flags it as manually configured.
func (c *Container) Set(key reflect.Type, name string, v reflect.Value) error {
	resolved, _, err := c.lookup(key, name)
	if err != nil {
		return err
	}
	if mtreflect.IsNil(v) {
		return &errs.ArgumentError{Type: key, Name: name, Argument: "value", Reason: "cannot set a nil value"}
	}
	if !v.Type().AssignableTo(key) {
		return &errs.ArgumentError{
			Type:     key,
			Name:     name,
			Argument: "value",
			Reason:   v.Type().String() + " is not assignable to the dependency type",
		}
	}
	c.slots[key].deps[resolved] = NewConfigured(key, v)
	c.log.LogEvent(&mocktailevent.Configured{TypeName: key.String(), Name: resolved})
	return nil
}

// ManuallyConfiguredNames returns, for every type with at least one
// manually configured slot, the names of those slots.
func (c *Container) ManuallyConfiguredNames() map[reflect.Type][]string {
	names := make(map[reflect.Type][]string)
	for _, t := range c.types {
		set := c.slots[t]
		for _, name := range set.names {
			if set.deps[name].ManuallyConfigured() {
				names[t] = append(names[t], name)
			}
		}
	}
	return names
}

// ConfiguredDependency returns the value to pass for the parameter (t, name).
func (c *Container) ConfiguredDependency(t reflect.Type, name string) (reflect.Value, error) {
	d, ok := c.find(t, name)
	if !ok {
		return reflect.Value{}, &errs.DependencyNotAvailableError{Type: t, Name: name}
	}
	v, err := d.RealValue()
	if errors.Is(err, errNoValue) {
		return reflect.Value{}, &errs.DependencyNotAvailableError{Type: t, Name: name}
	}
	if err != nil {
		return reflect.Value{}, &errs.ConstructionError{Type: t, Reason: "cannot wrap dependency " + name, Err: err}
	}
	return v, nil
}

// Slots lists every slot in creation order.
func (c *Container) Slots() []SlotInfo {
	var infos []SlotInfo
	for _, t := range c.types {
		set := c.slots[t]
		for _, name := range set.names {
			d := set.deps[name]
			infos = append(infos, SlotInfo{
				Type:               t,
				Name:               name,
				Kind:               kindOf(d),
				ManuallyConfigured: d.ManuallyConfigured(),
			})
		}
	}
	return infos
}
