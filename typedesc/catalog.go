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

package typedesc

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"go.uber.org/dig"
	"go.uber.org/mocktail/internal/mtreflect"
)

// Catalog is a Reflector backed by registered constructor functions.
//
// Parameter names are taken, in order of preference, from the names passed
// to Add, from the fields of a parameter object embedding dig.In (the
// `name:"..."` tag, or the field name), or derived from the parameter type.
type Catalog struct {
	ctors map[reflect.Type][]Constructor
}

var _ Reflector = (*Catalog)(nil)

// NewCatalog builds an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{ctors: make(map[reflect.Type][]Constructor)}
}

// Constructors returns the constructors added for t, in the order they were
// added.
func (c *Catalog) Constructors(t reflect.Type) []Constructor {
	return c.ctors[t]
}

// Add registers fn as a constructor of target.
//
// fn must be a function whose first result is assignable to target,
// optionally followed by an error. If names are given there must be one per
// parameter of fn; an empty name leaves that parameter unnamed.
func (c *Catalog) Add(target reflect.Type, fn interface{}, names ...string) error {
	ctor, err := newFuncConstructor(target, fn, names)
	if err != nil {
		return err
	}
	c.ctors[target] = append(c.ctors[target], ctor)
	return nil
}

type funcConstructor struct {
	fn     reflect.Value
	target reflect.Type
	params []Param
	hasErr bool

	// Set when fn takes a single parameter object; fields holds the struct
	// field index backing each entry of params.
	paramObject reflect.Type
	fields      []int
}

func newFuncConstructor(target reflect.Type, fn interface{}, names []string) (*funcConstructor, error) {
	if fn == nil {
		return nil, errors.New("constructor must be a function, got nil")
	}
	fv := reflect.ValueOf(fn)
	ft := fv.Type()
	if ft.Kind() != reflect.Func {
		return nil, errors.Errorf("constructor must be a function, got %v", ft)
	}
	if fv.IsNil() {
		return nil, errors.Errorf("constructor %v is a nil function", ft)
	}
	if ft.IsVariadic() {
		return nil, errors.Errorf("constructor %v must not be variadic", ft)
	}

	c := &funcConstructor{fn: fv, target: target}
	switch {
	case ft.NumOut() == 1 && !mtreflect.IsErr(ft.Out(0)):
	case ft.NumOut() == 2 && !mtreflect.IsErr(ft.Out(0)) && mtreflect.IsErr(ft.Out(1)):
		c.hasErr = true
	default:
		return nil, errors.Errorf(
			"constructor %v must return a value, optionally followed by an error", ft)
	}
	if !ft.Out(0).AssignableTo(target) {
		return nil, errors.Errorf("constructor %v returns %v, which is not assignable to %v",
			ft, ft.Out(0), target)
	}

	var err error
	switch {
	case len(names) > 0:
		c.params, err = explicitParams(ft, names)
	case ft.NumIn() == 1 && ft.In(0).Kind() == reflect.Struct && dig.IsIn(ft.In(0)):
		c.paramObject = ft.In(0)
		c.params, c.fields = paramObjectParams(ft.In(0))
	default:
		c.params, err = derivedParams(ft)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "constructor %v", mtreflect.FuncName(fn))
	}
	return c, nil
}

func explicitParams(ft reflect.Type, names []string) ([]Param, error) {
	if len(names) != ft.NumIn() {
		return nil, errors.Errorf("got %d parameter names for %d parameters", len(names), ft.NumIn())
	}
	params := make([]Param, ft.NumIn())
	for i := range params {
		params[i] = Param{Name: names[i], Type: ft.In(i)}
	}
	return params, checkUnique(params)
}

func paramObjectParams(st reflect.Type) ([]Param, []int) {
	var (
		params []Param
		fields []int
	)
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if f.Anonymous && dig.IsIn(f.Type) {
			continue
		}
		if f.PkgPath != "" {
			continue // unexported
		}
		name := f.Tag.Get("name")
		if name == "" {
			name = f.Name
		}
		params = append(params, Param{Name: name, Type: f.Type})
		fields = append(fields, i)
	}
	return params, fields
}

func derivedParams(ft reflect.Type) ([]Param, error) {
	params := make([]Param, ft.NumIn())
	for i := range params {
		t := ft.In(i)
		name := lowerFirst(mtreflect.ShortName(t))
		if name == "" {
			name = fmt.Sprintf("arg%d", i)
		}
		params[i] = Param{Name: name, Type: t}
	}
	if err := checkUnique(params); err != nil {
		return nil, errors.Wrap(err, "pass explicit parameter names")
	}
	return params, nil
}

func checkUnique(params []Param) error {
	type key struct {
		t    reflect.Type
		name string
	}
	seen := make(map[key]struct{}, len(params))
	for _, p := range params {
		if p.Name == "" {
			continue
		}
		k := key{p.Type, p.Name}
		if _, ok := seen[k]; ok {
			return errors.Errorf("parameter %q of type %v is declared more than once", p.Name, p.Type)
		}
		seen[k] = struct{}{}
	}
	return nil
}

func lowerFirst(s string) string {
	runes := []rune(s)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	switch {
	case n == 0:
		return s
	case n == len(runes):
		return strings.ToLower(s)
	case n == 1:
		runes[0] = unicode.ToLower(runes[0])
	default:
		// "HTTPClient": the last capital starts the next word.
		for i := 0; i < n-1; i++ {
			runes[i] = unicode.ToLower(runes[i])
		}
	}
	return string(runes)
}

func (c *funcConstructor) Params() []Param {
	params := make([]Param, len(c.params))
	copy(params, c.params)
	return params
}

func (c *funcConstructor) Invoke(args []reflect.Value) (reflect.Value, error) {
	if len(args) != len(c.params) {
		return reflect.Value{}, errors.Errorf("%v expects %d arguments, got %d", c, len(c.params), len(args))
	}

	callArgs := args
	if c.paramObject != nil {
		obj := reflect.New(c.paramObject).Elem()
		for i, idx := range c.fields {
			obj.Field(idx).Set(args[i])
		}
		callArgs = []reflect.Value{obj}
	}

	out := c.fn.Call(callArgs)
	if c.hasErr {
		if err, _ := out[1].Interface().(error); err != nil {
			return reflect.Value{}, err
		}
	}

	result := reflect.New(c.target).Elem()
	result.Set(out[0])
	return result, nil
}

func (c *funcConstructor) String() string {
	return mtreflect.FuncName(c.fn.Interface())
}
