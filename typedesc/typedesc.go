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

// Package typedesc describes the constructors of a type: their ordered,
// named parameters and a way to invoke them.
//
// mocktail never inspects functions directly. It asks a Reflector for the
// constructors of a target type and works purely on the descriptors it
// returns. Catalog is the Reflector used by default; it is populated with
// plain constructor functions.
package typedesc

import (
	"fmt"
	"reflect"
)

// Param is a single named constructor parameter.
type Param struct {
	Name string
	Type reflect.Type
}

func (p Param) String() string {
	if p.Name == "" {
		return p.Type.String()
	}
	return fmt.Sprintf("%s %s", p.Name, p.Type)
}

// Constructor describes one way of building a value.
type Constructor interface {
	fmt.Stringer

	// Params returns the parameters of the constructor in declaration order.
	Params() []Param

	// Invoke calls the constructor with one argument per parameter, in the
	// order of Params.
	Invoke(args []reflect.Value) (reflect.Value, error)
}

// Reflector lists the constructors of a type.
type Reflector interface {
	// Constructors returns the constructors of t in their declared order.
	Constructors(t reflect.Type) []Constructor
}

// HasParam reports whether ctor declares a parameter with the given type
// and name.
func HasParam(ctor Constructor, t reflect.Type, name string) bool {
	for _, p := range ctor.Params() {
		if p.Type == t && p.Name == name {
			return true
		}
	}
	return false
}
