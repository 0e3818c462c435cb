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

package errs

import (
	"fmt"
	"reflect"
	"strings"
)

// NotMockableError is returned when a type that has to be substituted
// cannot be.
type NotMockableError struct {
	Type reflect.Type
}

func (e *NotMockableError) Error() string {
	return fmt.Sprintf("the type %q is not mockable", typeName(e.Type))
}

// DependencyNotAvailableError is returned when no dependency slot matches the
// requested type (and name), or when the matching slot cannot serve the request.
type DependencyNotAvailableError struct {
	Type reflect.Type
	Name string
}

func (e *DependencyNotAvailableError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("there is no dependency with the type %q", typeName(e.Type))
	}
	return fmt.Sprintf("there is no dependency with the type %q and name %q", typeName(e.Type), e.Name)
}

// DuplicatedDependencyError is returned when a dependency is requested by type
// alone but more than one named slot of that type exists.
type DuplicatedDependencyError struct {
	Type  reflect.Type
	Names []string
}

func (e *DuplicatedDependencyError) Error() string {
	return fmt.Sprintf(
		"there is more than one dependency with the type %q (%s), "+
			"you need to specify the dependency type along with the name",
		typeName(e.Type), strings.Join(e.Names, ", "))
}

// ConstructionError is returned when a value cannot be constructed, for
// example because the target type has no constructors.
type ConstructionError struct {
	Type   reflect.Type
	Reason string
	Err    error
}

func (e *ConstructionError) Error() string {
	msg := fmt.Sprintf("cannot construct %q: %s", typeName(e.Type), e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// ArgumentError is returned when an argument passed by the caller is invalid.
type ArgumentError struct {
	Type     reflect.Type
	Name     string
	Argument string
	Reason   string
}

func (e *ArgumentError) Error() string {
	target := fmt.Sprintf("dependency type %q", typeName(e.Type))
	if e.Name != "" {
		target += fmt.Sprintf(" and name %q", e.Name)
	}
	return fmt.Sprintf("invalid argument %q for %s: %s", e.Argument, target, e.Reason)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
