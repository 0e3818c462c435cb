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

package mocktailevent

// Event defines an event emitted by mocktail.
type Event interface {
	event() // Only mocktailevent can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*SlotCreated) event()         {}
func (*Configured) event()          {}
func (*ConstructorSelected) event() {}
func (*Built) event()               {}

// Slot kinds reported by SlotCreated.
const (
	KindMock = "mock"
	KindLazy = "lazy"
	KindFunc = "func"
	KindReal = "real"
)

// SlotCreated is emitted when a dependency slot is created for a
// constructor parameter.
type SlotCreated struct {
	// TypeName is the declared type of the parameter.
	TypeName string
	// Name is the parameter name.
	Name string
	// Kind is one of KindMock, KindLazy, KindFunc or KindReal.
	Kind string
}

// Configured is emitted when a caller replaces a slot with a concrete value.
type Configured struct {
	TypeName string
	Name     string
}

// ConstructorSelected is emitted once a constructor has been chosen for the
// target type.
type ConstructorSelected struct {
	TypeName    string
	Constructor string
	Params      int
}

// Built is emitted after the target has been constructed, or construction
// failed.
type Built struct {
	TypeName    string
	Constructor string

	// Substitute is set if the target was built as a partial double.
	Substitute bool

	Err error
}
