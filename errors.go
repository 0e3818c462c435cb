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

import "go.uber.org/mocktail/internal/errs"

// Errors returned by mocktail. Match them with errors.As.
type (
	// NotMockableError is returned when a type that must be substituted
	// cannot be, for example by BuildMock or any Get accessor.
	NotMockableError = errs.NotMockableError

	// DependencyNotAvailableError is returned when no slot matches the
	// requested type and name, when a slot that was Set is requested
	// through Get, or when a slot without a usable value is needed to
	// build the target.
	DependencyNotAvailableError = errs.DependencyNotAvailableError

	// DuplicatedDependencyError is returned when a dependency is requested
	// without a name but several slots share its type.
	DuplicatedDependencyError = errs.DuplicatedDependencyError

	// ConstructionError is returned when the target has no constructor, or
	// a deferred wrapper cannot be built.
	ConstructionError = errs.ConstructionError

	// ArgumentError is returned when Set receives a nil or mistyped value.
	ArgumentError = errs.ArgumentError
)
