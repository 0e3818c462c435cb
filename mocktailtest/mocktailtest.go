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

// Package mocktailtest wraps mocktail for use in tests: every failure is
// reported through the test instead of being returned.
package mocktailtest

import (
	"strings"

	"go.uber.org/mocktail"
	"go.uber.org/mocktail/mocktailevent"
)

// TB is a subset of the standard library's testing.TB interface. It's
// satisfied by both *testing.T and *testing.B.
type TB interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
}

// MockTail is a wrapper around mocktail.MockTail that fails the test on
// errors. Events are written to the test log.
type MockTail[T any] struct {
	*mocktail.MockTail[T]

	tb TB
}

// New builds a MockTail for T, failing the test if the options are invalid
// or the dependencies cannot be initialized.
func New[T any](tb TB, opts ...mocktail.Option) *MockTail[T] {
	opts = append([]mocktail.Option{
		mocktail.WithLogger(&mocktailevent.ConsoleLogger{W: testWriter{tb}}),
	}, opts...)

	m, err := mocktail.New[T](opts...)
	if err != nil {
		tb.Errorf("mocktail.New failed: %v", err)
		tb.FailNow()
	}
	return &MockTail[T]{MockTail: m, tb: tb}
}

// RequireBuild builds T, failing the test on error.
func (m *MockTail[T]) RequireBuild() T {
	if m.MockTail == nil {
		return m.fail("Build", errNotInitialized)
	}
	v, err := m.Build()
	if err != nil {
		return m.fail("Build", err)
	}
	return v
}

// RequireBuildMock builds a partial double of T, failing the test on error.
func (m *MockTail[T]) RequireBuildMock() T {
	if m.MockTail == nil {
		return m.fail("BuildMock", errNotInitialized)
	}
	v, err := m.BuildMock()
	if err != nil {
		return m.fail("BuildMock", err)
	}
	return v
}

// LogSlots writes every dependency slot of T to the test log.
func (m *MockTail[T]) LogSlots() {
	if m.MockTail == nil {
		m.fail("LogSlots", errNotInitialized)
		return
	}
	for _, s := range m.Slots() {
		configured := ""
		if s.ManuallyConfigured {
			configured = ", set"
		}
		m.tb.Logf("%v %v (%v%v)", s.Name, s.Type, s.Kind, configured)
	}
}

func (m *MockTail[T]) fail(op string, err error) T {
	var zero T
	m.tb.Errorf("mocktail %v failed: %v", op, err)
	m.tb.FailNow()
	return zero
}

type testWriter struct{ tb TB }

func (w testWriter) Write(p []byte) (int, error) {
	w.tb.Logf("%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
