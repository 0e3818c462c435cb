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

// Package selector picks the constructor used to build a target type.
package selector

import (
	"reflect"

	"go.uber.org/mocktail/typedesc"
)

// SelectBest walks ctors in order and returns the best match for the
// manually configured (type, name) pairs in manual.
//
// The first constructor is always adopted as the initial best. A later
// constructor replaces the current best only if it declares every manually
// configured parameter and has strictly more parameters. As a result a
// later constructor that satisfies manual but is shorter than an earlier
// one that does not is never chosen.
//
// SelectBest returns false if ctors is empty.
func SelectBest(ctors []typedesc.Constructor, manual map[reflect.Type][]string) (typedesc.Constructor, bool) {
	var best typedesc.Constructor
	for _, candidate := range ctors {
		if isBetter(best, candidate, manual) {
			best = candidate
		}
	}
	return best, best != nil
}

func isBetter(best, candidate typedesc.Constructor, manual map[reflect.Type][]string) bool {
	if best == nil {
		return true
	}
	if !Satisfies(candidate, manual) {
		return false
	}
	return len(best.Params()) < len(candidate.Params())
}

// Satisfies reports whether ctor declares every (type, name) pair in manual.
func Satisfies(ctor typedesc.Constructor, manual map[reflect.Type][]string) bool {
	for t, names := range manual {
		for _, name := range names {
			if !typedesc.HasParam(ctor, t, name) {
				return false
			}
		}
	}
	return true
}
