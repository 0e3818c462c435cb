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

import (
	"fmt"
	"io"
)

// ConsoleLogger is a mocktail event logger that attempts to write
// human-readable messages to the console.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	fmt.Fprintf(l.W, "[MockTail] "+msg+"\n", args...)
}

// LogEvent logs the given event to the provided writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *SlotCreated:
		l.logf("SLOT\t\t%v %v (%v)", e.Name, e.TypeName, e.Kind)
	case *Configured:
		l.logf("SET\t\t%v %v", e.Name, e.TypeName)
	case *ConstructorSelected:
		l.logf("SELECT\t%v <= %v (%d params)", e.TypeName, e.Constructor, e.Params)
	case *Built:
		verb := "BUILD"
		if e.Substitute {
			verb = "BUILD MOCK"
		}
		if e.Err != nil {
			l.logf("ERROR\t\t%v %v failed: %v", verb, e.TypeName, e.Err)
		} else {
			l.logf("%v\t%v <= %v", verb, e.TypeName, e.Constructor)
		}
	}
}
