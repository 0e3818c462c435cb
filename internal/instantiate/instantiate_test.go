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


package instantiate

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mocktail/internal/dependency"
	"go.uber.org/mocktail/internal/errs"
	"go.uber.org/mocktail/internal/mtlog"
	"go.uber.org/mocktail/mocktailevent"
	"go.uber.org/mocktail/substitute"
	"go.uber.org/mocktail/typedesc"
)

type sink interface {
	Write(string)
}

type fakeSink struct{ lines []string }

func (s *fakeSink) Write(line string) { s.lines = append(s.lines, line) }

type pipeline struct {
	src, dst sink
	name     string
}

var (
	_pipelineType = reflect.TypeOf(&pipeline{})
	_sinkType     = reflect.TypeOf((*sink)(nil)).Elem()
	errBroken     = errors.New("broken pipeline")
)

func newPipeline(src, dst sink) *pipeline { return &pipeline{src: src, dst: dst} }

func newNamedPipeline(src, dst sink, name string) *pipeline {
	return &pipeline{src: src, dst: dst, name: name}
}

func newBrokenPipeline(src sink) (*pipeline, error) { return nil, errBroken }

func newTargetPipeline(src sink, dst *fakeSink) *pipeline {
	return &pipeline{src: src, dst: dst}
}

type ctorSpec struct {
	fn    interface{}
	names []string
}

func newInstantiator(t *testing.T, ctors ...ctorSpec) (*Instantiator, *mtlog.Spy) {
	catalog := typedesc.NewCatalog()
	for _, c := range ctors {
		require.NoError(t, catalog.Add(_pipelineType, c.fn, c.names...))
	}

	reg := substitute.For(substitute.NewRegistry(), func() sink { return &fakeSink{} })
	reg = substitute.Through(reg, func(p *pipeline) *pipeline {
		return &pipeline{src: p.src, dst: p.dst, name: "traced"}
	})

	spy := new(mtlog.Spy)
	c, err := dependency.NewContainer(_pipelineType, dependency.Config{
		Reflector:   catalog,
		Substituter: reg,
		Logger:      spy,
	})
	require.NoError(t, err)
	spy.Reset()

	return &Instantiator{
		Target:      _pipelineType,
		Container:   c,
		Reflector:   catalog,
		Substituter: reg,
		Logger:      spy,
	}, spy
}

func TestBuild(t *testing.T) {
	tests := []struct {
		desc        string
		ctors       []ctorSpec
		wantCtor    string
		wantTypes   []string
		wantErrType interface{}
		wantErrIs   error
	}{
		{
			desc:      "Success",
			ctors:     []ctorSpec{{fn: newPipeline, names: []string{"src", "dst"}}},
			wantCtor:  "go.uber.org/mocktail/internal/instantiate.newPipeline()",
			wantTypes: []string{"ConstructorSelected", "Built"},
		},
		{
			desc:        "NoConstructor",
			wantTypes:   []string{"Built"},
			wantErrType: new(*errs.ConstructionError),
		},
		{
			desc:        "UnnamedParameter",
			ctors:       []ctorSpec{{fn: newPipeline, names: []string{"src", ""}}},
			wantCtor:    "go.uber.org/mocktail/internal/instantiate.newPipeline()",
			wantTypes:   []string{"ConstructorSelected", "Built"},
			wantErrType: new(*errs.DependencyNotAvailableError),
		},
		{
			desc:        "MissingRealValue",
			ctors:       []ctorSpec{{fn: newTargetPipeline, names: []string{"src", "dst"}}},
			wantCtor:    "go.uber.org/mocktail/internal/instantiate.newTargetPipeline()",
			wantTypes:   []string{"ConstructorSelected", "Built"},
			wantErrType: new(*errs.DependencyNotAvailableError),
		},
		{
			desc:      "ConstructorError",
			ctors:     []ctorSpec{{fn: newBrokenPipeline, names: []string{"src"}}},
			wantCtor:  "go.uber.org/mocktail/internal/instantiate.newBrokenPipeline()",
			wantTypes: []string{"ConstructorSelected", "Built"},
			wantErrIs: errBroken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			inst, spy := newInstantiator(t, tt.ctors...)

			v, err := inst.Build()
			assert.Equal(t, tt.wantTypes, spy.EventTypes())

			events := spy.Events()
			built, ok := events[len(events)-1].(*mocktailevent.Built)
			require.True(t, ok)
			assert.Equal(t, "*instantiate.pipeline", built.TypeName)
			assert.Equal(t, tt.wantCtor, built.Constructor)
			assert.False(t, built.Substitute)
			assert.Equal(t, err, built.Err, "Built must carry the returned error")

			switch {
			case tt.wantErrType != nil:
				require.ErrorAs(t, err, tt.wantErrType)
			case tt.wantErrIs != nil:
				require.ErrorIs(t, err, tt.wantErrIs)
				assert.Contains(t, err.Error(), tt.wantCtor+" failed")
			default:
				require.NoError(t, err)
				p := v.Interface().(*pipeline)
				assert.IsType(t, &fakeSink{}, p.src)
				assert.IsType(t, &fakeSink{}, p.dst)
			}
		})
	}
}

func TestBuildArguments(t *testing.T) {
	inst, spy := newInstantiator(t,
		ctorSpec{fn: newPipeline, names: []string{"src", "dst"}},
		ctorSpec{fn: newNamedPipeline, names: []string{"src", "dst", "name"}},
	)
	require.NoError(t, inst.Container.Set(reflect.TypeOf(""), "name", reflect.ValueOf("ingest")))
	spy.Reset()

	v, err := inst.Build()
	require.NoError(t, err)

	p := v.Interface().(*pipeline)
	assert.Equal(t, "ingest", p.name)
	src, err := inst.Container.Get(_sinkType, _sinkType, "src")
	require.NoError(t, err)
	assert.Same(t, src.Interface(), p.src)

	selected := spy.Events()[0].(*mocktailevent.ConstructorSelected)
	assert.Equal(t, "go.uber.org/mocktail/internal/instantiate.newNamedPipeline()", selected.Constructor)
	assert.Equal(t, 3, selected.Params)
}

func TestBuildSubstitute(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		inst, spy := newInstantiator(t, ctorSpec{fn: newPipeline, names: []string{"src", "dst"}})

		v, err := inst.BuildSubstitute()
		require.NoError(t, err)
		p := v.Interface().(*pipeline)
		assert.Equal(t, "traced", p.name)
		assert.IsType(t, &fakeSink{}, p.src)

		built := spy.Events()[1].(*mocktailevent.Built)
		assert.True(t, built.Substitute)
		assert.NoError(t, built.Err)
	})

	t.Run("ConstructorError", func(t *testing.T) {
		inst, spy := newInstantiator(t, ctorSpec{fn: newBrokenPipeline, names: []string{"src"}})

		_, err := inst.BuildSubstitute()
		require.ErrorIs(t, err, errBroken)

		built := spy.Events()[1].(*mocktailevent.Built)
		assert.True(t, built.Substitute)
		assert.Equal(t, err, built.Err)
	})

	t.Run("NoPartial", func(t *testing.T) {
		inst, _ := newInstantiator(t, ctorSpec{fn: newPipeline, names: []string{"src", "dst"}})
		inst.Substituter = substitute.NewRegistry()

		_, err := inst.BuildSubstitute()
		var notMockable *errs.NotMockableError
		assert.ErrorAs(t, err, &notMockable)
	})
}
