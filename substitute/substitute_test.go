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

package substitute

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mocktail/internal/errs"
	"go.uber.org/mocktail/typedesc"
)

type mailer interface {
	Send(to string) error
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) Send(to string) error {
	return m.Called(to).Error(0)
}

type smtpMailer struct{ host string }

func (*smtpMailer) Send(string) error { return nil }

// recordingMailer overrides Send and keeps the rest of the wrapped mailer.
type recordingMailer struct {
	mailer
	sent []string
}

func (r *recordingMailer) Send(to string) error {
	r.sent = append(r.sent, to)
	return nil
}

var _mailerType = typeOf[mailer]()

func newMailerCtor(t *testing.T, fn interface{}) typedesc.Constructor {
	c := typedesc.NewCatalog()
	require.NoError(t, c.Add(_mailerType, fn))
	return c.Constructors(_mailerType)[0]
}

func TestRegistrySubstitute(t *testing.T) {
	t.Run("Registered", func(t *testing.T) {
		r := For(NewRegistry(), func() mailer { return new(mockMailer) })
		require.True(t, r.CanSubstitute(_mailerType))

		first, err := r.Substitute(_mailerType)
		require.NoError(t, err)
		second, err := r.Substitute(_mailerType)
		require.NoError(t, err)

		assert.IsType(t, &mockMailer{}, first.Interface())
		assert.NotSame(t, first.Interface(), second.Interface(), "every call builds a new double")
	})

	t.Run("Unregistered", func(t *testing.T) {
		r := NewRegistry()
		assert.False(t, r.CanSubstitute(_mailerType))

		_, err := r.Substitute(_mailerType)
		var notMockable *errs.NotMockableError
		require.ErrorAs(t, err, &notMockable)
		assert.Equal(t, _mailerType, notMockable.Type)
	})

	t.Run("FactoryReturnsNil", func(t *testing.T) {
		r := For(NewRegistry(), func() mailer { return nil })

		_, err := r.Substitute(_mailerType)
		var constructionErr *errs.ConstructionError
		require.ErrorAs(t, err, &constructionErr)
		assert.Contains(t, err.Error(), "returned nil")
	})

	t.Run("PartialOnlyCannotBuildLeaves", func(t *testing.T) {
		r := Through(NewRegistry(), func(base mailer) mailer { return base })
		assert.False(t, r.CanSubstitute(_mailerType))
		assert.True(t, r.CanSubstituteThrough(_mailerType))

		_, err := r.Substitute(_mailerType)
		var notMockable *errs.NotMockableError
		assert.ErrorAs(t, err, &notMockable)
	})
}

func TestRegistryRegister(t *testing.T) {
	t.Run("Leaf", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(func() mailer { return new(mockMailer) }))
		assert.True(t, r.CanSubstitute(_mailerType))
		assert.False(t, r.CanSubstituteThrough(_mailerType))
		assert.False(t, r.CanSubstitute(reflect.TypeOf(&mockMailer{})))
	})

	t.Run("Partial", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.RegisterThrough(func(m mailer) mailer { return m }))
		assert.True(t, r.CanSubstituteThrough(_mailerType))
		assert.False(t, r.CanSubstitute(_mailerType))
	})

	tests := []struct {
		desc    string
		give    interface{}
		partial bool
		wantErr string
	}{
		{desc: "NotAFunction", give: 42, wantErr: "substitute factory must be a function, got int"},
		{desc: "NilFunction", give: (func() mailer)(nil), wantErr: "is nil"},
		{desc: "TakesArguments", give: func(int) mailer { return nil }, wantErr: "must have the shape func() S"},
		{desc: "ReturnsError", give: func() error { return nil }, wantErr: "must have the shape func() S"},
		{desc: "TwoResults", give: func() (mailer, error) { return nil, nil }, wantErr: "must have the shape func() S"},
		{
			desc:    "PartialChangesType",
			give:    func(mailer) *smtpMailer { return nil },
			partial: true,
			wantErr: "must have the shape func(T) T",
		},
		{
			desc:    "PartialNoArgument",
			give:    func() mailer { return nil },
			partial: true,
			wantErr: "must have the shape func(T) T",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			r := NewRegistry()
			register := r.Register
			if tt.partial {
				register = r.RegisterThrough
			}
			err := register(tt.give)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRegistrySubstituteThrough(t *testing.T) {
	smtp := &smtpMailer{host: "localhost"}

	t.Run("WrapsConstructedValue", func(t *testing.T) {
		r := Through(NewRegistry(), func(base mailer) mailer {
			return &recordingMailer{mailer: base}
		})
		ctor := newMailerCtor(t, func() mailer { return smtp })

		v, err := r.SubstituteThrough(_mailerType, ctor, nil)
		require.NoError(t, err)

		rec, ok := v.Interface().(*recordingMailer)
		require.True(t, ok)
		assert.Same(t, smtp, rec.mailer)
		require.NoError(t, rec.Send("gopher@example.com"))
		assert.Equal(t, []string{"gopher@example.com"}, rec.sent)
	})

	t.Run("NoPartial", func(t *testing.T) {
		r := For(NewRegistry(), func() mailer { return new(mockMailer) })
		ctor := newMailerCtor(t, func() mailer { return smtp })

		_, err := r.SubstituteThrough(_mailerType, ctor, nil)
		var notMockable *errs.NotMockableError
		assert.ErrorAs(t, err, &notMockable)
	})

	t.Run("ConstructorFails", func(t *testing.T) {
		errDial := errors.New("dial failed")
		r := Through(NewRegistry(), func(base mailer) mailer { return base })
		ctor := newMailerCtor(t, func() (mailer, error) { return nil, errDial })

		_, err := r.SubstituteThrough(_mailerType, ctor, nil)
		assert.ErrorIs(t, err, errDial)
		assert.Contains(t, err.Error(), "failed")
	})

	t.Run("WrapperReturnsNil", func(t *testing.T) {
		r := Through(NewRegistry(), func(mailer) mailer { return nil })
		ctor := newMailerCtor(t, func() mailer { return smtp })

		_, err := r.SubstituteThrough(_mailerType, ctor, nil)
		var constructionErr *errs.ConstructionError
		require.ErrorAs(t, err, &constructionErr)
		assert.Contains(t, err.Error(), "partial substitute")
	})
}
