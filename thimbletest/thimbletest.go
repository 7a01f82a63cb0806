// Package thimbletest provides test helpers around a thimble.Factory with
// automatic cleanup.
package thimbletest

import (
	"github.com/danpasecinic/thimble"
	"github.com/danpasecinic/thimble/internal/reflect"
)

type TB interface {
	Helper()
	Fatalf(format string, args ...any)
	Cleanup(f func())
}

type TestFactory struct {
	*thimble.Factory
	tb TB
}

// New creates an isolated factory that resets itself when the test ends.
func New(tb TB, opts ...thimble.Option) *TestFactory {
	tb.Helper()

	f := thimble.New(opts...)
	tf := &TestFactory{
		Factory: f,
		tb:      tb,
	}

	tb.Cleanup(f.Reset)

	return tf
}

// StubOnce queues value as a one-shot override for T.
func StubOnce[T any](tf *TestFactory, value T) {
	tf.tb.Helper()
	thimble.QueueOnce(tf.Factory, value)
}

// Stub installs value as the persistent override for T.
func Stub[T any](tf *TestFactory, value T) {
	tf.tb.Helper()
	thimble.SetPersistent(tf.Factory, value)
}

// MustBind binds ctor for T, failing the test on an invalid constructor.
func MustBind[T any](tf *TestFactory, ctor any) thimble.Constructor[T] {
	tf.tb.Helper()

	constructor, err := thimble.Bind[T](tf.Factory, ctor)
	if err != nil {
		tf.tb.Fatalf("failed to bind %s: %v", reflect.TypeKey[T](), err)
	}
	return constructor
}

func AssertOverridden[T any](tf *TestFactory) {
	tf.tb.Helper()

	if !thimble.HasOverride[T](tf.Factory) {
		tf.tb.Fatalf("expected factory to have an override for %s", reflect.TypeKey[T]())
	}
}

func AssertNotOverridden[T any](tf *TestFactory) {
	tf.tb.Helper()

	if thimble.HasOverride[T](tf.Factory) {
		tf.tb.Fatalf("expected factory to not have an override for %s", reflect.TypeKey[T]())
	}
}

// RequireLabel fails the test unless obj currently holds want as label.
func (tf *TestFactory) RequireLabel(obj any, want string) {
	tf.tb.Helper()

	label, ok := tf.LabelOf(obj)
	if !ok {
		tf.tb.Fatalf("expected object to be labeled %q, got no label", want)
	}
	if label != want {
		tf.tb.Fatalf("expected object to be labeled %q, got %q", want, label)
	}
}

// RequireByLabel fails the test unless label resolves to an object.
func (tf *TestFactory) RequireByLabel(label string) any {
	tf.tb.Helper()

	obj, ok := tf.ByLabel(label)
	if !ok {
		tf.tb.Fatalf("expected an object under label %q", label)
	}
	return obj
}
