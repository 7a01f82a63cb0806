package thimble

import "sync"

var (
	defaultFactory *Factory
	defaultOnce    sync.Once
)

// Default returns the process-wide factory, creating it on first use. It
// lives for the lifetime of the process; Default().Reset() restores it to
// its initial state. The lazy initialization is the only synchronized path
// in the package.
func Default() *Factory {
	defaultOnce.Do(func() {
		defaultFactory = New()
	})
	return defaultFactory
}

// orDefault lets every generic operation accept nil as "the default
// factory", so call sites can stay ambient without a Default() chain.
func orDefault(f *Factory) *Factory {
	if f == nil {
		return Default()
	}
	return f
}

// Package-level conveniences delegating to Default, mirroring the Factory
// methods of the same names.

func Reset() {
	Default().Reset()
}

func Label(obj any) string {
	return Default().Label(obj)
}

func LabelAs(obj any, label string) string {
	return Default().LabelAs(obj, label)
}

func ByLabel(label string) (any, bool) {
	return Default().ByLabel(label)
}

func LabelOf(obj any) (string, bool) {
	return Default().LabelOf(obj)
}
