package thimble

import (
	"log/slog"

	"github.com/danpasecinic/thimble/internal/registry"
)

// Factory intercepts construction requests and resolves them through a
// three-tier chain: one-shot queue, then persistent override, then the
// real constructor. It also keeps an identity↔label table for naming
// objects in test output.
//
// A Factory is intended for single-goroutine test code and is not safe
// for concurrent mutation. Tests that need isolation create their own
// instance; tests that want ambient access share Default().
type Factory struct {
	registry *registry.Registry
	config   *factoryConfig
}

type factoryConfig struct {
	logger     *slog.Logger
	onResolve  []ResolveHook
	onOverride []OverrideHook
}

func New(opts ...Option) *Factory {
	cfg := &factoryConfig{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return &Factory{
		registry: registry.New(),
		config:   cfg,
	}
}

// Reset restores the factory to its initial state: all overrides, all
// labels, and the auto-label counter. This is the only operation that
// clears label state.
func (f *Factory) Reset() {
	f.registry.Reset()
	f.config.logger.Debug("factory reset")
}

// Keys returns every type key with at least one override registered.
func (f *Factory) Keys() []string {
	return f.registry.Keys()
}

// Size returns the number of type keys with overrides registered.
func (f *Factory) Size() int {
	return f.registry.Size()
}

func (f *Factory) notifyResolve(key string, source Source, err error) {
	for _, hook := range f.config.onResolve {
		hook(key, source, err)
	}
}

func (f *Factory) notifyOverride(key string) {
	for _, hook := range f.config.onOverride {
		hook(key)
	}
}
