package thimble

import "log/slog"

type Option func(*factoryConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *factoryConfig) {
		cfg.logger = logger
	}
}

func WithResolveObserver(hook ResolveHook) Option {
	return func(cfg *factoryConfig) {
		cfg.onResolve = append(cfg.onResolve, hook)
	}
}

func WithOverrideObserver(hook OverrideHook) Option {
	return func(cfg *factoryConfig) {
		cfg.onOverride = append(cfg.onOverride, hook)
	}
}
