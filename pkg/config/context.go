package config

import "context"

type configurationContextKey struct{}

// WithConfiguration stores cfg in ctx.
func WithConfiguration(ctx context.Context, cfg *Configuration) context.Context {
	return context.WithValue(ctx, configurationContextKey{}, cfg)
}

// FromContext returns the configuration stored by WithConfiguration.
func FromContext(ctx context.Context) (*Configuration, bool) {
	cfg, ok := ctx.Value(configurationContextKey{}).(*Configuration)
	return cfg, ok && cfg != nil
}
