// Package config carries the per-invocation configuration every admitioctl
// command reads: server URL, interactivity, the shared client provider.
package config

import (
	"context"
	"log/slog"

	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/internal/client"
)

type contextKey string

const configKey contextKey = "admitioctl-config"

// GlobalConfig is assembled once by the root command and flows to the
// subcommands through the cobra command context.
type GlobalConfig struct {
	ServerURL      string
	NonInteractive bool
	ClientProvider *client.Provider
	Logger         *slog.Logger
}

// InjectConfig returns ctx with cfg attached.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext extracts the config, reporting whether one was injected.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext extracts the config or panics. RunE functions may rely on
// the root command having injected it; a miss there is a wiring bug, not a
// user error.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("admitioctl: command context carries no config")
	}
	return cfg
}
