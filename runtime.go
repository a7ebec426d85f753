package reactive

import (
	"fmt"
	"log/slog"

	"github.com/lucidgraph/reactive/internal"
)

// RuntimeOption configures the package's process-wide dev-mode behavior.
type RuntimeOption func(*runtimeConfig)

type runtimeConfig struct {
	logger        *slog.Logger
	devMode       bool
	maxTrackDepth int
}

// WithLogger replaces the logger dev-mode warnings are written to. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) RuntimeOption {
	return func(c *runtimeConfig) { c.logger = logger }
}

// WithDevMode enables or disables dev-mode warnings (readonly writes, wrapping a
// frozen/markRaw target). Off by default, matching a production build.
func WithDevMode(on bool) RuntimeOption {
	return func(c *runtimeConfig) { c.devMode = on }
}

// WithMaxTrackDepth overrides the nesting-depth cap on the bit-marker dependency-diff
// scheme (30 by default). Mainly useful in tests that want to exercise the full-cleanup
// fallback path without actually nesting that many effects.
func WithMaxTrackDepth(n int) RuntimeOption {
	return func(c *runtimeConfig) { c.maxTrackDepth = n }
}

// Configure installs process-wide dev-mode settings. Call it once, early (e.g. from
// main), before constructing any reactive values.
func Configure(opts ...RuntimeOption) {
	cfg := &runtimeConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.maxTrackDepth > 0 {
		internal.SetMaxTrackDepth(cfg.maxTrackDepth)
	}

	if !cfg.devMode {
		internal.DevWarn = func(string, ...any) {}
		return
	}

	logger := cfg.logger
	internal.DevWarn = func(format string, args ...any) {
		logger.Warn(fmt.Sprintf(format, args...))
	}
}
