package observability

import (
	"context"
	"errors"
	"fmt"
)

// Options controls which telemetry pipelines Setup starts.
type Options struct {
	LogLevel string

	// OTLPEnabled starts trace, metric and log export over OTLP/HTTP. The
	// exporters read the standard OTEL_EXPORTER_OTLP_* variables.
	OTLPEnabled bool
}

// Setup initialises the logger and, when enabled, the OTLP pipelines. The
// returned shutdown flushes every started pipeline in reverse order.
func Setup(ctx context.Context, opts Options) (func(context.Context) error, error) {
	if err := InitLogger(opts.LogLevel); err != nil {
		return nil, err
	}

	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		SyncLogger()
		return errors.Join(errs...)
	}

	if !opts.OTLPEnabled {
		return shutdown, nil
	}

	inits := []struct {
		name string
		fn   func(context.Context) (func(context.Context) error, error)
	}{
		{name: "tracing", fn: InitTracing},
		{name: "metrics", fn: InitMetrics},
		{name: "logging", fn: InitLogging},
	}
	for _, in := range inits {
		fn, err := in.fn(ctx)
		if err != nil {
			_ = shutdown(ctx)
			return nil, fmt.Errorf("init %s: %w", in.name, err)
		}
		shutdowns = append(shutdowns, fn)
	}

	return shutdown, nil
}
