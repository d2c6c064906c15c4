package pools

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"poolbalance/internal/observability"
)

// Metric instruments, initialized once via InitMetrics().
var (
	opsCounter   metric.Int64Counter
	errorCounter metric.Int64Counter
)

// InitMetrics registers the OTel instruments for profile operations.
func InitMetrics() error {
	meter := otel.Meter("pools")

	var err error

	opsCounter, err = meter.Int64Counter("pools.operations.total",
		metric.WithDescription("Total number of pool profile operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("pools.errors.total",
		metric.WithDescription("Total number of failed pool profile operations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}

// Counter reports how many profiles are stored.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// NewStoredProfilesCollector exposes the number of stored profiles as a
// Prometheus gauge, read from c on every scrape.
func NewStoredProfilesCollector(c Counter) prometheus.Collector {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "poolbalance",
		Name:      "pool_profiles_stored",
		Help:      "Number of stored pool profiles.",
	}, func() float64 {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		n, err := c.Count(ctx)
		if err != nil {
			observability.Logger.Warn("counting pool profiles failed", zap.Error(err))
			return 0
		}
		return float64(n)
	})
}
