package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	opsCounter   metric.Int64Counter
	opsHistogram metric.Float64Histogram
	errorCounter metric.Int64Counter
	amountGauge  metric.Float64Gauge
)

// InitMetrics registers the OTel instruments for dosage calculations.
// Call this once at startup, after observability.Setup.
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	opsCounter, err = meter.Int64Counter("dosage.calculations.total",
		metric.WithDescription("Total number of dosage calculations performed"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating calculations counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("dosage.calculation.duration",
		metric.WithDescription("Duration of dosage calculations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating calculation histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("dosage.errors.total",
		metric.WithDescription("Total number of rejected dosage calculations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	amountGauge, err = meter.Float64Gauge("dosage.last_amount",
		metric.WithDescription("Amount of the last computed dose, in its display unit"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating amount gauge: %w", err)
	}

	return nil
}
