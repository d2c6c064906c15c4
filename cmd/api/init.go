package main

import (
	"poolbalance/internal/calculator"
	"poolbalance/internal/pools"
)

// initMetrics creates the domain metric instruments. The meter provider is
// set up by observability.Setup; with OTLP disabled the instruments are
// no-ops.
func initMetrics() error {
	if err := calculator.InitMetrics(); err != nil {
		return err
	}

	if err := pools.InitMetrics(); err != nil {
		return err
	}

	return nil
}
