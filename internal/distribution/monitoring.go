package distribution

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/gabapcia/airdrop/internal/distribution"

const (
	cycleOutcomeCompleted   = "completed"
	cycleOutcomeSkipped     = "skipped"
	cycleOutcomeAborted     = "aborted"
	cycleOutcomeInterrupted = "interrupted"

	transferOutcomeSucceeded = "succeeded"
	transferOutcomeFailed    = "failed"
)

// engineMetrics holds the counters reported by the engine. Instruments come
// from the global MeterProvider, which is a no-op until telemetry is enabled.
type engineMetrics struct {
	cycles    metric.Int64Counter
	transfers metric.Int64Counter
}

func newEngineMetrics() (*engineMetrics, error) {
	meter := otel.Meter(instrumentationName)

	cycles, err := meter.Int64Counter("airdrop_cycles",
		metric.WithDescription("Distribution cycles by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register cycle counter: %w", err)
	}

	transfers, err := meter.Int64Counter("airdrop_transfers",
		metric.WithDescription("Transfers attempted by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register transfer counter: %w", err)
	}

	return &engineMetrics{cycles: cycles, transfers: transfers}, nil
}

func (m *engineMetrics) incrementCycles(ctx context.Context, outcome string) {
	m.cycles.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *engineMetrics) incrementTransfers(ctx context.Context, outcome string) {
	m.transfers.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
