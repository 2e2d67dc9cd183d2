package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric instrument names.
const (
	MetricElements           = "stream.elements"
	MetricEvaluations        = "stream.evaluations"
	MetricEvaluationDuration = "stream.evaluation.duration"
)

// Evaluation status values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// StreamMetrics holds the instruments recorded by stream evaluations.
type StreamMetrics struct {
	elements           metric.Int64Counter
	evaluations        metric.Int64Counter
	evaluationDuration metric.Float64Histogram
}

// NewStreamMetrics creates metric instruments on the given meter.
func NewStreamMetrics(meter metric.Meter) (*StreamMetrics, error) {
	elements, err := meter.Int64Counter(MetricElements,
		metric.WithDescription("Elements that passed an instrumented stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricElements, err)
	}

	evaluations, err := meter.Int64Counter(MetricEvaluations,
		metric.WithDescription("Terminal operations evaluated"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricEvaluations, err)
	}

	evaluationDuration, err := meter.Float64Histogram(MetricEvaluationDuration,
		metric.WithDescription("Duration of terminal operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricEvaluationDuration, err)
	}

	return &StreamMetrics{
		elements:           elements,
		evaluations:        evaluations,
		evaluationDuration: evaluationDuration,
	}, nil
}

// RecordElement counts one element passing the named stage.
func (m *StreamMetrics) RecordElement(ctx context.Context, stage string) {
	m.elements.Add(ctx, 1, metric.WithAttributes(attribute.String("stage", stage)))
}

// RecordEvaluation records a finished terminal operation.
func (m *StreamMetrics) RecordEvaluation(ctx context.Context, op, status string, duration time.Duration) {
	m.evaluations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("status", status),
	))
	m.evaluationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("op", op),
	))
}
