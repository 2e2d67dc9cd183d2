package observability

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Evaluation tracks one terminal stream operation from start to end.
type Evaluation struct {
	Op        string
	RunID     string
	StartTime time.Time
	span      trace.Span
	metrics   *StreamMetrics
}

type runIDKey struct{}

type metricsKey struct{}

// WithRunID stores an evaluation run id in the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunIDFromContext returns the run id of the enclosing evaluation, or "".
func RunIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey{}).(string); ok {
		return id
	}
	return ""
}

// WithMetrics attaches stream metrics to the context. Evaluations started
// from it record their count and duration.
func WithMetrics(ctx context.Context, m *StreamMetrics) context.Context {
	return context.WithValue(ctx, metricsKey{}, m)
}

// MetricsFromContext returns the attached stream metrics, or nil.
func MetricsFromContext(ctx context.Context) *StreamMetrics {
	if m, ok := ctx.Value(metricsKey{}).(*StreamMetrics); ok {
		return m
	}
	return nil
}

// StartEvaluation starts the span for a terminal operation and assigns it a
// fresh run id, available to stages through RunIDFromContext.
func StartEvaluation(ctx context.Context, op string, bounded bool) (context.Context, *Evaluation) {
	runID := uuid.NewString()
	ctx = WithRunID(ctx, runID)
	ctx, span := otel.Tracer(tracerName).Start(ctx, SpanPrefix+op, trace.WithAttributes(
		attribute.String(AttrOperation, op),
		attribute.String(AttrRunID, runID),
		attribute.Bool(AttrBounded, bounded),
	))
	return ctx, &Evaluation{
		Op:        op,
		RunID:     runID,
		StartTime: time.Now(),
		span:      span,
		metrics:   MetricsFromContext(ctx),
	}
}

// End closes the span and, when metrics are attached, records the evaluation.
func (e *Evaluation) End(ctx context.Context, err error) {
	duration := time.Since(e.StartTime)
	status := StatusOK
	if err != nil {
		status = StatusError
		SetSpanError(trace.ContextWithSpan(ctx, e.span), err)
	}
	e.span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	e.span.End()

	if e.metrics != nil {
		e.metrics.RecordEvaluation(ctx, e.Op, status, duration)
	}
}

