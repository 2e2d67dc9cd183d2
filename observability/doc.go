// Package observability provides OpenTelemetry tracing and metrics for stream
// evaluations.
//
// Every terminal stream operation runs inside an Evaluation: a span named
// "stream.<op>" on the global tracer provider, tagged with a fresh run id.
// When a StreamMetrics is attached to the context, the evaluation count and
// duration are recorded as well.
//
// Setup installs both OTLP providers and returns the stream instruments:
//
//	providers, metrics, err := observability.Setup(ctx, observability.DefaultConfig("streamdemo"))
//	defer providers.Shutdown(ctx)
//
//	ctx = observability.WithMetrics(ctx, metrics)
package observability
