package observability

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/seqkit/logger"
)

// InitMeter installs a global meter provider pushing to cfg.Endpoint every
// cfg.MetricInterval. The caller shuts the provider down on exit.
func InitMeter(ctx context.Context, cfg *Config) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.MetricInterval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.MetricInterval))
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", cfg.ServiceName,
		"endpoint", cfg.Endpoint,
		"interval", cfg.MetricInterval.String(),
	))
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Providers are the SDK providers installed by Setup.
type Providers struct {
	Tracer *sdktrace.TracerProvider
	Meter  *sdkmetric.MeterProvider
}

// Setup installs the tracer and meter providers and builds StreamMetrics on
// the new meter provider.
func Setup(ctx context.Context, cfg *Config) (*Providers, *StreamMetrics, error) {
	tp, err := InitTracer(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	mp, err := InitMeter(ctx, cfg)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, nil, err
	}
	p := &Providers{Tracer: tp, Meter: mp}

	metrics, err := NewStreamMetrics(mp.Meter(cfg.ServiceName))
	if err != nil {
		_ = p.Shutdown(ctx)
		return nil, nil, err
	}
	return p, metrics, nil
}

// Shutdown flushes and stops both providers. Both are always stopped.
func (p *Providers) Shutdown(ctx context.Context) error {
	return stderrors.Join(p.Meter.Shutdown(ctx), p.Tracer.Shutdown(ctx))
}
