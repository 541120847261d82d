// Package tracing sets up the OpenTelemetry tracer handed to request handlers.
package tracing

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const TracerName = "hunt-api"

type Config struct {
	// Endpoint is the OTLP gRPC collector address. Empty disables export.
	Endpoint    string
	Insecure    bool
	ServiceName string
}

type Shutdown func(ctx context.Context) error

// Init returns the tracer used by handlers. Without an endpoint it returns a
// noop tracer and a shutdown that does nothing.
func Init(ctx context.Context, cfg Config) (trace.Tracer, Shutdown, error) {
	if cfg.Endpoint == "" {
		return noop.NewTracerProvider().Tracer(TracerName), func(context.Context) error { return nil }, nil
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(opts...))
	if err != nil {
		return nil, nil, errors.Join(errors.New("failed to create otlp trace exporter"), err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", cfg.ServiceName),
		)),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	shutdown := func(ctx context.Context) error {
		return tracerProvider.Shutdown(ctx)
	}
	return tracerProvider.Tracer(TracerName), shutdown, nil
}
