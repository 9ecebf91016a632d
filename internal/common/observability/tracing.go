package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

type tracing struct {
	provider *sdktrace.TracerProvider
}

func newTracing(serviceName, endpoint string) (*tracing, error) {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(endpoint)))
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
		)),
	)
	otel.SetTracerProvider(provider)
	return &tracing{provider: provider}, nil
}

func (t *tracing) shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}

// StartSpan starts a span on the global tracer. Without a configured exporter
// the global provider is a no-op and the span is discarded.
func (o *Observability) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(o.serviceName).Start(ctx, name, trace.WithAttributes(attrs...))
}
