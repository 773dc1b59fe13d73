// Package telemetry sets up OpenTelemetry tracing for card actions.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// EndpointEnv enables export when set.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides the service name.
	ServiceNameEnv = "OTEL_SERVICE_NAME"

	defaultServiceName = "alertdeck"
	tracerName         = "alertdeck/board"
)

// Provider hands out the tracer and flushes spans on shutdown.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewProvider exports traces over OTLP/HTTP when OTEL_EXPORTER_OTLP_ENDPOINT is
// set. Otherwise the returned provider is a no-op.
func NewProvider(ctx context.Context) (*Provider, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return Disabled(), nil
	}

	// The exporter reads the endpoint URL, scheme included, from the environment.
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = defaultServiceName
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))

	return NewWithExporter(exporter, res), nil
}

// Disabled returns a provider whose spans go nowhere.
func Disabled() *Provider {
	return &Provider{tracer: noop.NewTracerProvider().Tracer(tracerName)}
}

// NewWithExporter batches spans to exporter.
func NewWithExporter(exporter sdktrace.SpanExporter, res *resource.Resource) *Provider {
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Provider{
		provider: provider,
		tracer:   provider.Tracer(tracerName),
	}
}

// Tracer returns the tracer for card action spans.
func (p *Provider) Tracer() oteltrace.Tracer {
	return p.tracer
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
