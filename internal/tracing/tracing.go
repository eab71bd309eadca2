package tracing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tokoretail/retail-platform/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(ctx context.Context) error

// Setup installs the global tracer provider and propagator. Without an
// exporter endpoint spans are sampled locally but never exported.
func Setup(ctx context.Context, cfg config.OtelConfig) (ShutdownFunc, error) {

	res := resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplerRatio))),
	}

	if cfg.ExporterEndpoint != "" {
		exporter, err := otlptracehttp.New(ctx, exporterOptions(cfg.ExporterEndpoint)...)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}

		opts = append(opts, sdktrace.WithBatcher(exporter))
		slog.Info("Exporting traces", slog.String("endpoint", cfg.ExporterEndpoint))
	}

	tp := sdktrace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}

func exporterOptions(endpoint string) []otlptracehttp.Option {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
	}

	return []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure()}
}
