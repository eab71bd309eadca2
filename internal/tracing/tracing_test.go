package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokoretail/retail-platform/internal/config"
	"go.opentelemetry.io/otel"
)

func TestSetup(t *testing.T) {
	t.Run("Success - Without exporter", func(t *testing.T) {
		shutdown, err := Setup(t.Context(), config.OtelConfig{ServiceName: "retail-platform-test", SamplerRatio: 1})
		require.NoError(t, err)

		_, span := otel.Tracer("test").Start(t.Context(), "checkout")
		assert.True(t, span.SpanContext().IsValid())
		assert.True(t, span.SpanContext().IsSampled())
		span.End()

		require.NoError(t, shutdown(t.Context()))
	})

	t.Run("Success - Zero ratio never samples", func(t *testing.T) {
		shutdown, err := Setup(t.Context(), config.OtelConfig{ServiceName: "retail-platform-test", SamplerRatio: 0})
		require.NoError(t, err)
		t.Cleanup(func() { _ = shutdown(t.Context()) })

		_, span := otel.Tracer("test").Start(t.Context(), "checkout")
		defer span.End()

		assert.False(t, span.SpanContext().IsSampled())
	})
}

func TestExporterOptions(t *testing.T) {
	assert.Len(t, exporterOptions("http://collector:4318"), 1)
	assert.Len(t, exporterOptions("collector:4318"), 2)
}
