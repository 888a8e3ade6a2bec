package instrumentation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestNewMetrics(t *testing.T) {
	// A manual-reader meter provider avoids touching the global
	// Prometheus registry in tests.
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(t.Context()) })

	metrics, err := NewMetrics(provider.Meter("test"))
	require.NoError(t, err)
	require.NotNil(t, metrics)

	// Recording must not panic
	metrics.RecordToolInvocation(t.Context(), "create-meeting", StatusSuccess, 120*time.Millisecond)
	metrics.RecordGoogleAPIOperation(t.Context(), "calendar", "insert", StatusError, 80*time.Millisecond)
}

func TestMetrics_ZeroValueIsNoOp(t *testing.T) {
	var m Metrics

	// Must be safe before instruments are initialized
	m.RecordToolInvocation(t.Context(), "list-meetings", StatusSuccess, time.Millisecond)
	m.RecordGoogleAPIOperation(t.Context(), "calendar", "list", StatusSuccess, time.Millisecond)
}

func TestNewProvider_Disabled(t *testing.T) {
	config := DefaultConfig()
	config.Enabled = false

	provider, err := NewProvider(t.Context(), config)
	require.NoError(t, err)

	assert.False(t, provider.Enabled())
	assert.NotNil(t, provider.Metrics(), "disabled provider must still hand out a no-op recorder")
	assert.NoError(t, provider.Shutdown(t.Context()))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		wantErr  bool
	}{
		{"prometheus", ExporterPrometheus, false},
		{"none", ExporterNone, false},
		{"empty", "", false},
		{"unknown", "statsd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Config{MetricsExporter: tt.exporter}
			err := config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("INSTRUMENTATION_ENABLED", "false")
	t.Setenv("OTEL_SERVICE_NAME", "meetmcp-test")

	config := DefaultConfig()

	assert.False(t, config.Enabled)
	assert.Equal(t, "meetmcp-test", config.ServiceName)
	assert.Equal(t, ExporterPrometheus, config.MetricsExporter)
}
