package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetmcp/meetmcp/internal/instrumentation"
)

func TestNewMetricsServer_RequiresProvider(t *testing.T) {
	_, err := NewMetricsServer(MetricsServerConfig{Addr: ":9090"})
	assert.Error(t, err)
}

func TestNewMetricsServer_RequiresEnabledProvider(t *testing.T) {
	config := instrumentation.DefaultConfig()
	config.Enabled = false

	provider, err := instrumentation.NewProvider(t.Context(), config)
	require.NoError(t, err)

	_, err = NewMetricsServer(MetricsServerConfig{
		Addr:                    ":9090",
		InstrumentationProvider: provider,
	})
	assert.Error(t, err)
}

func TestMetricsServer_DefaultAddr(t *testing.T) {
	config := instrumentation.DefaultConfig()
	config.MetricsExporter = instrumentation.ExporterPrometheus
	config.Enabled = true

	provider, err := instrumentation.NewProvider(t.Context(), config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(t.Context()) })

	srv, err := NewMetricsServer(MetricsServerConfig{
		InstrumentationProvider: provider,
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultMetricsAddr, srv.Addr())

	// Shutdown before Start is a no-op
	assert.NoError(t, srv.Shutdown(t.Context()))
}
