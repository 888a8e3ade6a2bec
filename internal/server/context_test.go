package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetmcp/meetmcp/internal/instrumentation"
)

func TestNewServerContext(t *testing.T) {
	// Point the token cache at an empty directory so no real tokens leak in
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	sc, err := NewServerContext(t.Context())
	require.NoError(t, err)
	require.NotNil(t, sc)

	assert.NotNil(t, sc.Context())
	assert.False(t, sc.IsShutdown())
}

func TestServerContext_CalendarClientWithoutToken(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	sc, err := NewServerContext(t.Context())
	require.NoError(t, err)

	// No token on disk means no client can be constructed
	assert.Nil(t, sc.CalendarClient())
	assert.Nil(t, sc.CalendarClientForAccount("work"))
}

func TestServerContext_SetCalendarClient(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	sc, err := NewServerContext(t.Context())
	require.NoError(t, err)

	sc.SetCalendarClientForAccount("work", nil)

	// A cached entry, even a nil one, is returned without re-checking tokens
	assert.Nil(t, sc.CalendarClientForAccount("work"))
}

func TestServerContext_Metrics(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	sc, err := NewServerContext(t.Context())
	require.NoError(t, err)

	assert.Nil(t, sc.Metrics())

	metrics := &instrumentation.Metrics{}
	sc.SetMetrics(metrics)
	assert.Same(t, metrics, sc.Metrics())
}

func TestServerContext_Shutdown(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	sc, err := NewServerContext(t.Context())
	require.NoError(t, err)

	require.NoError(t, sc.Shutdown())
	assert.True(t, sc.IsShutdown())

	select {
	case <-sc.Context().Done():
	default:
		t.Fatal("server context should be cancelled after shutdown")
	}

	// Shutdown is idempotent
	require.NoError(t, sc.Shutdown())
}
