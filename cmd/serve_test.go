package cmd

import (
	"bytes"
	"strings"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetmcp/meetmcp/internal/server"
)

func TestRegisterAllTools(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	sc, err := server.NewServerContext(t.Context())
	require.NoError(t, err)

	mcpSrv := mcpserver.NewMCPServer("meetmcp", "test")
	require.NoError(t, registerAllTools(mcpSrv, sc, false))
}

func TestRegisterAllTools_ReadOnly(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	sc, err := server.NewServerContext(t.Context())
	require.NoError(t, err)

	mcpSrv := mcpserver.NewMCPServer("meetmcp", "test")
	require.NoError(t, registerAllTools(mcpSrv, sc, true))
}

func TestRunServe_UnsupportedTransport(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("INSTRUMENTATION_ENABLED", "false")

	err := runServe("carrier-pigeon", false, ":0", false, MetricsConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported transport type")
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newVersionCmd()
	cmd.SetOut(&out)

	cmd.Run(cmd, nil)

	assert.True(t, strings.HasPrefix(out.String(), "meetmcp version "))
}

func TestAuthCmd_RequiresCredentials(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "")
	t.Setenv("GOOGLE_CLIENT_SECRET", "")

	cmd := newAuthCmd()
	err := runAuth(cmd, "default")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_CLIENT_ID")
}

func TestAuthCmd_RequiresCode(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")

	cmd := newAuthCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("\n"))

	err := runAuth(cmd, "default")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no authorization code")
}
