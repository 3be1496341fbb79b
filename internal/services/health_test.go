package services_test

import (
	"net"
	"testing"

	"github.com/localnerve/routinesdb/internal/database"
	"github.com/localnerve/routinesdb/internal/services"
	"github.com/localnerve/routinesdb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	cfg := testutil.NewTestConfig(t)
	db := testutil.NewTestDB(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	_, port, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)
	cfg.Port = port

	result := services.HealthCheck(cfg, db, "127.0.0.1")
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "ok", result.Service)
	assert.Equal(t, "http://127.0.0.1:"+port, result.Details["service_url"])
	assert.Empty(t, result.ErrorMessage)

	require.NoError(t, listener.Close())
	result = services.HealthCheck(cfg, db, "127.0.0.1")
	assert.Equal(t, "unhealthy", result.Status)
	assert.Equal(t, "unreachable", result.Service)
	assert.Contains(t, result.ErrorMessage, "Service ping failed")

	require.NoError(t, database.Close(db))
	result = services.HealthCheck(cfg, db, "127.0.0.1")
	assert.Equal(t, "unreachable", result.Database)
	assert.Contains(t, result.ErrorMessage, "Database ping failed")
}

func TestHealthCheckDefaultsToLocalhost(t *testing.T) {
	cfg := testutil.NewTestConfig(t)
	db := testutil.NewTestDB(t)

	listener, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	defer listener.Close()
	_, port, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)
	cfg.Port = port

	result := services.HealthCheck(cfg, db, "")
	assert.Equal(t, "ok", result.Service)
	assert.Equal(t, "http://localhost:"+port, result.Details["service_url"])
}
