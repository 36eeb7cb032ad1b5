package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Storage.Backend)
	assert.True(t, cfg.Auth.AutoLogin)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "https://api.npoint.io/e804a12b698002b4dc64", cfg.Feed.URL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("AUTH_AUTO_LOGIN", "false")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.False(t, cfg.Auth.AutoLogin)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTokenExpiry)
}

func TestLoad_UnknownBackendRejected(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "cassandra")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_BACKEND", "memory")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "an-actual-secret")
	_, err = Load()
	assert.NoError(t, err)
}
