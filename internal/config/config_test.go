package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMustLoadByPath(t *testing.T) {
	cfg := MustLoadByPath(filepath.Join("..", "..", "config", "test.yml"))

	require.Equal(t, EnvTest, cfg.Env)
	require.Equal(t, StorageMemory, cfg.Storage.Driver)
	require.Equal(t, SessionMemory, cfg.Session.Backend)
	require.Equal(t, "123456", cfg.OTP.Code)
	require.Equal(t, time.Duration(0), cfg.OTP.DispatchDelay)
	require.Equal(t, "sid", cfg.Session.CookieName)
	require.Equal(t, 720*time.Hour, cfg.Session.TTL)
	require.False(t, cfg.Minio.Enabled)
}

func TestMustLoadByPath_MissingFile(t *testing.T) {
	require.Panics(t, func() {
		MustLoadByPath(filepath.Join(t.TempDir(), "missing.yml"))
	})
}

func TestMustLoadByPath_MissingSecret(t *testing.T) {
	if _, ok := os.LookupEnv("SESSION_SECRET"); ok {
		t.Skip("SESSION_SECRET is set in the environment")
	}

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("env: test\n"), 0o600))

	require.Panics(t, func() {
		MustLoadByPath(path)
	})
}
