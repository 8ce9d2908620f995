package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("Defaults from env only", func(t *testing.T) {
		cfg, err := NewConfig("")
		require.NoError(t, err)
		assert.Equal(t, Dev, cfg.Env)
		assert.Empty(t, cfg.Client.To)
		assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("Env variables", func(t *testing.T) {
		t.Setenv("ENV", "prod")
		t.Setenv("BLIP_TO", "postmaster@crm.msging.net")
		t.Setenv("BLIP_TIMEOUT", "3s")

		cfg, err := NewConfig("")
		require.NoError(t, err)
		assert.Equal(t, Prod, cfg.Env)
		assert.Equal(t, "postmaster@crm.msging.net", cfg.Client.To)
		assert.Equal(t, 3*time.Second, cfg.Client.Timeout)
	})

	t.Run("Yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "env: prod\nclient:\n  to: postmaster@msging.net\n  timeout: 1m\nlogging:\n  level: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := NewConfig(path)
		require.NoError(t, err)
		assert.Equal(t, Prod, cfg.Env)
		assert.Equal(t, "postmaster@msging.net", cfg.Client.To)
		assert.Equal(t, time.Minute, cfg.Client.Timeout)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("Env overrides yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("client:\n  to: a@msging.net\n"), 0o600))
		t.Setenv("BLIP_TO", "b@msging.net")

		cfg, err := NewConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "b@msging.net", cfg.Client.To)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
