package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("log level is lowercased", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvLogLevel, "DEBUG")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("formats", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvOutputFormat, "json")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "json", cfg.Logging.Format)
		assert.Equal(t, "json", cfg.Output.Format)
	})

	t.Run("concurrency", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvBatchConcurrency, "16")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 16, cfg.Batch.Concurrency)
	})

	t.Run("unparseable concurrency is ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvBatchConcurrency, "many")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 4, cfg.Batch.Concurrency)
	})

	t.Run("empty values leave config untouched", func(t *testing.T) {
		clearEnv(t)

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, DefaultConfig(), cfg)
	})
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvOutputFormat, "text")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: json\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoad_InvalidEnvFailsValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "chatty")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
