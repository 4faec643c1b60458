package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(writeConfig(t, ""), "attune.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 85, cfg.RecallThreshold)
	assert.Equal(t, 20, cfg.BatchSize)
	assert.Equal(t, 4*time.Second, cfg.FeedbackWindow)
	assert.Equal(t, 5*time.Second, cfg.SearchTimeout)
	assert.False(t, cfg.SearchDisabled)
	assert.Equal(t, ProviderHashing, cfg.Embedder.Provider)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_FromFile(t *testing.T) {
	dir := writeConfig(t, `
data_dir: /var/lib/attune
recall_threshold: 90
batch_size: 10
feedback_window: 2s
search_disabled: true
embedder:
  provider: ollama
  model: mxbai-embed-large
  dim: 1024
log:
  level: debug
  format: json
`)

	cfg, err := Load(filepath.Join(dir, "attune.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "/var/lib/attune", cfg.DataDir)
	assert.Equal(t, 90, cfg.RecallThreshold)
	assert.Equal(t, 10, cfg.BatchSize)
	assert.Equal(t, 2*time.Second, cfg.FeedbackWindow)
	assert.True(t, cfg.SearchDisabled)
	assert.Equal(t, ProviderOllama, cfg.Embedder.Provider)
	assert.Equal(t, "mxbai-embed-large", cfg.Embedder.Model)
	assert.Equal(t, 1024, cfg.Embedder.Dim)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "batch_size: 10\n")
	t.Setenv("ATTUNE_BATCH_SIZE", "7")

	cfg, err := Load(filepath.Join(dir, "attune.yaml"))

	require.NoError(t, err)
	assert.Equal(t, 7, cfg.BatchSize)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"threshold": "recall_threshold: 101\n",
		"batch":     "batch_size: 0\n",
		"timeout":   "search_timeout: -1s\n",
		"provider":  "embedder:\n  provider: quantum\n",
		"format":    "log:\n  format: xml\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			dir := writeConfig(t, content)
			_, err := Load(filepath.Join(dir, "attune.yaml"))
			assert.Error(t, err)
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "attune.yaml"), []byte(content), 0o644))
	return dir
}
