package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("REPORT_TEST_KEY", "gsk_test")

	cfg, err := LoadConfig(writeConfig(t, `
llm:
  api_key: "${REPORT_TEST_KEY}"
  temperature: 0.2
concurrency:
  rpm: 30
output:
  format: docx
event:
  event_title: "Offsite"
  event_type: "Workshop"
  notes: ""
photos:
  - /tmp/a.png
`))
	require.NoError(t, err)

	assert.Equal(t, "gsk_test", cfg.LLM.APIKey)
	assert.Equal(t, DefaultBaseURL, cfg.LLM.BaseURL)
	assert.Equal(t, DefaultModel, cfg.LLM.Model)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 1e-6)
	assert.Equal(t, DefaultMaxTokens, cfg.LLM.MaxTokens)
	assert.Equal(t, 30, cfg.Concurrency.RPM)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "docx", cfg.Output.Format)
	assert.Equal(t, "Offsite", cfg.Event.Title)
	assert.Equal(t, "Workshop", cfg.Event.Type)
	assert.Equal(t, []string{"/tmp/a.png"}, cfg.Photos)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "log:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "pdf", cfg.Output.Format)
	assert.InDelta(t, DefaultTemperature, cfg.LLM.Temperature, 1e-6)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "llm: [unterminated"))
	assert.Error(t, err)
}
