package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for config:
// - Defaults are valid and sensible
// - Config file values override defaults
// - GEMINI_API_KEY env var fills an unset key
// - Invalid style or empty model is rejected

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, "Google", cfg.Style)
	assert.Contains(t, cfg.Paths.Include, "**/*.py")
	assert.NoError(t, Validate(cfg))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadConfigFromDir(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Default().Gemini.Model, cfg.Gemini.Model)
	assert.Equal(t, Default().Style, cfg.Style)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".docsmith"), 0755))

	yaml := "style: NumPy\ngemini:\n  model: gemini-2.5-pro\n  api_key: from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".docsmith", "config.yml"), []byte(yaml), 0644))

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "NumPy", cfg.Style)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, "from-file", cfg.Gemini.APIKey)
}

func TestLoad_GeminiAPIKeyEnvFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")

	cfg, err := LoadConfigFromDir(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Gemini.APIKey)
}

func TestLoad_DotEnvFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	os.Unsetenv("GEMINI_API_KEY")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GEMINI_API_KEY=from-dotenv\n"), 0644))

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.Gemini.APIKey)
}

func TestValidate_Rejects(t *testing.T) {
	cfg := Default()
	cfg.Style = "sphinx"
	assert.Error(t, Validate(cfg))

	cfg = Default()
	cfg.Gemini.Model = ""
	assert.Error(t, Validate(cfg))
}
