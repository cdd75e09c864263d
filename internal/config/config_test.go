package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"codemaster/internal/errors"
	"codemaster/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"API_KEY", "GOOGLE_API_KEY", "GEMINI_API_KEY", "CODEMASTER_MODEL", "CODEMASTER_LOCALE"} {
		t.Setenv(name, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, types.LocaleArabic, cfg.GetLocale())
	assert.Equal(t, DefaultModel, cfg.Generation.Model)
	assert.False(t, cfg.Chat.SendHistory, "history resend is opt-in")
	assert.Equal(t, time.Duration(0), cfg.GetTimeout())
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Generation, cfg.Generation)
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
locale: en
generation:
  api_key: file-key
  model: gemini-2.5-flash
  timeout: 45s
  max_tools: 2
chat:
  send_history: true
logging:
  debug_mode: true
  categories:
    ui: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, types.LocaleEnglish, cfg.GetLocale())
	assert.Equal(t, "file-key", cfg.Generation.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Generation.Model)
	assert.Equal(t, 45*time.Second, cfg.GetTimeout())
	assert.Equal(t, 2, cfg.Generation.MaxTools)
	assert.Equal(t, 3, cfg.Generation.MaxUseCases, "unset fields keep defaults")
	assert.True(t, cfg.Chat.SendHistory)
	assert.True(t, cfg.Logging.DebugMode)
	assert.Equal(t, map[string]bool{"ui": false}, cfg.Logging.Categories)
	require.NoError(t, cfg.ValidateForGeneration())
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generation: [unclosed"), 0600))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config: ")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("GEMINI_API_KEY wins over API_KEY", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("API_KEY", "legacy")
		t.Setenv("GEMINI_API_KEY", "gem")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "gem", cfg.Generation.APIKey)
	})

	t.Run("API_KEY alone is honored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("API_KEY", "legacy")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "legacy", cfg.Generation.APIKey)
	})

	t.Run("model and locale", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CODEMASTER_MODEL", "gemini-2.5-pro")
		t.Setenv("CODEMASTER_LOCALE", "english")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "gemini-2.5-pro", cfg.Generation.Model)
		assert.Equal(t, types.LocaleEnglish, cfg.GetLocale())
	})

	t.Run("env beats file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "env-key")
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("generation:\n  api_key: file-key\n"), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.Generation.APIKey)
	})
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Locale = "fr"
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))

	cfg = DefaultConfig()
	cfg.Generation.Timeout = "soon"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Generation.MaxTools = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	err = cfg.ValidateForGeneration()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Locale = "en"
	cfg.Chat.SendHistory = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
