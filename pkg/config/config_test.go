package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "PORT_ATTEMPTS", "DISABLE_BROWSER", "LLM_PROVIDER", "LLM_BASE_URL", "MAX_ATTEMPTS"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 7860, cfg.Port)
	assert.Equal(t, 10, cfg.PortAttempts)
	assert.False(t, cfg.DisableBrowser)
	assert.Equal(t, 3*time.Second, cfg.BrowserDelay)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, "http://localhost:11434/v1", cfg.LLM.BaseURL)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, "http://127.0.0.1:7860", cfg.URL())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DISABLE_BROWSER", "1")
	t.Setenv("LLM_PROVIDER", "OpenRouter")
	t.Setenv("LLM_BASE_URL", "")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("MAX_ATTEMPTS", "not-a-number")

	cfg := Load()
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.DisableBrowser)
	assert.Equal(t, "openrouter", cfg.LLM.Provider)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, 3, cfg.MaxAttempts, "invalid ints keep the default")
}

func TestDisableBrowserOnlyOnOne(t *testing.T) {
	t.Setenv("DISABLE_BROWSER", "true")
	assert.False(t, Load().DisableBrowser)
}
