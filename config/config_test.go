package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/finflow"
	"github.com/etnz/finflow/advisor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable read by Load for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAPIKey, EnvLegacyAPIKey, EnvGoogleAPIKey, EnvModel, EnvLang, EnvData, EnvCurrency, EnvTimeout} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	c := Load()

	assert.Equal(t, "", c.APIKey)
	assert.False(t, c.HasAPIKey())
	assert.Equal(t, advisor.DefaultModel, c.Model)
	assert.Equal(t, "es", c.Lang)
	assert.Equal(t, finflow.Spanish, c.Language())
	assert.Equal(t, "EUR", c.Currency)
	assert.Equal(t, "", c.DataFile)
	assert.Zero(t, c.Timeout)
	assert.NoError(t, c.Validate())
}

func TestLoadAPIKeyPrecedence(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"none", map[string]string{}, ""},
		{"google", map[string]string{EnvGoogleAPIKey: "g"}, "g"},
		{"legacy over google", map[string]string{EnvLegacyAPIKey: "l", EnvGoogleAPIKey: "g"}, "l"},
		{"gemini first", map[string]string{EnvAPIKey: "k", EnvLegacyAPIKey: "l", EnvGoogleAPIKey: "g"}, "k"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, Load().APIKey)
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvModel, "gemini-2.5-pro")
	t.Setenv(EnvLang, "en-GB")
	t.Setenv(EnvCurrency, "USD")
	t.Setenv(EnvData, "book.jsonl")
	t.Setenv(EnvTimeout, "30s")

	c := Load()

	assert.Equal(t, "gemini-2.5-pro", c.Model)
	assert.Equal(t, finflow.English, c.Language())
	assert.Equal(t, "USD", c.Currency)
	assert.Equal(t, "book.jsonl", c.DataFile)
	assert.Equal(t, 30*time.Second, c.Timeout)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	c := &Config{Model: "", Lang: "fr", Currency: "XYZ", Timeout: -time.Second}

	err := c.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported language "fr"`)
	assert.Contains(t, err.Error(), `unknown currency "XYZ"`)
	assert.Contains(t, err.Error(), "model cannot be empty")
	assert.Contains(t, err.Error(), "invalid timeout")
	assert.Equal(t, finflow.Spanish, c.Language())
}

func TestLoadInvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTimeout, "abc")

	c := Load()

	assert.Zero(t, c.Timeout)
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid FINFLOW_TIMEOUT "abc"`)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("GEMINI_API_KEY=from-file\nFINFLOW_LANG=en\n"), 0644))
	t.Setenv(EnvLang, "es")

	require.NoError(t, LoadEnvFile(path))
	t.Cleanup(func() { os.Unsetenv(EnvAPIKey) })

	c := Load()
	assert.Equal(t, "from-file", c.APIKey)
	assert.Equal(t, "es", c.Lang, "variables already set are not overridden")
}

func TestLoadEnvFileMissing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}
