// Package config reads the finflow settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/etnz/finflow"
	"github.com/etnz/finflow/advisor"
	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvAPIKey       = "GEMINI_API_KEY"
	EnvLegacyAPIKey = "API_KEY"
	EnvGoogleAPIKey = "GOOGLE_API_KEY"
	EnvModel        = "FINFLOW_MODEL"
	EnvLang         = "FINFLOW_LANG"
	EnvData         = "FINFLOW_DATA"
	EnvCurrency     = "FINFLOW_CURRENCY"
	EnvTimeout      = "FINFLOW_TIMEOUT"
)

type Config struct {
	// Gemini credential, only its presence is checked.
	APIKey string
	Model  string

	Lang     string
	Currency string

	// DataFile is a JSONL dataset, empty for the demonstration data.
	DataFile string

	// Timeout of an advice request, zero for none.
	Timeout time.Duration

	// variables that could not be read, reported by Validate.
	invalid []string
}

// LoadEnvFile loads variables from a .env file into the environment,
// without overriding the ones already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot load env file %q: %w", path, err)
	}
	return nil
}

// Load reads the configuration from the environment.
func Load() *Config {
	c := &Config{
		APIKey:   firstEnv(EnvAPIKey, EnvLegacyAPIKey, EnvGoogleAPIKey),
		Model:    getEnv(EnvModel, advisor.DefaultModel),
		Lang:     getEnv(EnvLang, string(finflow.DefaultLang)),
		Currency: getEnv(EnvCurrency, "EUR"),
		DataFile: getEnv(EnvData, ""),
	}
	timeout, err := getEnvDuration(EnvTimeout, 0)
	if err != nil {
		c.invalid = append(c.invalid, err.Error())
	}
	c.Timeout = timeout
	return c
}

// HasAPIKey reports whether a Gemini credential is configured.
func (c *Config) HasAPIKey() bool { return strings.TrimSpace(c.APIKey) != "" }

// Language returns the configured language, or the default one when invalid.
func (c *Config) Language() finflow.Lang {
	l, err := finflow.ParseLang(c.Lang)
	if err != nil {
		return finflow.DefaultLang
	}
	return l
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	errs := slices.Clone(c.invalid)

	if _, err := finflow.ParseLang(c.Lang); err != nil {
		errs = append(errs, err.Error())
	}
	if !finflow.IsKnownCurrency(c.Currency) {
		errs = append(errs, fmt.Sprintf("unknown currency %q: must be an ISO 4217 code", c.Currency))
	}
	if strings.TrimSpace(c.Model) == "" {
		errs = append(errs, "model cannot be empty")
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("invalid timeout %v: must not be negative", c.Timeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// firstEnv returns the first non empty variable among keys.
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if value := os.Getenv(k); value != "" {
			return value
		}
	}
	return ""
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s %q: must be a duration such as 30s", key, value)
	}
	return d, nil
}
