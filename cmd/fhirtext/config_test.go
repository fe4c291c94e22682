package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	assert.Equal(t, "plain", cfg.Style)
	assert.Equal(t, "last-first", cfg.Order)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		mutate  func(*Config)
		wantErr string
	}{
		"style":  {mutate: func(c *Config) { c.Style = "pdf" }, wantErr: "invalid style"},
		"order":  {mutate: func(c *Config) { c.Order = "reverse" }, wantErr: "invalid order"},
		"format": {mutate: func(c *Config) { c.Format = "xml" }, wantErr: "invalid format"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), *cfg)
	})
	t.Run("from environment", func(t *testing.T) {
		t.Setenv("FHIRTEXT_STYLE", "html")
		t.Setenv("FHIRTEXT_ORDER", " natural ")
		t.Setenv("FHIRTEXT_FORMAT", "csv")
		t.Setenv("FHIRTEXT_LOGLEVEL", "debug")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "html", cfg.Style)
		assert.Equal(t, "natural", cfg.Order)
		assert.Equal(t, "csv", cfg.Format)
		assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	})
	t.Run("empty value keeps default", func(t *testing.T) {
		t.Setenv("FHIRTEXT_STYLE", "")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "plain", cfg.Style)
	})
}
