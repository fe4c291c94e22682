package main

import (
	"fmt"
	"strings"

	"github.com/bjaus/fhirtext"
	"github.com/bjaus/fhirtext/report"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

const envPrefix = "FHIRTEXT_"

// Config holds the defaults of the command line flags.
type Config struct {
	// Style is the text style of the names, address and telecom commands: plain or html.
	Style string `koanf:"style"`
	// Order arranges person names: last-first or natural.
	Order string `koanf:"order"`
	// Format is the output format of the report command.
	Format   string        `koanf:"format"`
	LogLevel zerolog.Level `koanf:"loglevel"`
}

// DefaultConfig returns the configuration used when no environment variables are set.
func DefaultConfig() Config {
	return Config{
		Style:    fhirtext.Plain.String(),
		Order:    fhirtext.LastFirst.String(),
		Format:   report.Text.String(),
		LogLevel: zerolog.InfoLevel,
	}
}

func (c Config) Validate() error {
	if _, err := fhirtext.ParseStyle(c.Style); err != nil {
		return fmt.Errorf("invalid style: %w", err)
	}
	if _, err := fhirtext.ParseOrder(c.Order); err != nil {
		return fmt.Errorf("invalid order: %w", err)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}
	return nil
}

// LoadConfig loads the configuration from FHIRTEXT_* environment variables.
func LoadConfig() (*Config, error) {
	result := DefaultConfig()
	k := koanf.New(".")
	err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key string, value string) (string, interface{}) {
		key = strings.Replace(strings.ToLower(strings.TrimPrefix(key, envPrefix)), "_", ".", -1)
		if len(value) == 0 {
			return key, nil
		}
		return key, strings.TrimSpace(value)
	}), nil)
	if err != nil {
		return nil, err
	}
	if err := k.Unmarshal("", &result); err != nil {
		return nil, err
	}
	return &result, nil
}
