// Package config loads application configuration from the environment and
// keeps the remembered translation-file pair between runs.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/polyglot/pkg/translator/deepl"
)

// ErrInvalidLanguage is returned when a configured language code does not
// parse as a BCP 47 tag.
var ErrInvalidLanguage = errors.New("config: invalid language code")

// Config holds all environment-driven settings. A missing DeepL credential
// only disables auto-translate; manual editing always works.
type Config struct {
	DeepL deepl.Config

	// Language pair passed to the translation provider.
	SourceLang string `env:"POLYGLOT_SOURCE_LANG" envDefault:"pl"`
	TargetLang string `env:"POLYGLOT_TARGET_LANG" envDefault:"en-GB"`

	// Listen address for the local HTTP API.
	Addr string `env:"POLYGLOT_ADDR" envDefault:"localhost:7345"`
}

// Load reads a .env file when present, then parses the environment into a
// Config and validates the language pair.
func Load() (Config, error) {
	// .env is optional; the environment itself is the source of truth.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing environment: %w", err)
	}

	for _, code := range []string{cfg.SourceLang, cfg.TargetLang} {
		if _, err := language.Parse(code); err != nil {
			return Config{}, fmt.Errorf("%w: %q", ErrInvalidLanguage, code)
		}
	}
	return cfg, nil
}
