package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"levelup/internal/sheets"
)

// Env holds the environment overrides. Empty values leave the settings
// file untouched.
type Env struct {
	SettingsPath string        `env:"LEVELUP_SETTINGS"`
	SheetID      string        `env:"LEVELUP_SHEET_ID"`
	APIKey       string        `env:"LEVELUP_API_KEY"`
	Backend      string        `env:"LEVELUP_BACKEND"`
	WorkbookPath string        `env:"LEVELUP_WORKBOOK"`
	Timeout      time.Duration `env:"LEVELUP_TIMEOUT"      envDefault:"30s"`
	LogLevel     string        `env:"LEVELUP_LOG_LEVEL"    envDefault:"info"`
	APIBaseURL   string        `env:"LEVELUP_API_BASE_URL"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	if e.Timeout <= 0 {
		e.Timeout = sheets.DefaultTimeout
	}
	return e, nil
}

// Apply overlays the set variables onto s.
func (e Env) Apply(s *Settings) {
	if e.SheetID != "" {
		s.SheetID = e.SheetID
	}
	if e.APIKey != "" {
		s.APIKey = e.APIKey
	}
	if e.Backend != "" {
		s.Backend = e.Backend
	}
	if e.WorkbookPath != "" {
		s.WorkbookPath = e.WorkbookPath
	}
	s.normalize()
}

// Config is everything a command needs to build its store and logger.
type Config struct {
	Path     string
	Settings Settings
	Env      Env
}

// Load reads the environment, then the settings file it points at, then
// applies the overrides. An explicit path wins over LEVELUP_SETTINGS.
func Load(path string) (Config, error) {
	e, err := ParseEnv()
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		path = e.SettingsPath
	}
	if path == "" {
		if path, err = DefaultSettingsPath(); err != nil {
			return Config{}, err
		}
	}
	s, err := LoadSettings(path)
	if err != nil {
		return Config{}, err
	}
	e.Apply(&s)
	return Config{Path: path, Settings: s, Env: e}, nil
}
