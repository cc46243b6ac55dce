// Package config loads the local settings file, applies environment
// overrides and builds the logger.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"levelup/internal/syncer"
)

const (
	BackendSheets = "sheets"
	BackendSQLite = "sqlite"
)

// SyncIntervals are the auto-sync periods offered, in minutes.
var SyncIntervals = []int{1, 5, 15, 30, 60}

// Settings is the flat JSON object stored on disk.
type Settings struct {
	SheetID       string `json:"sheet_id"`
	APIKey        string `json:"api_key"`
	AutoSync      bool   `json:"auto_sync"`
	SyncInterval  int    `json:"sync_interval"`
	Backend       string `json:"backend"`
	WorkbookPath  string `json:"workbook_path,omitempty"`
	Theme         string `json:"theme"`
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
}

func DefaultSettings() Settings {
	return Settings{
		SyncInterval:  5,
		Backend:       BackendSheets,
		Theme:         "dark",
		Language:      "vi",
		Notifications: true,
	}
}

// DefaultSettingsPath returns the settings file under the user config dir.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(dir, "levelup", "settings.json"), nil
}

// LoadSettings reads path. A missing file yields the defaults; keys absent
// from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("decode settings %s: %w", path, err)
	}
	s.normalize()
	return s, nil
}

// SaveSettings writes s to path. The file holds the API key, so it is
// readable by the owner only.
func SaveSettings(path string, s Settings) error {
	s.normalize()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func (s *Settings) normalize() {
	s.SheetID = strings.TrimSpace(s.SheetID)
	s.APIKey = strings.TrimSpace(s.APIKey)
	if !slices.Contains(SyncIntervals, s.SyncInterval) {
		s.SyncInterval = DefaultSettings().SyncInterval
	}
	s.Backend = strings.ToLower(strings.TrimSpace(s.Backend))
	if s.Backend != BackendSQLite {
		s.Backend = BackendSheets
	}
}

// Interval is the auto-sync period, or 0 when auto-sync is off.
func (s Settings) Interval() time.Duration {
	if !s.AutoSync {
		return 0
	}
	return time.Duration(s.SyncInterval) * time.Minute
}

// Validate reports whether the configured backend can be reached. The
// sheets backend needs both a sheet id and an API key.
func (s Settings) Validate() error {
	if s.Backend == BackendSheets && (s.SheetID == "" || s.APIKey == "") {
		return syncer.ErrNotConfigured
	}
	return nil
}

// Set assigns one setting by its JSON key, as used by `settings set`.
func (s *Settings) Set(key, value string) error {
	switch key {
	case "sheet_id":
		s.SheetID = value
	case "api_key":
		s.APIKey = value
	case "auto_sync", "notifications":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if key == "auto_sync" {
			s.AutoSync = b
		} else {
			s.Notifications = b
		}
	case "sync_interval":
		n, err := strconv.Atoi(value)
		if err != nil || !slices.Contains(SyncIntervals, n) {
			return fmt.Errorf("sync_interval must be one of %v", SyncIntervals)
		}
		s.SyncInterval = n
	case "backend":
		v := strings.ToLower(value)
		if v != BackendSheets && v != BackendSQLite {
			return fmt.Errorf("backend must be %q or %q", BackendSheets, BackendSQLite)
		}
		s.Backend = v
	case "workbook_path":
		s.WorkbookPath = value
	case "theme":
		s.Theme = value
	case "language":
		s.Language = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	s.normalize()
	return nil
}

// Masked returns a copy safe to print.
func (s Settings) Masked() Settings {
	if n := len(s.APIKey); n > 4 {
		s.APIKey = strings.Repeat("*", n-4) + s.APIKey[n-4:]
	} else if n > 0 {
		s.APIKey = strings.Repeat("*", n)
	}
	return s
}
