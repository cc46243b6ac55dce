// Package export writes a snapshot of the session state for backups.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"levelup/internal/engine"
	"levelup/internal/syncer"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

type Summary struct {
	NetWorth           float64 `json:"net_worth" yaml:"net_worth"`
	QuestCompletion    float64 `json:"quest_completion_pct" yaml:"quest_completion_pct"`
	AchievementsUnlock float64 `json:"achievement_unlock_pct" yaml:"achievement_unlock_pct"`
}

// Snapshot is the exported document.
type Snapshot struct {
	ExportedAt      time.Time            `json:"exported_at" yaml:"exported_at"`
	LastSync        *time.Time           `json:"last_sync,omitempty" yaml:"last_sync,omitempty"`
	Character       engine.Character     `json:"character" yaml:"character"`
	Quests          []engine.Quest       `json:"quests" yaml:"quests"`
	Achievements    []engine.Achievement `json:"achievements" yaml:"achievements"`
	Resources       []engine.Resource    `json:"resources" yaml:"resources"`
	ResourceDetails engine.DetailBook    `json:"resource_details" yaml:"resource_details"`
	Chat            []engine.ChatMessage `json:"chat" yaml:"chat"`
	Goals           engine.Goals         `json:"goals" yaml:"goals"`
	Summary         Summary              `json:"summary" yaml:"summary"`
}

func NewSnapshot(st syncer.State, now time.Time) Snapshot {
	s := Snapshot{
		ExportedAt:      now.UTC(),
		Character:       st.Character,
		Quests:          st.Quests,
		Achievements:    st.Achievements,
		Resources:       st.Resources,
		ResourceDetails: st.Details,
		Chat:            st.Chat,
		Goals:           st.Goals,
	}
	if !st.LastSync.IsZero() {
		t := st.LastSync.UTC()
		s.LastSync = &t
	}
	totals := st.Totals()
	s.Summary = Summary{
		NetWorth:           totals.NetWorth,
		QuestCompletion:    totals.QuestRate,
		AchievementsUnlock: totals.UnlockRate,
	}
	return s
}

// Write encodes s to w in format ("yaml" or "json").
func Write(w io.Writer, s Snapshot, format string) error {
	switch strings.ToLower(format) {
	case FormatYAML, "yml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// Read decodes a snapshot written by Write.
func Read(r io.Reader, format string) (Snapshot, error) {
	var s Snapshot
	switch strings.ToLower(format) {
	case FormatYAML, "yml", "":
		if err := yaml.NewDecoder(r).Decode(&s); err != nil {
			return Snapshot{}, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return Snapshot{}, fmt.Errorf("decode json: %w", err)
		}
	default:
		return Snapshot{}, fmt.Errorf("unknown export format %q", format)
	}
	return s, nil
}
