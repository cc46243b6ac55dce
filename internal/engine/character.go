package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	DefaultStatValue = 10
	MinStatValue     = 1
	MaxStatValue     = 999

	MinBirthYear = 1900
)

// Stats maps each character axis to its value.
type Stats map[StatAxis]int

func DefaultStats() Stats {
	s := make(Stats, len(StatAxes))
	for _, a := range StatAxes {
		s[a] = DefaultStatValue
	}
	return s
}

// Get returns the value for axis, or the default when the axis is missing.
func (s Stats) Get(a StatAxis) int {
	if v, ok := s[a]; ok {
		return v
	}
	return DefaultStatValue
}

// Merge overlays a JSON-encoded stats object onto s. Unknown axes and
// malformed values are ignored; an unparseable document leaves s unchanged.
func (s Stats) Merge(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	var in map[string]any
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return
	}
	for k, v := range in {
		axis := StatAxis(strings.ToUpper(strings.TrimSpace(k)))
		if !axis.IsValid() {
			continue
		}
		cur := s.Get(axis)
		switch tv := v.(type) {
		case float64:
			if !math.IsNaN(tv) && !math.IsInf(tv, 0) {
				cur = int(clampFloat(tv, MinStatValue, MaxStatValue))
			}
		case string:
			cur = ParseInt(tv, cur)
		}
		s[axis] = Clamp(cur, MinStatValue, MaxStatValue)
	}
}

// JSON encodes the five axes for the sheet's stats cell.
func (s Stats) JSON() string {
	out := make(map[StatAxis]int, len(StatAxes))
	for _, a := range StatAxes {
		out[a] = s.Get(a)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "{}"
	}
	return string(data)
}

type Character struct {
	Name      string `json:"name" yaml:"name"`
	Avatar    string `json:"avatar" yaml:"avatar"`
	BirthYear *int   `json:"birth_year,omitempty" yaml:"birth_year,omitempty"`
	Level     int    `json:"level" yaml:"level"`
	Exp       int    `json:"exp" yaml:"exp"`
	ExpToNext int    `json:"exp_to_next" yaml:"exp_to_next"`
	Stats     Stats  `json:"stats" yaml:"stats"`
}

func NewCharacter() Character {
	return Character{
		Name:      "Hero",
		Level:     1,
		Exp:       0,
		ExpToNext: 100,
		Stats:     DefaultStats(),
	}
}

// CharacterFromFields builds a character from defaults plus whatever f carries.
func CharacterFromFields(f Fields) Character {
	c := NewCharacter()
	c.UpdateFromFields(f)
	return c
}

// UpdateFromFields overwrites only the keys present in f.
func (c *Character) UpdateFromFields(f Fields) {
	if c.Stats == nil {
		c.Stats = DefaultStats()
	}
	if v, ok := f.Lookup("name"); ok {
		c.Name = v
	}
	if v, ok := f.Lookup("avatar"); ok {
		c.Avatar = v
	}
	if v, ok := f.Lookup("birth_year"); ok {
		c.BirthYear = parseBirthYear(v)
	}
	if v, ok := f.Lookup("level"); ok {
		c.Level = max(1, ParseInt(v, c.Level))
	}
	if v, ok := f.Lookup("exp"); ok {
		c.Exp = max(0, ParseInt(v, c.Exp))
	}
	if v, ok := f.Lookup("exp_to_next"); ok {
		c.ExpToNext = max(1, ParseInt(v, c.ExpToNext))
	}
	if v, ok := f.Lookup("stats"); ok {
		c.Stats.Merge(v)
	}
	for _, a := range StatAxes {
		if _, ok := c.Stats[a]; !ok {
			c.Stats[a] = DefaultStatValue
		}
	}
}

func parseBirthYear(s string) *int {
	y := ParseInt(s, 0)
	if y < MinBirthYear || y > time.Now().Year() {
		return nil
	}
	return &y
}

// Age returns the age in years at now, if a birth year is known.
func (c Character) Age(now time.Time) (int, bool) {
	if c.BirthYear == nil {
		return 0, false
	}
	return now.Year() - *c.BirthYear, true
}

func (c Character) AgeDisplay(now time.Time) string {
	age, ok := c.Age(now)
	if !ok || age <= 0 {
		return ""
	}
	return fmt.Sprintf("%d years old", age)
}

// ExpProgress is the percentage of exp relative to the next threshold.
func (c Character) ExpProgress() float64 {
	if c.ExpToNext <= 0 {
		return 0
	}
	return clampFloat(float64(c.Exp)/float64(c.ExpToNext)*100, 0, 100)
}
