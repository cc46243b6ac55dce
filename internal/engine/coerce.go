package engine

import (
	"math"
	"strconv"
	"strings"
)

// ParseInt parses a base-10 integer cell. Empty or malformed input yields def.
func ParseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// ParseFloat parses a decimal cell. Empty, malformed or non-finite input yields def.
func ParseFloat(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// ParseBool reports whether s is one of true/1/yes/on (case-insensitive).
// Empty input yields def; any other value is false.
func ParseBool(s string, def bool) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return def
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}

// OneOf returns s as T when it belongs to allowed, else def.
func OneOf[T ~string](s string, allowed []T, def T) T {
	v := T(strings.TrimSpace(s))
	for _, a := range allowed {
		if a == v {
			return v
		}
	}
	return def
}

func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func intField(f Fields, key string, def int) int {
	v, ok := f.Lookup(key)
	if !ok {
		return def
	}
	return ParseInt(v, def)
}

func stringField(f Fields, key string, def string) string {
	v, ok := f.Lookup(key)
	if !ok {
		return def
	}
	return v
}

// textField is stringField but treats a blank cell as missing.
func textField(f Fields, key string, def string) string {
	v, ok := f.Lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
