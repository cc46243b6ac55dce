package ui

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLanguage is the locale used when the settings name none.
const DefaultLanguage = "vi"

// Printer returns a message printer for lang, falling back to DefaultLanguage.
func Printer(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil || lang == "" {
		tag = language.MustParse(DefaultLanguage)
	}
	return message.NewPrinter(tag)
}

// FormatCurrency abbreviates amounts of a thousand or more with K, M or B
// and one decimal; smaller amounts are printed whole.
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign, amount = "-", -amount
	}
	switch {
	case amount >= 1e9:
		return fmt.Sprintf("%s%.1fB", sign, amount/1e9)
	case amount >= 1e6:
		return fmt.Sprintf("%s%.1fM", sign, amount/1e6)
	case amount >= 1e3:
		return fmt.Sprintf("%s%.1fK", sign, amount/1e3)
	default:
		return FormatAmount(sign, amount, DefaultLanguage)
	}
}

// FormatAmount prints amount rounded to a whole number with the thousands
// grouping of lang ("1.500.000" in Vietnamese).
func FormatAmount(sign string, amount float64, lang string) string {
	return sign + Printer(lang).Sprintf("%d", int64(math.Round(amount)))
}

// ProgressBar draws a bar of width cells filled to percent.
func ProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	percent = math.Max(0, math.Min(100, percent))
	filled := int(math.Round(percent / 100 * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Truncate shortens s to max runes, ending with "...".
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= 3 {
		return string([]rune(s)[:max])
	}
	return string([]rune(s)[:max-3]) + "..."
}

func Percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}
