package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"levelup/internal/engine"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[float64]string{
		0:             "0",
		999:           "999",
		1500:          "1.5K",
		2_500_000:     "2.5M",
		7_300_000_000: "7.3B",
		-4200:         "-4.2K",
		12.6:          "13",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCurrency(in), "amount %v", in)
	}
}

func TestFormatAmountGrouping(t *testing.T) {
	assert.Equal(t, "1.500.000", FormatAmount("", 1_500_000, "vi"))
	assert.Equal(t, "1,500,000", FormatAmount("", 1_500_000, "en"))
	assert.Equal(t, "-2.000", FormatAmount("-", 2000, "not a tag!"))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", ProgressBar(50, 10))
	assert.Equal(t, "░░░░", ProgressBar(-20, 4))
	assert.Equal(t, "████", ProgressBar(140, 4))
	assert.Equal(t, "", ProgressBar(50, 0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Hoàn t...", Truncate("Hoàn thành nhiệm vụ", 9))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}

func TestStatLine(t *testing.T) {
	line := StatLine(engine.StatMen, 42)
	assert.Contains(t, line, "Mind")
	assert.Contains(t, line, "42")
}
