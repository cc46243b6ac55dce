package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in   string
		want Range
	}{
		{"Quests!A2:K1000", Range{Tab: "Quests", StartCol: 1, StartRow: 2, EndCol: 11, EndRow: 1000}},
		{"Chat!A:E", Range{Tab: "Chat", StartCol: 1, StartRow: 1, EndCol: 5, EndRow: 0}},
		{"Character!B3", Range{Tab: "Character", StartCol: 2, StartRow: 3, EndCol: 2, EndRow: 3}},
		{"'Resource Details'!AA1:AB2", Range{Tab: "Resource Details", StartCol: 27, StartRow: 1, EndCol: 28, EndRow: 2}},
		{"Goals", Range{Tab: "Goals", StartCol: 1, StartRow: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRange(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRangeErrors(t *testing.T) {
	for _, in := range []string{"", "!A1", "Quests!A0", "Quests!C1:A1", "Quests!A5:B2", "Quests!1A"} {
		_, err := ParseRange(in)
		assert.Error(t, err, in)
	}
}

func TestRangeContainsAndString(t *testing.T) {
	r, err := ParseRange("Quests!B2:D4")
	require.NoError(t, err)
	assert.True(t, r.Contains(2, 2))
	assert.True(t, r.Contains(4, 4))
	assert.False(t, r.Contains(1, 2))
	assert.False(t, r.Contains(3, 5))
	assert.Equal(t, "Quests!B2:D4", r.String())

	open, err := ParseRange("Chat!A:E")
	require.NoError(t, err)
	assert.True(t, open.Contains(5000, 5))
	assert.Equal(t, "Chat!A1:E", open.String())
}

func TestColumnName(t *testing.T) {
	assert.Equal(t, "A", ColumnName(1))
	assert.Equal(t, "Z", ColumnName(26))
	assert.Equal(t, "AA", ColumnName(27))
	assert.Equal(t, "AZ", ColumnName(52))
	assert.Equal(t, "", ColumnName(0))
}

func TestQuestRowRange(t *testing.T) {
	assert.Equal(t, "Quests!A2:J2", QuestRowRange(1))
	assert.Equal(t, "Quests!A8:J8", QuestRowRange(7))
}
