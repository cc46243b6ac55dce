package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelup/internal/mapper"
	"levelup/internal/sheets"
)

func openTestWorkbook(t *testing.T) *Workbook {
	t.Helper()
	wb, err := OpenWorkbook(context.Background(), filepath.Join(t.TempDir(), "nested", "levelup.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = wb.Close() })
	return wb
}

func TestWorkbookWriteRead(t *testing.T) {
	ctx := context.Background()
	wb := openTestWorkbook(t)

	require.NoError(t, wb.Probe(ctx))

	got, err := wb.Read(ctx, "Quests!A2:K1000")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, wb.Write(ctx, "Quests!A2:J3", [][]string{
		{"Q1", "d", "WILL"},
		{"Q2", "", "", "4"},
	}))
	require.NoError(t, wb.Write(ctx, "Quests!A5:J5", [][]string{{"Q4"}}))

	got, err = wb.Read(ctx, "Quests!A2:K1000")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Q1", "d", "WILL"},
		{"Q2", "", "", "4"},
		{},
		{"Q4"},
	}, got)

	// Narrow reads are relative to the range start.
	got, err = wb.Read(ctx, "Quests!B3:D3")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"", "", "4"}}, got)
}

func TestWorkbookWriteOverwritesAndClears(t *testing.T) {
	ctx := context.Background()
	wb := openTestWorkbook(t)

	require.NoError(t, wb.Write(ctx, "Quests!A2:J2", [][]string{{"Run", "far", "PHY", "2"}}))
	require.NoError(t, wb.Write(ctx, "Quests!A2:J2", [][]string{{"Run", "", "PHY", "3", "", "", "", "", "", "", "ignored"}}))

	got, err := wb.Read(ctx, "Quests!A2:K2")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Run", "", "PHY", "3"}}, got)
}

func TestWorkbookAppend(t *testing.T) {
	ctx := context.Background()
	wb := openTestWorkbook(t)

	require.NoError(t, wb.Append(ctx, sheets.RangeChatAppend, []string{"first", "08:00", "note", "01/01/2024", "user"}))
	require.NoError(t, wb.Write(ctx, "Chat!A3:E3", [][]string{{"third"}}))
	require.NoError(t, wb.Append(ctx, sheets.RangeChatAppend, []string{"fourth"}))

	got, err := wb.Read(ctx, "Chat!A1:E1000")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "first", got[0][0])
	assert.Equal(t, []string{}, got[1])
	assert.Equal(t, []string{"fourth"}, got[3])
}

func TestWorkbookBadRange(t *testing.T) {
	wb := openTestWorkbook(t)
	_, err := wb.Read(context.Background(), "!A1")
	require.Error(t, err)
}

func TestWorkbookCanceledContext(t *testing.T) {
	wb := openTestWorkbook(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := wb.Read(ctx, sheets.RangeQuests)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, errors.Is(err, sheets.ErrConnection))
}

func TestWorkbookSeed(t *testing.T) {
	ctx := context.Background()
	wb := openTestWorkbook(t)

	n, err := wb.Seed(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, len(sheets.Headers), n)

	rows, err := wb.Read(ctx, sheets.RangeCharacter)
	require.NoError(t, err)
	f, ok := mapper.ReadCharacter(rows)
	require.True(t, ok)
	assert.Equal(t, "Hero", f["name"])
	assert.Equal(t, "100", f["exp_to_next"])

	rows, err = wb.Read(ctx, sheets.RangeResources)
	require.NoError(t, err)
	updates := mapper.ReadResources(rows)
	require.Len(t, updates, 4)
	assert.Equal(t, "Social", updates[0].Name)

	header, err := wb.Read(ctx, "Quests!A1:K1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{sheets.Headers["Quests"]}, header)

	quests, err := wb.Read(ctx, sheets.RangeQuests)
	require.NoError(t, err)
	assert.Empty(t, quests)

	// A second seed finds every tab populated.
	require.NoError(t, wb.Write(ctx, sheets.RangeCharacterBlock, [][]string{{"name", "Mai"}}))
	n, err = wb.Seed(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	rows, err = wb.Read(ctx, sheets.RangeCharacter)
	require.NoError(t, err)
	assert.Equal(t, "Mai", rows[0][1])
}
