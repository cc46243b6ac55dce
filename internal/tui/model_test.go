package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelup/internal/engine"
	"levelup/internal/storage"
	"levelup/internal/syncer"
)

func newTestModel(t *testing.T) boardModel {
	t.Helper()
	ctx := context.Background()
	wb, err := storage.OpenWorkbook(ctx, filepath.Join(t.TempDir(), "board.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = wb.Close() })
	_, err = wb.Seed(ctx, false)
	require.NoError(t, err)
	require.NoError(t, wb.Write(ctx, "Quests!A2:J3", [][]string{
		{"Plan week", "", "EXE", "2", "", "100", "", "todo", "work", "high"},
		{"Old", "", "WILL", "1", "", "5", "", "completed", "misc", "low"},
	}))

	syn := syncer.New(wb)
	_, err = syn.Connect(ctx)
	require.NoError(t, err)
	return newBoardModel(ctx, syn, time.Minute)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m boardModel, msg tea.Msg) (boardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(boardModel)
	require.True(t, ok)
	return bm, cmd
}

func TestBoardCompleteSelectedQuest(t *testing.T) {
	m := newTestModel(t)
	require.Len(t, m.state.Quests, 2)

	m, cmd := update(t, m, key("c"))
	require.NotNil(t, cmd)
	assert.Contains(t, m.lastLog, "Completing 1")

	m, _ = update(t, m, cmd())
	assert.Contains(t, m.lastLog, "Plan week")
	assert.Contains(t, m.lastLog, "level 2")
	assert.Equal(t, engine.QuestCompleted, m.state.Quests[0].Status)
	assert.Equal(t, 2, m.state.Character.Level)

	// Completed quests are refused without a round trip.
	m, cmd = update(t, m, key("c"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Already completed.", m.lastLog)
}

func TestBoardCompleteRefusedDuringSync(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, completedMsg{id: 1, err: syncer.ErrSyncInProgress})
	assert.Contains(t, m.lastLog, "sync is running")
	assert.Equal(t, engine.QuestTodo, m.state.Quests[0].Status)
}

func TestBoardSelectionBounds(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, key("up"))
	assert.Equal(t, 0, m.selected)
	m, _ = update(t, m, key("down"))
	m, _ = update(t, m, key("down"))
	assert.Equal(t, 1, m.selected)

	m, cmd := update(t, m, key(" "))
	assert.Nil(t, cmd)
	assert.Equal(t, "Already completed.", m.lastLog)
}

func TestBoardSyncKey(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, key("s"))
	require.NotNil(t, cmd)
	assert.True(t, m.loading)

	m, _ = update(t, m, cmd())
	assert.False(t, m.loading)
	assert.True(t, strings.HasPrefix(m.lastLog, "Synced 2 quests"), m.lastLog)
}

func TestBoardTickWithoutDueSync(t *testing.T) {
	m := newTestModel(t)
	// Connect just pulled, so a one-minute interval is not due yet.
	m, cmd := update(t, m, tickMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.False(t, m.loading)
}

func TestBoardView(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	view := m.View()
	assert.Contains(t, view, "Level Up")
	assert.Contains(t, view, "Hero")
	assert.Contains(t, view, "Plan week")
	assert.Contains(t, view, "Quest Log")
}

func TestBoardQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := update(t, m, key("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
