package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"levelup/internal/syncer"
)

// RunBoard opens the dashboard. A positive interval enables auto-sync.
func RunBoard(ctx context.Context, syn *syncer.Syncer, interval time.Duration, out io.Writer) error {
	m := newBoardModel(ctx, syn, interval)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
