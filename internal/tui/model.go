package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"levelup/internal/engine"
	"levelup/internal/sheets"
	"levelup/internal/syncer"
	"levelup/internal/ui"
)

// tickEvery is how often the board checks whether an auto-sync is due.
const tickEvery = 15 * time.Second

type boardModel struct {
	ctx      context.Context
	syn      *syncer.Syncer
	interval time.Duration
	now      func() time.Time

	width  int
	height int

	state    syncer.State
	selected int

	lastLog string
	loading bool
}

type pulledMsg struct {
	report syncer.PullReport
	err    error
}

type completedMsg struct {
	id  int
	res syncer.CompleteResult
	err error
}

type tickMsg time.Time

func newBoardModel(ctx context.Context, syn *syncer.Syncer, interval time.Duration) boardModel {
	return boardModel{
		ctx:      ctx,
		syn:      syn,
		interval: interval,
		now:      time.Now,
		state:    syn.Snapshot(),
		lastLog:  "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.syn.Connected() {
		cmds = append(cmds, m.pullCmd())
	}
	if m.interval > 0 {
		cmds = append(cmds, tickCmd())
	}
	return tea.Batch(cmds...)
}

func (m boardModel) pullCmd() tea.Cmd {
	return func() tea.Msg {
		report, err := m.syn.Pull(m.ctx)
		return pulledMsg{report: report, err: err}
	}
}

func (m boardModel) completeCmd(id int) tea.Cmd {
	return func() tea.Msg {
		res, err := m.syn.CompleteQuest(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case pulledMsg:
		m.loading = false
		m.state = m.syn.Snapshot()
		m.clampSelection()
		switch {
		case errors.Is(msg.err, syncer.ErrSyncInProgress):
			m.lastLog = "A sync is already running."
		case msg.err != nil:
			m.lastLog = "Sync failed: " + sheets.UserMessage(msg.err)
		default:
			m.lastLog = fmt.Sprintf("Synced %d quests at %s.", msg.report.Quests, m.now().Format("15:04:05"))
			if n := len(msg.report.Warnings); n > 0 {
				m.lastLog += fmt.Sprintf(" %d range(s) unreadable.", n)
			}
		}
		return m, nil
	case completedMsg:
		m.state = m.syn.Snapshot()
		switch {
		case errors.Is(msg.err, syncer.ErrSyncInProgress):
			m.lastLog = "A sync is running; try again when it finishes."
		case !msg.res.Changed:
			m.lastLog = "Already completed."
		case msg.err != nil:
			m.lastLog = fmt.Sprintf("Completed %d locally; push failed: %s", msg.id, sheets.UserMessage(msg.err))
		default:
			m.lastLog = fmt.Sprintf("Completed %s: +%d EXP (level %d)", msg.res.Quest.Title, msg.res.Quest.RewardExp, msg.res.Character.Level)
			if msg.res.LevelsGained > 0 {
				m.lastLog += " " + ui.BadgeLevelUp
			}
		}
		return m, nil
	case tickMsg:
		if m.syn.AutoSyncDue(m.interval) {
			m.loading = true
			return m, tea.Batch(m.pullCmd(), tickCmd())
		}
		return m, tickCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "s":
			if m.syn.Syncing() {
				m.lastLog = "A sync is already running."
				return m, nil
			}
			m.loading = true
			m.lastLog = "Syncing…"
			return m, m.pullCmd()
		case "r":
			m.state = m.syn.Snapshot()
			m.clampSelection()
			m.lastLog = "Refreshed."
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.state.Quests)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			if m.syn.Syncing() {
				m.lastLog = "A sync is running; try again when it finishes."
				return m, nil
			}
			if m.selected < 0 || m.selected >= len(m.state.Quests) {
				m.lastLog = "No quest selected."
				return m, nil
			}
			q := m.state.Quests[m.selected]
			if q.IsCompleted() {
				m.lastLog = "Already completed."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %d…", q.ID)
			return m, m.completeCmd(q.ID)
		}
	}
	return m, nil
}

func (m *boardModel) clampSelection() {
	if m.selected >= len(m.state.Quests) {
		m.selected = len(m.state.Quests) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) View() string {
	leftW := 30
	if m.width > 0 {
		leftW = max(22, min(leftW, m.width/3))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		ui.Panel.Width(leftW).Render(m.renderSidebar()),
		" ",
		ui.Panel.Render(m.renderMain()),
	)
	return m.renderHeader() + "\n" + body + "\n" + m.renderFooter()
}

func (m boardModel) renderHeader() string {
	c := m.state.Character
	return fmt.Sprintf("%s | %s | Level %d | EXP %d/%d %s | %s",
		ui.Title.Render("Level Up"),
		c.Name,
		c.Level,
		c.Exp, c.ExpToNext,
		ui.ProgressBar(c.ExpProgress(), 20),
		ui.ConnText(string(m.state.Conn)))
}

func (m boardModel) renderSidebar() string {
	lines := []string{ui.PanelTitle.Render("Stats")}
	for _, axis := range engine.StatAxes {
		lines = append(lines, ui.StatLine(axis, m.state.Character.Stats.Get(axis)))
	}

	totals := m.state.Totals()
	lines = append(lines, "", ui.PanelTitle.Render("Progress"))
	lines = append(lines, ui.LabelValue("Quests", fmt.Sprintf("%d/%d (%s)", totals.CompletedQuests, len(m.state.Quests), ui.Percent(totals.QuestRate))))
	lines = append(lines, ui.LabelValue("Achievements", fmt.Sprintf("%d/%d", totals.Unlocked, len(m.state.Achievements))))
	lines = append(lines, ui.LabelValue("Net worth", ui.FormatCurrency(totals.NetWorth)))

	lines = append(lines, "", ui.PanelTitle.Render("Keys"))
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- s: sync")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading && len(m.state.Quests) == 0 {
		return "Loading…"
	}

	out := []string{ui.PanelTitle.Render("Focus")}
	focus := engine.HighPriorityQuests(m.state.Quests)
	if len(focus) == 0 {
		out = append(out, ui.Muted.Render("(no open high-priority quests)"))
	}
	for i, q := range focus {
		if i == 3 {
			break
		}
		out = append(out, fmt.Sprintf("- %d %s (+%d EXP)", q.ID, q.Title, q.RewardExp))
	}

	out = append(out, "", ui.PanelTitle.Render("Quest Log"))
	if len(m.state.Quests) == 0 {
		out = append(out, "(empty)")
		return strings.Join(out, "\n")
	}
	for i, q := range m.state.Quests {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "  "
		if q.IsCompleted() {
			mark = ui.IconDone + " "
		}
		line := fmt.Sprintf("%s%s%d %s %s %s", cursor, mark, q.ID, ui.Truncate(q.Title, 40), q.DifficultyStars(), q.PriorityIcon())
		if i == m.selected {
			line = ui.SelectedRow.Render(line)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	now := m.now()
	var lines []string
	if s := m.state.Notices.SuccessText(now); s != "" {
		lines = append(lines, ui.Good.Render(ui.IconSparkle+" "+s))
	}
	if w := m.state.Notices.WarningText(now); w != "" {
		lines = append(lines, ui.Warn.Render(ui.IconWarn+" "+w))
	}
	if e := m.state.Notices.ErrorText(now); e != "" {
		lines = append(lines, ui.Bad.Render(ui.IconError+" "+e))
	}
	lines = append(lines, m.lastLog)
	return strings.Join(lines, "\n")
}
