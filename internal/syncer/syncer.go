// Package syncer owns the session state and moves it to and from a
// sheets.Store: a full pull of every range, and narrow pushes for each
// local mutation.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"levelup/internal/engine"
	"levelup/internal/mapper"
	"levelup/internal/sheets"
)

// Syncer runs one operation at a time against its store. The mutex guards
// state; the syncing flag keeps a second pull from starting while one runs.
type Syncer struct {
	store   sheets.Store
	logger  *slog.Logger
	now     func() time.Time
	timeout time.Duration

	mu      sync.Mutex
	state   *State
	syncing atomic.Bool
}

type Option func(*Syncer)

func WithLogger(l *slog.Logger) Option {
	return func(s *Syncer) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Syncer) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTimeout bounds every store call.
func WithTimeout(d time.Duration) Option {
	return func(s *Syncer) { s.timeout = d }
}

// WithState starts the session from an existing state instead of NewState.
func WithState(st *State) Option {
	return func(s *Syncer) {
		if st != nil {
			s.state = st
		}
	}
}

// New builds a syncer. A nil store means the app is not configured; every
// remote operation then fails with ErrNotConfigured.
func New(store sheets.Store, opts ...Option) *Syncer {
	s := &Syncer{
		store:   store,
		logger:  slog.Default(),
		now:     time.Now,
		timeout: sheets.DefaultTimeout,
		state:   NewState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Syncer) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func (s *Syncer) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Conn == ConnConnected
}

func (s *Syncer) Syncing() bool { return s.syncing.Load() }

// begin claims the in-progress flag shared by pulls and pushes.
func (s *Syncer) begin() (func(), error) {
	if !s.syncing.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	return func() { s.syncing.Store(false) }, nil
}

// call runs fn with the per-call timeout applied.
func (s *Syncer) call(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return fn(ctx)
}

func (s *Syncer) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Conn = ConnFailed
	s.state.Notices.Error(sheets.UserMessage(err), s.now())
}

func (s *Syncer) notifyError(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Notices.Error(text, s.now())
}

func (s *Syncer) notifySuccess(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Notices.Success(text, s.now())
}

// Probe performs the connection test. Success is the only way to reach
// ConnConnected; failure moves the state to ConnFailed.
func (s *Syncer) Probe(ctx context.Context) error {
	if s.store == nil {
		s.notifyError("Enter both the sheet ID and the API key.")
		return ErrNotConfigured
	}
	err := s.call(ctx, s.store.Probe)
	if err != nil {
		s.logger.Warn("connection test failed", "error", err)
		s.fail(err)
		return fmt.Errorf("probe: %w", err)
	}

	s.mu.Lock()
	s.state.Conn = ConnConnected
	s.state.Notices.ClearError()
	s.state.Notices.Success("Connected.", s.now())
	s.mu.Unlock()
	s.logger.Info("connection test passed")
	return nil
}

// Connect probes and, when that succeeds, pulls immediately.
func (s *Syncer) Connect(ctx context.Context) (PullReport, error) {
	if err := s.Probe(ctx); err != nil {
		return PullReport{}, err
	}
	return s.Pull(ctx)
}

// RangeWarning records a range that could not be read during a pull.
type RangeWarning struct {
	Range string
	Err   error
}

type PullReport struct {
	RunID        string
	Started      time.Time
	Finished     time.Time
	Quests       int
	Achievements int
	Resources    int
	Details      int
	Messages     int
	Warnings     []RangeWarning
}

type pullStep struct {
	name  string
	rng   string
	apply func(st *State, rows [][]string, report *PullReport, now time.Time)
}

var pullSteps = []pullStep{
	{"character", sheets.RangeCharacter, func(st *State, rows [][]string, _ *PullReport, _ time.Time) {
		if f, ok := mapper.ReadCharacter(rows); ok && len(f) > 0 {
			st.Character.UpdateFromFields(f)
		}
	}},
	{"quests", sheets.RangeQuests, func(st *State, rows [][]string, r *PullReport, _ time.Time) {
		st.Quests = mapper.ReadQuests(rows)
		r.Quests = len(st.Quests)
	}},
	{"achievements", sheets.RangeAchievements, func(st *State, rows [][]string, r *PullReport, _ time.Time) {
		st.Achievements = mapper.ReadAchievements(rows)
		r.Achievements = len(st.Achievements)
	}},
	{"resources", sheets.RangeResources, func(st *State, rows [][]string, r *PullReport, _ time.Time) {
		r.Resources = mapper.ApplyResources(st.Resources, mapper.ReadResources(rows))
	}},
	{"resource_details", sheets.RangeResourceDetails, func(st *State, rows [][]string, r *PullReport, now time.Time) {
		st.Details = mapper.ReadResourceDetails(rows, now)
		r.Details = st.Details.Count()
	}},
	{"chat", sheets.RangeChat, func(st *State, rows [][]string, r *PullReport, _ time.Time) {
		st.Chat = mapper.ReadChat(rows)
		r.Messages = len(st.Chat)
	}},
	{"goals", sheets.RangeGoals, func(st *State, rows [][]string, _ *PullReport, _ time.Time) {
		if g, ok := mapper.ReadGoals(rows); ok && !g.IsEmpty() {
			st.Goals = g
		}
	}},
}

// Pull reads all seven ranges in order and replaces the collections. A
// range that fails to read degrades to an empty result and a warning. The
// pull itself fails, marking the connection failed, when the context ends
// or when no range could be read at all. Ranges applied before a failure
// are kept.
func (s *Syncer) Pull(ctx context.Context) (PullReport, error) {
	if s.store == nil {
		return PullReport{}, ErrNotConfigured
	}
	if !s.Connected() {
		return PullReport{}, ErrNotConnected
	}
	release, err := s.begin()
	if err != nil {
		return PullReport{}, err
	}
	defer release()

	report := PullReport{RunID: uuid.NewString(), Started: s.now()}
	logger := s.logger.With("run", report.RunID)
	logger.Info("pull started")

	var errs []error
	for _, step := range pullSteps {
		var rows [][]string
		err := s.call(ctx, func(ctx context.Context) error {
			var err error
			rows, err = s.store.Read(ctx, step.rng)
			return err
		})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				err = fmt.Errorf("pull %s: %w", step.name, errors.Join(ctxErr, err))
				logger.Error("pull aborted", "range", step.rng, "error", err)
				s.fail(err)
				return report, err
			}
			logger.Warn("range read failed", "range", step.rng, "error", err)
			report.Warnings = append(report.Warnings, RangeWarning{Range: step.rng, Err: err})
			errs = append(errs, err)
			rows = nil
		}

		s.mu.Lock()
		step.apply(s.state, rows, &report, s.now())
		s.mu.Unlock()
	}

	if len(errs) == len(pullSteps) {
		err := fmt.Errorf("pull: no range could be read: %w", errors.Join(errs...))
		logger.Error("pull failed", "error", err)
		s.fail(err)
		return report, err
	}

	report.Finished = s.now()
	s.mu.Lock()
	s.state.LastSync = report.Finished
	if len(report.Warnings) > 0 {
		s.state.Notices.Warning(fmt.Sprintf("Synced with %d unreadable range(s).", len(report.Warnings)), report.Finished)
	}
	s.state.Notices.Success("Data synced.", report.Finished)
	s.mu.Unlock()

	logger.Info("pull finished",
		"quests", report.Quests,
		"achievements", report.Achievements,
		"details", report.Details,
		"messages", report.Messages,
		"warnings", len(report.Warnings),
		"took", report.Finished.Sub(report.Started))
	return report, nil
}

// AutoSyncDue reports whether a periodic pull should start now. It is
// false while a pull runs, while disconnected, or when interval is not
// positive.
func (s *Syncer) AutoSyncDue(interval time.Duration) bool {
	if interval <= 0 || s.syncing.Load() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Conn != ConnConnected {
		return false
	}
	return s.state.LastSync.IsZero() || s.now().Sub(s.state.LastSync) >= interval
}

// Totals are the aggregates shown on the dashboard.
type Totals struct {
	NetWorth        float64
	CompletedQuests int
	QuestRate       float64
	Unlocked        int
	UnlockRate      float64
	HighPriority    []engine.Quest
}

func (st State) Totals() Totals {
	return Totals{
		NetWorth:        engine.NetWorth(st.Details),
		CompletedQuests: engine.CompletedQuestCount(st.Quests),
		QuestRate:       engine.QuestCompletionRate(st.Quests),
		Unlocked:        engine.UnlockedAchievementCount(st.Achievements),
		UnlockRate:      engine.AchievementUnlockRate(st.Achievements),
		HighPriority:    engine.HighPriorityQuests(st.Quests),
	}
}
