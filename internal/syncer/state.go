package syncer

import (
	"time"

	"levelup/internal/engine"
)

// ConnState is the connection lifecycle: untested -> connected | failed.
type ConnState string

const (
	ConnUntested  ConnState = "untested"
	ConnConnected ConnState = "connected"
	ConnFailed    ConnState = "failed"
)

// State is the in-memory session: every entity collection plus the
// connection flag and notices. It is owned by one Syncer.
type State struct {
	Character    engine.Character
	Quests       []engine.Quest
	Achievements []engine.Achievement
	Resources    []engine.Resource
	Details      engine.DetailBook
	Chat         []engine.ChatMessage
	Goals        engine.Goals

	Conn     ConnState
	LastSync time.Time
	Notices  Notices
}

func NewState() *State {
	return &State{
		Character:    engine.NewCharacter(),
		Quests:       []engine.Quest{},
		Achievements: []engine.Achievement{},
		Resources:    engine.DefaultResources(),
		Details:      engine.DetailBook{},
		Chat:         []engine.ChatMessage{},
		Goals:        engine.NewGoals(),
		Conn:         ConnUntested,
	}
}

// clone copies the collections so the copy can be read while the
// original keeps changing.
func (s *State) clone() State {
	out := *s
	out.Character.Stats = make(engine.Stats, len(s.Character.Stats))
	for k, v := range s.Character.Stats {
		out.Character.Stats[k] = v
	}
	if s.Character.BirthYear != nil {
		y := *s.Character.BirthYear
		out.Character.BirthYear = &y
	}
	out.Quests = cloneSlice(s.Quests)
	out.Achievements = cloneSlice(s.Achievements)
	out.Resources = cloneSlice(s.Resources)
	out.Chat = cloneSlice(s.Chat)
	out.Details = make(engine.DetailBook, len(s.Details))
	for name, ds := range s.Details {
		out.Details[name] = cloneSlice(ds)
	}
	out.Goals = engine.Goals{
		Mission:   s.Goals.Mission,
		Yearly:    cloneSlice(s.Goals.Yearly),
		Quarterly: cloneSlice(s.Goals.Quarterly),
		Monthly:   cloneSlice(s.Goals.Monthly),
	}
	return out
}

// cloneSlice copies in, never returning nil so empty collections stay empty
// lists when encoded.
func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func (s *State) questIndex(id int) int {
	for i := range s.Quests {
		if s.Quests[i].ID == id {
			return i
		}
	}
	return -1
}
