package syncer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"levelup/internal/engine"
	"levelup/internal/mapper"
	"levelup/internal/sheets"
)

// CompleteResult describes a quest completion. Changed is false when the
// quest was unknown or already completed; Pushed reports whether the
// remote writes were attempted and all succeeded.
type CompleteResult struct {
	Quest        engine.Quest
	Character    engine.Character
	Message      engine.ChatMessage
	LevelsGained int
	Changed      bool
	Pushed       bool
}

// CompleteQuest marks quest id completed, awards its exp, applies level-ups
// and records an achievement message. When connected, the quest row, the
// character block and the message are pushed as three independent writes;
// their failures are joined into one error and local changes are kept.
func (s *Syncer) CompleteQuest(ctx context.Context, id int) (CompleteResult, error) {
	release, err := s.begin()
	if err != nil {
		return CompleteResult{}, err
	}
	defer release()

	s.mu.Lock()
	idx := s.state.questIndex(id)
	if idx < 0 || s.state.Quests[idx].IsCompleted() {
		s.mu.Unlock()
		return CompleteResult{}, nil
	}
	now := s.now()
	q := &s.state.Quests[idx]
	q.Complete()
	levels := s.state.Character.GainExp(q.RewardExp)
	msg := engine.NewChatMessage(fmt.Sprintf("🎉 Completed: %s (+%d EXP)", q.Title, q.RewardExp), engine.MessageAchievement, now)
	msg.ID = len(s.state.Chat) + 1
	s.state.Chat = append(s.state.Chat, msg)

	res := CompleteResult{
		Quest:        *q,
		Character:    s.state.clone().Character,
		Message:      msg,
		LevelsGained: levels,
		Changed:      true,
	}
	connected := s.state.Conn == ConnConnected
	s.mu.Unlock()

	s.logger.Info("quest completed", "id", id, "exp", res.Quest.RewardExp, "level", res.Character.Level, "levels_gained", levels)
	if !connected || s.store == nil {
		return res, nil
	}

	var errs []error
	line := res.Quest.Line
	if line == 0 {
		line = res.Quest.ID
	}
	if err := s.writeRows(ctx, "quest", sheets.QuestRowRange(line), [][]string{mapper.QuestRow(res.Quest)}); err != nil {
		errs = append(errs, err)
	}
	if err := s.writeRows(ctx, "character", sheets.RangeCharacterBlock, mapper.CharacterRows(res.Character)); err != nil {
		errs = append(errs, err)
	}
	if err := s.appendRow(ctx, "chat", sheets.RangeChatAppend, mapper.ChatRow(msg)); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		s.notifyError(sheets.UserMessage(err))
		return res, err
	}
	res.Pushed = true
	s.notifySuccess(fmt.Sprintf("Quest completed! +%d EXP", res.Quest.RewardExp))
	return res, nil
}

// AddResourceDetail records a new detail under resource and appends it to
// the remote store when connected.
func (s *Syncer) AddResourceDetail(ctx context.Context, resource string, d engine.ResourceDetail) (engine.ResourceDetail, error) {
	d = d.Normalize(s.now())
	if d.Name == "" || d.Amount <= 0 {
		return engine.ResourceDetail{}, ErrInvalidDetail
	}
	release, err := s.begin()
	if err != nil {
		return engine.ResourceDetail{}, err
	}
	defer release()

	s.mu.Lock()
	name, ok := s.resourceName(resource)
	if !ok {
		s.mu.Unlock()
		return engine.ResourceDetail{}, fmt.Errorf("%w: %q", ErrUnknownResource, resource)
	}
	d.ID = s.state.Details.Count() + 1
	s.state.Details[name] = append(s.state.Details[name], d)
	connected := s.state.Conn == ConnConnected
	s.mu.Unlock()

	s.logger.Info("resource detail added", "resource", name, "name", d.Name, "amount", d.Amount, "type", d.Type)
	if !connected || s.store == nil {
		return d, nil
	}
	if err := s.appendRow(ctx, "resource detail", sheets.RangeResourceDetailsAppend, mapper.ResourceDetailRow(name, d)); err != nil {
		s.notifyError(sheets.UserMessage(err))
		return d, err
	}
	s.notifySuccess("Resource detail added.")
	return d, nil
}

// resourceName resolves a resource name case-insensitively. Callers hold mu.
func (s *Syncer) resourceName(name string) (string, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, r := range s.state.Resources {
		if strings.ToLower(r.Name) == want {
			return r.Name, true
		}
	}
	// Details may belong to a group the sheet knows but the seeds do not.
	if n, _, ok := s.state.Details.Lookup(name); ok {
		return n, true
	}
	return "", false
}

// AddChatMessage appends a note, reminder or achievement message.
func (s *Syncer) AddChatMessage(ctx context.Context, text string, typ engine.MessageType) (engine.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return engine.ChatMessage{}, ErrEmptyMessage
	}
	release, err := s.begin()
	if err != nil {
		return engine.ChatMessage{}, err
	}
	defer release()

	s.mu.Lock()
	msg := engine.NewChatMessage(text, typ, s.now())
	msg.ID = len(s.state.Chat) + 1
	s.state.Chat = append(s.state.Chat, msg)
	connected := s.state.Conn == ConnConnected
	s.mu.Unlock()

	if !connected || s.store == nil {
		return msg, nil
	}
	if err := s.appendRow(ctx, "chat", sheets.RangeChatAppend, mapper.ChatRow(msg)); err != nil {
		s.notifyError(sheets.UserMessage(err))
		return msg, err
	}
	return msg, nil
}

// UpdateCharacter applies the present keys of f and rewrites the whole
// character block.
func (s *Syncer) UpdateCharacter(ctx context.Context, f engine.Fields) (engine.Character, error) {
	release, err := s.begin()
	if err != nil {
		return engine.Character{}, err
	}
	defer release()

	s.mu.Lock()
	s.state.Character.UpdateFromFields(f)
	c := s.state.clone().Character
	connected := s.state.Conn == ConnConnected
	s.mu.Unlock()

	if !connected || s.store == nil {
		return c, nil
	}
	if err := s.writeRows(ctx, "character", sheets.RangeCharacterBlock, mapper.CharacterRows(c)); err != nil {
		s.notifyError(sheets.UserMessage(err))
		return c, err
	}
	s.notifySuccess("Character saved.")
	return c, nil
}

func (s *Syncer) writeRows(ctx context.Context, entity, rng string, rows [][]string) error {
	err := s.call(ctx, func(ctx context.Context) error {
		return s.store.Write(ctx, rng, rows)
	})
	if err != nil {
		s.logger.Warn("push failed", "entity", entity, "range", rng, "error", err)
		return PushError{Entity: entity, Range: rng, Err: err}
	}
	return nil
}

func (s *Syncer) appendRow(ctx context.Context, entity, rng string, row []string) error {
	err := s.call(ctx, func(ctx context.Context) error {
		return s.store.Append(ctx, rng, row)
	})
	if err != nil {
		s.logger.Warn("push failed", "entity", entity, "range", rng, "error", err)
		return PushError{Entity: entity, Range: rng, Err: err}
	}
	return nil
}
