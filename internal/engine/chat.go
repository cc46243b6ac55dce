package engine

import (
	"sort"
	"time"
)

const DefaultAuthor = "user"

type ChatMessage struct {
	ID        int         `json:"id" yaml:"id"`
	Text      string      `json:"text" yaml:"text"`
	Timestamp string      `json:"timestamp" yaml:"timestamp"`
	Type      MessageType `json:"type" yaml:"type"`
	Date      string      `json:"date" yaml:"date"`
	Author    string      `json:"author" yaml:"author"`
}

// NewChatMessage stamps a message with the date and time of now.
func NewChatMessage(text string, typ MessageType, now time.Time) ChatMessage {
	return ChatMessage{
		Text:      text,
		Timestamp: now.Format(TimeLayout),
		Type:      OneOf(string(typ), messageTypes, MessageNote),
		Date:      now.Format(DateLayout),
		Author:    DefaultAuthor,
	}
}

func ChatMessageFromFields(f Fields) ChatMessage {
	return ChatMessage{
		ID:        intField(f, "id", 0),
		Text:      stringField(f, "text", ""),
		Timestamp: stringField(f, "timestamp", ""),
		Type:      OneOf(stringField(f, "type", ""), messageTypes, MessageNote),
		Date:      stringField(f, "date", ""),
		Author:    textField(f, "author", DefaultAuthor),
	}
}

var messageIcons = map[MessageType]string{
	MessageNote:        "💭",
	MessageReminder:    "⏰",
	MessageAchievement: "🎉",
}

func (m ChatMessage) TypeIcon() string {
	if icon, ok := messageIcons[m.Type]; ok {
		return icon
	}
	return messageIcons[MessageNote]
}

func (m ChatMessage) FormattedDateTime() string {
	return m.Date + " " + m.Timestamp
}

// SortChat orders messages by (date, timestamp) ascending. Dates in the
// sheet layout are compared chronologically; anything unparseable falls
// back to plain string order.
func SortChat(msgs []ChatMessage) {
	sort.SliceStable(msgs, func(i, j int) bool {
		a, b := msgs[i], msgs[j]
		da, errA := time.Parse(DateLayout, a.Date)
		db, errB := time.Parse(DateLayout, b.Date)
		if errA == nil && errB == nil {
			if !da.Equal(db) {
				return da.Before(db)
			}
		} else if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Timestamp < b.Timestamp
	})
}
