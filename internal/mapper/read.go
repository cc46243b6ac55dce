package mapper

import (
	"strings"
	"time"

	"levelup/internal/engine"
)

// ReadQuests numbers quests by surviving row and remembers each quest's
// line in the range so write-back lands on the row it came from.
func ReadQuests(rows [][]string) []engine.Quest {
	out := []engine.Quest{}
	positional(rows, QuestColumns, func(id, line int, f engine.Fields) {
		q := engine.QuestFromFields(f)
		q.ID = id
		q.Line = line
		out = append(out, q)
	})
	return out
}

func ReadAchievements(rows [][]string) []engine.Achievement {
	out := []engine.Achievement{}
	positional(rows, AchievementColumns, func(id, _ int, f engine.Fields) {
		a := engine.AchievementFromFields(f)
		a.ID = id
		out = append(out, a)
	})
	return out
}

// ResourceUpdate carries one Resources row for an in-place update.
type ResourceUpdate struct {
	Name   string
	Fields engine.Fields
}

func ReadResources(rows [][]string) []ResourceUpdate {
	var out []ResourceUpdate
	positional(rows, ResourceColumns, func(_, _ int, f engine.Fields) {
		name := f["name"]
		delete(f, "name")
		out = append(out, ResourceUpdate{Name: name, Fields: f})
	})
	return out
}

// ApplyResources updates the seeded resources in place. A row is matched
// by name first and by position otherwise; unmatched rows are dropped.
// It returns how many resources were updated.
func ApplyResources(resources []engine.Resource, updates []ResourceUpdate) int {
	applied := 0
	used := make([]bool, len(resources))
	for i, u := range updates {
		idx := -1
		want := strings.ToLower(strings.TrimSpace(u.Name))
		for j := range resources {
			if !used[j] && strings.ToLower(resources[j].Name) == want {
				idx = j
				break
			}
		}
		if idx < 0 && i < len(resources) && !used[i] {
			idx = i
		}
		if idx < 0 {
			continue
		}
		used[idx] = true
		resources[idx].UpdateFromFields(u.Fields)
		applied++
	}
	return applied
}

// ReadResourceDetails groups rows by their first cell. Ids count surviving
// rows across the whole range, not per group.
func ReadResourceDetails(rows [][]string, now time.Time) engine.DetailBook {
	book := engine.DetailBook{}
	positional(rows, ResourceDetailColumns, func(id, _ int, f engine.Fields) {
		owner := f["resource_name"]
		d := engine.ResourceDetailFromFields(f, now)
		d.ID = id
		book[owner] = append(book[owner], d)
	})
	return book
}

// ReadChat returns messages ordered by date and time.
func ReadChat(rows [][]string) []engine.ChatMessage {
	out := []engine.ChatMessage{}
	positional(rows, ChatColumns, func(id, _ int, f engine.Fields) {
		m := engine.ChatMessageFromFields(f)
		m.ID = id
		out = append(out, m)
	})
	engine.SortChat(out)
	return out
}

// ReadCharacter collects the recognized key/value rows. It reports false
// when the range held no rows at all.
func ReadCharacter(rows [][]string) (engine.Fields, bool) {
	if len(rows) == 0 {
		return nil, false
	}
	f := engine.Fields{}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		key, ok := characterKeys[strings.TrimSpace(row[0])]
		if !ok {
			continue
		}
		f[key] = row[1]
	}
	return f, true
}

// ReadGoals groups goal rows by horizon. It reports false when the range
// held no rows at all.
func ReadGoals(rows [][]string) (engine.Goals, bool) {
	goals := engine.NewGoals()
	if len(rows) == 0 {
		return goals, false
	}
	for _, row := range rows {
		if len(row) < 2 || strings.TrimSpace(row[1]) == "" {
			continue
		}
		f := rowFields(row, GoalColumns)
		horizon := engine.GoalHorizon(strings.TrimSpace(f["horizon"]))
		if horizon == engine.GoalMission {
			goals.Mission = f["title"]
			continue
		}
		goals.Add(horizon, engine.GoalFromFields(f))
	}
	return goals, true
}
