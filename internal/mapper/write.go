package mapper

import (
	"strconv"

	"levelup/internal/engine"
)

func QuestRow(q engine.Quest) []string {
	return []string{
		q.Title,
		q.Description,
		string(q.RequiredStat),
		strconv.Itoa(q.Difficulty),
		q.Deadline,
		strconv.Itoa(q.RewardExp),
		q.RewardStat,
		string(q.Status),
		q.Category,
		string(q.Priority),
	}
}

func AchievementRow(a engine.Achievement) []string {
	return []string{
		a.Title,
		a.Description,
		a.Icon,
		string(a.Tier),
		strconv.FormatBool(a.Unlocked),
		a.UnlockedDate,
		strconv.Itoa(a.Progress),
		a.Condition,
		a.Category,
	}
}

func ResourceRow(r engine.Resource) []string {
	return []string{
		r.Name,
		strconv.Itoa(r.Level),
		strconv.Itoa(r.Progress),
		r.NextMilestone,
		strconv.Itoa(r.RelatedQuests),
	}
}

func ResourceDetailRow(resource string, d engine.ResourceDetail) []string {
	return []string{
		resource,
		d.Name,
		strconv.FormatFloat(d.Amount, 'f', -1, 64),
		string(d.Type),
		d.Notes,
		d.Date,
		string(d.Status),
	}
}

func ChatRow(m engine.ChatMessage) []string {
	return []string{m.Text, m.Timestamp, string(m.Type), m.Date, m.Author}
}

// CharacterRows renders the key/value block written to the Character tab.
func CharacterRows(c engine.Character) [][]string {
	birth := ""
	if c.BirthYear != nil {
		birth = strconv.Itoa(*c.BirthYear)
	}
	stats := c.Stats
	if stats == nil {
		stats = engine.DefaultStats()
	}
	return [][]string{
		{"name", c.Name},
		{"avatar", c.Avatar},
		{"birthYear", birth},
		{"level", strconv.Itoa(c.Level)},
		{"exp", strconv.Itoa(c.Exp)},
		{"expToNext", strconv.Itoa(c.ExpToNext)},
		{"stats", stats.JSON()},
	}
}

// GoalRows renders the mission and every goal, mission first.
func GoalRows(g engine.Goals) [][]string {
	var rows [][]string
	if g.Mission != "" {
		rows = append(rows, []string{string(engine.GoalMission), g.Mission})
	}
	add := func(h engine.GoalHorizon, goals []engine.Goal) {
		for _, goal := range goals {
			rows = append(rows, []string{string(h), goal.Title, strconv.Itoa(goal.Progress), goal.Deadline, goal.Category})
		}
	}
	add(engine.GoalYearly, g.Yearly)
	add(engine.GoalQuarterly, g.Quarterly)
	add(engine.GoalMonthly, g.Monthly)
	return rows
}
