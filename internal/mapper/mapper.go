// Package mapper translates between spreadsheet rows and engine entities.
//
// Positional sheets skip rows whose first cell is blank and number the
// surviving rows 1..n; the id is a position, not a stored column.
package mapper

import (
	"strings"

	"levelup/internal/engine"
)

var (
	QuestColumns          = []string{"title", "description", "required_stat", "difficulty", "deadline", "reward_exp", "reward_stat", "status", "category", "priority"}
	AchievementColumns    = []string{"title", "description", "icon", "tier", "unlocked", "unlocked_date", "progress", "condition", "category"}
	ResourceColumns       = []string{"name", "level", "progress", "next_milestone", "related_quests"}
	ResourceDetailColumns = []string{"resource_name", "name", "amount", "type", "notes", "date", "status"}
	ChatColumns           = []string{"text", "timestamp", "type", "date", "author"}
	GoalColumns           = []string{"horizon", "title", "progress", "deadline", "category"}
)

// characterKeys translates the Character sheet's key spelling to field names.
var characterKeys = map[string]string{
	"name":      "name",
	"avatar":    "avatar",
	"birthYear": "birth_year",
	"level":     "level",
	"exp":       "exp",
	"expToNext": "exp_to_next",
	"stats":     "stats",
}

// rowFields names the cells of row by columns. Cells past the end of a
// short row are left out so the entity constructor applies its default.
func rowFields(row []string, columns []string) engine.Fields {
	f := make(engine.Fields, len(columns))
	for i, col := range columns {
		if i < len(row) {
			f[col] = row[i]
		}
	}
	return f
}

func isBlank(row []string) bool {
	return len(row) == 0 || strings.TrimSpace(row[0]) == ""
}

// positional walks the non-blank rows, handing each one its 1-based id
// and its 1-based line within the range, blank rows included.
func positional(rows [][]string, columns []string, fn func(id, line int, f engine.Fields)) {
	id := 0
	for i, row := range rows {
		if isBlank(row) {
			continue
		}
		id++
		fn(id, i+1, rowFields(row, columns))
	}
}
