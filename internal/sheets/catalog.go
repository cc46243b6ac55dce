package sheets

import "fmt"

// Read ranges. Character and Goals start at row 1; their header rows are
// skipped by the mapper because the header keys are not recognized.
const (
	RangeCharacter       = "Character!A1:B25"
	RangeQuests          = "Quests!A2:K1000"
	RangeAchievements    = "Achievements!A2:I1000"
	RangeGoals           = "Goals!A1:E100"
	RangeResources       = "Resources!A2:F10"
	RangeResourceDetails = "ResourceDetails!A2:G1000"
	RangeChat            = "Chat!A2:E1000"
)

// Write and append targets.
const (
	RangeCharacterBlock        = "Character!A1:B7"
	RangeResourceDetailsAppend = "ResourceDetails!A:G"
	RangeChatAppend            = "Chat!A:E"
)

// QuestRowRange addresses line n (1-based) of RangeQuests. Row 1 is the
// header, so line n lives on sheet row n+1.
func QuestRowRange(line int) string {
	row := line + 1
	return fmt.Sprintf("Quests!A%d:J%d", row, row)
}

// Tab headers used when seeding an empty workbook.
var Headers = map[string][]string{
	"Character":       {"key", "value"},
	"Quests":          {"title", "description", "required_stat", "difficulty", "deadline", "reward_exp", "reward_stat", "status", "category", "priority"},
	"Achievements":    {"title", "description", "icon", "tier", "unlocked", "unlocked_date", "progress", "condition", "category"},
	"Goals":           {"category", "title", "progress", "deadline", "category2"},
	"Resources":       {"name", "level", "progress", "next_milestone", "related_quests"},
	"ResourceDetails": {"resource_name", "name", "amount", "type", "notes", "date", "status"},
	"Chat":            {"text", "timestamp", "type", "date", "author"},
}
