package engine

import "strings"

const (
	MinDifficulty = 1
	MaxDifficulty = 5
	MaxRewardExp  = 9999

	DefaultCategory = "general"
)

type Quest struct {
	ID           int         `json:"id" yaml:"id"`
	Title        string      `json:"title" yaml:"title"`
	Description  string      `json:"description" yaml:"description"`
	RequiredStat StatAxis    `json:"required_stat" yaml:"required_stat"`
	Difficulty   int         `json:"difficulty" yaml:"difficulty"`
	Deadline     string      `json:"deadline" yaml:"deadline"`
	RewardExp    int         `json:"reward_exp" yaml:"reward_exp"`
	RewardStat   string      `json:"reward_stat" yaml:"reward_stat"`
	Status       QuestStatus `json:"status" yaml:"status"`
	Category     string      `json:"category" yaml:"category"`
	Priority     Priority    `json:"priority" yaml:"priority"`

	// Line is the 1-based row within the quest range the quest was read
	// from; zero when unknown.
	Line int `json:"-" yaml:"-"`
}

func NewQuest() Quest {
	return Quest{
		RequiredStat: DefaultStat,
		Difficulty:   MinDifficulty,
		Status:       QuestTodo,
		Category:     DefaultCategory,
		Priority:     PriorityMedium,
	}
}

// QuestFromFields coerces f into a quest. Out-of-range values are clamped
// and unknown enum values fall back to defaults.
func QuestFromFields(f Fields) Quest {
	q := NewQuest()
	q.ID = intField(f, "id", 0)
	q.Title = stringField(f, "title", "")
	q.Description = stringField(f, "description", "")
	q.RequiredStat = OneOf(strings.ToUpper(stringField(f, "required_stat", "")), StatAxes, DefaultStat)
	q.Difficulty = Clamp(intField(f, "difficulty", MinDifficulty), MinDifficulty, MaxDifficulty)
	q.Deadline = stringField(f, "deadline", "")
	q.RewardExp = Clamp(intField(f, "reward_exp", 0), 0, MaxRewardExp)
	q.RewardStat = stringField(f, "reward_stat", "")
	q.Status = OneOf(stringField(f, "status", ""), questStatuses, QuestTodo)
	q.Category = textField(f, "category", DefaultCategory)
	q.Priority = OneOf(stringField(f, "priority", ""), priorities, PriorityMedium)
	return q
}

func (q Quest) IsCompleted() bool    { return q.Status == QuestCompleted }
func (q Quest) IsHighPriority() bool { return q.Priority == PriorityHigh }

// Complete marks the quest completed. It reports false when the quest was
// already completed; completion cannot be undone.
func (q *Quest) Complete() bool {
	if q.IsCompleted() {
		return false
	}
	q.Status = QuestCompleted
	return true
}

func (q Quest) DifficultyStars() string {
	return strings.Repeat("⭐", Clamp(q.Difficulty, MinDifficulty, MaxDifficulty))
}

type priorityStyle struct {
	color string
	icon  string
	label string
}

var priorityStyles = map[Priority]priorityStyle{
	PriorityHigh:   {color: "#EF4444", icon: "🔴", label: "High"},
	PriorityMedium: {color: "#F59E0B", icon: "🟡", label: "Medium"},
	PriorityLow:    {color: "#6B7280", icon: "⚪", label: "Low"},
}

func (q Quest) PriorityColor() string {
	if s, ok := priorityStyles[q.Priority]; ok {
		return s.color
	}
	return "#6B7280"
}

func (q Quest) PriorityIcon() string {
	if s, ok := priorityStyles[q.Priority]; ok {
		return s.icon
	}
	return "⚪"
}

func (q Quest) PriorityLabel() string {
	if s, ok := priorityStyles[q.Priority]; ok {
		return s.label
	}
	return string(q.Priority)
}

var statusColors = map[QuestStatus]string{
	QuestCompleted:  "#22C55E",
	QuestInProgress: "#3B82F6",
	QuestTodo:       "#6B7280",
}

func (q Quest) StatusColor() string {
	if c, ok := statusColors[q.Status]; ok {
		return c
	}
	return "#6B7280"
}
