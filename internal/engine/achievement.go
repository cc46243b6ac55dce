package engine

const DefaultAchievementIcon = "🏆"

type Achievement struct {
	ID           int    `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Description  string `json:"description" yaml:"description"`
	Icon         string `json:"icon" yaml:"icon"`
	Tier         Tier   `json:"tier" yaml:"tier"`
	Unlocked     bool   `json:"unlocked" yaml:"unlocked"`
	UnlockedDate string `json:"unlocked_date" yaml:"unlocked_date"`
	Progress     int    `json:"progress" yaml:"progress"`
	Condition    string `json:"condition" yaml:"condition"`
	Category     string `json:"category" yaml:"category"`
}

func NewAchievement() Achievement {
	return Achievement{
		Icon:     DefaultAchievementIcon,
		Tier:     TierBronze,
		Category: DefaultCategory,
	}
}

func AchievementFromFields(f Fields) Achievement {
	a := NewAchievement()
	a.ID = intField(f, "id", 0)
	a.Title = stringField(f, "title", "")
	a.Description = stringField(f, "description", "")
	a.Icon = textField(f, "icon", DefaultAchievementIcon)
	a.Tier = OneOf(stringField(f, "tier", ""), tiers, TierBronze)
	a.Unlocked = ParseBool(stringField(f, "unlocked", ""), false)
	a.UnlockedDate = stringField(f, "unlocked_date", "")
	a.Progress = Clamp(intField(f, "progress", 0), 0, 100)
	a.Condition = stringField(f, "condition", "")
	a.Category = textField(f, "category", DefaultCategory)
	return a
}

type tierStyle struct {
	color string
	emoji string
	label string
}

var tierStyles = map[Tier]tierStyle{
	TierBronze:    {color: "#D97706", emoji: "🥉", label: "Bronze"},
	TierSilver:    {color: "#6B7280", emoji: "🥈", label: "Silver"},
	TierGold:      {color: "#F59E0B", emoji: "🥇", label: "Gold"},
	TierLegendary: {color: "#8B5CF6", emoji: "👑", label: "Legendary"},
}

func (a Achievement) TierColor() string {
	if s, ok := tierStyles[a.Tier]; ok {
		return s.color
	}
	return "#6B7280"
}

func (a Achievement) TierEmoji() string {
	if s, ok := tierStyles[a.Tier]; ok {
		return s.emoji
	}
	return DefaultAchievementIcon
}

func (a Achievement) TierLabel() string {
	if s, ok := tierStyles[a.Tier]; ok {
		return s.label
	}
	return string(a.Tier)
}
