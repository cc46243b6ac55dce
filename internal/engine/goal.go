package engine

type GoalHorizon string

const (
	GoalMission   GoalHorizon = "mission"
	GoalYearly    GoalHorizon = "yearly"
	GoalQuarterly GoalHorizon = "quarterly"
	GoalMonthly   GoalHorizon = "monthly"
)

type Goal struct {
	Title    string `json:"title" yaml:"title"`
	Progress int    `json:"progress" yaml:"progress"`
	Deadline string `json:"deadline" yaml:"deadline"`
	Category string `json:"category" yaml:"category"`
}

func GoalFromFields(f Fields) Goal {
	return Goal{
		Title:    stringField(f, "title", ""),
		Progress: Clamp(intField(f, "progress", 0), 0, 100),
		Deadline: stringField(f, "deadline", ""),
		Category: textField(f, "category", DefaultCategory),
	}
}

// Goals holds the mission statement and the goal lists per horizon.
type Goals struct {
	Mission   string `json:"mission" yaml:"mission"`
	Yearly    []Goal `json:"yearly" yaml:"yearly"`
	Quarterly []Goal `json:"quarterly" yaml:"quarterly"`
	Monthly   []Goal `json:"monthly" yaml:"monthly"`
}

func NewGoals() Goals {
	return Goals{Yearly: []Goal{}, Quarterly: []Goal{}, Monthly: []Goal{}}
}

// Add files g under horizon. It reports false for mission or unknown horizons.
func (g *Goals) Add(h GoalHorizon, goal Goal) bool {
	switch h {
	case GoalYearly:
		g.Yearly = append(g.Yearly, goal)
	case GoalQuarterly:
		g.Quarterly = append(g.Quarterly, goal)
	case GoalMonthly:
		g.Monthly = append(g.Monthly, goal)
	default:
		return false
	}
	return true
}

func (g Goals) IsEmpty() bool {
	return g.Mission == "" && len(g.Yearly) == 0 && len(g.Quarterly) == 0 && len(g.Monthly) == 0
}
