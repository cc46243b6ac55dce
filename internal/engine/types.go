package engine

// Fields is a loosely-typed record keyed by column or key name.
// It only exists between the row mapper and the entity constructors.
type Fields map[string]string

// Lookup returns the value for key and whether the key is present.
func (f Fields) Lookup(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

type StatAxis string

const (
	StatWill StatAxis = "WILL"
	StatPhy  StatAxis = "PHY"
	StatMen  StatAxis = "MEN"
	StatAwr  StatAxis = "AWR"
	StatExe  StatAxis = "EXE"
)

// StatAxes lists the character axes in display order.
var StatAxes = []StatAxis{StatWill, StatPhy, StatMen, StatAwr, StatExe}

func (a StatAxis) IsValid() bool {
	switch a {
	case StatWill, StatPhy, StatMen, StatAwr, StatExe:
		return true
	default:
		return false
	}
}

// DefaultStat is used for quests whose required stat is missing/invalid.
const DefaultStat StatAxis = StatWill

type StatInfo struct {
	Name        string
	Icon        string
	Color       string
	Description string
}

var statInfo = map[StatAxis]StatInfo{
	StatWill: {Name: "Willpower", Icon: "❤️", Color: "red", Description: "Determination, persistence, overcoming hardship"},
	StatPhy:  {Name: "Physique", Icon: "⚔️", Color: "orange", Description: "Health, fitness, energy"},
	StatMen:  {Name: "Mind", Icon: "🧠", Color: "blue", Description: "Thinking, learning, creativity"},
	StatAwr:  {Name: "Awareness", Icon: "👁️", Color: "purple", Description: "Observation, understanding, sharpness"},
	StatExe:  {Name: "Execution", Icon: "⚡", Color: "yellow", Description: "Action, finishing, efficiency"},
}

// Info returns display metadata for the axis. Unknown axes get a generic entry.
func (a StatAxis) Info() StatInfo {
	if info, ok := statInfo[a]; ok {
		return info
	}
	return StatInfo{Name: string(a), Icon: "•", Color: "gray"}
}

type QuestStatus string

const (
	QuestTodo       QuestStatus = "todo"
	QuestInProgress QuestStatus = "in-progress"
	QuestCompleted  QuestStatus = "completed"
)

var questStatuses = []QuestStatus{QuestTodo, QuestInProgress, QuestCompleted}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

type Tier string

const (
	TierBronze    Tier = "bronze"
	TierSilver    Tier = "silver"
	TierGold      Tier = "gold"
	TierLegendary Tier = "legendary"
)

var tiers = []Tier{TierBronze, TierSilver, TierGold, TierLegendary}

type DetailType string

const (
	DetailAsset      DetailType = "asset"
	DetailLoan       DetailType = "loan"
	DetailInvestment DetailType = "investment"
	DetailIncome     DetailType = "income"
	DetailExpense    DetailType = "expense"
)

// DetailTypes lists the resource detail types in form order.
var DetailTypes = []DetailType{DetailAsset, DetailLoan, DetailInvestment, DetailIncome, DetailExpense}

type DetailStatus string

const (
	DetailActive   DetailStatus = "active"
	DetailInactive DetailStatus = "inactive"
)

var detailStatuses = []DetailStatus{DetailActive, DetailInactive}

type MessageType string

const (
	MessageNote        MessageType = "note"
	MessageReminder    MessageType = "reminder"
	MessageAchievement MessageType = "achievement"
)

var messageTypes = []MessageType{MessageNote, MessageReminder, MessageAchievement}

// ParseMessageType maps user input to a message type, defaulting to note.
func ParseMessageType(s string) MessageType {
	return OneOf(s, messageTypes, MessageNote)
}

// ParseDetailType maps user input to a detail type, defaulting to asset.
func ParseDetailType(s string) DetailType {
	return OneOf(s, DetailTypes, DetailAsset)
}

// Sheet date and time layouts.
const (
	DateLayout = "02/01/2006"
	TimeLayout = "15:04"
)
