package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelup/internal/engine"
)

var fixedNow = time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)

func TestReadQuestsSkipsBlankRows(t *testing.T) {
	rows := [][]string{
		{"Q1", "d", "WILL", "3", "", "10", "", "todo", "gen", "high"},
		{},
		{"Q2", "d2", "PHY", "1", "", "5", "", "todo", "gen", "low"},
	}
	quests := ReadQuests(rows)
	require.Len(t, quests, 2)
	assert.Equal(t, 1, quests[0].ID)
	assert.Equal(t, "Q1", quests[0].Title)
	assert.Equal(t, 3, quests[0].Difficulty)
	assert.Equal(t, engine.PriorityHigh, quests[0].Priority)
	assert.Equal(t, 1, quests[0].Line)
	assert.Equal(t, 2, quests[1].ID)
	assert.Equal(t, 3, quests[1].Line, "line counts the blank row")
	assert.Equal(t, engine.StatPhy, quests[1].RequiredStat)
	assert.Equal(t, engine.PriorityLow, quests[1].Priority)
}

func TestReadQuestsMalformedCells(t *testing.T) {
	rows := [][]string{
		{"Broken", "", "LUCK", "eleven", "", "lots", "", "finished", "", "asap"},
		{"Short"},
		{"   "},
		{"Huge", "", "men", "99", "", "1000000"},
	}
	quests := ReadQuests(rows)
	require.Len(t, quests, 3)
	for _, q := range quests {
		assert.True(t, q.RequiredStat.IsValid(), q.Title)
		assert.GreaterOrEqual(t, q.Difficulty, engine.MinDifficulty)
		assert.LessOrEqual(t, q.Difficulty, engine.MaxDifficulty)
		assert.GreaterOrEqual(t, q.RewardExp, 0)
		assert.Contains(t, []engine.QuestStatus{engine.QuestTodo, engine.QuestInProgress, engine.QuestCompleted}, q.Status)
		assert.Contains(t, []engine.Priority{engine.PriorityHigh, engine.PriorityMedium, engine.PriorityLow}, q.Priority)
	}
	assert.Equal(t, engine.QuestTodo, quests[0].Status)
	assert.Equal(t, engine.StatWill, quests[1].RequiredStat)
	assert.Equal(t, engine.StatMen, quests[2].RequiredStat)
	assert.Equal(t, engine.MaxDifficulty, quests[2].Difficulty)
	assert.Equal(t, engine.MaxRewardExp, quests[2].RewardExp)
}

func TestQuestRoundTrip(t *testing.T) {
	q := engine.Quest{
		ID:           9,
		Title:        "Morning run",
		Description:  "5km before work",
		RequiredStat: engine.StatPhy,
		Difficulty:   4,
		Deadline:     "31/12/2024",
		RewardExp:    80,
		RewardStat:   "PHY",
		Status:       engine.QuestInProgress,
		Category:     "health",
		Priority:     engine.PriorityHigh,
	}
	got := ReadQuests([][]string{QuestRow(q)})
	require.Len(t, got, 1)
	q.ID = got[0].ID
	q.Line = 1
	assert.Equal(t, q, got[0])
}

func TestReadAchievements(t *testing.T) {
	rows := [][]string{
		{"First quest", "Finish one quest", "", "gold", "TRUE", "01/01/2024", "100", "1 quest", "quests"},
		{"", "ignored"},
		{"Marathon", "", "🏃", "diamond", "no", "", "250"},
	}
	got := ReadAchievements(rows)
	require.Len(t, got, 2)
	assert.Equal(t, engine.TierGold, got[0].Tier)
	assert.True(t, got[0].Unlocked)
	assert.Equal(t, engine.DefaultAchievementIcon, got[0].Icon)
	assert.Equal(t, 2, got[1].ID)
	assert.Equal(t, engine.TierBronze, got[1].Tier)
	assert.False(t, got[1].Unlocked)
	assert.Equal(t, 100, got[1].Progress)
	assert.Equal(t, engine.DefaultCategory, got[1].Category)
}

func TestAchievementRoundTrip(t *testing.T) {
	a := engine.Achievement{Title: "x", Icon: "🔥", Tier: engine.TierSilver, Unlocked: true, Progress: 40, Category: "special"}
	got := ReadAchievements([][]string{AchievementRow(a)})
	require.Len(t, got, 1)
	a.ID = 1
	assert.Equal(t, a, got[0])
}

func TestReadCharacter(t *testing.T) {
	rows := [][]string{
		{"key", "value"},
		{"name", "Minh"},
		{"birthYear", "1995"},
		{"expToNext", "300"},
		{"level"},
		{"favourite", "blue"},
		{"stats", `{"WILL": 20}`},
	}
	f, ok := ReadCharacter(rows)
	require.True(t, ok)
	assert.Equal(t, engine.Fields{"name": "Minh", "birth_year": "1995", "exp_to_next": "300", "stats": `{"WILL": 20}`}, f)

	c := engine.NewCharacter()
	c.Level = 4
	c.UpdateFromFields(f)
	assert.Equal(t, "Minh", c.Name)
	assert.Equal(t, 4, c.Level)
	assert.Equal(t, 300, c.ExpToNext)
	require.NotNil(t, c.BirthYear)
	assert.Equal(t, 1995, *c.BirthYear)
	assert.Equal(t, 20, c.Stats[engine.StatWill])
	assert.Equal(t, 10, c.Stats[engine.StatExe])

	_, ok = ReadCharacter(nil)
	assert.False(t, ok)
}

func TestCharacterRoundTrip(t *testing.T) {
	year := 1988
	c := engine.NewCharacter()
	c.Name, c.Avatar, c.BirthYear = "An", "https://example.com/a.png", &year
	c.Level, c.Exp, c.ExpToNext = 3, 250, 300
	c.Stats[engine.StatAwr] = 17

	f, ok := ReadCharacter(CharacterRows(c))
	require.True(t, ok)
	assert.Equal(t, c, engine.CharacterFromFields(f))

	c.BirthYear = nil
	rows := CharacterRows(c)
	assert.Equal(t, []string{"birthYear", ""}, rows[2])
	f, _ = ReadCharacter(rows)
	assert.Nil(t, engine.CharacterFromFields(f).BirthYear)
}

func TestReadResourceDetailsGlobalIDs(t *testing.T) {
	rows := [][]string{
		{"Finance", "Salary", "1500.5", "income", "", "01/05/2024", "active"},
		{"Social", "Gift fund", "200", "asset"},
		{""},
		{"Finance", "Car loan", "900", "loan", "bank", "02/05/2024", "inactive"},
		{"Finance", "Bad", "-12", "bitcoin", "", "", "sleeping"},
	}
	book := ReadResourceDetails(rows, fixedNow)
	require.Len(t, book["Finance"], 3)
	require.Len(t, book["Social"], 1)

	assert.Equal(t, 1, book["Finance"][0].ID)
	assert.Equal(t, 2, book["Social"][0].ID)
	assert.Equal(t, 3, book["Finance"][1].ID)
	assert.Equal(t, 4, book["Finance"][2].ID)

	assert.Equal(t, 1500.5, book["Finance"][0].Amount)
	assert.Equal(t, "20/05/2024", book["Social"][0].Date)
	assert.Equal(t, engine.DetailActive, book["Social"][0].Status)

	bad := book["Finance"][2]
	assert.Equal(t, 0.0, bad.Amount)
	assert.Equal(t, engine.DetailAsset, bad.Type)
	assert.Equal(t, engine.DetailActive, bad.Status)

	assert.Equal(t, []string{"Finance", "Social"}, book.Names())
	assert.Equal(t, 4, book.Count())
}

func TestResourceDetailRoundTrip(t *testing.T) {
	d := engine.ResourceDetail{Name: "Fund", Amount: 2500000, Type: engine.DetailInvestment, Notes: "index", Date: "03/04/2024", Status: engine.DetailActive}
	book := ReadResourceDetails([][]string{ResourceDetailRow("Finance", d)}, fixedNow)
	require.Len(t, book["Finance"], 1)
	d.ID = 1
	assert.Equal(t, d, book["Finance"][0])
	assert.Equal(t, "2500000", ResourceDetailRow("Finance", d)[2])
}

func TestReadChatSortsAndDefaults(t *testing.T) {
	rows := [][]string{
		{"later", "18:00", "reminder", "21/05/2024", "user"},
		{"earlier", "08:15", "shout", "20/05/2024"},
		{},
	}
	msgs := ReadChat(rows)
	require.Len(t, msgs, 2)
	assert.Equal(t, "earlier", msgs[0].Text)
	assert.Equal(t, 2, msgs[0].ID)
	assert.Equal(t, engine.MessageNote, msgs[0].Type)
	assert.Equal(t, engine.DefaultAuthor, msgs[0].Author)
	assert.Equal(t, engine.MessageReminder, msgs[1].Type)
}

func TestChatRoundTrip(t *testing.T) {
	m := engine.NewChatMessage("hello", engine.MessageAchievement, fixedNow)
	msgs := ReadChat([][]string{ChatRow(m)})
	require.Len(t, msgs, 1)
	m.ID = 1
	assert.Equal(t, m, msgs[0])
}

func TestReadGoals(t *testing.T) {
	rows := [][]string{
		{"category", "title", "progress", "deadline", "category2"},
		{"mission", "Live deliberately"},
		{"yearly", "Read 24 books", "40", "31/12/2024", "learning"},
		{"quarterly", "Ship side project", "120"},
		{"monthly", ""},
		{"weekly", "Ignored"},
		{"monthly", "Run 50km", "abc", "", ""},
	}
	goals, ok := ReadGoals(rows)
	require.True(t, ok)
	assert.Equal(t, "Live deliberately", goals.Mission)
	require.Len(t, goals.Yearly, 1)
	assert.Equal(t, engine.Goal{Title: "Read 24 books", Progress: 40, Deadline: "31/12/2024", Category: "learning"}, goals.Yearly[0])
	require.Len(t, goals.Quarterly, 1)
	assert.Equal(t, 100, goals.Quarterly[0].Progress)
	require.Len(t, goals.Monthly, 1)
	assert.Equal(t, 0, goals.Monthly[0].Progress)
	assert.Equal(t, engine.DefaultCategory, goals.Monthly[0].Category)

	again, ok := ReadGoals(GoalRows(goals))
	require.True(t, ok)
	assert.Equal(t, goals, again)

	_, ok = ReadGoals(nil)
	assert.False(t, ok)
}

func TestApplyResources(t *testing.T) {
	resources := engine.DefaultResources()
	updates := ReadResources([][]string{
		{"Finance", "4", "55", "Emergency fund", "2"},
		{"Unknown", "2", "10"},
		{"", "9"},
		{"Exploration", "x", "-5"},
	})
	require.Len(t, updates, 3)

	n := ApplyResources(resources, updates)
	assert.Equal(t, 2, n)

	assert.Equal(t, 4, resources[1].Level)
	assert.Equal(t, 55, resources[1].Progress)
	assert.Equal(t, "Emergency fund", resources[1].NextMilestone)
	assert.Equal(t, 2, resources[1].RelatedQuests)

	// "Unknown" falls back to position 1, already claimed by Finance.
	assert.Equal(t, 1, resources[0].Level)

	assert.Equal(t, 1, resources[3].Level)
	assert.Equal(t, 0, resources[3].Progress)
	assert.Equal(t, "Exploration", resources[3].Name)
}

func TestResourceRoundTrip(t *testing.T) {
	r := engine.DefaultResources()[2]
	r.Level, r.Progress, r.NextMilestone, r.RelatedQuests = 2, 75, "Publish", 4
	resources := engine.DefaultResources()
	ApplyResources(resources, ReadResources([][]string{ResourceRow(r)}))
	assert.Equal(t, r, resources[2])
}
