package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelup/internal/engine"
	"levelup/internal/syncer"
)

func sampleState() syncer.State {
	st := syncer.NewState()
	year := 1990
	st.Character.Name = "Thu"
	st.Character.BirthYear = &year
	st.Character.Stats[engine.StatExe] = 25
	st.Quests = []engine.Quest{
		{ID: 1, Title: "Run", RequiredStat: engine.StatPhy, Difficulty: 2, RewardExp: 20, Status: engine.QuestCompleted, Category: "health", Priority: engine.PriorityHigh},
		{ID: 2, Title: "Read", RequiredStat: engine.StatMen, Difficulty: 1, RewardExp: 10, Status: engine.QuestTodo, Category: "mind", Priority: engine.PriorityLow},
	}
	st.Details = engine.DetailBook{
		"Finance": {{ID: 1, Name: "Savings", Amount: 5000, Type: engine.DetailAsset, Date: "01/01/2024", Status: engine.DetailActive}},
	}
	st.Goals.Mission = "Be kind"
	st.LastSync = time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	return *st
}

func TestWriteReadYAML(t *testing.T) {
	now := time.Date(2024, 2, 4, 0, 0, 0, 0, time.UTC)
	snap := NewSnapshot(sampleState(), now)
	assert.Equal(t, 5000.0, snap.Summary.NetWorth)
	assert.Equal(t, 50.0, snap.Summary.QuestCompletion)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snap, "yaml"))
	assert.Contains(t, buf.String(), "name: Thu")
	assert.Contains(t, buf.String(), "mission: Be kind")

	got, err := Read(&buf, "yaml")
	require.NoError(t, err)
	assert.Equal(t, snap.Character, got.Character)
	assert.Equal(t, snap.Quests, got.Quests)
	assert.Equal(t, snap.ResourceDetails, got.ResourceDetails)
	assert.Equal(t, snap.Summary, got.Summary)
	require.NotNil(t, got.LastSync)
	assert.True(t, snap.LastSync.Equal(*got.LastSync))
}

func TestWriteReadJSON(t *testing.T) {
	snap := NewSnapshot(sampleState(), time.Now())
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snap, "JSON"))
	assert.Contains(t, buf.String(), `"birth_year": 1990`)

	got, err := Read(&buf, "json")
	require.NoError(t, err)
	assert.Equal(t, snap.Character, got.Character)
	assert.Equal(t, snap.Goals.Mission, got.Goals.Mission)
}

func TestUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, Write(&buf, Snapshot{}, "xml"))
	_, err := Read(&buf, "toml")
	require.Error(t, err)
}

func TestNeverSyncedOmitsLastSync(t *testing.T) {
	st := *syncer.NewState()
	snap := NewSnapshot(st, time.Now())
	assert.Nil(t, snap.LastSync)
}
