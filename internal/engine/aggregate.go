package engine

// ResourceTotal is the signed sum of active detail amounts.
func ResourceTotal(details []ResourceDetail) float64 {
	total := 0.0
	for _, d := range details {
		if d.IsActive() {
			total += d.Contribution()
		}
	}
	return total
}

// NetWorth sums ResourceTotal over every resource group.
func NetWorth(book DetailBook) float64 {
	total := 0.0
	for _, ds := range book {
		total += ResourceTotal(ds)
	}
	return total
}

func CompletedQuestCount(quests []Quest) int {
	n := 0
	for _, q := range quests {
		if q.IsCompleted() {
			n++
		}
	}
	return n
}

func UnlockedAchievementCount(achievements []Achievement) int {
	n := 0
	for _, a := range achievements {
		if a.Unlocked {
			n++
		}
	}
	return n
}

// QuestCompletionRate is completed/total*100, or 0 with no quests.
func QuestCompletionRate(quests []Quest) float64 {
	if len(quests) == 0 {
		return 0
	}
	return float64(CompletedQuestCount(quests)) / float64(len(quests)) * 100
}

// AchievementUnlockRate is unlocked/total*100, or 0 with no achievements.
func AchievementUnlockRate(achievements []Achievement) float64 {
	if len(achievements) == 0 {
		return 0
	}
	return float64(UnlockedAchievementCount(achievements)) / float64(len(achievements)) * 100
}

// HighPriorityQuests returns high-priority quests that are not completed yet.
func HighPriorityQuests(quests []Quest) []Quest {
	var out []Quest
	for _, q := range quests {
		if q.IsHighPriority() && !q.IsCompleted() {
			out = append(out, q)
		}
	}
	return out
}
