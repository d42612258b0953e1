package progression

import (
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/quiz"
)

// Milestones is the post-update snapshot the threshold predicates run
// against. The caller filters already-held ids, so predicates can stay
// simple >= checks.
type Milestones struct {
	Difficulty     quiz.Difficulty
	Streak         int
	Combo          int
	Level          int
	Coins          int
	TotalScore     int
	GameScore      int
	Wave           int
	TimerRemaining int
	RocketsOwned   int
}

// speedDemonMin is the countdown value a hard-mode answer must beat.
// Evaluated before the timer resets for the next question.
const speedDemonMin = 5

// qualifying returns every achievement id whose predicate holds for m.
func qualifying(m Milestones) []player.AchievementID {
	var ids []player.AchievementID
	add := func(id player.AchievementID) { ids = append(ids, id) }

	streaks := []struct {
		at int
		id player.AchievementID
	}{
		{10, player.AchStreak10},
		{25, player.AchStreak25},
		{50, player.AchStreak50},
		{100, player.AchStreak100},
	}
	for _, s := range streaks {
		if m.Streak >= s.at {
			add(s.id)
		}
	}

	if m.Combo >= 10 {
		add(player.AchCombo10)
	}
	if m.Combo >= 20 {
		add(player.AchCombo20)
	}

	levels := []struct {
		at int
		id player.AchievementID
	}{
		{5, player.AchLevel5},
		{10, player.AchLevel10},
		{20, player.AchLevel20},
		{50, player.AchLevel50},
	}
	for _, l := range levels {
		if m.Level >= l.at {
			add(l.id)
		}
	}

	scores := []struct {
		at int
		id player.AchievementID
	}{
		{5000, player.AchScore5000},
		{10000, player.AchScore10000},
		{50000, player.AchScore50000},
		{100000, player.AchScore100000},
	}
	for _, s := range scores {
		if m.TotalScore >= s.at {
			add(s.id)
		}
	}

	if m.GameScore >= 5000 {
		add(player.AchGame5000)
	}

	coins := []struct {
		at int
		id player.AchievementID
	}{
		{1000, player.AchCoin1000},
		{2000, player.AchCoin2000},
		{5000, player.AchCoin5000},
	}
	for _, c := range coins {
		if m.Coins >= c.at {
			add(c.id)
		}
	}

	if m.Difficulty == quiz.Survival {
		waves := []struct {
			at int
			id player.AchievementID
		}{
			{5, player.AchWave5},
			{10, player.AchWave10},
			{20, player.AchWave20},
			{30, player.AchWave30},
		}
		for _, w := range waves {
			if m.Wave >= w.at {
				add(w.id)
			}
		}
	}

	if m.Difficulty == quiz.Hard && m.TimerRemaining > speedDemonMin {
		add(player.AchSpeedDemon)
	}

	if m.RocketsOwned >= len(player.Rockets()) {
		add(player.AchCollector)
	}

	return ids
}
