package daily

import (
	"time"

	"github.com/abhisek/mathquest/internal/player"
)

// coinsPerStreakDay scales the login bonus with the streak length.
const coinsPerStreakDay = 10

// Reward is the outcome of the once-per-day login bonus calculation.
type Reward struct {
	// Streak is the streak after the calculation.
	Streak int

	// Bonus is the coins granted. 0 when already rewarded today.
	Bonus int

	// Granted is false when today's bonus was already claimed.
	Granted bool
}

// NextReward computes the login-streak transition purely from
// (today, lastRewardDate, priorStreak): same day is a no-op, yesterday
// extends the streak, anything else (including first run) resets it to 1.
func NextReward(today time.Time, lastRewardDate string, priorStreak int) Reward {
	date := today.Format(time.DateOnly)
	if lastRewardDate == date {
		return Reward{Streak: priorStreak}
	}

	streak := 1
	if lastRewardDate == today.AddDate(0, 0, -1).Format(time.DateOnly) {
		streak = priorStreak + 1
	}
	return Reward{Streak: streak, Bonus: streak * coinsPerStreakDay, Granted: true}
}

// GrantReward applies the daily bonus to the player: credits coins, advances
// the stored streak and date, and runs the 3/7-day streak achievement
// checks. Runs once per game completion; same-day repeats are no-ops.
func GrantReward(p *player.State, today time.Time) (Reward, []player.Achievement) {
	r := NextReward(today, p.LastRewardDate, p.DailyStreak)
	if !r.Granted {
		return r, nil
	}

	p.DailyStreak = r.Streak
	p.AddCoins(r.Bonus)
	p.LastRewardDate = today.Format(time.DateOnly)

	var unlocked []player.Achievement
	for _, m := range []struct {
		at int
		id player.AchievementID
	}{
		{3, player.AchDaily3},
		{7, player.AchDaily7},
	} {
		if r.Streak >= m.at && p.UnlockAchievement(m.id) {
			if ach, ok := player.AchievementByID(m.id); ok {
				unlocked = append(unlocked, ach)
			}
		}
	}
	return r, unlocked
}
