// Package daily owns the calendar-driven features: the three daily
// challenges and the login-streak reward. Everything here is a pure
// function of (player state, today, rng source) so both features are
// re-derivable and testable without hidden clocks.
package daily

import (
	"fmt"
	"time"

	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/rng"
)

var (
	scoreTargets  = []int{500, 1000, 2000}
	streakTargets = []int{5, 10, 15, 20}
	answerTargets = []int{20, 40, 60}
)

// GenerateChallenges produces the day's three challenges: one score target,
// one streak target, one volume target, each with a scaled coin reward.
func GenerateChallenges(src rng.Source, now time.Time) []player.DailyChallenge {
	stamp := now.UnixMilli()

	score := rng.Pick(src, scoreTargets)
	streak := rng.Pick(src, streakTargets)
	answers := rng.Pick(src, answerTargets)

	return []player.DailyChallenge{
		{
			ID:          fmt.Sprintf("score_%d_1", stamp),
			Type:        player.ChallengeTotalScore,
			Description: fmt.Sprintf("Earn %d Total Points", score),
			Target:      score,
			Reward:      score / 10,
		},
		{
			ID:          fmt.Sprintf("streak_%d_2", stamp),
			Type:        player.ChallengeHighStreak,
			Description: fmt.Sprintf("Get a streak of %d", streak),
			Target:      streak,
			Reward:      streak * 10,
		},
		{
			ID:          fmt.Sprintf("answers_%d_3", stamp),
			Type:        player.ChallengeTotalAnswers,
			Description: fmt.Sprintf("Answer %d Questions Correctly", answers),
			Target:      answers,
			Reward:      100 + answers*2,
		},
	}
}

// Refresh regenerates the challenge set when the stored date is not today.
// Same-day calls leave existing challenges and their progress untouched.
// Returns true if a new set was generated.
func Refresh(p *player.State, today time.Time, src rng.Source) bool {
	date := today.Format(time.DateOnly)
	if p.LastChallengeDate == date && len(p.DailyChallenges) > 0 {
		return false
	}
	p.DailyChallenges = GenerateChallenges(src, today)
	p.LastChallengeDate = date
	return true
}

// RecordCorrect advances every incomplete challenge for one correct answer
// worth points, with streak the post-answer streak. Completion is one-way.
func RecordCorrect(p *player.State, points, streak int) {
	for i := range p.DailyChallenges {
		c := &p.DailyChallenges[i]
		if c.Completed {
			continue
		}
		switch c.Type {
		case player.ChallengeTotalScore:
			c.Current += points
		case player.ChallengeTotalAnswers:
			c.Current++
		case player.ChallengeHighStreak:
			if streak > c.Current {
				c.Current = streak
			}
		}
		if c.Current >= c.Target {
			c.Completed = true
		}
	}
}

// Claim pays out a completed challenge once. Returns the reward and true on
// the first claim; unfinished or already-claimed challenges return false.
func Claim(p *player.State, id string) (int, bool) {
	for i := range p.DailyChallenges {
		c := &p.DailyChallenges[i]
		if c.ID != id {
			continue
		}
		if !c.Completed || c.Claimed {
			return 0, false
		}
		c.Claimed = true
		p.AddCoins(c.Reward)
		return c.Reward, true
	}
	return 0, false
}
