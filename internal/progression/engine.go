// Package progression is the scoring engine: it turns answer events into
// score, coin, XP, streak and achievement updates. Operations take the
// current session context and player, mutate the player, and return an
// outcome with a discrete effect list (sounds, unlock toasts) for the
// caller to dispatch — the engine itself never touches presentation.
package progression

import (
	"github.com/abhisek/mathquest/internal/daily"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/quiz"
)

// Sound is a fire-and-forget audio cue the caller may dispatch.
type Sound string

const (
	SoundCorrect Sound = "correct"
	SoundWrong   Sound = "wrong"
	SoundLevelUp Sound = "levelUp"
)

// basePoints is the score for a plain correct answer before multipliers.
const basePoints = 10

// comboThreshold is the combo length that doubles points.
const comboThreshold = 5

// AnswerContext carries the session-side values the engine needs. Streak and
// combo are the counts before this answer; Wave and GameScore likewise.
type AnswerContext struct {
	Difficulty quiz.Difficulty
	Streak     int
	Combo      int
	Wave       int
	GameScore  int

	// TimerRemaining is the countdown value at the moment of answering,
	// before it is reset for the next question. 0 when untimed.
	TimerRemaining int
}

// Outcome reports what a correct answer earned. NewStreak/NewCombo are for
// the session to write back; player mutations have already been applied.
type Outcome struct {
	Points       int
	Coins        int
	XP           int
	LevelsGained int
	NewStreak    int
	NewCombo     int
	Unlocked     []player.Achievement
	Sounds       []Sound
}

// ApplyCorrect scores a correct answer: multipliers, rocket perks, level-up
// carry, daily-challenge progress and achievement evaluation, in that order.
func ApplyCorrect(ctx AnswerContext, p *player.State) Outcome {
	streakMult := 1
	if ctx.Difficulty == quiz.Hard {
		streakMult = ctx.Streak/3 + 1
	}
	comboBonus := 1
	if ctx.Combo >= comboThreshold {
		comboBonus = 2
	}

	points := basePoints * streakMult * comboBonus
	if ctx.Difficulty == quiz.Survival {
		points = int(float64(points) * (1 + float64(ctx.Wave)*0.2))
	}

	coins := points / 10
	xp := points * ctx.Difficulty.Settings().XPMultiplier

	// Perks are mutually exclusive: only one rocket is equipped.
	switch p.EquippedRocket {
	case player.RocketSpeed:
		xp = xp * 3 / 2
	case player.RocketBlaster:
		coins *= 2
	}

	levels := p.AddXP(xp)
	p.AddCoins(coins)
	p.TotalScore += points

	out := Outcome{
		Points:       points,
		Coins:        coins,
		XP:           xp,
		LevelsGained: levels,
		NewStreak:    ctx.Streak + 1,
		NewCombo:     ctx.Combo + 1,
		Sounds:       []Sound{SoundCorrect},
	}
	if levels > 0 {
		out.Sounds = append(out.Sounds, SoundLevelUp)
	}

	daily.RecordCorrect(p, points, out.NewStreak)

	m := Milestones{
		Difficulty:     ctx.Difficulty,
		Streak:         out.NewStreak,
		Combo:          out.NewCombo,
		Level:          p.Level,
		Coins:          p.Coins,
		TotalScore:     p.TotalScore,
		GameScore:      ctx.GameScore + points,
		Wave:           ctx.Wave,
		TimerRemaining: ctx.TimerRemaining,
		RocketsOwned:   len(p.OwnedRockets),
	}
	out.Unlocked = unlockAll(p, qualifying(m))
	if len(out.Unlocked) > 0 {
		out.Sounds = append(out.Sounds, SoundLevelUp)
	}

	return out
}

// ApplyWrong handles an incorrect (or timed-out) answer: streak and combo
// reset to zero. Lives are session state and stay with the session.
func ApplyWrong() Outcome {
	return Outcome{Sounds: []Sound{SoundWrong}}
}

// CompletionResult reports end-of-game unlocks.
type CompletionResult struct {
	Unlocked []player.Achievement
}

// ApplyCompletion runs the end-of-game achievement checks: first win always,
// perfect game when the final streak covers the mode's full question count.
func ApplyCompletion(p *player.State, diff quiz.Difficulty, finalStreak int) CompletionResult {
	ids := []player.AchievementID{player.AchFirstWin}

	if n := diff.Settings().Questions; n > 0 && finalStreak == n {
		ids = append(ids, player.AchPerfectGame)
	}

	return CompletionResult{Unlocked: unlockAll(p, ids)}
}

// CheckRocketCollection unlocks the collection achievement once every
// catalog rocket is owned. Call after a successful shop purchase.
func CheckRocketCollection(p *player.State) []player.Achievement {
	if len(p.OwnedRockets) < len(player.Rockets()) {
		return nil
	}
	return unlockAll(p, []player.AchievementID{player.AchCollector})
}

// unlockAll unlocks each id that is not already held and returns the catalog
// entries of the new unlocks for toast display.
func unlockAll(p *player.State, ids []player.AchievementID) []player.Achievement {
	var unlocked []player.Achievement
	for _, id := range ids {
		if p.UnlockAchievement(id) {
			if ach, ok := player.AchievementByID(id); ok {
				unlocked = append(unlocked, ach)
			}
		}
	}
	return unlocked
}
