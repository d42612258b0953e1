package daily

import (
	"testing"
	"time"

	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/rng"
)

func testDay() time.Time {
	return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
}

func TestGenerateChallenges(t *testing.T) {
	src := rng.NewSeeded("daily-gen")
	for i := 0; i < 50; i++ {
		cs := GenerateChallenges(src, testDay())
		if len(cs) != 3 {
			t.Fatalf("generated %d challenges, want 3", len(cs))
		}

		score, streak, answers := cs[0], cs[1], cs[2]
		if score.Type != player.ChallengeTotalScore || score.Reward != score.Target/10 {
			t.Errorf("score challenge %+v", score)
		}
		if streak.Type != player.ChallengeHighStreak || streak.Reward != streak.Target*10 {
			t.Errorf("streak challenge %+v", streak)
		}
		if answers.Type != player.ChallengeTotalAnswers || answers.Reward != 100+answers.Target*2 {
			t.Errorf("answers challenge %+v", answers)
		}

		for _, c := range cs {
			if c.Target <= 0 || c.Current != 0 || c.Completed || c.Claimed {
				t.Errorf("fresh challenge %+v", c)
			}
		}
	}
}

func TestRefreshOncePerDay(t *testing.T) {
	p := player.NewState()
	src := rng.NewSeeded("daily-refresh")

	if !Refresh(p, testDay(), src) {
		t.Fatal("first refresh should generate")
	}
	p.DailyChallenges[0].Current = 250

	if Refresh(p, testDay(), src) {
		t.Error("same-day refresh must not regenerate")
	}
	if p.DailyChallenges[0].Current != 250 {
		t.Error("same-day refresh lost progress")
	}

	if !Refresh(p, testDay().AddDate(0, 0, 1), src) {
		t.Error("next-day refresh should regenerate")
	}
	if p.DailyChallenges[0].Current != 0 {
		t.Error("next-day refresh kept stale progress")
	}
}

func TestRecordCorrect(t *testing.T) {
	p := player.NewState()
	p.DailyChallenges = []player.DailyChallenge{
		{ID: "s", Type: player.ChallengeTotalScore, Target: 100, Reward: 10},
		{ID: "k", Type: player.ChallengeHighStreak, Target: 3, Reward: 30},
		{ID: "a", Type: player.ChallengeTotalAnswers, Target: 2, Reward: 140},
	}

	RecordCorrect(p, 40, 1)
	if p.DailyChallenges[0].Current != 40 || p.DailyChallenges[1].Current != 1 || p.DailyChallenges[2].Current != 1 {
		t.Fatalf("after first answer: %+v", p.DailyChallenges)
	}

	RecordCorrect(p, 60, 2)
	if !p.DailyChallenges[0].Completed {
		t.Error("score challenge should complete at target")
	}
	if !p.DailyChallenges[2].Completed {
		t.Error("answers challenge should complete at target")
	}

	// Streak takes the max, not a sum.
	RecordCorrect(p, 10, 3)
	if p.DailyChallenges[1].Current != 3 || !p.DailyChallenges[1].Completed {
		t.Errorf("streak challenge %+v", p.DailyChallenges[1])
	}

	// Completed challenges stop accumulating.
	was := p.DailyChallenges[0].Current
	RecordCorrect(p, 500, 4)
	if p.DailyChallenges[0].Current != was {
		t.Error("completed challenge kept accumulating")
	}
}

func TestClaimIsTerminal(t *testing.T) {
	p := player.NewState()
	p.DailyChallenges = []player.DailyChallenge{
		{ID: "c1", Type: player.ChallengeTotalScore, Target: 10, Current: 10, Completed: true, Reward: 25},
		{ID: "c2", Type: player.ChallengeTotalScore, Target: 10, Current: 3, Reward: 25},
	}

	if _, ok := Claim(p, "c2"); ok {
		t.Error("claimed an incomplete challenge")
	}

	reward, ok := Claim(p, "c1")
	if !ok || reward != 25 {
		t.Fatalf("claim = %d, %v", reward, ok)
	}
	if p.Coins != 150+25 {
		t.Errorf("coins = %d, want 175", p.Coins)
	}

	if _, ok := Claim(p, "c1"); ok {
		t.Error("second claim succeeded")
	}
	if p.Coins != 175 {
		t.Errorf("double claim changed coins: %d", p.Coins)
	}
}

func TestNextRewardFirstEver(t *testing.T) {
	// Scenario: no stored date, stored streak 1 — reset path, 10 coin bonus.
	r := NextReward(testDay(), "", 1)
	if !r.Granted || r.Streak != 1 || r.Bonus != 10 {
		t.Errorf("first reward = %+v", r)
	}
}

func TestNextRewardConsecutiveDay(t *testing.T) {
	yesterday := testDay().AddDate(0, 0, -1).Format(time.DateOnly)
	r := NextReward(testDay(), yesterday, 4)
	if !r.Granted || r.Streak != 5 || r.Bonus != 50 {
		t.Errorf("consecutive reward = %+v", r)
	}
}

func TestNextRewardSameDayNoop(t *testing.T) {
	today := testDay().Format(time.DateOnly)
	r := NextReward(testDay(), today, 6)
	if r.Granted || r.Bonus != 0 || r.Streak != 6 {
		t.Errorf("same-day reward = %+v", r)
	}
}

func TestNextRewardGapResets(t *testing.T) {
	lastWeek := testDay().AddDate(0, 0, -6).Format(time.DateOnly)
	r := NextReward(testDay(), lastWeek, 9)
	if !r.Granted || r.Streak != 1 || r.Bonus != 10 {
		t.Errorf("gap reward = %+v", r)
	}
}

func TestGrantRewardAppliesAndUnlocks(t *testing.T) {
	p := player.NewState()
	p.DailyStreak = 2
	p.LastRewardDate = testDay().AddDate(0, 0, -1).Format(time.DateOnly)

	r, unlocked := GrantReward(p, testDay())
	if r.Streak != 3 || r.Bonus != 30 {
		t.Fatalf("reward = %+v", r)
	}
	if p.DailyStreak != 3 || p.LastRewardDate != testDay().Format(time.DateOnly) {
		t.Errorf("player after grant: streak %d date %s", p.DailyStreak, p.LastRewardDate)
	}

	// 150 start + 30 bonus + 100 for the 3-day achievement.
	if p.Coins != 280 {
		t.Errorf("coins = %d, want 280", p.Coins)
	}
	if len(unlocked) != 1 || unlocked[0].ID != player.AchDaily3 {
		t.Errorf("unlocked = %+v", unlocked)
	}

	// Second completion the same day is a no-op.
	coins := p.Coins
	r, unlocked = GrantReward(p, testDay())
	if r.Granted || len(unlocked) != 0 || p.Coins != coins {
		t.Error("same-day grant was not a no-op")
	}
}
