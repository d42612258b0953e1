package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"player_snapshots", "game_results"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
	}
}

func TestPlayerLoadEmpty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := s.PlayerRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if p.Coins != 150 || p.Level != 1 {
		t.Errorf("empty load = coins %d, level %d; want fresh defaults", p.Coins, p.Level)
	}
}

func TestPlayerSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlayerRepo()
	ctx := context.Background()

	p := player.NewState()
	p.Coins = 640
	p.Level = 7
	p.XP = 42
	p.TotalScore = 5500
	p.DailyStreak = 3
	p.UnlockAchievement(player.AchStreak10)

	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Level != 7 || got.XP != 42 {
		t.Errorf("level/xp = %d/%d, want 7/42", got.Level, got.XP)
	}
	if got.TotalScore != 5500 {
		t.Errorf("totalScore = %d, want 5500", got.TotalScore)
	}
	if !got.HasAchievement(player.AchStreak10) {
		t.Error("achievement lost in roundtrip")
	}
	if got.DailyStreak != 3 {
		t.Errorf("dailyStreak = %d, want 3", got.DailyStreak)
	}
}

func TestPlayerLoadReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlayerRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		p := player.NewState()
		p.Level = i
		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Level != 3 {
		t.Errorf("level = %d, want 3 (newest snapshot)", got.Level)
	}
}

func TestPlayerLoadCorruptSnapshot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.DB().ExecContext(ctx,
		`INSERT INTO player_snapshots (saved_at, data) VALUES (?, ?)`,
		time.Now().UTC(), "{not json")
	if err != nil {
		t.Fatalf("insert corrupt row: %v", err)
	}

	p, err := s.PlayerRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Coins != 150 || p.Level != 1 {
		t.Error("corrupt snapshot should load as a fresh profile")
	}
}

func TestPlayerPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlayerRepo()
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		p := player.NewState()
		p.Level = i
		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	var count int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM player_snapshots`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Level != 7 {
		t.Errorf("newest level = %d, want 7", got.Level)
	}
}

func TestPlayerReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlayerRepo()
	ctx := context.Background()

	p := player.NewState()
	p.Level = 9
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Level != 1 {
		t.Errorf("level after reset = %d, want 1", got.Level)
	}
}

func TestResultInsertAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	games := []GameResult{
		{Difficulty: quiz.Easy, Score: 100, Questions: 12, Correct: 10, PlayedAt: base},
		{Difficulty: quiz.Survival, Score: 240, Questions: 17, Correct: 16, MaxWave: 4,
			Duration: 95 * time.Second, PlayedAt: base.Add(time.Minute)},
		{Difficulty: quiz.Easy, Score: 120, Questions: 10, Correct: 10, ChallengeCode: "QUEST1234",
			PlayedAt: base.Add(2 * time.Minute)},
	}
	for i, g := range games {
		if err := repo.Insert(ctx, g); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	all, err := repo.Recent(ctx, ResultFilter{})
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("recent = %d results, want 3", len(all))
	}
	if all[0].ChallengeCode != "QUEST1234" {
		t.Errorf("newest first: got %+v", all[0])
	}
	if all[0].ID == "" {
		t.Error("insert did not assign an id")
	}
	if all[1].Duration != 95*time.Second {
		t.Errorf("duration = %v, want 95s", all[1].Duration)
	}
	if all[1].Questions != 17 || all[1].Correct != 16 {
		t.Errorf("answer counts = %d/%d, want 17/16", all[1].Correct, all[1].Questions)
	}

	easy, err := repo.Recent(ctx, ResultFilter{Difficulty: quiz.Easy})
	if err != nil {
		t.Fatalf("recent easy: %v", err)
	}
	if len(easy) != 2 {
		t.Errorf("easy results = %d, want 2", len(easy))
	}

	one, err := repo.Recent(ctx, ResultFilter{Limit: 1})
	if err != nil {
		t.Fatalf("recent limit: %v", err)
	}
	if len(one) != 1 {
		t.Errorf("limited results = %d, want 1", len(one))
	}
}

func TestResultStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	games := []GameResult{
		{Difficulty: quiz.Easy, Score: 100, Questions: 12, Correct: 10},
		{Difficulty: quiz.Easy, Score: 150, Questions: 10, Correct: 10},
		{Difficulty: quiz.Survival, Score: 900, Questions: 32, Correct: 30, MaxWave: 7},
	}
	for i, g := range games {
		if err := repo.Insert(ctx, g); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	byDiff := make(map[quiz.Difficulty]DifficultyStats, len(stats))
	for _, st := range stats {
		byDiff[st.Difficulty] = st
	}

	easy := byDiff[quiz.Easy]
	if easy.Games != 2 || easy.BestScore != 150 || easy.Questions != 22 || easy.Correct != 20 {
		t.Errorf("easy stats = %+v", easy)
	}
	surv := byDiff[quiz.Survival]
	if surv.Games != 1 || surv.BestWave != 7 {
		t.Errorf("survival stats = %+v", surv)
	}
}
