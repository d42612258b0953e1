package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/abhisek/mathquest/internal/quiz"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// GameResult is one finished game, recorded at the summary screen.
type GameResult struct {
	ID         string
	Difficulty quiz.Difficulty
	Score      int

	// Questions counts every evaluated answer; Correct only the right ones.
	Questions int
	Correct   int

	MaxWave       int
	Duration      time.Duration
	ChallengeCode string
	PlayedAt      time.Time
}

// ResultFilter narrows Recent queries.
type ResultFilter struct {
	Difficulty quiz.Difficulty // empty matches all modes
	Limit      int             // defaults to 20
}

// DifficultyStats aggregates the recorded games of one mode.
type DifficultyStats struct {
	Difficulty quiz.Difficulty
	Games      int
	BestScore  int
	BestWave   int
	Questions  int
	Correct    int
}

// ResultRepo records finished games and answers history queries.
type ResultRepo interface {
	Insert(ctx context.Context, res GameResult) error
	Recent(ctx context.Context, filter ResultFilter) ([]GameResult, error)
	Stats(ctx context.Context) ([]DifficultyStats, error)
	Reset(ctx context.Context) error
}

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Insert(ctx context.Context, res GameResult) error {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.PlayedAt.IsZero() {
		res.PlayedAt = time.Now().UTC()
	}

	query, args, err := sqlBuilder.Insert("game_results").
		Columns("id", "difficulty", "score", "questions", "correct",
			"max_wave", "duration_secs", "challenge_code", "played_at").
		Values(res.ID, string(res.Difficulty), res.Score, res.Questions,
			res.Correct, res.MaxWave, int(res.Duration.Seconds()),
			res.ChallengeCode, res.PlayedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert game result: %w", err)
	}
	return nil
}

func (r *resultRepo) Recent(ctx context.Context, filter ResultFilter) ([]GameResult, error) {
	query := sqlBuilder.Select(
		"id", "difficulty", "score", "questions", "correct", "max_wave",
		"duration_secs", "challenge_code", "played_at",
	).From("game_results")

	if filter.Difficulty != "" {
		query = query.Where(squirrel.Eq{"difficulty": string(filter.Difficulty)})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	query = query.OrderBy("played_at DESC").Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list game results: %w", err)
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var (
			g    GameResult
			diff string
			secs int
		)
		if err := rows.Scan(&g.ID, &diff, &g.Score, &g.Questions, &g.Correct,
			&g.MaxWave, &secs, &g.ChallengeCode, &g.PlayedAt); err != nil {
			return nil, fmt.Errorf("scan game result: %w", err)
		}
		g.Difficulty = quiz.Difficulty(diff)
		g.Duration = time.Duration(secs) * time.Second
		results = append(results, g)
	}
	return results, rows.Err()
}

func (r *resultRepo) Stats(ctx context.Context) ([]DifficultyStats, error) {
	query, args, err := sqlBuilder.Select(
		"difficulty",
		"COUNT(*)",
		"MAX(score)",
		"MAX(max_wave)",
		"SUM(questions)",
		"SUM(correct)",
	).From("game_results").
		GroupBy("difficulty").
		OrderBy("difficulty").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var stats []DifficultyStats
	for rows.Next() {
		var (
			s    DifficultyStats
			diff string
		)
		if err := rows.Scan(&diff, &s.Games, &s.BestScore, &s.BestWave,
			&s.Questions, &s.Correct); err != nil {
			return nil, fmt.Errorf("scan stats row: %w", err)
		}
		s.Difficulty = quiz.Difficulty(diff)
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *resultRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM game_results`); err != nil {
		return fmt.Errorf("reset game results: %w", err)
	}
	return nil
}
