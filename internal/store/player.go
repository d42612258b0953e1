package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/abhisek/mathquest/internal/player"
)

// PlayerRepo persists the player profile as timestamped JSON snapshots.
// Keeping a short history of snapshots makes a corrupted save recoverable.
type PlayerRepo interface {
	// Save writes a new snapshot of the profile.
	Save(ctx context.Context, p *player.State) error
	// Load returns the most recent snapshot, or a fresh profile when the
	// database is empty or the stored JSON can no longer be parsed.
	Load(ctx context.Context) (*player.State, error)
	// Prune deletes all but the keep most recent snapshots.
	Prune(ctx context.Context, keep int) error
	// Reset deletes every snapshot, wiping all progress.
	Reset(ctx context.Context) error
}

type playerRepo struct {
	db *sql.DB
}

func (r *playerRepo) Save(ctx context.Context, p *player.State) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal player snapshot: %w", err)
	}

	query, args, err := sqlBuilder.Insert("player_snapshots").
		Columns("saved_at", "data").
		Values(time.Now().UTC(), string(data)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save player snapshot: %w", err)
	}
	return nil
}

func (r *playerRepo) Load(ctx context.Context) (*player.State, error) {
	query, args, err := sqlBuilder.Select("data").
		From("player_snapshots").
		OrderBy("saved_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var data string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return player.NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load player snapshot: %w", err)
	}

	var p player.State
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		// A snapshot we can't parse is worth less than a clean start.
		return player.NewState(), nil
	}
	p.Normalize()
	return &p, nil
}

func (r *playerRepo) Prune(ctx context.Context, keep int) error {
	newest := sqlBuilder.Select("id").
		From("player_snapshots").
		OrderBy("saved_at DESC", "id DESC").
		Limit(uint64(keep))

	query, args, err := sqlBuilder.Delete("player_snapshots").
		Where(notIn("id", newest)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("prune player snapshots: %w", err)
	}
	return nil
}

func (r *playerRepo) Reset(ctx context.Context) error {
	query, args, err := sqlBuilder.Delete("player_snapshots").ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("reset player snapshots: %w", err)
	}
	return nil
}

// notIn renders a NOT IN (subquery) condition; squirrel.Eq only covers
// value lists, not subselects.
func notIn(column string, sub squirrel.SelectBuilder) squirrel.Sqlizer {
	return squirrel.Expr(column+" NOT IN (?)", sub)
}
