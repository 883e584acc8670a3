package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/DarshanCHMSR/search-engine/internal/search/domain"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type HistoryRepository struct {
	db DB
}

func NewHistoryRepository(db DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Upsert relies on the UNIQUE (user_id, query) constraint: two concurrent
// identical searches race on the insert and the loser takes the update path
// inside the same statement. `xmax = 0` distinguishes a fresh insert from a
// conflict-update.
func (r *HistoryRepository) Upsert(ctx context.Context, userID, query string, now time.Time) (*domain.Entry, bool, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO search_history (id, user_id, query, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, query)
		DO UPDATE SET created_at = EXCLUDED.created_at
		RETURNING id, user_id, query, created_at, (xmax = 0) AS inserted
	`, uuid.New().String(), userID, query, now)

	var (
		entry    domain.Entry
		inserted bool
	)
	if err := row.Scan(&entry.ID, &entry.UserID, &entry.Query, &entry.CreatedAt, &inserted); err != nil {
		return nil, false, fmt.Errorf("failed to upsert history entry: %w", err)
	}

	return &entry, inserted, nil
}

func (r *HistoryRepository) List(ctx context.Context, userID string, limit, offset int) ([]domain.Entry, int, error) {
	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM search_history WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count history entries: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, query, created_at
		FROM search_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list history entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.Entry, 0, limit)
	for rows.Next() {
		var entry domain.Entry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Query, &entry.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// Delete is owner-scoped: the user_id predicate makes a foreign entry look
// exactly like a missing one.
func (r *HistoryRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM search_history WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete history entry: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *HistoryRepository) DeleteAll(ctx context.Context, userID string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM search_history WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}

	return tag.RowsAffected(), nil
}
