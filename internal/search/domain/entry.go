package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../../mocks/mock_history_repository.go -package=mocks github.com/DarshanCHMSR/search-engine/internal/search/domain HistoryRepository

// Entry is one row of a user's search history. At most one entry exists per
// (UserID, Query) pair; a repeat query advances CreatedAt instead of
// inserting a duplicate.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Query     string    `json:"query"`
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryRepository persists history entries. Upsert must be atomic: two
// concurrent identical queries may not produce two rows.
type HistoryRepository interface {
	// Upsert inserts the (userID, query) entry or, if it already exists,
	// advances its CreatedAt to now. The returned bool is true when a new row
	// was created.
	Upsert(ctx context.Context, userID, query string, now time.Time) (*Entry, bool, error)

	// List returns a page ordered by CreatedAt descending plus the total
	// entry count for the user.
	List(ctx context.Context, userID string, limit, offset int) ([]Entry, int, error)

	// Delete removes one entry if it exists and belongs to userID, reporting
	// whether a row was removed.
	Delete(ctx context.Context, userID, id string) (bool, error)

	// DeleteAll removes every entry owned by userID and returns the count.
	DeleteAll(ctx context.Context, userID string) (int64, error)
}
