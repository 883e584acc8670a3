package service

import (
	"context"
	"strings"
	"time"

	"github.com/DarshanCHMSR/search-engine/internal/search/domain"
	apperrors "github.com/DarshanCHMSR/search-engine/internal/errors"
	"github.com/DarshanCHMSR/search-engine/pkg/constant"
)

// HistoryService records, lists and deletes a user's search history. It holds
// no request state; all mutation is delegated to the repository, whose upsert
// carries the uniqueness guarantee.
type HistoryService struct {
	repo         domain.HistoryRepository
	defaultLimit int
	maxLimit     int
}

func NewHistoryService(repo domain.HistoryRepository, defaultLimit, maxLimit int) *HistoryService {
	if defaultLimit <= 0 {
		defaultLimit = constant.DefaultHistoryLimit
	}
	if maxLimit <= 0 {
		maxLimit = constant.MaxHistoryLimit
	}
	return &HistoryService{
		repo:         repo,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Record stores the query for the user. A repeat of an earlier query advances
// its timestamp instead of creating a second row. The returned bool is true
// when the entry is new.
func (s *HistoryService) Record(ctx context.Context, userID, query string) (*domain.Entry, bool, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, false, apperrors.ErrEmptyQuery
	}

	return s.repo.Upsert(ctx, userID, query, time.Now())
}

// Page is one page of history entries.
type Page struct {
	Entries []domain.Entry
	Total   int
	Limit   int
	Offset  int
	HasMore bool
}

// List returns entries ordered most recent first. A non-positive limit falls
// back to the default; values above the hard cap are clamped to it.
func (s *HistoryService) List(ctx context.Context, userID string, limit, offset int) (*Page, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	entries, total, err := s.repo.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &Page{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+limit < total,
	}, nil
}

// DeleteOne removes a single entry. Entries that do not exist and entries
// owned by another user are indistinguishable to the caller.
func (s *HistoryService) DeleteOne(ctx context.Context, userID, entryID string) error {
	deleted, err := s.repo.Delete(ctx, userID, entryID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrEntryNotFound
	}
	return nil
}

// ClearAll removes every entry the user owns and returns how many were
// deleted.
func (s *HistoryService) ClearAll(ctx context.Context, userID string) (int64, error) {
	return s.repo.DeleteAll(ctx, userID)
}
