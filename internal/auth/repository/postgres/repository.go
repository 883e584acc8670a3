package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/DarshanCHMSR/search-engine/internal/auth/domain"
	apperrors "github.com/DarshanCHMSR/search-engine/internal/errors"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, email, password_hash, first_name, last_name,
		profile_picture, is_active, is_verified, last_login, preferences, created_at, updated_at`

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE lower(email) = lower($1) LIMIT 1`, userColumns)
	return r.getOne(ctx, query, email)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE lower(username) = lower($1) LIMIT 1`, userColumns)
	return r.getOne(ctx, query, username)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 LIMIT 1`, userColumns)
	return r.getOne(ctx, query, id)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	row := r.db.QueryRow(ctx, query, arg)

	var (
		user  domain.User
		prefs []byte
	)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.FirstName, &user.LastName, &user.ProfilePicture, &user.IsActive,
		&user.IsVerified, &user.LastLogin, &prefs, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := json.Unmarshal(prefs, &user.Preferences); err != nil {
		return nil, fmt.Errorf("failed to decode preferences: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	prefs, err := json.Marshal(user.Preferences)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO users (id, username, email, password_hash, first_name, last_name,
			profile_picture, is_active, is_verified, last_login, preferences, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, user.ID, user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.ProfilePicture, user.IsActive, user.IsVerified, user.LastLogin, prefs,
		user.CreatedAt, user.UpdatedAt)

	// Pre-checks in the service are racy by nature, so the unique indexes are
	// the source of truth for duplicates.
	if err != nil {
		if conflict := uniqueViolation(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	prefs, err := json.Marshal(user.Preferences)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET first_name = $2, last_name = $3, profile_picture = $4, password_hash = $5,
			is_active = $6, is_verified = $7, last_login = $8, preferences = $9, updated_at = $10
		WHERE id = $1
	`, user.ID, user.FirstName, user.LastName, user.ProfilePicture, user.PasswordHash,
		user.IsActive, user.IsVerified, user.LastLogin, prefs, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}

	if strings.Contains(pgErr.ConstraintName, "username") {
		return apperrors.ErrUsernameAlreadyInUse
	}
	return apperrors.ErrEmailAlreadyInUse
}
