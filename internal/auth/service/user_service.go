package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DarshanCHMSR/search-engine/internal/auth/domain"
	"github.com/DarshanCHMSR/search-engine/internal/auth/dto"
	apperrors "github.com/DarshanCHMSR/search-engine/internal/errors"
)

type UserService struct {
	repo   domain.UserRepository
	creds  *CredentialStore
	tokens TokenGenerator
}

func NewUserService(repo domain.UserRepository, creds *CredentialStore, tokens TokenGenerator) *UserService {
	return &UserService{
		repo:   repo,
		creds:  creds,
		tokens: tokens,
	}
}

// Register creates an account and returns it together with a session token.
// Email and username are stored lowercase so uniqueness is case-insensitive.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, string, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, "", err
	}

	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", apperrors.ErrEmailAlreadyInUse
	}

	existing, err = s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", apperrors.ErrUsernameAlreadyInUse
	}

	hash, err := s.creds.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		IsActive:     true,
		IsVerified:   false,
		Preferences:  domain.DefaultPreferences(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh token. Unknown
// email, wrong password and deactivated accounts all fail with the same
// ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*domain.User, string, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, "", err
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}

	if user == nil || !user.IsActive || !s.creds.Verify(input.Password, user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	user.UpdatedAt = now
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies a partial update of the name and picture fields.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input dto.UpdateProfileInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.ProfilePicture != nil {
		user.ProfilePicture = input.ProfilePicture
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdatePreferences merges the provided fields into the stored preferences.
func (s *UserService) UpdatePreferences(ctx context.Context, userID string, input dto.UpdatePreferencesInput) (domain.Preferences, error) {
	if err := input.Validate(); err != nil {
		return domain.Preferences{}, err
	}

	user, err := s.Profile(ctx, userID)
	if err != nil {
		return domain.Preferences{}, err
	}

	if input.SearchEngine != nil {
		user.Preferences.SearchEngine = *input.SearchEngine
	}
	if input.ResultsPerPage != nil {
		user.Preferences.ResultsPerPage = *input.ResultsPerPage
	}
	if input.SafeSearch != nil {
		user.Preferences.SafeSearch = *input.SafeSearch
	}
	if input.Theme != nil {
		user.Preferences.Theme = *input.Theme
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		return domain.Preferences{}, err
	}

	return user.Preferences, nil
}

// ChangePassword verifies the current password and rehashes the new one.
func (s *UserService) ChangePassword(ctx context.Context, userID string, input dto.ChangePasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}

	if !s.creds.Verify(input.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrIncorrectPassword
	}

	hash, err := s.creds.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now()

	return s.repo.Update(ctx, user)
}

// Deactivate soft-deletes the account. The row is never removed.
func (s *UserService) Deactivate(ctx context.Context, userID string) error {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}

	user.IsActive = false
	user.UpdatedAt = time.Now()

	return s.repo.Update(ctx, user)
}

func (s *UserService) Stats(ctx context.Context, userID string) (*dto.StatsOutput, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.StatsOutput{
		AccountCreated: user.CreatedAt,
		LastLogin:      user.LastLogin,
		IsVerified:     user.IsVerified,
		Preferences:    user.Preferences,
	}, nil
}
