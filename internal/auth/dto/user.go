package dto

import (
	"time"

	"github.com/DarshanCHMSR/search-engine/internal/auth/domain"
)

// UserOutput is the outward shape of a user. The password hash is never
// serialized.
type UserOutput struct {
	ID             string             `json:"id"`
	Username       string             `json:"username"`
	Email          string             `json:"email"`
	FirstName      string             `json:"firstName"`
	LastName       string             `json:"lastName"`
	FullName       string             `json:"fullName"`
	ProfilePicture *string            `json:"profilePicture"`
	IsActive       bool               `json:"isActive"`
	IsVerified     bool               `json:"isVerified"`
	LastLogin      *time.Time         `json:"lastLogin"`
	Preferences    domain.Preferences `json:"preferences"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		FullName:       u.FullName(),
		ProfilePicture: u.ProfilePicture,
		IsActive:       u.IsActive,
		IsVerified:     u.IsVerified,
		LastLogin:      u.LastLogin,
		Preferences:    u.Preferences,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// StatsOutput summarizes an account for the stats endpoint.
type StatsOutput struct {
	AccountCreated time.Time          `json:"accountCreated"`
	LastLogin      *time.Time         `json:"lastLogin"`
	IsVerified     bool               `json:"isVerified"`
	Preferences    domain.Preferences `json:"preferences"`
}
