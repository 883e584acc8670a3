package dto

import (
	"strings"

	apperrors "github.com/DarshanCHMSR/search-engine/internal/errors"
	"github.com/DarshanCHMSR/search-engine/pkg/constant"
)

type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Normalize lowercases the identity fields before any lookup or write.
func (in *RegisterInput) Normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.ToLower(strings.TrimSpace(in.Username))
}

func (in *RegisterInput) Validate() error {
	v := &apperrors.ValidationError{}

	if in.Email == "" {
		v.Add("email", "email is required")
	} else if !isEmail(in.Email) {
		v.Add("email", "email must be a valid address")
	}

	if in.Username == "" {
		v.Add("username", "username is required")
	} else if len(in.Username) < constant.MinUsernameLength || len(in.Username) > constant.MaxUsernameLength {
		v.Add("username", "username must be 3-50 characters")
	} else if !isAlphanumeric(in.Username) {
		v.Add("username", "username must contain only letters and numbers")
	}

	if in.Password == "" {
		v.Add("password", "password is required")
	} else if len(in.Password) < constant.MinPasswordLength {
		v.Add("password", "password must be at least 6 characters long")
	}

	if in.FirstName == "" || len(in.FirstName) > constant.MaxNameLength || !isAlpha(in.FirstName) {
		v.Add("firstName", "first name must be 1-50 characters and contain only letters")
	}
	if in.LastName == "" || len(in.LastName) > constant.MaxNameLength || !isAlpha(in.LastName) {
		v.Add("lastName", "last name must be 1-50 characters and contain only letters")
	}

	return v.OrNil()
}
