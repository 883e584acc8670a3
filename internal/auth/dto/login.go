package dto

import (
	"strings"

	apperrors "github.com/DarshanCHMSR/search-engine/internal/errors"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *LoginInput) Normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

func (in *LoginInput) Validate() error {
	v := &apperrors.ValidationError{}

	if in.Email == "" {
		v.Add("email", "email is required")
	}
	if in.Password == "" {
		v.Add("password", "password is required")
	}

	return v.OrNil()
}
