package dto

import (
	apperrors "github.com/DarshanCHMSR/search-engine/internal/errors"
	"github.com/DarshanCHMSR/search-engine/pkg/constant"
)

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (in *ChangePasswordInput) Validate() error {
	v := &apperrors.ValidationError{}

	if in.CurrentPassword == "" {
		v.Add("currentPassword", "current password is required")
	}

	if len(in.NewPassword) < constant.MinPasswordLength {
		v.Add("newPassword", "new password must be at least 6 characters long")
	} else if !passwordStrong(in.NewPassword) {
		v.Add("newPassword", "new password must contain at least one lowercase letter, one uppercase letter, and one number")
	}

	return v.OrNil()
}
