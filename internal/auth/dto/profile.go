package dto

import (
	apperrors "github.com/DarshanCHMSR/search-engine/internal/errors"
	"github.com/DarshanCHMSR/search-engine/pkg/constant"
)

// UpdateProfileInput is a partial update: nil pointers mean "leave unchanged".
type UpdateProfileInput struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	ProfilePicture *string `json:"profilePicture"`
}

func (in *UpdateProfileInput) Validate() error {
	v := &apperrors.ValidationError{}

	if in.FirstName != nil {
		if *in.FirstName == "" || len(*in.FirstName) > constant.MaxNameLength || !isAlpha(*in.FirstName) {
			v.Add("firstName", "first name must be 1-50 characters and contain only letters")
		}
	}
	if in.LastName != nil {
		if *in.LastName == "" || len(*in.LastName) > constant.MaxNameLength || !isAlpha(*in.LastName) {
			v.Add("lastName", "last name must be 1-50 characters and contain only letters")
		}
	}
	if in.ProfilePicture != nil && *in.ProfilePicture != "" && !isURL(*in.ProfilePicture) {
		v.Add("profilePicture", "profile picture must be a valid URL")
	}

	return v.OrNil()
}
