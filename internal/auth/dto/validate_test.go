package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/DarshanCHMSR/search-engine/internal/errors"
)

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	verr, ok := apperrors.AsValidation(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	return fields
}

func TestRegisterInput_Normalize(t *testing.T) {
	in := RegisterInput{Email: "  User@Example.COM ", Username: " Tester1 "}
	in.Normalize()

	assert.Equal(t, "user@example.com", in.Email)
	assert.Equal(t, "tester1", in.Username)
}

func TestRegisterInput_Validate(t *testing.T) {
	valid := RegisterInput{
		Username:  "tester1",
		Email:     "a@x.com",
		Password:  "Secret1",
		FirstName: "Alice",
		LastName:  "Smith",
	}
	assert.NoError(t, valid.Validate())

	t.Run("collects every failing field", func(t *testing.T) {
		in := RegisterInput{Email: "nope", Username: "x", Password: "ab"}
		fields := fieldsOf(t, in.Validate())
		assert.ElementsMatch(t, []string{"email", "username", "password", "firstName", "lastName"}, fields)
	})

	t.Run("unicode names accepted", func(t *testing.T) {
		in := valid
		in.FirstName = "José"
		in.LastName = "Müller"
		assert.NoError(t, in.Validate())
	})
}

func TestUpdateProfileInput_Validate(t *testing.T) {
	t.Run("empty update is valid", func(t *testing.T) {
		assert.NoError(t, (&UpdateProfileInput{}).Validate())
	})

	t.Run("bad url", func(t *testing.T) {
		bad := "not a url"
		in := UpdateProfileInput{ProfilePicture: &bad}
		assert.Contains(t, fieldsOf(t, in.Validate()), "profilePicture")
	})

	t.Run("empty string clears the picture", func(t *testing.T) {
		empty := ""
		in := UpdateProfileInput{ProfilePicture: &empty}
		assert.NoError(t, in.Validate())
	})

	t.Run("https url accepted", func(t *testing.T) {
		ok := "https://cdn.example.com/me.png"
		in := UpdateProfileInput{ProfilePicture: &ok}
		assert.NoError(t, in.Validate())
	})
}

func TestUpdatePreferencesInput_Validate(t *testing.T) {
	t.Run("bounds", func(t *testing.T) {
		low, high, ok := 4, 51, 50
		assert.Contains(t, fieldsOf(t, (&UpdatePreferencesInput{ResultsPerPage: &low}).Validate()), "resultsPerPage")
		assert.Contains(t, fieldsOf(t, (&UpdatePreferencesInput{ResultsPerPage: &high}).Validate()), "resultsPerPage")
		assert.NoError(t, (&UpdatePreferencesInput{ResultsPerPage: &ok}).Validate())
	})

	t.Run("enums", func(t *testing.T) {
		engine := "searxng"
		theme := "auto"
		assert.NoError(t, (&UpdatePreferencesInput{SearchEngine: &engine, Theme: &theme}).Validate())

		badEngine := "altavista"
		badTheme := "neon"
		fields := fieldsOf(t, (&UpdatePreferencesInput{SearchEngine: &badEngine, Theme: &badTheme}).Validate())
		assert.ElementsMatch(t, []string{"searchEngine", "theme"}, fields)
	})
}

func TestChangePasswordInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   ChangePasswordInput
		invalid []string
	}{
		{"valid", ChangePasswordInput{CurrentPassword: "old", NewPassword: "NewSecret1"}, nil},
		{"missing current", ChangePasswordInput{NewPassword: "NewSecret1"}, []string{"currentPassword"}},
		{"too short", ChangePasswordInput{CurrentPassword: "old", NewPassword: "Ab1"}, []string{"newPassword"}},
		{"no uppercase", ChangePasswordInput{CurrentPassword: "old", NewPassword: "secret123"}, []string{"newPassword"}},
		{"no digit", ChangePasswordInput{CurrentPassword: "old", NewPassword: "SecretOnly"}, []string{"newPassword"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.invalid == nil {
				assert.NoError(t, err)
				return
			}
			assert.ElementsMatch(t, tt.invalid, fieldsOf(t, err))
		})
	}
}
