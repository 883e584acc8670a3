package domain

import "time"

type User struct {
	ID             string
	Username       string
	Email          string
	PasswordHash   string
	FirstName      string
	LastName       string
	ProfilePicture *string
	IsActive       bool
	IsVerified     bool
	LastLogin      *time.Time
	Preferences    Preferences
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Preferences is stored as a JSONB blob on the users row.
type Preferences struct {
	SearchEngine   string `json:"searchEngine"`
	ResultsPerPage int    `json:"resultsPerPage"`
	SafeSearch     bool   `json:"safeSearch"`
	Theme          string `json:"theme"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		SearchEngine:   "google",
		ResultsPerPage: 10,
		SafeSearch:     true,
		Theme:          "light",
	}
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
