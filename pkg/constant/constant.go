package constant

const (
	DefaultBcryptCost = 12

	MinPasswordLength = 6
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MaxNameLength     = 50

	MinResultsPerPage = 5
	MaxResultsPerPage = 50

	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// SearchEngines lists the engines a user may select in preferences.
var SearchEngines = []string{"google", "bing", "duckduckgo", "searxng"}

// Themes lists the accepted UI themes.
var Themes = []string{"light", "dark", "auto"}
