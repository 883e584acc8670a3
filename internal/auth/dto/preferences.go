package dto

import (
	"slices"

	apperrors "github.com/DarshanCHMSR/search-engine/internal/errors"
	"github.com/DarshanCHMSR/search-engine/pkg/constant"
)

// UpdatePreferencesInput is a partial merge into the stored preferences.
type UpdatePreferencesInput struct {
	SearchEngine   *string `json:"searchEngine"`
	ResultsPerPage *int    `json:"resultsPerPage"`
	SafeSearch     *bool   `json:"safeSearch"`
	Theme          *string `json:"theme"`
}

func (in *UpdatePreferencesInput) Validate() error {
	v := &apperrors.ValidationError{}

	if in.SearchEngine != nil && !slices.Contains(constant.SearchEngines, *in.SearchEngine) {
		v.Add("searchEngine", "invalid search engine")
	}
	if in.ResultsPerPage != nil {
		if *in.ResultsPerPage < constant.MinResultsPerPage || *in.ResultsPerPage > constant.MaxResultsPerPage {
			v.Add("resultsPerPage", "results per page must be between 5 and 50")
		}
	}
	if in.Theme != nil && !slices.Contains(constant.Themes, *in.Theme) {
		v.Add("theme", "theme must be light, dark, or auto")
	}

	return v.OrNil()
}
