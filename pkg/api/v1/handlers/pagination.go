package handlers

import "github.com/solobooks/solobooks/internal/db/models"

// getPaginationOptions returns a ListOptions struct with validated pagination parameters
func getPaginationOptions(page int, includeDeleted ...bool) *models.ListOptions {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * models.DefaultLimit
	options := &models.ListOptions{
		Limit:  models.DefaultLimit,
		Offset: offset,
	}
	if len(includeDeleted) > 0 {
		options.IncludeDeleted = includeDeleted[0]
	}
	return options
}

// PaginationResponse describes the page returned by a list endpoint
type PaginationResponse struct {
	Total  int `json:"total"`
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
