package models

// PageResult is the envelope returned by every paginated listing.
type PageResult struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
	Data       any `json:"data"`
}
