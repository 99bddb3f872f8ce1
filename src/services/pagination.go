package services

import "github.com/SGRH/SGRH-Backend/src/models"

// ClampPage forces the page number to be at least 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampLimit forces the page size into [1,100], falling back to 10.
func ClampLimit(limit int) int {
	if limit < 1 || limit > 100 {
		return 10
	}
	return limit
}

// Paginate slices an already-loaded result set. Listings always scan the
// full table and page in memory; total reflects the filtered count, not the
// page size.
func Paginate[T any](items []T, page, limit int) models.PageResult {
	total := len(items)
	totalPages := (total + limit - 1) / limit

	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return models.PageResult{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		Data:       items[offset:end],
	}
}
