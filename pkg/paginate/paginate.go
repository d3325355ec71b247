// Package paginate derives bounded pages from a filtered snapshot and
// computes the compact page-marker window shown by the pagination bar.
package paginate

import "staffdir/pkg/domain"

// Page is one bounded view of a sequence. ClampedPage is the page the
// items were actually taken from after bounding the request.
type Page struct {
	Items       []domain.Employee `json:"items"`
	TotalPages  int               `json:"totalPages"`
	ClampedPage int               `json:"clampedPage"`
}

// Paginate slices the page for pageNumber out of seq. Out-of-range page
// numbers (zero, negative, beyond the last page) are silently clamped
// to [1, TotalPages], never rejected. An empty sequence yields
// TotalPages 0 and ClampedPage 1 with no items; the minimum-one-page
// display convention is the rendering layer's concern.
func Paginate(seq []domain.Employee, pageSize, pageNumber int) Page {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (len(seq) + pageSize - 1) / pageSize

	page := pageNumber
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	result := Page{
		Items:       []domain.Employee{},
		TotalPages:  totalPages,
		ClampedPage: page,
	}

	start := (page - 1) * pageSize
	if start >= len(seq) {
		return result
	}
	end := start + pageSize
	if end > len(seq) {
		end = len(seq)
	}

	result.Items = seq[start:end]
	return result
}
