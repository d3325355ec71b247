// Package query derives filtered views of the employee collection.
// Everything here is a pure function over a snapshot; nothing mutates
// the collection or caches results between calls.
package query

import (
	"strings"

	"staffdir/pkg/domain"
)

// Filter returns the subsequence of records where the lowercased term
// is a substring of the first name, last name, email, department, or
// position. An empty or whitespace-only term returns the input
// unchanged. The filter is stable: matches keep their input order.
func Filter(records []domain.Employee, term string) []domain.Employee {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return records
	}

	filtered := make([]domain.Employee, 0, len(records))
	for _, rec := range records {
		if matches(rec, needle) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// matches checks case-insensitive substring containment. An empty field
// never matches a non-empty needle, so incomplete records are simply
// non-matching on that field rather than an error.
func matches(rec domain.Employee, needle string) bool {
	return contains(rec.FirstName, needle) ||
		contains(rec.LastName, needle) ||
		contains(rec.Email, needle) ||
		contains(string(rec.Department), needle) ||
		contains(string(rec.Position), needle)
}

func contains(field, needle string) bool {
	return strings.Contains(strings.ToLower(field), needle)
}

// EmailInUse reports whether any record other than excludeID already
// uses the email, compared case-insensitively. The command layer calls
// this before Add (excludeID empty) and Update (excludeID set to the
// record being updated).
func EmailInUse(records []domain.Employee, email, excludeID string) bool {
	for _, rec := range records {
		if rec.ID == excludeID {
			continue
		}
		if strings.EqualFold(rec.Email, email) {
			return true
		}
	}
	return false
}
