package api

import (
	"staffdir/pkg/domain"
	"staffdir/pkg/query"
)

// validateEmployee runs the caller-side business rules before a record
// reaches the store: required fields, known enum values, and the
// duplicate-email scan (excluding the record itself on update). It
// returns the HTTP status and message key of the first violation, or
// (0, "") when the record is acceptable. The store itself never
// re-checks these rules.
func (h *Handler) validateEmployee(record domain.Employee, excludeID string) (int, string) {
	if record.FirstName == "" || record.LastName == "" || record.Email == "" {
		return 422, "error.requiredFields"
	}
	if !domain.IsValidDepartment(record.Department) {
		return 422, "error.invalidDepartment"
	}
	if !domain.IsValidPosition(record.Position) {
		return 422, "error.invalidPosition"
	}
	if query.EmailInUse(h.store.GetAll(), record.Email, excludeID) {
		return 409, "error.duplicateEmail"
	}
	return 0, ""
}
