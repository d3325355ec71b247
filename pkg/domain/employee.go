package domain

// Department is the organizational unit an employee belongs to.
type Department string

const (
	DepartmentAnalytics Department = "Analytics"
	DepartmentTech      Department = "Tech"
	DepartmentHR        Department = "HR"
	DepartmentMarketing Department = "Marketing"
)

// Position is the seniority level of an employee.
type Position string

const (
	PositionJunior  Position = "Junior"
	PositionMedior  Position = "Medior"
	PositionSenior  Position = "Senior"
	PositionManager Position = "Manager"
)

// Employee is one directory record. The ID is an opaque string assigned
// by the store at creation and never reused. Dates are calendar-date
// strings; their format is validated by the form layer, not here.
type Employee struct {
	ID               string     `json:"id" msgpack:"id"`
	FirstName        string     `json:"firstName" msgpack:"firstName"`
	LastName         string     `json:"lastName" msgpack:"lastName"`
	DateOfEmployment string     `json:"dateOfEmployment" msgpack:"dateOfEmployment"`
	DateOfBirth      string     `json:"dateOfBirth" msgpack:"dateOfBirth"`
	Phone            string     `json:"phone" msgpack:"phone"`
	Email            string     `json:"email" msgpack:"email"`
	Department       Department `json:"department" msgpack:"department"`
	Position         Position   `json:"position" msgpack:"position"`
}

// FullName joins the name fields for display and toast messages.
func (e Employee) FullName() string {
	switch {
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	default:
		return e.FirstName + " " + e.LastName
	}
}

// IsValidDepartment reports whether d is one of the known departments.
func IsValidDepartment(d Department) bool {
	switch d {
	case DepartmentAnalytics, DepartmentTech, DepartmentHR, DepartmentMarketing:
		return true
	default:
		return false
	}
}

// IsValidPosition reports whether p is one of the known positions.
func IsValidPosition(p Position) bool {
	switch p {
	case PositionJunior, PositionMedior, PositionSenior, PositionManager:
		return true
	default:
		return false
	}
}
