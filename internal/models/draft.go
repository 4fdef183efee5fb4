package models

import "fmt"

// Draft field names, as used in the add form and on the create request.
const (
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPhoneNumber   = "phoneNumber"
	FieldDepartment    = "department"
	FieldDateOfJoining = "dateOfJoining"
	FieldRole          = "role"
)

// DraftFields lists the editable fields in form order.
var DraftFields = []string{
	FieldName, FieldEmail, FieldPhoneNumber, FieldDepartment, FieldDateOfJoining, FieldRole,
}

// Draft is the write shape sent to POST /api/employees. It has no id; the
// backend assigns one.
type Draft struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	Department    string `json:"department"`
	DateOfJoining string `json:"dateOfJoining"` // YYYY-MM-DD
	Role          string `json:"role"`
}

// With returns a copy of d with a single field replaced. The receiver is
// left untouched.
func (d Draft) With(field, value string) (Draft, error) {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhoneNumber:
		d.PhoneNumber = value
	case FieldDepartment:
		d.Department = value
	case FieldDateOfJoining:
		d.DateOfJoining = value
	case FieldRole:
		d.Role = value
	default:
		return d, fmt.Errorf("unknown draft field %q", field)
	}
	return d, nil
}

// Get returns the current value of field, or "" for an unknown field.
func (d Draft) Get(field string) string {
	switch field {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldPhoneNumber:
		return d.PhoneNumber
	case FieldDepartment:
		return d.Department
	case FieldDateOfJoining:
		return d.DateOfJoining
	case FieldRole:
		return d.Role
	}
	return ""
}

// IsEmpty reports whether every field is blank.
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}
