package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Departments is the closed set of departments an employee can belong to.
var Departments = []string{"HR", "Engineering", "Marketing", "Finance", "Operations"}

// IsValidDepartment checks if dept is one of Departments
func IsValidDepartment(dept string) bool {
	for _, d := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}

// EmployeeID is the backend-assigned identifier. The backend may send it
// as a JSON string or a number; either way it is kept opaque.
type EmployeeID string

func (id *EmployeeID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = EmployeeID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("employee id: %w", err)
	}
	*id = EmployeeID(n.String())
	return nil
}

// Employee is the read shape returned by GET /api/employees.
type Employee struct {
	ID            EmployeeID `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	PhoneNumber   string     `json:"phone_number"`
	Department    string     `json:"department"`
	DateOfJoining string     `json:"date_of_joining"`
	Role          string     `json:"role"`
}
