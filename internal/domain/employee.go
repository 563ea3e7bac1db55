package domain

import (
	"strings"
	"time"
)

// Employee is a member of the clinic staff. DepartmentID is a weak reference.
type Employee struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Role         string
	DepartmentID *string
	HireDate     time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EmployeeDetail is an employee with its department reference resolved.
// Department is nil when the employee has none or it no longer resolves.
type EmployeeDetail struct {
	Employee
	Department *DepartmentRef
}

// EmployeeInput carries the writable fields of an employee. Nil HireDate and
// IsActive mean "not supplied".
type EmployeeInput struct {
	FirstName    string     `label:"First name" validate:"required,max=100"`
	LastName     string     `label:"Last name"  validate:"required,max=100"`
	Email        string     `label:"Email"      validate:"required,max=254"`
	Phone        string     `label:"Phone"      validate:"max=50"`
	Role         string     `label:"Role"       validate:"max=100"`
	DepartmentID *string    `label:"Department" validate:"omitempty,uuid"`
	HireDate     *time.Time `label:"Hire date"`
	IsActive     *bool      `label:"Active"`
}

// Normalize trims text fields, lowercases the email, canonicalizes the
// department id and treats a blank department as no department.
func (in EmployeeInput) Normalize() EmployeeInput {
	out := in
	out.FirstName = strings.TrimSpace(in.FirstName)
	out.LastName = strings.TrimSpace(in.LastName)
	out.Email = strings.ToLower(strings.TrimSpace(in.Email))
	out.Phone = strings.TrimSpace(in.Phone)
	out.Role = strings.TrimSpace(in.Role)
	out.DepartmentID = nil
	if in.DepartmentID != nil {
		if id := strings.TrimSpace(*in.DepartmentID); id != "" {
			if canonical, ok := CanonicalID(id); ok {
				id = canonical
			}
			out.DepartmentID = &id
		}
	}
	if in.HireDate != nil && in.HireDate.IsZero() {
		out.HireDate = nil
	}
	return out
}

// Validate returns the field complaints for a normalized input.
func (in EmployeeInput) Validate() []string {
	return complaints(validate.Struct(in))
}
