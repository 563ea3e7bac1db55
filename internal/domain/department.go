package domain

import (
	"strings"
	"time"
)

// Department represents a clinic department employees can be assigned to.
type Department struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DepartmentInput carries the writable fields of a department.
type DepartmentInput struct {
	Name        string `label:"Department name" validate:"required,max=200"`
	Description string `label:"Description"     validate:"max=2000"`
}

// Normalize trims surrounding whitespace from every field.
func (in DepartmentInput) Normalize() DepartmentInput {
	return DepartmentInput{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
	}
}

// Validate returns the field complaints for a normalized input.
func (in DepartmentInput) Validate() []string {
	return complaints(validate.Struct(in))
}

// DepartmentRef is the read-only projection embedded into employees.
type DepartmentRef struct {
	ID   string
	Name string
}
