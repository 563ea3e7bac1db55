package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// EmployeeRequest payload for create and update. Department is a department
// id, null or "" for none.
type EmployeeRequest struct {
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Role       string  `json:"role"`
	Department *string `json:"department"`
	HireDate   *Date   `json:"hireDate"`
	IsActive   *bool   `json:"isActive"`
}

// DepartmentRef is the department summary embedded in employee responses.
type DepartmentRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EmployeeResponse is the public representation of an employee.
type EmployeeResponse struct {
	ID         string         `json:"id"`
	FirstName  string         `json:"firstName"`
	LastName   string         `json:"lastName"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Role       string         `json:"role"`
	Department *DepartmentRef `json:"department"`
	HireDate   time.Time      `json:"hireDate"`
	IsActive   bool           `json:"isActive"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

const dateLayout = "2006-01-02"

// Date accepts either a calendar date or an RFC 3339 timestamp.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler. null and "" leave the zero value.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("hireDate must be a string: %w", err)
	}
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("hireDate %q is not a date", raw)
	}
	d.Time = t
	return nil
}

// Ptr returns the parsed time, or nil when d is nil or empty.
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
