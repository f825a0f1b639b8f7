package domain

import (
	"strings"
	"time"
)

// Customer is a back-office customer record.
type Customer struct {
	ID          int64      `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	Birthday    *time.Time `json:"birthday,omitempty"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// FullName joins first and last name, trimming outer whitespace.
func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Validate checks required fields and the birthday rule.
func (c Customer) Validate(now time.Time) error {
	if strings.TrimSpace(c.FirstName) == "" {
		return invalid("firstName", "required")
	}
	if strings.TrimSpace(c.LastName) == "" {
		return invalid("lastName", "required")
	}
	email := strings.TrimSpace(c.Email)
	if email == "" {
		return invalid("email", "required")
	}
	if !strings.Contains(email, "@") {
		return invalid("email", "malformed")
	}
	if c.Birthday != nil && c.Birthday.After(now) {
		return invalid("birthday", "must not be in the future")
	}
	return nil
}
