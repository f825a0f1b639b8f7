package domain

import (
	"errors"
	"testing"
	"time"
)

func TestCustomerFullName_Trims(t *testing.T) {
	c := Customer{FirstName: "Ana", LastName: "Bo"}
	if got := c.FullName(); got != "Ana Bo" {
		t.Fatalf("expected %q, got %q", "Ana Bo", got)
	}

	c = Customer{FirstName: "Ana", LastName: ""}
	if got := c.FullName(); got != "Ana" {
		t.Fatalf("expected trailing space trimmed, got %q", got)
	}
}

func TestCustomerValidate_Birthday(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	past := now.AddDate(-30, 0, 0)
	c := Customer{FirstName: "Ana", LastName: "Bo", Email: "ana@x.com", Birthday: &past}
	if err := c.Validate(now); err != nil {
		t.Fatalf("past birthday should be valid: %v", err)
	}

	future := now.AddDate(1, 0, 0)
	c.Birthday = &future
	err := c.Validate(now)
	var vErr ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "birthday" {
		t.Fatalf("expected birthday validation error, got %v", err)
	}
}

func TestCustomerValidate_Email(t *testing.T) {
	c := Customer{FirstName: "Ana", LastName: "Bo", Email: "not-an-email"}
	err := c.Validate(time.Now())
	var vErr ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "email" {
		t.Fatalf("expected email validation error, got %v", err)
	}
}
