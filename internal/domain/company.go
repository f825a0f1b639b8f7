package domain

import (
	"regexp"
	"strings"
	"time"
)

var (
	siretPattern = regexp.MustCompile(`^[0-9]{14}$`)
	vatPattern   = regexp.MustCompile(`^[A-Za-z]{2}[0-9A-Za-z]{2,12}$`)
)

// Company is an optional business record attached to a customer.
type Company struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customerId"`
	CompanyName string    `json:"companyName"`
	SiretNumber string    `json:"siretNumber,omitempty"`
	VATNumber   string    `json:"vatNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate checks required fields and identifier formats. SIRET and VAT are
// both optional but must match their pattern when present.
func (co Company) Validate() error {
	if co.CustomerID == 0 {
		return invalid("customerId", "required")
	}
	if strings.TrimSpace(co.CompanyName) == "" {
		return invalid("companyName", "required")
	}
	if co.SiretNumber != "" && !siretPattern.MatchString(co.SiretNumber) {
		return invalid("siretNumber", "must be 14 digits")
	}
	if co.VATNumber != "" && !vatPattern.MatchString(co.VATNumber) {
		return invalid("vatNumber", "must be a 2-letter country prefix followed by 2-12 alphanumerics")
	}
	return nil
}
