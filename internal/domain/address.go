package domain

import (
	"regexp"
	"strings"
	"time"
)

// AddressType distinguishes shipping from billing addresses.
type AddressType string

const (
	AddressTypeShipping AddressType = "shipping"
	AddressTypeBilling  AddressType = "billing"
)

var postalCodePattern = regexp.MustCompile(`^[0-9A-Za-z][0-9A-Za-z -]*$`)

// Address is a postal address owned by a customer. CountryName is a read-side
// join field; writes reference countries by CountryID only.
type Address struct {
	ID          int64       `json:"id"`
	CustomerID  int64       `json:"customerId"`
	AddressType AddressType `json:"addressType"`
	Address     string      `json:"address"`
	PostalCode  string      `json:"postalCode"`
	City        string      `json:"city"`
	CountryID   int64       `json:"countryId"`
	CountryName string      `json:"countryName,omitempty"`
	IsDefault   bool        `json:"isDefault"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Validate checks required fields and the postal code pattern.
func (a Address) Validate() error {
	if a.CustomerID == 0 {
		return invalid("customerId", "required")
	}
	switch a.AddressType {
	case AddressTypeShipping, AddressTypeBilling:
	default:
		return invalid("addressType", "must be shipping or billing")
	}
	if strings.TrimSpace(a.Address) == "" {
		return invalid("address", "required")
	}
	if !postalCodePattern.MatchString(a.PostalCode) {
		return invalid("postalCode", "must be alphanumeric with spaces or hyphens")
	}
	if strings.TrimSpace(a.City) == "" {
		return invalid("city", "required")
	}
	if a.CountryID == 0 {
		return invalid("countryId", "required")
	}
	return nil
}

// Key returns the tuple on which address uniqueness is enforced. Matching is
// exact: no case folding, no whitespace normalization.
func (a Address) Key() AddressKey {
	return AddressKey{
		CustomerID:  a.CustomerID,
		AddressType: a.AddressType,
		Address:     a.Address,
		PostalCode:  a.PostalCode,
		City:        a.City,
		CountryID:   a.CountryID,
	}
}

// AddressKey identifies a duplicate-address candidate.
type AddressKey struct {
	CustomerID  int64
	AddressType AddressType
	Address     string
	PostalCode  string
	City        string
	CountryID   int64
}
