package domain

import (
	"errors"
	"testing"
)

func validAddress() Address {
	return Address{
		CustomerID:  1,
		AddressType: AddressTypeShipping,
		Address:     "12 Rue Neuve",
		PostalCode:  "4000",
		City:        "Liège",
		CountryID:   1,
	}
}

func TestAddressValidate_PostalCodes(t *testing.T) {
	cases := []struct {
		code string
		ok   bool
	}{
		{"4000", true},
		{"75008", true},
		{"SW1A 1AA", true},
		{"1000-100", true},
		{"", false},
		{" 4000", false},
		{"40_00", false},
		{"4000!", false},
	}
	for _, tc := range cases {
		a := validAddress()
		a.PostalCode = tc.code
		err := a.Validate()
		if tc.ok && err != nil {
			t.Fatalf("postal code %q: unexpected error %v", tc.code, err)
		}
		if !tc.ok {
			var vErr ValidationError
			if !errors.As(err, &vErr) || vErr.Field != "postalCode" {
				t.Fatalf("postal code %q: expected postalCode validation error, got %v", tc.code, err)
			}
		}
	}
}

func TestAddressValidate_RequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Address)
		field  string
	}{
		{"missing customer", func(a *Address) { a.CustomerID = 0 }, "customerId"},
		{"bad type", func(a *Address) { a.AddressType = "postal" }, "addressType"},
		{"empty street", func(a *Address) { a.Address = "  " }, "address"},
		{"empty city", func(a *Address) { a.City = "" }, "city"},
		{"missing country", func(a *Address) { a.CountryID = 0 }, "countryId"},
	}
	for _, tc := range cases {
		a := validAddress()
		tc.mutate(&a)
		err := a.Validate()
		var vErr ValidationError
		if !errors.As(err, &vErr) || vErr.Field != tc.field {
			t.Fatalf("%s: expected %s validation error, got %v", tc.name, tc.field, err)
		}
	}
}

func TestAddressKey_ExactMatch(t *testing.T) {
	a := validAddress()
	b := validAddress()
	if a.Key() != b.Key() {
		t.Fatalf("identical tuples should share a key")
	}

	b.City = "liège" // case matters, no normalization
	if a.Key() == b.Key() {
		t.Fatalf("case-differing cities should not collide")
	}

	c := validAddress()
	c.AddressType = AddressTypeBilling
	if a.Key() == c.Key() {
		t.Fatalf("type-differing addresses should not collide")
	}
}
