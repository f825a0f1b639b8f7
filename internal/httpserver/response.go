package httpserver

import (
	"errors"
	"net/http"
	"time"

	"ecommerce-backoffice/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps the domain error taxonomy onto HTTP statuses. Unanticipated
// failures stay a generic 500 so internals never leak to the admin UI.
func writeError(c *gin.Context, err error) {
	var vErr domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

type customerDTO struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Birthday    string    `json:"birthday,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toCustomerDTO(c domain.Customer) customerDTO {
	birthday := ""
	if c.Birthday != nil {
		birthday = c.Birthday.Format(time.DateOnly)
	}
	return customerDTO{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		FullName:    c.FullName(),
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Birthday:    birthday,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCustomerDTOs(customers []domain.Customer) []customerDTO {
	out := make([]customerDTO, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerDTO(c))
	}
	return out
}

type addressDTO struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customerId"`
	AddressType string    `json:"addressType"`
	Address     string    `json:"address"`
	PostalCode  string    `json:"postalCode"`
	City        string    `json:"city"`
	CountryID   int64     `json:"countryId"`
	CountryName string    `json:"countryName"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toAddressDTO(a domain.Address) addressDTO {
	return addressDTO{
		ID:          a.ID,
		CustomerID:  a.CustomerID,
		AddressType: string(a.AddressType),
		Address:     a.Address,
		PostalCode:  a.PostalCode,
		City:        a.City,
		CountryID:   a.CountryID,
		CountryName: a.CountryName,
		IsDefault:   a.IsDefault,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toAddressDTOs(addresses []domain.Address) []addressDTO {
	out := make([]addressDTO, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, toAddressDTO(a))
	}
	return out
}

type companyDTO struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customerId"`
	CompanyName string    `json:"companyName"`
	SiretNumber string    `json:"siretNumber,omitempty"`
	VATNumber   string    `json:"vatNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toCompanyDTO(co domain.Company) companyDTO {
	return companyDTO{
		ID:          co.ID,
		CustomerID:  co.CustomerID,
		CompanyName: co.CompanyName,
		SiretNumber: co.SiretNumber,
		VATNumber:   co.VATNumber,
		CreatedAt:   co.CreatedAt,
	}
}

func toCompanyDTOs(companies []domain.Company) []companyDTO {
	out := make([]companyDTO, 0, len(companies))
	for _, co := range companies {
		out = append(out, toCompanyDTO(co))
	}
	return out
}
