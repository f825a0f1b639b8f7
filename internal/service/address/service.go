package address

import (
	"context"
	"errors"

	"ecommerce-backoffice/internal/domain"
	addressrepo "ecommerce-backoffice/internal/repository/address"
	countryrepo "ecommerce-backoffice/internal/repository/country"
	customerrepo "ecommerce-backoffice/internal/repository/customer"
)

// Service orchestrates address CRUD. It enforces duplicate rejection and the
// default-exclusivity rule; the store provides the transactional mechanism.
// Addresses are always reached through their owning customer, so a mismatched
// customer/address pair reads as Not-Found.
type Service struct {
	addresses addressrepo.Repository
	customers customerrepo.Repository
	countries countryrepo.Repository
}

// New creates a Service.
func New(addresses addressrepo.Repository, customers customerrepo.Repository, countries countryrepo.Repository) *Service {
	return &Service{addresses: addresses, customers: customers, countries: countries}
}

// Input carries the fields accepted when creating an address.
type Input struct {
	AddressType domain.AddressType `json:"addressType"`
	Address     string             `json:"address"`
	PostalCode  string             `json:"postalCode"`
	City        string             `json:"city"`
	CountryID   int64              `json:"countryId"`
	IsDefault   bool               `json:"isDefault"`
}

// Patch carries a partial update; nil fields are left unchanged.
type Patch struct {
	AddressType *domain.AddressType `json:"addressType"`
	Address     *string             `json:"address"`
	PostalCode  *string             `json:"postalCode"`
	City        *string             `json:"city"`
	CountryID   *int64              `json:"countryId"`
	IsDefault   *bool               `json:"isDefault"`
}

// Add creates an address for an existing customer. The duplicate check runs
// before any default-flag mutation, so a rejected duplicate never disturbs
// the customer's existing defaults.
func (s *Service) Add(ctx context.Context, customerID int64, in Input) (*domain.Address, error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	addr := domain.Address{
		CustomerID:  customerID,
		AddressType: in.AddressType,
		Address:     in.Address,
		PostalCode:  in.PostalCode,
		City:        in.City,
		CountryID:   in.CountryID,
		IsDefault:   in.IsDefault,
	}
	if addr.AddressType == "" {
		addr.AddressType = domain.AddressTypeShipping
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkCountry(ctx, addr.CountryID); err != nil {
		return nil, err
	}

	exists, err := s.addresses.ExistsForCustomer(ctx, addr.Key())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyExists
	}

	// The store clears other defaults and inserts in one transaction.
	return s.addresses.Create(ctx, addr)
}

// Update merges the patch onto the stored address and persists it. Promoting
// a non-default row to default demotes every other address of the customer;
// the row being updated is excluded from the clear.
func (s *Service) Update(ctx context.Context, customerID, addressID int64, p Patch) (*domain.Address, error) {
	existing, err := s.addresses.GetByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if existing.CustomerID != customerID {
		return nil, domain.ErrNotFound
	}

	merged := *existing
	if p.AddressType != nil {
		merged.AddressType = *p.AddressType
	}
	if p.Address != nil {
		merged.Address = *p.Address
	}
	if p.PostalCode != nil {
		merged.PostalCode = *p.PostalCode
	}
	if p.City != nil {
		merged.City = *p.City
	}
	if p.CountryID != nil {
		merged.CountryID = *p.CountryID
	}
	if p.IsDefault != nil {
		merged.IsDefault = *p.IsDefault
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	if p.CountryID != nil {
		if err := s.checkCountry(ctx, merged.CountryID); err != nil {
			return nil, err
		}
	}

	return s.addresses.Update(ctx, merged)
}

// Delete removes one of the customer's addresses. Deleting the current
// default leaves the customer with no default address; re-selection is an
// explicit follow-up action.
func (s *Service) Delete(ctx context.Context, customerID, addressID int64) error {
	existing, err := s.addresses.GetByID(ctx, addressID)
	if err != nil {
		return err
	}
	if existing.CustomerID != customerID {
		return domain.ErrNotFound
	}

	removed, err := s.addresses.Delete(ctx, addressID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}

// ListForCustomer returns the customer's addresses, default first.
func (s *Service) ListForCustomer(ctx context.Context, customerID int64) ([]domain.Address, error) {
	return s.addresses.ListByCustomer(ctx, customerID)
}

// checkCountry rejects references to countries outside the seeded table. The
// bad reference is a malformed input, not a missing resource.
func (s *Service) checkCountry(ctx context.Context, countryID int64) error {
	if _, err := s.countries.GetByID(ctx, countryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ValidationError{Field: "countryId", Reason: "unknown country"}
		}
		return err
	}
	return nil
}
