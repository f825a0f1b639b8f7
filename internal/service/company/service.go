package company

import (
	"context"
	"strings"

	"ecommerce-backoffice/internal/domain"
	companyrepo "ecommerce-backoffice/internal/repository/company"
	customerrepo "ecommerce-backoffice/internal/repository/customer"
)

// Service orchestrates company CRUD. SIRET and VAT uniqueness are checked
// independently of each other.
type Service struct {
	companies companyrepo.Repository
	customers customerrepo.Repository
}

// New creates a Service.
func New(companies companyrepo.Repository, customers customerrepo.Repository) *Service {
	return &Service{companies: companies, customers: customers}
}

// Input carries the fields accepted when creating a company.
type Input struct {
	CompanyName string `json:"companyName"`
	SiretNumber string `json:"siretNumber"`
	VATNumber   string `json:"vatNumber"`
}

// Patch carries a partial update; nil fields are left unchanged.
type Patch struct {
	CompanyName *string `json:"companyName"`
	SiretNumber *string `json:"siretNumber"`
	VATNumber   *string `json:"vatNumber"`
}

// Add creates a company for an existing customer.
func (s *Service) Add(ctx context.Context, customerID int64, in Input) (*domain.Company, error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	co := domain.Company{
		CustomerID:  customerID,
		CompanyName: strings.TrimSpace(in.CompanyName),
		SiretNumber: strings.TrimSpace(in.SiretNumber),
		VATNumber:   strings.TrimSpace(in.VATNumber),
	}
	if err := co.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkIdentifiers(ctx, co, 0); err != nil {
		return nil, err
	}

	return s.companies.Create(ctx, co)
}

// Get returns a company by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Company, error) {
	return s.companies.GetByID(ctx, id)
}

// Update merges the patch onto the stored company.
func (s *Service) Update(ctx context.Context, id int64, p Patch) (*domain.Company, error) {
	existing, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if p.CompanyName != nil {
		merged.CompanyName = strings.TrimSpace(*p.CompanyName)
	}
	if p.SiretNumber != nil {
		merged.SiretNumber = strings.TrimSpace(*p.SiretNumber)
	}
	if p.VATNumber != nil {
		merged.VATNumber = strings.TrimSpace(*p.VATNumber)
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkIdentifiers(ctx, merged, id); err != nil {
		return nil, err
	}

	return s.companies.Update(ctx, merged)
}

// Delete removes a company.
func (s *Service) Delete(ctx context.Context, id int64) error {
	removed, err := s.companies.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}

// ListForCustomer returns the customer's companies, newest first.
func (s *Service) ListForCustomer(ctx context.Context, customerID int64) ([]domain.Company, error) {
	return s.companies.ListByCustomer(ctx, customerID)
}

func (s *Service) checkIdentifiers(ctx context.Context, co domain.Company, excludeID int64) error {
	if co.SiretNumber != "" {
		exists, err := s.companies.SiretExists(ctx, co.SiretNumber, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrAlreadyExists
		}
	}
	if co.VATNumber != "" {
		exists, err := s.companies.VATExists(ctx, co.VATNumber, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrAlreadyExists
		}
	}
	return nil
}
