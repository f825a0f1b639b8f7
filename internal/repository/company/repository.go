package company

import (
	"context"

	"ecommerce-backoffice/internal/domain"
)

// Repository persists customer companies.
type Repository interface {
	Create(ctx context.Context, co domain.Company) (*domain.Company, error)
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Company, error)
	Update(ctx context.Context, co domain.Company) (*domain.Company, error)
	Delete(ctx context.Context, id int64) (bool, error)
	SiretExists(ctx context.Context, siret string, excludeID int64) (bool, error)
	VATExists(ctx context.Context, vat string, excludeID int64) (bool, error)
}
