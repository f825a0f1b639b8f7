package country

import (
	"context"

	"ecommerce-backoffice/internal/domain"
)

// Repository reads the countries reference table.
type Repository interface {
	List(ctx context.Context) ([]domain.Country, error)
	GetByID(ctx context.Context, id int64) (*domain.Country, error)
}
