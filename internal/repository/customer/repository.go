package customer

import (
	"context"

	"ecommerce-backoffice/internal/domain"
)

// Repository persists and fetches customers.
type Repository interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, search string) ([]domain.Customer, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
}
