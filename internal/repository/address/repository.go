package address

import (
	"context"

	"ecommerce-backoffice/internal/domain"
)

// Repository persists customer addresses and owns the default-exclusivity
// bulk-clear primitive.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Address, error)
	// ListByCustomer orders default addresses first, then newest first.
	// Callers rely on index 0 being the default when one exists.
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Address, error)
	ExistsForCustomer(ctx context.Context, key domain.AddressKey) (bool, error)
	Create(ctx context.Context, a domain.Address) (*domain.Address, error)
	Update(ctx context.Context, a domain.Address) (*domain.Address, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// UnsetDefaultForCustomer clears is_default on every address of the
	// customer except excludeID (0 excludes nothing).
	UnsetDefaultForCustomer(ctx context.Context, customerID, excludeID int64) error
}
