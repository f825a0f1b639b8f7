package address

import (
	"context"
	"errors"
	"io"
	"log"

	"ecommerce-backoffice/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const addressColumns = `a.id, a.customer_id, a.address_type, a.address, a.postal_code, a.city, a.country_id, co.name, a.is_default, a.created_at, a.updated_at`

const clearDefaultsQuery = `UPDATE addresses SET is_default = FALSE, updated_at = now() WHERE customer_id = $1 AND id <> $2 AND is_default`

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	const q = `
SELECT ` + addressColumns + `
FROM addresses a
JOIN countries co ON co.id = a.country_id
WHERE a.id = $1
`
	return r.scanAddress(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Address, error) {
	const q = `
SELECT ` + addressColumns + `
FROM addresses a
JOIN countries co ON co.id = a.country_id
WHERE a.customer_id = $1
ORDER BY a.is_default DESC, a.created_at DESC, a.id DESC
`
	rows, err := r.pool.Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.AddressType, &a.Address, &a.PostalCode, &a.City, &a.CountryID, &a.CountryName, &a.IsDefault, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) ExistsForCustomer(ctx context.Context, key domain.AddressKey) (bool, error) {
	const q = `
SELECT EXISTS (
    SELECT 1 FROM addresses
    WHERE customer_id = $1 AND address_type = $2 AND address = $3 AND postal_code = $4 AND city = $5 AND country_id = $6
)
`
	var exists bool
	err := r.pool.QueryRow(ctx, q, key.CustomerID, key.AddressType, key.Address, key.PostalCode, key.City, key.CountryID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create inserts the address. When it is flagged default, the clear of other
// defaults and the insert run in one transaction so concurrent readers never
// observe two defaults.
func (r *postgresRepo) Create(ctx context.Context, a domain.Address) (*domain.Address, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if a.IsDefault {
		if _, err := tx.Exec(ctx, clearDefaultsQuery, a.CustomerID, int64(0)); err != nil {
			return nil, err
		}
	}

	const q = `
INSERT INTO addresses (customer_id, address_type, address, postal_code, city, country_id, is_default)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at, updated_at
`
	saved := a
	err = tx.QueryRow(ctx, q, a.CustomerID, a.AddressType, a.Address, a.PostalCode, a.City, a.CountryID, a.IsDefault).
		Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return nil, r.mapError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, saved.ID)
}

// Update persists the full entity. Promotion to default clears the other
// defaults in the same transaction, excluding the row being updated.
func (r *postgresRepo) Update(ctx context.Context, a domain.Address) (*domain.Address, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if a.IsDefault {
		if _, err := tx.Exec(ctx, clearDefaultsQuery, a.CustomerID, a.ID); err != nil {
			return nil, err
		}
	}

	const q = `
UPDATE addresses
SET address_type = $2, address = $3, postal_code = $4, city = $5, country_id = $6, is_default = $7, updated_at = now()
WHERE id = $1
RETURNING id
`
	var id int64
	if err := tx.QueryRow(ctx, q, a.ID, a.AddressType, a.Address, a.PostalCode, a.City, a.CountryID, a.IsDefault).Scan(&id); err != nil {
		return nil, r.mapError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepo) UnsetDefaultForCustomer(ctx context.Context, customerID, excludeID int64) error {
	_, err := r.pool.Exec(ctx, clearDefaultsQuery, customerID, excludeID)
	return err
}

func (r *postgresRepo) scanAddress(row pgx.Row) (*domain.Address, error) {
	var a domain.Address
	err := row.Scan(&a.ID, &a.CustomerID, &a.AddressType, &a.Address, &a.PostalCode, &a.City, &a.CountryID, &a.CountryName, &a.IsDefault, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, r.mapError(err)
	}
	return &a, nil
}

func (r *postgresRepo) mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return domain.ErrAlreadyExists
		case "23503":
			// customer or country reference is gone
			return domain.ErrNotFound
		}
	}
	r.logger.Printf("address repo: query error=%v", err)
	return err
}
