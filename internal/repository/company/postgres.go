package company

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

const companyColumns = `id, customer_id, company_name, COALESCE(siret_number, ''), COALESCE(vat_number, ''), created_at`

func (r *postgresRepo) Create(ctx context.Context, co domain.Company) (*domain.Company, error) {
	if err := co.Validate(); err != nil {
		return nil, err
	}

	const q = `
INSERT INTO companies (customer_id, company_name, siret_number, vat_number)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
RETURNING ` + companyColumns
	return r.scanCompany(r.pool.QueryRow(ctx, q, co.CustomerID, co.CompanyName, co.SiretNumber, co.VATNumber))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	const q = `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanCompany(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Company, error) {
	const q = `SELECT ` + companyColumns + ` FROM companies WHERE customer_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Company
	for rows.Next() {
		var co domain.Company
		if err := rows.Scan(&co.ID, &co.CustomerID, &co.CompanyName, &co.SiretNumber, &co.VATNumber, &co.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, co)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Update(ctx context.Context, co domain.Company) (*domain.Company, error) {
	if err := co.Validate(); err != nil {
		return nil, err
	}

	const q = `
UPDATE companies
SET company_name = $2, siret_number = NULLIF($3, ''), vat_number = NULLIF($4, '')
WHERE id = $1
RETURNING ` + companyColumns
	return r.scanCompany(r.pool.QueryRow(ctx, q, co.ID, co.CompanyName, co.SiretNumber, co.VATNumber))
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepo) SiretExists(ctx context.Context, siret string, excludeID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM companies WHERE siret_number = $1 AND id <> $2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, q, siret, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresRepo) VATExists(ctx context.Context, vat string, excludeID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM companies WHERE vat_number = $1 AND id <> $2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, q, vat, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresRepo) scanCompany(row pgx.Row) (*domain.Company, error) {
	var co domain.Company
	err := row.Scan(&co.ID, &co.CustomerID, &co.CompanyName, &co.SiretNumber, &co.VATNumber, &co.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("company repo: scan error=%v", err)
		return nil, err
	}
	return &co, nil
}
