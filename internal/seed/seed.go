package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type countrySeed struct {
	ISOCode string
	Name    string
}

var countries = []countrySeed{
	{"BE", "Belgium"},
	{"FR", "France"},
	{"DE", "Germany"},
	{"LU", "Luxembourg"},
	{"NL", "Netherlands"},
	{"ES", "Spain"},
	{"IT", "Italy"},
	{"PT", "Portugal"},
	{"GB", "United Kingdom"},
	{"US", "United States"},
}

// Apply inserts the countries reference data. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
INSERT INTO countries (iso_code, name)
VALUES ($1, $2)
ON CONFLICT (iso_code) DO UPDATE SET name = EXCLUDED.name
`
	for _, c := range countries {
		if _, err := pool.Exec(ctx, q, c.ISOCode, c.Name); err != nil {
			return fmt.Errorf("upsert country %s: %w", c.ISOCode, err)
		}
	}
	return nil
}
