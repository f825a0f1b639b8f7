package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolSettings carries the pool tuning knobs exposed through configuration.
// Zero values keep the pgxpool defaults.
type PoolSettings struct {
	MaxConns     int32
	ConnIdleTime time.Duration
	ConnLifetime time.Duration
}

// Connect opens a pgx connection pool with the given tuning and verifies
// connectivity with a short ping.
func Connect(ctx context.Context, dsn string, settings PoolSettings) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	if settings.MaxConns > 0 {
		cfg.MaxConns = settings.MaxConns
	}
	if settings.ConnIdleTime > 0 {
		cfg.MaxConnIdleTime = settings.ConnIdleTime
	}
	if settings.ConnLifetime > 0 {
		cfg.MaxConnLifetime = settings.ConnLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return pool, nil
}
