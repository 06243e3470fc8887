package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dtroode/chessacademy-server/database"
)

// Connection is the process-wide pool. It is opened once at startup and
// closed on shutdown.
type Connection struct {
	*pgxpool.Pool
}

// NewConnection opens the pool, checks the database is reachable and applies
// pending migrations.
func NewConnection(ctx context.Context, dsn string) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	if err := database.Migrate(ctx, dsn); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Connection{
		Pool: pool,
	}, nil
}

func (c *Connection) Close() error {
	if c.Pool != nil {
		c.Pool.Close()
	}
	return nil
}

// Ping reports whether the database answers. It backs the health check.
func (c *Connection) Ping(ctx context.Context) error {
	if c.Pool == nil {
		return fmt.Errorf("connection pool is nil")
	}
	return c.Pool.Ping(ctx)
}
