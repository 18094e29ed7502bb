package dal

import (
	"context"
	"database/sql"
	"fmt"

	"relivo-backend/models"
	"relivo-backend/utils/logger"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// Client wraps the bun database handle. One request is served on one
// connection; multi-step mutations go through RunInTx.
type Client struct {
	db     *bun.DB
	config *models.Config
	logger logger.Logger
}

// NewClient opens the configured database and returns a client. Postgres is
// the production dialect; SQLite backs local development and tests.
func NewClient(cfg *models.Config, log logger.Logger) (*Client, error) {
	var db *bun.DB

	switch cfg.DatabaseDialect {
	case "postgres":
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DatabaseURL)))
		db = bun.NewDB(sqldb, pgdialect.New())
	case "sqlite":
		sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// A single connection keeps in-memory databases alive across calls
		sqldb.SetMaxOpenConns(1)
		db = bun.NewDB(sqldb, sqlitedialect.New())
	default:
		return nil, fmt.Errorf("unsupported database dialect: %s", cfg.DatabaseDialect)
	}

	if err := db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Infof("Database client initialized (%s)", cfg.DatabaseDialect)

	return &Client{
		db:     db,
		config: cfg,
		logger: log,
	}, nil
}

// DB exposes the underlying bun handle for query building.
func (c *Client) DB() *bun.DB {
	return c.db
}

// DialectName reports the active SQL dialect ("pg" or "sqlite").
func (c *Client) DialectName() string {
	return c.db.Dialect().Name().String()
}

// RunInTx executes fn inside a database transaction. The transaction is
// rolled back when fn returns an error.
func (c *Client) RunInTx(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	return c.db.RunInTx(ctx, &sql.TxOptions{}, fn)
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	return c.db.Close()
}
