package infrastructure

import (
	"context"
	"fmt"
	"time"

	"relivo-backend/dal"
	"relivo-backend/models"
	"relivo-backend/utils/logger"

	"github.com/uptrace/bun"
)

// Schema owns table creation and the idempotent column migrations. Both are
// safe to re-run: existing tables and columns are left untouched.
type Schema struct {
	client *dal.Client
	logger logger.Logger
}

// NewSchema creates the schema manager.
func NewSchema(client *dal.Client, log logger.Logger) *Schema {
	return &Schema{
		client: client,
		logger: log,
	}
}

// columnMigration adds one column to an existing table. Types differ per
// dialect because the sqlite test database has no uuid or jsonb.
type columnMigration struct {
	Table      string
	Column     string
	PGType     string
	SQLiteType string
}

var columnMigrations = []columnMigration{
	{Table: "organizations", Column: "rejection_reason", PGType: "TEXT", SQLiteType: "TEXT"},
	{Table: "grants", Column: "creator_id", PGType: "uuid REFERENCES users(id)", SQLiteType: "TEXT"},
	{Table: "grants", Column: "organization_id", PGType: "BIGINT REFERENCES organizations(id)", SQLiteType: "INTEGER"},
	{Table: "grants", Column: "rejection_reason", PGType: "TEXT", SQLiteType: "TEXT"},
	{Table: "users", Column: "must_change_password", PGType: "BOOLEAN NOT NULL DEFAULT false", SQLiteType: "BOOLEAN NOT NULL DEFAULT false"},
}

// CreateTables creates every table the service uses. Existing tables are
// kept as-is.
func (s *Schema) CreateTables(ctx context.Context) error {
	db := s.client.DB()

	tables := []interface{}{
		(*models.User)(nil),
		(*models.VerificationCode)(nil),
		(*models.Organization)(nil),
		(*models.Grant)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	s.logger.Info("Database tables ensured")
	return nil
}

// RunMigrations applies the column migrations, then backfills missing grant
// deadlines. Each step checks current state first, so a second run is a
// no-op.
func (s *Schema) RunMigrations(ctx context.Context) error {
	db := s.client.DB()

	for _, m := range columnMigrations {
		exists, err := s.columnExists(ctx, db, m.Table, m.Column)
		if err != nil {
			return fmt.Errorf("failed to inspect %s.%s: %w", m.Table, m.Column, err)
		}
		if exists {
			s.logger.Debugf("Column %s.%s already present, skipping", m.Table, m.Column)
			continue
		}

		colType := m.PGType
		if s.client.DialectName() == "sqlite" {
			colType = m.SQLiteType
		}

		ddl := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", m.Table, m.Column, colType)
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to add column %s.%s: %w", m.Table, m.Column, err)
		}
		s.logger.Infof("Added column %s.%s", m.Table, m.Column)
	}

	if err := s.backfillGrantDeadlines(ctx); err != nil {
		return err
	}

	s.logger.Info("Migrations completed")
	return nil
}

// columnExists checks the catalog for the column. Postgres exposes
// information_schema; sqlite only has PRAGMA table_info.
func (s *Schema) columnExists(ctx context.Context, db *bun.DB, table, column string) (bool, error) {
	if s.client.DialectName() == "sqlite" {
		rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
		if err != nil {
			return false, err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				cid       int
				name      string
				colType   string
				notNull   int
				dfltValue interface{}
				pk        int
			)
			if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
				return false, err
			}
			if name == column {
				return true, nil
			}
		}
		return false, rows.Err()
	}

	var count int
	err := db.QueryRowContext(ctx,
		"SELECT count(*) FROM information_schema.columns WHERE table_name = ? AND column_name = ?",
		table, column,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// backfillGrantDeadlines gives grants without a deadline a default one 30
// days out, so deadline sorting never trips over NULL.
func (s *Schema) backfillGrantDeadlines(ctx context.Context) error {
	deadline := time.Now().UTC().AddDate(0, 0, 30)

	res, err := s.client.DB().NewUpdate().
		Model((*models.Grant)(nil)).
		Set("deadline = ?", deadline).
		Where("deadline IS NULL").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to backfill grant deadlines: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		s.logger.Infof("Backfilled %d grant deadlines", n)
	}
	return nil
}

// Setup runs table creation followed by migrations, the full bootstrap used
// by the -migrate flag and the test harness.
func (s *Schema) Setup(ctx context.Context) error {
	if err := s.CreateTables(ctx); err != nil {
		return err
	}
	return s.RunMigrations(ctx)
}
