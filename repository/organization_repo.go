package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"relivo-backend/dal"
	"relivo-backend/models"
	"relivo-backend/utils/logger"

	"github.com/uptrace/bun"
)

// OrganizationRepository persists organization applications together with
// their owning user.
type OrganizationRepository struct {
	db  bun.IDB
	log logger.Logger
}

// NewOrganizationRepository creates an organization repository.
func NewOrganizationRepository(client *dal.Client, log logger.Logger) OrganizationRepositoryInterface {
	return &OrganizationRepository{db: client.DB(), log: log}
}

// WithTx returns a copy of the repository that issues its queries through tx.
func (r *OrganizationRepository) WithTx(tx bun.Tx) OrganizationRepositoryInterface {
	return &OrganizationRepository{db: tx, log: r.log}
}

// Create inserts a new organization application.
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) (*models.Organization, error) {
	now := time.Now().UTC()
	org.CreatedAt = now
	org.UpdatedAt = &now

	if _, err := r.db.NewInsert().Model(org).Exec(ctx); err != nil {
		r.log.Errorf("Failed to create organization %q: %v", org.Name, err)
		return nil, err
	}
	return org, nil
}

// GetByID fetches an organization and its owner by primary key.
func (r *OrganizationRepository) GetByID(ctx context.Context, id int64) (*models.Organization, error) {
	org := new(models.Organization)
	err := r.db.NewSelect().
		Model(org).
		Relation("Owner").
		Where("org.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return org, nil
}

// GetByUserID fetches the organization owned by the given user.
func (r *OrganizationRepository) GetByUserID(ctx context.Context, userID string) (*models.Organization, error) {
	org := new(models.Organization)
	err := r.db.NewSelect().
		Model(org).
		Where("org.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return org, nil
}

// List returns organizations ordered by creation time, newest first. An
// empty status matches all statuses; skip/limit paginate the result.
func (r *OrganizationRepository) List(ctx context.Context, status models.OrganizationStatus, skip, limit int) ([]*models.Organization, error) {
	var orgs []*models.Organization

	q := r.db.NewSelect().
		Model(&orgs).
		Relation("Owner").
		Order("org.created_at DESC")
	if status != "" {
		q = q.Where("org.status = ?", status)
	}
	if skip > 0 {
		q = q.Offset(skip)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return orgs, nil
}

// ListVerifiedOwner returns organizations whose owning account has completed
// email verification. An empty status matches all statuses.
func (r *OrganizationRepository) ListVerifiedOwner(ctx context.Context, status models.OrganizationStatus) ([]*models.Organization, error) {
	var orgs []*models.Organization

	q := r.db.NewSelect().
		Model(&orgs).
		Relation("Owner").
		Join("JOIN users AS u ON u.id = org.user_id").
		Where("u.is_verified = ?", true).
		Order("org.created_at DESC")
	if status != "" {
		q = q.Where("org.status = ?", status)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return orgs, nil
}

// Update writes back all columns of an existing organization.
func (r *OrganizationRepository) Update(ctx context.Context, org *models.Organization) error {
	now := time.Now().UTC()
	org.UpdatedAt = &now

	res, err := r.db.NewUpdate().
		Model(org).
		WherePK().
		Exec(ctx)
	if err != nil {
		r.log.Errorf("Failed to update organization %d: %v", org.ID, err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
