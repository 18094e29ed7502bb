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

// UserRepository persists user accounts.
type UserRepository struct {
	db  bun.IDB
	log logger.Logger
}

// NewUserRepository creates a user repository backed by the given client.
func NewUserRepository(client *dal.Client, log logger.Logger) UserRepositoryInterface {
	return &UserRepository{db: client.DB(), log: log}
}

// WithTx returns a copy of the repository that issues its queries through tx.
func (r *UserRepository) WithTx(tx bun.Tx) UserRepositoryInterface {
	return &UserRepository{db: tx, log: r.log}
}

// Create inserts a new user row.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = &now

	if _, err := r.db.NewInsert().Model(user).Exec(ctx); err != nil {
		r.log.Errorf("Failed to create user %s: %v", user.Email, err)
		return nil, err
	}
	return user, nil
}

// GetByEmail fetches a user by email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("email = ?", email).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetByID fetches a user by primary key.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("usr.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update writes back all columns of an existing user.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.UpdatedAt = &now

	res, err := r.db.NewUpdate().
		Model(user).
		WherePK().
		Exec(ctx)
	if err != nil {
		r.log.Errorf("Failed to update user %s: %v", user.ID, err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
