package repository

import (
	"context"
	"errors"

	"relivo-backend/models"

	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// UserRepositoryInterface defines the operations available on users.
// WithTx returns a copy of the repository bound to the given transaction;
// mutations made through it are atomic with the rest of the transaction.
type UserRepositoryInterface interface {
	WithTx(tx bun.Tx) UserRepositoryInterface
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// VerificationRepositoryInterface manages one-time verification codes.
type VerificationRepositoryInterface interface {
	WithTx(tx bun.Tx) VerificationRepositoryInterface
	Replace(ctx context.Context, code *models.VerificationCode) error
	GetByEmailAndCode(ctx context.Context, email, code string) (*models.VerificationCode, error)
	Delete(ctx context.Context, id int64) error
	DeleteByEmail(ctx context.Context, email string) error
	PurgeExpired(ctx context.Context) (int64, error)
}

// OrganizationRepositoryInterface defines the operations available on
// organization applications.
type OrganizationRepositoryInterface interface {
	WithTx(tx bun.Tx) OrganizationRepositoryInterface
	Create(ctx context.Context, org *models.Organization) (*models.Organization, error)
	GetByID(ctx context.Context, id int64) (*models.Organization, error)
	GetByUserID(ctx context.Context, userID string) (*models.Organization, error)
	List(ctx context.Context, status models.OrganizationStatus, skip, limit int) ([]*models.Organization, error)
	ListVerifiedOwner(ctx context.Context, status models.OrganizationStatus) ([]*models.Organization, error)
	Update(ctx context.Context, org *models.Organization) error
}
