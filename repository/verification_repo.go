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

// VerificationRepository persists one-time verification codes. At most one
// code exists per email; issuing a new one removes any prior code.
type VerificationRepository struct {
	db  bun.IDB
	log logger.Logger
}

// NewVerificationRepository creates a verification code repository.
func NewVerificationRepository(client *dal.Client, log logger.Logger) VerificationRepositoryInterface {
	return &VerificationRepository{db: client.DB(), log: log}
}

// WithTx returns a copy of the repository that issues its queries through tx.
func (r *VerificationRepository) WithTx(tx bun.Tx) VerificationRepositoryInterface {
	return &VerificationRepository{db: tx, log: r.log}
}

// Replace deletes any existing codes for the email and inserts the new one.
func (r *VerificationRepository) Replace(ctx context.Context, code *models.VerificationCode) error {
	if _, err := r.db.NewDelete().
		Model((*models.VerificationCode)(nil)).
		Where("email = ?", code.Email).
		Exec(ctx); err != nil {
		return err
	}

	code.CreatedAt = time.Now().UTC()
	if _, err := r.db.NewInsert().Model(code).Exec(ctx); err != nil {
		r.log.Errorf("Failed to store verification code for %s: %v", code.Email, err)
		return err
	}
	return nil
}

// GetByEmailAndCode fetches the code row matching both the email and the
// submitted code value.
func (r *VerificationRepository) GetByEmailAndCode(ctx context.Context, email, code string) (*models.VerificationCode, error) {
	vc := new(models.VerificationCode)
	err := r.db.NewSelect().
		Model(vc).
		Where("email = ?", email).
		Where("code = ?", code).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return vc, nil
}

// Delete removes a single code row. Codes are single-use; callers delete the
// row as soon as it has been consumed.
func (r *VerificationRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.NewDelete().
		Model((*models.VerificationCode)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

// DeleteByEmail removes all codes issued to an email address.
func (r *VerificationRepository) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.db.NewDelete().
		Model((*models.VerificationCode)(nil)).
		Where("email = ?", email).
		Exec(ctx)
	return err
}

// PurgeExpired deletes every code whose expiry has passed and reports how
// many rows were removed.
func (r *VerificationRepository) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := r.db.NewDelete().
		Model((*models.VerificationCode)(nil)).
		Where("expires_at < ?", time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}
