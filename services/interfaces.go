package services

import (
	"context"

	"relivo-backend/models"

	"github.com/uptrace/bun"
)

// TxRunner executes a function inside a database transaction. Implemented by
// dal.Client.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error
}

// TokenIssuer mints signed bearer tokens for authenticated users. Implemented
// by middelware.JWTManager.
type TokenIssuer interface {
	GenerateToken(user *models.User) (string, error)
}

// MailQueue accepts rendered emails for asynchronous delivery. Enqueue never
// blocks; it reports false when the job was dropped.
type MailQueue interface {
	Enqueue(job models.EmailJob) bool
}

// MailerInterface renders notification emails and delivers them through the
// configured transactional mail provider.
type MailerInterface interface {
	VerificationEmail(to, code string) models.EmailJob
	PasswordResetEmail(to, code string) models.EmailJob
	ApprovalEmail(to, orgName string) models.EmailJob
	ApprovalCredentialsEmail(to, orgName, loginEmail, tempPassword string) models.EmailJob
	RejectionEmail(to, orgName, reason string) models.EmailJob
	Send(ctx context.Context, job models.EmailJob) error
}

// AuthServiceInterface covers registration, verification and login flows.
type AuthServiceInterface interface {
	Register(ctx context.Context, req *models.RegisterUser) (*models.User, error)
	VerifyEmail(ctx context.Context, req *models.VerifyCodeRequest) (*models.TokenResponse, error)
	ResendCode(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (*models.TokenResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *models.PasswordResetConfirm) error
	GetProfile(ctx context.Context, userID string) (*models.User, error)
}

// OrganizationServiceInterface covers the application and admin review flows.
type OrganizationServiceInterface interface {
	Apply(ctx context.Context, userID string, req *models.OrganizationApplication) (*models.Organization, error)
	GetMine(ctx context.Context, userID string) (*models.Organization, error)
	ListAdmin(ctx context.Context, statusFilter string, skip, limit int) ([]*models.Organization, error)
	ListAllVerified(ctx context.Context) ([]*models.Organization, error)
	ListPending(ctx context.Context) ([]*models.Organization, error)
	Approve(ctx context.Context, id int64, generateTempPassword bool) (*models.Organization, error)
	Reject(ctx context.Context, id int64, reason string) (*models.Organization, error)
	Suspend(ctx context.Context, id int64) (*models.Organization, error)
	Reactivate(ctx context.Context, id int64) (*models.Organization, error)
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateOrganizationStatusRequest) (*models.Organization, error)
}
