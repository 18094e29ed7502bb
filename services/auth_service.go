package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"relivo-backend/models"
	"relivo-backend/repository"
	"relivo-backend/utils"
	"relivo-backend/utils/logger"

	"github.com/uptrace/bun"
)

// AuthService implements registration, email verification and login. Each
// email address moves through unregistered -> unverified -> verified; login
// is only possible in the verified state.
type AuthService struct {
	users  repository.UserRepositoryInterface
	codes  repository.VerificationRepositoryInterface
	db     TxRunner
	tokens TokenIssuer
	mailer MailerInterface
	queue  MailQueue
	config *models.Config
	logger logger.Logger
}

// NewAuthService creates the auth service with its collaborators.
func NewAuthService(
	users repository.UserRepositoryInterface,
	codes repository.VerificationRepositoryInterface,
	db TxRunner,
	tokens TokenIssuer,
	mailer MailerInterface,
	queue MailQueue,
	cfg *models.Config,
	log logger.Logger,
) AuthServiceInterface {
	return &AuthService{
		users:  users,
		codes:  codes,
		db:     db,
		tokens: tokens,
		mailer: mailer,
		queue:  queue,
		config: cfg,
		logger: log,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// newCode builds a fresh verification code row for the email.
func (s *AuthService) newCode(email string) *models.VerificationCode {
	return &models.VerificationCode{
		Email:     email,
		Code:      utils.GenerateVerificationCode(),
		ExpiresAt: time.Now().UTC().Add(s.config.VerificationCodeTTL),
	}
}

// enqueue hands a rendered email to the background dispatcher. A full queue
// drops the job; registration and the other flows never fail on mail.
func (s *AuthService) enqueue(job models.EmailJob) {
	if !s.queue.Enqueue(job) {
		s.logger.Warnf("Mail queue full, dropped %q to %s", job.Subject, job.To)
	}
}

// Register creates an unverified account and issues a verification code.
// Registering an email that already completed verification is a conflict; an
// unverified duplicate overwrites the stored credentials and reissues the
// code, so an abandoned signup never locks out its email address.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterUser) (*models.User, error) {
	email := normalizeEmail(req.Email)

	role := models.UserRoleApplicant
	if req.Role != "" {
		switch models.UserRole(strings.ToLower(req.Role)) {
		case models.UserRoleApplicant:
		case models.UserRoleOrganization:
			role = models.UserRoleOrganization
		default:
			// Admin accounts are provisioned out of band, never via signup
			return nil, ErrInvalidRole
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	vc := s.newCode(email)

	var user *models.User
	if existing != nil {
		if existing.IsVerified {
			return nil, ErrEmailTaken
		}
		existing.PasswordHash = hash
		existing.FullName = req.FullName
		existing.Role = role
		user = existing
		err = s.db.RunInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
			if err := s.users.WithTx(tx).Update(ctx, user); err != nil {
				return err
			}
			return s.codes.WithTx(tx).Replace(ctx, vc)
		})
	} else {
		user = &models.User{
			ID:           utils.GenerateUUID(),
			Email:        email,
			PasswordHash: hash,
			FullName:     req.FullName,
			Role:         role,
			IsActive:     true,
		}
		err = s.db.RunInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
			if _, err := s.users.WithTx(tx).Create(ctx, user); err != nil {
				return err
			}
			return s.codes.WithTx(tx).Replace(ctx, vc)
		})
	}
	if err != nil {
		return nil, err
	}

	s.enqueue(s.mailer.VerificationEmail(email, vc.Code))
	s.logger.Infof("Registered user %s (%s)", email, role)
	return user, nil
}

// VerifyEmail consumes a verification code and marks the account verified.
// The code is single-use; on success a bearer token is issued immediately so
// the client does not need a separate login round-trip.
func (s *AuthService) VerifyEmail(ctx context.Context, req *models.VerifyCodeRequest) (*models.TokenResponse, error) {
	email := normalizeEmail(req.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEmailNotRegistered
		}
		return nil, err
	}
	if user.IsVerified {
		return nil, ErrAlreadyVerified
	}

	vc, err := s.codes.GetByEmailAndCode(ctx, email, req.Code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}
	if vc.Expired(time.Now().UTC()) {
		if err := s.codes.Delete(ctx, vc.ID); err != nil {
			s.logger.Warnf("Failed to drop expired code for %s: %v", email, err)
		}
		return nil, ErrCodeExpired
	}

	user.IsVerified = true
	err = s.db.RunInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		if err := s.users.WithTx(tx).Update(ctx, user); err != nil {
			return err
		}
		return s.codes.WithTx(tx).Delete(ctx, vc.ID)
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("Email verified for %s", email)
	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// ResendCode replaces the pending verification code and re-sends the email.
func (s *AuthService) ResendCode(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEmailNotRegistered
		}
		return err
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}

	vc := s.newCode(email)
	if err := s.codes.Replace(ctx, vc); err != nil {
		return err
	}

	s.enqueue(s.mailer.VerificationEmail(email, vc.Code))
	return nil
}

// Login authenticates a verified account and returns a bearer token. The
// checks run in a fixed order so the client always gets the most specific
// failure: unknown email, then wrong password, then unverified email.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	email = normalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEmailNotRegistered
		}
		return nil, err
	}
	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, ErrIncorrectPassword
	}
	if !user.IsVerified {
		return nil, ErrEmailNotVerified
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken:        token,
		TokenType:          "bearer",
		MustChangePassword: user.MustChangePassword,
	}, nil
}

// ForgotPassword issues a password reset code. Unknown emails are reported
// as not found rather than silently accepted, so users discover typos instead
// of waiting for an email that never arrives.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEmailNotRegistered
		}
		return err
	}

	vc := s.newCode(email)
	if err := s.codes.Replace(ctx, vc); err != nil {
		return err
	}

	s.enqueue(s.mailer.PasswordResetEmail(email, vc.Code))
	return nil
}

// ResetPassword consumes a reset code and stores the new password. A valid
// code proves email ownership, so an unverified account is marked verified
// here as well; any pending forced password change is cleared.
func (s *AuthService) ResetPassword(ctx context.Context, req *models.PasswordResetConfirm) error {
	email := normalizeEmail(req.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEmailNotRegistered
		}
		return err
	}

	vc, err := s.codes.GetByEmailAndCode(ctx, email, req.Code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidCode
		}
		return err
	}
	if vc.Expired(time.Now().UTC()) {
		if err := s.codes.Delete(ctx, vc.ID); err != nil {
			s.logger.Warnf("Failed to drop expired code for %s: %v", email, err)
		}
		return ErrCodeExpired
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.IsVerified = true
	user.MustChangePassword = false
	err = s.db.RunInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		if err := s.users.WithTx(tx).Update(ctx, user); err != nil {
			return err
		}
		return s.codes.WithTx(tx).Delete(ctx, vc.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Infof("Password reset for %s", email)
	return nil
}

// GetProfile returns the account behind an authenticated request.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
