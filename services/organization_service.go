package services

import (
	"context"
	"errors"

	"relivo-backend/models"
	"relivo-backend/repository"
	"relivo-backend/utils"
	"relivo-backend/utils/logger"

	"github.com/go-playground/validator/v10"
	"github.com/uptrace/bun"
)

// allowedTransitions is the organization status machine. Rejected is a
// terminal state; a rejected applicant re-applies through support.
var allowedTransitions = map[models.OrganizationStatus][]models.OrganizationStatus{
	models.OrganizationStatusPending:   {models.OrganizationStatusApproved, models.OrganizationStatusRejected},
	models.OrganizationStatusApproved:  {models.OrganizationStatusSuspended},
	models.OrganizationStatusSuspended: {models.OrganizationStatusApproved},
	models.OrganizationStatusRejected:  {},
}

func canTransition(from, to models.OrganizationStatus) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// OrganizationService implements the application flow and the admin review
// workflow. Approve and reject cascade onto the owning user inside one
// transaction; the notification email is enqueued only after commit.
type OrganizationService struct {
	orgs     repository.OrganizationRepositoryInterface
	users    repository.UserRepositoryInterface
	db       TxRunner
	mailer   MailerInterface
	queue    MailQueue
	validate *validator.Validate
	config   *models.Config
	logger   logger.Logger
}

// NewOrganizationService creates the organization service.
func NewOrganizationService(
	orgs repository.OrganizationRepositoryInterface,
	users repository.UserRepositoryInterface,
	db TxRunner,
	mailer MailerInterface,
	queue MailQueue,
	cfg *models.Config,
	log logger.Logger,
) OrganizationServiceInterface {
	return &OrganizationService{
		orgs:     orgs,
		users:    users,
		db:       db,
		mailer:   mailer,
		queue:    queue,
		validate: validator.New(),
		config:   cfg,
		logger:   log,
	}
}

func (s *OrganizationService) enqueue(job models.EmailJob) {
	if !s.queue.Enqueue(job) {
		s.logger.Warnf("Mail queue full, dropped %q to %s", job.Subject, job.To)
	}
}

// Apply records an organization application for the authenticated user.
// Each user owns at most one organization.
func (s *OrganizationService) Apply(ctx context.Context, userID string, req *models.OrganizationApplication) (*models.Organization, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if _, err := s.orgs.GetByUserID(ctx, userID); err == nil {
		return nil, ErrOrganizationExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	org := &models.Organization{
		UserID:                userID,
		Name:                  req.Name,
		Description:           req.Description,
		Website:               req.Website,
		ContactEmail:          req.ContactEmail,
		Country:               req.Country,
		Type:                  req.Type,
		Status:                models.OrganizationStatusPending,
		VerificationDocuments: req.VerificationDocuments,
	}
	created, err := s.orgs.Create(ctx, org)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("Organization application %d (%q) submitted by user %s", created.ID, created.Name, userID)
	return created, nil
}

// GetMine returns the organization owned by the authenticated user.
func (s *OrganizationService) GetMine(ctx context.Context, userID string) (*models.Organization, error) {
	org, err := s.orgs.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return org, nil
}

// ListAdmin returns organizations for the admin dashboard, optionally
// filtered by status and paginated with skip/limit.
func (s *OrganizationService) ListAdmin(ctx context.Context, statusFilter string, skip, limit int) ([]*models.Organization, error) {
	var status models.OrganizationStatus
	if statusFilter != "" {
		parsed, ok := models.ParseOrganizationStatus(statusFilter)
		if !ok {
			return nil, ErrInvalidStatus
		}
		status = parsed
	}
	if limit <= 0 {
		limit = 100
	}
	return s.orgs.List(ctx, status, skip, limit)
}

// ListAllVerified returns every organization whose owner completed email
// verification.
func (s *OrganizationService) ListAllVerified(ctx context.Context) ([]*models.Organization, error) {
	return s.orgs.ListVerifiedOwner(ctx, "")
}

// ListPending returns pending organizations with verified owners, the review
// queue for admins.
func (s *OrganizationService) ListPending(ctx context.Context) ([]*models.Organization, error) {
	return s.orgs.ListVerifiedOwner(ctx, models.OrganizationStatusPending)
}

// notifyAddress picks the recipient for review-decision emails: the
// organization's contact address, or the owner's login email when no
// contact address was given on the application.
func notifyAddress(org *models.Organization, owner *models.User) string {
	if org.ContactEmail != "" {
		return org.ContactEmail
	}
	return owner.Email
}

// load fetches the organization and ensures its owner row is present.
func (s *OrganizationService) load(ctx context.Context, id int64) (*models.Organization, *models.User, error) {
	org, err := s.orgs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrOrganizationNotFound
		}
		return nil, nil, err
	}
	owner := org.Owner
	if owner == nil {
		owner, err = s.users.GetByID(ctx, org.UserID)
		if err != nil {
			return nil, nil, err
		}
	}
	return org, owner, nil
}

// Approve moves an organization to approved. The owner is promoted to the
// organization role and reactivated; optionally a temporary password is
// issued and the owner is forced to change it on first login. Exactly one
// approval email goes out, after the transaction commits.
func (s *OrganizationService) Approve(ctx context.Context, id int64, generateTempPassword bool) (*models.Organization, error) {
	org, owner, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canTransition(org.Status, models.OrganizationStatusApproved) {
		return nil, ErrInvalidTransition
	}

	tempPassword := ""
	if generateTempPassword {
		tempPassword = utils.GenerateTempPassword()
		hash, err := utils.HashPassword(tempPassword)
		if err != nil {
			return nil, err
		}
		owner.PasswordHash = hash
		owner.MustChangePassword = true
	}

	org.Status = models.OrganizationStatusApproved
	org.RejectionReason = ""
	owner.Role = models.UserRoleOrganization
	owner.IsActive = true

	err = s.db.RunInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		if err := s.orgs.WithTx(tx).Update(ctx, org); err != nil {
			return err
		}
		return s.users.WithTx(tx).Update(ctx, owner)
	})
	if err != nil {
		return nil, err
	}

	if tempPassword != "" {
		s.enqueue(s.mailer.ApprovalCredentialsEmail(notifyAddress(org, owner), org.Name, owner.Email, tempPassword))
	} else {
		s.enqueue(s.mailer.ApprovalEmail(notifyAddress(org, owner), org.Name))
	}

	s.logger.Infof("Organization %d (%q) approved, owner %s promoted", org.ID, org.Name, owner.Email)
	return org, nil
}

// Reject moves an organization to rejected. The free-text reason is stored
// verbatim; the owner account is deactivated. The rejection email includes
// the reason only when one was given.
func (s *OrganizationService) Reject(ctx context.Context, id int64, reason string) (*models.Organization, error) {
	org, owner, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canTransition(org.Status, models.OrganizationStatusRejected) {
		return nil, ErrInvalidTransition
	}

	org.Status = models.OrganizationStatusRejected
	org.RejectionReason = reason
	owner.IsActive = false

	err = s.db.RunInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		if err := s.orgs.WithTx(tx).Update(ctx, org); err != nil {
			return err
		}
		return s.users.WithTx(tx).Update(ctx, owner)
	})
	if err != nil {
		return nil, err
	}

	s.enqueue(s.mailer.RejectionEmail(notifyAddress(org, owner), org.Name, reason))

	s.logger.Infof("Organization %d (%q) rejected", org.ID, org.Name)
	return org, nil
}

// Suspend temporarily blocks an approved organization. Status-only: the
// owner keeps their account and no email is sent.
func (s *OrganizationService) Suspend(ctx context.Context, id int64) (*models.Organization, error) {
	return s.setStatus(ctx, id, models.OrganizationStatusSuspended)
}

// Reactivate returns a suspended organization to approved.
func (s *OrganizationService) Reactivate(ctx context.Context, id int64) (*models.Organization, error) {
	return s.setStatus(ctx, id, models.OrganizationStatusApproved)
}

func (s *OrganizationService) setStatus(ctx context.Context, id int64, to models.OrganizationStatus) (*models.Organization, error) {
	org, _, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canTransition(org.Status, to) {
		return nil, ErrInvalidTransition
	}

	org.Status = to
	if err := s.orgs.Update(ctx, org); err != nil {
		return nil, err
	}

	s.logger.Infof("Organization %d (%q) moved to %s", org.ID, org.Name, to)
	return org, nil
}

// UpdateStatus is the generic admin status endpoint. It drives the same
// transition table as the dedicated actions and cascades identically when
// the target status is approved or rejected.
func (s *OrganizationService) UpdateStatus(ctx context.Context, id int64, req *models.UpdateOrganizationStatusRequest) (*models.Organization, error) {
	status, ok := models.ParseOrganizationStatus(req.Status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	switch status {
	case models.OrganizationStatusApproved:
		return s.Approve(ctx, id, false)
	case models.OrganizationStatusRejected:
		return s.Reject(ctx, id, req.Reason)
	case models.OrganizationStatusSuspended:
		return s.Suspend(ctx, id)
	default:
		// No transition leads back to pending
		return nil, ErrInvalidTransition
	}
}
