package worker

import (
	"fmt"

	"relivo-backend/models"
	"relivo-backend/repository"
	"relivo-backend/services"
	"relivo-backend/utils/logger"
)

// Service bundles the background workers for easy integration
type Service struct {
	mail    *MailWorker
	janitor *CodeJanitor
	logger  logger.Logger
}

// NewService creates the worker service
func NewService(cfg *models.Config, mailer services.MailerInterface, codes repository.VerificationRepositoryInterface, log logger.Logger) (*Service, error) {
	janitor, err := NewCodeJanitor(cfg, codes, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create code janitor: %w", err)
	}

	return &Service{
		mail:    NewMailWorker(cfg, mailer, log),
		janitor: janitor,
		logger:  log,
	}, nil
}

// Mail exposes the dispatcher queue for the service layer.
func (s *Service) Mail() *MailWorker {
	return s.mail
}

// StartInBackground starts the workers
func (s *Service) StartInBackground() {
	s.logger.Info("Starting background worker service")
	s.mail.Start()
	s.janitor.Start()
}

// Stop stops the workers, draining any queued mail first
func (s *Service) Stop() {
	s.logger.Info("Stopping background worker service")
	s.janitor.Stop()
	s.mail.Stop()
}
