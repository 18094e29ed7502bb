package worker

import (
	"context"

	"relivo-backend/models"
	"relivo-backend/repository"
	"relivo-backend/utils/logger"

	"github.com/robfig/cron"
)

// CodeJanitor periodically deletes expired verification codes. Expired codes
// are also rejected at use time; the janitor just keeps the table small.
type CodeJanitor struct {
	codes  repository.VerificationRepositoryInterface
	logger logger.Logger
	cron   *cron.Cron
}

// NewCodeJanitor creates the janitor with the purge schedule from config.
func NewCodeJanitor(cfg *models.Config, codes repository.VerificationRepositoryInterface, log logger.Logger) (*CodeJanitor, error) {
	j := &CodeJanitor{
		codes:  codes,
		logger: log,
		cron:   cron.New(),
	}

	if err := j.cron.AddFunc(cfg.CodePurgeSchedule, j.purge); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *CodeJanitor) purge() {
	n, err := j.codes.PurgeExpired(context.Background())
	if err != nil {
		j.logger.Errorf("Failed to purge expired verification codes: %v", err)
		return
	}
	if n > 0 {
		j.logger.Infof("Purged %d expired verification codes", n)
	}
}

// Start begins the purge schedule.
func (j *CodeJanitor) Start() {
	j.cron.Start()
	j.logger.Info("Verification code janitor started")
}

// Stop halts the purge schedule. A purge already in flight finishes.
func (j *CodeJanitor) Stop() {
	j.cron.Stop()
	j.logger.Info("Verification code janitor stopped")
}
