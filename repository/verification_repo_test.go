package repository

import (
	"context"
	"testing"
	"time"

	"relivo-backend/dal"
	"relivo-backend/infrastructure"
	"relivo-backend/models"
	"relivo-backend/utils/logger"

	"github.com/stretchr/testify/suite"
)

type VerificationRepoTestSuite struct {
	suite.Suite
	codes VerificationRepositoryInterface
	ctx   context.Context
}

func (s *VerificationRepoTestSuite) SetupTest() {
	log := logger.NewLogger("error", "text")
	cfg := &models.Config{
		DatabaseURL:     ":memory:",
		DatabaseDialect: "sqlite",
	}

	client, err := dal.NewClient(cfg, log)
	s.Require().NoError(err)
	s.T().Cleanup(func() { client.Close() })

	s.Require().NoError(infrastructure.NewSchema(client, log).Setup(context.Background()))

	s.codes = NewVerificationRepository(client, log)
	s.ctx = context.Background()
}

func TestVerificationRepoTestSuite(t *testing.T) {
	suite.Run(t, new(VerificationRepoTestSuite))
}

func (s *VerificationRepoTestSuite) code(email, code string, ttl time.Duration) *models.VerificationCode {
	vc := &models.VerificationCode{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	s.Require().NoError(s.codes.Replace(s.ctx, vc))
	return vc
}

func (s *VerificationRepoTestSuite) TestReplacePurgesPriorCode() {
	s.code("anna@example.com", "111111", time.Hour)
	s.code("anna@example.com", "222222", time.Hour)

	_, err := s.codes.GetByEmailAndCode(s.ctx, "anna@example.com", "111111")
	s.ErrorIs(err, ErrNotFound)

	got, err := s.codes.GetByEmailAndCode(s.ctx, "anna@example.com", "222222")
	s.Require().NoError(err)
	s.Equal("222222", got.Code)
}

func (s *VerificationRepoTestSuite) TestReplaceKeepsOtherEmails() {
	s.code("anna@example.com", "111111", time.Hour)
	s.code("ben@example.com", "333333", time.Hour)

	_, err := s.codes.GetByEmailAndCode(s.ctx, "anna@example.com", "111111")
	s.NoError(err)
}

func (s *VerificationRepoTestSuite) TestDeleteIsById() {
	vc := s.code("anna@example.com", "111111", time.Hour)

	s.Require().NoError(s.codes.Delete(s.ctx, vc.ID))
	_, err := s.codes.GetByEmailAndCode(s.ctx, "anna@example.com", "111111")
	s.ErrorIs(err, ErrNotFound)
}

func (s *VerificationRepoTestSuite) TestDeleteByEmail() {
	s.code("anna@example.com", "111111", time.Hour)

	s.Require().NoError(s.codes.DeleteByEmail(s.ctx, "anna@example.com"))
	_, err := s.codes.GetByEmailAndCode(s.ctx, "anna@example.com", "111111")
	s.ErrorIs(err, ErrNotFound)
}

func (s *VerificationRepoTestSuite) TestPurgeExpiredLeavesLiveCodes() {
	s.code("expired@example.com", "111111", -time.Minute)
	s.code("live@example.com", "222222", time.Hour)

	n, err := s.codes.PurgeExpired(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	_, err = s.codes.GetByEmailAndCode(s.ctx, "expired@example.com", "111111")
	s.ErrorIs(err, ErrNotFound)
	_, err = s.codes.GetByEmailAndCode(s.ctx, "live@example.com", "222222")
	s.NoError(err)
}

func (s *VerificationRepoTestSuite) TestExpiredHelper() {
	vc := s.code("anna@example.com", "111111", time.Hour)
	s.False(vc.Expired(time.Now().UTC()))
	s.True(vc.Expired(time.Now().UTC().Add(2 * time.Hour)))
}
