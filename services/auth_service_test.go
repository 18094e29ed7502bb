package services

import (
	"context"
	"testing"
	"time"

	"relivo-backend/models"
	"relivo-backend/repository"

	"github.com/stretchr/testify/suite"
)

// AuthServiceTestSuite exercises the registration, verification and login
// flows against an in-memory database.
type AuthServiceTestSuite struct {
	suite.Suite
	env *testEnv
	svc AuthServiceInterface
	ctx context.Context
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
	s.svc = s.env.authService()
	s.ctx = context.Background()
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) register(email, password string) *models.User {
	user, err := s.svc.Register(s.ctx, &models.RegisterUser{
		Email:    email,
		Password: password,
		FullName: "Test User",
	})
	s.Require().NoError(err)
	return user
}

func (s *AuthServiceTestSuite) verify(email string) {
	code := s.env.mailer.code(email)
	s.Require().NotEmpty(code)
	_, err := s.svc.VerifyEmail(s.ctx, &models.VerifyCodeRequest{Email: email, Code: code})
	s.Require().NoError(err)
}

func (s *AuthServiceTestSuite) TestRegisterCreatesUnverifiedUserAndSendsCode() {
	user := s.register("anna@example.com", "password123")

	s.False(user.IsVerified)
	s.Equal(models.UserRoleApplicant, user.Role)
	s.True(user.IsActive)

	jobs := s.env.queue.all()
	s.Require().Len(jobs, 1)
	s.Equal("anna@example.com", jobs[0].To)
	s.Equal("Verify your email", jobs[0].Subject)
	s.Len(s.env.mailer.code("anna@example.com"), 6)
}

func (s *AuthServiceTestSuite) TestRegisterRejectsAdminRole() {
	_, err := s.svc.Register(s.ctx, &models.RegisterUser{
		Email:    "sneaky@example.com",
		Password: "password123",
		FullName: "Sneaky",
		Role:     "admin",
	})
	s.ErrorIs(err, ErrInvalidRole)
}

func (s *AuthServiceTestSuite) TestRegisterVerifiedDuplicateConflicts() {
	s.register("anna@example.com", "password123")
	s.verify("anna@example.com")

	_, err := s.svc.Register(s.ctx, &models.RegisterUser{
		Email:    "anna@example.com",
		Password: "otherpassword",
		FullName: "Other",
	})
	s.ErrorIs(err, ErrEmailTaken)
}

func (s *AuthServiceTestSuite) TestRegisterUnverifiedDuplicateOverwrites() {
	first := s.register("anna@example.com", "firstpassword")
	firstCode := s.env.mailer.code("anna@example.com")

	second := s.register("anna@example.com", "secondpassword")
	s.Equal(first.ID, second.ID)

	// The first code has been purged, the new one works
	_, err := s.svc.VerifyEmail(s.ctx, &models.VerifyCodeRequest{Email: "anna@example.com", Code: firstCode})
	if firstCode != s.env.mailer.code("anna@example.com") {
		s.ErrorIs(err, ErrInvalidCode)
	}
	s.verify("anna@example.com")

	// Only the second password logs in
	_, err = s.svc.Login(s.ctx, "anna@example.com", "firstpassword")
	s.ErrorIs(err, ErrIncorrectPassword)
	token, err := s.svc.Login(s.ctx, "anna@example.com", "secondpassword")
	s.NoError(err)
	s.Equal("token:anna@example.com", token.AccessToken)
}

func (s *AuthServiceTestSuite) TestVerifyWithWrongCode() {
	s.register("anna@example.com", "password123")

	_, err := s.svc.VerifyEmail(s.ctx, &models.VerifyCodeRequest{Email: "anna@example.com", Code: "000000"})
	s.ErrorIs(err, ErrInvalidCode)
}

func (s *AuthServiceTestSuite) TestVerifyUnknownEmail() {
	_, err := s.svc.VerifyEmail(s.ctx, &models.VerifyCodeRequest{Email: "ghost@example.com", Code: "123456"})
	s.ErrorIs(err, ErrEmailNotRegistered)
}

func (s *AuthServiceTestSuite) TestVerifyExpiredCode() {
	s.register("anna@example.com", "password123")

	// Force the stored code past its expiry
	err := s.env.codes.Replace(s.ctx, &models.VerificationCode{
		Email:     "anna@example.com",
		Code:      "111111",
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	})
	s.Require().NoError(err)

	_, err = s.svc.VerifyEmail(s.ctx, &models.VerifyCodeRequest{Email: "anna@example.com", Code: "111111"})
	s.ErrorIs(err, ErrCodeExpired)

	// The expired code was dropped on rejection
	_, err = s.env.codes.GetByEmailAndCode(s.ctx, "anna@example.com", "111111")
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *AuthServiceTestSuite) TestVerifyIssuesTokenAndIsSingleUse() {
	s.register("anna@example.com", "password123")
	code := s.env.mailer.code("anna@example.com")

	token, err := s.svc.VerifyEmail(s.ctx, &models.VerifyCodeRequest{Email: "anna@example.com", Code: code})
	s.Require().NoError(err)
	s.Equal("token:anna@example.com", token.AccessToken)
	s.Equal("bearer", token.TokenType)

	// Consumed code is gone; the account reports already verified
	_, err = s.svc.VerifyEmail(s.ctx, &models.VerifyCodeRequest{Email: "anna@example.com", Code: code})
	s.ErrorIs(err, ErrAlreadyVerified)
	_, err = s.env.codes.GetByEmailAndCode(s.ctx, "anna@example.com", code)
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *AuthServiceTestSuite) TestResendReplacesPendingCode() {
	s.register("anna@example.com", "password123")
	firstCode := s.env.mailer.code("anna@example.com")

	s.Require().NoError(s.svc.ResendCode(s.ctx, "anna@example.com"))
	secondCode := s.env.mailer.code("anna@example.com")

	if firstCode != secondCode {
		_, err := s.svc.VerifyEmail(s.ctx, &models.VerifyCodeRequest{Email: "anna@example.com", Code: firstCode})
		s.ErrorIs(err, ErrInvalidCode)
	}

	_, err := s.svc.VerifyEmail(s.ctx, &models.VerifyCodeRequest{Email: "anna@example.com", Code: secondCode})
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestResendForVerifiedAccount() {
	s.register("anna@example.com", "password123")
	s.verify("anna@example.com")

	s.ErrorIs(s.svc.ResendCode(s.ctx, "anna@example.com"), ErrAlreadyVerified)
}

func (s *AuthServiceTestSuite) TestLoginFailureOrdering() {
	// Unknown email wins over everything
	_, err := s.svc.Login(s.ctx, "ghost@example.com", "whatever")
	s.ErrorIs(err, ErrEmailNotRegistered)

	// Wrong password is reported before the unverified state
	s.register("anna@example.com", "password123")
	_, err = s.svc.Login(s.ctx, "anna@example.com", "wrongpassword")
	s.ErrorIs(err, ErrIncorrectPassword)

	// Correct password against an unverified account
	_, err = s.svc.Login(s.ctx, "anna@example.com", "password123")
	s.ErrorIs(err, ErrEmailNotVerified)

	s.verify("anna@example.com")
	_, err = s.svc.Login(s.ctx, "anna@example.com", "password123")
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestLoginDeactivatedAccount() {
	s.register("anna@example.com", "password123")
	s.verify("anna@example.com")

	user, err := s.env.users.GetByEmail(s.ctx, "anna@example.com")
	s.Require().NoError(err)
	user.IsActive = false
	s.Require().NoError(s.env.users.Update(s.ctx, user))

	_, err = s.svc.Login(s.ctx, "anna@example.com", "password123")
	s.ErrorIs(err, ErrAccountDisabled)
}

func (s *AuthServiceTestSuite) TestForgotPasswordUnknownEmail() {
	s.ErrorIs(s.svc.ForgotPassword(s.ctx, "ghost@example.com"), ErrEmailNotRegistered)
}

func (s *AuthServiceTestSuite) TestPasswordResetFlow() {
	s.register("anna@example.com", "password123")
	s.verify("anna@example.com")

	s.Require().NoError(s.svc.ForgotPassword(s.ctx, "anna@example.com"))
	code := s.env.mailer.resetCode("anna@example.com")
	s.Require().NotEmpty(code)

	err := s.svc.ResetPassword(s.ctx, &models.PasswordResetConfirm{
		Email:       "anna@example.com",
		Code:        code,
		NewPassword: "brandnewpassword",
	})
	s.Require().NoError(err)

	_, err = s.svc.Login(s.ctx, "anna@example.com", "password123")
	s.ErrorIs(err, ErrIncorrectPassword)
	token, err := s.svc.Login(s.ctx, "anna@example.com", "brandnewpassword")
	s.NoError(err)
	s.False(token.MustChangePassword)

	// Reset codes are single-use
	err = s.svc.ResetPassword(s.ctx, &models.PasswordResetConfirm{
		Email:       "anna@example.com",
		Code:        code,
		NewPassword: "anotherpassword",
	})
	s.ErrorIs(err, ErrInvalidCode)
}

func (s *AuthServiceTestSuite) TestResetMarksUnverifiedAccountVerified() {
	s.register("anna@example.com", "password123")

	s.Require().NoError(s.svc.ForgotPassword(s.ctx, "anna@example.com"))
	code := s.env.mailer.resetCode("anna@example.com")

	err := s.svc.ResetPassword(s.ctx, &models.PasswordResetConfirm{
		Email:       "anna@example.com",
		Code:        code,
		NewPassword: "brandnewpassword",
	})
	s.Require().NoError(err)

	// A valid emailed code proves ownership, so login now works
	_, err = s.svc.Login(s.ctx, "anna@example.com", "brandnewpassword")
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestGetProfile() {
	user := s.register("anna@example.com", "password123")

	got, err := s.svc.GetProfile(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("anna@example.com", got.Email)

	_, err = s.svc.GetProfile(s.ctx, "00000000-0000-0000-0000-000000000000")
	s.ErrorIs(err, ErrUserNotFound)
}
