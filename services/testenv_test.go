package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"relivo-backend/dal"
	"relivo-backend/infrastructure"
	"relivo-backend/models"
	"relivo-backend/repository"
	"relivo-backend/utils/logger"

	"github.com/stretchr/testify/require"
)

// testConfig returns a config pointed at an in-memory database.
func testConfig() *models.Config {
	return &models.Config{
		AppName:             "Relivo Admin Backend",
		AppEnv:              "test",
		JWTSecret:           "test-secret",
		JWTExpiresIn:        time.Hour,
		DatabaseURL:         ":memory:",
		DatabaseDialect:     "sqlite",
		MailAPIURL:          "http://127.0.0.1:0/unused",
		MailFrom:            "noreply@relivo.org",
		MailFromName:        "Relivo Admin",
		MailTimeout:         time.Second,
		MailQueueSize:       16,
		OrgPortalURL:        "https://portal.example.org/",
		SupportEmail:        "support@relivo.org",
		VerificationCodeTTL: 15 * time.Minute,
		CodePurgeSchedule:   "@every 10m",
		LogLevel:            "error",
		LogFormat:           "text",
	}
}

// testEnv bundles a fresh database with real repositories and fake mail
// collaborators.
type testEnv struct {
	client *dal.Client
	users  repository.UserRepositoryInterface
	codes  repository.VerificationRepositoryInterface
	orgs   repository.OrganizationRepositoryInterface
	mailer *fakeMailer
	queue  *fakeQueue
	tokens *fakeTokens
	cfg    *models.Config
	log    logger.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := testConfig()
	log := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)

	client, err := dal.NewClient(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	require.NoError(t, infrastructure.NewSchema(client, log).Setup(context.Background()))

	return &testEnv{
		client: client,
		users:  repository.NewUserRepository(client, log),
		codes:  repository.NewVerificationRepository(client, log),
		orgs:   repository.NewOrganizationRepository(client, log),
		mailer: newFakeMailer(),
		queue:  &fakeQueue{},
		tokens: &fakeTokens{},
		cfg:    cfg,
		log:    log,
	}
}

func (e *testEnv) authService() AuthServiceInterface {
	return NewAuthService(e.users, e.codes, e.client, e.tokens, e.mailer, e.queue, e.cfg, e.log)
}

func (e *testEnv) orgService() OrganizationServiceInterface {
	return NewOrganizationService(e.orgs, e.users, e.client, e.mailer, e.queue, e.cfg, e.log)
}

// fakeMailer records the codes and content handed to it instead of rendering
// real templates.
type fakeMailer struct {
	mu            sync.Mutex
	lastCode      map[string]string
	lastResetCode map[string]string
	tempPasswords map[string]string
	sent          []models.EmailJob
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{
		lastCode:      make(map[string]string),
		lastResetCode: make(map[string]string),
		tempPasswords: make(map[string]string),
	}
}

func (f *fakeMailer) VerificationEmail(to, code string) models.EmailJob {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastCode[to] = code
	return models.EmailJob{To: to, Subject: "Verify your email", HTML: "code " + code}
}

func (f *fakeMailer) PasswordResetEmail(to, code string) models.EmailJob {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastResetCode[to] = code
	return models.EmailJob{To: to, Subject: "Password Reset Code", HTML: "code " + code}
}

func (f *fakeMailer) ApprovalEmail(to, orgName string) models.EmailJob {
	return models.EmailJob{To: to, Subject: "Your organization has been approved", HTML: orgName}
}

func (f *fakeMailer) ApprovalCredentialsEmail(to, orgName, loginEmail, tempPassword string) models.EmailJob {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tempPasswords[to] = tempPassword
	return models.EmailJob{To: to, Subject: "Your organization has been approved", HTML: orgName + " credentials " + tempPassword}
}

func (f *fakeMailer) RejectionEmail(to, orgName, reason string) models.EmailJob {
	html := orgName
	if reason != "" {
		html += " Reason: " + reason
	}
	return models.EmailJob{To: to, Subject: "Update on your organization application", HTML: html}
}

func (f *fakeMailer) Send(ctx context.Context, job models.EmailJob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, job)
	return nil
}

func (f *fakeMailer) code(email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastCode[email]
}

func (f *fakeMailer) resetCode(email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastResetCode[email]
}

func (f *fakeMailer) tempPassword(email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tempPasswords[email]
}

// fakeQueue collects enqueued jobs synchronously.
type fakeQueue struct {
	mu   sync.Mutex
	full bool
	jobs []models.EmailJob
}

func (q *fakeQueue) Enqueue(job models.EmailJob) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.full {
		return false
	}
	q.jobs = append(q.jobs, job)
	return true
}

func (q *fakeQueue) all() []models.EmailJob {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]models.EmailJob, len(q.jobs))
	copy(out, q.jobs)
	return out
}

func (q *fakeQueue) reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = nil
}

// fakeTokens issues predictable tokens.
type fakeTokens struct{}

func (f *fakeTokens) GenerateToken(user *models.User) (string, error) {
	return "token:" + user.Email, nil
}
