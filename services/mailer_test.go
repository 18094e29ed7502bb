package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"relivo-backend/models"
	"relivo-backend/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMailer(t *testing.T, apiURL, apiKey string) MailerInterface {
	t.Helper()
	cfg := testConfig()
	cfg.MailAPIURL = apiURL
	cfg.MailAPIKey = apiKey
	cfg.MailTimeout = 2 * time.Second
	return NewMailer(cfg, logger.NewLogger("error", "text"))
}

func TestVerificationEmailContainsCode(t *testing.T) {
	m := testMailer(t, "http://unused", "key")

	job := m.VerificationEmail("anna@example.com", "482913")
	assert.Equal(t, "anna@example.com", job.To)
	assert.Equal(t, "Verify your email", job.Subject)
	assert.Contains(t, job.HTML, "482913")
	assert.Contains(t, job.HTML, "15 minutes")
}

func TestPasswordResetEmailUsesResetHeading(t *testing.T) {
	m := testMailer(t, "http://unused", "key")

	job := m.PasswordResetEmail("anna@example.com", "482913")
	assert.Equal(t, "Password Reset Code", job.Subject)
	assert.Contains(t, job.HTML, "Password Reset Code")
	assert.Contains(t, job.HTML, "482913")
}

func TestApprovalEmailVariants(t *testing.T) {
	m := testMailer(t, "http://unused", "key")

	plain := m.ApprovalEmail("owner@example.com", "Helping Hands")
	assert.Contains(t, plain.HTML, "Helping Hands")
	assert.NotContains(t, plain.HTML, "Temporary password")

	creds := m.ApprovalCredentialsEmail("owner@example.com", "Helping Hands", "owner@example.com", "s3cretTemp12")
	assert.Contains(t, creds.HTML, "Temporary password")
	assert.Contains(t, creds.HTML, "s3cretTemp12")
	assert.Contains(t, creds.HTML, "change this password")
}

func TestRejectionEmailReasonBlock(t *testing.T) {
	m := testMailer(t, "http://unused", "key")

	with := m.RejectionEmail("owner@example.com", "Helping Hands", "Missing documents")
	assert.Contains(t, with.HTML, "Reason:")
	assert.Contains(t, with.HTML, "Missing documents")

	without := m.RejectionEmail("owner@example.com", "Helping Hands", "")
	assert.NotContains(t, without.HTML, "Reason:")
}

func TestSendPostsBrevoPayload(t *testing.T) {
	var gotKey string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("api-key")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"messageId":"<msg-123@relivo>"}`))
	}))
	defer srv.Close()

	m := testMailer(t, srv.URL, "brevo-key")
	err := m.Send(context.Background(), models.EmailJob{
		To:      "anna@example.com",
		Subject: "Verify your email",
		HTML:    "<p>hello</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "brevo-key", gotKey)
	assert.Equal(t, "Verify your email", gotBody["subject"])
	assert.Equal(t, "<p>hello</p>", gotBody["htmlContent"])

	sender := gotBody["sender"].(map[string]interface{})
	assert.Equal(t, "noreply@relivo.org", sender["email"])

	to := gotBody["to"].([]interface{})
	require.Len(t, to, 1)
	assert.Equal(t, "anna@example.com", to[0].(map[string]interface{})["email"])
}

func TestSendSurfacesProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"unauthorized","message":"Key not found"}`))
	}))
	defer srv.Close()

	m := testMailer(t, srv.URL, "bad-key")
	err := m.Send(context.Background(), models.EmailJob{To: "anna@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "Key not found")
}

func TestSendWithoutAPIKey(t *testing.T) {
	m := testMailer(t, "http://unused", "")
	err := m.Send(context.Background(), models.EmailJob{To: "anna@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
