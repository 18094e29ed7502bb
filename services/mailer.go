package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"relivo-backend/models"
	"relivo-backend/utils/logger"

	"github.com/tidwall/gjson"
)

const verificationTemplate = `<html><body style="font-family: Arial, sans-serif; color: #222;">
<h2>{{.Heading}}</h2>
<p>Your {{.Purpose}} code is:</p>
<p style="font-size: 28px; font-weight: bold; letter-spacing: 4px;">{{.Code}}</p>
<p>This code expires in {{.TTLMinutes}} minutes. If you did not request it, you can safely ignore this email.</p>
<p>&mdash; {{.FromName}}</p>
</body></html>`

const approvalTemplate = `<html><body style="font-family: Arial, sans-serif; color: #222;">
<h2>Your organization has been approved</h2>
<p>Congratulations! <strong>{{.OrgName}}</strong> has been approved on {{.AppName}}.</p>
{{if .TempPassword}}<p>An organization account has been prepared for you:</p>
<p>Email: <strong>{{.LoginEmail}}</strong><br>Temporary password: <strong>{{.TempPassword}}</strong></p>
<p>You will be asked to change this password on first login.</p>
{{else}}<p>You can now sign in to the organization portal with your existing account.</p>
{{end}}<p><a href="{{.PortalURL}}">{{.PortalURL}}</a></p>
<p>&mdash; {{.FromName}}</p>
</body></html>`

const rejectionTemplate = `<html><body style="font-family: Arial, sans-serif; color: #222;">
<h2>Update on your organization application</h2>
<p>We are sorry to inform you that <strong>{{.OrgName}}</strong> was not approved on {{.AppName}}.</p>
{{if .Reason}}<p><strong>Reason:</strong> {{.Reason}}</p>
{{end}}<p>If you have questions or want to submit corrected information, contact us at {{.SupportEmail}}.</p>
<p>&mdash; {{.FromName}}</p>
</body></html>`

// Mailer renders notification emails and delivers them through the Brevo
// transactional API. Rendering is synchronous; delivery runs on the worker.
type Mailer struct {
	config *models.Config
	logger logger.Logger
	client *http.Client

	verificationTmpl *template.Template
	approvalTmpl     *template.Template
	rejectionTmpl    *template.Template
}

// NewMailer creates a mailer bound to the configured provider.
func NewMailer(cfg *models.Config, log logger.Logger) MailerInterface {
	return &Mailer{
		config:           cfg,
		logger:           log,
		client:           &http.Client{Timeout: cfg.MailTimeout},
		verificationTmpl: template.Must(template.New("verification").Parse(verificationTemplate)),
		approvalTmpl:     template.Must(template.New("approval").Parse(approvalTemplate)),
		rejectionTmpl:    template.Must(template.New("rejection").Parse(rejectionTemplate)),
	}
}

func (m *Mailer) render(tmpl *template.Template, data interface{}) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Templates are compile-time constants; execution only fails on a
		// template bug, which should surface loudly.
		m.logger.Errorf("Failed to render email template %s: %v", tmpl.Name(), err)
		return ""
	}
	return buf.String()
}

// VerificationEmail renders the account verification code email.
func (m *Mailer) VerificationEmail(to, code string) models.EmailJob {
	return models.EmailJob{
		To:      to,
		Subject: "Verify your email",
		HTML: m.render(m.verificationTmpl, map[string]interface{}{
			"Heading":    "Verify your email",
			"Purpose":    "verification",
			"Code":       code,
			"TTLMinutes": int(m.config.VerificationCodeTTL.Minutes()),
			"FromName":   m.config.MailFromName,
		}),
	}
}

// PasswordResetEmail renders the password reset code email. Same body as the
// verification email with the reset heading and subject.
func (m *Mailer) PasswordResetEmail(to, code string) models.EmailJob {
	return models.EmailJob{
		To:      to,
		Subject: "Password Reset Code",
		HTML: m.render(m.verificationTmpl, map[string]interface{}{
			"Heading":    "Password Reset Code",
			"Purpose":    "password reset",
			"Code":       code,
			"TTLMinutes": int(m.config.VerificationCodeTTL.Minutes()),
			"FromName":   m.config.MailFromName,
		}),
	}
}

// ApprovalEmail renders the approval notification pointing at the portal.
func (m *Mailer) ApprovalEmail(to, orgName string) models.EmailJob {
	return models.EmailJob{
		To:      to,
		Subject: "Your organization has been approved",
		HTML: m.render(m.approvalTmpl, map[string]interface{}{
			"OrgName":   orgName,
			"AppName":   m.config.AppName,
			"PortalURL": m.config.OrgPortalURL,
			"FromName":  m.config.MailFromName,
		}),
	}
}

// ApprovalCredentialsEmail renders the approval notification carrying freshly
// issued temporary credentials.
func (m *Mailer) ApprovalCredentialsEmail(to, orgName, loginEmail, tempPassword string) models.EmailJob {
	return models.EmailJob{
		To:      to,
		Subject: "Your organization has been approved",
		HTML: m.render(m.approvalTmpl, map[string]interface{}{
			"OrgName":      orgName,
			"AppName":      m.config.AppName,
			"PortalURL":    m.config.OrgPortalURL,
			"FromName":     m.config.MailFromName,
			"LoginEmail":   loginEmail,
			"TempPassword": tempPassword,
		}),
	}
}

// RejectionEmail renders the rejection notification. The reason block only
// appears when a non-empty reason was recorded.
func (m *Mailer) RejectionEmail(to, orgName, reason string) models.EmailJob {
	return models.EmailJob{
		To:      to,
		Subject: "Update on your organization application",
		HTML: m.render(m.rejectionTmpl, map[string]interface{}{
			"OrgName":      orgName,
			"AppName":      m.config.AppName,
			"Reason":       reason,
			"SupportEmail": m.config.SupportEmail,
			"FromName":     m.config.MailFromName,
		}),
	}
}

// Send posts the job to the Brevo transactional email endpoint. Callers run
// this off the request path; failures are reported, never retried here.
func (m *Mailer) Send(ctx context.Context, job models.EmailJob) error {
	if m.config.MailAPIKey == "" {
		return fmt.Errorf("mail API key not configured, dropping email to %s", job.To)
	}

	payload, err := json.Marshal(map[string]interface{}{
		"sender": map[string]string{
			"name":  m.config.MailFromName,
			"email": m.config.MailFrom,
		},
		"to":          []map[string]string{{"email": job.To}},
		"subject":     job.Subject,
		"htmlContent": job.HTML,
	})
	if err != nil {
		return fmt.Errorf("failed to encode mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.MailAPIURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", m.config.MailAPIKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail provider request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= http.StatusMultipleChoices {
		detail := gjson.GetBytes(body, "message").String()
		if detail == "" {
			detail = string(body)
		}
		return fmt.Errorf("mail provider returned %d: %s", resp.StatusCode, detail)
	}

	if id := gjson.GetBytes(body, "messageId").String(); id != "" {
		m.logger.Infof("Email %q to %s accepted (message %s)", job.Subject, job.To, id)
	} else {
		m.logger.Infof("Email %q to %s accepted", job.Subject, job.To)
	}
	return nil
}
