package models

import "time"

// Config holds all configuration for the application
type Config struct {
	// Application
	AppName    string `mapstructure:"app_name"`
	AppVersion string `mapstructure:"app_version"`
	AppEnv     string `mapstructure:"app_env"`
	AppHost    string `mapstructure:"app_host"`
	AppPort    string `mapstructure:"app_port"`

	// JWT
	JWTSecret    string        `mapstructure:"jwt_secret"`
	JWTExpiresIn time.Duration `mapstructure:"jwt_expires_in"`

	// Database
	DatabaseURL     string `mapstructure:"database_url"`
	DatabaseDialect string `mapstructure:"database_dialect"` // "postgres" or "sqlite"

	// Mail (Brevo transactional API)
	MailAPIURL    string        `mapstructure:"mail_api_url"`
	MailAPIKey    string        `mapstructure:"mail_api_key"`
	MailFrom      string        `mapstructure:"mail_from"`
	MailFromName  string        `mapstructure:"mail_from_name"`
	MailTimeout   time.Duration `mapstructure:"mail_timeout"`
	MailQueueSize int           `mapstructure:"mail_queue_size"`
	OrgPortalURL  string        `mapstructure:"org_portal_url"`
	SupportEmail  string        `mapstructure:"support_email"`

	// Verification codes
	VerificationCodeTTL time.Duration `mapstructure:"verification_code_ttl"`
	CodePurgeSchedule   string        `mapstructure:"code_purge_schedule"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// CORS
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Base Path
	BasePath string `mapstructure:"basePath"`
}
