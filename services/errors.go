package services

import "errors"

// Sentinel errors returned by the service layer. Controllers translate them
// to HTTP statuses; the message text is surfaced to the client as-is.
var (
	ErrEmailTaken         = errors.New("Email already registered")
	ErrEmailNotRegistered = errors.New("Email not registered")
	ErrIncorrectPassword  = errors.New("Incorrect password")
	ErrEmailNotVerified   = errors.New("Email not verified")
	ErrAlreadyVerified    = errors.New("Email already verified")
	ErrAccountDisabled    = errors.New("Account is deactivated")
	ErrInvalidCode        = errors.New("Invalid verification code")
	ErrCodeExpired        = errors.New("Verification code expired")
	ErrInvalidRole        = errors.New("Invalid role")
	ErrUserNotFound       = errors.New("User not found")

	ErrOrganizationExists   = errors.New("Organization application already exists")
	ErrOrganizationNotFound = errors.New("Organization not found")
	ErrInvalidStatus        = errors.New("Invalid organization status")
	ErrInvalidTransition    = errors.New("Invalid status transition")
)
