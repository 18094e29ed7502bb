package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserRole represents the role of a user
type UserRole string

const (
	UserRoleApplicant    UserRole = "applicant"
	UserRoleOrganization UserRole = "organization"
	UserRoleAdmin        UserRole = "admin"
)

// User represents a user in the system. Users are never hard-deleted;
// rejection and suspension only flip IsActive.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID                 string     `bun:"id,pk,type:uuid" json:"id"`
	Email              string     `bun:"email,notnull,unique" json:"email"`
	PasswordHash       string     `bun:"hashed_password,notnull" json:"-"`
	FullName           string     `bun:"full_name" json:"full_name"`
	Role               UserRole   `bun:"role,notnull" json:"role"`
	IsVerified         bool       `bun:"is_verified,notnull,default:false" json:"is_verified"`
	IsActive           bool       `bun:"is_active,notnull,default:true" json:"is_active"`
	MustChangePassword bool       `bun:"must_change_password,notnull,default:false" json:"must_change_password"`
	CreatedAt          time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt          *time.Time `bun:"updated_at,nullzero" json:"updated_at,omitempty"`
}

// RegisterUser represents the request structure for user registration
// @Description User registration request with account details
type RegisterUser struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"securePassword123"`
	FullName string `json:"full_name" binding:"required" example:"John Doe"`
	Role     string `json:"role,omitempty" example:"applicant"`
}

// LoginRequest represents the credential payload for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"securePassword123"`
}

// VerifyCodeRequest carries an email plus the 6-digit code that proves ownership
type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required,email" example:"user@example.com"`
	Code  string `json:"code" binding:"required,len=6" example:"482913"`
}

// EmailRequest is used by resend-code and forgot-password
type EmailRequest struct {
	Email string `json:"email" binding:"required,email" example:"user@example.com"`
}

// PasswordResetConfirm verifies an OTP and sets a new password
type PasswordResetConfirm struct {
	Email       string `json:"email" binding:"required,email" example:"user@example.com"`
	Code        string `json:"code" binding:"required,len=6" example:"482913"`
	NewPassword string `json:"new_password" binding:"required,min=8" example:"newSecurePassword123"`
}

// TokenResponse is returned on successful login or verification
type TokenResponse struct {
	AccessToken        string `json:"access_token"`
	TokenType          string `json:"token_type"`
	MustChangePassword bool   `json:"must_change_password,omitempty"`
}
