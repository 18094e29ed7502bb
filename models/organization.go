package models

import (
	"strings"
	"time"

	"github.com/uptrace/bun"
)

// OrganizationStatus represents the lifecycle status of an organization.
// Statuses are stored lowercase and parsed case-insensitively; reactivating
// a suspended organization returns it to "approved" rather than introducing
// a separate active state.
type OrganizationStatus string

const (
	OrganizationStatusPending   OrganizationStatus = "pending"
	OrganizationStatusApproved  OrganizationStatus = "approved"
	OrganizationStatusRejected  OrganizationStatus = "rejected"
	OrganizationStatusSuspended OrganizationStatus = "suspended"
)

// ParseOrganizationStatus folds case and maps legacy "active" to approved.
// The second return is false for unknown values.
func ParseOrganizationStatus(s string) (OrganizationStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return OrganizationStatusPending, true
	case "approved", "active":
		return OrganizationStatusApproved, true
	case "rejected":
		return OrganizationStatusRejected, true
	case "suspended":
		return OrganizationStatusSuspended, true
	}
	return "", false
}

// Organization is an applicant entity requesting elevated platform access,
// subject to admin approval. Each organization is exclusively owned by one
// user; status transitions cascade to the owner's role and activation.
type Organization struct {
	bun.BaseModel `bun:"table:organizations,alias:org"`

	ID                    int64              `bun:"id,pk,autoincrement" json:"id"`
	UserID                string             `bun:"user_id,notnull,type:uuid" json:"user_id"`
	Name                  string             `bun:"name,notnull" json:"name"`
	Description           string             `bun:"description" json:"description,omitempty"`
	Website               string             `bun:"website" json:"website,omitempty"`
	ContactEmail          string             `bun:"contact_email" json:"contact_email,omitempty"`
	Country               string             `bun:"country" json:"country,omitempty"`
	Type                  string             `bun:"org_type" json:"type,omitempty"`
	Status                OrganizationStatus `bun:"status,notnull,default:'pending'" json:"status"`
	RejectionReason       string             `bun:"rejection_reason" json:"rejection_reason,omitempty"`
	VerificationDocuments []string           `bun:"verification_documents,type:jsonb" json:"verification_documents,omitempty"`
	CreatedAt             time.Time          `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt             *time.Time         `bun:"updated_at,nullzero" json:"updated_at,omitempty"`

	Owner *User `bun:"rel:belongs-to,join:user_id=id" json:"owner,omitempty"`
}

// OrganizationApplication is the payload submitted by a user who wants to
// act as an organization on the platform
// @Description Organization application request
type OrganizationApplication struct {
	Name                  string   `json:"name" validate:"required,min=2,max=200" example:"Helping Hands Foundation"`
	Description           string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Website               string   `json:"website,omitempty" validate:"omitempty,url,max=200"`
	ContactEmail          string   `json:"contact_email,omitempty" validate:"omitempty,email,max=200"`
	Country               string   `json:"country,omitempty" validate:"omitempty,min=2,max=50"`
	Type                  string   `json:"type,omitempty" validate:"omitempty,min=2,max=50"`
	VerificationDocuments []string `json:"verification_documents,omitempty" validate:"omitempty,dive,max=500"`
}

// RejectOrganizationRequest carries the optional free-text reason stored
// verbatim and echoed into the rejection email
type RejectOrganizationRequest struct {
	Reason string `json:"reason,omitempty" example:"Missing registration documents"`
}

// ApproveOrganizationRequest controls credential issuance on approval
type ApproveOrganizationRequest struct {
	GenerateTemporaryPassword bool `json:"generate_temporary_password,omitempty"`
}

// UpdateOrganizationStatusRequest drives the generic admin status endpoint
type UpdateOrganizationStatusRequest struct {
	Status string `json:"status" binding:"required" example:"approved"`
	Reason string `json:"reason,omitempty"`
}
