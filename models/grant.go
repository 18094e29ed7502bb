package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Grant is a funding opportunity published on the platform. The admin
// backend only owns its schema: the columns creator_id, organization_id
// and rejection_reason were added after launch and are applied by the
// idempotent migrations in infrastructure.
type Grant struct {
	bun.BaseModel `bun:"table:grants,alias:grt"`

	ID              int64      `bun:"id,pk,autoincrement" json:"id"`
	Title           string     `bun:"title,notnull" json:"title"`
	Description     string     `bun:"description" json:"description,omitempty"`
	Deadline        *time.Time `bun:"deadline,nullzero" json:"deadline,omitempty"`
	CreatorID       string     `bun:"creator_id,nullzero,type:uuid" json:"creator_id,omitempty"`
	OrganizationID  int64      `bun:"organization_id,nullzero" json:"organization_id,omitempty"`
	RejectionReason string     `bun:"rejection_reason" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}
