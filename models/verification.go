package models

import (
	"time"

	"github.com/uptrace/bun"
)

// VerificationCode is a short-lived one-time numeric credential proving
// email ownership. At most one active code exists per email: reissuing
// purges any previous code for that address.
type VerificationCode struct {
	bun.BaseModel `bun:"table:verification_codes,alias:vc"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Email     string    `bun:"email,notnull" json:"email"`
	Code      string    `bun:"code,notnull" json:"-"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	ExpiresAt time.Time `bun:"expires_at,notnull" json:"expires_at"`
}

// Expired reports whether the code is past its expiry at the given instant.
func (v *VerificationCode) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}
