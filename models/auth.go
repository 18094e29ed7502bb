package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims represents the JWT claims carried by every bearer token:
// subject is the user's email, plus the user id and role used by the
// admin-only route guard.
type JWTClaims struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`

	jwt.RegisteredClaims
}
