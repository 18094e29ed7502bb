package middelware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"relivo-backend/models"
	"relivo-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTManager handles JWT token operations
type JWTManager struct {
	Config *models.Config
	Logger logger.Logger
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(cfg *models.Config, log logger.Logger) *JWTManager {
	return &JWTManager{
		Config: cfg,
		Logger: log,
	}
}

// GenerateToken generates a signed bearer token for a user
func (j *JWTManager) GenerateToken(user *models.User) (string, error) {
	claims := models.JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.Email,
			Issuer:    j.Config.AppName,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.Config.JWTExpiresIn)),
			NotBefore: jwt.NewNumericDate(time.Now()),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(j.Config.JWTSecret))
	if err != nil {
		j.Logger.Errorf("Failed to sign JWT token: %v", err)
		return "", err
	}

	j.Logger.Debugf("Generated JWT token for user: %s", user.ID)

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns the claims
func (j *JWTManager) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Prevent algorithm confusion attacks
		if method, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		} else if method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("invalid signing algorithm: %v", method.Alg())
		}

		return []byte(j.Config.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}

	return claims, nil
}

func unauthorized(c *gin.Context, message, details string) {
	c.JSON(http.StatusUnauthorized, models.APIResponse{
		Status:  "error",
		Code:    http.StatusUnauthorized,
		Message: message,
		Error: &models.APIError{
			Type:    "AuthenticationError",
			Details: details,
		},
	})
	c.Abort()
}

// AuthMiddleware validates the bearer token from the Authorization header and
// puts the claims on the request context.
func (j *JWTManager) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			j.Logger.Error("Missing Authorization header")
			unauthorized(c, "Missing Authorization header", "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			j.Logger.Error("Invalid Authorization header format")
			unauthorized(c, "Invalid Authorization header format", "Authorization header must be in format: Bearer <token>")
			return
		}

		claims, err := j.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			j.Logger.Errorf("Token validation failed: %v", err)
			unauthorized(c, "Invalid or expired token", err.Error())
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Set("jwt_claims", claims)

		j.Logger.Debugf("User authenticated: %s", claims.UserID)
		c.Next()
	}
}

// RequireRole checks the role claim of the authenticated user. Runs after
// AuthMiddleware.
func (j *JWTManager) RequireRole(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := c.Get("jwt_claims")
		if !exists {
			j.Logger.Error("JWT claims not found in context")
			unauthorized(c, "Authentication required", "User not authenticated")
			return
		}

		jwtClaims := claims.(*models.JWTClaims)
		if jwtClaims.Role != requiredRole {
			j.Logger.Errorf("User %s does not have required role: %s", jwtClaims.UserID, requiredRole)
			c.JSON(http.StatusForbidden, models.APIResponse{
				Status:  "error",
				Code:    http.StatusForbidden,
				Message: "Insufficient permissions",
				Error: &models.APIError{
					Type:    "AuthorizationError",
					Details: fmt.Sprintf("Required role: %s", requiredRole),
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminRequired guards the admin review surface.
func (j *JWTManager) AdminRequired() gin.HandlerFunc {
	return j.RequireRole(models.UserRoleAdmin)
}
