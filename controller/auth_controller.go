package controller

import (
	"net/http"
	"strconv"

	"relivo-backend/models"
	"relivo-backend/services"
	"relivo-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// AuthController serves the registration, verification and login endpoints
// plus the admin organization surface mounted under /auth/admin.
type AuthController struct {
	authService services.AuthServiceInterface
	orgService  services.OrganizationServiceInterface
	logger      logger.Logger
}

// NewAuthController creates the auth controller.
func NewAuthController(authService services.AuthServiceInterface, orgService services.OrganizationServiceInterface, log logger.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		orgService:  orgService,
		logger:      log,
	}
}

// Register handles POST /api/v1/auth/register
// @Summary Register a new account
// @Description Create an unverified account and email a verification code
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterUser true "Registration request"
// @Success 201 {object} models.APIResponse "Account registered, verification code sent"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid registration data"
// @Failure 409 {object} models.APIResponse "Conflict - Email already registered"
// @Failure 500 {object} models.APIResponse "Internal Server Error"
// @Router /auth/register [post]
func (h *AuthController) Register(c *gin.Context) {
	var req models.RegisterUser
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		serviceError(c, h.logger, err)
		return
	}

	success(c, http.StatusCreated, "Account registered, verification code sent", user)
}

// Verify handles POST /api/v1/auth/verify
// @Summary Verify email address
// @Description Consume a verification code and return a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.VerifyCodeRequest true "Verification request"
// @Success 200 {object} models.APIResponse "Email verified"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid or expired code"
// @Failure 404 {object} models.APIResponse "Not Found - Email not registered"
// @Router /auth/verify [post]
func (h *AuthController) Verify(c *gin.Context) {
	var req models.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	token, err := h.authService.VerifyEmail(c.Request.Context(), &req)
	if err != nil {
		serviceError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, "Email verified successfully", token)
}

// ResendCode handles POST /api/v1/auth/resend-code
// @Summary Resend verification code
// @Description Replace the pending code and re-send the verification email
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.EmailRequest true "Email"
// @Success 200 {object} models.APIResponse "Verification code sent"
// @Failure 400 {object} models.APIResponse "Bad Request - Email already verified"
// @Failure 404 {object} models.APIResponse "Not Found - Email not registered"
// @Router /auth/resend-code [post]
func (h *AuthController) ResendCode(c *gin.Context) {
	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	if err := h.authService.ResendCode(c.Request.Context(), req.Email); err != nil {
		serviceError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, "Verification code sent", nil)
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Authenticate a verified account and return a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.APIResponse "Token issued"
// @Failure 400 {object} models.APIResponse "Bad Request - Email not verified"
// @Failure 401 {object} models.APIResponse "Unauthorized - Incorrect password"
// @Failure 404 {object} models.APIResponse "Not Found - Email not registered"
// @Router /auth/login [post]
func (h *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		serviceError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, "Token generated successfully", token)
}

// ForgotPassword handles POST /api/v1/auth/forgot-password
// @Summary Request a password reset code
// @Description Email a one-time reset code to a registered address
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.EmailRequest true "Email"
// @Success 200 {object} models.APIResponse "Reset code sent"
// @Failure 404 {object} models.APIResponse "Not Found - Email not registered"
// @Router /auth/forgot-password [post]
func (h *AuthController) ForgotPassword(c *gin.Context) {
	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		serviceError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, "Password reset code sent", nil)
}

// ResetPassword handles POST /api/v1/auth/reset-password
// @Summary Reset password
// @Description Consume a reset code and store the new password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.PasswordResetConfirm true "Reset request"
// @Success 200 {object} models.APIResponse "Password reset"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid or expired code"
// @Failure 404 {object} models.APIResponse "Not Found - Email not registered"
// @Router /auth/reset-password [post]
func (h *AuthController) ResetPassword(c *gin.Context) {
	var req models.PasswordResetConfirm
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), &req); err != nil {
		serviceError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, "Password reset successfully", nil)
}

// Me handles GET /api/v1/auth/me
// @Summary Get the authenticated profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Profile retrieved"
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Failure 404 {object} models.APIResponse "Not Found - User does not exist"
// @Router /auth/me [get]
func (h *AuthController) Me(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		serviceError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, "Profile retrieved successfully", user)
}

// ListOrganizations handles GET /api/v1/auth/admin/organizations
// @Summary List organizations (admin)
// @Description Paginated organization list, optionally filtered by status
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter (pending|approved|rejected|suspended)"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Max rows to return"
// @Success 200 {object} models.APIResponse "Organizations retrieved"
// @Failure 400 {object} models.APIResponse "Bad Request - Unknown status"
// @Failure 403 {object} models.APIResponse "Forbidden - Admin only"
// @Router /auth/admin/organizations [get]
func (h *AuthController) ListOrganizations(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	orgs, err := h.orgService.ListAdmin(c.Request.Context(), c.Query("status"), skip, limit)
	if err != nil {
		serviceError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, "Organizations retrieved successfully", orgs)
}

// UpdateOrganizationStatus handles PUT /api/v1/auth/admin/organizations/:id/status
// @Summary Update organization status (admin)
// @Description Drive the status machine; approving or rejecting cascades to the owner account
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param request body models.UpdateOrganizationStatusRequest true "Target status"
// @Success 200 {object} models.APIResponse "Status updated"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid status or transition"
// @Failure 403 {object} models.APIResponse "Forbidden - Admin only"
// @Failure 404 {object} models.APIResponse "Not Found - Organization does not exist"
// @Router /auth/admin/organizations/{id}/status [put]
func (h *AuthController) UpdateOrganizationStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		bindError(c, h.logger, err)
		return
	}

	var req models.UpdateOrganizationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	org, err := h.orgService.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		serviceError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, "Organization status updated successfully", org)
}
