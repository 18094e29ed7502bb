package controller

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"relivo-backend/models"
	"relivo-backend/services"
	"relivo-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// OrganizationController serves the application flow and the admin review
// actions.
type OrganizationController struct {
	orgService services.OrganizationServiceInterface
	logger     logger.Logger
}

// NewOrganizationController creates the organization controller.
func NewOrganizationController(orgService services.OrganizationServiceInterface, log logger.Logger) *OrganizationController {
	return &OrganizationController{
		orgService: orgService,
		logger:     log,
	}
}

// Apply handles POST /api/v1/organizations/apply
// @Summary Submit an organization application
// @Description Register an organization owned by the authenticated user; status starts pending
// @Tags Organizations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.OrganizationApplication true "Application"
// @Success 201 {object} models.APIResponse "Application submitted"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid application"
// @Failure 409 {object} models.APIResponse "Conflict - Application already exists"
// @Router /organizations/apply [post]
func (h *OrganizationController) Apply(c *gin.Context) {
	var req models.OrganizationApplication
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.logger, err)
		return
	}

	org, err := h.orgService.Apply(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		serviceError(c, h.logger, err)
		return
	}

	success(c, http.StatusCreated, "Organization application submitted", org)
}

// GetMine handles GET /api/v1/organizations/me
// @Summary Get my organization
// @Tags Organizations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Organization retrieved"
// @Failure 404 {object} models.APIResponse "Not Found - No application on file"
// @Router /organizations/me [get]
func (h *OrganizationController) GetMine(c *gin.Context) {
	org, err := h.orgService.GetMine(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		serviceError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, "Organization retrieved successfully", org)
}

// ListAll handles GET /api/v1/organizations/admin/all
// @Summary List organizations with verified owners (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Organizations retrieved"
// @Failure 403 {object} models.APIResponse "Forbidden - Admin only"
// @Router /organizations/admin/all [get]
func (h *OrganizationController) ListAll(c *gin.Context) {
	orgs, err := h.orgService.ListAllVerified(c.Request.Context())
	if err != nil {
		serviceError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, "Organizations retrieved successfully", orgs)
}

// ListPending handles GET /api/v1/organizations/admin/pending
// @Summary List the pending review queue (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Pending organizations retrieved"
// @Failure 403 {object} models.APIResponse "Forbidden - Admin only"
// @Router /organizations/admin/pending [get]
func (h *OrganizationController) ListPending(c *gin.Context) {
	orgs, err := h.orgService.ListPending(c.Request.Context())
	if err != nil {
		serviceError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, "Pending organizations retrieved successfully", orgs)
}

func (h *OrganizationController) orgID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		bindError(c, h.logger, err)
		return 0, false
	}
	return id, true
}

// Approve handles POST /api/v1/organizations/admin/:id/approve
// @Summary Approve an organization (admin)
// @Description Promote the owner to the organization role; optionally issue temporary credentials
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param request body models.ApproveOrganizationRequest false "Approval options"
// @Success 200 {object} models.APIResponse "Organization approved"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid transition"
// @Failure 403 {object} models.APIResponse "Forbidden - Admin only"
// @Failure 404 {object} models.APIResponse "Not Found - Organization does not exist"
// @Router /organizations/admin/{id}/approve [post]
func (h *OrganizationController) Approve(c *gin.Context) {
	id, ok := h.orgID(c)
	if !ok {
		return
	}

	// Body is optional; an empty body means no temporary credentials
	var req models.ApproveOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindError(c, h.logger, err)
		return
	}

	org, err := h.orgService.Approve(c.Request.Context(), id, req.GenerateTemporaryPassword)
	if err != nil {
		serviceError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, "Organization approved successfully", org)
}

// Reject handles POST /api/v1/organizations/admin/:id/reject
// @Summary Reject an organization (admin)
// @Description Store the optional reason verbatim and deactivate the owner account
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param request body models.RejectOrganizationRequest false "Rejection reason"
// @Success 200 {object} models.APIResponse "Organization rejected"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid transition"
// @Failure 403 {object} models.APIResponse "Forbidden - Admin only"
// @Failure 404 {object} models.APIResponse "Not Found - Organization does not exist"
// @Router /organizations/admin/{id}/reject [post]
func (h *OrganizationController) Reject(c *gin.Context) {
	id, ok := h.orgID(c)
	if !ok {
		return
	}

	var req models.RejectOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindError(c, h.logger, err)
		return
	}

	org, err := h.orgService.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		serviceError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, "Organization rejected", org)
}

// Suspend handles PUT /api/v1/organizations/admin/:id/suspend
// @Summary Suspend an approved organization (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} models.APIResponse "Organization suspended"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid transition"
// @Failure 403 {object} models.APIResponse "Forbidden - Admin only"
// @Failure 404 {object} models.APIResponse "Not Found - Organization does not exist"
// @Router /organizations/admin/{id}/suspend [put]
func (h *OrganizationController) Suspend(c *gin.Context) {
	id, ok := h.orgID(c)
	if !ok {
		return
	}

	org, err := h.orgService.Suspend(c.Request.Context(), id)
	if err != nil {
		serviceError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, "Organization suspended", org)
}

// Reactivate handles PUT /api/v1/organizations/admin/:id/reactivate
// @Summary Reactivate a suspended organization (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} models.APIResponse "Organization reactivated"
// @Failure 400 {object} models.APIResponse "Bad Request - Invalid transition"
// @Failure 403 {object} models.APIResponse "Forbidden - Admin only"
// @Failure 404 {object} models.APIResponse "Not Found - Organization does not exist"
// @Router /organizations/admin/{id}/reactivate [put]
func (h *OrganizationController) Reactivate(c *gin.Context) {
	id, ok := h.orgID(c)
	if !ok {
		return
	}

	org, err := h.orgService.Reactivate(c.Request.Context(), id)
	if err != nil {
		serviceError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, "Organization reactivated", org)
}
