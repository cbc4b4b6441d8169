package v1

import (
	"net/http"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

const activityLimit = 100

// AdminHandler serves staff-only account and policy endpoints
type AdminHandler interface {
	ApplyAccountAction(ctx *gin.Context)
	GetPolicy(ctx *gin.Context)
	UpdatePolicy(ctx *gin.Context)
	GetLockoutPolicy(ctx *gin.Context)
	UpdateLockoutPolicy(ctx *gin.Context)
	UpsertAuthPolicy(ctx *gin.Context)
	Activity(ctx *gin.Context)
}

type adminHandler struct {
	adminService accounts.AccountAdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService accounts.AccountAdminService) AdminHandler {
	return &adminHandler{adminService: adminService}
}

// ApplyAccountAction handles POST /admin/users/:id/actions
func (handler *adminHandler) ApplyAccountAction(ctx *gin.Context) {
	var req AccountActionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := handler.adminService.ApplyAccountAction(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id"), req.Action)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if req.Action == accounts.AccountActionHardDelete {
		ctx.JSON(http.StatusOK, InfoResponse{Message: "Account deleted."})
		return
	}
	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// GetPolicy handles GET /admin/policy
func (handler *adminHandler) GetPolicy(ctx *gin.Context) {
	policy, err := handler.adminService.GetPolicy(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newPolicyResponse(policy))
}

// UpdatePolicy handles PUT /admin/policy
func (handler *adminHandler) UpdatePolicy(ctx *gin.Context) {
	var req PolicyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	policy, err := handler.adminService.UpdatePolicy(ctx.Request.Context(), &accounts.Policy{
		RequireEmailVerification: req.RequireEmailVerification,
		RequireMFAForStaff:       req.RequireMFAForStaff,
		AllowPassword:            req.AllowPassword,
		AllowMagicLink:           req.AllowMagicLink,
		AllowEmailOTP:            req.AllowEmailOTP,
		AllowSMSOTP:              req.AllowSMSOTP,
		AllowTOTP:                req.AllowTOTP,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newPolicyResponse(policy))
}

// GetLockoutPolicy handles GET /admin/lockout-policy
func (handler *adminHandler) GetLockoutPolicy(ctx *gin.Context) {
	policy, err := handler.adminService.GetLockoutPolicy(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newLockoutPolicyResponse(policy))
}

// UpdateLockoutPolicy handles PUT /admin/lockout-policy
func (handler *adminHandler) UpdateLockoutPolicy(ctx *gin.Context) {
	var req LockoutPolicyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	policy, err := handler.adminService.UpdateLockoutPolicy(ctx.Request.Context(), &accounts.LockoutPolicy{
		Threshold1: req.Threshold1,
		Wait1:      req.Wait1,
		Threshold2: req.Threshold2,
		Wait2:      req.Wait2,
		Threshold3: req.Threshold3,
		Wait3:      req.Wait3,
		Active:     req.Active,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newLockoutPolicyResponse(policy))
}

// UpsertAuthPolicy handles PUT /admin/auth-policies
func (handler *adminHandler) UpsertAuthPolicy(ctx *gin.Context) {
	var req AuthPolicyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	policy, err := handler.adminService.UpsertAuthPolicy(ctx.Request.Context(), &accounts.AuthPolicy{
		Scope:             req.Scope,
		UserID:            req.UserID,
		IsMandatory:       req.IsMandatory,
		IsActive:          req.IsActive,
		ApplicableMethods: req.ApplicableMethods,
		SelectedMethods:   req.SelectedMethods,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newAuthPolicyResponse(policy))
}

// Activity handles GET /admin/users/:id/activity
func (handler *adminHandler) Activity(ctx *gin.Context) {
	userID := ctx.Param("id")

	logins, err := handler.adminService.ListLoginActivity(ctx.Request.Context(), userID, activityLimit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	requests, err := handler.adminService.ListRequestLogs(ctx.Request.Context(), userID, activityLimit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newActivityResponse(logins, requests))
}
