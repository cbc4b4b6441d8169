package v1

import (
	"net/http"

	"github.com/MGTheTrain/scrimhub/internal/domain/memberships"

	"github.com/gin-gonic/gin"
)

// MembershipHandler serves plans and subscriptions
type MembershipHandler interface {
	ListPlans(ctx *gin.Context)
	CreatePlan(ctx *gin.Context)
	UpdatePlan(ctx *gin.Context)
	ListMine(ctx *gin.Context)
	Subscribe(ctx *gin.Context)
	Due(ctx *gin.Context)
	Cancel(ctx *gin.Context)
}

type membershipHandler struct {
	membershipService memberships.MembershipService
}

// NewMembershipHandler creates a new MembershipHandler
func NewMembershipHandler(membershipService memberships.MembershipService) MembershipHandler {
	return &membershipHandler{membershipService: membershipService}
}

func (req *PlanRequest) toInput() memberships.PlanInput {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return memberships.PlanInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Interval:    req.Interval,
		IsActive:    isActive,
	}
}

// ListPlans handles GET /memberships/plans
func (handler *membershipHandler) ListPlans(ctx *gin.Context) {
	plans, err := handler.membershipService.ListPlans(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]*PlanResponse, 0, len(plans))
	for _, p := range plans {
		resp = append(resp, newPlanResponse(p))
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreatePlan handles POST /admin/plans
func (handler *membershipHandler) CreatePlan(ctx *gin.Context) {
	var req PlanRequest
	if !bindJSON(ctx, &req) {
		return
	}

	plan, err := handler.membershipService.CreatePlan(ctx.Request.Context(), req.toInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newPlanResponse(plan))
}

// UpdatePlan handles PUT /admin/plans/:id
func (handler *membershipHandler) UpdatePlan(ctx *gin.Context) {
	var req PlanRequest
	if !bindJSON(ctx, &req) {
		return
	}

	plan, err := handler.membershipService.UpdatePlan(ctx.Request.Context(), ctx.Param("id"), req.toInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newPlanResponse(plan))
}

// ListMine handles GET /memberships
func (handler *membershipHandler) ListMine(ctx *gin.Context) {
	list, err := handler.membershipService.ListMine(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]*MembershipResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, newMembershipResponse(m))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Subscribe handles POST /memberships. Card subscriptions answer 202 with the pending
// transaction id; credit subscriptions are active immediately.
func (handler *membershipHandler) Subscribe(ctx *gin.Context) {
	var req SubscribeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := handler.membershipService.Subscribe(ctx.Request.Context(), currentUserID(ctx), req.PlanID, req.PayWithCredits)
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := newMembershipResponse(result.Membership)
	resp.TransactionID = result.TransactionID
	if result.Membership.Status == memberships.StatusActive {
		ctx.JSON(http.StatusCreated, resp)
		return
	}
	ctx.JSON(http.StatusAccepted, resp)
}

// Due handles GET /memberships/due
func (handler *membershipHandler) Due(ctx *gin.Context) {
	membership, err := handler.membershipService.Due(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMembershipResponse(membership))
}

// Cancel handles POST /memberships/:id/cancel
func (handler *membershipHandler) Cancel(ctx *gin.Context) {
	membership, err := handler.membershipService.Cancel(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMembershipResponse(membership))
}
