package v1

import (
	"net/http"

	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/MGTheTrain/scrimhub/internal/domain/scrimmages"

	"github.com/gin-gonic/gin"
)

// ScrimmageHandler serves scrimmages, their rosters and the category catalog
type ScrimmageHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	Mine(ctx *gin.Context)
	Upcoming(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Join(ctx *gin.Context)
	Leave(ctx *gin.Context)
	Invite(ctx *gin.Context)
	CheckIn(ctx *gin.Context)
	Roster(ctx *gin.Context)
	Cancel(ctx *gin.Context)
	DistributePrizes(ctx *gin.Context)
	ListCategories(ctx *gin.Context)
	CreateCategory(ctx *gin.Context)
	ListTypes(ctx *gin.Context)
	CreateType(ctx *gin.Context)
}

type scrimmageHandler struct {
	scrimmageService scrimmages.ScrimmageService
}

// NewScrimmageHandler creates a new ScrimmageHandler
func NewScrimmageHandler(scrimmageService scrimmages.ScrimmageService) ScrimmageHandler {
	return &scrimmageHandler{scrimmageService: scrimmageService}
}

func (req *ScrimmageRequest) toInput() scrimmages.ScrimmageInput {
	return scrimmages.ScrimmageInput{
		GroupID:             req.GroupID,
		Title:               req.Title,
		Description:         req.Description,
		TypeID:              req.TypeID,
		CustomFields:        req.CustomFields,
		LocationName:        req.LocationName,
		Address:             req.Address,
		StartAt:             req.StartAt,
		EndAt:               req.EndAt,
		MaxParticipants:     req.MaxParticipants,
		Visibility:          req.Visibility,
		Tags:                req.Tags,
		EntryFee:            req.EntryFee,
		Currency:            req.Currency,
		AutoPayEnabled:      req.AutoPayEnabled,
		TeamPayEnabled:      req.TeamPayEnabled,
		OrganizerFeePercent: req.OrganizerFeePercent,
		OrganizerFeeFlat:    req.OrganizerFeeFlat,
		PrizePoolAmount:     req.PrizePoolAmount,
		Status:              req.Status,
	}
}

// List handles GET /scrimmages with optional category_id, type_id, after, limit and offset
func (handler *scrimmageHandler) List(ctx *gin.Context) {
	limit, offset, ok := pageParams(ctx)
	if !ok {
		return
	}
	after, ok := queryTime(ctx, "after")
	if !ok {
		return
	}

	list, err := handler.scrimmageService.List(ctx.Request.Context(), &scrimmages.ScrimmageQuery{
		ViewerID:   currentUserID(ctx),
		IsStaff:    currentIsStaff(ctx),
		CategoryID: ctx.Query("category_id"),
		TypeID:     ctx.Query("type_id"),
		After:      after,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newScrimmageResponses(list))
}

// Create handles POST /scrimmages
func (handler *scrimmageHandler) Create(ctx *gin.Context) {
	var req ScrimmageRequest
	if !bindJSON(ctx, &req) {
		return
	}

	scrim, err := handler.scrimmageService.Create(ctx.Request.Context(), currentUserID(ctx), req.toInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newScrimmageResponse(scrim))
}

// Mine handles GET /scrimmages/my
func (handler *scrimmageHandler) Mine(ctx *gin.Context) {
	list, err := handler.scrimmageService.Mine(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newScrimmageResponses(list))
}

// Upcoming handles GET /scrimmages/upcoming
func (handler *scrimmageHandler) Upcoming(ctx *gin.Context) {
	list, err := handler.scrimmageService.Upcoming(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newScrimmageResponses(list))
}

// GetByID handles GET /scrimmages/:id
func (handler *scrimmageHandler) GetByID(ctx *gin.Context) {
	scrim, err := handler.scrimmageService.GetByID(ctx.Request.Context(), currentUserID(ctx), currentIsStaff(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newScrimmageResponse(scrim))
}

// Update handles PATCH /scrimmages/:id. The body carries the full editable field set.
func (handler *scrimmageHandler) Update(ctx *gin.Context) {
	var req ScrimmageRequest
	if !bindJSON(ctx, &req) {
		return
	}

	scrim, err := handler.scrimmageService.Update(ctx.Request.Context(), currentUserID(ctx), currentIsStaff(ctx), ctx.Param("id"), req.toInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newScrimmageResponse(scrim))
}

// Delete handles DELETE /scrimmages/:id
func (handler *scrimmageHandler) Delete(ctx *gin.Context) {
	if err := handler.scrimmageService.Delete(ctx.Request.Context(), currentUserID(ctx), currentIsStaff(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}

// Join handles POST /scrimmages/:id/join. The role defaults to player.
func (handler *scrimmageHandler) Join(ctx *gin.Context) {
	var req JoinRequest
	if !bindOptionalJSON(ctx, &req) {
		return
	}

	participation, err := handler.scrimmageService.Join(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id"), req.Role)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newParticipationResponse(participation))
}

// Leave handles POST /scrimmages/:id/leave
func (handler *scrimmageHandler) Leave(ctx *gin.Context) {
	if err := handler.scrimmageService.Leave(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}

// Invite handles POST /scrimmages/:id/invite
func (handler *scrimmageHandler) Invite(ctx *gin.Context) {
	var req InviteRequest
	if !bindJSON(ctx, &req) {
		return
	}

	participation, err := handler.scrimmageService.Invite(ctx.Request.Context(), currentUserID(ctx), currentIsStaff(ctx), ctx.Param("id"), req.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newParticipationResponse(participation))
}

// CheckIn handles POST /scrimmages/:id/checkin
func (handler *scrimmageHandler) CheckIn(ctx *gin.Context) {
	participation, err := handler.scrimmageService.CheckIn(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newParticipationResponse(participation))
}

// Roster handles GET /scrimmages/:id/roster
func (handler *scrimmageHandler) Roster(ctx *gin.Context) {
	// visibility check
	if _, err := handler.scrimmageService.GetByID(ctx.Request.Context(), currentUserID(ctx), currentIsStaff(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	roster, err := handler.scrimmageService.Roster(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]*ParticipationResponse, 0, len(roster))
	for _, p := range roster {
		resp = append(resp, newParticipationResponse(p))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Cancel handles POST /scrimmages/:id/cancel and reports one refund result per payment
func (handler *scrimmageHandler) Cancel(ctx *gin.Context) {
	results, err := handler.scrimmageService.Cancel(ctx.Request.Context(), currentUserID(ctx), currentIsStaff(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	if results == nil {
		results = []*payments.RefundResult{}
	}
	ctx.JSON(http.StatusOK, results)
}

// DistributePrizes handles POST /scrimmages/:id/prizes
func (handler *scrimmageHandler) DistributePrizes(ctx *gin.Context) {
	var req PrizesRequest
	if !bindJSON(ctx, &req) {
		return
	}

	awards := make([]payments.PrizeAward, 0, len(req.Awards))
	for _, a := range req.Awards {
		awards = append(awards, payments.PrizeAward{UserID: a.UserID, Amount: a.Amount})
	}

	txns, err := handler.scrimmageService.DistributePrizes(ctx.Request.Context(), currentUserID(ctx), currentIsStaff(ctx), ctx.Param("id"), awards)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newTransactionResponses(txns))
}

// ListCategories handles GET /scrimmages/categories
func (handler *scrimmageHandler) ListCategories(ctx *gin.Context) {
	categories, err := handler.scrimmageService.ListCategories(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, newCategoryResponse(c))
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateCategory handles POST /admin/scrimmage-categories
func (handler *scrimmageHandler) CreateCategory(ctx *gin.Context) {
	var req CategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	category, err := handler.scrimmageService.CreateCategory(ctx.Request.Context(), req.Name)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newCategoryResponse(category))
}

// ListTypes handles GET /scrimmages/types with an optional category_id filter
func (handler *scrimmageHandler) ListTypes(ctx *gin.Context) {
	types, err := handler.scrimmageService.ListTypes(ctx.Request.Context(), ctx.Query("category_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]*ScrimmageTypeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, newScrimmageTypeResponse(t))
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateType handles POST /admin/scrimmage-types
func (handler *scrimmageHandler) CreateType(ctx *gin.Context) {
	var req ScrimmageTypeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	scrimmageType, err := handler.scrimmageService.CreateType(ctx.Request.Context(), req.CategoryID, req.Name, req.CustomFieldSchema)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newScrimmageTypeResponse(scrimmageType))
}
