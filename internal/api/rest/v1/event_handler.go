package v1

import (
	"net/http"

	"github.com/MGTheTrain/scrimhub/internal/domain/events"
	"github.com/MGTheTrain/scrimhub/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

// EventHandler serves hosted events and RSVPs
type EventHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	RSVP(ctx *gin.Context)
	CheckIn(ctx *gin.Context)
	Cancel(ctx *gin.Context)
	Attendees(ctx *gin.Context)
}

type eventHandler struct {
	eventService events.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService events.EventService) EventHandler {
	return &eventHandler{eventService: eventService}
}

func (req *EventRequest) toInput() events.EventInput {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	return events.EventInput{
		GroupID:             req.GroupID,
		Title:               req.Title,
		Description:         req.Description,
		LocationName:        req.LocationName,
		Address:             req.Address,
		StartAt:             req.StartAt,
		EndAt:               req.EndAt,
		IsPublic:            isPublic,
		Tags:                req.Tags,
		Capacity:            req.Capacity,
		EntryFee:            req.EntryFee,
		Currency:            req.Currency,
		AutoPayEnabled:      req.AutoPayEnabled,
		OrganizerFeePercent: req.OrganizerFeePercent,
		OrganizerFeeFlat:    req.OrganizerFeeFlat,
		Status:              req.Status,
	}
}

// List handles GET /events with optional group_id, from, limit and offset
func (handler *eventHandler) List(ctx *gin.Context) {
	limit, offset, ok := pageParams(ctx)
	if !ok {
		return
	}
	from, ok := queryTime(ctx, "from")
	if !ok {
		return
	}

	list, err := handler.eventService.List(ctx.Request.Context(), &events.EventQuery{
		ViewerID: currentUserID(ctx),
		IsStaff:  currentIsStaff(ctx),
		GroupID:  ctx.Query("group_id"),
		From:     from,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]*EventResponse, 0, len(list))
	for _, e := range list {
		resp = append(resp, newEventResponse(e))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Create handles POST /events
func (handler *eventHandler) Create(ctx *gin.Context) {
	var req EventRequest
	if !bindJSON(ctx, &req) {
		return
	}

	event, err := handler.eventService.Create(ctx.Request.Context(), currentUserID(ctx), req.toInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newEventResponse(event))
}

// GetByID handles GET /events/:id
func (handler *eventHandler) GetByID(ctx *gin.Context) {
	event, err := handler.eventService.GetByID(ctx.Request.Context(), currentUserID(ctx), currentIsStaff(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newEventResponse(event))
}

// Update handles PATCH /events/:id
func (handler *eventHandler) Update(ctx *gin.Context) {
	var req EventRequest
	if !bindJSON(ctx, &req) {
		return
	}

	event, err := handler.eventService.Update(ctx.Request.Context(), currentUserID(ctx), currentIsStaff(ctx), ctx.Param("id"), req.toInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newEventResponse(event))
}

// Delete handles DELETE /events/:id
func (handler *eventHandler) Delete(ctx *gin.Context) {
	if err := handler.eventService.Delete(ctx.Request.Context(), currentUserID(ctx), currentIsStaff(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}

// RSVP handles POST /events/:id/rsvp
func (handler *eventHandler) RSVP(ctx *gin.Context) {
	var req RSVPRequest
	if !bindJSON(ctx, &req) {
		return
	}

	rsvp, err := handler.eventService.RSVP(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id"), req.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newRSVPResponse(rsvp))
}

// CheckIn handles POST /events/:id/checkin
func (handler *eventHandler) CheckIn(ctx *gin.Context) {
	rsvp, err := handler.eventService.CheckIn(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newRSVPResponse(rsvp))
}

// Cancel handles POST /events/:id/cancel
func (handler *eventHandler) Cancel(ctx *gin.Context) {
	results, err := handler.eventService.Cancel(ctx.Request.Context(), currentUserID(ctx), currentIsStaff(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	if results == nil {
		results = []*payments.RefundResult{}
	}
	ctx.JSON(http.StatusOK, results)
}

// Attendees handles GET /events/:id/attendees
func (handler *eventHandler) Attendees(ctx *gin.Context) {
	if _, err := handler.eventService.GetByID(ctx.Request.Context(), currentUserID(ctx), currentIsStaff(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	rsvps, err := handler.eventService.Attendees(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]*RSVPResponse, 0, len(rsvps))
	for _, r := range rsvps {
		resp = append(resp, newRSVPResponse(r))
	}
	ctx.JSON(http.StatusOK, resp)
}
