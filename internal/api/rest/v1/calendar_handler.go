package v1

import (
	"net/http"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/calendar"

	"github.com/gin-gonic/gin"
)

const defaultFeedWindow = 30 * 24 * time.Hour

// CalendarHandler serves personal calendars and the widget feed
type CalendarHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Feed(ctx *gin.Context)
}

type calendarHandler struct {
	calendarService calendar.CalendarService
}

// NewCalendarHandler creates a new CalendarHandler
func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &calendarHandler{calendarService: calendarService}
}

// List handles GET /calendar
func (handler *calendarHandler) List(ctx *gin.Context) {
	items, err := handler.calendarService.List(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]*CalendarItemResponse, 0, len(items))
	for _, i := range items {
		resp = append(resp, newCalendarItemResponse(i))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Create handles POST /calendar
func (handler *calendarHandler) Create(ctx *gin.Context) {
	var req CalendarItemRequest
	if !bindJSON(ctx, &req) {
		return
	}

	item, err := handler.calendarService.CreatePersonal(ctx.Request.Context(), currentUserID(ctx), req.Title, req.StartAt, req.EndAt)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newCalendarItemResponse(item))
}

// Delete handles DELETE /calendar/:id
func (handler *calendarHandler) Delete(ctx *gin.Context) {
	if err := handler.calendarService.Delete(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}

// Feed handles GET /calendar/feed?start=&end=. The window defaults to the next 30 days.
func (handler *calendarHandler) Feed(ctx *gin.Context) {
	start, ok := queryTime(ctx, "start")
	if !ok {
		return
	}
	end, ok := queryTime(ctx, "end")
	if !ok {
		return
	}

	from := time.Now().UTC()
	if start != nil {
		from = *start
	}
	to := from.Add(defaultFeedWindow)
	if end != nil {
		to = *end
	}

	items, err := handler.calendarService.Feed(ctx.Request.Context(), currentUserID(ctx), from, to)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if items == nil {
		items = []*calendar.FeedItem{}
	}
	ctx.JSON(http.StatusOK, items)
}
