package v1

import (
	"net/http"

	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the caller's inbox
type NotificationHandler interface {
	List(ctx *gin.Context)
	UnreadCount(ctx *gin.Context)
	MarkRead(ctx *gin.Context)
	MarkAllRead(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type notificationHandler struct {
	notificationService notifications.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService notifications.NotificationService) NotificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

// List handles GET /notifications?unread=true
func (handler *notificationHandler) List(ctx *gin.Context) {
	unreadOnly := ctx.Query("unread") == "true"

	list, err := handler.notificationService.List(ctx.Request.Context(), currentUserID(ctx), unreadOnly)
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]*NotificationResponse, 0, len(list))
	for _, n := range list {
		resp = append(resp, newNotificationResponse(n))
	}
	ctx.JSON(http.StatusOK, resp)
}

// UnreadCount handles GET /notifications/unread-count
func (handler *notificationHandler) UnreadCount(ctx *gin.Context) {
	count, err := handler.notificationService.UnreadCount(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// MarkRead handles POST /notifications/:id/read
func (handler *notificationHandler) MarkRead(ctx *gin.Context) {
	if err := handler.notificationService.MarkRead(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}

// MarkAllRead handles POST /notifications/read-all
func (handler *notificationHandler) MarkAllRead(ctx *gin.Context) {
	count, err := handler.notificationService.MarkAllRead(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// Delete handles DELETE /notifications/:id
func (handler *notificationHandler) Delete(ctx *gin.Context) {
	if err := handler.notificationService.Delete(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}
