package v1

import (
	"net/http"

	"github.com/MGTheTrain/scrimhub/internal/domain/chat"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves threads and messages
type ChatHandler interface {
	ListThreads(ctx *gin.Context)
	CreateThread(ctx *gin.Context)
	GetThread(ctx *gin.Context)
	AddParticipant(ctx *gin.Context)
	RemoveParticipant(ctx *gin.Context)
	ListMessages(ctx *gin.Context)
	PostMessage(ctx *gin.Context)
	MarkRead(ctx *gin.Context)
	UnreadCount(ctx *gin.Context)
}

type chatHandler struct {
	chatService chat.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService chat.ChatService) ChatHandler {
	return &chatHandler{chatService: chatService}
}

// ListThreads handles GET /chat/threads
func (handler *chatHandler) ListThreads(ctx *gin.Context) {
	summaries, err := handler.chatService.ListThreads(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]*ThreadSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		item := &ThreadSummaryResponse{Thread: newThreadResponse(s.Thread), UnreadCount: s.UnreadCount}
		if s.LastMessage != nil {
			item.LastMessage = newMessageResponse(s.LastMessage)
		}
		resp = append(resp, item)
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateThread handles POST /chat/threads
func (handler *chatHandler) CreateThread(ctx *gin.Context) {
	var req ThreadRequest
	if !bindJSON(ctx, &req) {
		return
	}

	thread, err := handler.chatService.CreateThread(ctx.Request.Context(), currentUserID(ctx), req.Title, req.ParticipantIDs)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newThreadResponse(thread))
}

// GetThread handles GET /chat/threads/:id
func (handler *chatHandler) GetThread(ctx *gin.Context) {
	thread, err := handler.chatService.GetThread(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newThreadResponse(thread))
}

// AddParticipant handles POST /chat/threads/:id/participants
func (handler *chatHandler) AddParticipant(ctx *gin.Context) {
	var req ParticipantRequest
	if !bindJSON(ctx, &req) {
		return
	}

	thread, err := handler.chatService.AddParticipant(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id"), req.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newThreadResponse(thread))
}

// RemoveParticipant handles DELETE /chat/threads/:id/participants/:userId
func (handler *chatHandler) RemoveParticipant(ctx *gin.Context) {
	thread, err := handler.chatService.RemoveParticipant(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id"), ctx.Param("userId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newThreadResponse(thread))
}

// ListMessages handles GET /chat/threads/:id/messages
func (handler *chatHandler) ListMessages(ctx *gin.Context) {
	messages, err := handler.chatService.ListMessages(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]*MessageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, newMessageResponse(m))
	}
	ctx.JSON(http.StatusOK, resp)
}

// PostMessage handles POST /chat/threads/:id/messages
func (handler *chatHandler) PostMessage(ctx *gin.Context) {
	var req MessageRequest
	if !bindJSON(ctx, &req) {
		return
	}

	msg, err := handler.chatService.PostMessage(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id"), req.Body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newMessageResponse(msg))
}

// MarkRead handles POST /chat/messages/:id/read
func (handler *chatHandler) MarkRead(ctx *gin.Context) {
	if err := handler.chatService.MarkRead(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}

// UnreadCount handles GET /chat/unread-count
func (handler *chatHandler) UnreadCount(ctx *gin.Context) {
	count, err := handler.chatService.UnreadCount(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CountResponse{Count: count})
}
