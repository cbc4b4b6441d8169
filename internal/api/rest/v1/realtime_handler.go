package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RealtimeServer upgrades an authenticated request into a push connection
type RealtimeServer interface {
	Serve(w http.ResponseWriter, r *http.Request, userID string) error
}

// RealtimeHandler serves the websocket push endpoint
type RealtimeHandler interface {
	Connect(ctx *gin.Context)
}

type realtimeHandler struct {
	server RealtimeServer
}

// NewRealtimeHandler creates a new RealtimeHandler
func NewRealtimeHandler(server RealtimeServer) RealtimeHandler {
	return &realtimeHandler{server: server}
}

// Connect handles GET /ws. The upgrader writes its own error response on a failed handshake.
func (handler *realtimeHandler) Connect(ctx *gin.Context) {
	if err := handler.server.Serve(ctx.Writer, ctx.Request, currentUserID(ctx)); err != nil {
		_ = ctx.Error(err)
	}
}
