package v1

import (
	"net/http"

	"github.com/MGTheTrain/scrimhub/internal/domain/groups"

	"github.com/gin-gonic/gin"
)

// GroupHandler serves teams and communities
type GroupHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Join(ctx *gin.Context)
	Leave(ctx *gin.Context)
	Members(ctx *gin.Context)
}

type groupHandler struct {
	groupService groups.GroupService
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(groupService groups.GroupService) GroupHandler {
	return &groupHandler{groupService: groupService}
}

// List handles GET /groups
func (handler *groupHandler) List(ctx *gin.Context) {
	list, err := handler.groupService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]*GroupResponse, 0, len(list))
	for _, g := range list {
		resp = append(resp, newGroupResponse(g))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Create handles POST /groups
func (handler *groupHandler) Create(ctx *gin.Context) {
	var req GroupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	group, err := handler.groupService.Create(ctx.Request.Context(), currentUserID(ctx), groups.GroupInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newGroupResponse(group))
}

// GetByID handles GET /groups/:id
func (handler *groupHandler) GetByID(ctx *gin.Context) {
	group, err := handler.groupService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newGroupResponse(group))
}

// Update handles PATCH /groups/:id
func (handler *groupHandler) Update(ctx *gin.Context) {
	var req GroupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	group, err := handler.groupService.Update(ctx.Request.Context(), currentUserID(ctx), currentIsStaff(ctx), ctx.Param("id"), groups.GroupInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newGroupResponse(group))
}

// Delete handles DELETE /groups/:id
func (handler *groupHandler) Delete(ctx *gin.Context) {
	if err := handler.groupService.Delete(ctx.Request.Context(), currentUserID(ctx), currentIsStaff(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}

// Join handles POST /groups/:id/join
func (handler *groupHandler) Join(ctx *gin.Context) {
	member, err := handler.groupService.Join(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newGroupMemberResponse(member))
}

// Leave handles POST /groups/:id/leave
func (handler *groupHandler) Leave(ctx *gin.Context) {
	if err := handler.groupService.Leave(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}

// Members handles GET /groups/:id/members
func (handler *groupHandler) Members(ctx *gin.Context) {
	members, err := handler.groupService.Members(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]*GroupMemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, newGroupMemberResponse(m))
	}
	ctx.JSON(http.StatusOK, resp)
}
