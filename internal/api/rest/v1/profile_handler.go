package v1

import (
	"net/http"

	"github.com/MGTheTrain/scrimhub/internal/domain/profiles"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves public profiles and follow edges
type ProfileHandler interface {
	GetMine(ctx *gin.Context)
	UpdateMine(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	ToggleFollow(ctx *gin.Context)
	Followers(ctx *gin.Context)
	Following(ctx *gin.Context)
}

type profileHandler struct {
	profileService profiles.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService profiles.ProfileService) ProfileHandler {
	return &profileHandler{profileService: profileService}
}

// GetMine handles GET /profiles/me
func (handler *profileHandler) GetMine(ctx *gin.Context) {
	userID := currentUserID(ctx)
	profile, err := handler.profileService.GetProfile(ctx.Request.Context(), userID, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newProfileResponse(profile))
}

// UpdateMine handles PATCH /profiles/me
func (handler *profileHandler) UpdateMine(ctx *gin.Context) {
	var req ProfilePatchRequest
	if !bindJSON(ctx, &req) {
		return
	}

	profile, err := handler.profileService.UpdateProfile(ctx.Request.Context(), currentUserID(ctx), &profiles.ProfilePatch{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
		Location:    req.Location,
		Visibility:  req.Visibility,
		Interests:   req.Interests,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newProfileResponse(profile))
}

// GetByID handles GET /profiles/:id
func (handler *profileHandler) GetByID(ctx *gin.Context) {
	profile, err := handler.profileService.GetProfile(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newProfileResponse(profile))
}

// ToggleFollow handles POST /profiles/:id/follow
func (handler *profileHandler) ToggleFollow(ctx *gin.Context) {
	following, err := handler.profileService.ToggleFollow(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, FollowResponse{Following: following})
}

// Followers handles GET /profiles/:id/followers
func (handler *profileHandler) Followers(ctx *gin.Context) {
	ids, err := handler.profileService.Followers(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, UserIDsResponse{UserIDs: nonNilStrings(ids)})
}

// Following handles GET /profiles/:id/following
func (handler *profileHandler) Following(ctx *gin.Context) {
	ids, err := handler.profileService.Following(ctx.Request.Context(), currentUserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, UserIDsResponse{UserIDs: nonNilStrings(ids)})
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
