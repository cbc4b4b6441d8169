//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/MGTheTrain/scrimhub/internal/domain/groups"
	"github.com/MGTheTrain/scrimhub/internal/domain/profiles"
	"github.com/MGTheTrain/scrimhub/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileHandler_UpdateMine_PartialPatch(t *testing.T) {
	mockService := new(MockProfileService)
	handler := NewProfileHandler(mockService)

	mockService.On("UpdateProfile", mock.Anything, testUserID, mock.MatchedBy(func(p *profiles.ProfilePatch) bool {
		return p.Bio != nil && *p.Bio == "Point guard" && p.DisplayName == nil && p.Visibility == nil
	})).Return(&profiles.Profile{UserID: testUserID, Bio: "Point guard", Visibility: profiles.VisibilityPublic}, nil)

	c, w := authedContext(t, http.MethodPatch, "/profiles/me", map[string]string{"bio": "Point guard"}, false)
	handler.UpdateMine(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ProfileResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, "Point guard", resp.Bio)
	mockService.AssertExpectations(t)
}

func TestProfileHandler_UpdateMine_InvalidVisibility(t *testing.T) {
	mockService := new(MockProfileService)
	handler := NewProfileHandler(mockService)

	c, w := authedContext(t, http.MethodPatch, "/profiles/me", map[string]string{"visibility": "everyone"}, false)
	handler.UpdateMine(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileHandler_GetByID_Hidden(t *testing.T) {
	mockService := new(MockProfileService)
	handler := NewProfileHandler(mockService)

	mockService.On("GetProfile", mock.Anything, testUserID, testOtherID).Return(nil, profiles.ErrProfileHidden)

	c, w := authedContext(t, http.MethodGet, "/profiles/"+testOtherID, nil, false)
	withParams(c, "id", testOtherID)
	handler.GetByID(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProfileHandler_ToggleFollow(t *testing.T) {
	mockService := new(MockProfileService)
	handler := NewProfileHandler(mockService)

	mockService.On("ToggleFollow", mock.Anything, testUserID, testOtherID).Return(true, nil)

	c, w := authedContext(t, http.MethodPost, "/profiles/"+testOtherID+"/follow", nil, false)
	withParams(c, "id", testOtherID)
	handler.ToggleFollow(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp FollowResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.True(t, resp.Following)
}

func TestProfileHandler_ToggleFollow_Self(t *testing.T) {
	mockService := new(MockProfileService)
	handler := NewProfileHandler(mockService)

	mockService.On("ToggleFollow", mock.Anything, testUserID, testUserID).Return(false, profiles.ErrSelfFollow)

	c, w := authedContext(t, http.MethodPost, "/profiles/"+testUserID+"/follow", nil, false)
	withParams(c, "id", testUserID)
	handler.ToggleFollow(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileHandler_Followers_EmptyList(t *testing.T) {
	mockService := new(MockProfileService)
	handler := NewProfileHandler(mockService)

	mockService.On("Followers", mock.Anything, testUserID, testOtherID).Return(nil, nil)

	c, w := authedContext(t, http.MethodGet, "/profiles/"+testOtherID+"/followers", nil, false)
	withParams(c, "id", testOtherID)
	handler.Followers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_ids":[]}`, w.Body.String())
}

func TestProfileHandler_Following_Hidden(t *testing.T) {
	mockService := new(MockProfileService)
	handler := NewProfileHandler(mockService)

	mockService.On("Following", mock.Anything, testUserID, testOtherID).Return(nil, profiles.ErrProfileHidden)

	c, w := authedContext(t, http.MethodGet, "/profiles/"+testOtherID+"/following", nil, false)
	withParams(c, "id", testOtherID)
	handler.Following(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertExpectations(t)
}

func TestGroupHandler_Create(t *testing.T) {
	mockService := new(MockGroupService)
	handler := NewGroupHandler(mockService)

	mockService.On("Create", mock.Anything, testUserID, groups.GroupInput{Name: "Sunday League", Description: "Weekly games"}).
		Return(&groups.Group{ID: testItemID, OwnerID: testUserID, Name: "Sunday League", Slug: "sunday-league"}, nil)

	c, w := authedContext(t, http.MethodPost, "/groups", map[string]string{"name": "Sunday League", "description": "Weekly games"}, false)
	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp GroupResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, "sunday-league", resp.Slug)
}

func TestGroupHandler_Delete_NotOwner(t *testing.T) {
	mockService := new(MockGroupService)
	handler := NewGroupHandler(mockService)

	mockService.On("Delete", mock.Anything, testUserID, false, testItemID).Return(groups.ErrForbidden)

	c, w := authedContext(t, http.MethodDelete, "/groups/"+testItemID, nil, false)
	withParams(c, "id", testItemID)
	handler.Delete(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGroupHandler_Leave_OwnerCannotLeave(t *testing.T) {
	mockService := new(MockGroupService)
	handler := NewGroupHandler(mockService)

	mockService.On("Leave", mock.Anything, testUserID, testItemID).Return(groups.ErrOwnerCannotLeave)

	c, w := authedContext(t, http.MethodPost, "/groups/"+testItemID+"/leave", nil, false)
	withParams(c, "id", testItemID)
	handler.Leave(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGroupHandler_Join_ReturnsMembership(t *testing.T) {
	mockService := new(MockGroupService)
	handler := NewGroupHandler(mockService)

	mockService.On("Join", mock.Anything, testUserID, testItemID).
		Return(&groups.GroupMember{ID: testOtherID, GroupID: testItemID, UserID: testUserID, Role: groups.RoleMember}, nil)

	c, w := authedContext(t, http.MethodPost, "/groups/"+testItemID+"/join", nil, false)
	withParams(c, "id", testItemID)
	handler.Join(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp GroupMemberResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, groups.RoleMember, resp.Role)
}
