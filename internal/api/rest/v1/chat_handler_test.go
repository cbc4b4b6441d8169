//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/MGTheTrain/scrimhub/internal/domain/chat"
	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler_List_UnreadOnly(t *testing.T) {
	mockService := new(MockNotificationService)
	handler := NewNotificationHandler(mockService)

	mockService.On("List", mock.Anything, testUserID, true).Return([]*notifications.Notification{
		{ID: testItemID, UserID: testUserID, Kind: notifications.KindPayment, Title: "Payment received"},
	}, nil)

	c, w := authedContext(t, http.MethodGet, "/notifications?unread=true", nil, false)
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []NotificationResponse
	testutil.DecodeJSON(t, w, &resp)
	require.Len(t, resp, 1)
	assert.False(t, resp[0].IsRead)
	mockService.AssertExpectations(t)
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	mockService := new(MockNotificationService)
	handler := NewNotificationHandler(mockService)

	mockService.On("MarkAllRead", mock.Anything, testUserID).Return(int64(3), nil)

	c, w := authedContext(t, http.MethodPost, "/notifications/read-all", nil, false)
	handler.MarkAllRead(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp CountResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, int64(3), resp.Count)
}

func TestNotificationHandler_MarkRead_OtherUsersNotification(t *testing.T) {
	mockService := new(MockNotificationService)
	handler := NewNotificationHandler(mockService)

	mockService.On("MarkRead", mock.Anything, testUserID, testItemID).Return(notifications.ErrNotificationNotFound)

	c, w := authedContext(t, http.MethodPost, "/notifications/"+testItemID+"/read", nil, false)
	withParams(c, "id", testItemID)
	handler.MarkRead(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationHandler_Delete(t *testing.T) {
	mockService := new(MockNotificationService)
	handler := NewNotificationHandler(mockService)

	mockService.On("Delete", mock.Anything, testUserID, testItemID).Return(nil)

	c, w := authedContext(t, http.MethodDelete, "/notifications/"+testItemID, nil, false)
	withParams(c, "id", testItemID)
	handler.Delete(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestChatHandler_CreateThread(t *testing.T) {
	mockService := new(MockChatService)
	handler := NewChatHandler(mockService)

	mockService.On("CreateThread", mock.Anything, testUserID, "Lineup", []string{testOtherID}).
		Return(&chat.Thread{ID: testItemID, Title: "Lineup", ParticipantIDs: []string{testUserID, testOtherID}}, nil)

	c, w := authedContext(t, http.MethodPost, "/chat/threads", map[string]interface{}{
		"title": "Lineup", "participant_ids": []string{testOtherID},
	}, false)
	handler.CreateThread(c)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp ThreadResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.ElementsMatch(t, []string{testUserID, testOtherID}, resp.ParticipantIDs)
}

func TestChatHandler_CreateThread_RequiresParticipants(t *testing.T) {
	mockService := new(MockChatService)
	handler := NewChatHandler(mockService)

	c, w := authedContext(t, http.MethodPost, "/chat/threads", map[string]interface{}{"title": "Solo"}, false)
	handler.CreateThread(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandler_ListThreads_OmitsMissingLastMessage(t *testing.T) {
	mockService := new(MockChatService)
	handler := NewChatHandler(mockService)

	mockService.On("ListThreads", mock.Anything, testUserID).Return([]*chat.ThreadSummary{
		{Thread: &chat.Thread{ID: testItemID}, UnreadCount: 0},
		{
			Thread:      &chat.Thread{ID: testOtherID},
			LastMessage: &chat.Message{ID: testUserID, ThreadID: testOtherID, SenderID: testOtherID, Body: "gg"},
			UnreadCount: 1,
		},
	}, nil)

	c, w := authedContext(t, http.MethodGet, "/chat/threads", nil, false)
	handler.ListThreads(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []ThreadSummaryResponse
	testutil.DecodeJSON(t, w, &resp)
	require.Len(t, resp, 2)
	assert.Nil(t, resp[0].LastMessage)
	require.NotNil(t, resp[1].LastMessage)
	assert.Equal(t, "gg", resp[1].LastMessage.Body)
	assert.Equal(t, int64(1), resp[1].UnreadCount)
}

func TestChatHandler_PostMessage_NotParticipant(t *testing.T) {
	mockService := new(MockChatService)
	handler := NewChatHandler(mockService)

	mockService.On("PostMessage", mock.Anything, testUserID, testItemID, "hello").Return(nil, chat.ErrNotParticipant)

	c, w := authedContext(t, http.MethodPost, "/chat/threads/"+testItemID+"/messages", map[string]string{"body": "hello"}, false)
	withParams(c, "id", testItemID)
	handler.PostMessage(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestChatHandler_RemoveParticipant(t *testing.T) {
	mockService := new(MockChatService)
	handler := NewChatHandler(mockService)

	mockService.On("RemoveParticipant", mock.Anything, testUserID, testItemID, testOtherID).
		Return(&chat.Thread{ID: testItemID, ParticipantIDs: []string{testUserID}}, nil)

	c, w := authedContext(t, http.MethodDelete, "/chat/threads/"+testItemID+"/participants/"+testOtherID, nil, false)
	withParams(c, "id", testItemID, "userId", testOtherID)
	handler.RemoveParticipant(c)

	require.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestChatHandler_UnreadCount(t *testing.T) {
	mockService := new(MockChatService)
	handler := NewChatHandler(mockService)

	mockService.On("UnreadCount", mock.Anything, testUserID).Return(int64(7), nil)

	c, w := authedContext(t, http.MethodGet, "/chat/unread-count", nil, false)
	handler.UnreadCount(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":7}`, w.Body.String())
}
