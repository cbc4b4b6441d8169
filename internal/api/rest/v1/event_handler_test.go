//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/calendar"
	"github.com/MGTheTrain/scrimhub/internal/domain/events"
	"github.com/MGTheTrain/scrimhub/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validEventBody() map[string]interface{} {
	start := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)
	return map[string]interface{}{
		"title":     "Open gym",
		"start_at":  start,
		"end_at":    start.Add(3 * time.Hour),
		"capacity":  20,
		"entry_fee": "0",
		"tags":      []string{"basketball"},
	}
}

func TestEventHandler_Create_DefaultsToPublic(t *testing.T) {
	mockService := new(MockEventService)
	handler := NewEventHandler(mockService)

	mockService.On("Create", mock.Anything, testUserID, mock.MatchedBy(func(in events.EventInput) bool {
		return in.Title == "Open gym" && in.IsPublic && in.Capacity == 20
	})).Return(&events.Event{ID: testItemID, HostID: testUserID, Title: "Open gym", IsPublic: true, Status: events.StatusPublished}, nil)

	c, w := authedContext(t, http.MethodPost, "/events", validEventBody(), false)
	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp EventResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, testItemID, resp.ID)
	mockService.AssertExpectations(t)
}

func TestEventHandler_Create_OrganizerFeeOutOfRange(t *testing.T) {
	mockService := new(MockEventService)
	handler := NewEventHandler(mockService)

	body := validEventBody()
	body["organizer_fee_percent"] = "120"

	c, w := authedContext(t, http.MethodPost, "/events", body, false)
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestEventHandler_List_PassesViewer(t *testing.T) {
	mockService := new(MockEventService)
	handler := NewEventHandler(mockService)

	mockService.On("List", mock.Anything, mock.MatchedBy(func(q *events.EventQuery) bool {
		return q.ViewerID == testUserID && !q.IsStaff && q.GroupID == testOtherID && q.From != nil
	})).Return(nil, nil)

	c, w := authedContext(t, http.MethodGet, "/events?group_id="+testOtherID+"&from=2026-01-01T00:00:00Z", nil, false)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
	mockService.AssertExpectations(t)
}

func TestEventHandler_RSVP_InvalidStatus(t *testing.T) {
	mockService := new(MockEventService)
	handler := NewEventHandler(mockService)

	c, w := authedContext(t, http.MethodPost, "/events/"+testItemID+"/rsvp", map[string]string{"status": "maybe"}, false)
	withParams(c, "id", testItemID)
	handler.RSVP(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventHandler_RSVP_Waitlisted(t *testing.T) {
	mockService := new(MockEventService)
	handler := NewEventHandler(mockService)

	mockService.On("RSVP", mock.Anything, testUserID, testItemID, events.RSVPGoing).
		Return(&events.RSVP{ID: testOtherID, EventID: testItemID, UserID: testUserID, Status: events.RSVPWaitlist}, nil)

	c, w := authedContext(t, http.MethodPost, "/events/"+testItemID+"/rsvp", map[string]string{"status": "going"}, false)
	withParams(c, "id", testItemID)
	handler.RSVP(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp RSVPResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, events.RSVPWaitlist, resp.Status)
}

func TestEventHandler_RSVP_CancelledEvent(t *testing.T) {
	mockService := new(MockEventService)
	handler := NewEventHandler(mockService)

	mockService.On("RSVP", mock.Anything, testUserID, testItemID, events.RSVPInterested).Return(nil, events.ErrEventCancelled)

	c, w := authedContext(t, http.MethodPost, "/events/"+testItemID+"/rsvp", map[string]string{"status": "interested"}, false)
	withParams(c, "id", testItemID)
	handler.RSVP(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEventHandler_CheckIn(t *testing.T) {
	mockService := new(MockEventService)
	handler := NewEventHandler(mockService)

	mockService.On("CheckIn", mock.Anything, testUserID, testItemID).
		Return(&events.RSVP{ID: testOtherID, EventID: testItemID, UserID: testUserID, Status: events.RSVPCheckedIn}, nil)

	c, w := authedContext(t, http.MethodPost, "/events/"+testItemID+"/checkin", nil, false)
	withParams(c, "id", testItemID)
	handler.CheckIn(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), events.RSVPCheckedIn)
}

func TestEventHandler_Attendees_ChecksVisibilityFirst(t *testing.T) {
	mockService := new(MockEventService)
	handler := NewEventHandler(mockService)

	mockService.On("GetByID", mock.Anything, testUserID, false, testItemID).Return(nil, events.ErrEventNotFound)

	c, w := authedContext(t, http.MethodGet, "/events/"+testItemID+"/attendees", nil, false)
	withParams(c, "id", testItemID)
	handler.Attendees(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertNotCalled(t, "Attendees", mock.Anything, mock.Anything)
}

func TestCalendarHandler_Create_EndBeforeStart(t *testing.T) {
	mockService := new(MockCalendarService)
	handler := NewCalendarHandler(mockService)

	start := time.Now().Add(time.Hour).UTC()
	c, w := authedContext(t, http.MethodPost, "/calendar", map[string]interface{}{
		"title": "Practice", "start_at": start, "end_at": start.Add(-time.Minute),
	}, false)
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendarHandler_Delete_NotOwned(t *testing.T) {
	mockService := new(MockCalendarService)
	handler := NewCalendarHandler(mockService)

	mockService.On("Delete", mock.Anything, testUserID, testItemID).Return(calendar.ErrItemNotFound)

	c, w := authedContext(t, http.MethodDelete, "/calendar/"+testItemID, nil, false)
	withParams(c, "id", testItemID)
	handler.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCalendarHandler_Feed_DefaultWindow(t *testing.T) {
	mockService := new(MockCalendarService)
	handler := NewCalendarHandler(mockService)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mockService.On("Feed", mock.Anything, testUserID, start, start.Add(defaultFeedWindow)).
		Return([]*calendar.FeedItem{{ID: testItemID, Title: "Open gym", Start: start, End: start.Add(time.Hour), Color: calendar.ColorPersonal}}, nil)

	c, w := authedContext(t, http.MethodGet, "/calendar/feed?start=2026-03-01T00:00:00Z", nil, false)
	handler.Feed(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []calendar.FeedItem
	testutil.DecodeJSON(t, w, &resp)
	require.Len(t, resp, 1)
	assert.Equal(t, "Open gym", resp[0].Title)
	mockService.AssertExpectations(t)
}

func TestCalendarHandler_Feed_InvalidWindow(t *testing.T) {
	mockService := new(MockCalendarService)
	handler := NewCalendarHandler(mockService)

	mockService.On("Feed", mock.Anything, testUserID, mock.Anything, mock.Anything).Return(nil, calendar.ErrInvalidWindow)

	c, w := authedContext(t, http.MethodGet, "/calendar/feed?start=2026-03-02T00:00:00Z&end=2026-03-01T00:00:00Z", nil, false)
	handler.Feed(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
