//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/MGTheTrain/scrimhub/internal/domain/scrimmages"
	"github.com/MGTheTrain/scrimhub/internal/pkg/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validScrimmageBody() map[string]interface{} {
	start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	return map[string]interface{}{
		"title":            "Friday 5v5",
		"type_id":          testOtherID,
		"start_at":         start,
		"end_at":           start.Add(2 * time.Hour),
		"max_participants": 10,
		"entry_fee":        "5.00",
		"currency":         "USD",
		"custom_fields":    map[string]interface{}{"skill_level": "intermediate"},
	}
}

func TestScrimmageHandler_Create_Success(t *testing.T) {
	mockService := new(MockScrimmageService)
	handler := NewScrimmageHandler(mockService)

	mockService.On("Create", mock.Anything, testUserID, mock.MatchedBy(func(in scrimmages.ScrimmageInput) bool {
		return in.Title == "Friday 5v5" && in.EntryFee.Equal(decimal.RequireFromString("5")) && in.CustomFields["skill_level"] == "intermediate"
	})).Return(&scrimmages.Scrimmage{ID: testItemID, CreatorID: testUserID, Title: "Friday 5v5", Slug: "friday-5v5", Status: scrimmages.StatusPublished}, nil)

	c, w := authedContext(t, http.MethodPost, "/scrimmages", validScrimmageBody(), false)
	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp ScrimmageResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, testItemID, resp.ID)
	assert.Equal(t, "friday-5v5", resp.Slug)
	mockService.AssertExpectations(t)
}

func TestScrimmageHandler_Create_EndBeforeStart(t *testing.T) {
	mockService := new(MockScrimmageService)
	handler := NewScrimmageHandler(mockService)

	body := validScrimmageBody()
	body["end_at"] = body["start_at"].(time.Time).Add(-time.Hour)

	c, w := authedContext(t, http.MethodPost, "/scrimmages", body, false)
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestScrimmageHandler_Create_CustomFieldErrors(t *testing.T) {
	mockService := new(MockScrimmageService)
	handler := NewScrimmageHandler(mockService)

	mockService.On("Create", mock.Anything, testUserID, mock.Anything).
		Return(nil, scrimmages.FieldErrors{"skill_level": "must be one of beginner, intermediate, advanced"})

	c, w := authedContext(t, http.MethodPost, "/scrimmages", validScrimmageBody(), false)
	handler.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Contains(t, resp.Fields, "skill_level")
}

func TestScrimmageHandler_List_PassesFilters(t *testing.T) {
	mockService := new(MockScrimmageService)
	handler := NewScrimmageHandler(mockService)

	mockService.On("List", mock.Anything, mock.MatchedBy(func(q *scrimmages.ScrimmageQuery) bool {
		return q.CategoryID == testOtherID && q.Limit == 10 && q.Offset == 20 && q.ViewerID == testUserID
	})).Return([]*scrimmages.Scrimmage{{ID: testItemID}}, nil)

	c, w := authedContext(t, http.MethodGet, "/scrimmages?category_id="+testOtherID+"&limit=10&offset=20", nil, false)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestScrimmageHandler_List_InvalidAfter(t *testing.T) {
	handler := NewScrimmageHandler(new(MockScrimmageService))

	c, w := authedContext(t, http.MethodGet, "/scrimmages?after=yesterday", nil, false)
	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScrimmageHandler_Join_DefaultsToEmptyRole(t *testing.T) {
	mockService := new(MockScrimmageService)
	handler := NewScrimmageHandler(mockService)

	mockService.On("Join", mock.Anything, testUserID, testItemID, "").
		Return(&scrimmages.Participation{ID: testOtherID, ScrimmageID: testItemID, UserID: testUserID, Role: scrimmages.RolePlayer, Status: scrimmages.ParticipationConfirmed}, nil)

	c, w := authedContext(t, http.MethodPost, "/scrimmages/"+testItemID+"/join", nil, false)
	withParams(c, "id", testItemID)
	handler.Join(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestScrimmageHandler_Join_Full(t *testing.T) {
	mockService := new(MockScrimmageService)
	handler := NewScrimmageHandler(mockService)

	mockService.On("Join", mock.Anything, testUserID, testItemID, "coach").Return(nil, scrimmages.ErrScrimmageFull)

	c, w := authedContext(t, http.MethodPost, "/scrimmages/"+testItemID+"/join", map[string]string{"role": "coach"}, false)
	withParams(c, "id", testItemID)
	handler.Join(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestScrimmageHandler_Join_InsufficientCredits(t *testing.T) {
	mockService := new(MockScrimmageService)
	handler := NewScrimmageHandler(mockService)

	mockService.On("Join", mock.Anything, testUserID, testItemID, "").Return(nil, payments.ErrInsufficientCredits)

	c, w := authedContext(t, http.MethodPost, "/scrimmages/"+testItemID+"/join", nil, false)
	withParams(c, "id", testItemID)
	handler.Join(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScrimmageHandler_Update_Forbidden(t *testing.T) {
	mockService := new(MockScrimmageService)
	handler := NewScrimmageHandler(mockService)

	mockService.On("Update", mock.Anything, testUserID, false, testItemID, mock.Anything).Return(nil, scrimmages.ErrForbidden)

	c, w := authedContext(t, http.MethodPatch, "/scrimmages/"+testItemID, validScrimmageBody(), false)
	withParams(c, "id", testItemID)
	handler.Update(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestScrimmageHandler_Roster_HiddenScrimmage(t *testing.T) {
	mockService := new(MockScrimmageService)
	handler := NewScrimmageHandler(mockService)

	mockService.On("GetByID", mock.Anything, testUserID, false, testItemID).Return(nil, scrimmages.ErrScrimmageNotFound)

	c, w := authedContext(t, http.MethodGet, "/scrimmages/"+testItemID+"/roster", nil, false)
	withParams(c, "id", testItemID)
	handler.Roster(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertNotCalled(t, "Roster", mock.Anything, mock.Anything)
}

func TestScrimmageHandler_Cancel_EmptyResultsEncodeAsArray(t *testing.T) {
	mockService := new(MockScrimmageService)
	handler := NewScrimmageHandler(mockService)

	mockService.On("Cancel", mock.Anything, testUserID, true, testItemID).Return(nil, nil)

	c, w := authedContext(t, http.MethodPost, "/scrimmages/"+testItemID+"/cancel", nil, true)
	withParams(c, "id", testItemID)
	handler.Cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestScrimmageHandler_DistributePrizes(t *testing.T) {
	mockService := new(MockScrimmageService)
	handler := NewScrimmageHandler(mockService)

	mockService.On("DistributePrizes", mock.Anything, testUserID, false, testItemID, mock.MatchedBy(func(awards []payments.PrizeAward) bool {
		return len(awards) == 1 && awards[0].UserID == testOtherID && awards[0].Amount.Equal(decimal.NewFromInt(30))
	})).Return([]*payments.Transaction{{ID: testItemID, UserID: testOtherID, Amount: decimal.NewFromInt(30), Status: payments.StatusSucceeded}}, nil)

	c, w := authedContext(t, http.MethodPost, "/scrimmages/"+testItemID+"/prizes", map[string]interface{}{
		"awards": []map[string]string{{"user_id": testOtherID, "amount": "30"}},
	}, false)
	withParams(c, "id", testItemID)
	handler.DistributePrizes(c)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp []TransactionResponse
	testutil.DecodeJSON(t, w, &resp)
	require.Len(t, resp, 1)
	assert.Equal(t, testOtherID, resp[0].UserID)
}

func TestScrimmageHandler_DistributePrizes_OverPool(t *testing.T) {
	mockService := new(MockScrimmageService)
	handler := NewScrimmageHandler(mockService)

	mockService.On("DistributePrizes", mock.Anything, testUserID, false, testItemID, mock.Anything).Return(nil, payments.ErrPrizePoolExceeded)

	c, w := authedContext(t, http.MethodPost, "/scrimmages/"+testItemID+"/prizes", map[string]interface{}{
		"awards": []map[string]string{{"user_id": testOtherID, "amount": "300"}},
	}, false)
	withParams(c, "id", testItemID)
	handler.DistributePrizes(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScrimmageHandler_CreateType_InvalidSchema(t *testing.T) {
	mockService := new(MockScrimmageService)
	handler := NewScrimmageHandler(mockService)

	mockService.On("CreateType", mock.Anything, testOtherID, "5v5", mock.Anything).Return(nil, scrimmages.ErrInvalidSchema)

	c, w := authedContext(t, http.MethodPost, "/admin/scrimmage-types", map[string]interface{}{
		"category_id":         testOtherID,
		"name":                "5v5",
		"custom_field_schema": map[string]interface{}{"skill": map[string]interface{}{"type": "colour"}},
	}, true)
	handler.CreateType(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
