//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/MGTheTrain/scrimhub/internal/domain/memberships"
	"github.com/MGTheTrain/scrimhub/internal/pkg/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMembershipHandler_CreatePlan_DefaultsActive(t *testing.T) {
	mockService := new(MockMembershipService)
	handler := NewMembershipHandler(mockService)

	mockService.On("CreatePlan", mock.Anything, mock.MatchedBy(func(in memberships.PlanInput) bool {
		return in.Name == "Pro" && in.IsActive && in.Interval == memberships.IntervalMonth && in.Price.Equal(decimal.NewFromInt(15))
	})).Return(&memberships.Plan{ID: testItemID, Name: "Pro", Price: decimal.NewFromInt(15), Currency: "USD", Interval: memberships.IntervalMonth, IsActive: true}, nil)

	c, w := authedContext(t, http.MethodPost, "/admin/plans", map[string]string{
		"name": "Pro", "price": "15", "currency": "USD", "interval": "month",
	}, true)
	handler.CreatePlan(c)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp PlanResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.True(t, resp.IsActive)
	mockService.AssertExpectations(t)
}

func TestMembershipHandler_CreatePlan_InvalidInterval(t *testing.T) {
	mockService := new(MockMembershipService)
	handler := NewMembershipHandler(mockService)

	c, w := authedContext(t, http.MethodPost, "/admin/plans", map[string]string{
		"name": "Pro", "price": "15", "currency": "USD", "interval": "week",
	}, true)
	handler.CreatePlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMembershipHandler_Subscribe_WithCreditsIsImmediate(t *testing.T) {
	mockService := new(MockMembershipService)
	handler := NewMembershipHandler(mockService)

	mockService.On("Subscribe", mock.Anything, testUserID, testItemID, true).Return(&memberships.SubscribeResult{
		Membership: &memberships.Membership{ID: testOtherID, UserID: testUserID, PlanID: testItemID, Status: memberships.StatusActive},
	}, nil)

	c, w := authedContext(t, http.MethodPost, "/memberships", map[string]interface{}{"plan_id": testItemID, "pay_with_credits": true}, false)
	handler.Subscribe(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp MembershipResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, memberships.StatusActive, resp.Status)
	assert.Empty(t, resp.TransactionID)
}

func TestMembershipHandler_Subscribe_CardIsPending(t *testing.T) {
	mockService := new(MockMembershipService)
	handler := NewMembershipHandler(mockService)

	mockService.On("Subscribe", mock.Anything, testUserID, testItemID, false).Return(&memberships.SubscribeResult{
		Membership:    &memberships.Membership{ID: testOtherID, UserID: testUserID, PlanID: testItemID, Status: memberships.StatusInactive},
		TransactionID: "txn-pending",
	}, nil)

	c, w := authedContext(t, http.MethodPost, "/memberships", map[string]interface{}{"plan_id": testItemID}, false)
	handler.Subscribe(c)

	require.Equal(t, http.StatusAccepted, w.Code)
	var resp MembershipResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, "txn-pending", resp.TransactionID)
}

func TestMembershipHandler_Subscribe_InactivePlan(t *testing.T) {
	mockService := new(MockMembershipService)
	handler := NewMembershipHandler(mockService)

	mockService.On("Subscribe", mock.Anything, testUserID, testItemID, false).Return(nil, memberships.ErrPlanInactive)

	c, w := authedContext(t, http.MethodPost, "/memberships", map[string]interface{}{"plan_id": testItemID}, false)
	handler.Subscribe(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMembershipHandler_Due_NoMembership(t *testing.T) {
	mockService := new(MockMembershipService)
	handler := NewMembershipHandler(mockService)

	mockService.On("Due", mock.Anything, testUserID).Return(nil, memberships.ErrMembershipNotFound)

	c, w := authedContext(t, http.MethodGet, "/memberships/due", nil, false)
	handler.Due(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMembershipHandler_Cancel(t *testing.T) {
	mockService := new(MockMembershipService)
	handler := NewMembershipHandler(mockService)

	mockService.On("Cancel", mock.Anything, testUserID, testOtherID).
		Return(&memberships.Membership{ID: testOtherID, UserID: testUserID, Status: memberships.StatusCanceled}, nil)

	c, w := authedContext(t, http.MethodPost, "/memberships/"+testOtherID+"/cancel", nil, false)
	withParams(c, "id", testOtherID)
	handler.Cancel(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp MembershipResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, memberships.StatusCanceled, resp.Status)
}
