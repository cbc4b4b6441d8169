//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	testAccessToken = "user-access-token"
	testStaffToken  = "staff-access-token"
	testHookToken   = "hook-secret"
)

func newTestRouter() (*gin.Engine, *mockServices, *MockRealtimeServer) {
	mocks := newMockServices()
	tokens := new(MockTokenIssuer)
	tokens.On("Parse", testAccessToken, accounts.TokenPurposeAccess).Return(&accounts.TokenClaims{UserID: testUserID}, nil)
	tokens.On("Parse", testStaffToken, accounts.TokenPurposeAccess).Return(&accounts.TokenClaims{UserID: testOtherID, IsStaff: true}, nil)
	tokens.On("Parse", mock.Anything, mock.Anything).Return(nil, accounts.ErrInvalidToken)
	realtimeServer := new(MockRealtimeServer)

	r := gin.New()
	SetupRoutes(r, mocks.services(), tokens, realtimeServer, testHookToken)
	return r, mocks, realtimeServer
}

func serve(r *gin.Engine, method, url, body, bearer string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	r, _, _ := newTestRouter()

	// Each request fails validation before reaching a service
	tests := []struct {
		method string
		url    string
		bearer string
	}{
		{http.MethodPost, BasePath + "/auth/register", ""},
		{http.MethodPost, BasePath + "/auth/login", ""},
		{http.MethodPost, BasePath + "/auth/mfa/verify", ""},
		{http.MethodPost, BasePath + "/scrimmages", testAccessToken},
		{http.MethodPost, BasePath + "/events", testAccessToken},
		{http.MethodPost, BasePath + "/wallet/topup", testAccessToken},
		{http.MethodPost, BasePath + "/chat/threads", testAccessToken},
		{http.MethodPost, BasePath + "/admin/bonus-tiers", testStaffToken},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			w := serve(r, tt.method, tt.url, "{}", tt.bearer)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestSetupRoutes_UnknownRoute(t *testing.T) {
	r, _, _ := newTestRouter()

	w := serve(r, http.MethodGet, BasePath+"/unknown", "", testAccessToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetupRoutes_RequiresAuthentication(t *testing.T) {
	r, _, _ := newTestRouter()

	for _, url := range []string{"/scrimmages", "/wallet", "/notifications", "/auth/me", "/calendar/feed"} {
		t.Run(url, func(t *testing.T) {
			w := serve(r, http.MethodGet, BasePath+url, "", "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	w := serve(r, http.MethodGet, BasePath+"/scrimmages", "", "forged")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSetupRoutes_AdminRequiresStaff(t *testing.T) {
	r, mocks, _ := newTestRouter()
	mocks.admin.On("GetPolicy", mock.Anything).Return(&accounts.Policy{AllowPassword: true}, nil)

	w := serve(r, http.MethodGet, BasePath+"/admin/policy", "", testAccessToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(r, http.MethodGet, BasePath+"/admin/policy", "", testStaffToken)
	assert.Equal(t, http.StatusOK, w.Code)
	mocks.admin.AssertNumberOfCalls(t, "GetPolicy", 1)
}

func TestSetupRoutes_WebhookToken(t *testing.T) {
	r, mocks, _ := newTestRouter()
	mocks.webhooks.On("Handle", mock.Anything, "stripe", mock.Anything).Return(nil, false, nil)

	w := serve(r, http.MethodPost, BasePath+"/webhooks/stripe", `{"id":"evt_1"}`, "", WebhookTokenHeader, "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mocks.webhooks.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything, mock.Anything)

	w = serve(r, http.MethodPost, BasePath+"/webhooks/stripe", `{"id":"evt_1"}`, "", WebhookTokenHeader, testHookToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetupRoutes_WebsocketAcceptsQueryToken(t *testing.T) {
	r, _, realtimeServer := newTestRouter()
	realtimeServer.On("Serve", mock.Anything, mock.Anything, testUserID).Return(nil)

	w := serve(r, http.MethodGet, BasePath+"/ws?token="+testAccessToken, "", "")
	assert.NotEqual(t, http.StatusUnauthorized, w.Code)
	realtimeServer.AssertExpectations(t)

	w = serve(r, http.MethodGet, BasePath+"/ws", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
