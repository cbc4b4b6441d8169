//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := NewAuthHandler(mockAuth, new(MockMFAService))

	mockAuth.On("Register", mock.Anything, accounts.RegisterInput{Email: "ada@example.com", Password: "s3cretpass", FullName: "Ada"}).
		Return(&accounts.User{ID: testUserID, Email: "ada@example.com", FullName: "Ada"}, nil)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/register", map[string]string{
		"email": "ada@example.com", "password": "s3cretpass", "full_name": "Ada",
	})
	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp UserResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, testUserID, resp.ID)
	assert.False(t, resp.IsEmailVerified)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := NewAuthHandler(mockAuth, new(MockMFAService))

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/register", map[string]string{
		"email": "not-an-email", "password": "short",
	})
	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := NewAuthHandler(mockAuth, new(MockMFAService))

	mockAuth.On("Register", mock.Anything, mock.Anything).Return(nil, accounts.ErrEmailTaken)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/register", map[string]string{
		"email": "ada@example.com", "password": "s3cretpass",
	})
	handler.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login_Session(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := NewAuthHandler(mockAuth, new(MockMFAService))

	expires := time.Now().Add(15 * time.Minute).UTC()
	mockAuth.On("Login", mock.Anything, "ada@example.com", "s3cretpass", mock.AnythingOfType("accounts.ClientInfo")).
		Return(&accounts.LoginResult{
			User:   &accounts.User{ID: testUserID, Email: "ada@example.com"},
			Tokens: &accounts.TokenPair{Access: "access-token", Refresh: "refresh-token", AccessExpiresAt: expires},
		}, nil)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/login", map[string]string{
		"email": "ada@example.com", "password": "s3cretpass",
	})
	handler.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp LoginResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, "access-token", resp.Access)
	assert.Equal(t, "refresh-token", resp.Refresh)
	assert.False(t, resp.MFARequired)
	require.NotNil(t, resp.User)
	assert.Equal(t, testUserID, resp.User.ID)
}

func TestAuthHandler_Login_MFAChallenge(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := NewAuthHandler(mockAuth, new(MockMFAService))

	mockAuth.On("Login", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&accounts.LoginResult{MFARequired: true, Methods: []string{accounts.MFATypeTOTP}, MFAToken: "mfa-token"}, nil)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/login", map[string]string{
		"email": "ada@example.com", "password": "s3cretpass",
	})
	handler.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp LoginResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.True(t, resp.MFARequired)
	assert.Equal(t, "mfa-token", resp.MFAToken)
	assert.Empty(t, resp.Access)
	assert.Nil(t, resp.User)
}

func TestAuthHandler_Login_LockedOut(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := NewAuthHandler(mockAuth, new(MockMFAService))

	mockAuth.On("Login", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &accounts.LockoutError{Until: time.Now().Add(90 * time.Second)})

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/login", map[string]string{
		"email": "ada@example.com", "password": "wrong",
	})
	handler.Login(c)

	assert.Equal(t, http.StatusLocked, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := NewAuthHandler(mockAuth, new(MockMFAService))

	mockAuth.On("Login", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, accounts.ErrInvalidCredentials)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/login", map[string]string{
		"email": "ada@example.com", "password": "wrong",
	})
	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout_ResetContent(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := NewAuthHandler(mockAuth, new(MockMFAService))

	mockAuth.On("Logout", mock.Anything, "refresh-token").Return(nil)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/logout", map[string]string{"refresh": "refresh-token"})
	handler.Logout(c)

	assert.Equal(t, http.StatusResetContent, w.Code)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_Me_UsesAuthenticatedUser(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := NewAuthHandler(mockAuth, new(MockMFAService))

	mockAuth.On("Me", mock.Anything, testUserID).Return(&accounts.User{ID: testUserID, Email: "ada@example.com"}, nil)

	c, w := authedContext(t, http.MethodGet, "/auth/me", nil, false)
	handler.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ada@example.com")
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_ForgotPassword_SameAnswerForUnknownEmail(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := NewAuthHandler(mockAuth, new(MockMFAService))

	mockAuth.On("ForgotPassword", mock.Anything, "ghost@example.com").Return(nil)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/password/forgot", map[string]string{"email": "ghost@example.com"})
	handler.ForgotPassword(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_VerifyCode_NonLoginPurpose(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := NewAuthHandler(mockAuth, new(MockMFAService))

	mockAuth.On("VerifyCode", mock.Anything, mock.MatchedBy(func(in accounts.VerifyCodeInput) bool {
		return in.Purpose == "reset" && in.Code == "123456"
	})).Return(&accounts.LoginResult{User: &accounts.User{ID: testUserID}}, nil)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/otp/verify", map[string]string{
		"email": "ada@example.com", "channel": "email", "purpose": "reset", "code": "123456",
	})
	handler.VerifyCode(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp InfoResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, "Code verified.", resp.Message)
}

func TestAuthHandler_VerifyCode_Exhausted(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := NewAuthHandler(mockAuth, new(MockMFAService))

	mockAuth.On("VerifyCode", mock.Anything, mock.Anything).Return(nil, accounts.ErrCodeExhausted)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/otp/verify", map[string]string{
		"email": "ada@example.com", "channel": "email", "purpose": "login", "code": "000000",
	})
	handler.VerifyCode(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_ConfirmTOTP_ReturnsBackupCodes(t *testing.T) {
	mockMFA := new(MockMFAService)
	handler := NewAuthHandler(new(MockAuthService), mockMFA)

	mockMFA.On("ConfirmTOTP", mock.Anything, testUserID, "654321").Return([]string{"aaaa-bbbb", "cccc-dddd"}, nil)

	c, w := authedContext(t, http.MethodPost, "/auth/mfa/totp/confirm", map[string]string{"code": "654321"}, false)
	handler.ConfirmTOTP(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp BackupCodesResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Len(t, resp.BackupCodes, 2)
}

func TestAuthHandler_VerifyMFA_RejectsUnknownType(t *testing.T) {
	mockMFA := new(MockMFAService)
	handler := NewAuthHandler(new(MockAuthService), mockMFA)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/mfa/verify", map[string]string{
		"mfa_token": "mfa-token", "type": "SMS", "code": "123456",
	})
	handler.VerifyMFA(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockMFA.AssertNotCalled(t, "VerifyMFA", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_DisableMFA_UppercasesType(t *testing.T) {
	mockMFA := new(MockMFAService)
	handler := NewAuthHandler(new(MockAuthService), mockMFA)

	mockMFA.On("DisableMFA", mock.Anything, testUserID, "TOTP").Return(nil)

	c, w := authedContext(t, http.MethodDelete, "/auth/mfa/totp", nil, false)
	withParams(c, "type", "totp")
	handler.DisableMFA(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockMFA.AssertExpectations(t)
}

func TestAuthHandler_DisableMFA_ReauthRequired(t *testing.T) {
	mockMFA := new(MockMFAService)
	handler := NewAuthHandler(new(MockAuthService), mockMFA)

	mockMFA.On("DisableMFA", mock.Anything, testUserID, "TOTP").Return(accounts.ErrReauthRequired)

	c, w := authedContext(t, http.MethodDelete, "/auth/mfa/TOTP", nil, false)
	withParams(c, "type", "TOTP")
	handler.DisableMFA(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
