package v1

import (
	"net/http"
	"strings"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves sign-up, sign-in, recovery and MFA endpoints
type AuthHandler interface {
	Register(ctx *gin.Context)
	VerifyEmail(ctx *gin.Context)
	Login(ctx *gin.Context)
	Refresh(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Me(ctx *gin.Context)
	Reauthenticate(ctx *gin.Context)
	ChangePassword(ctx *gin.Context)
	ForgotPassword(ctx *gin.Context)
	ResetPassword(ctx *gin.Context)
	RequestMagicLink(ctx *gin.Context)
	ConsumeMagicLink(ctx *gin.Context)
	RequestCode(ctx *gin.Context)
	VerifyCode(ctx *gin.Context)
	BeginTOTPSetup(ctx *gin.Context)
	ConfirmTOTP(ctx *gin.Context)
	VerifyMFA(ctx *gin.Context)
	RegenerateBackupCodes(ctx *gin.Context)
	DisableMFA(ctx *gin.Context)
}

type authHandler struct {
	authService accounts.AuthService
	mfaService  accounts.MFAService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService accounts.AuthService, mfaService accounts.MFAService) AuthHandler {
	return &authHandler{
		authService: authService,
		mfaService:  mfaService,
	}
}

// Register handles POST /auth/register
func (handler *authHandler) Register(ctx *gin.Context) {
	var req RegisterRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := handler.authService.Register(ctx.Request.Context(), accounts.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newUserResponse(user))
}

// VerifyEmail handles POST /auth/email/verify
func (handler *authHandler) VerifyEmail(ctx *gin.Context) {
	var req VerifyEmailRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := handler.authService.VerifyEmail(ctx.Request.Context(), req.UserID, req.Token); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "Email verified."})
}

// Login handles POST /auth/login. The response is a session or an MFA challenge.
func (handler *authHandler) Login(ctx *gin.Context) {
	var req LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := handler.authService.Login(ctx.Request.Context(), req.Email, req.Password, clientInfo(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newLoginResponse(result))
}

// Refresh handles POST /auth/token/refresh
func (handler *authHandler) Refresh(ctx *gin.Context) {
	var req RefreshRequest
	if !bindJSON(ctx, &req) {
		return
	}

	pair, err := handler.authService.Refresh(ctx.Request.Context(), req.Refresh)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newTokenPairResponse(pair))
}

// Logout handles POST /auth/logout
func (handler *authHandler) Logout(ctx *gin.Context) {
	var req RefreshRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := handler.authService.Logout(ctx.Request.Context(), req.Refresh); err != nil {
		respondError(ctx, err)
		return
	}

	respondStatus(ctx, http.StatusResetContent)
}

// Me handles GET /auth/me
func (handler *authHandler) Me(ctx *gin.Context) {
	user, err := handler.authService.Me(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// Reauthenticate handles POST /auth/reauth
func (handler *authHandler) Reauthenticate(ctx *gin.Context) {
	var req PasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := handler.authService.Reauthenticate(ctx.Request.Context(), currentUserID(ctx), req.Password); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "Re-authenticated."})
}

// ChangePassword handles POST /auth/password/change
func (handler *authHandler) ChangePassword(ctx *gin.Context) {
	var req ChangePasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}

	err := handler.authService.ChangePassword(ctx.Request.Context(), currentUserID(ctx), req.OldPassword, req.NewPassword)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "Password changed."})
}

// ForgotPassword handles POST /auth/password/forgot. It answers the same way for unknown emails.
func (handler *authHandler) ForgotPassword(ctx *gin.Context) {
	var req EmailRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := handler.authService.ForgotPassword(ctx.Request.Context(), req.Email); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: accounts.ForgotPasswordMessage})
}

// ResetPassword handles POST /auth/password/reset
func (handler *authHandler) ResetPassword(ctx *gin.Context) {
	var req ResetPasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := handler.authService.ResetPassword(ctx.Request.Context(), req.UserID, req.Token, req.NewPassword); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "Password has been reset."})
}

// RequestMagicLink handles POST /auth/magic/request
func (handler *authHandler) RequestMagicLink(ctx *gin.Context) {
	var req EmailRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := handler.authService.RequestMagicLink(ctx.Request.Context(), req.Email, clientInfo(ctx)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "If account exists, a sign-in link has been sent."})
}

// ConsumeMagicLink handles POST /auth/magic/consume
func (handler *authHandler) ConsumeMagicLink(ctx *gin.Context) {
	var req TokenRequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := handler.authService.ConsumeMagicLink(ctx.Request.Context(), req.Token, clientInfo(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newLoginResponse(result))
}

// RequestCode handles POST /auth/otp/request
func (handler *authHandler) RequestCode(ctx *gin.Context) {
	var req RequestCodeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := handler.authService.RequestCode(ctx.Request.Context(), req.Email, req.Channel, req.Purpose); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "If account exists, a code has been sent."})
}

// VerifyCode handles POST /auth/otp/verify. Login codes answer with a session.
func (handler *authHandler) VerifyCode(ctx *gin.Context) {
	var req VerifyCodeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := handler.authService.VerifyCode(ctx.Request.Context(), accounts.VerifyCodeInput{
		Email:   req.Email,
		Channel: req.Channel,
		Purpose: req.Purpose,
		Code:    req.Code,
		Client:  clientInfo(ctx),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	if result.Tokens == nil && !result.MFARequired {
		ctx.JSON(http.StatusOK, InfoResponse{Message: "Code verified."})
		return
	}
	ctx.JSON(http.StatusOK, newLoginResponse(result))
}

// BeginTOTPSetup handles POST /auth/mfa/totp/setup
func (handler *authHandler) BeginTOTPSetup(ctx *gin.Context) {
	setup, err := handler.mfaService.BeginTOTPSetup(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, TOTPSetupResponse{Secret: setup.Secret, OTPAuthURI: setup.OTPAuthURI})
}

// ConfirmTOTP handles POST /auth/mfa/totp/confirm. Backup codes are only ever shown here.
func (handler *authHandler) ConfirmTOTP(ctx *gin.Context) {
	var req CodeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	codes, err := handler.mfaService.ConfirmTOTP(ctx.Request.Context(), currentUserID(ctx), req.Code)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, BackupCodesResponse{BackupCodes: codes})
}

// VerifyMFA handles POST /auth/mfa/verify
func (handler *authHandler) VerifyMFA(ctx *gin.Context) {
	var req VerifyMFARequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := handler.mfaService.VerifyMFA(ctx.Request.Context(), req.MFAToken, req.Type, req.Code, clientInfo(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newLoginResponse(result))
}

// RegenerateBackupCodes handles POST /auth/mfa/backup-codes
func (handler *authHandler) RegenerateBackupCodes(ctx *gin.Context) {
	codes, err := handler.mfaService.RegenerateBackupCodes(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, BackupCodesResponse{BackupCodes: codes})
}

// DisableMFA handles DELETE /auth/mfa/:type
func (handler *authHandler) DisableMFA(ctx *gin.Context) {
	if err := handler.mfaService.DisableMFA(ctx.Request.Context(), currentUserID(ctx), strings.ToUpper(ctx.Param("type"))); err != nil {
		respondError(ctx, err)
		return
	}

	respondNoContent(ctx)
}
