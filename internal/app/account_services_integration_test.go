//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClient = accounts.ClientInfo{IP: "203.0.113.7", UserAgent: "integration-test"}

func TestAuthService_RegisterVerifyAndLogin(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user, err := services.Auth.Register(ctx, accounts.RegisterInput{
		Email:    "Player@Example.com",
		Password: TestPassword,
		FullName: "Player One",
	})
	require.NoError(t, err)
	assert.Equal(t, "player@example.com", user.Email)
	assert.False(t, user.IsEmailVerified)

	_, err = services.Auth.Register(ctx, accounts.RegisterInput{Email: "player@example.com", Password: TestPassword})
	assert.ErrorIs(t, err, accounts.ErrEmailTaken)

	query := services.Mailer.LastLink(t, user.Email)
	assert.Equal(t, user.ID, query.Get("uid"))
	assert.ErrorIs(t, services.Auth.VerifyEmail(ctx, "00000000-0000-4000-8000-000000000000", query.Get("token")), accounts.ErrInvalidToken)
	require.NoError(t, services.Auth.VerifyEmail(ctx, user.ID, query.Get("token")))
	assert.ErrorIs(t, services.Auth.VerifyEmail(ctx, user.ID, query.Get("token")), accounts.ErrInvalidToken)

	result, err := services.Auth.Login(ctx, "player@example.com", TestPassword, testClient)
	require.NoError(t, err)
	require.NotNil(t, result.Tokens)
	assert.False(t, result.MFARequired)
	assert.NotEmpty(t, result.Tokens.Access)

	claims, err := services.Tokens.Parse(result.Tokens.Access, accounts.TokenPurposeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	me, err := services.Auth.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, me.IsEmailVerified)
	assert.NotNil(t, me.LastLoginAt)
}

func TestAuthService_Login_LocksOutAfterRepeatedFailures(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := services.CreateUser(t, "lockout@example.com")

	lockout := accounts.DefaultLockoutPolicy()
	for i := 0; i < lockout.Threshold1; i++ {
		_, err := services.Auth.Login(ctx, user.Email, "wrong-password", testClient)
		require.ErrorIs(t, err, accounts.ErrInvalidCredentials)
	}

	_, err := services.Auth.Login(ctx, user.Email, TestPassword, testClient)
	require.ErrorIs(t, err, accounts.ErrLockedOut)

	var lockoutErr *accounts.LockoutError
	require.True(t, errors.As(err, &lockoutErr))
	assert.True(t, lockoutErr.Until.After(time.Now()))

	activity, err := services.AccountAdmin.ListLoginActivity(ctx, user.ID, 0)
	require.NoError(t, err)
	assert.Len(t, activity, lockout.Threshold1)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.Auth.Login(context.Background(), "nobody@example.com", TestPassword, testClient)
	assert.ErrorIs(t, err, accounts.ErrInvalidCredentials)
}

func TestAuthService_Login_RateLimited(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	var err error
	for i := 0; i < 10 && !errors.Is(err, accounts.ErrRateLimited); i++ {
		_, err = services.Auth.Login(ctx, "flood@example.com", "x", testClient)
	}
	assert.ErrorIs(t, err, accounts.ErrRateLimited)
}

func TestAuthService_RefreshRotatesAndRejectsReuse(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := services.CreateUser(t, "refresh@example.com")

	result, err := services.Auth.Login(ctx, user.Email, TestPassword, testClient)
	require.NoError(t, err)

	pair, err := services.Auth.Refresh(ctx, result.Tokens.Refresh)
	require.NoError(t, err)
	assert.NotEqual(t, result.Tokens.Refresh, pair.Refresh)

	_, err = services.Auth.Refresh(ctx, result.Tokens.Refresh)
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)

	require.NoError(t, services.Auth.Logout(ctx, pair.Refresh))
	_, err = services.Auth.Refresh(ctx, pair.Refresh)
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)

	_, err = services.Auth.Refresh(ctx, pair.Access)
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)
}

func TestAuthService_PasswordResetAndHistory(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := services.CreateUser(t, "reset@example.com")

	require.NoError(t, services.Auth.ForgotPassword(ctx, "unknown@example.com"))
	require.NoError(t, services.Auth.ForgotPassword(ctx, user.Email))
	query := services.Mailer.LastLink(t, user.Email)

	err := services.Auth.ResetPassword(ctx, user.ID, query.Get("token"), "short")
	assert.Error(t, err)

	err = services.Auth.ResetPassword(ctx, user.ID, query.Get("token"), TestPassword)
	assert.ErrorIs(t, err, accounts.ErrPasswordReused)

	// the token was spent by the rejected attempt
	err = services.Auth.ResetPassword(ctx, user.ID, query.Get("token"), "brand-new-password-1")
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)

	require.NoError(t, services.Auth.ForgotPassword(ctx, user.Email))
	query = services.Mailer.LastLink(t, user.Email)

	// a mismatched uid leaves the token redeemable by its owner
	other := services.CreateUser(t, "bystander@example.com")
	err = services.Auth.ResetPassword(ctx, other.ID, query.Get("token"), "brand-new-password-1")
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)
	require.NoError(t, services.Auth.ResetPassword(ctx, user.ID, query.Get("token"), "brand-new-password-1"))

	_, err = services.Auth.Login(ctx, user.Email, TestPassword, testClient)
	assert.ErrorIs(t, err, accounts.ErrInvalidCredentials)
	_, err = services.Auth.Login(ctx, user.Email, "brand-new-password-1", testClient)
	require.NoError(t, err)

	err = services.Auth.ChangePassword(ctx, user.ID, "brand-new-password-1", TestPassword)
	assert.ErrorIs(t, err, accounts.ErrPasswordReused)
	require.NoError(t, services.Auth.ChangePassword(ctx, user.ID, "brand-new-password-1", "another-password-22"))
}

func TestAuthService_MagicLink(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := services.CreateUser(t, "magic@example.com")

	require.NoError(t, services.Auth.RequestMagicLink(ctx, user.Email, testClient))
	query := services.Mailer.LastLink(t, user.Email)

	result, err := services.Auth.ConsumeMagicLink(ctx, query.Get("token"), testClient)
	require.NoError(t, err)
	require.NotNil(t, result.Tokens)

	_, err = services.Auth.ConsumeMagicLink(ctx, query.Get("token"), testClient)
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)
}

func TestMFAService_TOTPChallengeAndBackupCodes(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := services.CreateUser(t, "mfa@example.com")

	_, err := services.MFA.ConfirmTOTP(ctx, user.ID, "000000")
	assert.ErrorIs(t, err, accounts.ErrTOTPSetupNotStarted)

	setup, err := services.MFA.BeginTOTPSetup(ctx, user.ID)
	require.NoError(t, err)
	assert.Contains(t, setup.OTPAuthURI, "otpauth://totp/")

	code, err := totp.GenerateCode(setup.Secret, time.Now())
	require.NoError(t, err)
	backupCodes, err := services.MFA.ConfirmTOTP(ctx, user.ID, code)
	require.NoError(t, err)
	assert.Len(t, backupCodes, 10)

	result, err := services.Auth.Login(ctx, user.Email, TestPassword, testClient)
	require.NoError(t, err)
	require.True(t, result.MFARequired)
	assert.Nil(t, result.Tokens)
	assert.Contains(t, result.Methods, accounts.MFATypeTOTP)
	assert.Contains(t, result.Methods, accounts.MFATypeBackup)

	_, err = services.MFA.VerifyMFA(ctx, result.MFAToken, accounts.MFATypeTOTP, "000000", testClient)
	assert.ErrorIs(t, err, accounts.ErrInvalidCode)

	code, err = totp.GenerateCode(setup.Secret, time.Now())
	require.NoError(t, err)
	verified, err := services.MFA.VerifyMFA(ctx, result.MFAToken, accounts.MFATypeTOTP, code, testClient)
	require.NoError(t, err)
	require.NotNil(t, verified.Tokens)

	// a spent mfa token cannot complete a second sign-in
	_, err = services.MFA.VerifyMFA(ctx, result.MFAToken, accounts.MFATypeBackup, backupCodes[0], testClient)
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)

	// backup codes work once
	result, err = services.Auth.Login(ctx, user.Email, TestPassword, testClient)
	require.NoError(t, err)
	verified, err = services.MFA.VerifyMFA(ctx, result.MFAToken, accounts.MFATypeBackup, backupCodes[0], testClient)
	require.NoError(t, err)
	require.NotNil(t, verified.Tokens)
	result, err = services.Auth.Login(ctx, user.Email, TestPassword, testClient)
	require.NoError(t, err)
	_, err = services.MFA.VerifyMFA(ctx, result.MFAToken, accounts.MFATypeBackup, backupCodes[0], testClient)
	assert.ErrorIs(t, err, accounts.ErrInvalidCode)

	_, err = services.MFA.VerifyMFA(ctx, verified.Tokens.Access, accounts.MFATypeBackup, backupCodes[1], testClient)
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)

	require.NoError(t, services.Auth.Reauthenticate(ctx, user.ID, TestPassword))
	require.NoError(t, services.MFA.DisableMFA(ctx, user.ID, accounts.MFATypeTOTP))

	result, err = services.Auth.Login(ctx, user.Email, TestPassword, testClient)
	require.NoError(t, err)
	assert.False(t, result.MFARequired)
}

func TestMFAService_SensitiveOperationsRequireReauth(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := services.CreateUser(t, "reauth@example.com")

	_, err := services.MFA.RegenerateBackupCodes(ctx, user.ID)
	assert.ErrorIs(t, err, accounts.ErrReauthRequired)
	err = services.MFA.DisableMFA(ctx, user.ID, accounts.MFATypeTOTP)
	assert.ErrorIs(t, err, accounts.ErrReauthRequired)

	assert.ErrorIs(t, services.Auth.Reauthenticate(ctx, user.ID, "wrong-password"), accounts.ErrInvalidCredentials)
	require.NoError(t, services.Auth.Reauthenticate(ctx, user.ID, TestPassword))

	_, err = services.MFA.RegenerateBackupCodes(ctx, user.ID)
	assert.ErrorIs(t, err, accounts.ErrMFANotEnabled)
	err = services.MFA.DisableMFA(ctx, user.ID, accounts.MFATypeTOTP)
	assert.ErrorIs(t, err, accounts.ErrMFANotEnabled)
}

func TestAccountAdminService_ApplyAccountAction(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	staff, err := services.AccountAdmin.CreateStaff(ctx, "staff@example.com", TestPassword, "Staff")
	require.NoError(t, err)
	assert.True(t, staff.IsStaff)
	user := services.CreateUser(t, "member@example.com")

	_, err = services.AccountAdmin.ApplyAccountAction(ctx, user.ID, staff.ID, accounts.AccountActionLock)
	assert.ErrorIs(t, err, accounts.ErrForbidden)
	_, err = services.AccountAdmin.ApplyAccountAction(ctx, staff.ID, staff.ID, accounts.AccountActionLock)
	assert.ErrorIs(t, err, accounts.ErrSelfAction)
	_, err = services.AccountAdmin.ApplyAccountAction(ctx, staff.ID, user.ID, "explode")
	assert.ErrorIs(t, err, accounts.ErrUnknownAction)

	updated, err := services.AccountAdmin.ApplyAccountAction(ctx, staff.ID, user.ID, accounts.AccountActionDisable)
	require.NoError(t, err)
	assert.True(t, updated.IsDisabled)

	_, err = services.Auth.Login(ctx, user.Email, TestPassword, testClient)
	assert.ErrorIs(t, err, accounts.ErrAccountDisabled)

	_, err = services.AccountAdmin.ApplyAccountAction(ctx, staff.ID, user.ID, accounts.AccountActionEnable)
	require.NoError(t, err)
	_, err = services.Auth.Login(ctx, user.Email, TestPassword, testClient)
	require.NoError(t, err)

	unread, err := services.Notifications.UnreadCount(ctx, user.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, unread, int64(2))

	_, err = services.AccountAdmin.ApplyAccountAction(ctx, staff.ID, user.ID, accounts.AccountActionHardDelete)
	require.NoError(t, err)
	_, err = services.Auth.Me(ctx, user.ID)
	assert.ErrorIs(t, err, accounts.ErrUserNotFound)
}

func TestAccountAdminService_Policies(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := services.CreateUser(t, "policy@example.com")

	policy, err := services.AccountAdmin.GetPolicy(ctx)
	require.NoError(t, err)
	policy.AllowMagicLink = false
	_, err = services.AccountAdmin.UpdatePolicy(ctx, policy)
	require.NoError(t, err)

	err = services.Auth.RequestMagicLink(ctx, user.Email, testClient)
	assert.ErrorIs(t, err, accounts.ErrMethodNotAllowed)

	lockout, err := services.AccountAdmin.GetLockoutPolicy(ctx)
	require.NoError(t, err)
	lockout.Threshold1 = 1
	_, err = services.AccountAdmin.UpdateLockoutPolicy(ctx, lockout)
	require.NoError(t, err)

	_, err = services.Auth.Login(ctx, user.Email, "wrong-password", testClient)
	require.ErrorIs(t, err, accounts.ErrInvalidCredentials)
	_, err = services.Auth.Login(ctx, user.Email, TestPassword, testClient)
	assert.ErrorIs(t, err, accounts.ErrLockedOut)
}

func enrollTOTP(t *testing.T, services *TestServices, userID string) string {
	t.Helper()
	ctx := context.Background()
	setup, err := services.MFA.BeginTOTPSetup(ctx, userID)
	require.NoError(t, err)
	code, err := totp.GenerateCode(setup.Secret, time.Now())
	require.NoError(t, err)
	_, err = services.MFA.ConfirmTOTP(ctx, userID, code)
	require.NoError(t, err)
	return setup.Secret
}

func enrollEmailMFA(t *testing.T, services *TestServices, userID string) {
	t.Helper()
	require.NoError(t, services.DBContext.MFARepo.SaveMethod(context.Background(), &accounts.MFAMethod{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      accounts.MFATypeEmail,
		Enabled:   true,
		CreatedAt: time.Now().UTC(),
	}))
}

func TestMFAService_VerifyMFA_RejectsMethodsNotChallenged(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := services.CreateUser(t, "totp-only@example.com")
	enrollTOTP(t, services, user.ID)

	result, err := services.Auth.Login(ctx, user.Email, TestPassword, testClient)
	require.NoError(t, err)
	require.True(t, result.MFARequired)
	assert.NotContains(t, result.Methods, accounts.MFATypeEmail)

	// an emailed code cannot stand in for the enrolled authenticator
	require.NoError(t, services.Auth.RequestCode(ctx, user.Email, accounts.ChannelEmail, accounts.CodePurposeMFA))
	code := services.Mailer.LastCode(t, user.Email)
	_, err = services.MFA.VerifyMFA(ctx, result.MFAToken, accounts.MFATypeEmail, code, testClient)
	assert.ErrorIs(t, err, accounts.ErrMethodNotAllowed)
	_, err = services.MFA.VerifyMFA(ctx, result.MFAToken, accounts.MFATypeSMS, code, testClient)
	assert.ErrorIs(t, err, accounts.ErrMethodNotAllowed)
}

func TestMFAService_VerifyMFA_RequiresEnrolledMethod(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := services.CreateUser(t, "no-mfa@example.com")

	token, err := services.Tokens.IssueMFAToken(user)
	require.NoError(t, err)
	require.NoError(t, services.Auth.RequestCode(ctx, user.Email, accounts.ChannelEmail, accounts.CodePurposeMFA))
	code := services.Mailer.LastCode(t, user.Email)

	_, err = services.MFA.VerifyMFA(ctx, token, accounts.MFATypeEmail, code, testClient)
	assert.ErrorIs(t, err, accounts.ErrMFANotEnabled)
}

func TestMFAService_AuthPolicyNarrowsChallenge(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := services.CreateUser(t, "narrowed@example.com")
	secret := enrollTOTP(t, services, user.ID)
	enrollEmailMFA(t, services, user.ID)

	result, err := services.Auth.Login(ctx, user.Email, TestPassword, testClient)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{accounts.MFATypeTOTP, accounts.MFATypeEmail, accounts.MFATypeBackup}, result.Methods)

	_, err = services.AccountAdmin.UpsertAuthPolicy(ctx, &accounts.AuthPolicy{
		Scope:           accounts.PolicyScopeUser,
		UserID:          &user.ID,
		IsActive:        true,
		SelectedMethods: map[string][]string{accounts.PolicyActionLogin: {accounts.MFATypeEmail}},
	})
	require.NoError(t, err)

	result, err = services.Auth.Login(ctx, user.Email, TestPassword, testClient)
	require.NoError(t, err)
	assert.Equal(t, []string{accounts.MFATypeEmail, accounts.MFATypeBackup}, result.Methods)

	totpCode, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)
	_, err = services.MFA.VerifyMFA(ctx, result.MFAToken, accounts.MFATypeTOTP, totpCode, testClient)
	assert.ErrorIs(t, err, accounts.ErrMethodNotAllowed)

	require.NoError(t, services.Auth.RequestCode(ctx, user.Email, accounts.ChannelEmail, accounts.CodePurposeMFA))
	verified, err := services.MFA.VerifyMFA(ctx, result.MFAToken, accounts.MFATypeEmail, services.Mailer.LastCode(t, user.Email), testClient)
	require.NoError(t, err)
	assert.NotNil(t, verified.Tokens)

	// a user policy overrides the global one
	_, err = services.AccountAdmin.UpsertAuthPolicy(ctx, &accounts.AuthPolicy{
		Scope:             accounts.PolicyScopeGlobal,
		IsActive:          true,
		IsMandatory:       true,
		ApplicableMethods: map[string][]string{accounts.PolicyActionLogin: {accounts.MFATypeTOTP}},
	})
	require.NoError(t, err)
	result, err = services.Auth.Login(ctx, user.Email, TestPassword, testClient)
	require.NoError(t, err)
	assert.Equal(t, []string{accounts.MFATypeEmail, accounts.MFATypeBackup}, result.Methods)
}

func TestAccountAdminService_StaffMustEnrollMFA(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	staff, err := services.AccountAdmin.CreateStaff(ctx, "ops@example.com", TestPassword, "Ops")
	require.NoError(t, err)

	policy, err := services.AccountAdmin.GetPolicy(ctx)
	require.NoError(t, err)
	policy.RequireMFAForStaff = true
	_, err = services.AccountAdmin.UpdatePolicy(ctx, policy)
	require.NoError(t, err)

	_, err = services.Auth.Login(ctx, staff.Email, TestPassword, testClient)
	assert.ErrorIs(t, err, accounts.ErrMFAEnrollmentRequired)

	enrollTOTP(t, services, staff.ID)
	result, err := services.Auth.Login(ctx, staff.Email, TestPassword, testClient)
	require.NoError(t, err)
	assert.True(t, result.MFARequired)

	// members are not affected
	user := services.CreateUser(t, "member-no-mfa@example.com")
	result, err = services.Auth.Login(ctx, user.Email, TestPassword, testClient)
	require.NoError(t, err)
	assert.NotNil(t, result.Tokens)
}

func TestAuthService_OneTimeCodeLogin(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := services.CreateUser(t, "otp@example.com")

	require.NoError(t, services.Auth.RequestCode(ctx, user.Email, accounts.ChannelEmail, accounts.CodePurposeLogin))
	code := services.Mailer.LastCode(t, user.Email)
	input := accounts.VerifyCodeInput{
		Email:   user.Email,
		Channel: accounts.ChannelEmail,
		Purpose: accounts.CodePurposeLogin,
		Client:  testClient,
	}

	for i := 1; i < accounts.MaxCodeAttempts; i++ {
		input.Code = "not-the-code"
		_, err := services.Auth.VerifyCode(ctx, input)
		require.ErrorIs(t, err, accounts.ErrInvalidCode)
	}
	input.Code = "not-the-code"
	_, err := services.Auth.VerifyCode(ctx, input)
	require.ErrorIs(t, err, accounts.ErrCodeExhausted)

	// a burned code stays burned even for the right guess
	input.Code = code
	_, err = services.Auth.VerifyCode(ctx, input)
	assert.ErrorIs(t, err, accounts.ErrCodeExhausted)

	require.NoError(t, services.Auth.RequestCode(ctx, user.Email, accounts.ChannelEmail, accounts.CodePurposeLogin))
	input.Code = services.Mailer.LastCode(t, user.Email)
	result, err := services.Auth.VerifyCode(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, result.Tokens)
	assert.NotEmpty(t, result.Tokens.Access)

	_, err = services.Auth.VerifyCode(ctx, input)
	assert.ErrorIs(t, err, accounts.ErrInvalidCode)

	// unknown addresses are not disclosed
	require.NoError(t, services.Auth.RequestCode(ctx, "ghost@example.com", accounts.ChannelEmail, accounts.CodePurposeLogin))
	assert.Zero(t, services.Mailer.Count("ghost@example.com"))
}

func TestAuthService_RequestCode_SMS(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := services.CreateUser(t, "sms@example.com")

	err := services.Auth.RequestCode(ctx, user.Email, accounts.ChannelSMS, accounts.CodePurposeLogin)
	assert.ErrorIs(t, err, accounts.ErrMethodNotAllowed)

	policy, err := services.AccountAdmin.GetPolicy(ctx)
	require.NoError(t, err)
	policy.AllowSMSOTP = true
	_, err = services.AccountAdmin.UpdatePolicy(ctx, policy)
	require.NoError(t, err)

	err = services.Auth.RequestCode(ctx, user.Email, accounts.ChannelSMS, accounts.CodePurposeLogin)
	assert.ErrorIs(t, err, accounts.ErrPhoneRequired)

	err = services.Auth.RequestCode(ctx, user.Email, "pigeon", accounts.CodePurposeLogin)
	assert.ErrorIs(t, err, accounts.ErrUnsupportedCodeChannel)
}
