package accounts

import "time"

// One-time token purposes
const (
	PurposeVerifyEmail   = "verify_email"
	PurposeResetPassword = "reset_password"
	PurposeMagicLink     = "magic_link"
)

// One-time code channels and purposes
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"

	CodePurposeLogin = "login"
	CodePurposeReset = "reset"
	CodePurposeMFA   = "mfa"
)

// MFA method types. BACKUP is only accepted during verification
const (
	MFATypeTOTP   = "TOTP"
	MFATypeEmail  = "EMAIL"
	MFATypeSMS    = "SMS"
	MFATypeBackup = "BACKUP"
)

// Login activity methods
const (
	LoginMethodPassword = "password"
	LoginMethodOTP      = "otp"
	LoginMethodMagic    = "magic"
	LoginMethodMFA      = "mfa"
	LoginMethodRefresh  = "refresh"
)

// Request log actions
const (
	RequestActionMagicLink     = "magic_link"
	RequestActionEmailOTP      = "email_otp"
	RequestActionSMSOTP        = "sms_otp"
	RequestActionTOTP          = "totp"
	RequestActionBackupCode    = "backup_code"
	RequestActionLoginAttempt  = "login_attempt"
	RequestActionPasswordReset = "password_reset"
	RequestActionUnknown       = "unknown"
)

// Auth policy scopes
const (
	PolicyScopeGlobal = "global"
	PolicyScopeUser   = "user"
)

// PolicyActionLogin is the action key consulted when narrowing MFA methods at sign-in
const PolicyActionLogin = "login"

// Administrative account actions
const (
	AccountActionLock          = "lock"
	AccountActionUnlock        = "unlock"
	AccountActionDisable       = "disable"
	AccountActionEnable        = "enable"
	AccountActionSuspend       = "suspend"
	AccountActionUnsuspend     = "unsuspend"
	AccountActionSoftDelete    = "soft_delete"
	AccountActionRestore       = "restore"
	AccountActionRequestDelete = "request_delete"
	AccountActionCancelDelete  = "cancel_delete"
	AccountActionHardDelete    = "hard_delete"
)

const (
	// ReauthWindow bounds how old last_reauth_at may be for sensitive operations
	ReauthWindow = 10 * time.Minute
	// PasswordHistoryDepth is how many previous hashes a new password is checked against
	PasswordHistoryDepth = 5
	// MaxCodeAttempts burns a one-time code after this many wrong guesses
	MaxCodeAttempts = 5
	// MinPasswordLength applies to registration, change and reset
	MinPasswordLength = 8
)

// ForgotPasswordMessage is returned whether or not the account exists
const ForgotPasswordMessage = "If account exists, a reset link has been sent."
