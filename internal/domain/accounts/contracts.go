package accounts

import (
	"context"
	"time"
)

// RegisterInput carries a new account's credentials
type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

// VerifyCodeInput identifies a pending one-time code and the guess for it
type VerifyCodeInput struct {
	Email   string
	Channel string
	Purpose string
	Code    string
	Client  ClientInfo
}

// AuthService defines sign-up, sign-in and credential recovery.
type AuthService interface {
	// Register creates an unverified account and mails a verification link.
	Register(ctx context.Context, input RegisterInput) (*User, error)

	// VerifyEmail consumes a verification token issued for userID.
	VerifyEmail(ctx context.Context, userID, token string) error

	// Login checks the password against lockout and policy rules.
	// It returns either tokens or an MFA challenge.
	Login(ctx context.Context, email, password string, client ClientInfo) (*LoginResult, error)

	// Refresh rotates a refresh token. A refresh token can only be used once.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout revokes a refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// Me returns the account behind an access token.
	Me(ctx context.Context, userID string) (*User, error)

	// Reauthenticate confirms the password and opens the re-authentication window.
	Reauthenticate(ctx context.Context, userID, password string) error

	// ChangePassword replaces the password after checking the old one and recent history.
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error

	// ForgotPassword mails a reset link when the account exists. It never reveals whether it does.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword sets a new password using a reset token.
	ResetPassword(ctx context.Context, userID, token, newPassword string) error

	// RequestMagicLink mails a sign-in link when policy allows it.
	RequestMagicLink(ctx context.Context, email string, client ClientInfo) error

	// ConsumeMagicLink exchanges a magic link token for a session.
	ConsumeMagicLink(ctx context.Context, token string, client ClientInfo) (*LoginResult, error)

	// RequestCode sends a numeric one-time code over email or SMS.
	RequestCode(ctx context.Context, email, channel, purpose string) error

	// VerifyCode checks a one-time code. Login codes return a session.
	VerifyCode(ctx context.Context, input VerifyCodeInput) (*LoginResult, error)
}

// MFAService defines second-factor enrollment and verification.
type MFAService interface {
	// BeginTOTPSetup stores a fresh, disabled TOTP secret and returns its provisioning URI.
	BeginTOTPSetup(ctx context.Context, userID string) (*TOTPSetup, error)

	// ConfirmTOTP enables TOTP once a valid code is presented and returns new backup codes.
	ConfirmTOTP(ctx context.Context, userID, code string) ([]string, error)

	// DisableMFA removes a method. Requires recent re-authentication.
	DisableMFA(ctx context.Context, userID, mfaType string) error

	// RegenerateBackupCodes replaces all backup codes. Requires recent re-authentication.
	RegenerateBackupCodes(ctx context.Context, userID string) ([]string, error)

	// VerifyMFA completes a challenged login.
	VerifyMFA(ctx context.Context, mfaToken, mfaType, code string, client ClientInfo) (*LoginResult, error)

	// ListMethods returns the user's enrolled methods.
	ListMethods(ctx context.Context, userID string) ([]*MFAMethod, error)
}

// AccountAdminService defines staff-only account and policy management.
type AccountAdminService interface {
	// ApplyAccountAction runs one of the AccountAction* actions on userID on behalf of actorID.
	ApplyAccountAction(ctx context.Context, actorID, userID, action string) (*User, error)

	// CreateStaff creates an active, verified staff account.
	CreateStaff(ctx context.Context, email, password, fullName string) (*User, error)

	GetPolicy(ctx context.Context) (*Policy, error)
	UpdatePolicy(ctx context.Context, policy *Policy) (*Policy, error)
	GetLockoutPolicy(ctx context.Context) (*LockoutPolicy, error)
	UpdateLockoutPolicy(ctx context.Context, policy *LockoutPolicy) (*LockoutPolicy, error)

	// UpsertAuthPolicy saves the policy for its (scope, user) pair, replacing an existing one.
	UpsertAuthPolicy(ctx context.Context, policy *AuthPolicy) (*AuthPolicy, error)

	ListLoginActivity(ctx context.Context, userID string, limit int) ([]*LoginActivity, error)
	ListRequestLogs(ctx context.Context, userID string, limit int) ([]*AuthRequestLog, error)
}

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	DeleteByID(ctx context.Context, userID string) error
	ListStaff(ctx context.Context) ([]*User, error)
	AddPasswordHistory(ctx context.Context, entry *PasswordHistory) error
	RecentPasswordHashes(ctx context.Context, userID string, limit int) ([]string, error)
}

// PolicyRepository stores the global policies and per-scope auth policies.
// Getters for the global policies return defaults when nothing was saved
type PolicyRepository interface {
	GetPolicy(ctx context.Context) (*Policy, error)
	SavePolicy(ctx context.Context, policy *Policy) error
	GetLockoutPolicy(ctx context.Context) (*LockoutPolicy, error)
	SaveLockoutPolicy(ctx context.Context, policy *LockoutPolicy) error
	GetAuthPolicy(ctx context.Context, scope string, userID *string) (*AuthPolicy, error)
	SaveAuthPolicy(ctx context.Context, policy *AuthPolicy) error
}

// MFARepository stores enrolled methods and backup codes
type MFARepository interface {
	ListMethods(ctx context.Context, userID string) ([]*MFAMethod, error)
	GetMethod(ctx context.Context, userID, mfaType string) (*MFAMethod, error)
	SaveMethod(ctx context.Context, method *MFAMethod) error
	DeleteMethod(ctx context.Context, userID, mfaType string) error
	ReplaceBackupCodes(ctx context.Context, userID string, codes []*BackupCode) error
	UseBackupCode(ctx context.Context, userID, codeHash string, now time.Time) (bool, error)
}

// CredentialRepository stores one-time tokens and codes
type CredentialRepository interface {
	CreateToken(ctx context.Context, token *OneTimeToken) error
	GetTokenByHash(ctx context.Context, purpose, tokenHash string) (*OneTimeToken, error)
	// MarkTokenUsed flips an unused token to used and reports whether this call won.
	MarkTokenUsed(ctx context.Context, tokenID string) (bool, error)
	CreateCode(ctx context.Context, code *OneTimeCode) error
	GetLatestCode(ctx context.Context, userID, channel, purpose string) (*OneTimeCode, error)
	UpdateCode(ctx context.Context, code *OneTimeCode) error
	// MarkCodeVerified flips an unverified code to verified and reports whether this call won.
	MarkCodeVerified(ctx context.Context, codeID string) (bool, error)
}

// ActivityRepository stores login activity and credential request logs
type ActivityRepository interface {
	CreateLoginActivity(ctx context.Context, activity *LoginActivity) error
	HasSuccessfulLogin(ctx context.Context, userID, ip, userAgent string) (bool, error)
	ListLoginActivity(ctx context.Context, userID string, limit int) ([]*LoginActivity, error)
	CreateRequestLog(ctx context.Context, entry *AuthRequestLog) error
	ListRequestLogs(ctx context.Context, userID string, limit int) ([]*AuthRequestLog, error)
}

// PasswordHasher hashes and compares passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenIssuer signs and verifies session tokens
type TokenIssuer interface {
	// IssuePair signs an access token and a refresh token for user.
	IssuePair(user *User) (*TokenPair, error)

	// IssueMFAToken signs a short-lived token that only VerifyMFA accepts.
	IssueMFAToken(user *User) (string, error)

	// Parse verifies signature, expiry and that the token was issued for purpose.
	Parse(token, purpose string) (*TokenClaims, error)
}

// TOTPProvider generates and checks time-based codes
type TOTPProvider interface {
	Generate(accountName string) (*TOTPSetup, error)
	Validate(code, secret string, now time.Time) bool
}

// SecretGenerator produces random link tokens and numeric codes and their storage hashes
type SecretGenerator interface {
	NewToken() (string, error)
	NewNumericCode(digits int) (string, error)
	NewBackupCode() (string, error)
	Hash(secret string) string
}

// SecretSealer encrypts secrets that must be recoverable, such as TOTP seeds, before they are stored
type SecretSealer interface {
	Seal(plaintext string) (string, error)
	// Open reverses Seal. Values that were stored before sealing was enabled are returned unchanged.
	Open(sealed string) (string, error)
}

// RateLimiter counts attempts per key within a sliding window
type RateLimiter interface {
	// Allow records an attempt for key and reports whether it is within limit.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// TokenBlacklist remembers revoked token ids until they would have expired anyway
type TokenBlacklist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
