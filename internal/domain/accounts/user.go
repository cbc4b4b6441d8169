package accounts

import (
	"strings"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"
)

// User is an account holder. Email is stored lowercased and is unique
type User struct {
	ID                 string `validate:"required,uuid4"`
	Email              string `validate:"required,email"`
	PasswordHash       string `validate:"required"`
	FullName           string `validate:"max=150"`
	Phone              string `validate:"omitempty,e164"`
	IsStaff            bool
	IsActive           bool
	IsEmailVerified    bool
	IsPhoneVerified    bool
	MustChangePassword bool
	IsLocked           bool
	IsDisabled         bool
	IsSuspended        bool
	SuspendedAt        *time.Time
	IsSoftDeleted      bool
	DeletedAt          *time.Time
	PendingDelete      bool
	DeleteRequestedAt  *time.Time
	FailedAttempts     int `validate:"gte=0"`
	LockoutUntil       *time.Time
	LastReauthAt       *time.Time
	LastLoginAt        *time.Time
	CreatedAt          time.Time `validate:"required"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.ValidateStruct(u)
}

// NormalizeEmail trims and lowercases an address before lookups and storage
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsLockedOut reports whether a failed-attempt lockout is still running at now
func (u *User) IsLockedOut(now time.Time) bool {
	return u.LockoutUntil != nil && u.LockoutUntil.After(now)
}

// NeedsReauth reports whether sensitive operations must ask for the password again
func (u *User) NeedsReauth(now time.Time) bool {
	return u.LastReauthAt == nil || now.Sub(*u.LastReauthAt) > ReauthWindow
}

// CanSignIn is false for any administrative block on the account
func (u *User) CanSignIn() bool {
	return u.IsActive && !u.IsLocked && !u.IsDisabled && !u.IsSuspended && !u.IsSoftDeleted
}

// RegisterFailedAttempt bumps the counter and extends the lockout per policy
func (u *User) RegisterFailedAttempt(policy *LockoutPolicy, now time.Time) {
	u.FailedAttempts++
	if policy == nil || !policy.Active {
		return
	}
	if wait := policy.WaitFor(u.FailedAttempts); wait > 0 {
		until := now.Add(wait)
		u.LockoutUntil = &until
	}
}

// ResetLockout clears the failed-attempt state after a successful sign-in or reset
func (u *User) ResetLockout() {
	u.FailedAttempts = 0
	u.LockoutUntil = nil
}

// MarkSignedIn records a successful sign-in, which also counts as a fresh re-authentication
func (u *User) MarkSignedIn(now time.Time) {
	u.ResetLockout()
	u.LastLoginAt = &now
	u.LastReauthAt = &now
}

// ApplyAction mutates account flags for an administrative action. hard_delete is
// handled by the caller since it removes the row
func (u *User) ApplyAction(action string, now time.Time) error {
	switch action {
	case AccountActionLock:
		u.IsLocked = true
	case AccountActionUnlock:
		u.IsLocked = false
		u.ResetLockout()
	case AccountActionDisable:
		u.IsDisabled = true
	case AccountActionEnable:
		u.IsDisabled = false
	case AccountActionSuspend:
		u.IsSuspended = true
		u.SuspendedAt = &now
	case AccountActionUnsuspend:
		u.IsSuspended = false
		u.SuspendedAt = nil
	case AccountActionSoftDelete:
		u.IsSoftDeleted = true
		u.DeletedAt = &now
		u.IsActive = false
	case AccountActionRestore:
		u.IsSoftDeleted = false
		u.DeletedAt = nil
		u.IsActive = true
	case AccountActionRequestDelete:
		u.PendingDelete = true
		u.DeleteRequestedAt = &now
	case AccountActionCancelDelete:
		u.PendingDelete = false
		u.DeleteRequestedAt = nil
	default:
		return ErrUnknownAction
	}
	return nil
}

// PasswordHistory keeps previous hashes so recent passwords cannot be reused
type PasswordHistory struct {
	ID           string `validate:"required,uuid4"`
	UserID       string `validate:"required,uuid4"`
	PasswordHash string `validate:"required"`
	CreatedAt    time.Time
}

// ClientInfo identifies where a request came from
type ClientInfo struct {
	IP        string
	UserAgent string
}

// TokenPair is a signed access/refresh token pair
type TokenPair struct {
	Access          string
	Refresh         string
	AccessExpiresAt time.Time
}

// TokenClaims is the verified content of a signed token
type TokenClaims struct {
	ID        string
	UserID    string
	Email     string
	IsStaff   bool
	Purpose   string
	ExpiresAt time.Time
}

// Token purposes embedded in signed tokens
const (
	TokenPurposeAccess  = "access"
	TokenPurposeRefresh = "refresh"
	TokenPurposeMFA     = "mfa"
)

// LoginResult is either a token pair or an MFA challenge
type LoginResult struct {
	User        *User
	Tokens      *TokenPair
	MFARequired bool
	Methods     []string
	MFAToken    string
}
