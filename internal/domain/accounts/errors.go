package accounts

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailTaken             = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrLockedOut              = errors.New("account temporarily locked")
	ErrAccountDisabled        = errors.New("account disabled")
	ErrRateLimited            = errors.New("too many attempts, try again later")
	ErrMethodNotAllowed       = errors.New("sign-in method not allowed by policy")
	ErrEmailNotVerified       = errors.New("email address not verified")
	ErrMFAEnrollmentRequired  = errors.New("staff accounts must enroll an MFA method")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrInvalidCode            = errors.New("invalid or expired code")
	ErrCodeExhausted          = errors.New("code attempts exhausted")
	ErrPasswordReused         = errors.New("password was used recently")
	ErrReauthRequired         = errors.New("recent re-authentication required")
	ErrForbidden              = errors.New("not allowed")
	ErrSelfAction             = errors.New("cannot apply account actions to yourself")
	ErrUnknownAction          = errors.New("unknown account action")
	ErrMFANotEnabled          = errors.New("mfa method not enabled")
	ErrPhoneRequired          = errors.New("a verified phone number is required")
	ErrAuthPolicyNotFound     = errors.New("auth policy not found")
	ErrTOTPSetupNotStarted    = errors.New("totp setup has not been started")
	ErrUnsupportedMFAType     = errors.New("unsupported mfa type")
	ErrUnsupportedCodeChannel = errors.New("unsupported code channel")
)

// LockoutError reports when a locked-out account may retry
type LockoutError struct {
	Until time.Time
}

func (e *LockoutError) Error() string {
	return fmt.Sprintf("%s until %s", ErrLockedOut.Error(), e.Until.UTC().Format(time.RFC3339))
}

// Unwrap lets errors.Is match ErrLockedOut
func (e *LockoutError) Unwrap() error {
	return ErrLockedOut
}

// RetryAfter returns the remaining lockout relative to now, never negative
func (e *LockoutError) RetryAfter(now time.Time) time.Duration {
	if d := e.Until.Sub(now); d > 0 {
		return d
	}
	return 0
}
