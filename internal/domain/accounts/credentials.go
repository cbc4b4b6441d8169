package accounts

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"
)

// OneTimeToken is a hashed link token for email verification, password reset or magic sign-in
type OneTimeToken struct {
	ID        string    `validate:"required,uuid4"`
	UserID    string    `validate:"required,uuid4"`
	Purpose   string    `validate:"required,oneof=verify_email reset_password magic_link"`
	TokenHash string    `validate:"required,len=64,hexadecimal"`
	ExpiresAt time.Time `validate:"required"`
	Used      bool
	IP        string
	UserAgent string
	CreatedAt time.Time
}

// Validate for validating OneTimeToken struct
func (t *OneTimeToken) Validate() error {
	return validators.ValidateStruct(t)
}

// Valid reports whether the token is unused and unexpired at now
func (t *OneTimeToken) Valid(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}

// OneTimeCode is a short numeric code sent over email or SMS
type OneTimeCode struct {
	ID          string    `validate:"required,uuid4"`
	UserID      string    `validate:"required,uuid4"`
	Channel     string    `validate:"required,oneof=email sms"`
	Destination string    `validate:"required"`
	Purpose     string    `validate:"required,oneof=login reset mfa"`
	CodeHash    string    `validate:"required,len=64,hexadecimal"`
	ExpiresAt   time.Time `validate:"required"`
	Attempts    int       `validate:"gte=0"`
	Verified    bool
	CreatedAt   time.Time
}

// Validate for validating OneTimeCode struct
func (c *OneTimeCode) Validate() error {
	return validators.ValidateStruct(c)
}

// Usable reports whether the code can still be guessed at now
func (c *OneTimeCode) Usable(now time.Time) bool {
	return !c.Verified && c.Attempts < MaxCodeAttempts && now.Before(c.ExpiresAt)
}

// LoginActivity is written for every sign-in attempt that resolves to a user
type LoginActivity struct {
	ID         string `validate:"required,uuid4"`
	UserID     string `validate:"required,uuid4"`
	IP         string
	UserAgent  string
	Successful bool
	Method     string `validate:"required,oneof=password otp magic mfa refresh"`
	MFAUsed    bool
	CreatedAt  time.Time
}

// AuthRequestLog records credential requests, including ones for unknown identifiers
type AuthRequestLog struct {
	ID         string  `validate:"required,uuid4"`
	UserID     *string `validate:"omitempty,uuid4"`
	Identifier string
	Action     string `validate:"required,oneof=magic_link email_otp sms_otp totp backup_code login_attempt password_reset unknown"`
	Success    bool
	Message    string
	IP         string
	CreatedAt  time.Time
}
