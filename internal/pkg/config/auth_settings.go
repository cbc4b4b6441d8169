package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings configures token signing, token lifetimes and one-time credential expiry
type AuthSettings struct {
	JWTSecret         string        `mapstructure:"jwt_secret" validate:"required,min=16"`
	EncryptionKey     string        `mapstructure:"encryption_key" validate:"omitempty,min=16"`
	Issuer            string        `mapstructure:"issuer" validate:"required"`
	AccessTokenTTL    time.Duration `mapstructure:"access_token_ttl" validate:"required"`
	RefreshTokenTTL   time.Duration `mapstructure:"refresh_token_ttl" validate:"required,gtfield=AccessTokenTTL"`
	MFATokenTTL       time.Duration `mapstructure:"mfa_token_ttl"`
	VerifyEmailTTL    time.Duration `mapstructure:"verify_email_ttl"`
	PasswordResetTTL  time.Duration `mapstructure:"password_reset_ttl"`
	MagicLinkTTL      time.Duration `mapstructure:"magic_link_ttl"`
	OneTimeCodeTTL    time.Duration `mapstructure:"one_time_code_ttl"`
	OneTimeCodeDigits int           `mapstructure:"one_time_code_digits" validate:"omitempty,min=4,max=8"`
	BackupCodeCount   int           `mapstructure:"backup_code_count" validate:"omitempty,min=1,max=50"`
	TOTPIssuer        string        `mapstructure:"totp_issuer"`
	FrontendURL       string        `mapstructure:"frontend_url" validate:"omitempty,url"`
	RateLimitAttempts int           `mapstructure:"rate_limit_attempts" validate:"omitempty,min=1"`
	RateLimitWindow   time.Duration `mapstructure:"rate_limit_window"`
}

// ApplyDefaults fills unset lifetimes and limits
func (s *AuthSettings) ApplyDefaults() {
	if s.EncryptionKey == "" {
		s.EncryptionKey = s.JWTSecret
	}
	if s.MFATokenTTL == 0 {
		s.MFATokenTTL = 5 * time.Minute
	}
	if s.VerifyEmailTTL == 0 {
		s.VerifyEmailTTL = 24 * time.Hour
	}
	if s.PasswordResetTTL == 0 {
		s.PasswordResetTTL = time.Hour
	}
	if s.MagicLinkTTL == 0 {
		s.MagicLinkTTL = 15 * time.Minute
	}
	if s.OneTimeCodeTTL == 0 {
		s.OneTimeCodeTTL = 10 * time.Minute
	}
	if s.OneTimeCodeDigits == 0 {
		s.OneTimeCodeDigits = 6
	}
	if s.BackupCodeCount == 0 {
		s.BackupCodeCount = 10
	}
	if s.TOTPIssuer == "" {
		s.TOTPIssuer = s.Issuer
	}
	if s.RateLimitAttempts == 0 {
		s.RateLimitAttempts = 5
	}
	if s.RateLimitWindow == 0 {
		s.RateLimitWindow = time.Minute
	}
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	return nil
}
