package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"
	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"

	"github.com/google/uuid"
)

// authService implements the AuthService interface
type authService struct {
	accountCore
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(deps AccountDeps, logger logger.Logger) (accounts.AuthService, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	return &authService{accountCore{AccountDeps: deps, logger: logger}}, nil
}

func (s *authService) Register(ctx context.Context, input accounts.RegisterInput) (*accounts.User, error) {
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := s.Hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &accounts.User{
		ID:           uuid.NewString(),
		Email:        accounts.NormalizeEmail(input.Email),
		PasswordHash: hash,
		FullName:     input.FullName,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	if err := s.Users.AddPasswordHistory(ctx, &accounts.PasswordHistory{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		PasswordHash: hash,
		CreatedAt:    user.CreatedAt,
	}); err != nil {
		return nil, fmt.Errorf("failed to store password history: %w", err)
	}

	token, err := s.issueToken(ctx, user, accounts.PurposeVerifyEmail, s.Settings.VerifyEmailTTL, accounts.ClientInfo{})
	if err != nil {
		return nil, fmt.Errorf("failed to issue verification token: %w", err)
	}
	link := s.link("/verify-email", url.Values{"uid": {user.ID}, "token": {token}})
	s.mail(ctx, user.Email, "Verify your email", "Confirm your address: "+link)

	s.logger.Info("Registered user ", user.ID)
	return user, nil
}

func (s *authService) VerifyEmail(ctx context.Context, userID, token string) error {
	if _, err := s.consumeToken(ctx, accounts.PurposeVerifyEmail, token, userID); err != nil {
		return err
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.IsEmailVerified = true
	return s.Users.Update(ctx, user)
}

func (s *authService) Login(ctx context.Context, email, password string, client accounts.ClientInfo) (*accounts.LoginResult, error) {
	email = accounts.NormalizeEmail(email)

	allowed, err := s.RateLimiter.Allow(ctx, fmt.Sprintf("login:%s:%s", email, client.IP), s.Settings.RateLimitAttempts, s.Settings.RateLimitWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to check rate limit: %w", err)
	}
	if !allowed {
		s.logRequest(ctx, nil, email, accounts.RequestActionLoginAttempt, false, "rate limited", client.IP)
		return nil, accounts.ErrRateLimited
	}

	user, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, accounts.ErrUserNotFound) {
		s.logRequest(ctx, nil, email, accounts.RequestActionLoginAttempt, false, "unknown email", client.IP)
		return nil, accounts.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if user.IsLockedOut(now) {
		s.logRequest(ctx, &user.ID, email, accounts.RequestActionLoginAttempt, false, "locked out", client.IP)
		return nil, &accounts.LockoutError{Until: *user.LockoutUntil}
	}

	if !s.Hasher.Compare(user.PasswordHash, password) {
		lockout, err := s.Policies.GetLockoutPolicy(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load lockout policy: %w", err)
		}
		user.RegisterFailedAttempt(lockout, now)
		if err := s.Users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to record failed attempt: %w", err)
		}
		s.recordActivity(ctx, user, client, false, accounts.LoginMethodPassword, false)
		s.logRequest(ctx, &user.ID, email, accounts.RequestActionLoginAttempt, false, "bad password", client.IP)
		return nil, accounts.ErrInvalidCredentials
	}

	if !user.CanSignIn() {
		s.logRequest(ctx, &user.ID, email, accounts.RequestActionLoginAttempt, false, "account disabled", client.IP)
		return nil, accounts.ErrAccountDisabled
	}

	policy, err := s.Policies.GetPolicy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}
	if !policy.AllowPassword {
		return nil, accounts.ErrMethodNotAllowed
	}
	if policy.RequireEmailVerification && !user.IsEmailVerified {
		return nil, accounts.ErrEmailNotVerified
	}

	s.logRequest(ctx, &user.ID, email, accounts.RequestActionLoginAttempt, true, "password accepted", client.IP)
	return s.challengeOrComplete(ctx, user, client, policy, accounts.LoginMethodPassword)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*accounts.TokenPair, error) {
	claims, err := s.Tokens.Parse(refreshToken, accounts.TokenPurposeRefresh)
	if err != nil {
		return nil, accounts.ErrInvalidToken
	}
	revoked, err := s.Blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	if revoked {
		s.logger.Warn("Reuse of revoked refresh token for user ", claims.UserID)
		return nil, accounts.ErrInvalidToken
	}

	user, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, accounts.ErrInvalidToken
	}
	if !user.CanSignIn() {
		return nil, accounts.ErrAccountDisabled
	}

	if err := s.Blacklist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt)); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	pair, err := s.Tokens.IssuePair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	s.recordActivity(ctx, user, accounts.ClientInfo{}, true, accounts.LoginMethodRefresh, false)
	return pair, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.Tokens.Parse(refreshToken, accounts.TokenPurposeRefresh)
	if err != nil {
		return accounts.ErrInvalidToken
	}
	if err := s.Blacklist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt)); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	s.logger.Info("User ", claims.UserID, " logged out")
	return nil
}

func (s *authService) Me(ctx context.Context, userID string) (*accounts.User, error) {
	return s.Users.GetByID(ctx, userID)
}

func (s *authService) Reauthenticate(ctx context.Context, userID, password string) error {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !s.Hasher.Compare(user.PasswordHash, password) {
		return accounts.ErrInvalidCredentials
	}
	now := time.Now().UTC()
	user.LastReauthAt = &now
	return s.Users.Update(ctx, user)
}

func (s *authService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !s.Hasher.Compare(user.PasswordHash, oldPassword) {
		return accounts.ErrInvalidCredentials
	}
	if err := s.ensureNotReused(ctx, user.ID, newPassword); err != nil {
		return err
	}
	if err := s.setPassword(ctx, user, newPassword); err != nil {
		return err
	}
	s.logger.Info("Password changed for user ", user.ID)
	return nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	email = accounts.NormalizeEmail(email)
	user, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, accounts.ErrUserNotFound) {
		s.logRequest(ctx, nil, email, accounts.RequestActionPasswordReset, false, "unknown email", "")
		return nil
	}
	if err != nil {
		return err
	}

	token, err := s.issueToken(ctx, user, accounts.PurposeResetPassword, s.Settings.PasswordResetTTL, accounts.ClientInfo{})
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}
	link := s.link("/reset-password", url.Values{"uid": {user.ID}, "token": {token}})
	s.mail(ctx, user.Email, "Reset your password", "Choose a new password: "+link)
	s.logRequest(ctx, &user.ID, email, accounts.RequestActionPasswordReset, true, "reset link sent", "")
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, userID, token, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	if _, err := s.consumeToken(ctx, accounts.PurposeResetPassword, token, userID); err != nil {
		return err
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.ensureNotReused(ctx, user.ID, newPassword); err != nil {
		return err
	}
	user.ResetLockout()
	if err := s.setPassword(ctx, user, newPassword); err != nil {
		return err
	}
	s.logger.Info("Password reset for user ", user.ID)
	return nil
}

func (s *authService) RequestMagicLink(ctx context.Context, email string, client accounts.ClientInfo) error {
	policy, err := s.Policies.GetPolicy(ctx)
	if err != nil {
		return fmt.Errorf("failed to load policy: %w", err)
	}
	if !policy.AllowMagicLink {
		return accounts.ErrMethodNotAllowed
	}

	email = accounts.NormalizeEmail(email)
	allowed, err := s.RateLimiter.Allow(ctx, fmt.Sprintf("magic:%s:%s", email, client.IP), s.Settings.RateLimitAttempts, s.Settings.RateLimitWindow)
	if err != nil {
		return fmt.Errorf("failed to check rate limit: %w", err)
	}
	if !allowed {
		return accounts.ErrRateLimited
	}

	user, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, accounts.ErrUserNotFound) {
		s.logRequest(ctx, nil, email, accounts.RequestActionMagicLink, false, "unknown email", client.IP)
		return nil
	}
	if err != nil {
		return err
	}
	if !user.CanSignIn() {
		s.logRequest(ctx, &user.ID, email, accounts.RequestActionMagicLink, false, "account disabled", client.IP)
		return nil
	}

	token, err := s.issueToken(ctx, user, accounts.PurposeMagicLink, s.Settings.MagicLinkTTL, client)
	if err != nil {
		return fmt.Errorf("failed to issue magic link: %w", err)
	}
	link := s.link("/magic", url.Values{"token": {token}})
	s.mail(ctx, user.Email, "Your sign-in link", "Sign in with this link: "+link)
	s.logRequest(ctx, &user.ID, email, accounts.RequestActionMagicLink, true, "link sent", client.IP)
	return nil
}

func (s *authService) ConsumeMagicLink(ctx context.Context, token string, client accounts.ClientInfo) (*accounts.LoginResult, error) {
	policy, err := s.Policies.GetPolicy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}
	if !policy.AllowMagicLink {
		return nil, accounts.ErrMethodNotAllowed
	}

	t, err := s.consumeToken(ctx, accounts.PurposeMagicLink, token, "")
	if err != nil {
		return nil, err
	}
	user, err := s.Users.GetByID(ctx, t.UserID)
	if err != nil {
		return nil, err
	}
	if !user.CanSignIn() {
		return nil, accounts.ErrAccountDisabled
	}
	// the link was delivered to the mailbox
	user.IsEmailVerified = true
	return s.completeSignIn(ctx, user, client, accounts.LoginMethodMagic, false)
}

func (s *authService) RequestCode(ctx context.Context, email, channel, purpose string) error {
	policy, err := s.Policies.GetPolicy(ctx)
	if err != nil {
		return fmt.Errorf("failed to load policy: %w", err)
	}

	action := accounts.RequestActionEmailOTP
	switch channel {
	case accounts.ChannelEmail:
		if !policy.AllowEmailOTP {
			return accounts.ErrMethodNotAllowed
		}
	case accounts.ChannelSMS:
		if !policy.AllowSMSOTP {
			return accounts.ErrMethodNotAllowed
		}
		action = accounts.RequestActionSMSOTP
	default:
		return accounts.ErrUnsupportedCodeChannel
	}
	switch purpose {
	case accounts.CodePurposeLogin, accounts.CodePurposeReset, accounts.CodePurposeMFA:
	default:
		return fmt.Errorf("%w: unknown code purpose %q", validators.ErrValidation, purpose)
	}

	email = accounts.NormalizeEmail(email)
	allowed, err := s.RateLimiter.Allow(ctx, fmt.Sprintf("otp:%s:%s", channel, email), s.Settings.RateLimitAttempts, s.Settings.RateLimitWindow)
	if err != nil {
		return fmt.Errorf("failed to check rate limit: %w", err)
	}
	if !allowed {
		return accounts.ErrRateLimited
	}

	user, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, accounts.ErrUserNotFound) {
		s.logRequest(ctx, nil, email, action, false, "unknown email", "")
		return nil
	}
	if err != nil {
		return err
	}

	destination := user.Email
	if channel == accounts.ChannelSMS {
		if user.Phone == "" {
			return accounts.ErrPhoneRequired
		}
		destination = user.Phone
	}

	plain, err := s.Secrets.NewNumericCode(s.Settings.OneTimeCodeDigits)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	code := &accounts.OneTimeCode{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Channel:     channel,
		Destination: destination,
		Purpose:     purpose,
		CodeHash:    s.Secrets.Hash(plain),
		ExpiresAt:   now.Add(s.Settings.OneTimeCodeTTL),
		CreatedAt:   now,
	}
	if err := s.Credentials.CreateCode(ctx, code); err != nil {
		return fmt.Errorf("failed to store code: %w", err)
	}

	if channel == accounts.ChannelEmail {
		s.mail(ctx, destination, "Your verification code", fmt.Sprintf("Your code is %s. It expires in %s.", plain, s.Settings.OneTimeCodeTTL))
	} else {
		// TODO: deliver through an SMS provider once one is configured
		s.logger.Warn("No SMS provider configured, code for user ", user.ID, " was not delivered")
	}
	s.logRequest(ctx, &user.ID, email, action, true, "code sent", "")
	return nil
}

func (s *authService) VerifyCode(ctx context.Context, input accounts.VerifyCodeInput) (*accounts.LoginResult, error) {
	email := accounts.NormalizeEmail(input.Email)
	action := accounts.RequestActionEmailOTP
	if input.Channel == accounts.ChannelSMS {
		action = accounts.RequestActionSMSOTP
	}

	user, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, accounts.ErrUserNotFound) {
		s.logRequest(ctx, nil, email, action, false, "unknown email", input.Client.IP)
		return nil, accounts.ErrInvalidCode
	}
	if err != nil {
		return nil, err
	}

	if err := s.checkCode(ctx, user, input.Channel, input.Purpose, input.Code); err != nil {
		s.logRequest(ctx, &user.ID, email, action, false, err.Error(), input.Client.IP)
		if input.Purpose == accounts.CodePurposeLogin {
			s.recordActivity(ctx, user, input.Client, false, accounts.LoginMethodOTP, false)
		}
		return nil, err
	}
	s.logRequest(ctx, &user.ID, email, action, true, "code verified", input.Client.IP)

	if input.Purpose != accounts.CodePurposeLogin {
		return &accounts.LoginResult{User: user}, nil
	}
	if !user.CanSignIn() {
		return nil, accounts.ErrAccountDisabled
	}
	if input.Channel == accounts.ChannelEmail {
		user.IsEmailVerified = true
	} else {
		user.IsPhoneVerified = true
	}
	return s.completeSignIn(ctx, user, input.Client, accounts.LoginMethodOTP, false)
}
