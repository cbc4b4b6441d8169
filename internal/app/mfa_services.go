package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"github.com/google/uuid"
)

// mfaService implements the MFAService interface
type mfaService struct {
	accountCore
}

// NewMFAService creates a new instance of MFAService
func NewMFAService(deps AccountDeps, logger logger.Logger) (accounts.MFAService, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	return &mfaService{accountCore{AccountDeps: deps, logger: logger}}, nil
}

func (s *mfaService) BeginTOTPSetup(ctx context.Context, userID string) (*accounts.TOTPSetup, error) {
	policy, err := s.Policies.GetPolicy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}
	if !policy.AllowTOTP {
		return nil, accounts.ErrMethodNotAllowed
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	method, err := s.MFA.GetMethod(ctx, userID, accounts.MFATypeTOTP)
	if err != nil {
		return nil, fmt.Errorf("failed to load mfa method: %w", err)
	}
	if method == nil {
		method = &accounts.MFAMethod{ID: uuid.NewString(), UserID: userID, Type: accounts.MFATypeTOTP, CreatedAt: now}
	} else if method.Enabled && user.NeedsReauth(now) {
		// replacing a working secret turns TOTP off until it is confirmed again
		return nil, accounts.ErrReauthRequired
	}

	setup, err := s.TOTP.Generate(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate totp secret: %w", err)
	}
	method.Secret = setup.Secret
	method.Enabled = false
	if err := s.MFA.SaveMethod(ctx, method); err != nil {
		return nil, fmt.Errorf("failed to store totp secret: %w", err)
	}

	s.logger.Info("Started TOTP setup for user ", userID)
	return setup, nil
}

func (s *mfaService) ConfirmTOTP(ctx context.Context, userID, code string) ([]string, error) {
	method, err := s.MFA.GetMethod(ctx, userID, accounts.MFATypeTOTP)
	if err != nil {
		return nil, fmt.Errorf("failed to load mfa method: %w", err)
	}
	if method == nil || method.Secret == "" {
		return nil, accounts.ErrTOTPSetupNotStarted
	}

	now := time.Now().UTC()
	if !s.TOTP.Validate(strings.TrimSpace(code), method.Secret, now) {
		return nil, accounts.ErrInvalidCode
	}
	method.Enabled = true
	method.LastUsedAt = &now
	if err := s.MFA.SaveMethod(ctx, method); err != nil {
		return nil, fmt.Errorf("failed to enable totp: %w", err)
	}

	codes, err := s.regenerateBackupCodes(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, userID, "Two-factor authentication enabled", "An authenticator app was added to your account.")
	s.logger.Info("Enabled TOTP for user ", userID)
	return codes, nil
}

func (s *mfaService) DisableMFA(ctx context.Context, userID, mfaType string) error {
	switch mfaType {
	case accounts.MFATypeTOTP, accounts.MFATypeEmail, accounts.MFATypeSMS:
	default:
		return accounts.ErrUnsupportedMFAType
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.NeedsReauth(time.Now().UTC()) {
		return accounts.ErrReauthRequired
	}

	method, err := s.MFA.GetMethod(ctx, userID, mfaType)
	if err != nil {
		return fmt.Errorf("failed to load mfa method: %w", err)
	}
	if method == nil {
		return accounts.ErrMFANotEnabled
	}
	if err := s.MFA.DeleteMethod(ctx, userID, mfaType); err != nil {
		return fmt.Errorf("failed to delete mfa method: %w", err)
	}

	remaining, err := s.enabledMethods(ctx, userID)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		if err := s.MFA.ReplaceBackupCodes(ctx, userID, nil); err != nil {
			return fmt.Errorf("failed to clear backup codes: %w", err)
		}
	}

	s.notify(ctx, userID, "Two-factor method removed", fmt.Sprintf("%s was removed from your account.", mfaType))
	s.logger.Info("Disabled ", mfaType, " for user ", userID)
	return nil
}

func (s *mfaService) RegenerateBackupCodes(ctx context.Context, userID string) ([]string, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.NeedsReauth(time.Now().UTC()) {
		return nil, accounts.ErrReauthRequired
	}
	enabled, err := s.enabledMethods(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(enabled) == 0 {
		return nil, accounts.ErrMFANotEnabled
	}
	return s.regenerateBackupCodes(ctx, userID)
}

func (s *mfaService) VerifyMFA(ctx context.Context, mfaToken, mfaType, code string, client accounts.ClientInfo) (*accounts.LoginResult, error) {
	claims, err := s.Tokens.Parse(mfaToken, accounts.TokenPurposeMFA)
	if err != nil {
		return nil, accounts.ErrInvalidToken
	}
	revoked, err := s.Blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	if revoked {
		s.logger.Warn("Reuse of spent mfa token for user ", claims.UserID)
		return nil, accounts.ErrInvalidToken
	}
	user, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, accounts.ErrInvalidToken
	}
	if !user.CanSignIn() {
		return nil, accounts.ErrAccountDisabled
	}
	policy, err := s.Policies.GetPolicy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}
	if !policy.AllowsMFAType(mfaType) {
		return nil, accounts.ErrMethodNotAllowed
	}

	// Only the methods offered in the login challenge are accepted
	challenged, err := s.mfaMethodsFor(ctx, user, policy)
	if err != nil {
		return nil, err
	}
	if len(challenged) == 0 {
		return nil, accounts.ErrMFANotEnabled
	}
	if mfaType != accounts.MFATypeBackup && !containsString(challenged, mfaType) {
		s.logRequest(ctx, &user.ID, user.Email, accounts.RequestActionUnknown, false, "method not offered: "+mfaType, client.IP)
		return nil, accounts.ErrMethodNotAllowed
	}

	action, err := s.verifySecondFactor(ctx, user, mfaType, code)
	if err != nil {
		s.logRequest(ctx, &user.ID, user.Email, action, false, err.Error(), client.IP)
		s.recordActivity(ctx, user, client, false, accounts.LoginMethodMFA, true)
		return nil, err
	}

	if err := s.Blacklist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt)); err != nil {
		return nil, fmt.Errorf("failed to revoke mfa token: %w", err)
	}
	s.logRequest(ctx, &user.ID, user.Email, action, true, "second factor accepted", client.IP)
	return s.completeSignIn(ctx, user, client, accounts.LoginMethodMFA, true)
}

func (s *mfaService) verifySecondFactor(ctx context.Context, user *accounts.User, mfaType, code string) (string, error) {
	now := time.Now().UTC()
	switch mfaType {
	case accounts.MFATypeTOTP:
		method, err := s.MFA.GetMethod(ctx, user.ID, accounts.MFATypeTOTP)
		if err != nil {
			return accounts.RequestActionTOTP, fmt.Errorf("failed to load mfa method: %w", err)
		}
		if method == nil || !method.Enabled {
			return accounts.RequestActionTOTP, accounts.ErrMFANotEnabled
		}
		if !s.TOTP.Validate(strings.TrimSpace(code), method.Secret, now) {
			return accounts.RequestActionTOTP, accounts.ErrInvalidCode
		}
		method.LastUsedAt = &now
		if err := s.MFA.SaveMethod(ctx, method); err != nil {
			return accounts.RequestActionTOTP, fmt.Errorf("failed to update mfa method: %w", err)
		}
		return accounts.RequestActionTOTP, nil

	case accounts.MFATypeBackup:
		normalized := strings.ToUpper(strings.TrimSpace(code))
		ok, err := s.MFA.UseBackupCode(ctx, user.ID, s.Secrets.Hash(normalized), now)
		if err != nil {
			return accounts.RequestActionBackupCode, fmt.Errorf("failed to use backup code: %w", err)
		}
		if !ok {
			return accounts.RequestActionBackupCode, accounts.ErrInvalidCode
		}
		return accounts.RequestActionBackupCode, nil

	case accounts.MFATypeEmail:
		if err := s.requireEnabled(ctx, user.ID, accounts.MFATypeEmail); err != nil {
			return accounts.RequestActionEmailOTP, err
		}
		return accounts.RequestActionEmailOTP, s.checkCode(ctx, user, accounts.ChannelEmail, accounts.CodePurposeMFA, code)

	case accounts.MFATypeSMS:
		if err := s.requireEnabled(ctx, user.ID, accounts.MFATypeSMS); err != nil {
			return accounts.RequestActionSMSOTP, err
		}
		return accounts.RequestActionSMSOTP, s.checkCode(ctx, user, accounts.ChannelSMS, accounts.CodePurposeMFA, code)

	default:
		return accounts.RequestActionUnknown, accounts.ErrUnsupportedMFAType
	}
}

func (s *mfaService) requireEnabled(ctx context.Context, userID, mfaType string) error {
	method, err := s.MFA.GetMethod(ctx, userID, mfaType)
	if err != nil {
		return fmt.Errorf("failed to load mfa method: %w", err)
	}
	if method == nil || !method.Enabled {
		return accounts.ErrMFANotEnabled
	}
	return nil
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func (s *mfaService) ListMethods(ctx context.Context, userID string) ([]*accounts.MFAMethod, error) {
	return s.MFA.ListMethods(ctx, userID)
}

func (s *mfaService) enabledMethods(ctx context.Context, userID string) ([]*accounts.MFAMethod, error) {
	methods, err := s.MFA.ListMethods(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mfa methods: %w", err)
	}
	var enabled []*accounts.MFAMethod
	for _, m := range methods {
		if m.Enabled {
			enabled = append(enabled, m)
		}
	}
	return enabled, nil
}

func (s *mfaService) notify(ctx context.Context, userID, title, body string) {
	if _, err := s.Notifier.Notify(ctx, userID, notifications.KindSystem, title, body, "/settings/security"); err != nil {
		s.logger.Warn("Failed to notify user ", userID, ": ", err)
	}
}
