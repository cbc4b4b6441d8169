package app

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"
	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"

	"github.com/google/uuid"
)

// AccountDeps bundles the stores and providers shared by the account services
type AccountDeps struct {
	Users       accounts.UserRepository
	Policies    accounts.PolicyRepository
	MFA         accounts.MFARepository
	Credentials accounts.CredentialRepository
	Activity    accounts.ActivityRepository
	Hasher      accounts.PasswordHasher
	Tokens      accounts.TokenIssuer
	TOTP        accounts.TOTPProvider
	Secrets     accounts.SecretGenerator
	RateLimiter accounts.RateLimiter
	Blacklist   accounts.TokenBlacklist
	Mailer      notifications.Mailer
	Notifier    notifications.Notifier
	Settings    *config.AuthSettings
}

func (d *AccountDeps) validate() error {
	required := map[string]interface{}{
		"Users":       d.Users,
		"Policies":    d.Policies,
		"MFA":         d.MFA,
		"Credentials": d.Credentials,
		"Activity":    d.Activity,
		"Hasher":      d.Hasher,
		"Tokens":      d.Tokens,
		"TOTP":        d.TOTP,
		"Secrets":     d.Secrets,
		"RateLimiter": d.RateLimiter,
		"Blacklist":   d.Blacklist,
		"Mailer":      d.Mailer,
		"Notifier":    d.Notifier,
	}
	for name, dep := range required {
		if dep == nil {
			return fmt.Errorf("account dependency %s is required", name)
		}
	}
	if d.Settings == nil {
		return fmt.Errorf("auth settings are required")
	}
	return nil
}

// accountCore holds the sign-in steps shared by password, link, code and MFA flows
type accountCore struct {
	AccountDeps
	logger logger.Logger
}

func validatePassword(password string) error {
	if len(password) < accounts.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", validators.ErrValidation, accounts.MinPasswordLength)
	}
	return nil
}

func (s *accountCore) logRequest(ctx context.Context, userID *string, identifier, action string, success bool, message, ip string) {
	entry := &accounts.AuthRequestLog{
		ID:         uuid.NewString(),
		UserID:     userID,
		Identifier: identifier,
		Action:     action,
		Success:    success,
		Message:    message,
		IP:         ip,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Activity.CreateRequestLog(ctx, entry); err != nil {
		s.logger.Error("Failed to write auth request log: ", err)
	}
}

func (s *accountCore) recordActivity(ctx context.Context, user *accounts.User, client accounts.ClientInfo, success bool, method string, mfaUsed bool) {
	activity := &accounts.LoginActivity{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		IP:         client.IP,
		UserAgent:  client.UserAgent,
		Successful: success,
		Method:     method,
		MFAUsed:    mfaUsed,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Activity.CreateLoginActivity(ctx, activity); err != nil {
		s.logger.Error("Failed to write login activity: ", err)
	}
}

// completeSignIn resets lockout state, issues tokens and flags unknown devices
func (s *accountCore) completeSignIn(ctx context.Context, user *accounts.User, client accounts.ClientInfo, method string, mfaUsed bool) (*accounts.LoginResult, error) {
	known, err := s.Activity.HasSuccessfulLogin(ctx, user.ID, client.IP, client.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to check login history: %w", err)
	}

	user.MarkSignedIn(time.Now().UTC())
	if err := s.Users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	pair, err := s.Tokens.IssuePair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	s.recordActivity(ctx, user, client, true, method, mfaUsed)

	if !known {
		body := fmt.Sprintf("New sign-in from %s (%s).", client.IP, client.UserAgent)
		if _, err := s.Notifier.Notify(ctx, user.ID, notifications.KindSystem, "New sign-in", body, "/settings/security"); err != nil {
			s.logger.Warn("Failed to notify new sign-in: ", err)
		}
	}

	s.logger.Info("User ", user.ID, " signed in with ", method)
	return &accounts.LoginResult{User: user, Tokens: pair}, nil
}

// mfaMethodsFor lists the enabled methods the user is challenged with, narrowed by
// the user's or the global auth policy
func (s *accountCore) mfaMethodsFor(ctx context.Context, user *accounts.User, policy *accounts.Policy) ([]string, error) {
	methods, err := s.MFA.ListMethods(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mfa methods: %w", err)
	}
	var enabled []string
	for _, m := range methods {
		if m.Enabled && policy.AllowsMFAType(m.Type) {
			enabled = append(enabled, m.Type)
		}
	}
	if len(enabled) == 0 {
		return nil, nil
	}

	authPolicy, err := s.Policies.GetAuthPolicy(ctx, accounts.PolicyScopeUser, &user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load auth policy: %w", err)
	}
	if authPolicy == nil {
		if authPolicy, err = s.Policies.GetAuthPolicy(ctx, accounts.PolicyScopeGlobal, nil); err != nil {
			return nil, fmt.Errorf("failed to load auth policy: %w", err)
		}
	}

	narrowed := accounts.NarrowMethods(enabled, authPolicy.MethodsFor(accounts.PolicyActionLogin))
	if len(narrowed) == 0 {
		narrowed = enabled
	}
	return narrowed, nil
}

// challengeOrComplete answers with an MFA challenge when the user has enrolled
// methods, otherwise signs the user in
func (s *accountCore) challengeOrComplete(ctx context.Context, user *accounts.User, client accounts.ClientInfo, policy *accounts.Policy, method string) (*accounts.LoginResult, error) {
	methods, err := s.mfaMethodsFor(ctx, user, policy)
	if err != nil {
		return nil, err
	}
	if len(methods) > 0 {
		token, err := s.Tokens.IssueMFAToken(user)
		if err != nil {
			return nil, fmt.Errorf("failed to issue mfa token: %w", err)
		}
		return &accounts.LoginResult{
			User:        user,
			MFARequired: true,
			Methods:     append(methods, accounts.MFATypeBackup),
			MFAToken:    token,
		}, nil
	}
	if user.IsStaff && policy.RequireMFAForStaff {
		return nil, accounts.ErrMFAEnrollmentRequired
	}
	return s.completeSignIn(ctx, user, client, method, false)
}

func (s *accountCore) ensureNotReused(ctx context.Context, userID, password string) error {
	hashes, err := s.Users.RecentPasswordHashes(ctx, userID, accounts.PasswordHistoryDepth)
	if err != nil {
		return fmt.Errorf("failed to load password history: %w", err)
	}
	for _, h := range hashes {
		if s.Hasher.Compare(h, password) {
			return accounts.ErrPasswordReused
		}
	}
	return nil
}

func (s *accountCore) setPassword(ctx context.Context, user *accounts.User, password string) error {
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	user.MustChangePassword = false

	entry := &accounts.PasswordHistory{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Users.AddPasswordHistory(ctx, entry); err != nil {
		return fmt.Errorf("failed to store password history: %w", err)
	}
	return s.Users.Update(ctx, user)
}

// issueToken stores the hash of a fresh link token and returns the raw token
func (s *accountCore) issueToken(ctx context.Context, user *accounts.User, purpose string, ttl time.Duration, client accounts.ClientInfo) (string, error) {
	raw, err := s.Secrets.NewToken()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	token := &accounts.OneTimeToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Purpose:   purpose,
		TokenHash: s.Secrets.Hash(raw),
		ExpiresAt: now.Add(ttl),
		IP:        client.IP,
		UserAgent: client.UserAgent,
		CreatedAt: now,
	}
	if err := s.Credentials.CreateToken(ctx, token); err != nil {
		return "", err
	}
	return raw, nil
}

// consumeToken looks up a valid link token and marks it used. A non-empty userID
// must own the token, otherwise the token is left untouched
func (s *accountCore) consumeToken(ctx context.Context, purpose, raw, userID string) (*accounts.OneTimeToken, error) {
	token, err := s.Credentials.GetTokenByHash(ctx, purpose, s.Secrets.Hash(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}
	if token == nil || !token.Valid(time.Now().UTC()) {
		return nil, accounts.ErrInvalidToken
	}
	if userID != "" && token.UserID != userID {
		return nil, accounts.ErrInvalidToken
	}
	won, err := s.Credentials.MarkTokenUsed(ctx, token.ID)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, accounts.ErrInvalidToken
	}
	token.Used = true
	return token, nil
}

// checkCode verifies the latest code for (user, channel, purpose). Wrong guesses
// count against the code until it is burned
func (s *accountCore) checkCode(ctx context.Context, user *accounts.User, channel, purpose, guess string) error {
	code, err := s.Credentials.GetLatestCode(ctx, user.ID, channel, purpose)
	if err != nil {
		return fmt.Errorf("failed to load code: %w", err)
	}
	if code == nil {
		return accounts.ErrInvalidCode
	}
	if code.Attempts >= accounts.MaxCodeAttempts {
		return accounts.ErrCodeExhausted
	}
	if !code.Usable(time.Now().UTC()) {
		return accounts.ErrInvalidCode
	}

	hash := s.Secrets.Hash(strings.TrimSpace(guess))
	if subtle.ConstantTimeCompare([]byte(hash), []byte(code.CodeHash)) != 1 {
		code.Attempts++
		if err := s.Credentials.UpdateCode(ctx, code); err != nil {
			return fmt.Errorf("failed to update code: %w", err)
		}
		if code.Attempts >= accounts.MaxCodeAttempts {
			return accounts.ErrCodeExhausted
		}
		return accounts.ErrInvalidCode
	}

	won, err := s.Credentials.MarkCodeVerified(ctx, code.ID)
	if err != nil {
		return err
	}
	if !won {
		return accounts.ErrInvalidCode
	}
	return nil
}

// regenerateBackupCodes replaces the user's backup codes and returns the plain codes
func (s *accountCore) regenerateBackupCodes(ctx context.Context, userID string) ([]string, error) {
	now := time.Now().UTC()
	plain := make([]string, 0, s.Settings.BackupCodeCount)
	stored := make([]*accounts.BackupCode, 0, s.Settings.BackupCodeCount)
	for i := 0; i < s.Settings.BackupCodeCount; i++ {
		code, err := s.Secrets.NewBackupCode()
		if err != nil {
			return nil, err
		}
		plain = append(plain, code)
		stored = append(stored, &accounts.BackupCode{
			ID:        uuid.NewString(),
			UserID:    userID,
			CodeHash:  s.Secrets.Hash(code),
			CreatedAt: now,
		})
	}
	if err := s.MFA.ReplaceBackupCodes(ctx, userID, stored); err != nil {
		return nil, fmt.Errorf("failed to store backup codes: %w", err)
	}
	return plain, nil
}

func (s *accountCore) link(path string, query url.Values) string {
	base := strings.TrimRight(s.Settings.FrontendURL, "/")
	return fmt.Sprintf("%s%s?%s", base, path, query.Encode())
}

func (s *accountCore) mail(ctx context.Context, to, subject, text string) {
	msg := &notifications.Message{To: to, Subject: subject, Text: text}
	if err := s.Mailer.Send(ctx, msg); err != nil {
		s.logger.Error("Failed to send '", subject, "' mail: ", err)
	}
}
