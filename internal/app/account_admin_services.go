package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"github.com/google/uuid"
)

// accountAdminService implements the AccountAdminService interface
type accountAdminService struct {
	accountCore
}

// NewAccountAdminService creates a new instance of AccountAdminService
func NewAccountAdminService(deps AccountDeps, logger logger.Logger) (accounts.AccountAdminService, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	return &accountAdminService{accountCore{AccountDeps: deps, logger: logger}}, nil
}

var actionMessages = map[string]string{
	accounts.AccountActionLock:          "Your account has been locked by an administrator.",
	accounts.AccountActionUnlock:        "Your account has been unlocked.",
	accounts.AccountActionDisable:       "Your account has been disabled.",
	accounts.AccountActionEnable:        "Your account has been enabled.",
	accounts.AccountActionSuspend:       "Your account has been suspended.",
	accounts.AccountActionUnsuspend:     "Your account suspension has been lifted.",
	accounts.AccountActionSoftDelete:    "Your account has been deleted.",
	accounts.AccountActionRestore:       "Your account has been restored.",
	accounts.AccountActionRequestDelete: "Your account is scheduled for deletion.",
	accounts.AccountActionCancelDelete:  "Your account deletion request was cancelled.",
}

func (s *accountAdminService) ApplyAccountAction(ctx context.Context, actorID, userID, action string) (*accounts.User, error) {
	actor, err := s.Users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff {
		return nil, accounts.ErrForbidden
	}
	if actorID == userID {
		return nil, accounts.ErrSelfAction
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if action == accounts.AccountActionHardDelete {
		if err := s.Users.DeleteByID(ctx, userID); err != nil {
			return nil, err
		}
		s.logger.Info("Staff ", actorID, " hard-deleted user ", userID)
		return user, nil
	}

	if err := user.ApplyAction(action, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.Users.Update(ctx, user); err != nil {
		return nil, err
	}

	if _, err := s.Notifier.Notify(ctx, user.ID, notifications.KindSystem, "Account update", actionMessages[action], ""); err != nil {
		s.logger.Warn("Failed to notify user ", user.ID, ": ", err)
	}
	s.logger.Info("Staff ", actorID, " applied ", action, " to user ", userID)
	return user, nil
}

func (s *accountAdminService) CreateStaff(ctx context.Context, email, password, fullName string) (*accounts.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &accounts.User{
		ID:              uuid.NewString(),
		Email:           accounts.NormalizeEmail(email),
		PasswordHash:    hash,
		FullName:        fullName,
		IsStaff:         true,
		IsActive:        true,
		IsEmailVerified: true,
		CreatedAt:       time.Now().UTC(),
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

	s.logger.Info("Created staff user ", user.ID)
	return user, nil
}

func (s *accountAdminService) GetPolicy(ctx context.Context) (*accounts.Policy, error) {
	return s.Policies.GetPolicy(ctx)
}

func (s *accountAdminService) UpdatePolicy(ctx context.Context, policy *accounts.Policy) (*accounts.Policy, error) {
	policy.UpdatedAt = time.Now().UTC()
	if err := s.Policies.SavePolicy(ctx, policy); err != nil {
		return nil, err
	}
	return policy, nil
}

func (s *accountAdminService) GetLockoutPolicy(ctx context.Context) (*accounts.LockoutPolicy, error) {
	return s.Policies.GetLockoutPolicy(ctx)
}

func (s *accountAdminService) UpdateLockoutPolicy(ctx context.Context, policy *accounts.LockoutPolicy) (*accounts.LockoutPolicy, error) {
	policy.UpdatedAt = time.Now().UTC()
	if err := s.Policies.SaveLockoutPolicy(ctx, policy); err != nil {
		return nil, err
	}
	return policy, nil
}

func (s *accountAdminService) UpsertAuthPolicy(ctx context.Context, policy *accounts.AuthPolicy) (*accounts.AuthPolicy, error) {
	if policy.Scope == accounts.PolicyScopeGlobal {
		policy.UserID = nil
	}
	if policy.Scope == accounts.PolicyScopeUser && policy.UserID != nil {
		if _, err := s.Users.GetByID(ctx, *policy.UserID); err != nil {
			return nil, err
		}
	}

	existing, err := s.Policies.GetAuthPolicy(ctx, policy.Scope, policy.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		policy.ID = existing.ID
	} else if policy.ID == "" {
		policy.ID = uuid.NewString()
	}
	policy.UpdatedAt = time.Now().UTC()

	if err := s.Policies.SaveAuthPolicy(ctx, policy); err != nil {
		return nil, err
	}
	return policy, nil
}

func (s *accountAdminService) ListLoginActivity(ctx context.Context, userID string, limit int) ([]*accounts.LoginActivity, error) {
	return s.Activity.ListLoginActivity(ctx, userID, limit)
}

func (s *accountAdminService) ListRequestLogs(ctx context.Context, userID string, limit int) ([]*accounts.AuthRequestLog, error) {
	return s.Activity.ListRequestLogs(ctx, userID, limit)
}
