//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/stretchr/testify/assert"
)

func TestUserModel_FromDomainToDomain(t *testing.T) {
	now := time.Now().UTC()
	lockout := now.Add(time.Minute)
	user := &accounts.User{
		ID:              "11111111-1111-4111-8111-111111111111",
		Email:           "ada@example.com",
		PasswordHash:    "hash",
		FullName:        "Ada",
		IsStaff:         true,
		IsActive:        true,
		IsEmailVerified: true,
		FailedAttempts:  3,
		LockoutUntil:    &lockout,
		CreatedAt:       now,
	}

	model := &UserModel{}
	model.FromDomain(user)

	assert.Equal(t, user.ID, model.ID)
	assert.Equal(t, user.Email, model.Email)
	assert.Equal(t, 3, model.FailedAttempts)
	assert.Equal(t, user, model.ToDomain())
}

func TestPolicyModel_SingleRow(t *testing.T) {
	policy := accounts.DefaultPolicy()

	model := &PolicyModel{}
	model.FromDomain(policy)

	assert.Equal(t, uint(1), model.ID)
	assert.Equal(t, policy, model.ToDomain())
}

func TestLockoutPolicyModel_SingleRow(t *testing.T) {
	policy := accounts.DefaultLockoutPolicy()

	model := &LockoutPolicyModel{}
	model.FromDomain(policy)

	assert.Equal(t, uint(1), model.ID)
	assert.Equal(t, policy, model.ToDomain())
}

func TestAuthPolicyModel_FromDomainToDomain(t *testing.T) {
	userID := "22222222-2222-4222-8222-222222222222"
	policy := &accounts.AuthPolicy{
		ID:                "33333333-3333-4333-8333-333333333333",
		Scope:             accounts.PolicyScopeUser,
		UserID:            &userID,
		IsMandatory:       true,
		IsActive:          true,
		ApplicableMethods: map[string][]string{"login": {"TOTP", "EMAIL"}},
	}

	model := &AuthPolicyModel{}
	model.FromDomain(policy)

	assert.Equal(t, policy, model.ToDomain())
}

func TestOneTimeCodeModel_FromDomainToDomain(t *testing.T) {
	code := &accounts.OneTimeCode{
		ID:          "44444444-4444-4444-8444-444444444444",
		UserID:      "11111111-1111-4111-8111-111111111111",
		Channel:     accounts.ChannelEmail,
		Destination: "ada@example.com",
		Purpose:     accounts.CodePurposeLogin,
		CodeHash:    "abc",
		ExpiresAt:   time.Now().Add(10 * time.Minute),
		Attempts:    2,
	}

	model := &OneTimeCodeModel{}
	model.FromDomain(code)

	assert.Equal(t, code, model.ToDomain())
}
