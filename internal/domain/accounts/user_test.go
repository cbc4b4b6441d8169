//go:build unit
// +build unit

package accounts

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser() *User {
	return &User{
		ID:           uuid.NewString(),
		Email:        "player@example.com",
		PasswordHash: "$2a$10$hash",
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
}

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *User)
		wantErr bool
	}{
		{"valid", func(u *User) {}, false},
		{"bad email", func(u *User) { u.Email = "nope" }, true},
		{"missing hash", func(u *User) { u.PasswordHash = "" }, true},
		{"bad phone", func(u *User) { u.Phone = "0800" }, true},
		{"e164 phone", func(u *User) { u.Phone = "+4915112345678" }, false},
		{"negative attempts", func(u *User) { u.FailedAttempts = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newTestUser()
			tt.mutate(u)
			err := u.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUser_RegisterFailedAttempt(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	policy := DefaultLockoutPolicy()
	u := newTestUser()

	u.RegisterFailedAttempt(policy, now)
	u.RegisterFailedAttempt(policy, now)
	assert.False(t, u.IsLockedOut(now))

	u.RegisterFailedAttempt(policy, now)
	require.True(t, u.IsLockedOut(now))
	assert.Equal(t, now.Add(60*time.Second), *u.LockoutUntil)
	assert.False(t, u.IsLockedOut(now.Add(61*time.Second)))

	u.RegisterFailedAttempt(policy, now)
	u.RegisterFailedAttempt(policy, now)
	assert.Equal(t, now.Add(300*time.Second), *u.LockoutUntil)

	u.MarkSignedIn(now)
	assert.Zero(t, u.FailedAttempts)
	assert.Nil(t, u.LockoutUntil)
	assert.False(t, u.NeedsReauth(now.Add(5*time.Minute)))
	assert.True(t, u.NeedsReauth(now.Add(11*time.Minute)))
}

func TestUser_RegisterFailedAttempt_InactivePolicy(t *testing.T) {
	policy := DefaultLockoutPolicy()
	policy.Active = false
	u := newTestUser()

	for i := 0; i < 10; i++ {
		u.RegisterFailedAttempt(policy, time.Now())
	}
	assert.Equal(t, 10, u.FailedAttempts)
	assert.Nil(t, u.LockoutUntil)
}

func TestUser_ApplyAction(t *testing.T) {
	now := time.Now()

	tests := []struct {
		action string
		check  func(t *testing.T, u *User)
	}{
		{AccountActionLock, func(t *testing.T, u *User) { assert.True(t, u.IsLocked); assert.False(t, u.CanSignIn()) }},
		{AccountActionDisable, func(t *testing.T, u *User) { assert.True(t, u.IsDisabled); assert.False(t, u.CanSignIn()) }},
		{AccountActionSuspend, func(t *testing.T, u *User) { assert.NotNil(t, u.SuspendedAt); assert.False(t, u.CanSignIn()) }},
		{AccountActionSoftDelete, func(t *testing.T, u *User) { assert.False(t, u.IsActive); assert.NotNil(t, u.DeletedAt) }},
		{AccountActionRequestDelete, func(t *testing.T, u *User) { assert.True(t, u.PendingDelete); assert.True(t, u.CanSignIn()) }},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			u := newTestUser()
			require.NoError(t, u.ApplyAction(tt.action, now))
			tt.check(t, u)
		})
	}

	t.Run("reversible", func(t *testing.T) {
		u := newTestUser()
		pairs := [][2]string{
			{AccountActionLock, AccountActionUnlock},
			{AccountActionDisable, AccountActionEnable},
			{AccountActionSuspend, AccountActionUnsuspend},
			{AccountActionSoftDelete, AccountActionRestore},
			{AccountActionRequestDelete, AccountActionCancelDelete},
		}
		for _, p := range pairs {
			require.NoError(t, u.ApplyAction(p[0], now))
			require.NoError(t, u.ApplyAction(p[1], now))
		}
		assert.True(t, u.CanSignIn())
		assert.False(t, u.PendingDelete)
	})

	t.Run("unknown", func(t *testing.T) {
		assert.ErrorIs(t, newTestUser().ApplyAction("ban", now), ErrUnknownAction)
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a.b@example.com", NormalizeEmail("  A.B@Example.COM "))
}
