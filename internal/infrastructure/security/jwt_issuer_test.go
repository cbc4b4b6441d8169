//go:build unit
// +build unit

package security

import (
	"testing"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthSettings() *config.AuthSettings {
	return &config.AuthSettings{
		JWTSecret:       "0123456789abcdef0123",
		Issuer:          "scrimhub",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
		MFATokenTTL:     5 * time.Minute,
	}
}

func testUser() *accounts.User {
	return &accounts.User{ID: uuid.NewString(), Email: "ana@example.com", IsStaff: true}
}

func TestJWTIssuer_IssueAndParse(t *testing.T) {
	issuer, err := NewJWTIssuer(testAuthSettings())
	require.NoError(t, err)

	user := testUser()
	pair, err := issuer.IssuePair(user)
	require.NoError(t, err)

	access, err := issuer.Parse(pair.Access, accounts.TokenPurposeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, access.UserID)
	assert.Equal(t, user.Email, access.Email)
	assert.True(t, access.IsStaff)
	assert.NotEmpty(t, access.ID)

	refresh, err := issuer.Parse(pair.Refresh, accounts.TokenPurposeRefresh)
	require.NoError(t, err)
	assert.NotEqual(t, access.ID, refresh.ID)
}

func TestJWTIssuer_WrongPurpose(t *testing.T) {
	issuer, err := NewJWTIssuer(testAuthSettings())
	require.NoError(t, err)

	pair, err := issuer.IssuePair(testUser())
	require.NoError(t, err)

	_, err = issuer.Parse(pair.Access, accounts.TokenPurposeRefresh)
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)

	mfa, err := issuer.IssueMFAToken(testUser())
	require.NoError(t, err)
	_, err = issuer.Parse(mfa, accounts.TokenPurposeAccess)
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)
}

func TestJWTIssuer_Expired(t *testing.T) {
	i, err := NewJWTIssuer(testAuthSettings())
	require.NoError(t, err)
	issuer := i.(*jwtIssuer)

	issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }
	pair, err := issuer.IssuePair(testUser())
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Parse(pair.Access, accounts.TokenPurposeAccess)
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)
}

func TestJWTIssuer_OtherSecret(t *testing.T) {
	issuer, err := NewJWTIssuer(testAuthSettings())
	require.NoError(t, err)

	other := testAuthSettings()
	other.JWTSecret = "another-secret-of-length"
	forger, err := NewJWTIssuer(other)
	require.NoError(t, err)

	pair, err := forger.IssuePair(testUser())
	require.NoError(t, err)

	_, err = issuer.Parse(pair.Access, accounts.TokenPurposeAccess)
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)
}

func TestNewJWTIssuer_MissingSecret(t *testing.T) {
	_, err := NewJWTIssuer(&config.AuthSettings{})
	assert.Error(t, err)
}
