//go:build unit
// +build unit

package security

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, hasher.Compare(hash, "correct horse"))
	assert.False(t, hasher.Compare(hash, "wrong horse"))

	_, err = NewBcryptHasher(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}

func TestTOTPProvider(t *testing.T) {
	provider, err := NewTOTPProvider("ScrimHub")
	require.NoError(t, err)

	setup, err := provider.Generate("ana@example.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(setup.OTPAuthURI, "otpauth://totp/ScrimHub:ana@example.com?"))
	assert.Contains(t, setup.OTPAuthURI, "secret="+setup.Secret)

	now := time.Now()
	code, err := totp.GenerateCode(setup.Secret, now)
	require.NoError(t, err)
	assert.True(t, provider.Validate(code, setup.Secret, now))

	// one step of skew either side
	assert.True(t, provider.Validate(code, setup.Secret, now.Add(30*time.Second)))
	assert.False(t, provider.Validate(code, setup.Secret, now.Add(5*time.Minute)))
	assert.False(t, provider.Validate("000000x", setup.Secret, now))
}

func TestSecretGenerator(t *testing.T) {
	gen := NewSecretGenerator()

	a, err := gen.NewToken()
	require.NoError(t, err)
	b, err := gen.NewToken()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 43)

	for _, digits := range []int{4, 6, 8} {
		code, err := gen.NewNumericCode(digits)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^\d+$`), code)
		assert.Len(t, code, digits)
	}
	_, err = gen.NewNumericCode(3)
	assert.Error(t, err)

	backup, err := gen.NewBackupCode()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[2-9A-Z]{5}-[2-9A-Z]{5}$`), backup)

	hash := gen.Hash("secret")
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, gen.Hash("secret"))
}
