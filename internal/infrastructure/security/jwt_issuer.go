package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload of every token this service signs
type Claims struct {
	Email   string `json:"email"`
	IsStaff bool   `json:"staff"`
	Purpose string `json:"typ"`
	jwt.RegisteredClaims
}

type jwtIssuer struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	mfaTTL     time.Duration
	now        func() time.Time
}

// NewJWTIssuer creates an HS256 TokenIssuer from the auth settings
func NewJWTIssuer(settings *config.AuthSettings) (accounts.TokenIssuer, error) {
	if settings == nil || settings.JWTSecret == "" {
		return nil, errors.New("jwt secret is required")
	}
	mfaTTL := settings.MFATokenTTL
	if mfaTTL == 0 {
		mfaTTL = 5 * time.Minute
	}
	return &jwtIssuer{
		secret:     []byte(settings.JWTSecret),
		issuer:     settings.Issuer,
		accessTTL:  settings.AccessTokenTTL,
		refreshTTL: settings.RefreshTokenTTL,
		mfaTTL:     mfaTTL,
		now:        time.Now,
	}, nil
}

func (j *jwtIssuer) IssuePair(user *accounts.User) (*accounts.TokenPair, error) {
	now := j.now()

	access, err := j.sign(user, accounts.TokenPurposeAccess, now, j.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := j.sign(user, accounts.TokenPurposeRefresh, now, j.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &accounts.TokenPair{
		Access:          access,
		Refresh:         refresh,
		AccessExpiresAt: now.Add(j.accessTTL),
	}, nil
}

func (j *jwtIssuer) IssueMFAToken(user *accounts.User) (string, error) {
	return j.sign(user, accounts.TokenPurposeMFA, j.now(), j.mfaTTL)
}

func (j *jwtIssuer) Parse(tokenStr, purpose string) (*accounts.TokenClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", accounts.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, accounts.ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return nil, fmt.Errorf("%w: expected %s token", accounts.ErrInvalidToken, purpose)
	}

	return &accounts.TokenClaims{
		ID:        claims.ID,
		UserID:    claims.Subject,
		Email:     claims.Email,
		IsStaff:   claims.IsStaff,
		Purpose:   claims.Purpose,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (j *jwtIssuer) sign(user *accounts.User, purpose string, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		Email:   user.Email,
		IsStaff: user.IsStaff,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", purpose, err)
	}
	return signed, nil
}
