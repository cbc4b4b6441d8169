package security

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	totpPeriod = 30
	totpSkew   = 1
)

type totpProvider struct {
	issuer string
}

// NewTOTPProvider creates a TOTPProvider for six digit, 30 second SHA1 codes
func NewTOTPProvider(issuer string) (accounts.TOTPProvider, error) {
	if issuer == "" {
		return nil, fmt.Errorf("totp issuer is required")
	}
	return &totpProvider{issuer: issuer}, nil
}

func (p *totpProvider) Generate(accountName string) (*accounts.TOTPSetup, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      p.issuer,
		AccountName: accountName,
		Period:      totpPeriod,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate totp secret: %w", err)
	}

	return &accounts.TOTPSetup{
		Secret:     key.Secret(),
		OTPAuthURI: key.URL(),
	}, nil
}

func (p *totpProvider) Validate(code, secret string, now time.Time) bool {
	ok, err := totp.ValidateCustom(code, secret, now, totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      totpSkew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}
