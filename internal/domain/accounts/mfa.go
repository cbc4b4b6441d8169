package accounts

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"
)

// MFAMethod is an enrolled second factor. One row per (user, type)
type MFAMethod struct {
	ID         string `validate:"required,uuid4"`
	UserID     string `validate:"required,uuid4"`
	Type       string `validate:"required,oneof=TOTP EMAIL SMS"`
	Secret     string
	Enabled    bool
	LastUsedAt *time.Time
	CreatedAt  time.Time
}

// Validate for validating MFAMethod struct
func (m *MFAMethod) Validate() error {
	return validators.ValidateStruct(m)
}

// BackupCode is a single-use recovery code stored as a sha256 hash
type BackupCode struct {
	ID        string `validate:"required,uuid4"`
	UserID    string `validate:"required,uuid4"`
	CodeHash  string `validate:"required,len=64,hexadecimal"`
	Used      bool
	UsedAt    *time.Time
	CreatedAt time.Time
}

// TOTPSetup is shown once when enrolling an authenticator app
type TOTPSetup struct {
	Secret     string
	OTPAuthURI string
}
