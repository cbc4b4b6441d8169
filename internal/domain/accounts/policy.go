package accounts

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"
)

// LockoutPolicy escalates the wait after repeated failures in three tiers. Waits are seconds
type LockoutPolicy struct {
	Threshold1 int `validate:"gte=1"`
	Wait1      int `validate:"gte=0"`
	Threshold2 int `validate:"gtfield=Threshold1"`
	Wait2      int `validate:"gte=0"`
	Threshold3 int `validate:"gtfield=Threshold2"`
	Wait3      int `validate:"gte=0"`
	Active     bool
	UpdatedAt  time.Time
}

// DefaultLockoutPolicy is used until an administrator saves one
func DefaultLockoutPolicy() *LockoutPolicy {
	return &LockoutPolicy{
		Threshold1: 3, Wait1: 60,
		Threshold2: 5, Wait2: 300,
		Threshold3: 8, Wait3: 1800,
		Active: true,
	}
}

// Validate for validating LockoutPolicy struct
func (p *LockoutPolicy) Validate() error {
	return validators.ValidateStruct(p)
}

// WaitFor returns the wait of the highest tier reached by attempts
func (p *LockoutPolicy) WaitFor(attempts int) time.Duration {
	switch {
	case attempts >= p.Threshold3:
		return time.Duration(p.Wait3) * time.Second
	case attempts >= p.Threshold2:
		return time.Duration(p.Wait2) * time.Second
	case attempts >= p.Threshold1:
		return time.Duration(p.Wait1) * time.Second
	default:
		return 0
	}
}

// Policy is the single global switchboard for sign-in methods
type Policy struct {
	RequireEmailVerification bool
	RequireMFAForStaff       bool
	AllowPassword            bool
	AllowMagicLink           bool
	AllowEmailOTP            bool
	AllowSMSOTP              bool
	AllowTOTP                bool
	UpdatedAt                time.Time
}

// DefaultPolicy is used until an administrator saves one
func DefaultPolicy() *Policy {
	return &Policy{
		AllowPassword:  true,
		AllowMagicLink: true,
		AllowEmailOTP:  true,
		AllowTOTP:      true,
	}
}

// AllowsMFAType reports whether the global policy permits an MFA method
func (p *Policy) AllowsMFAType(mfaType string) bool {
	switch mfaType {
	case MFATypeTOTP:
		return p.AllowTOTP
	case MFATypeEmail:
		return p.AllowEmailOTP
	case MFATypeSMS:
		return p.AllowSMSOTP
	case MFATypeBackup:
		return true
	default:
		return false
	}
}

// AuthPolicy narrows the MFA methods offered for an action, globally or for one user
type AuthPolicy struct {
	ID                string  `validate:"required,uuid4"`
	Scope             string  `validate:"required,oneof=global user"`
	UserID            *string `validate:"required_if=Scope user,omitempty,uuid4"`
	IsMandatory       bool
	IsActive          bool
	ApplicableMethods map[string][]string `validate:"omitempty,dive,keys,required,endkeys,dive,oneof=TOTP EMAIL SMS BACKUP"`
	SelectedMethods   map[string][]string `validate:"omitempty,dive,keys,required,endkeys,dive,oneof=TOTP EMAIL SMS BACKUP"`
	UpdatedAt         time.Time
}

// Validate for validating AuthPolicy struct
func (p *AuthPolicy) Validate() error {
	return validators.ValidateStruct(p)
}

// MethodsFor returns the applicable methods when mandatory, else the user's selection
func (p *AuthPolicy) MethodsFor(action string) []string {
	if p == nil || !p.IsActive {
		return nil
	}
	if p.IsMandatory {
		return p.ApplicableMethods[action]
	}
	return p.SelectedMethods[action]
}

// NarrowMethods keeps the enabled methods that also appear in allowed. An empty
// allowed list leaves enabled untouched
func NarrowMethods(enabled, allowed []string) []string {
	if len(allowed) == 0 {
		return enabled
	}
	set := make(map[string]struct{}, len(allowed))
	for _, m := range allowed {
		set[m] = struct{}{}
	}
	var out []string
	for _, m := range enabled {
		if _, ok := set[m]; ok {
			out = append(out, m)
		}
	}
	return out
}
