package models

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
)

// UserModel is the GORM database model for accounts
type UserModel struct {
	ID                 string `gorm:"primaryKey;type:uuid"`
	Email              string `gorm:"not null;uniqueIndex;type:varchar(254)"`
	PasswordHash       string `gorm:"not null;type:varchar(255)"`
	FullName           string `gorm:"type:varchar(150)"`
	Phone              string `gorm:"type:varchar(20)"`
	IsStaff            bool   `gorm:"not null;default:false;index"`
	IsActive           bool   `gorm:"not null"`
	IsEmailVerified    bool   `gorm:"not null;default:false"`
	IsPhoneVerified    bool   `gorm:"not null;default:false"`
	MustChangePassword bool   `gorm:"not null;default:false"`
	IsLocked           bool   `gorm:"not null;default:false"`
	IsDisabled         bool   `gorm:"not null;default:false"`
	IsSuspended        bool   `gorm:"not null;default:false"`
	SuspendedAt        *time.Time
	IsSoftDeleted      bool `gorm:"not null;default:false"`
	DeletedAt          *time.Time
	PendingDelete      bool `gorm:"not null;default:false"`
	DeleteRequestedAt  *time.Time
	FailedAttempts     int `gorm:"not null;default:0"`
	LockoutUntil       *time.Time
	LastReauthAt       *time.Time
	LastLoginAt        *time.Time
	CreatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *accounts.User {
	return &accounts.User{
		ID:                 m.ID,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		FullName:           m.FullName,
		Phone:              m.Phone,
		IsStaff:            m.IsStaff,
		IsActive:           m.IsActive,
		IsEmailVerified:    m.IsEmailVerified,
		IsPhoneVerified:    m.IsPhoneVerified,
		MustChangePassword: m.MustChangePassword,
		IsLocked:           m.IsLocked,
		IsDisabled:         m.IsDisabled,
		IsSuspended:        m.IsSuspended,
		SuspendedAt:        m.SuspendedAt,
		IsSoftDeleted:      m.IsSoftDeleted,
		DeletedAt:          m.DeletedAt,
		PendingDelete:      m.PendingDelete,
		DeleteRequestedAt:  m.DeleteRequestedAt,
		FailedAttempts:     m.FailedAttempts,
		LockoutUntil:       m.LockoutUntil,
		LastReauthAt:       m.LastReauthAt,
		LastLoginAt:        m.LastLoginAt,
		CreatedAt:          m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *accounts.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.FullName = u.FullName
	m.Phone = u.Phone
	m.IsStaff = u.IsStaff
	m.IsActive = u.IsActive
	m.IsEmailVerified = u.IsEmailVerified
	m.IsPhoneVerified = u.IsPhoneVerified
	m.MustChangePassword = u.MustChangePassword
	m.IsLocked = u.IsLocked
	m.IsDisabled = u.IsDisabled
	m.IsSuspended = u.IsSuspended
	m.SuspendedAt = u.SuspendedAt
	m.IsSoftDeleted = u.IsSoftDeleted
	m.DeletedAt = u.DeletedAt
	m.PendingDelete = u.PendingDelete
	m.DeleteRequestedAt = u.DeleteRequestedAt
	m.FailedAttempts = u.FailedAttempts
	m.LockoutUntil = u.LockoutUntil
	m.LastReauthAt = u.LastReauthAt
	m.LastLoginAt = u.LastLoginAt
	m.CreatedAt = u.CreatedAt
}

// PasswordHistoryModel is the GORM database model for previous password hashes
type PasswordHistoryModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	UserID       string    `gorm:"not null;index;type:uuid"`
	PasswordHash string    `gorm:"not null;type:varchar(255)"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (PasswordHistoryModel) TableName() string {
	return "password_history"
}

// FromDomain converts domain entity to GORM model
func (m *PasswordHistoryModel) FromDomain(h *accounts.PasswordHistory) {
	m.ID = h.ID
	m.UserID = h.UserID
	m.PasswordHash = h.PasswordHash
	m.CreatedAt = h.CreatedAt
}

// PolicyModel is the single-row global sign-in policy
type PolicyModel struct {
	ID                       uint `gorm:"primaryKey"`
	RequireEmailVerification bool `gorm:"not null"`
	RequireMFAForStaff       bool `gorm:"not null"`
	AllowPassword            bool `gorm:"not null"`
	AllowMagicLink           bool `gorm:"not null"`
	AllowEmailOTP            bool `gorm:"not null"`
	AllowSMSOTP              bool `gorm:"not null"`
	AllowTOTP                bool `gorm:"not null"`
	UpdatedAt                time.Time
}

// TableName specifies the table name for GORM
func (PolicyModel) TableName() string {
	return "auth_global_policy"
}

// ToDomain converts GORM model to domain entity
func (m *PolicyModel) ToDomain() *accounts.Policy {
	return &accounts.Policy{
		RequireEmailVerification: m.RequireEmailVerification,
		RequireMFAForStaff:       m.RequireMFAForStaff,
		AllowPassword:            m.AllowPassword,
		AllowMagicLink:           m.AllowMagicLink,
		AllowEmailOTP:            m.AllowEmailOTP,
		AllowSMSOTP:              m.AllowSMSOTP,
		AllowTOTP:                m.AllowTOTP,
		UpdatedAt:                m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PolicyModel) FromDomain(p *accounts.Policy) {
	m.ID = 1
	m.RequireEmailVerification = p.RequireEmailVerification
	m.RequireMFAForStaff = p.RequireMFAForStaff
	m.AllowPassword = p.AllowPassword
	m.AllowMagicLink = p.AllowMagicLink
	m.AllowEmailOTP = p.AllowEmailOTP
	m.AllowSMSOTP = p.AllowSMSOTP
	m.AllowTOTP = p.AllowTOTP
	m.UpdatedAt = p.UpdatedAt
}

// LockoutPolicyModel is the single-row lockout tier configuration
type LockoutPolicyModel struct {
	ID         uint `gorm:"primaryKey"`
	Threshold1 int  `gorm:"not null"`
	Wait1      int  `gorm:"not null"`
	Threshold2 int  `gorm:"not null"`
	Wait2      int  `gorm:"not null"`
	Threshold3 int  `gorm:"not null"`
	Wait3      int  `gorm:"not null"`
	Active     bool `gorm:"not null"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (LockoutPolicyModel) TableName() string {
	return "lockout_policy"
}

// ToDomain converts GORM model to domain entity
func (m *LockoutPolicyModel) ToDomain() *accounts.LockoutPolicy {
	return &accounts.LockoutPolicy{
		Threshold1: m.Threshold1,
		Wait1:      m.Wait1,
		Threshold2: m.Threshold2,
		Wait2:      m.Wait2,
		Threshold3: m.Threshold3,
		Wait3:      m.Wait3,
		Active:     m.Active,
		UpdatedAt:  m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *LockoutPolicyModel) FromDomain(p *accounts.LockoutPolicy) {
	m.ID = 1
	m.Threshold1 = p.Threshold1
	m.Wait1 = p.Wait1
	m.Threshold2 = p.Threshold2
	m.Wait2 = p.Wait2
	m.Threshold3 = p.Threshold3
	m.Wait3 = p.Wait3
	m.Active = p.Active
	m.UpdatedAt = p.UpdatedAt
}

// AuthPolicyModel is the GORM database model for per-scope MFA method policies
type AuthPolicyModel struct {
	ID                string              `gorm:"primaryKey;type:uuid"`
	Scope             string              `gorm:"not null;uniqueIndex:idx_auth_policy_scope_user;type:varchar(10)"`
	UserID            *string             `gorm:"uniqueIndex:idx_auth_policy_scope_user;type:uuid"`
	IsMandatory       bool                `gorm:"not null"`
	IsActive          bool                `gorm:"not null"`
	ApplicableMethods map[string][]string `gorm:"serializer:json"`
	SelectedMethods   map[string][]string `gorm:"serializer:json"`
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (AuthPolicyModel) TableName() string {
	return "auth_policies"
}

// ToDomain converts GORM model to domain entity
func (m *AuthPolicyModel) ToDomain() *accounts.AuthPolicy {
	return &accounts.AuthPolicy{
		ID:                m.ID,
		Scope:             m.Scope,
		UserID:            m.UserID,
		IsMandatory:       m.IsMandatory,
		IsActive:          m.IsActive,
		ApplicableMethods: m.ApplicableMethods,
		SelectedMethods:   m.SelectedMethods,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AuthPolicyModel) FromDomain(p *accounts.AuthPolicy) {
	m.ID = p.ID
	m.Scope = p.Scope
	m.UserID = p.UserID
	m.IsMandatory = p.IsMandatory
	m.IsActive = p.IsActive
	m.ApplicableMethods = p.ApplicableMethods
	m.SelectedMethods = p.SelectedMethods
	m.UpdatedAt = p.UpdatedAt
}

// MFAMethodModel is the GORM database model for enrolled second factors
type MFAMethodModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	UserID     string `gorm:"not null;uniqueIndex:idx_mfa_user_type;type:uuid"`
	Type       string `gorm:"not null;uniqueIndex:idx_mfa_user_type;type:varchar(10)"`
	Secret     string `gorm:"type:varchar(128)"`
	Enabled    bool   `gorm:"not null;default:false"`
	LastUsedAt *time.Time
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (MFAMethodModel) TableName() string {
	return "mfa_methods"
}

// ToDomain converts GORM model to domain entity
func (m *MFAMethodModel) ToDomain() *accounts.MFAMethod {
	return &accounts.MFAMethod{
		ID:         m.ID,
		UserID:     m.UserID,
		Type:       m.Type,
		Secret:     m.Secret,
		Enabled:    m.Enabled,
		LastUsedAt: m.LastUsedAt,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MFAMethodModel) FromDomain(method *accounts.MFAMethod) {
	m.ID = method.ID
	m.UserID = method.UserID
	m.Type = method.Type
	m.Secret = method.Secret
	m.Enabled = method.Enabled
	m.LastUsedAt = method.LastUsedAt
	m.CreatedAt = method.CreatedAt
}

// BackupCodeModel is the GORM database model for hashed recovery codes
type BackupCodeModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	UserID    string `gorm:"not null;index;type:uuid"`
	CodeHash  string `gorm:"not null;index;type:char(64)"`
	Used      bool   `gorm:"not null;default:false"`
	UsedAt    *time.Time
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (BackupCodeModel) TableName() string {
	return "mfa_backup_codes"
}

// FromDomain converts domain entity to GORM model
func (m *BackupCodeModel) FromDomain(c *accounts.BackupCode) {
	m.ID = c.ID
	m.UserID = c.UserID
	m.CodeHash = c.CodeHash
	m.Used = c.Used
	m.UsedAt = c.UsedAt
	m.CreatedAt = c.CreatedAt
}

// OneTimeTokenModel is the GORM database model for hashed link tokens
type OneTimeTokenModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	UserID    string    `gorm:"not null;index;type:uuid"`
	Purpose   string    `gorm:"not null;uniqueIndex:idx_token_purpose_hash;type:varchar(20)"`
	TokenHash string    `gorm:"not null;uniqueIndex:idx_token_purpose_hash;type:char(64)"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null;default:false"`
	IP        string    `gorm:"type:varchar(45)"`
	UserAgent string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (OneTimeTokenModel) TableName() string {
	return "one_time_tokens"
}

// ToDomain converts GORM model to domain entity
func (m *OneTimeTokenModel) ToDomain() *accounts.OneTimeToken {
	return &accounts.OneTimeToken{
		ID:        m.ID,
		UserID:    m.UserID,
		Purpose:   m.Purpose,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		Used:      m.Used,
		IP:        m.IP,
		UserAgent: m.UserAgent,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OneTimeTokenModel) FromDomain(t *accounts.OneTimeToken) {
	m.ID = t.ID
	m.UserID = t.UserID
	m.Purpose = t.Purpose
	m.TokenHash = t.TokenHash
	m.ExpiresAt = t.ExpiresAt
	m.Used = t.Used
	m.IP = t.IP
	m.UserAgent = t.UserAgent
	m.CreatedAt = t.CreatedAt
}

// OneTimeCodeModel is the GORM database model for hashed numeric codes
type OneTimeCodeModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	UserID      string    `gorm:"not null;index:idx_code_lookup;type:uuid"`
	Channel     string    `gorm:"not null;index:idx_code_lookup;type:varchar(10)"`
	Destination string    `gorm:"not null;type:varchar(254)"`
	Purpose     string    `gorm:"not null;index:idx_code_lookup;type:varchar(10)"`
	CodeHash    string    `gorm:"not null;type:char(64)"`
	ExpiresAt   time.Time `gorm:"not null"`
	Attempts    int       `gorm:"not null;default:0"`
	Verified    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (OneTimeCodeModel) TableName() string {
	return "one_time_codes"
}

// ToDomain converts GORM model to domain entity
func (m *OneTimeCodeModel) ToDomain() *accounts.OneTimeCode {
	return &accounts.OneTimeCode{
		ID:          m.ID,
		UserID:      m.UserID,
		Channel:     m.Channel,
		Destination: m.Destination,
		Purpose:     m.Purpose,
		CodeHash:    m.CodeHash,
		ExpiresAt:   m.ExpiresAt,
		Attempts:    m.Attempts,
		Verified:    m.Verified,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OneTimeCodeModel) FromDomain(c *accounts.OneTimeCode) {
	m.ID = c.ID
	m.UserID = c.UserID
	m.Channel = c.Channel
	m.Destination = c.Destination
	m.Purpose = c.Purpose
	m.CodeHash = c.CodeHash
	m.ExpiresAt = c.ExpiresAt
	m.Attempts = c.Attempts
	m.Verified = c.Verified
	m.CreatedAt = c.CreatedAt
}

// LoginActivityModel is the GORM database model for sign-in attempts
type LoginActivityModel struct {
	ID         string    `gorm:"primaryKey;type:uuid"`
	UserID     string    `gorm:"not null;index;type:uuid"`
	IP         string    `gorm:"type:varchar(45)"`
	UserAgent  string    `gorm:"type:varchar(255)"`
	Successful bool      `gorm:"not null"`
	Method     string    `gorm:"not null;type:varchar(10)"`
	MFAUsed    bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (LoginActivityModel) TableName() string {
	return "login_activity"
}

// ToDomain converts GORM model to domain entity
func (m *LoginActivityModel) ToDomain() *accounts.LoginActivity {
	return &accounts.LoginActivity{
		ID:         m.ID,
		UserID:     m.UserID,
		IP:         m.IP,
		UserAgent:  m.UserAgent,
		Successful: m.Successful,
		Method:     m.Method,
		MFAUsed:    m.MFAUsed,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *LoginActivityModel) FromDomain(a *accounts.LoginActivity) {
	m.ID = a.ID
	m.UserID = a.UserID
	m.IP = a.IP
	m.UserAgent = a.UserAgent
	m.Successful = a.Successful
	m.Method = a.Method
	m.MFAUsed = a.MFAUsed
	m.CreatedAt = a.CreatedAt
}

// AuthRequestLogModel is the GORM database model for credential request logs
type AuthRequestLogModel struct {
	ID         string    `gorm:"primaryKey;type:uuid"`
	UserID     *string   `gorm:"index;type:uuid"`
	Identifier string    `gorm:"type:varchar(254)"`
	Action     string    `gorm:"not null;type:varchar(20)"`
	Success    bool      `gorm:"not null"`
	Message    string    `gorm:"type:varchar(255)"`
	IP         string    `gorm:"type:varchar(45)"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (AuthRequestLogModel) TableName() string {
	return "auth_request_logs"
}

// ToDomain converts GORM model to domain entity
func (m *AuthRequestLogModel) ToDomain() *accounts.AuthRequestLog {
	return &accounts.AuthRequestLog{
		ID:         m.ID,
		UserID:     m.UserID,
		Identifier: m.Identifier,
		Action:     m.Action,
		Success:    m.Success,
		Message:    m.Message,
		IP:         m.IP,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AuthRequestLogModel) FromDomain(l *accounts.AuthRequestLog) {
	m.ID = l.ID
	m.UserID = l.UserID
	m.Identifier = l.Identifier
	m.Action = l.Action
	m.Success = l.Success
	m.Message = l.Message
	m.IP = l.IP
	m.CreatedAt = l.CreatedAt
}
