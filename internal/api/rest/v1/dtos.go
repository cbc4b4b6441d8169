package v1

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/scrimmages"
	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// InfoResponse carries a human readable acknowledgement
type InfoResponse struct {
	Message string `json:"message"`
}

// CountResponse carries a single counter
type CountResponse struct {
	Count int64 `json:"count"`
}

// Auth

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"max=150"`
}

func (r *RegisterRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type VerifyEmailRequest struct {
	UserID string `json:"uid" validate:"required,uuid4"`
	Token  string `json:"token" validate:"required"`
}

func (r *VerifyEmailRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// RefreshRequest is shared by token refresh and logout
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

func (r *RefreshRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type PasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

func (r *PasswordRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func (r *ChangePasswordRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r *EmailRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type ResetPasswordRequest struct {
	UserID      string `json:"uid" validate:"required,uuid4"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func (r *ResetPasswordRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type TokenRequest struct {
	Token string `json:"token" validate:"required"`
}

func (r *TokenRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type RequestCodeRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Channel string `json:"channel" validate:"required,oneof=email sms"`
	Purpose string `json:"purpose" validate:"required,oneof=login reset mfa"`
}

func (r *RequestCodeRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type VerifyCodeRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Channel string `json:"channel" validate:"required,oneof=email sms"`
	Purpose string `json:"purpose" validate:"required,oneof=login reset mfa"`
	Code    string `json:"code" validate:"required,numeric,min=4,max=8"`
}

func (r *VerifyCodeRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type CodeRequest struct {
	Code string `json:"code" validate:"required"`
}

func (r *CodeRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type VerifyMFARequest struct {
	MFAToken string `json:"mfa_token" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=TOTP BACKUP EMAIL"`
	Code     string `json:"code" validate:"required"`
}

func (r *VerifyMFARequest) Validate() error {
	return validators.ValidateStruct(r)
}

// Admin

type AccountActionRequest struct {
	Action string `json:"action" validate:"required,oneof=lock unlock disable enable suspend unsuspend soft_delete restore request_delete cancel_delete hard_delete"`
}

func (r *AccountActionRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type PolicyRequest struct {
	RequireEmailVerification bool `json:"require_email_verification"`
	RequireMFAForStaff       bool `json:"require_mfa_for_staff"`
	AllowPassword            bool `json:"allow_password"`
	AllowMagicLink           bool `json:"allow_magic_link"`
	AllowEmailOTP            bool `json:"allow_email_otp"`
	AllowSMSOTP              bool `json:"allow_sms_otp"`
	AllowTOTP                bool `json:"allow_totp"`
}

func (r *PolicyRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type LockoutPolicyRequest struct {
	Threshold1 int  `json:"threshold1" validate:"gte=1"`
	Wait1      int  `json:"wait1" validate:"gte=0"`
	Threshold2 int  `json:"threshold2" validate:"gtfield=Threshold1"`
	Wait2      int  `json:"wait2" validate:"gte=0"`
	Threshold3 int  `json:"threshold3" validate:"gtfield=Threshold2"`
	Wait3      int  `json:"wait3" validate:"gte=0"`
	Active     bool `json:"active"`
}

func (r *LockoutPolicyRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type AuthPolicyRequest struct {
	Scope             string              `json:"scope" validate:"required,oneof=global user"`
	UserID            *string             `json:"user_id" validate:"required_if=Scope user,omitempty,uuid4"`
	IsMandatory       bool                `json:"is_mandatory"`
	IsActive          bool                `json:"is_active"`
	ApplicableMethods map[string][]string `json:"applicable_methods"`
	SelectedMethods   map[string][]string `json:"selected_methods"`
}

func (r *AuthPolicyRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type RefundGroupRequest struct {
	AppSource string `json:"app_source" validate:"required,oneof=membership scrimmage event wallet general"`
	RelatedID string `json:"related_id" validate:"required"`
	Reason    string `json:"reason" validate:"max=255"`
}

func (r *RefundGroupRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type BonusTierRequest struct {
	MinAmount    decimal.Decimal `json:"min_amount" validate:"gt=0"`
	BonusPercent decimal.Decimal `json:"bonus_percent" validate:"gt=0,lte=100"`
}

func (r *BonusTierRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type PlanRequest struct {
	Name        string          `json:"name" validate:"required,max=120"`
	Description string          `json:"description" validate:"max=2000"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
	Currency    string          `json:"currency" validate:"required,currency"`
	Interval    string          `json:"interval" validate:"required,oneof=month year"`
	IsActive    *bool           `json:"is_active"`
}

func (r *PlanRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

func (r *CategoryRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type ScrimmageTypeRequest struct {
	CategoryID        string            `json:"category_id" validate:"required,uuid4"`
	Name              string            `json:"name" validate:"required,max=120"`
	CustomFieldSchema scrimmages.Schema `json:"custom_field_schema"`
}

func (r *ScrimmageTypeRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// Profiles and groups

type ProfilePatchRequest struct {
	DisplayName *string  `json:"display_name" validate:"omitempty,max=80"`
	Bio         *string  `json:"bio" validate:"omitempty,max=1000"`
	AvatarURL   *string  `json:"avatar_url" validate:"omitempty,url"`
	Location    *string  `json:"location" validate:"omitempty,max=120"`
	Visibility  *string  `json:"visibility" validate:"omitempty,oneof=public private followers"`
	Interests   []string `json:"interests" validate:"max=20,dive,max=40"`
}

func (r *ProfilePatchRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type GroupRequest struct {
	Name        string `json:"name" validate:"max=120"`
	Description string `json:"description" validate:"max=2000"`
}

func (r *GroupRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// Scrimmages and events

type ScrimmageRequest struct {
	GroupID             *string                `json:"group_id" validate:"omitempty,uuid4"`
	Title               string                 `json:"title" validate:"required,max=255"`
	Description         string                 `json:"description"`
	TypeID              string                 `json:"type_id" validate:"required,uuid4"`
	CustomFields        map[string]interface{} `json:"custom_fields"`
	LocationName        string                 `json:"location_name" validate:"max=255"`
	Address             string                 `json:"address" validate:"max=512"`
	StartAt             time.Time              `json:"start_at" validate:"required"`
	EndAt               time.Time              `json:"end_at" validate:"required,gtfield=StartAt"`
	MaxParticipants     int                    `json:"max_participants" validate:"gte=0"`
	Visibility          string                 `json:"visibility" validate:"omitempty,oneof=public private"`
	Tags                []string               `json:"tags" validate:"max=20,dive,max=40"`
	EntryFee            decimal.Decimal        `json:"entry_fee" validate:"gte=0"`
	Currency            string                 `json:"currency" validate:"omitempty,currency"`
	AutoPayEnabled      bool                   `json:"auto_pay_enabled"`
	TeamPayEnabled      bool                   `json:"team_pay_enabled"`
	OrganizerFeePercent decimal.Decimal        `json:"organizer_fee_percent" validate:"gte=0,lte=100"`
	OrganizerFeeFlat    decimal.Decimal        `json:"organizer_fee_flat" validate:"gte=0"`
	PrizePoolAmount     decimal.Decimal        `json:"prize_pool_amount" validate:"gte=0"`
	Status              string                 `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r *ScrimmageRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type JoinRequest struct {
	Role string `json:"role" validate:"omitempty,oneof=player coach referee observer"`
}

func (r *JoinRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type InviteRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
}

func (r *InviteRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type PrizeAwardRequest struct {
	UserID string          `json:"user_id" validate:"required,uuid4"`
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

type PrizesRequest struct {
	Awards []PrizeAwardRequest `json:"awards" validate:"required,min=1,dive"`
}

func (r *PrizesRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type EventRequest struct {
	GroupID             *string         `json:"group_id" validate:"omitempty,uuid4"`
	Title               string          `json:"title" validate:"required,max=200"`
	Description         string          `json:"description" validate:"max=5000"`
	LocationName        string          `json:"location_name" validate:"max=200"`
	Address             string          `json:"address" validate:"max=300"`
	StartAt             time.Time       `json:"start_at" validate:"required"`
	EndAt               time.Time       `json:"end_at" validate:"required,gtfield=StartAt"`
	IsPublic            *bool           `json:"is_public"`
	Tags                []string        `json:"tags" validate:"max=20,dive,max=40"`
	Capacity            int             `json:"capacity" validate:"gte=0"`
	EntryFee            decimal.Decimal `json:"entry_fee" validate:"gte=0"`
	Currency            string          `json:"currency" validate:"omitempty,currency"`
	AutoPayEnabled      bool            `json:"auto_pay_enabled"`
	OrganizerFeePercent decimal.Decimal `json:"organizer_fee_percent" validate:"gte=0,lte=100"`
	OrganizerFeeFlat    decimal.Decimal `json:"organizer_fee_flat" validate:"gte=0"`
	Status              string          `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r *EventRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type RSVPRequest struct {
	Status string `json:"status" validate:"required,oneof=interested going cancelled"`
}

func (r *RSVPRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type CalendarItemRequest struct {
	Title   string    `json:"title" validate:"required,max=200"`
	StartAt time.Time `json:"start_at" validate:"required"`
	EndAt   time.Time `json:"end_at" validate:"required,gtfield=StartAt"`
}

func (r *CalendarItemRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// Memberships and payments

type SubscribeRequest struct {
	PlanID         string `json:"plan_id" validate:"required,uuid4"`
	PayWithCredits bool   `json:"pay_with_credits"`
}

func (r *SubscribeRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type IntentRequest struct {
	AppSource   string          `json:"app_source" validate:"omitempty,oneof=membership scrimmage event wallet general"`
	RelatedID   string          `json:"related_id" validate:"max=64"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Currency    string          `json:"currency" validate:"omitempty,currency"`
	Provider    string          `json:"provider" validate:"omitempty,oneof=stripe paypal omise"`
	Description string          `json:"description" validate:"max=255"`
}

func (r *IntentRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type WalletAmountRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
	Source string          `json:"source" validate:"max=100"`
}

func (r *WalletAmountRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// Chat

type ThreadRequest struct {
	Title          string   `json:"title" validate:"max=200"`
	ParticipantIDs []string `json:"participant_ids" validate:"required,min=1,dive,uuid4"`
}

func (r *ThreadRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type ParticipantRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
}

func (r *ParticipantRequest) Validate() error {
	return validators.ValidateStruct(r)
}

type MessageRequest struct {
	Body string `json:"body" validate:"required,max=5000"`
}

func (r *MessageRequest) Validate() error {
	return validators.ValidateStruct(r)
}
