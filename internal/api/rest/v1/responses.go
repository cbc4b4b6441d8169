package v1

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/domain/calendar"
	"github.com/MGTheTrain/scrimhub/internal/domain/chat"
	"github.com/MGTheTrain/scrimhub/internal/domain/events"
	"github.com/MGTheTrain/scrimhub/internal/domain/groups"
	"github.com/MGTheTrain/scrimhub/internal/domain/memberships"
	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/MGTheTrain/scrimhub/internal/domain/profiles"
	"github.com/MGTheTrain/scrimhub/internal/domain/scrimmages"

	"github.com/shopspring/decimal"
)

type UserResponse struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	FullName           string     `json:"full_name"`
	Phone              string     `json:"phone,omitempty"`
	IsStaff            bool       `json:"is_staff"`
	IsActive           bool       `json:"is_active"`
	IsEmailVerified    bool       `json:"is_email_verified"`
	IsPhoneVerified    bool       `json:"is_phone_verified"`
	MustChangePassword bool       `json:"must_change_password"`
	IsLocked           bool       `json:"is_locked"`
	IsDisabled         bool       `json:"is_disabled"`
	IsSuspended        bool       `json:"is_suspended"`
	IsSoftDeleted      bool       `json:"is_soft_deleted"`
	PendingDelete      bool       `json:"pending_delete"`
	LastLoginAt        *time.Time `json:"last_login_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func newUserResponse(u *accounts.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		FullName:           u.FullName,
		Phone:              u.Phone,
		IsStaff:            u.IsStaff,
		IsActive:           u.IsActive,
		IsEmailVerified:    u.IsEmailVerified,
		IsPhoneVerified:    u.IsPhoneVerified,
		MustChangePassword: u.MustChangePassword,
		IsLocked:           u.IsLocked,
		IsDisabled:         u.IsDisabled,
		IsSuspended:        u.IsSuspended,
		IsSoftDeleted:      u.IsSoftDeleted,
		PendingDelete:      u.PendingDelete,
		LastLoginAt:        u.LastLoginAt,
		CreatedAt:          u.CreatedAt,
	}
}

type TokenPairResponse struct {
	Access          string    `json:"access"`
	Refresh         string    `json:"refresh"`
	AccessExpiresAt time.Time `json:"access_expires_at"`
}

func newTokenPairResponse(p *accounts.TokenPair) *TokenPairResponse {
	return &TokenPairResponse{Access: p.Access, Refresh: p.Refresh, AccessExpiresAt: p.AccessExpiresAt}
}

// LoginResponse is either a session or an MFA challenge
type LoginResponse struct {
	User            *UserResponse `json:"user,omitempty"`
	Access          string        `json:"access,omitempty"`
	Refresh         string        `json:"refresh,omitempty"`
	AccessExpiresAt *time.Time    `json:"access_expires_at,omitempty"`
	MFARequired     bool          `json:"mfa_required,omitempty"`
	Methods         []string      `json:"methods,omitempty"`
	MFAToken        string        `json:"mfa_token,omitempty"`
}

func newLoginResponse(r *accounts.LoginResult) *LoginResponse {
	if r.MFARequired {
		return &LoginResponse{MFARequired: true, Methods: r.Methods, MFAToken: r.MFAToken}
	}
	resp := &LoginResponse{User: newUserResponse(r.User)}
	if r.Tokens != nil {
		expires := r.Tokens.AccessExpiresAt
		resp.Access = r.Tokens.Access
		resp.Refresh = r.Tokens.Refresh
		resp.AccessExpiresAt = &expires
	}
	return resp
}

type TOTPSetupResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURI string `json:"otpauth_uri"`
}

type BackupCodesResponse struct {
	BackupCodes []string `json:"backup_codes"`
}

type PolicyResponse struct {
	RequireEmailVerification bool      `json:"require_email_verification"`
	RequireMFAForStaff       bool      `json:"require_mfa_for_staff"`
	AllowPassword            bool      `json:"allow_password"`
	AllowMagicLink           bool      `json:"allow_magic_link"`
	AllowEmailOTP            bool      `json:"allow_email_otp"`
	AllowSMSOTP              bool      `json:"allow_sms_otp"`
	AllowTOTP                bool      `json:"allow_totp"`
	UpdatedAt                time.Time `json:"updated_at"`
}

func newPolicyResponse(p *accounts.Policy) *PolicyResponse {
	return &PolicyResponse{
		RequireEmailVerification: p.RequireEmailVerification,
		RequireMFAForStaff:       p.RequireMFAForStaff,
		AllowPassword:            p.AllowPassword,
		AllowMagicLink:           p.AllowMagicLink,
		AllowEmailOTP:            p.AllowEmailOTP,
		AllowSMSOTP:              p.AllowSMSOTP,
		AllowTOTP:                p.AllowTOTP,
		UpdatedAt:                p.UpdatedAt,
	}
}

type LockoutPolicyResponse struct {
	Threshold1 int       `json:"threshold1"`
	Wait1      int       `json:"wait1"`
	Threshold2 int       `json:"threshold2"`
	Wait2      int       `json:"wait2"`
	Threshold3 int       `json:"threshold3"`
	Wait3      int       `json:"wait3"`
	Active     bool      `json:"active"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newLockoutPolicyResponse(p *accounts.LockoutPolicy) *LockoutPolicyResponse {
	return &LockoutPolicyResponse{
		Threshold1: p.Threshold1, Wait1: p.Wait1,
		Threshold2: p.Threshold2, Wait2: p.Wait2,
		Threshold3: p.Threshold3, Wait3: p.Wait3,
		Active:    p.Active,
		UpdatedAt: p.UpdatedAt,
	}
}

type AuthPolicyResponse struct {
	ID                string              `json:"id"`
	Scope             string              `json:"scope"`
	UserID            *string             `json:"user_id,omitempty"`
	IsMandatory       bool                `json:"is_mandatory"`
	IsActive          bool                `json:"is_active"`
	ApplicableMethods map[string][]string `json:"applicable_methods"`
	SelectedMethods   map[string][]string `json:"selected_methods"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

func newAuthPolicyResponse(p *accounts.AuthPolicy) *AuthPolicyResponse {
	return &AuthPolicyResponse{
		ID:                p.ID,
		Scope:             p.Scope,
		UserID:            p.UserID,
		IsMandatory:       p.IsMandatory,
		IsActive:          p.IsActive,
		ApplicableMethods: p.ApplicableMethods,
		SelectedMethods:   p.SelectedMethods,
		UpdatedAt:         p.UpdatedAt,
	}
}

type LoginActivityResponse struct {
	ID         string    `json:"id"`
	IP         string    `json:"ip"`
	UserAgent  string    `json:"user_agent"`
	Successful bool      `json:"successful"`
	Method     string    `json:"method"`
	MFAUsed    bool      `json:"mfa_used"`
	CreatedAt  time.Time `json:"created_at"`
}

type RequestLogResponse struct {
	ID         string    `json:"id"`
	Identifier string    `json:"identifier"`
	Action     string    `json:"action"`
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	IP         string    `json:"ip"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActivityResponse combines login activity and credential request logs for one user
type ActivityResponse struct {
	Logins   []*LoginActivityResponse `json:"logins"`
	Requests []*RequestLogResponse    `json:"requests"`
}

func newActivityResponse(logins []*accounts.LoginActivity, requests []*accounts.AuthRequestLog) *ActivityResponse {
	resp := &ActivityResponse{
		Logins:   make([]*LoginActivityResponse, 0, len(logins)),
		Requests: make([]*RequestLogResponse, 0, len(requests)),
	}
	for _, a := range logins {
		resp.Logins = append(resp.Logins, &LoginActivityResponse{
			ID: a.ID, IP: a.IP, UserAgent: a.UserAgent, Successful: a.Successful,
			Method: a.Method, MFAUsed: a.MFAUsed, CreatedAt: a.CreatedAt,
		})
	}
	for _, r := range requests {
		resp.Requests = append(resp.Requests, &RequestLogResponse{
			ID: r.ID, Identifier: r.Identifier, Action: r.Action, Success: r.Success,
			Message: r.Message, IP: r.IP, CreatedAt: r.CreatedAt,
		})
	}
	return resp
}

type ProfileResponse struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	Location    string    `json:"location"`
	Visibility  string    `json:"visibility"`
	Interests   []string  `json:"interests"`
	Reputation  int       `json:"reputation"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newProfileResponse(p *profiles.Profile) *ProfileResponse {
	return &ProfileResponse{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		AvatarURL:   p.AvatarURL,
		Location:    p.Location,
		Visibility:  p.Visibility,
		Interests:   p.Interests,
		Reputation:  p.Reputation,
		UpdatedAt:   p.UpdatedAt,
	}
}

type FollowResponse struct {
	Following bool `json:"following"`
}

type UserIDsResponse struct {
	UserIDs []string `json:"user_ids"`
}

type GroupResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func newGroupResponse(g *groups.Group) *GroupResponse {
	return &GroupResponse{
		ID:          g.ID,
		OwnerID:     g.OwnerID,
		Name:        g.Name,
		Slug:        g.Slug,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
	}
}

type GroupMemberResponse struct {
	ID       string    `json:"id"`
	GroupID  string    `json:"group_id"`
	UserID   string    `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

func newGroupMemberResponse(m *groups.GroupMember) *GroupMemberResponse {
	return &GroupMemberResponse{ID: m.ID, GroupID: m.GroupID, UserID: m.UserID, Role: m.Role, JoinedAt: m.JoinedAt}
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

func newCategoryResponse(c *scrimmages.Category) *CategoryResponse {
	return &CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug, CreatedAt: c.CreatedAt}
}

type ScrimmageTypeResponse struct {
	ID                string            `json:"id"`
	CategoryID        string            `json:"category_id"`
	Name              string            `json:"name"`
	Slug              string            `json:"slug"`
	CustomFieldSchema scrimmages.Schema `json:"custom_field_schema"`
	CreatedAt         time.Time         `json:"created_at"`
}

func newScrimmageTypeResponse(t *scrimmages.Type) *ScrimmageTypeResponse {
	return &ScrimmageTypeResponse{
		ID:                t.ID,
		CategoryID:        t.CategoryID,
		Name:              t.Name,
		Slug:              t.Slug,
		CustomFieldSchema: t.CustomFieldSchema,
		CreatedAt:         t.CreatedAt,
	}
}

type ScrimmageResponse struct {
	ID                  string                 `json:"id"`
	CreatorID           string                 `json:"creator_id"`
	GroupID             *string                `json:"group_id,omitempty"`
	Title               string                 `json:"title"`
	Slug                string                 `json:"slug"`
	Description         string                 `json:"description"`
	TypeID              string                 `json:"type_id"`
	CategoryID          string                 `json:"category_id"`
	CustomFields        map[string]interface{} `json:"custom_fields"`
	LocationName        string                 `json:"location_name"`
	Address             string                 `json:"address"`
	StartAt             time.Time              `json:"start_at"`
	EndAt               time.Time              `json:"end_at"`
	MaxParticipants     int                    `json:"max_participants"`
	Visibility          string                 `json:"visibility"`
	Tags                []string               `json:"tags"`
	EntryFee            decimal.Decimal        `json:"entry_fee"`
	Currency            string                 `json:"currency"`
	AutoPayEnabled      bool                   `json:"auto_pay_enabled"`
	TeamPayEnabled      bool                   `json:"team_pay_enabled"`
	OrganizerFeePercent decimal.Decimal        `json:"organizer_fee_percent"`
	OrganizerFeeFlat    decimal.Decimal        `json:"organizer_fee_flat"`
	PrizePoolAmount     decimal.Decimal        `json:"prize_pool_amount"`
	Status              string                 `json:"status"`
	ChatThreadID        string                 `json:"chat_thread_id,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

func newScrimmageResponse(s *scrimmages.Scrimmage) *ScrimmageResponse {
	return &ScrimmageResponse{
		ID:                  s.ID,
		CreatorID:           s.CreatorID,
		GroupID:             s.GroupID,
		Title:               s.Title,
		Slug:                s.Slug,
		Description:         s.Description,
		TypeID:              s.TypeID,
		CategoryID:          s.CategoryID,
		CustomFields:        s.CustomFields,
		LocationName:        s.LocationName,
		Address:             s.Address,
		StartAt:             s.StartAt,
		EndAt:               s.EndAt,
		MaxParticipants:     s.MaxParticipants,
		Visibility:          s.Visibility,
		Tags:                s.Tags,
		EntryFee:            s.EntryFee,
		Currency:            s.Currency,
		AutoPayEnabled:      s.AutoPayEnabled,
		TeamPayEnabled:      s.TeamPayEnabled,
		OrganizerFeePercent: s.OrganizerFeePercent,
		OrganizerFeeFlat:    s.OrganizerFeeFlat,
		PrizePoolAmount:     s.PrizePoolAmount,
		Status:              s.Status,
		ChatThreadID:        s.ChatThreadID,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

func newScrimmageResponses(list []*scrimmages.Scrimmage) []*ScrimmageResponse {
	resp := make([]*ScrimmageResponse, 0, len(list))
	for _, s := range list {
		resp = append(resp, newScrimmageResponse(s))
	}
	return resp
}

type ParticipationResponse struct {
	ID          string    `json:"id"`
	ScrimmageID string    `json:"scrimmage_id"`
	UserID      string    `json:"user_id"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	JoinedAt    time.Time `json:"joined_at"`
}

func newParticipationResponse(p *scrimmages.Participation) *ParticipationResponse {
	return &ParticipationResponse{
		ID:          p.ID,
		ScrimmageID: p.ScrimmageID,
		UserID:      p.UserID,
		Role:        p.Role,
		Status:      p.Status,
		JoinedAt:    p.JoinedAt,
	}
}

type EventResponse struct {
	ID                  string          `json:"id"`
	HostID              string          `json:"host_id"`
	GroupID             *string         `json:"group_id,omitempty"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	LocationName        string          `json:"location_name"`
	Address             string          `json:"address"`
	StartAt             time.Time       `json:"start_at"`
	EndAt               time.Time       `json:"end_at"`
	IsPublic            bool            `json:"is_public"`
	Tags                []string        `json:"tags"`
	Capacity            int             `json:"capacity"`
	GoingCount          int             `json:"going_count"`
	EntryFee            decimal.Decimal `json:"entry_fee"`
	Currency            string          `json:"currency"`
	AutoPayEnabled      bool            `json:"auto_pay_enabled"`
	OrganizerFeePercent decimal.Decimal `json:"organizer_fee_percent"`
	OrganizerFeeFlat    decimal.Decimal `json:"organizer_fee_flat"`
	Status              string          `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func newEventResponse(e *events.Event) *EventResponse {
	return &EventResponse{
		ID:                  e.ID,
		HostID:              e.HostID,
		GroupID:             e.GroupID,
		Title:               e.Title,
		Description:         e.Description,
		LocationName:        e.LocationName,
		Address:             e.Address,
		StartAt:             e.StartAt,
		EndAt:               e.EndAt,
		IsPublic:            e.IsPublic,
		Tags:                e.Tags,
		Capacity:            e.Capacity,
		GoingCount:          e.GoingCount,
		EntryFee:            e.EntryFee,
		Currency:            e.Currency,
		AutoPayEnabled:      e.AutoPayEnabled,
		OrganizerFeePercent: e.OrganizerFeePercent,
		OrganizerFeeFlat:    e.OrganizerFeeFlat,
		Status:              e.Status,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

type RSVPResponse struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newRSVPResponse(r *events.RSVP) *RSVPResponse {
	return &RSVPResponse{ID: r.ID, EventID: r.EventID, UserID: r.UserID, Status: r.Status, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

type CalendarItemResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	RefType   string    `json:"ref_type,omitempty"`
	RefID     string    `json:"ref_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newCalendarItemResponse(i *calendar.Item) *CalendarItemResponse {
	return &CalendarItemResponse{
		ID:        i.ID,
		Kind:      i.Kind,
		Title:     i.Title,
		StartAt:   i.StartAt,
		EndAt:     i.EndAt,
		RefType:   i.RefType,
		RefID:     i.RefID,
		CreatedAt: i.CreatedAt,
	}
}

type PlanResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Interval    string          `json:"interval"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

func newPlanResponse(p *memberships.Plan) *PlanResponse {
	return &PlanResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Interval:    p.Interval,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
}

type MembershipResponse struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	PlanID           string          `json:"plan_id"`
	Status           string          `json:"status"`
	StartedAt        time.Time       `json:"started_at"`
	CurrentPeriodEnd *time.Time      `json:"current_period_end,omitempty"`
	NextDueDate      *time.Time      `json:"next_due_date,omitempty"`
	NextDueAmount    decimal.Decimal `json:"next_due_amount"`
	AutoRenew        bool            `json:"auto_renew"`
	TransactionID    string          `json:"transaction_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

func newMembershipResponse(m *memberships.Membership) *MembershipResponse {
	return &MembershipResponse{
		ID:               m.ID,
		UserID:           m.UserID,
		PlanID:           m.PlanID,
		Status:           m.Status,
		StartedAt:        m.StartedAt,
		CurrentPeriodEnd: m.CurrentPeriodEnd,
		NextDueDate:      m.NextDueDate,
		NextDueAmount:    m.NextDueAmount,
		AutoRenew:        m.AutoRenew,
		CreatedAt:        m.CreatedAt,
	}
}

type TransactionResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	AppSource   string          `json:"app_source"`
	RelatedID   string          `json:"related_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Provider    string          `json:"provider"`
	Method      string          `json:"method"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
}

func newTransactionResponse(t *payments.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		AppSource:   t.AppSource,
		RelatedID:   t.RelatedID,
		Amount:      t.Amount,
		Currency:    t.Currency,
		Provider:    t.Provider,
		Method:      t.Method,
		Status:      t.Status,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		ProcessedAt: t.ProcessedAt,
	}
}

func newTransactionResponses(list []*payments.Transaction) []*TransactionResponse {
	resp := make([]*TransactionResponse, 0, len(list))
	for _, t := range list {
		resp = append(resp, newTransactionResponse(t))
	}
	return resp
}

type WalletResponse struct {
	Balance     decimal.Decimal  `json:"balance"`
	TotalEarned decimal.Decimal  `json:"total_earned"`
	TotalSpent  decimal.Decimal  `json:"total_spent"`
	Bonus       *decimal.Decimal `json:"bonus,omitempty"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func newWalletResponse(w *payments.Wallet) *WalletResponse {
	return &WalletResponse{
		Balance:     w.Balance,
		TotalEarned: w.TotalEarned,
		TotalSpent:  w.TotalSpent,
		UpdatedAt:   w.UpdatedAt,
	}
}

type CreditEntryResponse struct {
	ID           string          `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	Kind         string          `json:"kind"`
	Source       string          `json:"source"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	CreatedAt    time.Time       `json:"created_at"`
}

type BonusTierResponse struct {
	ID           string          `json:"id"`
	MinAmount    decimal.Decimal `json:"min_amount"`
	BonusPercent decimal.Decimal `json:"bonus_percent"`
	Active       bool            `json:"active"`
}

type WebhookResponse struct {
	Processed bool   `json:"processed"`
	EventID   string `json:"event_id,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	URL       string    `json:"url"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func newNotificationResponse(n *notifications.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Kind:      n.Kind,
		Title:     n.Title,
		Body:      n.Body,
		URL:       n.URL,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

type ThreadResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	ParticipantIDs []string  `json:"participant_ids"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func newThreadResponse(t *chat.Thread) *ThreadResponse {
	return &ThreadResponse{
		ID:             t.ID,
		Title:          t.Title,
		ParticipantIDs: t.ParticipantIDs,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

type MessageResponse struct {
	ID        string    `json:"id"`
	ThreadID  string    `json:"thread_id"`
	SenderID  string    `json:"sender_id"`
	Body      string    `json:"body"`
	ReadBy    []string  `json:"read_by"`
	CreatedAt time.Time `json:"created_at"`
}

func newMessageResponse(m *chat.Message) *MessageResponse {
	return &MessageResponse{
		ID:        m.ID,
		ThreadID:  m.ThreadID,
		SenderID:  m.SenderID,
		Body:      m.Body,
		ReadBy:    m.ReadBy,
		CreatedAt: m.CreatedAt,
	}
}

type ThreadSummaryResponse struct {
	Thread      *ThreadResponse  `json:"thread"`
	LastMessage *MessageResponse `json:"last_message,omitempty"`
	UnreadCount int64            `json:"unread_count"`
}
