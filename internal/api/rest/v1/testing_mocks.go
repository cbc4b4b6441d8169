//go:build unit
// +build unit

package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/app"
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
	"github.com/stretchr/testify/mock"
)

// returned reads the i-th return value, tolerating an untyped nil
func returned[T any](args mock.Arguments, i int) T {
	var zero T
	if args.Get(i) == nil {
		return zero
	}
	return args.Get(i).(T)
}

// MockAuthService is a mock implementation of accounts.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, input accounts.RegisterInput) (*accounts.User, error) {
	args := m.Called(ctx, input)
	return returned[*accounts.User](args, 0), args.Error(1)
}

func (m *MockAuthService) VerifyEmail(ctx context.Context, userID, token string) error {
	return m.Called(ctx, userID, token).Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string, client accounts.ClientInfo) (*accounts.LoginResult, error) {
	args := m.Called(ctx, email, password, client)
	return returned[*accounts.LoginResult](args, 0), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*accounts.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	return returned[*accounts.TokenPair](args, 0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (m *MockAuthService) Me(ctx context.Context, userID string) (*accounts.User, error) {
	args := m.Called(ctx, userID)
	return returned[*accounts.User](args, 0), args.Error(1)
}

func (m *MockAuthService) Reauthenticate(ctx context.Context, userID, password string) error {
	return m.Called(ctx, userID, password).Error(0)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	return m.Called(ctx, userID, oldPassword, newPassword).Error(0)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, userID, token, newPassword string) error {
	return m.Called(ctx, userID, token, newPassword).Error(0)
}

func (m *MockAuthService) RequestMagicLink(ctx context.Context, email string, client accounts.ClientInfo) error {
	return m.Called(ctx, email, client).Error(0)
}

func (m *MockAuthService) ConsumeMagicLink(ctx context.Context, token string, client accounts.ClientInfo) (*accounts.LoginResult, error) {
	args := m.Called(ctx, token, client)
	return returned[*accounts.LoginResult](args, 0), args.Error(1)
}

func (m *MockAuthService) RequestCode(ctx context.Context, email, channel, purpose string) error {
	return m.Called(ctx, email, channel, purpose).Error(0)
}

func (m *MockAuthService) VerifyCode(ctx context.Context, input accounts.VerifyCodeInput) (*accounts.LoginResult, error) {
	args := m.Called(ctx, input)
	return returned[*accounts.LoginResult](args, 0), args.Error(1)
}

// MockMFAService is a mock implementation of accounts.MFAService
type MockMFAService struct {
	mock.Mock
}

func (m *MockMFAService) BeginTOTPSetup(ctx context.Context, userID string) (*accounts.TOTPSetup, error) {
	args := m.Called(ctx, userID)
	return returned[*accounts.TOTPSetup](args, 0), args.Error(1)
}

func (m *MockMFAService) ConfirmTOTP(ctx context.Context, userID, code string) ([]string, error) {
	args := m.Called(ctx, userID, code)
	return returned[[]string](args, 0), args.Error(1)
}

func (m *MockMFAService) DisableMFA(ctx context.Context, userID, mfaType string) error {
	return m.Called(ctx, userID, mfaType).Error(0)
}

func (m *MockMFAService) RegenerateBackupCodes(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	return returned[[]string](args, 0), args.Error(1)
}

func (m *MockMFAService) VerifyMFA(ctx context.Context, mfaToken, mfaType, code string, client accounts.ClientInfo) (*accounts.LoginResult, error) {
	args := m.Called(ctx, mfaToken, mfaType, code, client)
	return returned[*accounts.LoginResult](args, 0), args.Error(1)
}

func (m *MockMFAService) ListMethods(ctx context.Context, userID string) ([]*accounts.MFAMethod, error) {
	args := m.Called(ctx, userID)
	return returned[[]*accounts.MFAMethod](args, 0), args.Error(1)
}

// MockAccountAdminService is a mock implementation of accounts.AccountAdminService
type MockAccountAdminService struct {
	mock.Mock
}

func (m *MockAccountAdminService) ApplyAccountAction(ctx context.Context, actorID, userID, action string) (*accounts.User, error) {
	args := m.Called(ctx, actorID, userID, action)
	return returned[*accounts.User](args, 0), args.Error(1)
}

func (m *MockAccountAdminService) CreateStaff(ctx context.Context, email, password, fullName string) (*accounts.User, error) {
	args := m.Called(ctx, email, password, fullName)
	return returned[*accounts.User](args, 0), args.Error(1)
}

func (m *MockAccountAdminService) GetPolicy(ctx context.Context) (*accounts.Policy, error) {
	args := m.Called(ctx)
	return returned[*accounts.Policy](args, 0), args.Error(1)
}

func (m *MockAccountAdminService) UpdatePolicy(ctx context.Context, policy *accounts.Policy) (*accounts.Policy, error) {
	args := m.Called(ctx, policy)
	return returned[*accounts.Policy](args, 0), args.Error(1)
}

func (m *MockAccountAdminService) GetLockoutPolicy(ctx context.Context) (*accounts.LockoutPolicy, error) {
	args := m.Called(ctx)
	return returned[*accounts.LockoutPolicy](args, 0), args.Error(1)
}

func (m *MockAccountAdminService) UpdateLockoutPolicy(ctx context.Context, policy *accounts.LockoutPolicy) (*accounts.LockoutPolicy, error) {
	args := m.Called(ctx, policy)
	return returned[*accounts.LockoutPolicy](args, 0), args.Error(1)
}

func (m *MockAccountAdminService) UpsertAuthPolicy(ctx context.Context, policy *accounts.AuthPolicy) (*accounts.AuthPolicy, error) {
	args := m.Called(ctx, policy)
	return returned[*accounts.AuthPolicy](args, 0), args.Error(1)
}

func (m *MockAccountAdminService) ListLoginActivity(ctx context.Context, userID string, limit int) ([]*accounts.LoginActivity, error) {
	args := m.Called(ctx, userID, limit)
	return returned[[]*accounts.LoginActivity](args, 0), args.Error(1)
}

func (m *MockAccountAdminService) ListRequestLogs(ctx context.Context, userID string, limit int) ([]*accounts.AuthRequestLog, error) {
	args := m.Called(ctx, userID, limit)
	return returned[[]*accounts.AuthRequestLog](args, 0), args.Error(1)
}

// MockTokenIssuer is a mock implementation of accounts.TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) IssuePair(user *accounts.User) (*accounts.TokenPair, error) {
	args := m.Called(user)
	return returned[*accounts.TokenPair](args, 0), args.Error(1)
}

func (m *MockTokenIssuer) IssueMFAToken(user *accounts.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Parse(token, purpose string) (*accounts.TokenClaims, error) {
	args := m.Called(token, purpose)
	return returned[*accounts.TokenClaims](args, 0), args.Error(1)
}

// MockProfileService is a mock implementation of profiles.ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, viewerID, userID string) (*profiles.Profile, error) {
	args := m.Called(ctx, viewerID, userID)
	return returned[*profiles.Profile](args, 0), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID string, patch *profiles.ProfilePatch) (*profiles.Profile, error) {
	args := m.Called(ctx, userID, patch)
	return returned[*profiles.Profile](args, 0), args.Error(1)
}

func (m *MockProfileService) ToggleFollow(ctx context.Context, followerID, userID string) (bool, error) {
	args := m.Called(ctx, followerID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileService) Followers(ctx context.Context, viewerID, userID string) ([]string, error) {
	args := m.Called(ctx, viewerID, userID)
	return returned[[]string](args, 0), args.Error(1)
}

func (m *MockProfileService) Following(ctx context.Context, viewerID, userID string) ([]string, error) {
	args := m.Called(ctx, viewerID, userID)
	return returned[[]string](args, 0), args.Error(1)
}

// MockGroupService is a mock implementation of groups.GroupService
type MockGroupService struct {
	mock.Mock
}

func (m *MockGroupService) Create(ctx context.Context, ownerID string, input groups.GroupInput) (*groups.Group, error) {
	args := m.Called(ctx, ownerID, input)
	return returned[*groups.Group](args, 0), args.Error(1)
}

func (m *MockGroupService) List(ctx context.Context) ([]*groups.Group, error) {
	args := m.Called(ctx)
	return returned[[]*groups.Group](args, 0), args.Error(1)
}

func (m *MockGroupService) GetByID(ctx context.Context, groupID string) (*groups.Group, error) {
	args := m.Called(ctx, groupID)
	return returned[*groups.Group](args, 0), args.Error(1)
}

func (m *MockGroupService) Update(ctx context.Context, actorID string, isStaff bool, groupID string, input groups.GroupInput) (*groups.Group, error) {
	args := m.Called(ctx, actorID, isStaff, groupID, input)
	return returned[*groups.Group](args, 0), args.Error(1)
}

func (m *MockGroupService) Delete(ctx context.Context, actorID string, isStaff bool, groupID string) error {
	return m.Called(ctx, actorID, isStaff, groupID).Error(0)
}

func (m *MockGroupService) Join(ctx context.Context, userID, groupID string) (*groups.GroupMember, error) {
	args := m.Called(ctx, userID, groupID)
	return returned[*groups.GroupMember](args, 0), args.Error(1)
}

func (m *MockGroupService) Leave(ctx context.Context, userID, groupID string) error {
	return m.Called(ctx, userID, groupID).Error(0)
}

func (m *MockGroupService) Members(ctx context.Context, groupID string) ([]*groups.GroupMember, error) {
	args := m.Called(ctx, groupID)
	return returned[[]*groups.GroupMember](args, 0), args.Error(1)
}

// MockScrimmageService is a mock implementation of scrimmages.ScrimmageService
type MockScrimmageService struct {
	mock.Mock
}

func (m *MockScrimmageService) Create(ctx context.Context, creatorID string, input scrimmages.ScrimmageInput) (*scrimmages.Scrimmage, error) {
	args := m.Called(ctx, creatorID, input)
	return returned[*scrimmages.Scrimmage](args, 0), args.Error(1)
}

func (m *MockScrimmageService) List(ctx context.Context, query *scrimmages.ScrimmageQuery) ([]*scrimmages.Scrimmage, error) {
	args := m.Called(ctx, query)
	return returned[[]*scrimmages.Scrimmage](args, 0), args.Error(1)
}

func (m *MockScrimmageService) GetByID(ctx context.Context, viewerID string, isStaff bool, scrimmageID string) (*scrimmages.Scrimmage, error) {
	args := m.Called(ctx, viewerID, isStaff, scrimmageID)
	return returned[*scrimmages.Scrimmage](args, 0), args.Error(1)
}

func (m *MockScrimmageService) Update(ctx context.Context, actorID string, isStaff bool, scrimmageID string, input scrimmages.ScrimmageInput) (*scrimmages.Scrimmage, error) {
	args := m.Called(ctx, actorID, isStaff, scrimmageID, input)
	return returned[*scrimmages.Scrimmage](args, 0), args.Error(1)
}

func (m *MockScrimmageService) Delete(ctx context.Context, actorID string, isStaff bool, scrimmageID string) error {
	return m.Called(ctx, actorID, isStaff, scrimmageID).Error(0)
}

func (m *MockScrimmageService) Mine(ctx context.Context, userID string) ([]*scrimmages.Scrimmage, error) {
	args := m.Called(ctx, userID)
	return returned[[]*scrimmages.Scrimmage](args, 0), args.Error(1)
}

func (m *MockScrimmageService) Upcoming(ctx context.Context, userID string) ([]*scrimmages.Scrimmage, error) {
	args := m.Called(ctx, userID)
	return returned[[]*scrimmages.Scrimmage](args, 0), args.Error(1)
}

func (m *MockScrimmageService) Join(ctx context.Context, userID, scrimmageID, role string) (*scrimmages.Participation, error) {
	args := m.Called(ctx, userID, scrimmageID, role)
	return returned[*scrimmages.Participation](args, 0), args.Error(1)
}

func (m *MockScrimmageService) Leave(ctx context.Context, userID, scrimmageID string) error {
	return m.Called(ctx, userID, scrimmageID).Error(0)
}

func (m *MockScrimmageService) Invite(ctx context.Context, actorID string, isStaff bool, scrimmageID, targetUserID string) (*scrimmages.Participation, error) {
	args := m.Called(ctx, actorID, isStaff, scrimmageID, targetUserID)
	return returned[*scrimmages.Participation](args, 0), args.Error(1)
}

func (m *MockScrimmageService) CheckIn(ctx context.Context, userID, scrimmageID string) (*scrimmages.Participation, error) {
	args := m.Called(ctx, userID, scrimmageID)
	return returned[*scrimmages.Participation](args, 0), args.Error(1)
}

func (m *MockScrimmageService) Roster(ctx context.Context, scrimmageID string) ([]*scrimmages.Participation, error) {
	args := m.Called(ctx, scrimmageID)
	return returned[[]*scrimmages.Participation](args, 0), args.Error(1)
}

func (m *MockScrimmageService) Cancel(ctx context.Context, actorID string, isStaff bool, scrimmageID string) ([]*payments.RefundResult, error) {
	args := m.Called(ctx, actorID, isStaff, scrimmageID)
	return returned[[]*payments.RefundResult](args, 0), args.Error(1)
}

func (m *MockScrimmageService) DistributePrizes(ctx context.Context, actorID string, isStaff bool, scrimmageID string, awards []payments.PrizeAward) ([]*payments.Transaction, error) {
	args := m.Called(ctx, actorID, isStaff, scrimmageID, awards)
	return returned[[]*payments.Transaction](args, 0), args.Error(1)
}

func (m *MockScrimmageService) CreateCategory(ctx context.Context, name string) (*scrimmages.Category, error) {
	args := m.Called(ctx, name)
	return returned[*scrimmages.Category](args, 0), args.Error(1)
}

func (m *MockScrimmageService) ListCategories(ctx context.Context) ([]*scrimmages.Category, error) {
	args := m.Called(ctx)
	return returned[[]*scrimmages.Category](args, 0), args.Error(1)
}

func (m *MockScrimmageService) CreateType(ctx context.Context, categoryID, name string, schema scrimmages.Schema) (*scrimmages.Type, error) {
	args := m.Called(ctx, categoryID, name, schema)
	return returned[*scrimmages.Type](args, 0), args.Error(1)
}

func (m *MockScrimmageService) ListTypes(ctx context.Context, categoryID string) ([]*scrimmages.Type, error) {
	args := m.Called(ctx, categoryID)
	return returned[[]*scrimmages.Type](args, 0), args.Error(1)
}

// MockEventService is a mock implementation of events.EventService
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) Create(ctx context.Context, hostID string, input events.EventInput) (*events.Event, error) {
	args := m.Called(ctx, hostID, input)
	return returned[*events.Event](args, 0), args.Error(1)
}

func (m *MockEventService) List(ctx context.Context, query *events.EventQuery) ([]*events.Event, error) {
	args := m.Called(ctx, query)
	return returned[[]*events.Event](args, 0), args.Error(1)
}

func (m *MockEventService) GetByID(ctx context.Context, viewerID string, isStaff bool, eventID string) (*events.Event, error) {
	args := m.Called(ctx, viewerID, isStaff, eventID)
	return returned[*events.Event](args, 0), args.Error(1)
}

func (m *MockEventService) Update(ctx context.Context, actorID string, isStaff bool, eventID string, input events.EventInput) (*events.Event, error) {
	args := m.Called(ctx, actorID, isStaff, eventID, input)
	return returned[*events.Event](args, 0), args.Error(1)
}

func (m *MockEventService) Delete(ctx context.Context, actorID string, isStaff bool, eventID string) error {
	return m.Called(ctx, actorID, isStaff, eventID).Error(0)
}

func (m *MockEventService) RSVP(ctx context.Context, userID, eventID, status string) (*events.RSVP, error) {
	args := m.Called(ctx, userID, eventID, status)
	return returned[*events.RSVP](args, 0), args.Error(1)
}

func (m *MockEventService) CheckIn(ctx context.Context, userID, eventID string) (*events.RSVP, error) {
	args := m.Called(ctx, userID, eventID)
	return returned[*events.RSVP](args, 0), args.Error(1)
}

func (m *MockEventService) Attendees(ctx context.Context, eventID string) ([]*events.RSVP, error) {
	args := m.Called(ctx, eventID)
	return returned[[]*events.RSVP](args, 0), args.Error(1)
}

func (m *MockEventService) Cancel(ctx context.Context, actorID string, isStaff bool, eventID string) ([]*payments.RefundResult, error) {
	args := m.Called(ctx, actorID, isStaff, eventID)
	return returned[[]*payments.RefundResult](args, 0), args.Error(1)
}

// MockCalendarService is a mock implementation of calendar.CalendarService
type MockCalendarService struct {
	mock.Mock
}

func (m *MockCalendarService) CreatePersonal(ctx context.Context, userID, title string, start, end time.Time) (*calendar.Item, error) {
	args := m.Called(ctx, userID, title, start, end)
	return returned[*calendar.Item](args, 0), args.Error(1)
}

func (m *MockCalendarService) AddGenerated(ctx context.Context, userID, title string, start, end time.Time, refType, refID string) (*calendar.Item, error) {
	args := m.Called(ctx, userID, title, start, end, refType, refID)
	return returned[*calendar.Item](args, 0), args.Error(1)
}

func (m *MockCalendarService) RemoveGenerated(ctx context.Context, userID, refType, refID string) error {
	return m.Called(ctx, userID, refType, refID).Error(0)
}

func (m *MockCalendarService) List(ctx context.Context, userID string) ([]*calendar.Item, error) {
	args := m.Called(ctx, userID)
	return returned[[]*calendar.Item](args, 0), args.Error(1)
}

func (m *MockCalendarService) Delete(ctx context.Context, userID, itemID string) error {
	return m.Called(ctx, userID, itemID).Error(0)
}

func (m *MockCalendarService) Feed(ctx context.Context, userID string, start, end time.Time) ([]*calendar.FeedItem, error) {
	args := m.Called(ctx, userID, start, end)
	return returned[[]*calendar.FeedItem](args, 0), args.Error(1)
}

// MockMembershipService is a mock implementation of memberships.MembershipService
type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) ListPlans(ctx context.Context) ([]*memberships.Plan, error) {
	args := m.Called(ctx)
	return returned[[]*memberships.Plan](args, 0), args.Error(1)
}

func (m *MockMembershipService) CreatePlan(ctx context.Context, input memberships.PlanInput) (*memberships.Plan, error) {
	args := m.Called(ctx, input)
	return returned[*memberships.Plan](args, 0), args.Error(1)
}

func (m *MockMembershipService) UpdatePlan(ctx context.Context, planID string, input memberships.PlanInput) (*memberships.Plan, error) {
	args := m.Called(ctx, planID, input)
	return returned[*memberships.Plan](args, 0), args.Error(1)
}

func (m *MockMembershipService) Subscribe(ctx context.Context, userID, planID string, payWithCredits bool) (*memberships.SubscribeResult, error) {
	args := m.Called(ctx, userID, planID, payWithCredits)
	return returned[*memberships.SubscribeResult](args, 0), args.Error(1)
}

func (m *MockMembershipService) Cancel(ctx context.Context, userID, membershipID string) (*memberships.Membership, error) {
	args := m.Called(ctx, userID, membershipID)
	return returned[*memberships.Membership](args, 0), args.Error(1)
}

func (m *MockMembershipService) Due(ctx context.Context, userID string) (*memberships.Membership, error) {
	args := m.Called(ctx, userID)
	return returned[*memberships.Membership](args, 0), args.Error(1)
}

func (m *MockMembershipService) ListMine(ctx context.Context, userID string) ([]*memberships.Membership, error) {
	args := m.Called(ctx, userID)
	return returned[[]*memberships.Membership](args, 0), args.Error(1)
}

// MockWalletService is a mock implementation of payments.WalletService
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) Balance(ctx context.Context, userID string) (*payments.Wallet, error) {
	args := m.Called(ctx, userID)
	return returned[*payments.Wallet](args, 0), args.Error(1)
}

func (m *MockWalletService) TopUp(ctx context.Context, userID string, amount decimal.Decimal, source string) (*payments.Wallet, error) {
	args := m.Called(ctx, userID, amount, source)
	return returned[*payments.Wallet](args, 0), args.Error(1)
}

func (m *MockWalletService) TopUpWithBonus(ctx context.Context, userID string, amount decimal.Decimal, source string) (*payments.Wallet, decimal.Decimal, error) {
	args := m.Called(ctx, userID, amount, source)
	return returned[*payments.Wallet](args, 0), returned[decimal.Decimal](args, 1), args.Error(2)
}

func (m *MockWalletService) Spend(ctx context.Context, userID string, amount decimal.Decimal, source string) (*payments.Wallet, error) {
	args := m.Called(ctx, userID, amount, source)
	return returned[*payments.Wallet](args, 0), args.Error(1)
}

func (m *MockWalletService) History(ctx context.Context, userID string, limit int) ([]*payments.CreditEntry, error) {
	args := m.Called(ctx, userID, limit)
	return returned[[]*payments.CreditEntry](args, 0), args.Error(1)
}

// MockPaymentService is a mock implementation of payments.PaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreateIntent(ctx context.Context, userID string, input payments.IntentInput) (*payments.Transaction, error) {
	args := m.Called(ctx, userID, input)
	return returned[*payments.Transaction](args, 0), args.Error(1)
}

func (m *MockPaymentService) ListMine(ctx context.Context, userID string) ([]*payments.Transaction, error) {
	args := m.Called(ctx, userID)
	return returned[[]*payments.Transaction](args, 0), args.Error(1)
}

func (m *MockPaymentService) GetByID(ctx context.Context, userID string, isStaff bool, transactionID string) (*payments.Transaction, error) {
	args := m.Called(ctx, userID, isStaff, transactionID)
	return returned[*payments.Transaction](args, 0), args.Error(1)
}

func (m *MockPaymentService) AutoPay(ctx context.Context, req *payments.AutoPayRequest) (*payments.AutoPayResult, error) {
	args := m.Called(ctx, req)
	return returned[*payments.AutoPayResult](args, 0), args.Error(1)
}

func (m *MockPaymentService) SettleOrganizerFees(ctx context.Context, appSource, relatedID string) (int, error) {
	args := m.Called(ctx, appSource, relatedID)
	return args.Int(0), args.Error(1)
}

func (m *MockPaymentService) RefundCredits(ctx context.Context, transactionID, reason string) (*payments.Transaction, error) {
	args := m.Called(ctx, transactionID, reason)
	return returned[*payments.Transaction](args, 0), args.Error(1)
}

func (m *MockPaymentService) RefundCard(ctx context.Context, transactionID, reason string) (*payments.Transaction, error) {
	args := m.Called(ctx, transactionID, reason)
	return returned[*payments.Transaction](args, 0), args.Error(1)
}

func (m *MockPaymentService) BulkRefund(ctx context.Context, appSource, relatedID, reason string) ([]*payments.RefundResult, error) {
	args := m.Called(ctx, appSource, relatedID, reason)
	return returned[[]*payments.RefundResult](args, 0), args.Error(1)
}

func (m *MockPaymentService) DistributePrizePool(ctx context.Context, appSource, relatedID string, pool decimal.Decimal, awards []payments.PrizeAward) ([]*payments.Transaction, error) {
	args := m.Called(ctx, appSource, relatedID, pool, awards)
	return returned[[]*payments.Transaction](args, 0), args.Error(1)
}

func (m *MockPaymentService) UnifiedHistory(ctx context.Context, userID string) ([]*payments.HistoryItem, error) {
	args := m.Called(ctx, userID)
	return returned[[]*payments.HistoryItem](args, 0), args.Error(1)
}

func (m *MockPaymentService) AddBonusTier(ctx context.Context, minAmount, bonusPercent decimal.Decimal) (*payments.BonusTier, error) {
	args := m.Called(ctx, minAmount, bonusPercent)
	return returned[*payments.BonusTier](args, 0), args.Error(1)
}

func (m *MockPaymentService) ListBonusTiers(ctx context.Context) ([]*payments.BonusTier, error) {
	args := m.Called(ctx)
	return returned[[]*payments.BonusTier](args, 0), args.Error(1)
}

// MockWebhookService is a mock implementation of payments.WebhookService
type MockWebhookService struct {
	mock.Mock
}

func (m *MockWebhookService) Handle(ctx context.Context, provider string, raw []byte) (*payments.NormalizedEvent, bool, error) {
	args := m.Called(ctx, provider, raw)
	return returned[*payments.NormalizedEvent](args, 0), args.Bool(1), args.Error(2)
}

// MockNotificationService is a mock implementation of notifications.NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, userID, kind, title, body, url string) (*notifications.Notification, error) {
	args := m.Called(ctx, userID, kind, title, body, url)
	return returned[*notifications.Notification](args, 0), args.Error(1)
}

func (m *MockNotificationService) NotifyStaff(ctx context.Context, kind, title, body, url string) error {
	return m.Called(ctx, kind, title, body, url).Error(0)
}

func (m *MockNotificationService) List(ctx context.Context, userID string, unreadOnly bool) ([]*notifications.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly)
	return returned[[]*notifications.Notification](args, 0), args.Error(1)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return returned[int64](args, 0), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	return m.Called(ctx, userID, notificationID).Error(0)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return returned[int64](args, 0), args.Error(1)
}

func (m *MockNotificationService) Delete(ctx context.Context, userID, notificationID string) error {
	return m.Called(ctx, userID, notificationID).Error(0)
}

// MockChatService is a mock implementation of chat.ChatService
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) CreateThread(ctx context.Context, creatorID, title string, participantIDs []string) (*chat.Thread, error) {
	args := m.Called(ctx, creatorID, title, participantIDs)
	return returned[*chat.Thread](args, 0), args.Error(1)
}

func (m *MockChatService) ListThreads(ctx context.Context, userID string) ([]*chat.ThreadSummary, error) {
	args := m.Called(ctx, userID)
	return returned[[]*chat.ThreadSummary](args, 0), args.Error(1)
}

func (m *MockChatService) GetThread(ctx context.Context, userID, threadID string) (*chat.Thread, error) {
	args := m.Called(ctx, userID, threadID)
	return returned[*chat.Thread](args, 0), args.Error(1)
}

func (m *MockChatService) AddParticipant(ctx context.Context, userID, threadID, participantID string) (*chat.Thread, error) {
	args := m.Called(ctx, userID, threadID, participantID)
	return returned[*chat.Thread](args, 0), args.Error(1)
}

func (m *MockChatService) RemoveParticipant(ctx context.Context, userID, threadID, participantID string) (*chat.Thread, error) {
	args := m.Called(ctx, userID, threadID, participantID)
	return returned[*chat.Thread](args, 0), args.Error(1)
}

func (m *MockChatService) PostMessage(ctx context.Context, userID, threadID, body string) (*chat.Message, error) {
	args := m.Called(ctx, userID, threadID, body)
	return returned[*chat.Message](args, 0), args.Error(1)
}

func (m *MockChatService) ListMessages(ctx context.Context, userID, threadID string) ([]*chat.Message, error) {
	args := m.Called(ctx, userID, threadID)
	return returned[[]*chat.Message](args, 0), args.Error(1)
}

func (m *MockChatService) MarkRead(ctx context.Context, userID, messageID string) error {
	return m.Called(ctx, userID, messageID).Error(0)
}

func (m *MockChatService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return returned[int64](args, 0), args.Error(1)
}

// mockServices bundles one mock per service for route level tests
type mockServices struct {
	auth          *MockAuthService
	mfa           *MockMFAService
	admin         *MockAccountAdminService
	profiles      *MockProfileService
	groups        *MockGroupService
	scrimmages    *MockScrimmageService
	events        *MockEventService
	calendar      *MockCalendarService
	memberships   *MockMembershipService
	wallet        *MockWalletService
	payments      *MockPaymentService
	webhooks      *MockWebhookService
	notifications *MockNotificationService
	chat          *MockChatService
}

func newMockServices() *mockServices {
	return &mockServices{
		auth:          new(MockAuthService),
		mfa:           new(MockMFAService),
		admin:         new(MockAccountAdminService),
		profiles:      new(MockProfileService),
		groups:        new(MockGroupService),
		scrimmages:    new(MockScrimmageService),
		events:        new(MockEventService),
		calendar:      new(MockCalendarService),
		memberships:   new(MockMembershipService),
		wallet:        new(MockWalletService),
		payments:      new(MockPaymentService),
		webhooks:      new(MockWebhookService),
		notifications: new(MockNotificationService),
		chat:          new(MockChatService),
	}
}

func (m *mockServices) services() *app.Services {
	return &app.Services{
		Auth:          m.auth,
		MFA:           m.mfa,
		AccountAdmin:  m.admin,
		Profiles:      m.profiles,
		Groups:        m.groups,
		Scrimmages:    m.scrimmages,
		Events:        m.events,
		Calendar:      m.calendar,
		Memberships:   m.memberships,
		Wallet:        m.wallet,
		Payments:      m.payments,
		Webhooks:      m.webhooks,
		Notifications: m.notifications,
		Chat:          m.chat,
	}
}

// MockRealtimeServer records upgrade attempts
type MockRealtimeServer struct {
	mock.Mock
}

func (m *MockRealtimeServer) Serve(w http.ResponseWriter, r *http.Request, userID string) error {
	return m.Called(w, r, userID).Error(0)
}
