//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
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
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/security"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/MGTheTrain/scrimhub/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestEncryptionKey seals MFA secrets in test databases
const TestEncryptionKey = "integration-test-encryption-key"

// TestContext holds test database and repositories
type TestContext struct {
	DB                *gorm.DB
	Transactor        payments.Transactor
	UserRepo          accounts.UserRepository
	PolicyRepo        accounts.PolicyRepository
	MFARepo           accounts.MFARepository
	CredentialRepo    accounts.CredentialRepository
	ActivityRepo      accounts.ActivityRepository
	ProfileRepo       profiles.ProfileRepository
	FollowRepo        profiles.FollowRepository
	GroupRepo         groups.GroupRepository
	MemberRepo        groups.MemberRepository
	CategoryRepo      scrimmages.CategoryRepository
	TypeRepo          scrimmages.TypeRepository
	ScrimmageRepo     scrimmages.ScrimmageRepository
	ParticipationRepo scrimmages.ParticipationRepository
	EventRepo         events.EventRepository
	RSVPRepo          events.RSVPRepository
	CalendarRepo      calendar.ItemRepository
	PlanRepo          memberships.PlanRepository
	MembershipRepo    memberships.MembershipRepository
	TransactionRepo   payments.TransactionRepository
	WalletRepo        payments.WalletRepository
	BonusTierRepo     payments.BonusTierRepository
	OrganizerFeeRepo  payments.OrganizerFeeRepository
	WebhookEventRepo  payments.WebhookEventRepository
	NotificationRepo  notifications.NotificationRepository
	ThreadRepo        chat.ThreadRepository
	MessageRepo       chat.MessageRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	return NewTestContext(t, db)
}

// NewTestContext builds every repository on top of an already migrated database
func NewTestContext(t *testing.T, db *gorm.DB) *TestContext {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	must := func(err error) {
		require.NoError(t, err, "Failed to create repository")
	}

	tc := &TestContext{DB: db, Transactor: NewGormTransactor(db)}
	var err error

	tc.UserRepo, err = NewGormUserRepository(db, log)
	must(err)
	tc.PolicyRepo, err = NewGormPolicyRepository(db, log)
	must(err)
	sealer, err := security.NewAESSealer(TestEncryptionKey)
	must(err)
	tc.MFARepo, err = NewGormMFARepository(db, sealer, log)
	must(err)
	tc.CredentialRepo, err = NewGormCredentialRepository(db, log)
	must(err)
	tc.ActivityRepo, err = NewGormActivityRepository(db, log)
	must(err)
	tc.ProfileRepo, err = NewGormProfileRepository(db, log)
	must(err)
	tc.FollowRepo, err = NewGormFollowRepository(db, log)
	must(err)
	tc.GroupRepo, err = NewGormGroupRepository(db, log)
	must(err)
	tc.MemberRepo, err = NewGormMemberRepository(db, log)
	must(err)
	tc.CategoryRepo, err = NewGormCategoryRepository(db, log)
	must(err)
	tc.TypeRepo, err = NewGormTypeRepository(db, log)
	must(err)
	tc.ScrimmageRepo, err = NewGormScrimmageRepository(db, log)
	must(err)
	tc.ParticipationRepo, err = NewGormParticipationRepository(db, log)
	must(err)
	tc.EventRepo, err = NewGormEventRepository(db, log)
	must(err)
	tc.RSVPRepo, err = NewGormRSVPRepository(db, log)
	must(err)
	tc.CalendarRepo, err = NewGormCalendarRepository(db, log)
	must(err)
	tc.PlanRepo, err = NewGormPlanRepository(db, log)
	must(err)
	tc.MembershipRepo, err = NewGormMembershipRepository(db, log)
	must(err)
	tc.TransactionRepo, err = NewGormTransactionRepository(db, log)
	must(err)
	tc.WalletRepo, err = NewGormWalletRepository(db, log)
	must(err)
	tc.BonusTierRepo, err = NewGormBonusTierRepository(db, log)
	must(err)
	tc.OrganizerFeeRepo, err = NewGormOrganizerFeeRepository(db, log)
	must(err)
	tc.WebhookEventRepo, err = NewGormWebhookEventRepository(db, log)
	must(err)
	tc.NotificationRepo, err = NewGormNotificationRepository(db, log)
	must(err)
	tc.ThreadRepo, err = NewGormThreadRepository(db, log)
	must(err)
	tc.MessageRepo, err = NewGormMessageRepository(db, log)
	must(err)

	return tc
}

// CreateTestUser creates a verified, active user with default values
func CreateTestUser(t *testing.T, email string) *accounts.User {
	t.Helper()

	if email == "" {
		email = uuid.NewString()[:8] + "@example.com"
	}
	return &accounts.User{
		ID:              uuid.NewString(),
		Email:           accounts.NormalizeEmail(email),
		PasswordHash:    "$2a$10$abcdefghijklmnopqrstuv",
		FullName:        "Test User",
		IsActive:        true,
		IsEmailVerified: true,
		CreatedAt:       time.Now().UTC(),
	}
}

// CreateTestScrimmage creates a published public scrimmage starting tomorrow
func CreateTestScrimmage(t *testing.T, creatorID, typeID, categoryID string) *scrimmages.Scrimmage {
	t.Helper()

	id := uuid.NewString()
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	return &scrimmages.Scrimmage{
		ID:                  id,
		CreatorID:           creatorID,
		Title:               "Test scrimmage",
		Slug:                "test-scrimmage-" + id[:8],
		TypeID:              typeID,
		CategoryID:          categoryID,
		CustomFields:        map[string]interface{}{},
		StartAt:             start,
		EndAt:               start.Add(2 * time.Hour),
		MaxParticipants:     scrimmages.DefaultMaxParticipants,
		Visibility:          scrimmages.VisibilityPublic,
		EntryFee:            decimal.Zero,
		Currency:            "THB",
		OrganizerFeePercent: decimal.Zero,
		OrganizerFeeFlat:    decimal.Zero,
		PrizePoolAmount:     decimal.Zero,
		Status:              scrimmages.StatusPublished,
		CreatedAt:           time.Now().UTC(),
		UpdatedAt:           time.Now().UTC(),
	}
}

// CreateTestEvent creates a published public event starting tomorrow
func CreateTestEvent(t *testing.T, hostID string, capacity int) *events.Event {
	t.Helper()

	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	return &events.Event{
		ID:                  uuid.NewString(),
		HostID:              hostID,
		Title:               "Test event",
		StartAt:             start,
		EndAt:               start.Add(3 * time.Hour),
		IsPublic:            true,
		Capacity:            capacity,
		EntryFee:            decimal.Zero,
		Currency:            "THB",
		OrganizerFeePercent: decimal.Zero,
		OrganizerFeeFlat:    decimal.Zero,
		Status:              events.StatusPublished,
		CreatedAt:           time.Now().UTC(),
		UpdatedAt:           time.Now().UTC(),
	}
}

// CreateTestTransaction creates a succeeded credits transaction
func CreateTestTransaction(t *testing.T, userID, appSource, relatedID string, amount decimal.Decimal) *payments.Transaction {
	t.Helper()

	now := time.Now().UTC()
	return &payments.Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		AppSource:   appSource,
		RelatedID:   relatedID,
		Amount:      amount,
		Currency:    "THB",
		Provider:    payments.ProviderCredits,
		Method:      payments.MethodCredits,
		Status:      payments.StatusSucceeded,
		Description: "test",
		CreatedAt:   now,
		ProcessedAt: &now,
	}
}
