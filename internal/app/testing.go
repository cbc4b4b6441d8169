//go:build integration
// +build integration

package app

import (
	"context"
	"net/url"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/cache"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/messaging"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/persistence"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/realtime"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/security"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/MGTheTrain/scrimhub/internal/pkg/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Test constants
const (
	TestPassword = "correct-horse-battery"
	TestCurrency = "THB"
	TestFrontend = "https://app.example.com"
)

// recordingMailer keeps every message sent during a test
type recordingMailer struct {
	mu       sync.Mutex
	messages []*notifications.Message
}

func (m *recordingMailer) Send(_ context.Context, msg *notifications.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

var linkPattern = regexp.MustCompile(`https?://\S+`)

// LastLink returns the query of the newest link mailed to address
func (m *recordingMailer) LastLink(t *testing.T, address string) url.Values {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].To != address {
			continue
		}
		if raw := linkPattern.FindString(m.messages[i].Text); raw != "" {
			u, err := url.Parse(raw)
			require.NoError(t, err)
			return u.Query()
		}
	}
	t.Fatalf("no link mailed to %s", address)
	return nil
}

var codePattern = regexp.MustCompile(`code is (\d+)`)

// LastCode returns the newest one-time code mailed to address
func (m *recordingMailer) LastCode(t *testing.T, address string) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].To != address {
			continue
		}
		if match := codePattern.FindStringSubmatch(m.messages[i].Text); match != nil {
			return match[1]
		}
	}
	t.Fatalf("no code mailed to %s", address)
	return ""
}

// Count returns how many messages were sent to address
func (m *recordingMailer) Count(address string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, msg := range m.messages {
		if msg.To == address {
			n++
		}
	}
	return n
}

// stubGateway records card refunds and fails with err when set
type stubGateway struct {
	mu      sync.Mutex
	refunds []string
	err     error
}

func (g *stubGateway) Refund(_ context.Context, providerRef string, _ decimal.Decimal, _ string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return "", g.err
	}
	g.refunds = append(g.refunds, providerRef)
	return "rfnd_" + providerRef, nil
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	*Services

	Tokens  accounts.TokenIssuer
	TOTP    accounts.TOTPProvider
	Mailer  *recordingMailer
	Gateway *stubGateway
	Hub     *realtime.Hub

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	authSettings := &config.AuthSettings{
		JWTSecret:       "integration-test-secret-0123456789",
		Issuer:          "scrimhub-test",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
		FrontendURL:     TestFrontend,
		TOTPIssuer:      "scrimhub-test",
	}
	authSettings.ApplyDefaults()

	tokens, err := security.NewJWTIssuer(authSettings)
	require.NoError(t, err, "Failed to create token issuer")

	hasher, err := security.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err, "Failed to create password hasher")

	totp, err := security.NewTOTPProvider(authSettings.TOTPIssuer)
	require.NoError(t, err, "Failed to create TOTP provider")

	hub := realtime.NewHub(nil, logger)
	t.Cleanup(hub.Close)

	mailer := &recordingMailer{}
	gateway := &stubGateway{}

	repos := &Repositories{
		Transactor:     dbContext.Transactor,
		Users:          dbContext.UserRepo,
		Policies:       dbContext.PolicyRepo,
		MFA:            dbContext.MFARepo,
		Credentials:    dbContext.CredentialRepo,
		Activity:       dbContext.ActivityRepo,
		Profiles:       dbContext.ProfileRepo,
		Follows:        dbContext.FollowRepo,
		Groups:         dbContext.GroupRepo,
		Members:        dbContext.MemberRepo,
		Categories:     dbContext.CategoryRepo,
		Types:          dbContext.TypeRepo,
		Scrimmages:     dbContext.ScrimmageRepo,
		Participations: dbContext.ParticipationRepo,
		Events:         dbContext.EventRepo,
		RSVPs:          dbContext.RSVPRepo,
		CalendarItems:  dbContext.CalendarRepo,
		Plans:          dbContext.PlanRepo,
		Memberships:    dbContext.MembershipRepo,
		Transactions:   dbContext.TransactionRepo,
		Wallets:        dbContext.WalletRepo,
		BonusTiers:     dbContext.BonusTierRepo,
		OrganizerFees:  dbContext.OrganizerFeeRepo,
		WebhookEvents:  dbContext.WebhookEventRepo,
		Notifications:  dbContext.NotificationRepo,
		Threads:        dbContext.ThreadRepo,
		Messages:       dbContext.MessageRepo,
	}
	providers := &Providers{
		Hasher:      hasher,
		Tokens:      tokens,
		TOTP:        totp,
		Secrets:     security.NewSecretGenerator(),
		RateLimiter: cache.NewMemoryRateLimiter(),
		Blacklist:   cache.NewMemoryTokenBlacklist(),
		Mailer:      mailer,
		Gateway:     gateway,
		Pusher:      hub,
		Publisher:   messaging.NewNoopPublisher(),
	}

	services, err := NewServices(repos, providers, authSettings, TestCurrency, logger)
	require.NoError(t, err, "Failed to create services")

	return &TestServices{
		Services:  services,
		Tokens:    tokens,
		TOTP:      totp,
		Mailer:    mailer,
		Gateway:   gateway,
		Hub:       hub,
		DBContext: dbContext,
	}
}

// CreateUser registers an account and marks its email verified
func (s *TestServices) CreateUser(t *testing.T, email string) *accounts.User {
	t.Helper()

	ctx := context.Background()
	user, err := s.Auth.Register(ctx, accounts.RegisterInput{
		Email:    email,
		Password: TestPassword,
		FullName: "Test " + email,
	})
	require.NoError(t, err)

	query := s.Mailer.LastLink(t, user.Email)
	require.NoError(t, s.Auth.VerifyEmail(ctx, user.ID, query.Get("token")))

	user, err = s.DBContext.UserRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	return user
}

// FundWallet tops up the user's wallet without bonus
func (s *TestServices) FundWallet(t *testing.T, userID string, amount int64) {
	t.Helper()
	_, err := s.Wallet.TopUp(context.Background(), userID, decimal.NewFromInt(amount), "test")
	require.NoError(t, err)
}
