package app

import (
	"fmt"

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
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"
)

// Repositories holds every store the services read and write
type Repositories struct {
	Transactor     payments.Transactor
	Users          accounts.UserRepository
	Policies       accounts.PolicyRepository
	MFA            accounts.MFARepository
	Credentials    accounts.CredentialRepository
	Activity       accounts.ActivityRepository
	Profiles       profiles.ProfileRepository
	Follows        profiles.FollowRepository
	Groups         groups.GroupRepository
	Members        groups.MemberRepository
	Categories     scrimmages.CategoryRepository
	Types          scrimmages.TypeRepository
	Scrimmages     scrimmages.ScrimmageRepository
	Participations scrimmages.ParticipationRepository
	Events         events.EventRepository
	RSVPs          events.RSVPRepository
	CalendarItems  calendar.ItemRepository
	Plans          memberships.PlanRepository
	Memberships    memberships.MembershipRepository
	Transactions   payments.TransactionRepository
	Wallets        payments.WalletRepository
	BonusTiers     payments.BonusTierRepository
	OrganizerFees  payments.OrganizerFeeRepository
	WebhookEvents  payments.WebhookEventRepository
	Notifications  notifications.NotificationRepository
	Threads        chat.ThreadRepository
	Messages       chat.MessageRepository
}

// Providers holds the infrastructure adapters. Pusher and Publisher may be nil
type Providers struct {
	Hasher      accounts.PasswordHasher
	Tokens      accounts.TokenIssuer
	TOTP        accounts.TOTPProvider
	Secrets     accounts.SecretGenerator
	RateLimiter accounts.RateLimiter
	Blacklist   accounts.TokenBlacklist
	Mailer      notifications.Mailer
	Gateway     payments.CardGateway
	Pusher      notifications.Pusher
	Publisher   notifications.EventPublisher
}

// Services holds every application service
type Services struct {
	Auth          accounts.AuthService
	MFA           accounts.MFAService
	AccountAdmin  accounts.AccountAdminService
	Profiles      profiles.ProfileService
	Groups        groups.GroupService
	Scrimmages    scrimmages.ScrimmageService
	Events        events.EventService
	Calendar      calendar.CalendarService
	Memberships   memberships.MembershipService
	Wallet        payments.WalletService
	Payments      payments.PaymentService
	Webhooks      payments.WebhookService
	Notifications notifications.NotificationService
	Chat          chat.ChatService
}

// NewServices wires all application services on top of repos and providers
func NewServices(repos *Repositories, providers *Providers, auth *config.AuthSettings, defaultCurrency string, logger logger.Logger) (*Services, error) {
	s := &Services{}
	var err error

	s.Notifications, err = NewNotificationService(repos.Notifications, NewUserDirectory(repos.Users), providers.Pusher, providers.Publisher, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}

	accountDeps := AccountDeps{
		Users:       repos.Users,
		Policies:    repos.Policies,
		MFA:         repos.MFA,
		Credentials: repos.Credentials,
		Activity:    repos.Activity,
		Hasher:      providers.Hasher,
		Tokens:      providers.Tokens,
		TOTP:        providers.TOTP,
		Secrets:     providers.Secrets,
		RateLimiter: providers.RateLimiter,
		Blacklist:   providers.Blacklist,
		Mailer:      providers.Mailer,
		Notifier:    s.Notifications,
		Settings:    auth,
	}
	if s.Auth, err = NewAuthService(accountDeps, logger); err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	if s.MFA, err = NewMFAService(accountDeps, logger); err != nil {
		return nil, fmt.Errorf("failed to create MFA service: %w", err)
	}
	if s.AccountAdmin, err = NewAccountAdminService(accountDeps, logger); err != nil {
		return nil, fmt.Errorf("failed to create account admin service: %w", err)
	}

	if s.Profiles, err = NewProfileService(repos.Profiles, repos.Follows, repos.Users, s.Notifications, logger); err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}
	if s.Groups, err = NewGroupService(repos.Groups, repos.Members, repos.Transactor, logger); err != nil {
		return nil, fmt.Errorf("failed to create group service: %w", err)
	}
	if s.Calendar, err = NewCalendarService(repos.CalendarItems, logger); err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	if s.Chat, err = NewChatService(repos.Threads, repos.Messages, s.Notifications, providers.Pusher, logger); err != nil {
		return nil, fmt.Errorf("failed to create chat service: %w", err)
	}

	if s.Wallet, err = NewWalletService(repos.Wallets, repos.BonusTiers, repos.Transactor, logger); err != nil {
		return nil, fmt.Errorf("failed to create wallet service: %w", err)
	}
	s.Payments, err = NewPaymentService(repos.Transactions, repos.Wallets, repos.OrganizerFees, repos.BonusTiers,
		providers.Gateway, repos.Transactor, s.Notifications, defaultCurrency, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment service: %w", err)
	}
	s.Memberships, err = NewMembershipService(repos.Plans, repos.Memberships, repos.Wallets, repos.Transactions,
		repos.Transactor, s.Notifications, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create membership service: %w", err)
	}
	activator := NewMembershipActivator(repos.Plans, repos.Memberships, logger)
	s.Webhooks, err = NewWebhookService(repos.WebhookEvents, repos.Transactions, s.Wallet, s.Payments, activator,
		repos.Transactor, s.Notifications, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook service: %w", err)
	}

	s.Scrimmages, err = NewScrimmageService(ScrimmageDeps{
		Scrimmages:      repos.Scrimmages,
		Participations:  repos.Participations,
		Categories:      repos.Categories,
		Types:           repos.Types,
		Groups:          repos.Groups,
		Members:         repos.Members,
		Threads:         repos.Threads,
		Calendar:        s.Calendar,
		Payments:        s.Payments,
		Notifier:        s.Notifications,
		Transactor:      repos.Transactor,
		DefaultCurrency: defaultCurrency,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create scrimmage service: %w", err)
	}
	s.Events, err = NewEventService(repos.Events, repos.RSVPs, s.Calendar, s.Payments, s.Notifications,
		repos.Transactor, defaultCurrency, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create event service: %w", err)
	}

	return s, nil
}
