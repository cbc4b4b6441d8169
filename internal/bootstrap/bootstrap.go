// Package bootstrap wires the database, infrastructure adapters and application
// services from a RestConfig. The REST server, the CLI and the notification worker
// share it.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/scrimhub/internal/app"
	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/cache"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/gateway"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/mailer"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/messaging"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/persistence"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/realtime"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/security"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"gorm.io/gorm"
)

// Runtime is a fully wired application together with the resources it holds
type Runtime struct {
	DB       *gorm.DB
	Repos    *app.Repositories
	Services *app.Services
	Hub      *realtime.Hub
	Tokens   accounts.TokenIssuer

	closers []func() error
}

// OpenDatabase connects and migrates the configured database
func OpenDatabase(settings config.DatabaseSettings, log logger.Logger) (*gorm.DB, error) {
	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	if err := persistence.Migrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}
	log.Info("Database migrations completed successfully")
	return db, nil
}

// NewRepositories builds every gorm repository on db
func NewRepositories(db *gorm.DB, sealer accounts.SecretSealer, log logger.Logger) (*app.Repositories, error) {
	repos := &app.Repositories{Transactor: persistence.NewGormTransactor(db)}

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	var err error
	repos.Users, err = persistence.NewGormUserRepository(db, log)
	collect(err)
	repos.Policies, err = persistence.NewGormPolicyRepository(db, log)
	collect(err)
	repos.MFA, err = persistence.NewGormMFARepository(db, sealer, log)
	collect(err)
	repos.Credentials, err = persistence.NewGormCredentialRepository(db, log)
	collect(err)
	repos.Activity, err = persistence.NewGormActivityRepository(db, log)
	collect(err)
	repos.Profiles, err = persistence.NewGormProfileRepository(db, log)
	collect(err)
	repos.Follows, err = persistence.NewGormFollowRepository(db, log)
	collect(err)
	repos.Groups, err = persistence.NewGormGroupRepository(db, log)
	collect(err)
	repos.Members, err = persistence.NewGormMemberRepository(db, log)
	collect(err)
	repos.Categories, err = persistence.NewGormCategoryRepository(db, log)
	collect(err)
	repos.Types, err = persistence.NewGormTypeRepository(db, log)
	collect(err)
	repos.Scrimmages, err = persistence.NewGormScrimmageRepository(db, log)
	collect(err)
	repos.Participations, err = persistence.NewGormParticipationRepository(db, log)
	collect(err)
	repos.Events, err = persistence.NewGormEventRepository(db, log)
	collect(err)
	repos.RSVPs, err = persistence.NewGormRSVPRepository(db, log)
	collect(err)
	repos.CalendarItems, err = persistence.NewGormCalendarRepository(db, log)
	collect(err)
	repos.Plans, err = persistence.NewGormPlanRepository(db, log)
	collect(err)
	repos.Memberships, err = persistence.NewGormMembershipRepository(db, log)
	collect(err)
	repos.Transactions, err = persistence.NewGormTransactionRepository(db, log)
	collect(err)
	repos.Wallets, err = persistence.NewGormWalletRepository(db, log)
	collect(err)
	repos.BonusTiers, err = persistence.NewGormBonusTierRepository(db, log)
	collect(err)
	repos.OrganizerFees, err = persistence.NewGormOrganizerFeeRepository(db, log)
	collect(err)
	repos.WebhookEvents, err = persistence.NewGormWebhookEventRepository(db, log)
	collect(err)
	repos.Notifications, err = persistence.NewGormNotificationRepository(db, log)
	collect(err)
	repos.Threads, err = persistence.NewGormThreadRepository(db, log)
	collect(err)
	repos.Messages, err = persistence.NewGormMessageRepository(db, log)
	collect(err)

	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to create repositories: %w", errors.Join(errs...))
	}
	return repos, nil
}

// New connects every backend named by cfg and wires the application services.
// Close must be called to release connections.
func New(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*Runtime, error) {
	rt := &Runtime{}
	ok := false
	defer func() {
		if !ok {
			_ = rt.Close()
		}
	}()

	db, err := OpenDatabase(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	rt.DB = db
	rt.closers = append(rt.closers, func() error { return persistence.CloseDB(db) })

	sealer, err := security.NewAESSealer(cfg.Auth.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create secret sealer: %w", err)
	}
	if rt.Repos, err = NewRepositories(db, sealer, log); err != nil {
		return nil, err
	}

	providers, err := rt.newProviders(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	rt.Services, err = app.NewServices(rt.Repos, providers, &cfg.Auth, cfg.Payments.DefaultCurrency, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	log.Info("Application services initialized successfully")
	ok = true
	return rt, nil
}

func (rt *Runtime) newProviders(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*app.Providers, error) {
	tokens, err := security.NewJWTIssuer(&cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}
	rt.Tokens = tokens
	hasher, err := security.NewBcryptHasher(0)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}
	totp, err := security.NewTOTPProvider(cfg.Auth.TOTPIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create TOTP provider: %w", err)
	}

	stores, err := cache.NewStores(ctx, &cfg.Cache, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	rt.closers = append(rt.closers, stores.Close)

	publisher, err := messaging.NewPublisher(&cfg.Broker, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize publisher: %w", err)
	}
	rt.closers = append(rt.closers, publisher.Close)

	mail, err := mailer.NewMailer(&cfg.Mail, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}

	cardGateway, err := gateway.NewCardGateway(&cfg.Payments, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize card gateway: %w", err)
	}

	rt.Hub = realtime.NewHub(cfg.AllowedOrigins, log)
	rt.closers = append(rt.closers, func() error {
		rt.Hub.Close()
		return nil
	})

	return &app.Providers{
		Hasher:      hasher,
		Tokens:      tokens,
		TOTP:        totp,
		Secrets:     security.NewSecretGenerator(),
		RateLimiter: stores.RateLimiter,
		Blacklist:   stores.Blacklist,
		Mailer:      mail,
		Gateway:     cardGateway,
		Pusher:      rt.Hub,
		Publisher:   publisher,
	}, nil
}

// Close releases resources in reverse order of acquisition
func (rt *Runtime) Close() error {
	var errs []error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	rt.closers = nil
	return errors.Join(errs...)
}
