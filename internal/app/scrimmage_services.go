package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/calendar"
	"github.com/MGTheTrain/scrimhub/internal/domain/chat"
	"github.com/MGTheTrain/scrimhub/internal/domain/groups"
	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/MGTheTrain/scrimhub/internal/domain/scrimmages"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"github.com/google/uuid"
)

// ScrimmageDeps collects what the scrimmage service needs
type ScrimmageDeps struct {
	Scrimmages      scrimmages.ScrimmageRepository
	Participations  scrimmages.ParticipationRepository
	Categories      scrimmages.CategoryRepository
	Types           scrimmages.TypeRepository
	Groups          groups.GroupRepository
	Members         groups.MemberRepository
	Threads         chat.ThreadRepository
	Calendar        calendar.CalendarService
	Payments        payments.PaymentService
	Notifier        notifications.Notifier
	Transactor      payments.Transactor
	DefaultCurrency string
}

// scrimmageService implements the ScrimmageService interface
type scrimmageService struct {
	ScrimmageDeps
	logger logger.Logger
}

// NewScrimmageService creates a new instance of ScrimmageService
func NewScrimmageService(deps ScrimmageDeps, logger logger.Logger) (scrimmages.ScrimmageService, error) {
	if deps.Scrimmages == nil || deps.Participations == nil || deps.Types == nil || deps.Categories == nil {
		return nil, fmt.Errorf("scrimmage service requires scrimmage, participation, category and type repositories")
	}
	if deps.Transactor == nil || deps.Payments == nil || deps.Calendar == nil || deps.Notifier == nil {
		return nil, fmt.Errorf("scrimmage service requires transactor, payments, calendar and notifier")
	}
	return &scrimmageService{ScrimmageDeps: deps, logger: logger}, nil
}

func scrimmageURL(id string) string {
	return "/scrimmages/" + id
}

// applyInput copies input onto scrim, filling defaults for unset fields
func (s *scrimmageService) applyInput(scrim *scrimmages.Scrimmage, input scrimmages.ScrimmageInput, typ *scrimmages.Type, fields map[string]interface{}) {
	scrim.GroupID = input.GroupID
	scrim.Title = strings.TrimSpace(input.Title)
	scrim.Description = input.Description
	scrim.TypeID = typ.ID
	scrim.CategoryID = typ.CategoryID
	scrim.CustomFields = fields
	scrim.LocationName = input.LocationName
	scrim.Address = input.Address
	scrim.StartAt = input.StartAt.UTC()
	scrim.EndAt = input.EndAt.UTC()
	scrim.MaxParticipants = input.MaxParticipants
	if scrim.MaxParticipants == 0 {
		scrim.MaxParticipants = scrimmages.DefaultMaxParticipants
	}
	scrim.Visibility = input.Visibility
	if scrim.Visibility == "" {
		scrim.Visibility = scrimmages.VisibilityPublic
	}
	scrim.Tags = input.Tags
	scrim.EntryFee = payments.Cents(input.EntryFee)
	scrim.Currency = input.Currency
	if scrim.Currency == "" {
		scrim.Currency = s.DefaultCurrency
	}
	scrim.AutoPayEnabled = input.AutoPayEnabled
	scrim.TeamPayEnabled = input.TeamPayEnabled
	scrim.OrganizerFeePercent = input.OrganizerFeePercent
	scrim.OrganizerFeeFlat = input.OrganizerFeeFlat
	scrim.PrizePoolAmount = payments.Cents(input.PrizePoolAmount)
	if input.Status != "" {
		scrim.Status = input.Status
	}
	if scrim.Status == "" {
		scrim.Status = scrimmages.StatusPublished
	}
}

// resolveType loads the type and cleans custom field values against its schema
func (s *scrimmageService) resolveType(ctx context.Context, typeID string, values map[string]interface{}) (*scrimmages.Type, map[string]interface{}, error) {
	typ, err := s.Types.GetByID(ctx, typeID)
	if err != nil {
		return nil, nil, err
	}
	cleaned, fieldErrs := scrimmages.ValidateCustomFields(typ.CustomFieldSchema, values)
	if len(fieldErrs) > 0 {
		return nil, nil, fieldErrs
	}
	return typ, cleaned, nil
}

func (s *scrimmageService) Create(ctx context.Context, creatorID string, input scrimmages.ScrimmageInput) (*scrimmages.Scrimmage, error) {
	typ, fields, err := s.resolveType(ctx, input.TypeID, input.CustomFields)
	if err != nil {
		return nil, err
	}

	var memberIDs []string
	if input.GroupID != nil && *input.GroupID != "" {
		if _, err := s.Groups.GetByID(ctx, *input.GroupID); err != nil {
			return nil, err
		}
		members, err := s.Members.ListByGroup(ctx, *input.GroupID)
		if err != nil {
			return nil, err
		}
		for _, m := range members {
			memberIDs = append(memberIDs, m.UserID)
		}
	} else {
		input.GroupID = nil
	}

	now := time.Now().UTC()
	scrim := &scrimmages.Scrimmage{
		ID:        uuid.NewString(),
		CreatorID: creatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.applyInput(scrim, input, typ, fields)

	err = retryOnSlugConflict(scrimmages.ErrSlugTaken, func() error {
		return s.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
			return s.insertScrimmage(ctx, scrim, creatorID, memberIDs, now)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create scrimmage: %w", err)
	}

	s.notify(ctx, creatorID, "Scrimmage created", fmt.Sprintf("%s is ready for players.", scrim.Title), scrim.ID)
	for _, memberID := range memberIDs {
		if memberID == creatorID {
			continue
		}
		s.notify(ctx, memberID, "New group scrimmage", fmt.Sprintf("%s was scheduled in your group.", scrim.Title), scrim.ID)
	}
	s.logger.Info("Created scrimmage ", scrim.ID, " by ", creatorID)
	return scrim, nil
}

// insertScrimmage stores the scrimmage with its chat thread, creator seat and calendar entry
func (s *scrimmageService) insertScrimmage(ctx context.Context, scrim *scrimmages.Scrimmage, creatorID string, memberIDs []string, now time.Time) error {
	slug, err := uniqueSlug(ctx, scrim.Title, "scrimmage", s.Scrimmages.SlugsWithBase)
	if err != nil {
		return err
	}
	scrim.Slug = slug

	thread := &chat.Thread{
		ID:             uuid.NewString(),
		Title:          scrim.Title,
		ParticipantIDs: uniqueIDs(creatorID, memberIDs),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Threads.Create(ctx, thread); err != nil {
		return err
	}
	scrim.ChatThreadID = thread.ID

	if err := s.Scrimmages.Create(ctx, scrim); err != nil {
		return err
	}
	if err := s.Participations.Save(ctx, &scrimmages.Participation{
		ID:          uuid.NewString(),
		ScrimmageID: scrim.ID,
		UserID:      creatorID,
		Role:        scrimmages.RolePlayer,
		Status:      scrimmages.ParticipationConfirmed,
		JoinedAt:    now,
	}); err != nil {
		return err
	}
	_, err = s.Calendar.AddGenerated(ctx, creatorID, scrim.Title, scrim.StartAt, scrim.EndAt, calendar.RefScrimmage, scrim.ID)
	return err
}

func (s *scrimmageService) List(ctx context.Context, query *scrimmages.ScrimmageQuery) ([]*scrimmages.Scrimmage, error) {
	return s.Scrimmages.List(ctx, query)
}

// onRoster reports whether the user holds a non-declined participation
func (s *scrimmageService) onRoster(ctx context.Context, scrimmageID, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	p, err := s.Participations.Get(ctx, scrimmageID, userID)
	if err != nil {
		return false, err
	}
	return p != nil && p.Status != scrimmages.ParticipationDeclined, nil
}

func (s *scrimmageService) GetByID(ctx context.Context, viewerID string, isStaff bool, scrimmageID string) (*scrimmages.Scrimmage, error) {
	scrim, err := s.Scrimmages.GetByID(ctx, scrimmageID)
	if err != nil {
		return nil, err
	}
	if scrim.VisibleTo(viewerID, isStaff) {
		return scrim, nil
	}
	ok, err := s.onRoster(ctx, scrimmageID, viewerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, scrimmages.ErrScrimmageNotFound
	}
	return scrim, nil
}

// managed loads a scrimmage the actor may change
func (s *scrimmageService) managed(ctx context.Context, actorID string, isStaff bool, scrimmageID string) (*scrimmages.Scrimmage, error) {
	scrim, err := s.Scrimmages.GetByID(ctx, scrimmageID)
	if err != nil {
		return nil, err
	}
	if !scrim.CanManage(actorID, isStaff) {
		return nil, scrimmages.ErrForbidden
	}
	return scrim, nil
}

func (s *scrimmageService) Update(ctx context.Context, actorID string, isStaff bool, scrimmageID string, input scrimmages.ScrimmageInput) (*scrimmages.Scrimmage, error) {
	scrim, err := s.managed(ctx, actorID, isStaff, scrimmageID)
	if err != nil {
		return nil, err
	}
	if input.TypeID == "" {
		input.TypeID = scrim.TypeID
	}
	typ, fields, err := s.resolveType(ctx, input.TypeID, input.CustomFields)
	if err != nil {
		return nil, err
	}
	if input.GroupID == nil {
		input.GroupID = scrim.GroupID
	}

	s.applyInput(scrim, input, typ, fields)
	scrim.UpdatedAt = time.Now().UTC()
	if err := s.Scrimmages.Update(ctx, scrim); err != nil {
		return nil, err
	}
	s.logger.Info("Updated scrimmage ", scrim.ID)
	return scrim, nil
}

func (s *scrimmageService) Delete(ctx context.Context, actorID string, isStaff bool, scrimmageID string) error {
	scrim, err := s.managed(ctx, actorID, isStaff, scrimmageID)
	if err != nil {
		return err
	}
	return s.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		roster, err := s.Participations.ListByScrimmage(ctx, scrim.ID)
		if err != nil {
			return err
		}
		for _, p := range roster {
			if err := s.Calendar.RemoveGenerated(ctx, p.UserID, calendar.RefScrimmage, scrim.ID); err != nil {
				return err
			}
		}
		return s.Scrimmages.DeleteByID(ctx, scrim.ID)
	})
}

func (s *scrimmageService) Mine(ctx context.Context, userID string) ([]*scrimmages.Scrimmage, error) {
	return s.Scrimmages.ListForUser(ctx, userID, nil)
}

func (s *scrimmageService) Upcoming(ctx context.Context, userID string) ([]*scrimmages.Scrimmage, error) {
	now := time.Now().UTC()
	return s.Scrimmages.ListForUser(ctx, userID, &now)
}

func (s *scrimmageService) Join(ctx context.Context, userID, scrimmageID, role string) (*scrimmages.Participation, error) {
	if role == "" {
		role = scrimmages.RolePlayer
	}
	scrim, err := s.Scrimmages.GetByID(ctx, scrimmageID)
	if err != nil {
		return nil, err
	}
	if scrim.Status == scrimmages.StatusCancelled {
		return nil, scrimmages.ErrScrimmageCancelled
	}

	var participation *scrimmages.Participation
	joined := false
	err = s.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		// the row lock serializes joins so the capacity count stays accurate
		locked, err := s.Scrimmages.GetByIDForUpdate(ctx, scrim.ID)
		if err != nil {
			return err
		}
		if locked.Status == scrimmages.StatusCancelled {
			return scrimmages.ErrScrimmageCancelled
		}
		scrim = locked

		existing, err := s.Participations.Get(ctx, scrim.ID, userID)
		if err != nil {
			return err
		}
		if existing != nil && existing.Active() {
			participation = existing
			return nil
		}
		if existing == nil && !scrim.VisibleTo(userID, false) {
			return scrimmages.ErrScrimmageNotFound
		}

		count, err := s.Participations.CountActive(ctx, scrim.ID)
		if err != nil {
			return err
		}
		if count >= int64(scrim.MaxParticipants) {
			return scrimmages.ErrScrimmageFull
		}

		// a declined participation already paid on its first join
		firstJoin := existing == nil || existing.Status == scrimmages.ParticipationInvited
		participation = existing
		if participation == nil {
			participation = &scrimmages.Participation{
				ID:          uuid.NewString(),
				ScrimmageID: scrim.ID,
				UserID:      userID,
			}
		}
		participation.Role = role
		participation.Status = scrimmages.ParticipationConfirmed
		participation.JoinedAt = time.Now().UTC()
		if err := s.Participations.Save(ctx, participation); err != nil {
			return err
		}

		if firstJoin && scrim.AutoPayEnabled && scrim.EntryFee.IsPositive() && userID != scrim.CreatorID {
			if _, err := s.Payments.AutoPay(ctx, &payments.AutoPayRequest{
				UserID:      userID,
				CreatorID:   scrim.CreatorID,
				TeamPay:     scrim.TeamPayEnabled,
				AppSource:   payments.SourceScrimmage,
				RelatedID:   scrim.ID,
				Amount:      scrim.EntryFee,
				Currency:    scrim.Currency,
				OrganizerID: scrim.CreatorID,
				FeePercent:  scrim.OrganizerFeePercent,
				FeeFlat:     scrim.OrganizerFeeFlat,
				Description: scrim.Title,
			}); err != nil {
				return err
			}
		}

		if scrim.ChatThreadID != "" {
			if err := s.Threads.AddParticipant(ctx, scrim.ChatThreadID, userID); err != nil {
				return err
			}
		}
		if err := s.Calendar.RemoveGenerated(ctx, userID, calendar.RefScrimmage, scrim.ID); err != nil {
			return err
		}
		if _, err := s.Calendar.AddGenerated(ctx, userID, scrim.Title, scrim.StartAt, scrim.EndAt, calendar.RefScrimmage, scrim.ID); err != nil {
			return err
		}
		joined = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if joined {
		if userID != scrim.CreatorID {
			s.notify(ctx, scrim.CreatorID, "New participant", fmt.Sprintf("A player joined %s.", scrim.Title), scrim.ID)
		}
		s.logger.Info("User ", userID, " joined scrimmage ", scrim.ID)
	}
	return participation, nil
}

func (s *scrimmageService) Leave(ctx context.Context, userID, scrimmageID string) error {
	scrim, err := s.Scrimmages.GetByID(ctx, scrimmageID)
	if err != nil {
		return err
	}
	if scrim.CreatorID == userID {
		return scrimmages.ErrCreatorCannotLeave
	}

	return s.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := s.Participations.Get(ctx, scrim.ID, userID)
		if err != nil {
			return err
		}
		if p == nil || !p.Active() {
			return scrimmages.ErrNotOnRoster
		}
		p.Status = scrimmages.ParticipationDeclined
		if err := s.Participations.Save(ctx, p); err != nil {
			return err
		}
		if err := s.Calendar.RemoveGenerated(ctx, userID, calendar.RefScrimmage, scrim.ID); err != nil {
			return err
		}
		if scrim.ChatThreadID != "" {
			if err := s.Threads.RemoveParticipant(ctx, scrim.ChatThreadID, userID); err != nil {
				return err
			}
		}
		s.logger.Info("User ", userID, " left scrimmage ", scrim.ID)
		return nil
	})
}

func (s *scrimmageService) Invite(ctx context.Context, actorID string, isStaff bool, scrimmageID, targetUserID string) (*scrimmages.Participation, error) {
	scrim, err := s.managed(ctx, actorID, isStaff, scrimmageID)
	if err != nil {
		return nil, err
	}
	if scrim.Status == scrimmages.StatusCancelled {
		return nil, scrimmages.ErrScrimmageCancelled
	}

	p, err := s.Participations.Get(ctx, scrim.ID, targetUserID)
	if err != nil {
		return nil, err
	}
	if p != nil && p.Active() {
		return p, nil
	}
	if p == nil {
		p = &scrimmages.Participation{
			ID:          uuid.NewString(),
			ScrimmageID: scrim.ID,
			UserID:      targetUserID,
			Role:        scrimmages.RolePlayer,
			JoinedAt:    time.Now().UTC(),
		}
	}
	p.Status = scrimmages.ParticipationInvited
	if err := s.Participations.Save(ctx, p); err != nil {
		return nil, err
	}

	s.notify(ctx, targetUserID, "Scrimmage invitation", fmt.Sprintf("You were invited to %s.", scrim.Title), scrim.ID)
	return p, nil
}

func (s *scrimmageService) CheckIn(ctx context.Context, userID, scrimmageID string) (*scrimmages.Participation, error) {
	if _, err := s.Scrimmages.GetByID(ctx, scrimmageID); err != nil {
		return nil, err
	}
	p, err := s.Participations.Get(ctx, scrimmageID, userID)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Active() {
		return nil, scrimmages.ErrNotOnRoster
	}
	p.Status = scrimmages.ParticipationCheckedIn
	if err := s.Participations.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *scrimmageService) Roster(ctx context.Context, scrimmageID string) ([]*scrimmages.Participation, error) {
	if _, err := s.Scrimmages.GetByID(ctx, scrimmageID); err != nil {
		return nil, err
	}
	return s.Participations.ListByScrimmage(ctx, scrimmageID)
}

func (s *scrimmageService) Cancel(ctx context.Context, actorID string, isStaff bool, scrimmageID string) ([]*payments.RefundResult, error) {
	if _, err := s.managed(ctx, actorID, isStaff, scrimmageID); err != nil {
		return nil, err
	}

	// only the caller that flips the status runs the refunds
	var scrim *scrimmages.Scrimmage
	err := s.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if scrim, err = s.Scrimmages.GetByIDForUpdate(ctx, scrimmageID); err != nil {
			return err
		}
		if scrim.Status == scrimmages.StatusCancelled {
			return scrimmages.ErrScrimmageCancelled
		}
		scrim.Status = scrimmages.StatusCancelled
		scrim.UpdatedAt = time.Now().UTC()
		return s.Scrimmages.Update(ctx, scrim)
	})
	if err != nil {
		return nil, err
	}

	results, err := s.Payments.BulkRefund(ctx, payments.SourceScrimmage, scrim.ID, "scrimmage cancelled")
	if err != nil {
		return nil, err
	}

	roster, err := s.Participations.ListByScrimmage(ctx, scrim.ID)
	if err != nil {
		return results, err
	}
	for _, p := range roster {
		if p.UserID == actorID || p.Status == scrimmages.ParticipationDeclined {
			continue
		}
		s.notify(ctx, p.UserID, "Scrimmage cancelled", fmt.Sprintf("%s was cancelled. Payments are refunded.", scrim.Title), scrim.ID)
	}
	s.logger.Info("Cancelled scrimmage ", scrim.ID, " with ", len(results), " refunds")
	return results, nil
}

func (s *scrimmageService) DistributePrizes(ctx context.Context, actorID string, isStaff bool, scrimmageID string, awards []payments.PrizeAward) ([]*payments.Transaction, error) {
	if !isStaff {
		return nil, scrimmages.ErrPrizesStaffOnly
	}

	var txns []*payments.Transaction
	err := s.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		// the lock serializes payouts so the pool check sees earlier ones
		scrim, err := s.Scrimmages.GetByIDForUpdate(ctx, scrimmageID)
		if err != nil {
			return err
		}
		if scrim.Status == scrimmages.StatusCancelled {
			return scrimmages.ErrScrimmageCancelled
		}
		txns, err = s.Payments.DistributePrizePool(ctx, payments.SourceScrimmage, scrim.ID, scrim.PrizePoolAmount, awards)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Staff ", actorID, " paid ", len(txns), " prizes for scrimmage ", scrimmageID)
	return txns, nil
}

func (s *scrimmageService) CreateCategory(ctx context.Context, name string) (*scrimmages.Category, error) {
	category := &scrimmages.Category{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
	}
	err := retryOnSlugConflict(scrimmages.ErrSlugTaken, func() error {
		slug, err := uniqueSlug(ctx, category.Name, "category", s.Categories.SlugsWithBase)
		if err != nil {
			return err
		}
		category.Slug = slug
		return s.Categories.Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *scrimmageService) ListCategories(ctx context.Context) ([]*scrimmages.Category, error) {
	return s.Categories.List(ctx)
}

func (s *scrimmageService) CreateType(ctx context.Context, categoryID, name string, schema scrimmages.Schema) (*scrimmages.Type, error) {
	if _, err := s.Categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	if schema == nil {
		schema = scrimmages.Schema{}
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	typ := &scrimmages.Type{
		ID:                uuid.NewString(),
		CategoryID:        categoryID,
		Name:              strings.TrimSpace(name),
		CustomFieldSchema: schema,
		CreatedAt:         time.Now().UTC(),
	}
	err := retryOnSlugConflict(scrimmages.ErrSlugTaken, func() error {
		slug, err := uniqueSlug(ctx, typ.Name, "type", s.Types.SlugsWithBase)
		if err != nil {
			return err
		}
		typ.Slug = slug
		return s.Types.Create(ctx, typ)
	})
	if err != nil {
		return nil, err
	}
	return typ, nil
}

func (s *scrimmageService) ListTypes(ctx context.Context, categoryID string) ([]*scrimmages.Type, error) {
	return s.Types.List(ctx, categoryID)
}

func (s *scrimmageService) notify(ctx context.Context, userID, title, body, scrimmageID string) {
	if _, err := s.Notifier.Notify(ctx, userID, notifications.KindScrimmage, title, body, scrimmageURL(scrimmageID)); err != nil {
		s.logger.Warn("Failed to notify user ", userID, ": ", err)
	}
}
