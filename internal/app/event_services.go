package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/calendar"
	"github.com/MGTheTrain/scrimhub/internal/domain/events"
	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"github.com/google/uuid"
)

// eventService implements the EventService interface
type eventService struct {
	events          events.EventRepository
	rsvps           events.RSVPRepository
	calendar        calendar.CalendarService
	payments        payments.PaymentService
	notifier        notifications.Notifier
	transactor      payments.Transactor
	defaultCurrency string
	logger          logger.Logger
}

// NewEventService creates a new instance of EventService
func NewEventService(
	eventRepo events.EventRepository,
	rsvpRepo events.RSVPRepository,
	calendarService calendar.CalendarService,
	paymentService payments.PaymentService,
	notifier notifications.Notifier,
	transactor payments.Transactor,
	defaultCurrency string,
	logger logger.Logger,
) (events.EventService, error) {
	return &eventService{
		events:          eventRepo,
		rsvps:           rsvpRepo,
		calendar:        calendarService,
		payments:        paymentService,
		notifier:        notifier,
		transactor:      transactor,
		defaultCurrency: defaultCurrency,
		logger:          logger,
	}, nil
}

func eventURL(id string) string {
	return "/events/" + id
}

func (s *eventService) applyInput(event *events.Event, input events.EventInput) {
	event.GroupID = input.GroupID
	if event.GroupID != nil && *event.GroupID == "" {
		event.GroupID = nil
	}
	event.Title = strings.TrimSpace(input.Title)
	event.Description = input.Description
	event.LocationName = input.LocationName
	event.Address = input.Address
	event.StartAt = input.StartAt.UTC()
	event.EndAt = input.EndAt.UTC()
	event.IsPublic = input.IsPublic
	event.Tags = input.Tags
	event.Capacity = input.Capacity
	event.EntryFee = payments.Cents(input.EntryFee)
	event.Currency = input.Currency
	if event.Currency == "" {
		event.Currency = s.defaultCurrency
	}
	event.AutoPayEnabled = input.AutoPayEnabled
	event.OrganizerFeePercent = input.OrganizerFeePercent
	event.OrganizerFeeFlat = input.OrganizerFeeFlat
	if input.Status != "" {
		event.Status = input.Status
	}
	if event.Status == "" {
		event.Status = events.StatusPublished
	}
}

func (s *eventService) Create(ctx context.Context, hostID string, input events.EventInput) (*events.Event, error) {
	now := time.Now().UTC()
	event := &events.Event{
		ID:        uuid.NewString(),
		HostID:    hostID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.applyInput(event, input)

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.events.Create(ctx, event); err != nil {
			return err
		}
		if _, err := s.calendar.AddGenerated(ctx, hostID, event.Title, event.StartAt, event.EndAt, calendar.RefEvent, event.ID); err != nil {
			return err
		}
		if !event.AutoPayEnabled || !event.EntryFee.IsPositive() {
			return nil
		}
		// setup fee paid by the host
		_, err := s.payments.AutoPay(ctx, &payments.AutoPayRequest{
			UserID:      hostID,
			AppSource:   payments.SourceEvent,
			RelatedID:   event.ID,
			Amount:      event.EntryFee,
			Currency:    event.Currency,
			Description: "Event setup: " + event.Title,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Info("Created event ", event.ID, " by ", hostID)
	return event, nil
}

func (s *eventService) List(ctx context.Context, query *events.EventQuery) ([]*events.Event, error) {
	return s.events.List(ctx, query)
}

func (s *eventService) GetByID(ctx context.Context, viewerID string, isStaff bool, eventID string) (*events.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.VisibleTo(viewerID, isStaff) {
		return event, nil
	}
	if viewerID != "" {
		rsvp, err := s.rsvps.Get(ctx, eventID, viewerID)
		if err != nil {
			return nil, err
		}
		if rsvp != nil && rsvp.Status != events.RSVPCancelled {
			return event, nil
		}
	}
	return nil, events.ErrEventNotFound
}

func (s *eventService) managed(ctx context.Context, actorID string, isStaff bool, eventID string) (*events.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.CanManage(actorID, isStaff) {
		return nil, events.ErrForbidden
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, actorID string, isStaff bool, eventID string, input events.EventInput) (*events.Event, error) {
	event, err := s.managed(ctx, actorID, isStaff, eventID)
	if err != nil {
		return nil, err
	}
	if input.GroupID == nil {
		input.GroupID = event.GroupID
	}
	s.applyInput(event, input)
	event.UpdatedAt = time.Now().UTC()
	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, actorID string, isStaff bool, eventID string) error {
	event, err := s.managed(ctx, actorID, isStaff, eventID)
	if err != nil {
		return err
	}
	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		rsvps, err := s.rsvps.ListByEvent(ctx, event.ID)
		if err != nil {
			return err
		}
		for _, rsvp := range rsvps {
			if err := s.calendar.RemoveGenerated(ctx, rsvp.UserID, calendar.RefEvent, event.ID); err != nil {
				return err
			}
		}
		if err := s.calendar.RemoveGenerated(ctx, event.HostID, calendar.RefEvent, event.ID); err != nil {
			return err
		}
		return s.events.DeleteByID(ctx, event.ID)
	})
}

// rsvpOutcome tracks who to notify once an RSVP change commits
type rsvpOutcome struct {
	waitlisted bool
	promoted   string
}

func (s *eventService) RSVP(ctx context.Context, userID, eventID, status string) (*events.RSVP, error) {
	switch status {
	case events.RSVPInterested, events.RSVPGoing, events.RSVPCancelled:
	default:
		return nil, events.ErrInvalidRSVP
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status == events.StatusCancelled {
		return nil, events.ErrEventCancelled
	}

	var rsvp *events.RSVP
	var outcome rsvpOutcome
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		// seats are counted under the event row lock, not from the cached GoingCount
		locked, err := s.events.GetByIDForUpdate(ctx, event.ID)
		if err != nil {
			return err
		}
		if locked.Status == events.StatusCancelled {
			return events.ErrEventCancelled
		}
		event = locked
		attending, err := s.rsvps.CountAttending(ctx, event.ID)
		if err != nil {
			return err
		}
		event.GoingCount = int(attending)

		existing, err := s.rsvps.Get(ctx, event.ID, userID)
		if err != nil {
			return err
		}
		if existing == nil && !event.VisibleTo(userID, false) {
			return events.ErrEventNotFound
		}

		now := time.Now().UTC()
		wasAttending := existing != nil && existing.Attending()
		rsvp = existing
		if rsvp == nil {
			rsvp = &events.RSVP{
				ID:        uuid.NewString(),
				EventID:   event.ID,
				UserID:    userID,
				CreatedAt: now,
			}
		}
		rsvp.UpdatedAt = now

		switch {
		case status == events.RSVPGoing && wasAttending:
			return nil
		case status == events.RSVPGoing:
			if event.HasRoom() {
				rsvp.Status = events.RSVPGoing
			} else {
				rsvp.Status = events.RSVPWaitlist
				outcome.waitlisted = true
			}
		default:
			rsvp.Status = status
		}
		if err := s.rsvps.Save(ctx, rsvp); err != nil {
			return err
		}

		switch {
		case rsvp.Status == events.RSVPGoing:
			if _, err := s.calendar.AddGenerated(ctx, userID, event.Title, event.StartAt, event.EndAt, calendar.RefEvent, event.ID); err != nil {
				return err
			}
		case wasAttending:
			if err := s.calendar.RemoveGenerated(ctx, userID, calendar.RefEvent, event.ID); err != nil {
				return err
			}
			promoted, err := s.promoteWaitlisted(ctx, event)
			if err != nil {
				return err
			}
			outcome.promoted = promoted
		}
		return s.syncGoingCount(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	if outcome.waitlisted {
		s.notify(ctx, userID, "Added to waitlist", fmt.Sprintf("%s is full. You are on the waitlist.", event.Title), event.ID)
	}
	if outcome.promoted != "" {
		s.notify(ctx, outcome.promoted, "You're in", fmt.Sprintf("A seat opened up for %s.", event.Title), event.ID)
	}
	return rsvp, nil
}

// promoteWaitlisted moves the earliest waitlisted RSVP to going and returns its user
func (s *eventService) promoteWaitlisted(ctx context.Context, event *events.Event) (string, error) {
	next, err := s.rsvps.FirstWaitlisted(ctx, event.ID)
	if err != nil || next == nil {
		return "", err
	}
	next.Status = events.RSVPGoing
	next.UpdatedAt = time.Now().UTC()
	if err := s.rsvps.Save(ctx, next); err != nil {
		return "", err
	}
	if _, err := s.calendar.AddGenerated(ctx, next.UserID, event.Title, event.StartAt, event.EndAt, calendar.RefEvent, event.ID); err != nil {
		return "", err
	}
	s.logger.Info("Promoted user ", next.UserID, " from waitlist of event ", event.ID)
	return next.UserID, nil
}

// syncGoingCount stores the number of RSVPs holding a seat on the event
func (s *eventService) syncGoingCount(ctx context.Context, event *events.Event) error {
	count, err := s.rsvps.CountAttending(ctx, event.ID)
	if err != nil {
		return err
	}
	if int(count) == event.GoingCount {
		return nil
	}
	event.GoingCount = int(count)
	event.UpdatedAt = time.Now().UTC()
	return s.events.Update(ctx, event)
}

func (s *eventService) CheckIn(ctx context.Context, userID, eventID string) (*events.RSVP, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	rsvp, err := s.rsvps.Get(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if rsvp == nil || rsvp.Status == events.RSVPCancelled {
		return nil, events.ErrNoRSVP
	}
	rsvp.Status = events.RSVPCheckedIn
	rsvp.UpdatedAt = time.Now().UTC()
	if err := s.rsvps.Save(ctx, rsvp); err != nil {
		return nil, err
	}
	return rsvp, nil
}

func (s *eventService) Attendees(ctx context.Context, eventID string) ([]*events.RSVP, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.rsvps.ListByEvent(ctx, eventID)
}

func (s *eventService) Cancel(ctx context.Context, actorID string, isStaff bool, eventID string) ([]*payments.RefundResult, error) {
	if _, err := s.managed(ctx, actorID, isStaff, eventID); err != nil {
		return nil, err
	}

	// only the caller that flips the status runs the refunds
	var event *events.Event
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if event, err = s.events.GetByIDForUpdate(ctx, eventID); err != nil {
			return err
		}
		if event.Status == events.StatusCancelled {
			return events.ErrEventCancelled
		}
		event.Status = events.StatusCancelled
		event.UpdatedAt = time.Now().UTC()
		return s.events.Update(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	results, err := s.payments.BulkRefund(ctx, payments.SourceEvent, event.ID, "event cancelled")
	if err != nil {
		return nil, err
	}

	rsvps, err := s.rsvps.ListByEvent(ctx, event.ID)
	if err != nil {
		return results, err
	}
	for _, rsvp := range rsvps {
		if rsvp.UserID == actorID || rsvp.Status == events.RSVPCancelled {
			continue
		}
		s.notify(ctx, rsvp.UserID, "Event cancelled", fmt.Sprintf("%s was cancelled.", event.Title), event.ID)
	}
	s.logger.Info("Cancelled event ", event.ID, " with ", len(results), " refunds")
	return results, nil
}

func (s *eventService) notify(ctx context.Context, userID, title, body, eventID string) {
	if _, err := s.notifier.Notify(ctx, userID, notifications.KindEvent, title, body, eventURL(eventID)); err != nil {
		s.logger.Warn("Failed to notify user ", userID, ": ", err)
	}
}
