package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"github.com/google/uuid"
)

// notificationService implements the NotificationService interface
type notificationService struct {
	repo      notifications.NotificationRepository
	directory notifications.RecipientDirectory
	pusher    notifications.Pusher
	publisher notifications.EventPublisher
	logger    logger.Logger
}

// NewNotificationService creates a new instance of NotificationService.
// pusher and publisher are optional; processes without a websocket hub or broker pass nil
func NewNotificationService(
	repo notifications.NotificationRepository,
	directory notifications.RecipientDirectory,
	pusher notifications.Pusher,
	publisher notifications.EventPublisher,
	logger logger.Logger,
) (notifications.NotificationService, error) {
	if repo == nil || directory == nil {
		return nil, fmt.Errorf("notification repository and recipient directory are required")
	}
	return &notificationService{
		repo:      repo,
		directory: directory,
		pusher:    pusher,
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (s *notificationService) Notify(ctx context.Context, userID, kind, title, body, url string) (*notifications.Notification, error) {
	n := &notifications.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		Body:      body,
		URL:       url,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to store notification: %w", err)
	}

	event := &notifications.CreatedEvent{
		NotificationID: n.ID,
		UserID:         n.UserID,
		Kind:           n.Kind,
		Title:          n.Title,
		Body:           n.Body,
		URL:            n.URL,
		CreatedAt:      n.CreatedAt,
	}

	if s.pusher != nil {
		s.pusher.Push(userID, notifications.Frame{Type: notifications.FrameNotification, Payload: event})
	}

	if s.publisher != nil {
		email, err := s.directory.EmailFor(ctx, userID)
		if err != nil {
			s.logger.Warn("Could not resolve email for user ", userID, ": ", err)
		}
		event.Email = email
		if err := s.publisher.Publish(ctx, notifications.RoutingKeyCreated, event); err != nil {
			s.logger.Error("Failed to publish notification ", n.ID, ": ", err)
		}
	}

	return n, nil
}

func (s *notificationService) NotifyStaff(ctx context.Context, kind, title, body, url string) error {
	staffIDs, err := s.directory.ActiveStaffIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list staff: %w", err)
	}
	for _, id := range staffIDs {
		if _, err := s.Notify(ctx, id, kind, title, body, url); err != nil {
			return err
		}
	}
	return nil
}

func (s *notificationService) List(ctx context.Context, userID string, unreadOnly bool) ([]*notifications.Notification, error) {
	return s.repo.ListByUser(ctx, userID, unreadOnly)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *notificationService) owned(ctx context.Context, userID, notificationID string) (*notifications.Notification, error) {
	n, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, notifications.ErrForbidden
	}
	return n, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	n, err := s.owned(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	if n.IsRead {
		return nil
	}
	return s.repo.MarkRead(ctx, notificationID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *notificationService) Delete(ctx context.Context, userID, notificationID string) error {
	if _, err := s.owned(ctx, userID, notificationID); err != nil {
		return err
	}
	return s.repo.DeleteByID(ctx, notificationID)
}

// userDirectory resolves notification recipients from the account store
type userDirectory struct {
	users accounts.UserRepository
}

// NewUserDirectory creates a RecipientDirectory backed by the user repository
func NewUserDirectory(users accounts.UserRepository) notifications.RecipientDirectory {
	return &userDirectory{users: users}
}

func (d *userDirectory) EmailFor(ctx context.Context, userID string) (string, error) {
	user, err := d.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Email, nil
}

func (d *userDirectory) ActiveStaffIDs(ctx context.Context) ([]string, error) {
	staff, err := d.users.ListStaff(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(staff))
	for _, u := range staff {
		if u.CanSignIn() {
			ids = append(ids, u.ID)
		}
	}
	return ids, nil
}
