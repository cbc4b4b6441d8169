package notifications

import "context"

// Notifier is what other modules use to tell a user something happened
type Notifier interface {
	// Notify stores a notification and fans it out to realtime and broker channels.
	// Fan-out failures are logged, not returned.
	Notify(ctx context.Context, userID, kind, title, body, url string) (*Notification, error)

	// NotifyStaff sends the same notification to every active staff account.
	NotifyStaff(ctx context.Context, kind, title, body, url string) error
}

// NotificationService defines the inbox operations exposed to users.
type NotificationService interface {
	Notifier

	// List returns the user's notifications, newest first.
	List(ctx context.Context, userID string, unreadOnly bool) ([]*Notification, error)

	// UnreadCount counts unread notifications for the user.
	UnreadCount(ctx context.Context, userID string) (int64, error)

	// MarkRead marks one notification read. Only the owner may do so.
	MarkRead(ctx context.Context, userID, notificationID string) error

	// MarkAllRead marks all of the user's notifications read and returns how many changed.
	MarkAllRead(ctx context.Context, userID string) (int64, error)

	// Delete removes one of the user's notifications.
	Delete(ctx context.Context, userID, notificationID string) error
}

// NotificationRepository defines the interface for Notification-related operations
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, notificationID string) (*Notification, error)
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]*Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	DeleteByID(ctx context.Context, notificationID string) error
}

// RecipientDirectory resolves user ids to mail addresses and staff lists without
// tying notifications to the accounts package
type RecipientDirectory interface {
	EmailFor(ctx context.Context, userID string) (string, error)
	ActiveStaffIDs(ctx context.Context) ([]string, error)
}

// Pusher delivers frames to a user's live connections
type Pusher interface {
	Push(userID string, frame Frame) int
}

// EventPublisher publishes JSON payloads to the message broker
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
	Close() error
}

// EventConsumer delivers broker messages to handle. A handler error requeues the message
type EventConsumer interface {
	Consume(ctx context.Context, handle func(ctx context.Context, routingKey string, body []byte) error) error
	Close() error
}

// Mailer sends email
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}
