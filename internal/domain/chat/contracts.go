package chat

import "context"

// ChatService defines thread and message operations. All calls are made on behalf of userID
type ChatService interface {
	// CreateThread opens a thread with the creator and the given participants.
	CreateThread(ctx context.Context, creatorID, title string, participantIDs []string) (*Thread, error)

	// ListThreads returns the user's threads with their last message and unread count.
	ListThreads(ctx context.Context, userID string) ([]*ThreadSummary, error)

	GetThread(ctx context.Context, userID, threadID string) (*Thread, error)
	AddParticipant(ctx context.Context, userID, threadID, participantID string) (*Thread, error)
	RemoveParticipant(ctx context.Context, userID, threadID, participantID string) (*Thread, error)

	// PostMessage stores a message and notifies the other participants.
	PostMessage(ctx context.Context, userID, threadID, body string) (*Message, error)

	ListMessages(ctx context.Context, userID, threadID string) ([]*Message, error)
	MarkRead(ctx context.Context, userID, messageID string) error
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

// ThreadRepository defines the interface for Thread-related operations
type ThreadRepository interface {
	Create(ctx context.Context, thread *Thread) error
	GetByID(ctx context.Context, threadID string) (*Thread, error)
	ListByParticipant(ctx context.Context, userID string) ([]*Thread, error)
	AddParticipant(ctx context.Context, threadID, userID string) error
	RemoveParticipant(ctx context.Context, threadID, userID string) error
	Touch(ctx context.Context, threadID string) error
}

// MessageRepository defines the interface for Message-related operations
type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	GetByID(ctx context.Context, messageID string) (*Message, error)
	ListByThread(ctx context.Context, threadID string) ([]*Message, error)
	Last(ctx context.Context, threadID string) (*Message, error)
	MarkRead(ctx context.Context, messageID, userID string) error
	CountUnread(ctx context.Context, threadID, userID string) (int64, error)
	CountUnreadTotal(ctx context.Context, userID string) (int64, error)
}
