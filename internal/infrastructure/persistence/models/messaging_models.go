package models

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/chat"
	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
)

// NotificationModel is the GORM database model for in-app notifications
type NotificationModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	UserID    string    `gorm:"not null;index:idx_notification_user_read;type:uuid"`
	Kind      string    `gorm:"not null;type:varchar(12)"`
	Title     string    `gorm:"not null;type:varchar(200)"`
	Body      string    `gorm:"type:text"`
	URL       string    `gorm:"type:varchar(500)"`
	IsRead    bool      `gorm:"not null;default:false;index:idx_notification_user_read"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts GORM model to domain entity
func (m *NotificationModel) ToDomain() *notifications.Notification {
	return &notifications.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Kind:      m.Kind,
		Title:     m.Title,
		Body:      m.Body,
		URL:       m.URL,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *NotificationModel) FromDomain(n *notifications.Notification) {
	m.ID = n.ID
	m.UserID = n.UserID
	m.Kind = n.Kind
	m.Title = n.Title
	m.Body = n.Body
	m.URL = n.URL
	m.IsRead = n.IsRead
	m.CreatedAt = n.CreatedAt
}

// ThreadModel is the GORM database model for chat threads
type ThreadModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Title     string    `gorm:"type:varchar(200)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (ThreadModel) TableName() string {
	return "chat_threads"
}

// ToDomain converts GORM model to domain entity. Participants are loaded separately
func (m *ThreadModel) ToDomain(participantIDs []string) *chat.Thread {
	return &chat.Thread{
		ID:             m.ID,
		Title:          m.Title,
		ParticipantIDs: participantIDs,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ThreadModel) FromDomain(t *chat.Thread) {
	m.ID = t.ID
	m.Title = t.Title
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}

// ThreadParticipantModel joins users to chat threads
type ThreadParticipantModel struct {
	ThreadID string    `gorm:"primaryKey;type:uuid"`
	UserID   string    `gorm:"primaryKey;type:uuid;index"`
	JoinedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ThreadParticipantModel) TableName() string {
	return "chat_thread_participants"
}

// MessageModel is the GORM database model for chat messages
type MessageModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	ThreadID  string    `gorm:"not null;index:idx_message_thread_created;type:uuid"`
	SenderID  string    `gorm:"not null;index;type:uuid"`
	Body      string    `gorm:"not null;type:text"`
	CreatedAt time.Time `gorm:"not null;index:idx_message_thread_created"`
}

// TableName specifies the table name for GORM
func (MessageModel) TableName() string {
	return "chat_messages"
}

// ToDomain converts GORM model to domain entity. Readers are loaded separately
func (m *MessageModel) ToDomain(readBy []string) *chat.Message {
	return &chat.Message{
		ID:        m.ID,
		ThreadID:  m.ThreadID,
		SenderID:  m.SenderID,
		Body:      m.Body,
		ReadBy:    readBy,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MessageModel) FromDomain(msg *chat.Message) {
	m.ID = msg.ID
	m.ThreadID = msg.ThreadID
	m.SenderID = msg.SenderID
	m.Body = msg.Body
	m.CreatedAt = msg.CreatedAt
}

// MessageReadModel marks a message as read by a user
type MessageReadModel struct {
	MessageID string    `gorm:"primaryKey;type:uuid"`
	UserID    string    `gorm:"primaryKey;type:uuid;index"`
	ReadAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (MessageReadModel) TableName() string {
	return "chat_message_reads"
}
