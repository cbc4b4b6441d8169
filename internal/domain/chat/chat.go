package chat

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"
)

// PreviewLength bounds the message excerpt used in notifications
const PreviewLength = 140

// Thread is a conversation between participants
type Thread struct {
	ID             string `validate:"required,uuid4"`
	Title          string `validate:"max=200"`
	ParticipantIDs []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate for validating Thread struct
func (t *Thread) Validate() error {
	return validators.ValidateStruct(t)
}

// HasParticipant reports whether userID takes part in the thread
func (t *Thread) HasParticipant(userID string) bool {
	for _, id := range t.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Message is a single chat message
type Message struct {
	ID        string `validate:"required,uuid4"`
	ThreadID  string `validate:"required,uuid4"`
	SenderID  string `validate:"required,uuid4"`
	Body      string `validate:"required,max=5000"`
	ReadBy    []string
	CreatedAt time.Time
}

// Validate for validating Message struct
func (m *Message) Validate() error {
	return validators.ValidateStruct(m)
}

// ThreadSummary is a thread as listed for one participant
type ThreadSummary struct {
	Thread      *Thread
	LastMessage *Message
	UnreadCount int64
}
