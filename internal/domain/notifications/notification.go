package notifications

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"
)

// Notification kinds
const (
	KindPayment    = "payment"
	KindMessage    = "message"
	KindScrimmage  = "scrimmage"
	KindEvent      = "event"
	KindMembership = "membership"
	KindSystem     = "system"
)

// RoutingKeyCreated is published on the broker for every stored notification
const RoutingKeyCreated = "notification.created"

// Notification is an in-app message for one user
type Notification struct {
	ID        string `validate:"required,uuid4"`
	UserID    string `validate:"required,uuid4"`
	Kind      string `validate:"required,oneof=payment message scrimmage event membership system"`
	Title     string `validate:"required,max=200"`
	Body      string
	URL       string `validate:"max=500"`
	IsRead    bool
	CreatedAt time.Time
}

// Validate for validating Notification struct
func (n *Notification) Validate() error {
	return validators.ValidateStruct(n)
}

// Frame is a realtime message pushed to a user's open websocket connections
type Frame struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Frame types
const (
	FrameNotification = "notification"
	FrameChatMessage  = "chat.message"
)

// CreatedEvent is the broker payload for RoutingKeyCreated
type CreatedEvent struct {
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	Email          string    `json:"email,omitempty"`
	Kind           string    `json:"kind"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	URL            string    `json:"url"`
	CreatedAt      time.Time `json:"created_at"`
}

// Message is an outbound email
type Message struct {
	To      string `validate:"required,email"`
	Subject string `validate:"required"`
	Text    string `validate:"required"`
	HTML    string
}

// Validate for validating Message struct
func (m *Message) Validate() error {
	return validators.ValidateStruct(m)
}
