package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/chat"
	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"
	"github.com/MGTheTrain/scrimhub/internal/pkg/utils"

	"github.com/google/uuid"
)

// chatMessageFrame is the websocket payload for a new chat message
type chatMessageFrame struct {
	ID        string    `json:"id"`
	ThreadID  string    `json:"thread_id"`
	SenderID  string    `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// chatService implements the ChatService interface
type chatService struct {
	threads  chat.ThreadRepository
	messages chat.MessageRepository
	notifier notifications.Notifier
	pusher   notifications.Pusher
	logger   logger.Logger
}

// NewChatService creates a new instance of ChatService. pusher may be nil
func NewChatService(
	threadRepo chat.ThreadRepository,
	messageRepo chat.MessageRepository,
	notifier notifications.Notifier,
	pusher notifications.Pusher,
	logger logger.Logger,
) (chat.ChatService, error) {
	return &chatService{
		threads:  threadRepo,
		messages: messageRepo,
		notifier: notifier,
		pusher:   pusher,
		logger:   logger,
	}, nil
}

func uniqueIDs(first string, rest []string) []string {
	seen := map[string]struct{}{first: {}}
	ids := []string{first}
	for _, id := range rest {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func (s *chatService) CreateThread(ctx context.Context, creatorID, title string, participantIDs []string) (*chat.Thread, error) {
	now := time.Now().UTC()
	thread := &chat.Thread{
		ID:             uuid.NewString(),
		Title:          strings.TrimSpace(title),
		ParticipantIDs: uniqueIDs(creatorID, participantIDs),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.threads.Create(ctx, thread); err != nil {
		return nil, err
	}
	return thread, nil
}

func (s *chatService) ListThreads(ctx context.Context, userID string) ([]*chat.ThreadSummary, error) {
	threads, err := s.threads.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}
	summaries := make([]*chat.ThreadSummary, 0, len(threads))
	for _, thread := range threads {
		last, err := s.messages.Last(ctx, thread.ID)
		if err != nil {
			return nil, err
		}
		unread, err := s.messages.CountUnread(ctx, thread.ID, userID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &chat.ThreadSummary{Thread: thread, LastMessage: last, UnreadCount: unread})
	}
	return summaries, nil
}

// participantThread loads a thread the user takes part in
func (s *chatService) participantThread(ctx context.Context, userID, threadID string) (*chat.Thread, error) {
	thread, err := s.threads.GetByID(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if !thread.HasParticipant(userID) {
		return nil, chat.ErrNotParticipant
	}
	return thread, nil
}

func (s *chatService) GetThread(ctx context.Context, userID, threadID string) (*chat.Thread, error) {
	return s.participantThread(ctx, userID, threadID)
}

func (s *chatService) AddParticipant(ctx context.Context, userID, threadID, participantID string) (*chat.Thread, error) {
	thread, err := s.participantThread(ctx, userID, threadID)
	if err != nil {
		return nil, err
	}
	if thread.HasParticipant(participantID) {
		return thread, nil
	}
	if err := s.threads.AddParticipant(ctx, threadID, participantID); err != nil {
		return nil, err
	}
	return s.threads.GetByID(ctx, threadID)
}

func (s *chatService) RemoveParticipant(ctx context.Context, userID, threadID, participantID string) (*chat.Thread, error) {
	thread, err := s.participantThread(ctx, userID, threadID)
	if err != nil {
		return nil, err
	}
	if !thread.HasParticipant(participantID) {
		return nil, chat.ErrNotParticipant
	}
	if err := s.threads.RemoveParticipant(ctx, threadID, participantID); err != nil {
		return nil, err
	}
	return s.threads.GetByID(ctx, threadID)
}

func (s *chatService) PostMessage(ctx context.Context, userID, threadID, body string) (*chat.Message, error) {
	thread, err := s.participantThread(ctx, userID, threadID)
	if err != nil {
		return nil, err
	}

	msg := &chat.Message{
		ID:        uuid.NewString(),
		ThreadID:  threadID,
		SenderID:  userID,
		Body:      strings.TrimSpace(body),
		ReadBy:    []string{userID},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	if err := s.threads.Touch(ctx, threadID); err != nil {
		return nil, err
	}

	title := "New message"
	if thread.Title != "" {
		title = fmt.Sprintf("New message in %s", utils.Truncate(thread.Title, 150))
	}
	preview := utils.Truncate(msg.Body, chat.PreviewLength)
	frame := notifications.Frame{
		Type: notifications.FrameChatMessage,
		Payload: &chatMessageFrame{
			ID:        msg.ID,
			ThreadID:  msg.ThreadID,
			SenderID:  msg.SenderID,
			Body:      msg.Body,
			CreatedAt: msg.CreatedAt,
		},
	}
	for _, participantID := range thread.ParticipantIDs {
		if participantID == userID {
			continue
		}
		if _, err := s.notifier.Notify(ctx, participantID, notifications.KindMessage, title, preview, "/messages?thread="+threadID); err != nil {
			s.logger.Warn("Failed to notify participant ", participantID, ": ", err)
		}
		if s.pusher != nil {
			s.pusher.Push(participantID, frame)
		}
	}
	return msg, nil
}

func (s *chatService) ListMessages(ctx context.Context, userID, threadID string) ([]*chat.Message, error) {
	if _, err := s.participantThread(ctx, userID, threadID); err != nil {
		return nil, err
	}
	return s.messages.ListByThread(ctx, threadID)
}

func (s *chatService) MarkRead(ctx context.Context, userID, messageID string) error {
	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if _, err := s.participantThread(ctx, userID, msg.ThreadID); err != nil {
		return err
	}
	return s.messages.MarkRead(ctx, messageID, userID)
}

func (s *chatService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.messages.CountUnreadTotal(ctx, userID)
}
