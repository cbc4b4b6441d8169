package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/chat"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormThreadRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormThreadRepository creates a new GORM-based ThreadRepository implementation
func NewGormThreadRepository(db *gorm.DB, logger logger.Logger) (chat.ThreadRepository, error) {
	return &gormThreadRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormThreadRepository) Create(ctx context.Context, thread *chat.Thread) error {
	if err := thread.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ThreadModel{}
	model.FromDomain(thread)

	err := dbFrom(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		for _, userID := range thread.ParticipantIDs {
			if err := addParticipant(tx, thread.ID, userID, thread.CreatedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create thread: %w", err)
	}

	r.logger.Info("Created thread with id ", thread.ID)
	return nil
}

func (r *gormThreadRepository) GetByID(ctx context.Context, threadID string) (*chat.Thread, error) {
	db := dbFrom(ctx, r.db)

	var model models.ThreadModel
	if err := db.Where("id = ?", threadID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("thread with ID %s: %w", threadID, chat.ErrThreadNotFound)
		}
		return nil, fmt.Errorf("failed to fetch thread: %w", err)
	}

	participants, err := participantIDs(db, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch thread participants: %w", err)
	}
	return model.ToDomain(participants), nil
}

// ListByParticipant returns the user's threads, most recently active first
func (r *gormThreadRepository) ListByParticipant(ctx context.Context, userID string) ([]*chat.Thread, error) {
	db := dbFrom(ctx, r.db)
	joined := db.Session(&gorm.Session{NewDB: true}).
		Model(&models.ThreadParticipantModel{}).
		Select("thread_id").
		Where("user_id = ?", userID)

	var modelList []*models.ThreadModel
	if err := db.Where("id IN (?)", joined).Order("updated_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch threads: %w", err)
	}

	domainList := make([]*chat.Thread, len(modelList))
	for i, model := range modelList {
		participants, err := participantIDs(db, model.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch thread participants: %w", err)
		}
		domainList[i] = model.ToDomain(participants)
	}
	return domainList, nil
}

func (r *gormThreadRepository) AddParticipant(ctx context.Context, threadID, userID string) error {
	if err := addParticipant(dbFrom(ctx, r.db), threadID, userID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}

	r.logger.Info("Added user ", userID, " to thread ", threadID)
	return nil
}

func (r *gormThreadRepository) RemoveParticipant(ctx context.Context, threadID, userID string) error {
	err := dbFrom(ctx, r.db).
		Where("thread_id = ? AND user_id = ?", threadID, userID).
		Delete(&models.ThreadParticipantModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}

	r.logger.Info("Removed user ", userID, " from thread ", threadID)
	return nil
}

// Touch bumps the thread's activity time
func (r *gormThreadRepository) Touch(ctx context.Context, threadID string) error {
	err := dbFrom(ctx, r.db).
		Model(&models.ThreadModel{}).
		Where("id = ?", threadID).
		Update("updated_at", time.Now().UTC()).Error
	if err != nil {
		return fmt.Errorf("failed to touch thread: %w", err)
	}
	return nil
}

func addParticipant(db *gorm.DB, threadID, userID string, joinedAt time.Time) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.ThreadParticipantModel{
		ThreadID: threadID,
		UserID:   userID,
		JoinedAt: joinedAt,
	}).Error
}

func participantIDs(db *gorm.DB, threadID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.ThreadParticipantModel{}).
		Where("thread_id = ?", threadID).
		Order("joined_at").
		Pluck("user_id", &ids).Error
	return ids, err
}

type gormMessageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMessageRepository creates a new GORM-based MessageRepository implementation
func NewGormMessageRepository(db *gorm.DB, logger logger.Logger) (chat.MessageRepository, error) {
	return &gormMessageRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Create stores the message as already read by its sender
func (r *gormMessageRepository) Create(ctx context.Context, msg *chat.Message) error {
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MessageModel{}
	model.FromDomain(msg)

	err := dbFrom(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		return markRead(tx, msg.ID, msg.SenderID, msg.CreatedAt)
	})
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *gormMessageRepository) GetByID(ctx context.Context, messageID string) (*chat.Message, error) {
	db := dbFrom(ctx, r.db)

	var model models.MessageModel
	if err := db.Where("id = ?", messageID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("message with ID %s: %w", messageID, chat.ErrMessageNotFound)
		}
		return nil, fmt.Errorf("failed to fetch message: %w", err)
	}

	readers, err := readerIDs(db, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch message readers: %w", err)
	}
	return model.ToDomain(readers), nil
}

// ListByThread returns the thread's messages oldest first
func (r *gormMessageRepository) ListByThread(ctx context.Context, threadID string) ([]*chat.Message, error) {
	db := dbFrom(ctx, r.db)

	var modelList []*models.MessageModel
	if err := db.Where("thread_id = ?", threadID).Order("created_at").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	domainList := make([]*chat.Message, len(modelList))
	for i, model := range modelList {
		readers, err := readerIDs(db, model.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch message readers: %w", err)
		}
		domainList[i] = model.ToDomain(readers)
	}
	return domainList, nil
}

// Last returns the newest message of the thread, or nil for an empty thread
func (r *gormMessageRepository) Last(ctx context.Context, threadID string) (*chat.Message, error) {
	db := dbFrom(ctx, r.db)

	var model models.MessageModel
	if err := db.Where("thread_id = ?", threadID).Order("created_at DESC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch last message: %w", err)
	}

	readers, err := readerIDs(db, model.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch message readers: %w", err)
	}
	return model.ToDomain(readers), nil
}

func (r *gormMessageRepository) MarkRead(ctx context.Context, messageID, userID string) error {
	if err := markRead(dbFrom(ctx, r.db), messageID, userID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	return nil
}

func (r *gormMessageRepository) CountUnread(ctx context.Context, threadID, userID string) (int64, error) {
	db := dbFrom(ctx, r.db)

	var count int64
	err := db.Model(&models.MessageModel{}).
		Where("thread_id = ? AND id NOT IN (?)", threadID, readBy(db, userID)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

// CountUnreadTotal counts unread messages across all threads the user participates in
func (r *gormMessageRepository) CountUnreadTotal(ctx context.Context, userID string) (int64, error) {
	db := dbFrom(ctx, r.db)
	joined := db.Session(&gorm.Session{NewDB: true}).
		Model(&models.ThreadParticipantModel{}).
		Select("thread_id").
		Where("user_id = ?", userID)

	var count int64
	err := db.Model(&models.MessageModel{}).
		Where("thread_id IN (?) AND id NOT IN (?)", joined, readBy(db, userID)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

func markRead(db *gorm.DB, messageID, userID string, at time.Time) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.MessageReadModel{
		MessageID: messageID,
		UserID:    userID,
		ReadAt:    at,
	}).Error
}

func readBy(db *gorm.DB, userID string) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&models.MessageReadModel{}).
		Select("message_id").
		Where("user_id = ?", userID)
}

func readerIDs(db *gorm.DB, messageID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.MessageReadModel{}).
		Where("message_id = ?", messageID).
		Order("read_at").
		Pluck("user_id", &ids).Error
	return ids, err
}
