package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"housequay/internal/domain"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// GetConversation looks a thread up by its normalized participant pair and
// optional listing/booking scope.
func (r *ChatRepository) GetConversation(ctx context.Context, a, b int64, listingID, bookingID *int64) (*domain.Conversation, error) {
	q := r.db.WithContext(ctx).Where("participant_a = ? AND participant_b = ?", a, b)
	if listingID != nil {
		q = q.Where("listing_id = ?", *listingID)
	} else {
		q = q.Where("listing_id IS NULL")
	}
	if bookingID != nil {
		q = q.Where("booking_id = ?", *bookingID)
	} else {
		q = q.Where("booking_id IS NULL")
	}

	var conv domain.Conversation
	if err := q.First(&conv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

func (r *ChatRepository) CreateConversation(ctx context.Context, conv *domain.Conversation) error {
	return r.db.WithContext(ctx).Create(conv).Error
}

func (r *ChatRepository) GetConversationByID(ctx context.Context, id int64) (*domain.Conversation, error) {
	var conv domain.Conversation
	if err := r.db.WithContext(ctx).First(&conv, id).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *ChatRepository) ListConversations(ctx context.Context, userID int64) ([]domain.Conversation, error) {
	var out []domain.Conversation
	err := r.db.WithContext(ctx).
		Where("participant_a = ? OR participant_b = ?", userID, userID).
		Order("last_message_at DESC NULLS LAST").
		Find(&out).Error
	return out, err
}

func (r *ChatRepository) CreateMessage(ctx context.Context, m *domain.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Conversation{}).Where("id = ?", m.ConversationID).
			Update("last_message_at", m.CreatedAt).Error
	})
}

func (r *ChatRepository) ListMessages(ctx context.Context, conversationID int64, limit, offset int) ([]domain.Message, error) {
	var out []domain.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}

// MarkRead stamps every unread message sent by the other participant.
func (r *ChatRepository) MarkRead(ctx context.Context, conversationID, readerID int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND read_at IS NULL", conversationID, readerID).
		Update("read_at", at).Error
}

func (r *ChatRepository) UnreadCount(ctx context.Context, conversationID, userID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND read_at IS NULL", conversationID, userID).
		Count(&cnt).Error
	return cnt, err
}
