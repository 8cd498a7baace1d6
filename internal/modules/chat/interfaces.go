package chat

import (
	"context"
	"time"

	"housequay/internal/domain"
)

type ConversationRepository interface {
	GetConversation(ctx context.Context, a, b int64, listingID, bookingID *int64) (*domain.Conversation, error)
	CreateConversation(ctx context.Context, conv *domain.Conversation) error
	GetConversationByID(ctx context.Context, id int64) (*domain.Conversation, error)
	ListConversations(ctx context.Context, userID int64) ([]domain.Conversation, error)
	CreateMessage(ctx context.Context, m *domain.Message) error
	ListMessages(ctx context.Context, conversationID int64, limit, offset int) ([]domain.Message, error)
	MarkRead(ctx context.Context, conversationID, readerID int64, at time.Time) error
	UnreadCount(ctx context.Context, conversationID, userID int64) (int64, error)
}
