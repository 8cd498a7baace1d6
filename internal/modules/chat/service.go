package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"housequay/internal/domain"
)

type Service struct {
	repo ConversationRepository
	hub  *Hub
}

func NewService(repo ConversationRepository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

// Start returns the existing thread between the two users for the given
// scope, or creates one. The participant pair is normalized so (a, b) and
// (b, a) resolve to the same row. An optional opening message is sent.
func (s *Service) Start(ctx context.Context, actor domain.Actor, req StartConversationRequest) (*domain.Conversation, *domain.Message, error) {
	if req.RecipientID == actor.UserID {
		return nil, nil, ErrSelfMessage
	}
	if req.RecipientID <= 0 {
		return nil, nil, ErrValidation
	}

	a, b := actor.UserID, req.RecipientID
	if a > b {
		a, b = b, a
	}

	conv, err := s.repo.GetConversation(ctx, a, b, req.ListingID, req.BookingID)
	if err != nil {
		return nil, nil, err
	}
	if conv == nil {
		conv = &domain.Conversation{
			ParticipantA: a,
			ParticipantB: b,
			ListingID:    req.ListingID,
			BookingID:    req.BookingID,
		}
		if err := s.repo.CreateConversation(ctx, conv); err != nil {
			return nil, nil, err
		}
	}

	var msg *domain.Message
	if content := strings.TrimSpace(req.Message); content != "" {
		msg, err = s.send(ctx, actor.UserID, conv, content)
		if err != nil {
			return nil, nil, err
		}
	}

	return conv, msg, nil
}

func (s *Service) Send(ctx context.Context, actor domain.Actor, conversationID int64, req SendMessageRequest) (*domain.Message, error) {
	conv, err := s.conversationFor(ctx, actor.UserID, conversationID)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrValidation
	}

	return s.send(ctx, actor.UserID, conv, content)
}

func (s *Service) send(ctx context.Context, senderID int64, conv *domain.Conversation, content string) (*domain.Message, error) {
	msg := &domain.Message{
		ConversationID: conv.ID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	recipient := conv.ParticipantA
	if recipient == senderID {
		recipient = conv.ParticipantB
	}
	s.hub.SendToUser(recipient, WSEvent{Type: "message", Payload: msg})

	return msg, nil
}

func (s *Service) ListConversations(ctx context.Context, actor domain.Actor) ([]domain.Conversation, error) {
	return s.repo.ListConversations(ctx, actor.UserID)
}

func (s *Service) ListMessages(ctx context.Context, actor domain.Actor, conversationID int64, limit, offset int) ([]domain.Message, error) {
	if _, err := s.conversationFor(ctx, actor.UserID, conversationID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.ListMessages(ctx, conversationID, limit, offset)
}

// MarkRead stamps the other participant's unread messages and notifies them.
func (s *Service) MarkRead(ctx context.Context, actor domain.Actor, conversationID int64) error {
	conv, err := s.conversationFor(ctx, actor.UserID, conversationID)
	if err != nil {
		return err
	}

	if err := s.repo.MarkRead(ctx, conversationID, actor.UserID, time.Now().UTC()); err != nil {
		return err
	}

	other := conv.ParticipantA
	if other == actor.UserID {
		other = conv.ParticipantB
	}
	s.hub.SendToUser(other, WSEvent{Type: "read", Payload: map[string]int64{"conversation_id": conversationID}})

	return nil
}

func (s *Service) UnreadCount(ctx context.Context, actor domain.Actor, conversationID int64) (int64, error) {
	if _, err := s.conversationFor(ctx, actor.UserID, conversationID); err != nil {
		return 0, err
	}
	return s.repo.UnreadCount(ctx, conversationID, actor.UserID)
}

func (s *Service) conversationFor(ctx context.Context, userID, conversationID int64) (*domain.Conversation, error) {
	conv, err := s.repo.GetConversationByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if conv.ParticipantA != userID && conv.ParticipantB != userID {
		return nil, ErrNotParticipant
	}
	return conv, nil
}
