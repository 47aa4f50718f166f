package services

import (
	"context"
	"strings"

	"github.com/mentorhub/apiserver/internal/events"
	"github.com/mentorhub/apiserver/types"
)

// Listings return at most this many messages.
const defaultInboxLimit = 100

// MessageRepository defines persistence operations for messages.
type MessageRepository interface {
	ListForUser(ctx context.Context, userID, limit int) ([]types.Message, error)
	ListBroadcast(ctx context.Context, limit int) ([]types.Message, error)
	Create(ctx context.Context, message types.Message) (types.Message, error)
}

// MessageService encapsulates messaging use-cases.
type MessageService struct {
	repo MessageRepository
	bus  *events.Bus
}

func NewMessageService(repo MessageRepository, bus *events.Bus) *MessageService {
	return &MessageService{repo: repo, bus: bus}
}

// List returns the merged personal-and-public inbox for the given user, or
// broadcasts only when no user is supplied. Newest first.
func (s *MessageService) List(ctx context.Context, userID *int) ([]types.Message, error) {
	if userID != nil {
		return s.repo.ListForUser(ctx, *userID, defaultInboxLimit)
	}
	return s.repo.ListBroadcast(ctx, defaultInboxLimit)
}

// SendMessageParams carries the message-creation input. A nil ToUserID
// sends a broadcast.
type SendMessageParams struct {
	FromUserID int
	ToUserID   *int
	Content    string
}

// Send stores a message and returns it with the sender's display name
// resolved. Recipient existence is deliberately not checked.
func (s *MessageService) Send(ctx context.Context, params SendMessageParams) (types.Message, error) {
	params.Content = strings.TrimSpace(params.Content)
	if params.FromUserID < 1 || params.Content == "" {
		return types.Message{}, invalid("sender and content are required")
	}

	message, err := s.repo.Create(ctx, types.Message{
		FromUserID: params.FromUserID,
		ToUserID:   params.ToUserID,
		Content:    params.Content,
	})
	if err != nil {
		return types.Message{}, err
	}

	publishEvent(ctx, s.bus, events.ChannelMessages, events.KindMessageCreated, message)
	return message, nil
}
