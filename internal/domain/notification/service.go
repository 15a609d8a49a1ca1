package notification

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gustavogago/Produto-de-software/internal/domain/chat"
	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

// listLimit caps how many notifications a single listing returns.
const listLimit = 50

// Service exposes notification reads and implements chat.Notifier so message
// sends can enqueue a notification for the peer.
type Service interface {
	chat.Notifier

	List(ctx context.Context, subject string) ([]*Notification, error)
	MarkRead(ctx context.Context, subject string, notificationID string) error
}

type service struct {
	repo     Repository
	identity chat.IdentityResolver
	log      zerolog.Logger
}

// NewService constructs the notification service.
func NewService(repo Repository, identity chat.IdentityResolver, log zerolog.Logger) Service {
	return &service{
		repo:     repo,
		identity: identity,
		log:      log.With().Str("component", "notification-service").Logger(),
	}
}

// NotifyNewMessage enqueues a chat notification for the message recipient.
func (s *service) NotifyNewMessage(ctx context.Context, recipientID uuid.UUID, msg *chat.Message) error {
	n := &Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Type:        TypeChat,
		ReferenceID: msg.ConversationID.String(),
		Message:     "You have a new message",
		Payload: map[string]any{
			"conversation_id": msg.ConversationID.String(),
			"message_id":      msg.ID.String(),
			"sender_id":       msg.SenderID.String(),
			"sent_at":         msg.SentAt,
		},
		DeliveryStatus: DeliveryQueued,
	}
	return s.repo.Create(ctx, n)
}

func (s *service) List(ctx context.Context, subject string) ([]*Notification, error) {
	me, err := s.identity.Resolve(ctx, subject)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByRecipient(ctx, me, listLimit)
}

func (s *service) MarkRead(ctx context.Context, subject string, notificationID string) error {
	me, err := s.identity.Resolve(ctx, subject)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(notificationID))
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound,
			"notification not found",
			err,
			"notification-id-malformed",
		)
	}

	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if n.RecipientID != me {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeForbidden,
			"notification belongs to another user",
			nil,
			"notification-not-recipient",
		)
	}

	return s.repo.MarkRead(ctx, id)
}
