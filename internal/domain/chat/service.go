package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gustavogago/Produto-de-software/internal/infrastructure/metrics"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/observability"
	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

// MaxMessagePage caps how many messages a single listing returns.
const MaxMessagePage = 200

// Service exposes the messaging operations.
type Service interface {
	// StartConversation finds or creates the conversation between the caller
	// and the peer. Calling it twice, from either side, yields the same
	// conversation.
	StartConversation(ctx context.Context, subject string, peerID string) (*Conversation, error)

	// SendMessage appends a message to a conversation the caller belongs to.
	SendMessage(ctx context.Context, subject string, conversationID string, body string) (*Message, error)

	// ListMessages returns the newest messages of a conversation the caller
	// belongs to, newest first.
	ListMessages(ctx context.Context, subject string, conversationID string) ([]Message, error)
}

type service struct {
	conversations ConversationRepository
	messages      MessageRepository
	identity      IdentityResolver
	notifier      Notifier
	pageLimit     int
	log           zerolog.Logger
}

// NewService constructs the messaging service.
func NewService(
	conversations ConversationRepository,
	messages MessageRepository,
	identity IdentityResolver,
	notifier Notifier,
	pageLimit int,
	log zerolog.Logger,
) Service {
	if pageLimit <= 0 || pageLimit > MaxMessagePage {
		pageLimit = MaxMessagePage
	}
	return &service{
		conversations: conversations,
		messages:      messages,
		identity:      identity,
		notifier:      notifier,
		pageLimit:     pageLimit,
		log:           log.With().Str("component", "chat-service").Logger(),
	}
}

func (s *service) StartConversation(ctx context.Context, subject string, peerID string) (*Conversation, error) {
	ctx, span := observability.StartConversationSpan(ctx, "start")
	defer span.End()

	me, err := s.identity.Resolve(ctx, subject)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	peer, err := uuid.Parse(strings.TrimSpace(peerID))
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"peer id is not a valid uuid",
			err,
			"chat-start-invalid-peer",
		)
	}

	if peer == me {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"cannot start a conversation with yourself",
			nil,
			"chat-start-self-peer",
		)
	}

	conv, err := s.conversations.FindOrCreate(ctx, NewConversation(me, peer))
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	metrics.RecordConversationStarted()
	return conv, nil
}

func (s *service) SendMessage(ctx context.Context, subject string, conversationID string, body string) (*Message, error) {
	ctx, span := observability.StartMessageSpan(ctx, "send", conversationID)
	defer span.End()

	me, err := s.identity.Resolve(ctx, subject)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	conv, err := s.loadMemberConversation(ctx, me, conversationID)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"message body must not be empty",
			nil,
			"chat-send-empty-body",
		)
	}

	msg := &Message{
		ID:             uuid.New(),
		ConversationID: conv.ID,
		SenderID:       me,
		Body:           trimmed,
		SentAt:         time.Now().UTC(),
	}

	if err := s.messages.Append(ctx, msg); err != nil {
		observability.RecordError(span, err)
		metrics.RecordMessageSent("error")
		return nil, err
	}

	metrics.RecordMessageSent("ok")

	// Best effort: a failed notification never fails the send.
	if s.notifier != nil {
		if err := s.notifier.NotifyNewMessage(ctx, conv.Peer(me), msg); err != nil {
			s.log.Warn().Err(err).
				Str("conversation_id", conv.ID.String()).
				Msg("queue message notification")
		}
	}

	return msg, nil
}

func (s *service) ListMessages(ctx context.Context, subject string, conversationID string) ([]Message, error) {
	ctx, span := observability.StartMessageSpan(ctx, "list", conversationID)
	defer span.End()

	me, err := s.identity.Resolve(ctx, subject)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	conv, err := s.loadMemberConversation(ctx, me, conversationID)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	return s.messages.ListByConversation(ctx, conv.ID, s.pageLimit)
}

// loadMemberConversation fetches the conversation and enforces membership.
// Unknown or malformed IDs yield NOT_FOUND, a foreign conversation FORBIDDEN.
func (s *service) loadMemberConversation(ctx context.Context, me uuid.UUID, conversationID string) (*Conversation, error) {
	id, err := uuid.Parse(strings.TrimSpace(conversationID))
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound,
			"conversation not found",
			err,
			"chat-conversation-id-malformed",
		)
	}

	conv, err := s.conversations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !conv.HasParticipant(me) {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeForbidden,
			"not a participant of this conversation",
			nil,
			"chat-not-participant",
		)
	}

	return conv, nil
}
