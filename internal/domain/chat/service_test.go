package chat

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

type fakeConversationStore struct {
	mu     sync.Mutex
	byPair map[[2]uuid.UUID]*Conversation
	byID   map[uuid.UUID]*Conversation
}

func newFakeConversationStore() *fakeConversationStore {
	return &fakeConversationStore{
		byPair: make(map[[2]uuid.UUID]*Conversation),
		byID:   make(map[uuid.UUID]*Conversation),
	}
}

func (s *fakeConversationStore) FindOrCreate(ctx context.Context, conv *Conversation) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := [2]uuid.UUID{conv.ParticipantLow, conv.ParticipantHigh}
	if existing, ok := s.byPair[key]; ok {
		return existing, nil
	}
	s.byPair[key] = conv
	s.byID[conv.ID] = conv
	return conv, nil
}

func (s *fakeConversationStore) FindByID(ctx context.Context, id uuid.UUID) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.byID[id]
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound, "conversation not found", nil, "conversation-not-found")
	}
	return conv, nil
}

type fakeMessageStore struct {
	mu    sync.Mutex
	msgs  []Message
	convs *fakeConversationStore
}

func (s *fakeMessageStore) Append(ctx context.Context, msg *Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.convs.byID[msg.ConversationID]
	if !ok {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound, "conversation not found", nil, "message-append-conversation-missing")
	}
	s.msgs = append(s.msgs, *msg)
	sentAt := msg.SentAt
	conv.LastMessageAt = &sentAt
	return nil
}

func (s *fakeMessageStore) ListByConversation(ctx context.Context, conversationID uuid.UUID, limit int) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Message
	for _, m := range s.msgs {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SentAt.After(out[j].SentAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeIdentity struct {
	subjects map[string]uuid.UUID
}

func (f *fakeIdentity) Resolve(ctx context.Context, subject string) (uuid.UUID, error) {
	id, ok := f.subjects[subject]
	if !ok {
		return uuid.Nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeValidation, "participant identity not linked", nil, "identity-not-linked")
	}
	return id, nil
}

type fakeNotifier struct {
	mu         sync.Mutex
	recipients []uuid.UUID
	messages   []*Message
}

func (f *fakeNotifier) NotifyNewMessage(ctx context.Context, recipientID uuid.UUID, msg *Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recipients = append(f.recipients, recipientID)
	f.messages = append(f.messages, msg)
	return nil
}

type fixture struct {
	svc      Service
	convs    *fakeConversationStore
	msgs     *fakeMessageStore
	identity *fakeIdentity
	notifier *fakeNotifier
	alice    uuid.UUID
	bob      uuid.UUID
}

func newFixture() *fixture {
	convs := newFakeConversationStore()
	msgs := &fakeMessageStore{convs: convs}
	notifier := &fakeNotifier{}
	alice := uuid.New()
	bob := uuid.New()
	identity := &fakeIdentity{subjects: map[string]uuid.UUID{
		"alice": alice,
		"bob":   bob,
	}}
	svc := NewService(convs, msgs, identity, notifier, 0, zerolog.Nop())
	return &fixture{svc: svc, convs: convs, msgs: msgs, identity: identity, notifier: notifier, alice: alice, bob: bob}
}

func TestStartConversationIsDirectionless(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.svc.StartConversation(ctx, "alice", f.bob.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := f.svc.StartConversation(ctx, "bob", f.alice.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("expected the same conversation from both sides, got %s and %s", first.ID, second.ID)
	}
}

func TestStartConversationRejectsSelfPeer(t *testing.T) {
	f := newFixture()

	_, err := f.svc.StartConversation(context.Background(), "alice", f.alice.String())
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestStartConversationRejectsMalformedPeer(t *testing.T) {
	f := newFixture()

	_, err := f.svc.StartConversation(context.Background(), "alice", "not-a-uuid")
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestStartConversationRequiresLinkedIdentity(t *testing.T) {
	f := newFixture()

	_, err := f.svc.StartConversation(context.Background(), "stranger", f.bob.String())
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestStartConversationConcurrentFirstContact(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	const attempts = 16
	ids := make(chan uuid.UUID, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		subject, peer := "alice", f.bob
		if i%2 == 1 {
			subject, peer = "bob", f.alice
		}
		go func(subject string, peer uuid.UUID) {
			defer wg.Done()
			conv, err := f.svc.StartConversation(ctx, subject, peer.String())
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			ids <- conv.ID
		}(subject, peer)
	}
	wg.Wait()
	close(ids)

	seen := make(map[uuid.UUID]bool)
	for id := range ids {
		seen[id] = true
	}
	if len(seen) != 1 {
		t.Errorf("expected all attempts to converge on one conversation, got %d", len(seen))
	}
}

func TestSendMessageRejectsEmptyBody(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	conv, err := f.svc.StartConversation(ctx, "alice", f.bob.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, body := range []string{"", "   ", "\n\t"} {
		_, err := f.svc.SendMessage(ctx, "alice", conv.ID.String(), body)
		if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
			t.Errorf("body %q: expected validation error, got %v", body, err)
		}
	}
	if len(f.msgs.msgs) != 0 {
		t.Errorf("expected no messages persisted, got %d", len(f.msgs.msgs))
	}
}

func TestSendMessageRejectsStranger(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	conv, err := f.svc.StartConversation(ctx, "alice", f.bob.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.identity.subjects["carol"] = uuid.New()

	_, err = f.svc.SendMessage(ctx, "carol", conv.ID.String(), "hello")
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeForbidden) {
		t.Errorf("expected forbidden error, got %v", err)
	}
}

func TestSendMessageUnknownConversation(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SendMessage(context.Background(), "alice", uuid.New().String(), "hello")
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestSendMessageAdvancesLastMessageAtAndNotifiesPeer(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	conv, err := f.svc.StartConversation(ctx, "alice", f.bob.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg, err := f.svc.SendMessage(ctx, "alice", conv.ID.String(), "  hello bob  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.Body != "hello bob" {
		t.Errorf("expected body to be trimmed, got %q", msg.Body)
	}
	if conv.LastMessageAt == nil || !conv.LastMessageAt.Equal(msg.SentAt) {
		t.Errorf("expected last_message_at %v, got %v", msg.SentAt, conv.LastMessageAt)
	}
	if len(f.notifier.recipients) != 1 || f.notifier.recipients[0] != f.bob {
		t.Errorf("expected peer %s to be notified, got %v", f.bob, f.notifier.recipients)
	}
}

func TestListMessagesNewestFirst(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	conv, err := f.svc.StartConversation(ctx, "alice", f.bob.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, body := range []string{"one", "two", "three"} {
		if _, err := f.svc.SendMessage(ctx, "alice", conv.ID.String(), body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	msgs, err := f.svc.ListMessages(ctx, "bob", conv.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	for i := 1; i < len(msgs); i++ {
		if msgs[i].SentAt.After(msgs[i-1].SentAt) {
			t.Errorf("expected newest first ordering at index %d", i)
		}
	}
}

func TestListMessagesRejectsStranger(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	conv, err := f.svc.StartConversation(ctx, "alice", f.bob.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.identity.subjects["carol"] = uuid.New()

	_, err = f.svc.ListMessages(ctx, "carol", conv.ID.String())
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeForbidden) {
		t.Errorf("expected forbidden error, got %v", err)
	}
}
