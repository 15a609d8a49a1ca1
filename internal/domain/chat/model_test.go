package chat

import (
	"testing"

	"github.com/google/uuid"
)

func TestCanonicalPairOrdersByByteValue(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")

	low, high := CanonicalPair(a, b)
	if low != a || high != b {
		t.Errorf("expected (a, b), got (%s, %s)", low, high)
	}

	low, high = CanonicalPair(b, a)
	if low != a || high != b {
		t.Errorf("expected order to normalize, got (%s, %s)", low, high)
	}
}

func TestNewConversationNormalizesEitherDirection(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	first := NewConversation(a, b)
	second := NewConversation(b, a)

	if first.ParticipantLow != second.ParticipantLow || first.ParticipantHigh != second.ParticipantHigh {
		t.Errorf("pair differs by direction: (%s,%s) vs (%s,%s)",
			first.ParticipantLow, first.ParticipantHigh,
			second.ParticipantLow, second.ParticipantHigh)
	}
}

func TestHasParticipant(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	conv := NewConversation(a, b)

	if !conv.HasParticipant(a) || !conv.HasParticipant(b) {
		t.Error("expected both participants to be members")
	}
	if conv.HasParticipant(uuid.New()) {
		t.Error("expected stranger not to be a member")
	}
}

func TestPeerReturnsTheOtherParticipant(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	conv := NewConversation(a, b)

	if got := conv.Peer(a); got != b {
		t.Errorf("peer of a: expected %s, got %s", b, got)
	}
	if got := conv.Peer(b); got != a {
		t.Errorf("peer of b: expected %s, got %s", a, got)
	}
}
