package requests

// StartConversationRequest opens (or finds) a conversation with a peer.
type StartConversationRequest struct {
	PeerID string `json:"peer_id" binding:"required"`
}

// SendMessageRequest appends a message to a conversation.
type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}
