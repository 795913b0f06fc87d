package chat

import (
	"context"

	"roadbuddy/models"

	"cloud.google.com/go/firestore"
)

// RideChatService owns the one-chat-per-ride directory: participant
// membership and the last-message summary.
type RideChatService interface {
	CreateChat(ctx context.Context, ownerID, ownerName, rideID string, input models.RidePost) (*models.RideChat, error)

	// GetChatDetails rejects callers that are not participants.
	GetChatDetails(ctx context.Context, callerID, rideID string) (*models.RideChat, error)

	// UserChats batch-fetches the chats for a set of ride IDs, most recent
	// last message first.
	UserChats(ctx context.Context, rideIDs []string) ([]models.RideChatView, error)

	DeleteChat(ctx context.Context, rideID string) error

	// AddParticipant reports true when the caller was already a participant
	// (idempotent success).
	AddParticipant(ctx context.Context, callerID, rideID string) (bool, error)
	RemoveParticipant(ctx context.Context, callerID, rideID string) error

	// UpdateLastMessage overwrites the summary fields and returns the chat
	// as it was before the update.
	UpdateLastMessage(ctx context.Context, callerID, callerName, rideID, text string) (*models.RideChat, error)
}

// MessageService owns the append-only messages of a ride chat.
type MessageService interface {
	SendMessage(ctx context.Context, rideID, senderID, senderName, text string, isOwner bool) error

	// Messages returns every message ordered by timestamp ascending, keyed
	// by 1-based position.
	Messages(ctx context.Context, rideID string) (map[int]models.ChatMessageView, error)

	// DeleteAllMessages bulk-deletes a chat's messages in one batch. Used
	// only by the ride deletion and expiry cascades.
	DeleteAllMessages(ctx context.Context, rideID string) error
}

// DefaultRideChatService is the production implementation.
type DefaultRideChatService struct {
	DB *firestore.Client
}

// DefaultMessageService is the production implementation.
type DefaultMessageService struct {
	DB *firestore.Client
}
