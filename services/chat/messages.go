package chat

import (
	"context"

	"roadbuddy/apperror"
	"roadbuddy/models"
	"roadbuddy/utils"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

func (s *DefaultMessageService) messagesRef(rideID string) *firestore.CollectionRef {
	return s.DB.Collection("ride_chats").Doc(rideID).Collection("messages")
}

// SendMessage appends a message to the chat. Messages are immutable once
// created.
func (s *DefaultMessageService) SendMessage(ctx context.Context, rideID, senderID, senderName, text string, isOwner bool) error {
	message := map[string]any{
		"senderId":   senderID,
		"senderName": senderName,
		"text":       text,
		"timestamp":  firestore.ServerTimestamp,
		"isOwner":    isOwner,
	}

	if _, err := s.messagesRef(rideID).NewDoc().Set(ctx, message); err != nil {
		return apperror.Store("Failed to send message.", err)
	}
	return nil
}

// Messages returns every message ordered by timestamp ascending, keyed by
// 1-based position, with display timestamps in the fixed time zone.
func (s *DefaultMessageService) Messages(ctx context.Context, rideID string) (map[int]models.ChatMessageView, error) {
	iter := s.messagesRef(rideID).OrderBy("timestamp", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	views := make(map[int]models.ChatMessageView)
	position := 0
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperror.Store("Failed to fetch messages.", err)
		}

		var msg models.ChatMessage
		if err := snap.DataTo(&msg); err != nil {
			return nil, apperror.Store("Failed to fetch messages.", err)
		}

		position++
		views[position] = models.ChatMessageView{
			ID:         snap.Ref.ID,
			SenderID:   msg.SenderID,
			SenderName: msg.SenderName,
			Text:       msg.Text,
			Timestamp:  utils.FormatDisplayTimestamp(msg.Timestamp),
			IsOwner:    msg.IsOwner,
		}
	}
	return views, nil
}

// DeleteAllMessages removes every message of a chat in one batch. Only the
// ride deletion and expiry cascades call this.
func (s *DefaultMessageService) DeleteAllMessages(ctx context.Context, rideID string) error {
	iter := s.messagesRef(rideID).Documents(ctx)
	defer iter.Stop()

	batch := s.DB.Batch()
	count := 0
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return apperror.Store("Failed to delete messages.", err)
		}
		batch.Delete(snap.Ref)
		count++
	}

	if count == 0 {
		return nil
	}
	if _, err := batch.Commit(ctx); err != nil {
		return apperror.Store("Failed to delete messages.", err)
	}
	return nil
}
