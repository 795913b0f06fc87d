package chat

import (
	"context"
	"sort"
	"strings"

	"roadbuddy/apperror"
	"roadbuddy/models"
	"roadbuddy/utils"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *DefaultRideChatService) chatsRef() *firestore.CollectionRef {
	return s.DB.Collection("ride_chats")
}

func decodeChat(snap *firestore.DocumentSnapshot) (*models.RideChat, error) {
	var c models.RideChat
	if err := snap.DataTo(&c); err != nil {
		return nil, err
	}
	c.ID = snap.Ref.ID
	return &c, nil
}

// CreateChat opens the chat room for a freshly posted ride with the owner as
// sole participant.
func (s *DefaultRideChatService) CreateChat(ctx context.Context, ownerID, ownerName, rideID string, input models.RidePost) (*models.RideChat, error) {
	room := map[string]any{
		"rideId":               rideID,
		"participants":         []string{ownerID},
		"owner":                ownerID,
		"ownerName":            ownerName,
		"from":                 input.From,
		"to":                   input.To,
		"date":                 input.Date,
		"departureTime":        input.DepartureTime,
		"lastMessage":          "",
		"lastMessageTimestamp": firestore.ServerTimestamp,
		"usernameLastMessage":  "",
	}

	if _, err := s.chatsRef().Doc(rideID).Set(ctx, room); err != nil {
		return nil, apperror.Store("Failed to create chat", err)
	}

	return &models.RideChat{
		ID:            rideID,
		RideID:        rideID,
		Participants:  []string{ownerID},
		Owner:         ownerID,
		OwnerName:     ownerName,
		From:          input.From,
		To:            input.To,
		Date:          input.Date,
		DepartureTime: input.DepartureTime,
	}, nil
}

func (s *DefaultRideChatService) getChat(ctx context.Context, rideID string) (*models.RideChat, error) {
	snap, err := s.chatsRef().Doc(rideID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, apperror.NotFound("Ride chat not found.")
	}
	if err != nil {
		return nil, apperror.Store("Failed to fetch ride chat", err)
	}
	c, err := decodeChat(snap)
	if err != nil {
		return nil, apperror.Store("Failed to fetch ride chat", err)
	}
	return c, nil
}

// GetChatDetails fetches the chat, rejecting callers outside the
// participant list.
func (s *DefaultRideChatService) GetChatDetails(ctx context.Context, callerID, rideID string) (*models.RideChat, error) {
	c, err := s.getChat(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(c.Participants, callerID) {
		return nil, apperror.Forbidden("User is not a participant of this chat.")
	}
	return c, nil
}

// UserChats batch-fetches chats for the given ride IDs and orders them by
// the raw last-message timestamp, most recent first. The display timestamp
// is rendered in the fixed display time zone.
func (s *DefaultRideChatService) UserChats(ctx context.Context, rideIDs []string) ([]models.RideChatView, error) {
	if len(rideIDs) == 0 {
		return []models.RideChatView{}, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(rideIDs))
	for _, rideID := range rideIDs {
		refs = append(refs, s.chatsRef().Doc(rideID))
	}

	snaps, err := s.DB.GetAll(ctx, refs)
	if err != nil {
		return nil, apperror.Store("Failed to fetch user ride chats.", err)
	}

	views := make([]models.RideChatView, 0, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		c, err := decodeChat(snap)
		if err != nil {
			return nil, apperror.Store("Failed to fetch user ride chats.", err)
		}
		views = append(views, models.RideChatView{
			ID:                   c.ID,
			RideID:               c.RideID,
			Participants:         c.Participants,
			Owner:                c.Owner,
			OwnerName:            c.OwnerName,
			From:                 c.From,
			To:                   c.To,
			Date:                 c.Date,
			DepartureTime:        c.DepartureTime,
			LastMessage:          c.LastMessage,
			LastMessageTimestamp: utils.FormatDisplayTimestamp(c.LastMessageTimestamp),
			UsernameLastMessage:  c.UsernameLastMessage,
			SortTimestamp:        c.LastMessageTimestamp,
		})
	}

	sortChatViews(views)
	return views, nil
}

func sortChatViews(views []models.RideChatView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].SortTimestamp.After(views[j].SortTimestamp)
	})
}

// DeleteChat removes the chat room. Used only by the deletion cascades.
func (s *DefaultRideChatService) DeleteChat(ctx context.Context, rideID string) error {
	if _, err := s.chatsRef().Doc(rideID).Delete(ctx); err != nil {
		return apperror.Store("Failed to delete chat", err)
	}
	return nil
}

// AddParticipant adds the caller to the chat, reporting true if they were
// already present.
func (s *DefaultRideChatService) AddParticipant(ctx context.Context, callerID, rideID string) (bool, error) {
	c, err := s.getChat(ctx, rideID)
	if err != nil {
		return false, err
	}
	if isParticipant(c.Participants, callerID) {
		return true, nil
	}

	participants := append(append([]string{}, c.Participants...), callerID)
	if _, err := s.chatsRef().Doc(rideID).Update(ctx, []firestore.Update{
		{Path: "participants", Value: participants},
	}); err != nil {
		return false, apperror.Store("Failed to add user as a participant of this chat.", err)
	}
	return false, nil
}

// RemoveParticipant drops the caller from the participant list.
func (s *DefaultRideChatService) RemoveParticipant(ctx context.Context, callerID, rideID string) error {
	c, err := s.getChat(ctx, rideID)
	if err != nil {
		return err
	}
	if !isParticipant(c.Participants, callerID) {
		return apperror.Forbidden("User is not a participant of this ride chat.").
			WithStatus(400)
	}

	participants := make([]string, 0, len(c.Participants))
	for _, p := range c.Participants {
		if p != callerID {
			participants = append(participants, p)
		}
	}
	if _, err := s.chatsRef().Doc(rideID).Update(ctx, []firestore.Update{
		{Path: "participants", Value: participants},
	}); err != nil {
		return apperror.Store("Failed to remove user as a participant of this chat.", err)
	}
	return nil
}

// UpdateLastMessage overwrites the three last-message summary fields and
// returns the chat as it was before the update.
func (s *DefaultRideChatService) UpdateLastMessage(ctx context.Context, callerID, callerName, rideID, text string) (*models.RideChat, error) {
	c, err := s.getChat(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperror.Validation("Message cannot be empty.")
	}
	if !isParticipant(c.Participants, callerID) {
		return nil, apperror.Forbidden("User is not a participant of this chat.").
			WithStatus(400)
	}

	if _, err := s.chatsRef().Doc(rideID).Update(ctx, []firestore.Update{
		{Path: "lastMessage", Value: text},
		{Path: "lastMessageTimestamp", Value: firestore.ServerTimestamp},
		{Path: "usernameLastMessage", Value: callerName},
	}); err != nil {
		return nil, apperror.Store("Failed to update ride chat.", err)
	}
	return c, nil
}

func isParticipant(participants []string, userID string) bool {
	for _, p := range participants {
		if p == userID {
			return true
		}
	}
	return false
}
