package notification

import (
	"context"

	"roadbuddy/apperror"
	"roadbuddy/models"
	"roadbuddy/utils"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

func (s *DefaultNotificationService) userRef(userID string) *firestore.DocumentRef {
	return s.DB.Collection("users").Doc(userID)
}

func notificationData(rideID, message string) map[string]any {
	return map[string]any{
		"message":   message,
		"rideId":    rideID,
		"read":      false,
		"createdAt": firestore.ServerTimestamp,
	}
}

// Notify stores a notification under the user and bumps the unread counter.
func (s *DefaultNotificationService) Notify(ctx context.Context, userID, rideID, message string) error {
	userRef := s.userRef(userID)
	notifRef := userRef.Collection("notifications").NewDoc()

	if _, err := notifRef.Set(ctx, notificationData(rideID, message)); err != nil {
		return apperror.Store("Failed to store notification", err)
	}
	if _, err := userRef.Set(ctx, map[string]any{
		"unreadNotificationCount": firestore.Increment(1),
	}, firestore.MergeAll); err != nil {
		return apperror.Store("Failed to store notification", err)
	}
	return nil
}

// NotifyAll writes every notification document and counter increment in one
// batch.
func (s *DefaultNotificationService) NotifyAll(ctx context.Context, userIDs []string, rideID, message string) error {
	if len(userIDs) == 0 {
		return apperror.Validation("No user IDs provided.")
	}

	batch := s.DB.Batch()
	for _, userID := range userIDs {
		userRef := s.userRef(userID)
		batch.Set(userRef.Collection("notifications").NewDoc(), notificationData(rideID, message))
		batch.Set(userRef, map[string]any{
			"unreadNotificationCount": firestore.Increment(1),
		}, firestore.MergeAll)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return apperror.Store("Failed to store notification", err)
	}
	return nil
}

// ListAndMarkRead is a side-effecting read: it returns the notifications
// newest first, flips every unread one to read in a single batch and resets
// the unread counter.
func (s *DefaultNotificationService) ListAndMarkRead(ctx context.Context, userID string) ([]models.NotificationView, error) {
	userRef := s.userRef(userID)
	iter := userRef.Collection("notifications").
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	batch := s.DB.Batch()
	unread := 0
	views := []models.NotificationView{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperror.Store("Failed to fetch user notifications.", err)
		}

		var notif models.Notification
		if err := snap.DataTo(&notif); err != nil {
			return nil, apperror.Store("Failed to fetch user notifications.", err)
		}

		views = append(views, models.NotificationView{
			ID:        snap.Ref.ID,
			Message:   notif.Message,
			RideID:    notif.RideID,
			Read:      notif.Read,
			CreatedAt: utils.FormatNotificationTimestamp(notif.CreatedAt),
		})

		if !notif.Read {
			batch.Update(snap.Ref, []firestore.Update{{Path: "read", Value: true}})
			unread++
		}
	}

	if unread > 0 {
		if _, err := batch.Commit(ctx); err != nil {
			return nil, apperror.Store("Failed to fetch user notifications.", err)
		}
	}

	if _, err := userRef.Update(ctx, []firestore.Update{
		{Path: "unreadNotificationCount", Value: 0},
	}); err != nil {
		return nil, apperror.Store("Failed to fetch user notifications.", err)
	}
	return views, nil
}
