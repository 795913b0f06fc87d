package notification

import (
	"context"

	"roadbuddy/models"

	"cloud.google.com/go/firestore"
)

// NotificationService owns per-user notification documents and the unread
// counters on the user documents.
type NotificationService interface {
	// Notify stores one notification and increments the recipient's unread
	// counter atomically.
	Notify(ctx context.Context, userID, rideID, message string) error

	// NotifyAll writes a notification for every recipient and increments
	// every counter in a single batch. An empty recipient list is an input
	// error.
	NotifyAll(ctx context.Context, userIDs []string, rideID, message string) error

	// ListAndMarkRead returns the user's notifications newest first, marks
	// every unread one as read and resets the unread counter. Each call
	// consumes the unread state.
	ListAndMarkRead(ctx context.Context, userID string) ([]models.NotificationView, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	DB *firestore.Client
}
