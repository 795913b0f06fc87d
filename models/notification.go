// models/notification.go
package models

import "time"

// Notification is a per-user notification document. Notifications are only
// ever deleted by bulk cascade, never individually.
type Notification struct {
	ID        string    `firestore:"-" json:"id,omitempty"`
	Message   string    `firestore:"message" json:"message"`
	RideID    string    `firestore:"rideId" json:"rideId"`
	Read      bool      `firestore:"read" json:"read"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}

// NotificationView is a notification prepared for the client, with the
// creation time rendered in the display time zone.
type NotificationView struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	RideID    string `json:"rideId"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}
