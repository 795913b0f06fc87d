// models/user.go
package models

// User is a platform user document. Ride IDs appear at most once in each
// list; the unread counter is maintained by the notification store.
type User struct {
	ID                      string   `firestore:"-" json:"id,omitempty"`
	Name                    string   `firestore:"name" json:"name"`
	Email                   string   `firestore:"email" json:"email"`
	RidesPosted             []string `firestore:"ridesPosted" json:"ridesPosted"`
	RidesJoined             []string `firestore:"ridesJoined" json:"ridesJoined"`
	UnreadNotificationCount int64    `firestore:"unreadNotificationCount" json:"unreadNotificationCount"`
}

// Identity is the authenticated caller resolved from a verified ID token.
// It is passed explicitly into every component call.
type Identity struct {
	UserID string `json:"uid"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
}
