// models/message.go
package models

import "time"

// ChatMessage is one message inside a ride chat. Messages are append-only
// and ordered by timestamp ascending.
type ChatMessage struct {
	ID         string    `firestore:"-" json:"id,omitempty"`
	SenderID   string    `firestore:"senderId" json:"senderId"`
	SenderName string    `firestore:"senderName" json:"senderName"`
	Text       string    `firestore:"text" json:"text"`
	Timestamp  time.Time `firestore:"timestamp,serverTimestamp" json:"timestamp"`
	IsOwner    bool      `firestore:"isOwner" json:"isOwner"`
}

// ChatMessageView is a message prepared for the client: the store document
// ID is preserved and the timestamp is rendered in the display time zone.
type ChatMessageView struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
	Text       string `json:"text"`
	Timestamp  string `json:"timestamp"`
	IsOwner    bool   `json:"isOwner"`
}
