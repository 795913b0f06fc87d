// models/chat.go
package models

import "time"

// RideChat is the single chat room attached to a ride, keyed by the ride ID.
// Participants always contain the owner; the room shares the ride's
// lifecycle.
type RideChat struct {
	ID                   string    `firestore:"-" json:"id,omitempty"`
	RideID               string    `firestore:"rideId" json:"rideId"`
	Participants         []string  `firestore:"participants" json:"participants"`
	Owner                string    `firestore:"owner" json:"owner"`
	OwnerName            string    `firestore:"ownerName" json:"ownerName"`
	From                 string    `firestore:"from" json:"from"`
	To                   string    `firestore:"to" json:"to"`
	Date                 string    `firestore:"date" json:"date"`
	DepartureTime        string    `firestore:"departureTime" json:"departureTime"`
	LastMessage          string    `firestore:"lastMessage" json:"lastMessage"`
	LastMessageTimestamp time.Time `firestore:"lastMessageTimestamp,serverTimestamp" json:"lastMessageTimestamp"`
	UsernameLastMessage  string    `firestore:"usernameLastMessage" json:"usernameLastMessage"`
}

// RideChatView is a chat room prepared for listing: the last-message
// timestamp is rendered in the display time zone while the raw moment is
// kept as the (descending) sort key.
type RideChatView struct {
	ID                   string    `json:"id"`
	RideID               string    `json:"rideId"`
	Participants         []string  `json:"participants"`
	Owner                string    `json:"owner"`
	OwnerName            string    `json:"ownerName"`
	From                 string    `json:"from"`
	To                   string    `json:"to"`
	Date                 string    `json:"date"`
	DepartureTime        string    `json:"departureTime"`
	LastMessage          string    `json:"lastMessage"`
	LastMessageTimestamp string    `json:"lastMessageTimestamp"`
	UsernameLastMessage  string    `json:"usernameLastMessage"`
	SortTimestamp        time.Time `json:"sort_timestamp"`
}
