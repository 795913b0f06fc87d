package user

import (
	"context"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/v4/auth"
)

// UserService owns the user directory: account creation with the identity
// provider, the posted/joined ride ID lists and the unread counter.
type UserService interface {
	SignUp(ctx context.Context, name, email, password string) error

	// Ride list membership. The add operations report whether the ride was
	// already present (idempotent success).
	RidesPosted(ctx context.Context, userID string) ([]string, error)
	Rides(ctx context.Context, userID string) ([]string, error)
	AddPostedRide(ctx context.Context, userID, rideID string) (bool, error)
	AddJoinedRide(ctx context.Context, userID, rideID string) (bool, error)
	RemovePostedRide(ctx context.Context, userID, rideID string) error
	RemoveJoinedRide(ctx context.Context, userID, rideID string) error

	UnreadNotificationCount(ctx context.Context, userID string) (int64, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	DB   *firestore.Client
	Auth *auth.Client
}
