package ride

import (
	"context"

	"roadbuddy/models"

	"cloud.google.com/go/firestore"
)

// RideService owns the ride ledger.
type RideService interface {
	// PostRide stores a new open ride and returns it with its generated ID.
	// postedRideIDs are the caller's previously posted rides, used for the
	// duplicate-post guard.
	PostRide(ctx context.Context, ownerID, ownerName string, postedRideIDs []string, input models.RidePost) (*models.Ride, error)
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	GetRidesByIDs(ctx context.Context, rideIDs []string) ([]models.Ride, error)

	// DeleteRide removes the ride (owner only) and returns the prior
	// document so the caller can cascade cleanup.
	DeleteRide(ctx context.Context, callerID, rideID string) (*models.Ride, error)

	// AddPassenger reports true when the caller was already a passenger
	// (idempotent success).
	AddPassenger(ctx context.Context, callerID, rideID string) (bool, error)
	RemovePassenger(ctx context.Context, callerID, rideID string) error

	// AvailableRides returns open future rides excluding the given IDs.
	AvailableRides(ctx context.Context, excludedRideIDs []string) ([]models.Ride, error)

	// SweepExpired deletes every ride whose schedule has passed in one batch
	// and returns the prior documents for cascade cleanup.
	SweepExpired(ctx context.Context) ([]models.Ride, error)
}

// DefaultRideService is the production implementation.
type DefaultRideService struct {
	DB *firestore.Client
}
